package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
	BookingStatusCompleted = "completed"
)

// BookingStatuses lists every value the status column accepts.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCanceled,
	BookingStatusCompleted,
}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"booking_id"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Listing   Listing   `gorm:"foreignKey:ListingID" json:"listing"`
	GuestID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Guest     User      `gorm:"foreignKey:GuestID" json:"guest"`

	CheckInDate    time.Time `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate   time.Time `gorm:"type:date;not null;check:chk_bookings_dates,check_out_date > check_in_date" json:"check_out_date"`
	NumberOfGuests int       `gorm:"not null;check:number_of_guests > 0" json:"number_of_guests"`
	TotalPrice     float64   `gorm:"type:numeric(10,2);not null;check:total_price >= 0" json:"total_price"`
	Status         string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the identifier and re-checks the invariants the
// database cannot express across tables. Direct-create paths (the seeder)
// bypass the validation layer, so this hook is the last line of defense.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if !b.CheckOutDate.After(b.CheckInDate) {
		return fmt.Errorf("%w: check_out_date must be after check_in_date", gorm.ErrCheckConstraintViolated)
	}
	var listing Listing
	if err := tx.First(&listing, "id = ?", b.ListingID).Error; err != nil {
		return err
	}
	if b.NumberOfGuests > listing.MaxGuests {
		return fmt.Errorf("%w: number_of_guests exceeds listing max_guests", gorm.ErrCheckConstraintViolated)
	}
	return nil
}

// DurationDays is the length of the stay in whole days.
func (b *Booking) DurationDays() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// DeleteBookingCascade removes a booking and the review linked to it, if any.
func DeleteBookingCascade(tx *gorm.DB, bookingID uuid.UUID) error {
	if err := tx.Where("booking_id = ?", bookingID).Delete(&Review{}).Error; err != nil {
		return err
	}
	return tx.Delete(&Booking{}, "id = ?", bookingID).Error
}
