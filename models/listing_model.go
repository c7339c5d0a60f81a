package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Listing struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"listing_id"`
	HostID        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Host          User      `gorm:"foreignKey:HostID" json:"host"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Location      string    `gorm:"size:100" json:"location"`
	PricePerNight float64   `gorm:"type:numeric(10,2);not null;check:price_per_night >= 0" json:"price_per_night"`

	Bedrooms  int `gorm:"not null;check:bedrooms >= 0" json:"bedrooms"`
	Bathrooms int `gorm:"not null;check:bathrooms >= 0" json:"bathrooms"`
	MaxGuests int `gorm:"not null;check:max_guests >= 0" json:"max_guests"`

	AvailableFrom time.Time `gorm:"type:date;not null" json:"available_from"`
	AvailableTo   time.Time `gorm:"type:date;not null" json:"available_to"`

	Bookings []Booking `gorm:"foreignKey:ListingID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:ListingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// AverageRating is the mean rating of the loaded Reviews, rounded to two
// decimals. 0.0 when the listing has no reviews yet.
func (l *Listing) AverageRating() float64 {
	if len(l.Reviews) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range l.Reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(l.Reviews))
	return math.Round(avg*100) / 100
}

// DeleteListingCascade removes a listing together with everything it owns:
// its reviews first, then its bookings, then the listing row itself.
func DeleteListingCascade(tx *gorm.DB, listingID uuid.UUID) error {
	if err := tx.Where("listing_id = ?", listingID).Delete(&Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("listing_id = ?", listingID).Delete(&Booking{}).Error; err != nil {
		return err
	}
	return tx.Delete(&Listing{}, "id = ?", listingID).Error
}
