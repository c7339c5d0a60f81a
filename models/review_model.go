package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"review_id"`
	ListingID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_listing_guest" json:"-"`
	Listing   Listing    `gorm:"foreignKey:ListingID" json:"listing"`
	GuestID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_listing_guest" json:"-"`
	Guest     User       `gorm:"foreignKey:GuestID" json:"guest"`
	BookingID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"-"`
	Booking   *Booking   `gorm:"foreignKey:BookingID" json:"booking,omitempty"`

	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
