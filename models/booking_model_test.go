package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookingDurationDays(t *testing.T) {
	booking := Booking{
		CheckInDate:  date(2026, time.October, 10),
		CheckOutDate: date(2026, time.October, 17),
	}
	assert.Equal(t, 7, booking.DurationDays())
}

func TestBookingCreateRejectsInvertedDates(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host_1")
	guest := createTestUser(t, db, "guest_1")
	listing := createTestListing(t, db, host.ID)

	booking := Booking{
		ListingID:      listing.ID,
		GuestID:        guest.ID,
		CheckInDate:    date(2026, time.October, 10),
		CheckOutDate:   date(2026, time.October, 10),
		NumberOfGuests: 2,
		TotalPrice:     0,
		Status:         BookingStatusPending,
	}
	err := db.Create(&booking).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrCheckConstraintViolated)

	var count int64
	db.Model(&Booking{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected write must not persist")
}

func TestBookingCreateRejectsExcessGuests(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host_1")
	guest := createTestUser(t, db, "guest_1")
	listing := createTestListing(t, db, host.ID) // MaxGuests: 4

	booking := Booking{
		ListingID:      listing.ID,
		GuestID:        guest.ID,
		CheckInDate:    date(2026, time.October, 10),
		CheckOutDate:   date(2026, time.October, 12),
		NumberOfGuests: 5,
		TotalPrice:     240,
		Status:         BookingStatusPending,
	}
	err := db.Create(&booking).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrCheckConstraintViolated)
}

func TestDeleteBookingCascadeRemovesLinkedReview(t *testing.T) {
	db := setupTestDB(t)
	host := createTestUser(t, db, "host_1")
	guest := createTestUser(t, db, "guest_1")
	listing := createTestListing(t, db, host.ID)

	booking := Booking{
		ListingID:      listing.ID,
		GuestID:        guest.ID,
		CheckInDate:    date(2026, time.October, 10),
		CheckOutDate:   date(2026, time.October, 12),
		NumberOfGuests: 2,
		TotalPrice:     240,
		Status:         BookingStatusCompleted,
	}
	require.NoError(t, db.Create(&booking).Error)

	review := Review{
		ListingID: listing.ID,
		GuestID:   guest.ID,
		BookingID: &booking.ID,
		Rating:    4,
		Comment:   "Clean, comfortable, and exactly as described. Great host!",
	}
	require.NoError(t, db.Create(&review).Error)

	require.NoError(t, DeleteBookingCascade(db, booking.ID))

	var bookings, reviews, listings int64
	db.Model(&Booking{}).Count(&bookings)
	db.Model(&Review{}).Count(&reviews)
	db.Model(&Listing{}).Count(&listings)
	assert.Equal(t, int64(0), bookings)
	assert.Equal(t, int64(0), reviews)
	assert.Equal(t, int64(1), listings, "listing is not owned by the booking")
}
