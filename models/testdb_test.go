package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Listing{}, &Booking{}, &Review{}))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) User {
	t.Helper()
	user := User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestListing(t *testing.T, db *gorm.DB, hostID uuid.UUID) Listing {
	t.Helper()
	listing := Listing{
		HostID:        hostID,
		Title:         "Cozy Apartment in Austin",
		Description:   "Comfortable and clean with all the essentials provided.",
		Location:      "Austin, TX",
		PricePerNight: 120,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		AvailableFrom: date(2026, time.October, 1),
		AvailableTo:   date(2027, time.February, 1),
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}
