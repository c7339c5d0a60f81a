package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stayvia/stayvia/database"
	"github.com/stayvia/stayvia/models"
	"github.com/stayvia/stayvia/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}))
	database.DB = db

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.ListingRoutes(app)
	routes.BookingRoutes(app)
	routes.ReviewRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createListingVia(t *testing.T, app *fiber.App, token string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/listings", token, map[string]any{
		"title":           "Modern Condo in Chicago",
		"description":     "Perfect location with easy access to attractions and transport.",
		"location":        "Chicago, IL",
		"price_per_night": 100,
		"bedrooms":        2,
		"bathrooms":       1,
		"max_guests":      4,
		"available_from":  "2026-10-01",
		"available_to":    "2027-01-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	listingID, _ := body["listing_id"].(string)
	require.NotEmpty(t, listingID)
	return listingID
}

func TestCreateListing(t *testing.T) {
	app := newTestApp(t)
	hostToken := registerAndLogin(t, app, "host_1")

	t.Run("Success", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/listings", hostToken, map[string]any{
			"title":           "Beach House in San Diego",
			"description":     "Fully equipped with modern facilities and stunning views.",
			"location":        "San Diego, CA",
			"price_per_night": 250,
			"bedrooms":        3,
			"bathrooms":       2,
			"max_guests":      6,
			"available_from":  "2026-10-01",
			"available_to":    "2027-01-01",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, 0.0, body["average_rating"], "no reviews yet")
		host := body["host"].(map[string]any)
		assert.Equal(t, "host_1", host["username"])
	})

	t.Run("RejectsInvertedWindow", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/listings", hostToken, map[string]any{
			"title":           "Garden Cottage in Austin",
			"description":     "Charming property with unique character and style.",
			"location":        "Austin, TX",
			"price_per_night": 90,
			"bedrooms":        1,
			"bathrooms":       1,
			"max_guests":      2,
			"available_from":  "2027-01-01",
			"available_to":    "2026-10-01",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsUnauthenticated", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/listings", "", map[string]any{})
		assert.NotEqual(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestCreateBooking(t *testing.T) {
	app := newTestApp(t)
	hostToken := registerAndLogin(t, app, "host_1")
	guestToken := registerAndLogin(t, app, "guest_1")
	listingID := createListingVia(t, app, hostToken)

	t.Run("ComputesTotalPriceServerSide", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/bookings", guestToken, map[string]any{
			"listing_id":       listingID,
			"check_in_date":    "2026-10-10",
			"check_out_date":   "2026-10-14",
			"number_of_guests": 2,
			"total_price":      9999, // must be ignored
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, 400.0, body["total_price"], "4 nights at 100 per night")
		assert.Equal(t, 4.0, body["duration_days"])
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("RejectsInvertedDates", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", guestToken, map[string]any{
			"listing_id":       listingID,
			"check_in_date":    "2026-10-14",
			"check_out_date":   "2026-10-10",
			"number_of_guests": 2,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsExcessGuests", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", guestToken, map[string]any{
			"listing_id":       listingID,
			"check_in_date":    "2026-10-10",
			"check_out_date":   "2026-10-14",
			"number_of_guests": 5,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsDatesOutsideAvailability", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", guestToken, map[string]any{
			"listing_id":       listingID,
			"check_in_date":    "2026-12-30",
			"check_out_date":   "2027-01-05",
			"number_of_guests": 2,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownListingIsNotFound", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", guestToken, map[string]any{
			"listing_id":       "00000000-0000-0000-0000-000000000000",
			"check_in_date":    "2026-10-10",
			"check_out_date":   "2026-10-14",
			"number_of_guests": 2,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateReview(t *testing.T) {
	app := newTestApp(t)
	hostToken := registerAndLogin(t, app, "host_1")
	guestToken := registerAndLogin(t, app, "guest_1")
	listingID := createListingVia(t, app, hostToken)

	t.Run("SuccessThenConflictOnSecond", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/reviews", guestToken, map[string]any{
			"listing_id": listingID,
			"rating":     5,
			"comment":    "Amazing place! Highly recommend to anyone visiting the area.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		listing := body["listing"].(map[string]any)
		assert.Equal(t, 5.0, listing["average_rating"])

		resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/reviews", guestToken, map[string]any{
			"listing_id": listingID,
			"rating":     3,
			"comment":    "Second thoughts.",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("RejectsOutOfRangeRating", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/reviews", guestToken, map[string]any{
			"listing_id": listingID,
			"rating":     6,
			"comment":    "Too good.",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteListingCascadesOverHTTP(t *testing.T) {
	app := newTestApp(t)
	hostToken := registerAndLogin(t, app, "host_1")
	guestToken := registerAndLogin(t, app, "guest_1")
	listingID := createListingVia(t, app, hostToken)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/bookings", guestToken, map[string]any{
		"listing_id":       listingID,
		"check_in_date":    "2026-10-10",
		"check_out_date":   "2026-10-14",
		"number_of_guests": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/reviews", guestToken, map[string]any{
		"listing_id": listingID,
		"rating":     4,
		"comment":    "Great amenities and stunning views. Loved our stay!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("OnlyHostMayDelete", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, "/api/v1/listings/"+listingID, guestToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/listings/"+listingID, hostToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listings, bookings, reviews int64
	database.DB.Model(&models.Listing{}).Count(&listings)
	database.DB.Model(&models.Booking{}).Count(&bookings)
	database.DB.Model(&models.Review{}).Count(&reviews)
	assert.Zero(t, listings)
	assert.Zero(t, bookings)
	assert.Zero(t, reviews)
}
