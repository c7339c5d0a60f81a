package handlers

import (
	"errors"

	"github.com/stayvia/stayvia/database"
	"github.com/stayvia/stayvia/models"
	"github.com/stayvia/stayvia/serializers"
	"github.com/stayvia/stayvia/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateBooking(c *fiber.Ctx) error {
	guestID := currentUserID(c)

	var req serializers.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}
	listingID, _ := uuid.Parse(req.ListingID)

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}

	if err := validation.ValidateBooking(&listing, checkIn, checkOut, req.NumberOfGuests); err != nil {
		return respondValidationError(c, err)
	}

	// total_price is always computed server-side, never taken from input.
	duration := int(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := listing.PricePerNight * float64(duration)

	booking := models.Booking{
		ListingID:      listing.ID,
		GuestID:        guestID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     totalPrice,
		Status:         models.BookingStatusPending,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking violates a storage constraint"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	if err := database.DB.Preload("Listing.Host").Preload("Listing.Reviews").Preload("Guest").
		First(&booking, "id = ?", booking.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load booking"})
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.NewBookingResponse(booking))
}

func GetMyBookings(c *fiber.Ctx) error {
	guestID := currentUserID(c)

	var bookings []models.Booking
	if err := database.DB.Preload("Listing.Host").Preload("Listing.Reviews").Preload("Guest").
		Where("guest_id = ?", guestID).Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}

	resp := make([]serializers.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, serializers.NewBookingResponse(b))
	}
	return c.JSON(resp)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Listing.Host").Preload("Listing.Reviews").Preload("Guest").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load booking"})
	}
	return c.JSON(serializers.NewBookingResponse(booking))
}

// UpdateBookingStatus sets any of the four status values; transitions are
// deliberately free-form.
func UpdateBookingStatus(c *fiber.Ctx) error {
	guestID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req serializers.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load booking"})
	}
	if booking.GuestID != guestID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the guest can update this booking"})
	}

	booking.Status = req.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}
	return c.JSON(fiber.Map{"booking_id": booking.ID, "status": booking.Status})
}

func DeleteBooking(c *fiber.Ctx) error {
	guestID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if booking.GuestID != guestID {
			return errors.New("only the guest can delete this booking")
		}
		return models.DeleteBookingCascade(tx, bookingID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Booking deleted"})
}
