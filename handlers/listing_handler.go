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

// respondValidationError reports business-rule failures with field-level
// detail; anything else falls back to a plain 400.
func respondValidationError(c *fiber.Ctx, err error) error {
	var verrs *validation.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verrs.Errors,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func CreateListing(c *fiber.Ctx) error {
	hostID := currentUserID(c)

	var req serializers.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	availableFrom, availableTo, err := req.Dates()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}
	if err := validation.ValidateListing(req.PricePerNight, availableFrom, availableTo); err != nil {
		return respondValidationError(c, err)
	}

	listing := models.Listing{
		HostID:        hostID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		AvailableFrom: availableFrom,
		AvailableTo:   availableTo,
	}
	if err := database.DB.Create(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create listing"})
	}

	if err := database.DB.Preload("Host").Preload("Reviews").First(&listing, "id = ?", listing.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.NewListingResponse(listing))
}

func GetListings(c *fiber.Ctx) error {
	var listings []models.Listing
	if err := database.DB.Preload("Host").Preload("Reviews").
		Order("created_at desc").Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listings"})
	}

	resp := make([]serializers.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, serializers.NewListingResponse(l))
	}
	return c.JSON(resp)
}

func GetListing(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	var listing models.Listing
	if err := database.DB.Preload("Host").Preload("Reviews").
		First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}
	return c.JSON(serializers.NewListingResponse(listing))
}

func UpdateListing(c *fiber.Ctx) error {
	hostID := currentUserID(c)
	listingID, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	var req serializers.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	availableFrom, availableTo, err := req.Dates()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, expected YYYY-MM-DD"})
	}
	if err := validation.ValidateListing(req.PricePerNight, availableFrom, availableTo); err != nil {
		return respondValidationError(c, err)
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}
	if listing.HostID != hostID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the host can update this listing"})
	}

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Location = req.Location
	listing.PricePerNight = req.PricePerNight
	listing.Bedrooms = req.Bedrooms
	listing.Bathrooms = req.Bathrooms
	listing.MaxGuests = req.MaxGuests
	listing.AvailableFrom = availableFrom
	listing.AvailableTo = availableTo
	if err := database.DB.Save(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update listing"})
	}

	if err := database.DB.Preload("Host").Preload("Reviews").First(&listing, "id = ?", listing.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}
	return c.JSON(serializers.NewListingResponse(listing))
}

func DeleteListing(c *fiber.Ctx) error {
	hostID := currentUserID(c)
	listingID, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, "id = ?", listingID).Error; err != nil {
			return err
		}
		if listing.HostID != hostID {
			return errors.New("only the host can delete this listing")
		}
		return models.DeleteListingCascade(tx, listingID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Listing deleted"})
}
