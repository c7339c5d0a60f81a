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

func CreateReview(c *fiber.Ctx) error {
	guestID := currentUserID(c)

	var req serializers.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validation.ValidateReview(req.Rating); err != nil {
		return respondValidationError(c, err)
	}
	listingID, _ := uuid.Parse(req.ListingID)

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, "id = ?", listingID).Error; err != nil {
			return err
		}

		// Pre-check the (listing, guest) pair for a descriptive conflict;
		// the unique index still catches the race.
		var count int64
		if err := tx.Model(&models.Review{}).
			Where("listing_id = ? AND guest_id = ?", listingID, guestID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		newReview = models.Review{
			ListingID: listingID,
			GuestID:   guestID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if req.BookingID != nil {
			bookingID, err := uuid.Parse(*req.BookingID)
			if err != nil {
				return errors.New("invalid booking id")
			}
			var booking models.Booking
			if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
				return err
			}
			newReview.BookingID = &booking.ID
		}
		return tx.Create(&newReview).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this listing"})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing or booking not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.DB.Preload("Listing.Host").Preload("Listing.Reviews").Preload("Guest").
		First(&newReview, "id = ?", newReview.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load review"})
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.NewReviewResponse(newReview))
}

func GetListingReviews(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("listingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	var reviews []models.Review
	if err := database.DB.Preload("Listing.Host").Preload("Listing.Reviews").Preload("Guest").
		Where("listing_id = ?", listingID).Order("created_at desc").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load reviews"})
	}

	resp := make([]serializers.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, serializers.NewReviewResponse(r))
	}
	return c.JSON(resp)
}

func UpdateReview(c *fiber.Ctx) error {
	guestID := currentUserID(c)
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req serializers.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validation.ValidateReview(req.Rating); err != nil {
		return respondValidationError(c, err)
	}

	var review models.Review
	if err := database.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load review"})
	}
	if review.GuestID != guestID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the author can update this review"})
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := database.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update review"})
	}
	return c.JSON(fiber.Map{"review_id": review.ID, "rating": review.Rating, "comment": review.Comment})
}

func DeleteReview(c *fiber.Ctx) error {
	guestID := currentUserID(c)
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var review models.Review
	if err := database.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load review"})
	}
	if review.GuestID != guestID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the author can delete this review"})
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review"})
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
