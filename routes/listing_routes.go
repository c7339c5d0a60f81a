package routes

import (
	"github.com/stayvia/stayvia/handlers"
	"github.com/stayvia/stayvia/middleware"
	"github.com/gofiber/fiber/v2"
)

func ListingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	listing := api.Group("/listings")
	listing.Get("", handlers.GetListings)
	listing.Get("/:listingId", handlers.GetListing)
	listing.Get("/:listingId/reviews", handlers.GetListingReviews)
	listing.Post("", middleware.Protected(), handlers.CreateListing)
	listing.Put("/:listingId", middleware.Protected(), handlers.UpdateListing)
	listing.Delete("/:listingId", middleware.Protected(), handlers.DeleteListing)
}
