package routes

import (
	"github.com/stayvia/stayvia/handlers"
	"github.com/stayvia/stayvia/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	review := api.Group("/reviews", middleware.Protected())
	review.Post("", handlers.CreateReview)
	review.Put("/:reviewId", handlers.UpdateReview)
	review.Delete("/:reviewId", handlers.DeleteReview)
}
