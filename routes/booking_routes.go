package routes

import (
	"github.com/stayvia/stayvia/handlers"
	"github.com/stayvia/stayvia/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Patch("/:bookingId/status", handlers.UpdateBookingStatus)
	booking.Delete("/:bookingId", handlers.DeleteBooking)
}
