package jobs

import (
	"log"
	"time"

	"github.com/stayvia/stayvia/database"
	"github.com/stayvia/stayvia/models"
)

// CompleteFinishedBookings marks confirmed bookings whose check-out date has
// passed as completed. Status transitions stay free-form elsewhere; this is
// just a convenience sweep.
func CompleteFinishedBookings() {
	log.Println("Running job: CompleteFinishedBookings...")

	result := database.DB.Model(&models.Booking{}).
		Where("status = ? AND check_out_date < ?", models.BookingStatusConfirmed, time.Now()).
		Update("status", models.BookingStatusCompleted)

	if result.Error != nil {
		log.Printf("Error completing finished bookings: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d booking(s) as completed.", result.RowsAffected)
	}
}
