package serializers

import "time"

// Create payloads accept only caller-supplied fields. Identifiers,
// timestamps, total_price, and the acting user are all server-assigned.

type CreateListingRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required"`
	Location      string  `json:"location" validate:"required,max=100"`
	PricePerNight float64 `json:"price_per_night" validate:"required"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	MaxGuests     int     `json:"max_guests" validate:"required,gte=1"`
	AvailableFrom string  `json:"available_from" validate:"required,datetime=2006-01-02"`
	AvailableTo   string  `json:"available_to" validate:"required,datetime=2006-01-02"`
}

func (r *CreateListingRequest) Dates() (from, to time.Time, err error) {
	from, err = time.Parse(DateLayout, r.AvailableFrom)
	if err != nil {
		return
	}
	to, err = time.Parse(DateLayout, r.AvailableTo)
	return
}

type CreateBookingRequest struct {
	ListingID      string `json:"listing_id" validate:"required,uuid"`
	CheckInDate    string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests int    `json:"number_of_guests" validate:"required,gte=1"`
}

func (r *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(DateLayout, r.CheckInDate)
	if err != nil {
		return
	}
	checkOut, err = time.Parse(DateLayout, r.CheckOutDate)
	return
}

type CreateReviewRequest struct {
	ListingID string  `json:"listing_id" validate:"required,uuid"`
	BookingID *string `json:"booking_id,omitempty" validate:"omitempty,uuid"`
	Rating    int     `json:"rating" validate:"required"`
	Comment   string  `json:"comment" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed canceled completed"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}
