package serializers

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayvia/stayvia/models"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ListingResponse is the full read representation: the host is expanded and
// average_rating is computed from the listing's loaded reviews.
type ListingResponse struct {
	ListingID     uuid.UUID    `json:"listing_id"`
	Host          UserResponse `json:"host"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	PricePerNight float64      `json:"price_per_night"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	MaxGuests     int          `json:"max_guests"`
	AvailableFrom string       `json:"available_from"`
	AvailableTo   string       `json:"available_to"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	AverageRating float64      `json:"average_rating"`
}

type BookingResponse struct {
	BookingID      uuid.UUID       `json:"booking_id"`
	Listing        ListingResponse `json:"listing"`
	Guest          UserResponse    `json:"guest"`
	CheckInDate    string          `json:"check_in_date"`
	CheckOutDate   string          `json:"check_out_date"`
	NumberOfGuests int             `json:"number_of_guests"`
	TotalPrice     float64         `json:"total_price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DurationDays   int             `json:"duration_days"`
}

type ReviewResponse struct {
	ReviewID  uuid.UUID       `json:"review_id"`
	Listing   ListingResponse `json:"listing"`
	Guest     UserResponse    `json:"guest"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// NewListingResponse expects Host and Reviews to be preloaded.
func NewListingResponse(l models.Listing) ListingResponse {
	return ListingResponse{
		ListingID:     l.ID,
		Host:          NewUserResponse(l.Host),
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		MaxGuests:     l.MaxGuests,
		AvailableFrom: l.AvailableFrom.Format(DateLayout),
		AvailableTo:   l.AvailableTo.Format(DateLayout),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		AverageRating: l.AverageRating(),
	}
}

// NewBookingResponse expects Listing (with its Host and Reviews) and Guest
// to be preloaded.
func NewBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      b.ID,
		Listing:        NewListingResponse(b.Listing),
		Guest:          NewUserResponse(b.Guest),
		CheckInDate:    b.CheckInDate.Format(DateLayout),
		CheckOutDate:   b.CheckOutDate.Format(DateLayout),
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		DurationDays:   b.DurationDays(),
	}
}

func NewReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:  r.ID,
		Listing:   NewListingResponse(r.Listing),
		Guest:     NewUserResponse(r.Guest),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
