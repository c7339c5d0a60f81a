package seeder

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/stayvia/stayvia/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is assigned to every generated user.
const DefaultPassword = "password123"

type Options struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

func DefaultOptions() Options {
	return Options{Users: 10, Listings: 20, Bookings: 30, Reviews: 25}
}

// Result reports how many rows were actually created. Bookings and reviews
// may come in under the requested count: booking attempts that overflow the
// availability window are skipped, and review generation stops after three
// attempts per requested review once the unique (listing, guest) pair space
// runs dry.
type Result struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

func (r *Result) Summary() string {
	return fmt.Sprintf("Users: %d\nListings: %d\nBookings: %d\nReviews: %d",
		r.Users, r.Listings, r.Bookings, r.Reviews)
}

// Run populates the store with constraint-consistent sample data. It writes
// through the models directly, so the model-level hooks and storage
// constraints are the only invariant checks on this path. The rng is the
// sole source of randomness; a fixed seed reproduces the same dataset
// against an empty store.
func Run(db *gorm.DB, rng *rand.Rand, opts Options) (*Result, error) {
	if opts.Clear {
		log.Println("Clearing existing data...")
		if err := clear(db); err != nil {
			return nil, fmt.Errorf("clearing existing data: %w", err)
		}
	}

	users, err := createUsers(db, rng, opts.Users)
	if err != nil {
		return nil, fmt.Errorf("creating users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	listings, err := createListings(db, rng, users, opts.Listings)
	if err != nil {
		return nil, fmt.Errorf("creating listings: %w", err)
	}
	log.Printf("Created %d listings", len(listings))

	bookings := createBookings(db, rng, users, listings, opts.Bookings)
	log.Printf("Created %d bookings", bookings)

	reviews := createReviews(db, rng, users, listings, opts.Reviews)
	log.Printf("Created %d reviews", reviews)

	return &Result{
		Users:    len(users),
		Listings: len(listings),
		Bookings: bookings,
		Reviews:  reviews,
	}, nil
}

// clear wipes non-admin data in dependency order: reviews, then bookings,
// then listings, then users. One transaction, so a failure leaves the store
// untouched.
func clear(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&models.Listing{}).Error; err != nil {
			return err
		}
		return tx.Where("is_admin = ?", false).Delete(&models.User{}).Error
	})
}

// createUsers is idempotent per username: re-running keeps existing rows.
func createUsers(db *gorm.DB, rng *rand.Rand, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 1; i <= count; i++ {
		user := models.User{
			Username:  fmt.Sprintf("user_%d", i),
			FirstName: firstNames[rng.Intn(len(firstNames))],
			LastName:  lastNames[rng.Intn(len(lastNames))],
			Email:     fmt.Sprintf("user%d@example.com", i),
			Password:  string(hashed),
		}
		if err := db.Where(models.User{Username: user.Username}).
			FirstOrCreate(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createListings(db *gorm.DB, rng *rand.Rand, users []models.User, count int) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		host := users[rng.Intn(len(users))]
		city := cities[rng.Intn(len(cities))]
		propertyType := propertyTypes[rng.Intn(len(propertyTypes))]
		bedrooms := 1 + rng.Intn(4)

		availableFrom := today().AddDate(0, 0, 1+rng.Intn(30))
		availableTo := availableFrom.AddDate(0, 0, 90+rng.Intn(91))

		listing := models.Listing{
			HostID:        host.ID,
			Title:         fmt.Sprintf("%s in %s", propertyType, city),
			Description:   descriptions[rng.Intn(len(descriptions))],
			Location:      fmt.Sprintf("%s, %s", city, states[rng.Intn(len(states))]),
			PricePerNight: float64(50 + rng.Intn(451)),
			Bedrooms:      bedrooms,
			Bathrooms:     1 + rng.Intn(3),
			MaxGuests:     bedrooms * 2,
			AvailableFrom: availableFrom,
			AvailableTo:   availableTo,
		}
		if err := db.Create(&listing).Error; err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// createBookings makes count attempts. Attempts whose dates overflow the
// availability window, or whose write trips a storage constraint, are
// skipped rather than resampled, so the result can come in under count.
func createBookings(db *gorm.DB, rng *rand.Rand, users []models.User, listings []models.Listing, count int) int {
	if len(users) == 0 || len(listings) == 0 {
		return 0
	}
	created := 0
	for i := 0; i < count; i++ {
		listing := listings[rng.Intn(len(listings))]
		guest, ok := pickGuest(rng, users, listing.HostID)
		if !ok {
			continue
		}

		checkIn := listing.AvailableFrom.AddDate(0, 0, rng.Intn(61))
		duration := 1 + rng.Intn(14)
		checkOut := checkIn.AddDate(0, 0, duration)
		if checkOut.After(listing.AvailableTo) {
			continue
		}

		booking := models.Booking{
			ListingID:      listing.ID,
			GuestID:        guest.ID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: 1 + rng.Intn(listing.MaxGuests),
			TotalPrice:     listing.PricePerNight * float64(duration),
			Status:         models.BookingStatuses[rng.Intn(len(models.BookingStatuses))],
		}
		if err := db.Create(&booking).Error; err != nil {
			// Constraint violations are non-fatal on this best-effort path.
			continue
		}
		created++
	}
	return created
}

// createReviews samples (guest, listing) pairs until count reviews exist or
// the attempt budget of 3×count runs out, which bounds termination once the
// unique pair space is exhausted.
func createReviews(db *gorm.DB, rng *rand.Rand, users []models.User, listings []models.Listing, count int) int {
	if len(users) == 0 || len(listings) == 0 {
		return 0
	}
	created := 0
	maxAttempts := count * 3
	for attempts := 0; created < count && attempts < maxAttempts; attempts++ {
		guest := users[rng.Intn(len(users))]
		listing := listings[rng.Intn(len(listings))]
		if guest.ID == listing.HostID {
			continue
		}

		var existing int64
		if err := db.Model(&models.Review{}).
			Where("listing_id = ? AND guest_id = ?", listing.ID, guest.ID).
			Count(&existing).Error; err != nil || existing > 0 {
			continue
		}

		review := models.Review{
			ListingID: listing.ID,
			GuestID:   guest.ID,
			Rating:    weightedRating(rng),
			Comment:   reviewComments[rng.Intn(len(reviewComments))],
		}
		if err := db.Create(&review).Error; err != nil {
			continue
		}
		created++
	}
	return created
}

// pickGuest returns a user other than the host. It scans the pool from a
// random offset instead of retrying blind draws, so a pool where every user
// is the host cannot loop forever.
func pickGuest(rng *rand.Rand, users []models.User, hostID uuid.UUID) (models.User, bool) {
	offset := rng.Intn(len(users))
	for i := 0; i < len(users); i++ {
		candidate := users[(offset+i)%len(users)]
		if candidate.ID != hostID {
			return candidate, true
		}
	}
	return models.User{}, false
}

func weightedRating(rng *rand.Rand) int {
	n := rng.Intn(100)
	for i, w := range ratingWeights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	return 5
}

// today truncates to a calendar date so seeded ranges line up with the
// date-typed columns.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
