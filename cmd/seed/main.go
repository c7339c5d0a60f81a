package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/stayvia/stayvia/database"
	"github.com/stayvia/stayvia/seeder"
)

func main() {
	defaults := seeder.DefaultOptions()
	users := flag.Int("users", defaults.Users, "Number of users to create")
	listings := flag.Int("listings", defaults.Listings, "Number of listings to create")
	bookings := flag.Int("bookings", defaults.Bookings, "Number of bookings to create")
	reviews := flag.Int("reviews", defaults.Reviews, "Number of reviews to create")
	clear := flag.Bool("clear", false, "Clear existing data before seeding")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	flag.Parse()

	database.ConnectDB()
	database.Migrate()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	result, err := seeder.Run(database.DB, rng, seeder.Options{
		Users:    *users,
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clear,
	})
	if err != nil {
		log.Fatalf("🔥 Seeding failed: %v", err)
	}

	log.Printf("Seeding completed successfully!\n%s", result.Summary())
}
