package seeder

var firstNames = []string{
	"John", "Jane", "Mike", "Sarah", "David", "Emma", "Chris", "Lisa", "Tom", "Anna",
}

var lastNames = []string{
	"Smith", "Johnson", "Brown", "Davis", "Wilson", "Miller", "Moore", "Taylor", "Anderson", "Thomas",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
}

var states = []string{"NY", "CA", "TX", "FL", "IL"}

var propertyTypes = []string{
	"Cozy Apartment", "Modern Condo", "Spacious House", "Luxury Villa",
	"Studio Loft", "Beach House", "Mountain Cabin", "City Penthouse",
	"Garden Cottage", "Downtown Flat",
}

var descriptions = []string{
	"Beautiful and comfortable accommodation with all amenities.",
	"Perfect location with easy access to attractions and transport.",
	"Fully equipped with modern facilities and stunning views.",
	"Ideal for families and groups looking for a memorable stay.",
	"Charming property with unique character and style.",
	"Recently renovated with high-end finishes and appliances.",
	"Peaceful retreat away from the hustle and bustle.",
	"Convenient location near restaurants, shops, and entertainment.",
	"Spacious and bright with plenty of natural light.",
	"Comfortable and clean with all the essentials provided.",
}

var reviewComments = []string{
	"Amazing place! Highly recommend to anyone visiting the area.",
	"Clean, comfortable, and exactly as described. Great host!",
	"Perfect location and beautiful property. Will definitely stay again.",
	"Good value for money. Host was very responsive and helpful.",
	"Nice place but could use some updates. Overall satisfied.",
	"Exceeded expectations! Everything was perfect.",
	"Cozy and comfortable. Felt like home away from home.",
	"Great amenities and stunning views. Loved our stay!",
	"Host was wonderful and the place was spotless.",
	"Convenient location with easy access to everything we needed.",
	"Beautiful property with all the essentials. Highly recommended!",
	"Had a wonderful time. The place was exactly as advertised.",
	"Clean, safe, and comfortable. Perfect for our trip.",
	"Outstanding hospitality and attention to detail.",
	"Would definitely book again. Five stars!",
}

// ratingWeights biases seeded ratings toward 4 and 5 stars; index i holds
// the weight of rating i+1 out of a total of 100.
var ratingWeights = [5]int{2, 3, 10, 30, 55}
