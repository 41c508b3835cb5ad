// Package catalog holds the fixed FoodieSpot restaurant catalog.
package catalog

import "github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"

// week builds an opening-hours table from Monday through Sunday.
func week(mon, tue, wed, thu, fri, sat, sun string) map[string]string {
	return map[string]string{
		"Monday":    mon,
		"Tuesday":   tue,
		"Wednesday": wed,
		"Thursday":  thu,
		"Friday":    fri,
		"Saturday":  sat,
		"Sunday":    sun,
	}
}

// Opening-hours patterns shared by several restaurants.
func latestHours() map[string]string {
	return week("11:00-23:00", "11:00-23:00", "11:00-23:30", "11:00-23:30", "11:00-24:00", "10:00-24:00", "10:00-23:00")
}

func tajMahalHours() map[string]string {
	return week("11:00-23:00", "11:00-23:00", "11:00-23:00", "11:00-23:00", "11:00-24:00", "10:00-24:00", "10:00-23:00")
}

func lateHours() map[string]string {
	return week("11:00-22:30", "11:00-22:30", "11:00-23:00", "11:00-23:00", "11:00-23:30", "10:00-23:30", "10:00-22:30")
}

func earlyCloseHours() map[string]string {
	return week("11:00-22:00", "11:00-22:00", "11:00-22:30", "11:00-22:30", "11:00-23:00", "10:00-23:00", "10:00-22:00")
}

func breakfastHours() map[string]string {
	return week("07:00-22:00", "07:00-22:00", "07:00-22:30", "07:00-22:30", "07:00-23:00", "07:00-23:00", "07:00-22:00")
}

func chaatCornerHours() map[string]string {
	return week("10:00-22:00", "10:00-22:00", "10:00-22:30", "10:00-22:30", "10:00-23:00", "09:00-23:00", "09:00-22:00")
}

// Restaurants returns a fresh copy of the 25 catalog entries, ordered by id.
func Restaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: 1, Name: "Taj Mahal Bistro", Cuisine: "North Indian", Location: "Downtown", Capacity: 50,
			Amenities: []string{"private dining", "valet parking", "wheelchair accessible"}, Rating: 4.6, PriceRange: "₹400-₹8000",
			OpeningHours: tajMahalHours(),
		},
		{
			ID: 2, Name: "Coastal Spice", Cuisine: "South Indian", Location: "Midtown", Capacity: 45,
			Amenities: []string{"live music", "outdoor seating"}, Rating: 4.5, PriceRange: "₹300-₹5000",
			OpeningHours: lateHours(),
		},
		{
			ID: 3, Name: "Punjab Grill House", Cuisine: "North Indian", Location: "Uptown", Capacity: 60,
			Amenities: []string{"bar", "live tandoor counter"}, Rating: 4.7, PriceRange: "₹350-₹7000",
			OpeningHours: latestHours(),
		},
		{
			ID: 4, Name: "South Palace", Cuisine: "South Indian", Location: "Outskirts", Capacity: 55,
			Amenities: []string{"banquet hall", "outdoor seating"}, Rating: 4.4, PriceRange: "₹250-₹4500",
			OpeningHours: earlyCloseHours(),
		},
		{
			ID: 5, Name: "Classic Dhaba", Cuisine: "North Indian", Location: "Downtown", Capacity: 40,
			Amenities: []string{"river view", "cultural performances"}, Rating: 4.8, PriceRange: "₹500-₹9000",
			OpeningHours: lateHours(),
		},
		{
			ID: 6, Name: "Rajasthani Darbar", Cuisine: "North Indian", Location: "Midtown", Capacity: 65,
			Amenities: []string{"traditional seating", "folk dance shows"}, Rating: 4.3, PriceRange: "₹300-₹6000",
			OpeningHours: latestHours(),
		},
		{
			ID: 7, Name: "Goan Shack", Cuisine: "Multicuisine", Location: "Uptown", Capacity: 5,
			Amenities: []string{"beach theme", "bar"}, Rating: 4.6, PriceRange: "₹400-₹7500",
			OpeningHours: latestHours(),
		},
		{
			ID: 8, Name: "Hyderabad House", Cuisine: "Multicuisine", Location: "Outskirts", Capacity: 70,
			Amenities: []string{"banquet hall", "sheesha lounge"}, Rating: 4.9, PriceRange: "₹450-₹10000",
			OpeningHours: latestHours(),
		},
		{
			ID: 9, Name: "Gujarati Bhavan", Cuisine: "North Indian", Location: "Downtown", Capacity: 50,
			Amenities: []string{"thali service", "vegetarian only"}, Rating: 4.2, PriceRange: "₹200-₹4000",
			OpeningHours: earlyCloseHours(),
		},
		{
			ID: 10, Name: "Kashmiri Kitchen", Cuisine: "North Indian", Location: "Midtown", Capacity: 30,
			Amenities: []string{"mountain view", "hookah"}, Rating: 4.7, PriceRange: "₹500-₹8500",
			OpeningHours: lateHours(),
		},
		{
			ID: 11, Name: "Awadhi Lounge", Cuisine: "Multicuisine", Location: "Uptown", Capacity: 45,
			Amenities: []string{"live ghazals", "royal decor"}, Rating: 4.8, PriceRange: "₹600-₹12000",
			OpeningHours: latestHours(),
		},
		{
			ID: 12, Name: "Konkan Express", Cuisine: "Multicuisine", Location: "Outskirts", Capacity: 40,
			Amenities: []string{"fishing pond", "boat seating"}, Rating: 4.5, PriceRange: "₹350-₹6500",
			OpeningHours: earlyCloseHours(),
		},
		{
			ID: 13, Name: "Retro Dhaba", Cuisine: "Multicuisine", Location: "Downtown", Capacity: 55,
			Amenities: []string{"retro decor", "bar"}, Rating: 4.4, PriceRange: "₹400-₹7000",
			OpeningHours: latestHours(),
		},
		{
			ID: 14, Name: "Rasoi Khana", Cuisine: "North Indian", Location: "Midtown", Capacity: 60,
			Amenities: []string{"live litti chokha counter", "cultural shows"}, Rating: 4.3, PriceRange: "₹250-₹4500",
			OpeningHours: lateHours(),
		},
		{
			ID: 15, Name: "Andhra Spice", Cuisine: "South Indian", Location: "Uptown", Capacity: 50,
			Amenities: []string{"chilli challenge", "bar"}, Rating: 4.7, PriceRange: "₹300-₹6000",
			OpeningHours: latestHours(),
		},
		{
			ID: 16, Name: "Flavours", Cuisine: "North Indian", Location: "Outskirts", Capacity: 35,
			Amenities: []string{"bamboo decor", "live music"}, Rating: 4.6, PriceRange: "₹350-₹5500",
			OpeningHours: earlyCloseHours(),
		},
		{
			ID: 17, Name: "Tadka Tandoor", Cuisine: "Multicuisine", Location: "Downtown", Capacity: 45,
			Amenities: []string{"street food counter", "theater shows"}, Rating: 4.5, PriceRange: "₹200-₹4000",
			OpeningHours: lateHours(),
		},
		{
			ID: 18, Name: "Fuel Blend", Cuisine: "Multicuisine", Location: "Midtown", Capacity: 40,
			Amenities: []string{"Western", "live cooking"}, Rating: 4.4, PriceRange: "₹300-₹5000",
			OpeningHours: latestHours(),
		},
		{
			ID: 19, Name: "Grand Garden", Cuisine: "North Indian", Location: "Uptown", Capacity: 50,
			Amenities: []string{"temple style seating", "vegetarian only"}, Rating: 4.3, PriceRange: "₹150-₹3000",
			OpeningHours: breakfastHours(),
		},
		{
			ID: 20, Name: "Malabari Coast", Cuisine: "South Indian", Location: "Outskirts", Capacity: 60,
			Amenities: []string{"beach view", "spice market"}, Rating: 4.7, PriceRange: "₹400-₹7000",
			OpeningHours: latestHours(),
		},
		{
			ID: 21, Name: "Pahadi Dhaba", Cuisine: "North Indian", Location: "Downtown", Capacity: 30,
			Amenities: []string{"mountain decor", "fireplace"}, Rating: 4.5, PriceRange: "₹350-₹6000",
			OpeningHours: earlyCloseHours(),
		},
		{
			ID: 22, Name: "Mewari Mahal", Cuisine: "North Indian", Location: "Midtown", Capacity: 55,
			Amenities: []string{"royal palace theme", "folk performances"}, Rating: 4.8, PriceRange: "₹500-₹9000",
			OpeningHours: latestHours(),
		},
		{
			ID: 23, Name: "Chaat Corner", Cuisine: "Multicuisine", Location: "Uptown", Capacity: 65,
			Amenities: []string{"live counters", "outdoor seating"}, Rating: 4.2, PriceRange: "₹100-₹2000",
			OpeningHours: chaatCornerHours(),
		},
		{
			ID: 24, Name: "Boat House", Cuisine: "South Indian", Location: "Outskirts", Capacity: 40,
			Amenities: []string{"backwater view", "boat dining"}, Rating: 4.6, PriceRange: "₹400-₹7500",
			OpeningHours: lateHours(),
		},
		{
			ID: 25, Name: "Dilli 6", Cuisine: "North Indian", Location: "Downtown", Capacity: 70,
			Amenities: []string{"street theme", "live chaat counter"}, Rating: 4.9, PriceRange: "₹200-₹5000",
			OpeningHours: latestHours(),
		},
	}
}
