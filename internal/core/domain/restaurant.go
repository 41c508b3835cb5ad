package domain

import "strings"

// Restaurant is an immutable catalog entry fixed at startup.
type Restaurant struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Cuisine      string            `json:"cuisine"`
	Location     string            `json:"location"`
	Capacity     int               `json:"capacity"`
	Amenities    []string          `json:"amenities"`
	Rating       float64           `json:"rating"`
	PriceRange   string            `json:"price_range"`
	OpeningHours map[string]string `json:"opening_hours,omitempty"`
}

// HasAmenity reports whether the restaurant offers the amenity, ignoring case.
func (r Restaurant) HasAmenity(amenity string) bool {
	for _, a := range r.Amenities {
		if strings.EqualFold(a, amenity) {
			return true
		}
	}
	return false
}

// Summary returns the search view of the restaurant.
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:         r.ID,
		Name:       r.Name,
		Cuisine:    r.Cuisine,
		Location:   r.Location,
		Capacity:   r.Capacity,
		Amenities:  r.Amenities,
		Rating:     r.Rating,
		PriceRange: r.PriceRange,
		Available:  true,
	}
}

// RestaurantSummary is a search result row.
type RestaurantSummary struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Cuisine    string   `json:"cuisine"`
	Location   string   `json:"location"`
	Capacity   int      `json:"capacity"`
	Amenities  []string `json:"amenities"`
	Rating     float64  `json:"rating"`
	PriceRange string   `json:"price_range"`
	Available  bool     `json:"available"`
}

// SearchCriteria filters the catalog. Zero values mean "no filter".
type SearchCriteria struct {
	Cuisine   string
	Location  string
	PartySize int
	Date      string
	Time      string
	Amenities []string
}

// IsEmpty returns true when no filter is set.
func (c SearchCriteria) IsEmpty() bool {
	return c.Cuisine == "" && c.Location == "" && c.PartySize == 0 &&
		c.Date == "" && c.Time == "" && len(c.Amenities) == 0
}

// ChecksAvailability returns true when the slot heuristic applies.
func (c SearchCriteria) ChecksAvailability() bool {
	return c.Date != "" && c.Time != ""
}

// Locations lists the neighbourhoods the catalog covers.
func Locations() []string {
	return []string{"Downtown", "Midtown", "Uptown", "Outskirts"}
}

// Cuisines lists the cuisines the catalog covers.
func Cuisines() []string {
	return []string{"North Indian", "South Indian", "Multicuisine"}
}

// Weekdays lists day names in display order, Monday first.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// DayHours is one line of a weekly schedule.
type DayHours struct {
	Day   string
	Hours string
}

// WeeklyHours returns the opening hours Monday through Sunday. Days without
// an entry are reported as "Closed".
func (r Restaurant) WeeklyHours() []DayHours {
	if len(r.OpeningHours) == 0 {
		return nil
	}
	out := make([]DayHours, 0, 7)
	for _, day := range Weekdays() {
		hours, ok := r.OpeningHours[day]
		if !ok || hours == "" {
			hours = "Closed"
		}
		out = append(out, DayHours{Day: day, Hours: hours})
	}
	return out
}
