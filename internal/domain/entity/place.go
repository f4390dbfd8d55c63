// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Place and PetPolicy, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Place represents a point of interest delivered by the upstream catalog service.
// The ContentID is the normalized catalog identifier; upstream representations
// vary (numeric, string, padded) and are canonicalized before a Place is built.
type Place struct {
	ContentID  string
	Title      string
	Category   string // upstream content-type code, e.g. "12" (attraction), "39" (restaurant)
	AreaCode   string
	Address    string
	Latitude   float64
	Longitude  float64
	ImageURL   string
	ModifiedAt time.Time
}

// Category codes used by the upstream catalog.
const (
	CategoryAttraction   = "12"
	CategoryCulture      = "14"
	CategoryLeisure      = "28"
	CategoryLodging      = "32"
	CategoryShopping     = "38"
	CategoryRestaurant   = "39"
)

// KnownCategory reports whether code is one of the upstream category codes.
func KnownCategory(code string) bool {
	switch code {
	case CategoryAttraction, CategoryCulture, CategoryLeisure,
		CategoryLodging, CategoryShopping, CategoryRestaurant:
		return true
	}
	return false
}
