package models

import "time"

// BusinessType is the fixed set of directory types a business can register under
type BusinessType string

const (
	BusinessTypeRetail        BusinessType = "retail"
	BusinessTypeFood          BusinessType = "food"
	BusinessTypeServices      BusinessType = "services"
	BusinessTypeEntertainment BusinessType = "entertainment"
	BusinessTypeHealth        BusinessType = "health"
)

// ValidBusinessType reports whether t is one of the registered types
func ValidBusinessType(t string) bool {
	switch BusinessType(t) {
	case BusinessTypeRetail, BusinessTypeFood, BusinessTypeServices,
		BusinessTypeEntertainment, BusinessTypeHealth:
		return true
	}
	return false
}

// BusinessProfile is a public directory listing, owned by the user who onboarded it
type BusinessProfile struct {
	ID           string            `json:"id" firestore:"id"`
	OwnerID      string            `json:"ownerId" firestore:"ownerId"`
	Name         string            `json:"name" firestore:"name"`
	Category     string            `json:"category" firestore:"category"`
	Location     string            `json:"location" firestore:"location"`
	BusinessType string            `json:"businessType" firestore:"businessType"`
	Emails       string            `json:"emails" firestore:"emails"` // comma-separated
	Phones       string            `json:"phones" firestore:"phones"` // comma-separated
	OpeningHours map[string]string `json:"openingHours" firestore:"openingHours"`
	Description  string            `json:"description" firestore:"description"`
	Website      string            `json:"website" firestore:"website"`
	LogoURL      string            `json:"logoUrl" firestore:"logoUrl"`
	PhotoURLs    []string          `json:"photoUrls" firestore:"photoUrls"`
	Latitude     float64           `json:"latitude,omitempty" firestore:"latitude"`
	Longitude    float64           `json:"longitude,omitempty" firestore:"longitude"`
	Geohash      string            `json:"-" firestore:"geohash"`
	CreatedAt    time.Time         `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt" firestore:"updatedAt"`
}

// MaxBusinessPhotos caps the gallery size per listing
const MaxBusinessPhotos = 10

// BusinessQuery is a free-text directory search; empty fields do not filter
type BusinessQuery struct {
	Category     string
	Location     string
	BusinessType string
	// LocationPolicy selects how query tokens are matched against
	// business location tokens; zero value is LocationTokenSubstring.
	LocationPolicy LocationMatchPolicy
}

// LocationMatchPolicy selects the token-coverage rule for location filtering
type LocationMatchPolicy int

const (
	// LocationTokenSubstring covers a query token when it is a substring
	// of some business location token ("αθηνα" covers "αθηνας").
	LocationTokenSubstring LocationMatchPolicy = iota
	// LocationTokenExact requires an equal business location token.
	LocationTokenExact
)

// BusinessProfileDraft is a pre-filled onboarding form scraped from a business website
type BusinessProfileDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Emails      []string `json:"emails"`
	Phones      []string `json:"phones"`
}
