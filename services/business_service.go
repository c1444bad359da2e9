package services

import (
	"context"
	"log"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type BusinessService struct {
	FirestoreClient *firestore.Client
}

// NewBusinessService initializes BusinessService with the Firestore client
func NewBusinessService() *BusinessService {
	return &BusinessService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

const earthRadiusKm = 6371.0 // Radius of Earth in km

const nearbyRadiusKm = 3.0

// Haversine formula to calculate distance between two lat/lng points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// CreateBusiness saves a new listing; the caller becomes its owner
func (s *BusinessService) CreateBusiness(ctx context.Context, business *models.BusinessProfile) (*models.BusinessProfile, error) {
	if business.BusinessType != "" && !models.ValidBusinessType(business.BusinessType) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Unknown business type")
	}
	if len(business.PhotoURLs) > models.MaxBusinessPhotos {
		return nil, utils.NewCustomError(http.StatusBadRequest, "A listing can hold at most 10 photos")
	}

	docRef := s.FirestoreClient.Collection("businesses").NewDoc()
	business.ID = docRef.ID
	business.Emails = strings.Join(SplitContactList(business.Emails), ", ")
	business.Phones = strings.Join(SplitContactList(business.Phones), ", ")
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt
	if business.Latitude != 0 || business.Longitude != 0 {
		business.Geohash = geohash.Encode(business.Latitude, business.Longitude)
	}

	if _, err := docRef.Set(ctx, business); err != nil {
		log.Printf("Error saving business: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save business")
	}
	return business, nil
}

// UpdateBusiness rewrites a listing's profile; only its owner may do so
func (s *BusinessService) UpdateBusiness(ctx context.Context, businessID, ownerID string, updated *models.BusinessProfile) (*models.BusinessProfile, error) {
	existing, err := s.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, utils.NewCustomError(http.StatusForbidden, "Only the owner can update this listing")
	}
	if updated.BusinessType != "" && !models.ValidBusinessType(updated.BusinessType) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Unknown business type")
	}
	if len(updated.PhotoURLs) > models.MaxBusinessPhotos {
		return nil, utils.NewCustomError(http.StatusBadRequest, "A listing can hold at most 10 photos")
	}

	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.Emails = strings.Join(SplitContactList(updated.Emails), ", ")
	updated.Phones = strings.Join(SplitContactList(updated.Phones), ", ")
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	if updated.Latitude != 0 || updated.Longitude != 0 {
		updated.Geohash = geohash.Encode(updated.Latitude, updated.Longitude)
	}

	if _, err := s.FirestoreClient.Collection("businesses").Doc(businessID).Set(ctx, updated); err != nil {
		log.Printf("Error updating business %s: %v", businessID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update business")
	}
	return updated, nil
}

// GetBusinessByID fetches one listing
func (s *BusinessService) GetBusinessByID(ctx context.Context, businessID string) (*models.BusinessProfile, error) {
	doc, err := s.FirestoreClient.Collection("businesses").Doc(businessID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewNotFoundError("Business not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch business")
	}

	var business models.BusinessProfile
	if err := doc.DataTo(&business); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse business data")
	}
	business.ID = doc.Ref.ID
	return &business, nil
}

// GetBusinessesByIDs fetches listings for a set of ids in batches of 10,
// Firestore's limit for "in" queries
func (s *BusinessService) GetBusinessesByIDs(ctx context.Context, businessIDs []string) ([]models.BusinessProfile, error) {
	var businesses []models.BusinessProfile
	batchSize := 10

	for i := 0; i < len(businessIDs); i += batchSize {
		end := i + batchSize
		if end > len(businessIDs) {
			end = len(businessIDs)
		}

		iter := s.FirestoreClient.Collection("businesses").
			Where("id", "in", businessIDs[i:end]).Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, err
			}

			var business models.BusinessProfile
			if err := doc.DataTo(&business); err != nil {
				return nil, err
			}
			business.ID = doc.Ref.ID
			businesses = append(businesses, business)
		}
	}

	return businesses, nil
}

// SearchBusinesses runs the directory matcher over all listings. Firestore
// cannot do substring queries, so candidates are filtered in memory, the same
// way the screens filter the fetched collection.
func (s *BusinessService) SearchBusinesses(ctx context.Context, query models.BusinessQuery) ([]models.BusinessProfile, error) {
	iter := s.FirestoreClient.Collection("businesses").Documents(ctx)
	var matched []models.BusinessProfile

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error fetching businesses: %v", err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch businesses")
		}

		var business models.BusinessProfile
		if err := doc.DataTo(&business); err != nil {
			log.Printf("Skipping malformed business doc %s: %v", doc.Ref.ID, err)
			continue
		}
		business.ID = doc.Ref.ID

		if MatchBusiness(business, query) {
			matched = append(matched, business)
		}
	}

	return matched, nil
}

// GetNearbyBusinesses returns listings within 3 km, nearest first, using a
// geohash prefix query narrowed by a haversine pass
func (s *BusinessService) GetNearbyBusinesses(ctx context.Context, latitude, longitude float64, userID string) ([]map[string]interface{}, error) {
	targetGeoHash := geohash.Encode(latitude, longitude)
	geohashPrefix := targetGeoHash[:5] // ~3 km cell

	iter := s.FirestoreClient.Collection("businesses").
		Where("geohash", ">=", geohashPrefix).
		Where("geohash", "<=", geohashPrefix+"~").
		Documents(ctx)

	var businesses []map[string]interface{}
	var businessIDs []string

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to get businesses")
		}

		var business models.BusinessProfile
		if err := doc.DataTo(&business); err != nil {
			continue
		}
		business.ID = doc.Ref.ID

		distance := haversine(latitude, longitude, business.Latitude, business.Longitude)
		if distance <= nearbyRadiusKm {
			entry := map[string]interface{}{
				"business": business,
				"distance": distance,
			}
			businesses = append(businesses, entry)
			businessIDs = append(businessIDs, business.ID)
		}
	}

	// Batch check favorites in one query per 10 ids
	if userID != "" {
		favoritedMap, err := s.GetFavoritedBusinesses(ctx, userID, businessIDs)
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to get favorites")
		}
		for i := range businesses {
			businesses[i]["isFavorite"] = favoritedMap[businessIDs[i]]
		}
	}

	sort.Slice(businesses, func(i, j int) bool {
		return businesses[i]["distance"].(float64) < businesses[j]["distance"].(float64)
	})

	return businesses, nil
}

// GetFavoritedBusinesses reports which of the given businesses are in the
// user's favorites set
func (s *BusinessService) GetFavoritedBusinesses(ctx context.Context, userID string, businessIDs []string) (map[string]bool, error) {
	favoritedMap := make(map[string]bool)
	if len(businessIDs) == 0 {
		return favoritedMap, nil
	}

	doc, err := s.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return favoritedMap, nil
		}
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}

	favorites := make(map[string]bool, len(user.Favorites))
	for _, id := range user.Favorites {
		favorites[id] = true
	}
	for _, id := range businessIDs {
		if favorites[id] {
			favoritedMap[id] = true
		}
	}
	return favoritedMap, nil
}

// SplitContactList splits a comma-separated contact field into trimmed entries
func SplitContactList(raw string) []string {
	parts := strings.Split(raw, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
