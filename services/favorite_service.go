package services

import (
	"context"
	"log"
	"net/http"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FavoriteService struct {
	FirestoreClient     *firestore.Client
	BusinessService     *BusinessService
	NotificationService *NotificationService
}

// NewFavoriteService initializes a new FavoriteService
func NewFavoriteService() *FavoriteService {
	return &FavoriteService{
		FirestoreClient:     database.GetFirestoreClient(),
		BusinessService:     NewBusinessService(),
		NotificationService: NewNotificationService(),
	}
}

// ToggleFavorite flips a business in the user's favorites set and appends the
// matching notification under the business. The set mutation is a single
// atomic ArrayUnion/ArrayRemove, never a whole-array rewrite, so concurrent
// actors cannot clobber each other. The notification is best effort: its
// failure does not roll back the membership change.
func (f *FavoriteService) ToggleFavorite(ctx context.Context, actor *models.Actor, businessID string) (*ToggleResult, error) {
	if actor == nil || actor.ID == "" {
		return nil, utils.NewUnauthenticatedError()
	}

	if _, err := f.BusinessService.GetBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	current, err := f.currentFavorites(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	result, err := Toggle(current, businessID, actor, FavoriteVariant)
	if err != nil {
		return nil, err
	}

	userRef := f.FirestoreClient.Collection("users").Doc(actor.ID)
	var update firestore.Update
	if result.Added {
		update = firestore.Update{Path: "favorites", Value: firestore.ArrayUnion(businessID)}
	} else {
		update = firestore.Update{Path: "favorites", Value: firestore.ArrayRemove(businessID)}
	}
	if _, err := userRef.Update(ctx, []firestore.Update{update}); err != nil {
		log.Printf("Error updating favorites for user %s: %v", actor.ID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update favorites")
	}

	if err := f.NotificationService.AppendNotification(ctx, businessID, result.Notification); err != nil {
		// Membership state stays authoritative; the audit record is lost.
		log.Printf("Failed to append %s notification for business %s: %v", result.Notification.Type, businessID, err)
	}

	return &result, nil
}

// GetFavorites retrieves the user's favorites joined with their listings
func (f *FavoriteService) GetFavorites(ctx context.Context, userID string) ([]models.BusinessProfile, error) {
	favoriteIDs, err := f.currentFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favoriteIDs) == 0 {
		return []models.BusinessProfile{}, nil
	}

	businesses, err := f.BusinessService.GetBusinessesByIDs(ctx, favoriteIDs)
	if err != nil {
		log.Printf("Error fetching favorite businesses: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch favorite businesses")
	}

	// Preserve the favorites order; a dangling id (listing gone) is skipped
	byID := make(map[string]models.BusinessProfile, len(businesses))
	for _, business := range businesses {
		byID[business.ID] = business
	}

	ordered := make([]models.BusinessProfile, 0, len(favoriteIDs))
	for _, id := range favoriteIDs {
		if business, exists := byID[id]; exists {
			ordered = append(ordered, business)
		}
	}
	return ordered, nil
}

func (f *FavoriteService) currentFavorites(ctx context.Context, userID string) ([]string, error) {
	doc, err := f.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []string{}, nil
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch favorites")
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse user data")
	}
	return user.Favorites, nil
}
