package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type OfferService struct {
	FirestoreClient *firestore.Client
	BusinessService *BusinessService
}

// NewOfferService initializes a new OfferService
func NewOfferService() *OfferService {
	return &OfferService{
		FirestoreClient: database.GetFirestoreClient(),
		BusinessService: NewBusinessService(),
	}
}

// CreateOffer publishes a promotion under a business the caller owns
func (o *OfferService) CreateOffer(ctx context.Context, ownerID string, offer *models.Offer) (*models.Offer, error) {
	business, err := o.BusinessService.GetBusinessByID(ctx, offer.BusinessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != ownerID {
		return nil, utils.NewCustomError(http.StatusForbidden, "Only the owner can publish offers")
	}

	docRef := o.FirestoreClient.Collection("offers").NewDoc()
	offer.ID = docRef.ID
	offer.CreatedAt = time.Now()

	if _, err := docRef.Set(ctx, offer); err != nil {
		log.Printf("Error saving offer for business %s: %v", offer.BusinessID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save offer")
	}
	return offer, nil
}

// DeleteOffer removes a promotion; only the owning business may do so
func (o *OfferService) DeleteOffer(ctx context.Context, ownerID, offerID string) error {
	doc, err := o.FirestoreClient.Collection("offers").Doc(offerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewNotFoundError("Offer not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch offer")
	}

	var offer models.Offer
	if err := doc.DataTo(&offer); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to parse offer data")
	}

	business, err := o.BusinessService.GetBusinessByID(ctx, offer.BusinessID)
	if err != nil {
		return err
	}
	if business.OwnerID != ownerID {
		return utils.NewCustomError(http.StatusForbidden, "Only the owner can delete offers")
	}

	if _, err := doc.Ref.Delete(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete offer")
	}
	return nil
}

// GetOffers lists promotions, optionally narrowed to one business
func (o *OfferService) GetOffers(ctx context.Context, businessID string) ([]models.Offer, error) {
	var query firestore.Query
	if businessID != "" {
		query = o.FirestoreClient.Collection("offers").Where("businessId", "==", businessID)
	} else {
		query = o.FirestoreClient.Collection("offers").Query
	}

	iter := query.Documents(ctx)
	offers := []models.Offer{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error fetching offers: %v", err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch offers")
		}

		var offer models.Offer
		if err := doc.DataTo(&offer); err != nil {
			continue
		}
		offer.ID = doc.Ref.ID
		offers = append(offers, offer)
	}

	return offers, nil
}
