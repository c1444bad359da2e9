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
)

type ReviewService struct {
	FirestoreClient     *firestore.Client
	BusinessService     *BusinessService
	NotificationService *NotificationService
}

// NewReviewService initializes a new ReviewService
func NewReviewService() *ReviewService {
	return &ReviewService{
		FirestoreClient:     database.GetFirestoreClient(),
		BusinessService:     NewBusinessService(),
		NotificationService: NewNotificationService(),
	}
}

// SubmitReview stores an immutable review and notifies the business owner.
// The notification is best effort; the stored review is authoritative.
func (r *ReviewService) SubmitReview(ctx context.Context, actor *models.Actor, businessID string, rating int, comment string) (*models.Review, error) {
	if actor == nil || actor.ID == "" {
		return nil, utils.NewUnauthenticatedError()
	}
	if rating < 1 || rating > 5 {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Rating must be between 1 and 5")
	}
	if _, err := r.BusinessService.GetBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	docRef := r.FirestoreClient.Collection("businesses").Doc(businessID).Collection("reviews").NewDoc()
	review := models.Review{
		ID:         docRef.ID,
		BusinessID: businessID,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}

	if _, err := docRef.Set(ctx, review); err != nil {
		log.Printf("Error saving review for business %s: %v", businessID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save review")
	}

	notification := models.Notification{
		Type:      models.NotificationReview,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: review.CreatedAt,
		Read:      false,
	}
	if err := r.NotificationService.AppendNotification(ctx, businessID, notification); err != nil {
		log.Printf("Failed to append review notification for business %s: %v", businessID, err)
	}

	return &review, nil
}

// GetReviews lists a business's reviews newest first, with the aggregate
// summary for the rating header
func (r *ReviewService) GetReviews(ctx context.Context, businessID string) ([]models.Review, models.ReviewSummary, error) {
	if _, err := r.BusinessService.GetBusinessByID(ctx, businessID); err != nil {
		return nil, models.ReviewSummary{}, err
	}

	iter := r.FirestoreClient.Collection("businesses").Doc(businessID).Collection("reviews").
		OrderBy("createdAt", firestore.Desc).Documents(ctx)

	reviews := []models.Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error fetching reviews for business %s: %v", businessID, err)
			return nil, models.ReviewSummary{}, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch reviews")
		}

		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, models.ReviewSummary{}, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse review data")
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, review)
	}

	return reviews, SummarizeReviews(reviews), nil
}
