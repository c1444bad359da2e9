package services

import (
	"context"
	"log"
	"net/http"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type NotificationService struct {
	FirestoreClient *firestore.Client
}

// NewNotificationService initializes NotificationService with the Firestore client
func NewNotificationService() *NotificationService {
	return &NotificationService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// AppendNotification writes an audit record under the business. Records are
// append-only; nothing ever deletes them.
func (n *NotificationService) AppendNotification(ctx context.Context, businessID string, notification models.Notification) error {
	docRef := n.FirestoreClient.Collection("businesses").Doc(businessID).Collection("notifications").NewDoc()
	notification.ID = docRef.ID
	_, err := docRef.Set(ctx, notification)
	return err
}

// GetNotifications lists a business's notifications newest first. Only the
// listing's owner may read them.
func (n *NotificationService) GetNotifications(ctx context.Context, businessID, requesterID string) ([]models.Notification, error) {
	if err := n.requireOwner(ctx, businessID, requesterID); err != nil {
		return nil, err
	}

	iter := n.FirestoreClient.Collection("businesses").Doc(businessID).Collection("notifications").
		OrderBy("createdAt", firestore.Desc).Documents(ctx)

	notifications := []models.Notification{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error fetching notifications for business %s: %v", businessID, err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch notifications")
		}

		var notification models.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse notification data")
		}
		notification.ID = doc.Ref.ID
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkNotificationRead flips the read flag, the only mutation a notification
// ever receives
func (n *NotificationService) MarkNotificationRead(ctx context.Context, businessID, notificationID, requesterID string) error {
	if err := n.requireOwner(ctx, businessID, requesterID); err != nil {
		return err
	}

	docRef := n.FirestoreClient.Collection("businesses").Doc(businessID).Collection("notifications").Doc(notificationID)
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewNotFoundError("Notification not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to update notification")
	}
	return nil
}

func (n *NotificationService) requireOwner(ctx context.Context, businessID, requesterID string) error {
	doc, err := n.FirestoreClient.Collection("businesses").Doc(businessID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return utils.NewNotFoundError("Business not found")
		}
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch business")
	}

	var business models.BusinessProfile
	if err := doc.DataTo(&business); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to parse business data")
	}
	if business.OwnerID != requesterID {
		return utils.NewCustomError(http.StatusForbidden, "Only the owner can view notifications")
	}
	return nil
}
