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

type EventService struct {
	FirestoreClient     *firestore.Client
	BusinessService     *BusinessService
	NotificationService *NotificationService
}

// NewEventService initializes a new EventService
func NewEventService() *EventService {
	return &EventService{
		FirestoreClient:     database.GetFirestoreClient(),
		BusinessService:     NewBusinessService(),
		NotificationService: NewNotificationService(),
	}
}

// CreateEvent publishes an event under a business the caller owns
func (e *EventService) CreateEvent(ctx context.Context, ownerID string, event *models.Event) (*models.Event, error) {
	business, err := e.BusinessService.GetBusinessByID(ctx, event.BusinessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != ownerID {
		return nil, utils.NewCustomError(http.StatusForbidden, "Only the owner can publish events")
	}

	docRef := e.FirestoreClient.Collection("events").NewDoc()
	event.ID = docRef.ID
	event.Attendees = []string{}
	event.CreatedAt = time.Now()

	if _, err := docRef.Set(ctx, event); err != nil {
		log.Printf("Error saving event for business %s: %v", event.BusinessID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to save event")
	}
	return event, nil
}

// DeleteEvent removes an event; only the owning business may do so
func (e *EventService) DeleteEvent(ctx context.Context, ownerID, eventID string) error {
	event, err := e.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}

	business, err := e.BusinessService.GetBusinessByID(ctx, event.BusinessID)
	if err != nil {
		return err
	}
	if business.OwnerID != ownerID {
		return utils.NewCustomError(http.StatusForbidden, "Only the owner can delete events")
	}

	if _, err := e.FirestoreClient.Collection("events").Doc(eventID).Delete(ctx); err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete event")
	}
	return nil
}

// GetEventByID fetches one event
func (e *EventService) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	doc, err := e.FirestoreClient.Collection("events").Doc(eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewNotFoundError("Event not found")
		}
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch event")
	}

	var event models.Event
	if err := doc.DataTo(&event); err != nil {
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to parse event data")
	}
	event.ID = doc.Ref.ID
	return &event, nil
}

// GetEvents lists events, optionally narrowed to one business. When userID is
// set, each event carries whether that user is attending.
func (e *EventService) GetEvents(ctx context.Context, businessID, userID string) ([]models.Event, error) {
	var query firestore.Query
	if businessID != "" {
		query = e.FirestoreClient.Collection("events").Where("businessId", "==", businessID)
	} else {
		query = e.FirestoreClient.Collection("events").Query
	}

	iter := query.Documents(ctx)
	events := []models.Event{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error fetching events: %v", err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch events")
		}

		var event models.Event
		if err := doc.DataTo(&event); err != nil {
			continue
		}
		event.ID = doc.Ref.ID

		if userID != "" {
			for _, attendee := range event.Attendees {
				if attendee == userID {
					event.Attending = true
					break
				}
			}
		}
		events = append(events, event)
	}

	return events, nil
}

// ToggleAttendance flips the actor's membership in the event's attendees set
// and notifies the owning business. Same contract as favorites: atomic
// ArrayUnion/ArrayRemove, best-effort notification.
func (e *EventService) ToggleAttendance(ctx context.Context, actor *models.Actor, eventID string) (*ToggleResult, error) {
	if actor == nil || actor.ID == "" {
		return nil, utils.NewUnauthenticatedError()
	}

	event, err := e.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result, err := Toggle(event.Attendees, actor.ID, actor, AttendanceVariant)
	if err != nil {
		return nil, err
	}

	eventRef := e.FirestoreClient.Collection("events").Doc(eventID)
	var update firestore.Update
	if result.Added {
		update = firestore.Update{Path: "attendees", Value: firestore.ArrayUnion(actor.ID)}
	} else {
		update = firestore.Update{Path: "attendees", Value: firestore.ArrayRemove(actor.ID)}
	}
	if _, err := eventRef.Update(ctx, []firestore.Update{update}); err != nil {
		log.Printf("Error updating attendees for event %s: %v", eventID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update attendance")
	}

	if err := e.NotificationService.AppendNotification(ctx, event.BusinessID, result.Notification); err != nil {
		log.Printf("Failed to append %s notification for business %s: %v", result.Notification.Type, event.BusinessID, err)
	}

	return &result, nil
}
