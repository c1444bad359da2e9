package services

import (
	"context"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type UserService struct {
	FirestoreClient *firestore.Client
}

// NewUserService initializes UserService with FirestoreClient
func NewUserService() *UserService {
	return &UserService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// GetUserProfile fetches the signed-in user's profile
func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	doc, err := s.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, err
	}

	var profile models.User
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}
	profile.ID = doc.Ref.ID
	return &profile, nil
}
