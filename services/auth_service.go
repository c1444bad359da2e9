package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/config/environment"
	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"

	"cloud.google.com/go/firestore"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/iterator"
)

type AuthService struct {
	FirestoreClient *firestore.Client
	AuthClient      *firebaseauth.Client
}

// NewAuthService initializes AuthService with Firestore and Firebase Auth clients
func NewAuthService() *AuthService {
	return &AuthService{
		FirestoreClient: database.GetFirestoreClient(),
		AuthClient:      database.GetFirebaseAuthClient(),
	}
}

const sessionTokenTTL = 72 * time.Hour

// RegisterUser creates a user with a bcrypt-hashed password and returns a
// session token
func (a *AuthService) RegisterUser(ctx context.Context, email, username, password string) (*models.User, string, error) {
	iter := a.FirestoreClient.Collection("users").Where("email", "==", email).Limit(1).Documents(ctx)
	_, err := iter.Next()
	if err == nil {
		return nil, "", utils.NewCustomError(http.StatusConflict, "Email already registered")
	} else if err != iterator.Done {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to check existing users")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to hash password")
	}

	docRef := a.FirestoreClient.Collection("users").NewDoc()
	user := models.User{
		ID:        docRef.ID,
		Email:     email,
		Username:  username,
		Password:  string(hashed),
		Favorites: []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := docRef.Set(ctx, user); err != nil {
		log.Printf("Error creating user: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to create user")
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// LoginUser verifies credentials and returns a session token
func (a *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	iter := a.FirestoreClient.Collection("users").Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, "", utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch user")
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to parse user data")
	}
	user.ID = doc.Ref.ID

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GoogleLogin exchanges a Firebase ID token for a session token, provisioning
// the user document on first sign-in
func (a *AuthService) GoogleLogin(ctx context.Context, idToken string) (*models.User, string, error) {
	decoded, err := a.AuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", utils.NewCustomError(http.StatusUnauthorized, "Invalid ID token")
	}

	email, _ := decoded.Claims["email"].(string)
	name, _ := decoded.Claims["name"].(string)

	docRef := a.FirestoreClient.Collection("users").Doc(decoded.UID)
	doc, err := docRef.Get(ctx)

	var user models.User
	if err != nil || !doc.Exists() {
		user = models.User{
			ID:        decoded.UID,
			Email:     email,
			Username:  name,
			Favorites: []string{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := docRef.Set(ctx, user); err != nil {
			log.Printf("Error provisioning Google user %s: %v", decoded.UID, err)
			return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to create user")
		}
	} else {
		if err := doc.DataTo(&user); err != nil {
			return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to parse user data")
		}
		user.ID = doc.Ref.ID
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (a *AuthService) signToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Username,
		"exp":  time.Now().Add(sessionTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(environment.GetJWTSecret()))
	if err != nil {
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to sign session token")
	}
	return signed, nil
}
