package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"cleaning-marketplace-server/database"
	"cleaning-marketplace-server/models"
	"cleaning-marketplace-server/utils"
)

// AuthService handles accounts and sessions
type AuthService struct {
	gateway  *database.Gateway
	sessions SessionStore
}

// NewAuthService creates a new auth service
func NewAuthService(gateway *database.Gateway, sessions SessionStore) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions}
}

type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned to the caller after a successful login
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates a new account. Usernames are unique.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	if err := validateInput(in); err != nil {
		return err
	}

	role, ok := models.ParseRole(in.Role)
	if !ok {
		return ValidationError("Invalid role")
	}

	// Hash outside the gateway lock, argon2 is deliberately slow
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return InternalError(err)
	}

	err = s.gateway.Update(ctx, func(doc *models.Document) error {
		if doc.FindUser(in.Username) != nil {
			return ConflictError("Username already exists")
		}
		doc.Users = append(doc.Users, models.User{
			ID:           doc.NextUserID(),
			Username:     in.Username,
			PasswordHash: hash,
			Role:         role,
		})
		return nil
	})
	if err != nil {
		return err
	}

	utils.Logger.WithFields(logrus.Fields{"username": in.Username, "role": role}).Info("👤 User registered")
	return nil
}

// Login verifies credentials and opens a session
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var user models.User
	err := s.gateway.View(ctx, func(doc *models.Document) error {
		found := doc.FindUser(strings.TrimSpace(in.Username))
		if found == nil {
			return AuthError("Invalid credentials")
		}
		user = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(in.Password, user.PasswordHash) {
		utils.Logger.WithField("username", user.Username).Warn("🔒 Failed login attempt")
		return nil, AuthError("Invalid credentials")
	}

	token, err := s.sessions.Create(user.Username)
	if err != nil {
		return nil, InternalError(err)
	}

	utils.Logger.WithField("username", user.Username).Info("🔑 User logged in")
	return &LoginResult{Token: token, User: user.Public()}, nil
}

// Logout revokes a session token. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.sessions.Revoke(token)
}

// Authenticate resolves a bearer token to its user
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	username, ok := s.sessions.Resolve(token)
	if !ok {
		return nil, UnauthenticatedError()
	}

	var user *models.User
	err := s.gateway.View(ctx, func(doc *models.Document) error {
		found := doc.FindUser(username)
		if found == nil {
			return UnauthenticatedError()
		}
		u := *found
		user = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListCleaners returns the public view of every cleaner
func (s *AuthService) ListCleaners(ctx context.Context) ([]models.PublicUser, error) {
	cleaners := []models.PublicUser{}
	err := s.gateway.View(ctx, func(doc *models.Document) error {
		for i := range doc.Users {
			if doc.Users[i].IsCleaner() {
				cleaners = append(cleaners, doc.Users[i].Public())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cleaners, nil
}
