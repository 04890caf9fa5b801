package user

import (
	userRepo "moveboard/database/repository/user"
	"moveboard/models"
)

// AuthResponse contains the account's ID, token, and display details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

type UserService interface {
	RegisterUser(user models.User) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	RevokeAuthToken(userID string) error
	// HasSession is the session-presence check used by the dashboard shell.
	HasSession(userID string) bool
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
