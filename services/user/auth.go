package user

import (
	"fmt"
	"regexp"
	"time"

	"moveboard/models"
	"moveboard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 24 * time.Hour

// verifyPasswordComplexity checks that the password contains at least one lowercase letter,
// one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw) // non-alphanumeric
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

// RegisterUser creates a new account, issues a token, and stores its hash.
func (s *DefaultUserService) RegisterUser(user models.User) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if err := verifyPasswordComplexity(user.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		logger.Error("RegisterUser: failed to check for existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = uuid.NewString()
	user.Password = string(hashed)

	token, err := utils.GenerateToken(user.ID, user.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&user); err != nil {
		logger.Error("RegisterUser: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	s.saveSession(user, token)

	return &AuthResponse{
		ID:          user.ID,
		Token:       token,
		Name:        user.Name,
		Email:       user.Email,
		CompanyName: user.CompanyName,
	}, nil
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("AuthenticateUser: lookup failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	usr.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(usr); err != nil {
		logger.Error("AuthenticateUser: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.saveSession(*usr, token)

	return &AuthResponse{
		ID:          usr.ID,
		Token:       token,
		Name:        usr.Name,
		Email:       usr.Email,
		CompanyName: usr.CompanyName,
	}, nil
}

// GetUserByID fetches the account with the password hash cleared.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("account with id %s not found", userID)
	}
	usr.Password = ""
	return usr, nil
}

// RevokeAuthToken signs the account out everywhere: the stored token hash is
// cleared and the session record dropped.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return fmt.Errorf("account with id %s not found", userID)
	}
	usr.TokenHash = ""
	if err := s.Repo.Update(usr); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return utils.DeleteAuthSession(utils.GetAuthCacheClient(), userID)
}

// HasSession reports whether the account currently holds a live session.
func (s *DefaultUserService) HasSession(userID string) bool {
	return utils.HasAuthSession(utils.GetAuthCacheClient(), userID)
}

func (s *DefaultUserService) saveSession(usr models.User, token string) {
	session := utils.AuthSession{
		AccountID: usr.ID,
		Email:     usr.Email,
		TokenHash: utils.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), usr.ID, session); err != nil {
		utils.GetLogger().Error("failed to save auth session", zap.String("accountId", usr.ID), zap.Error(err))
	}
}
