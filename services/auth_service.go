package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizzo/models"
)

const bcryptCost = 10

type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Signup creates a new teacher account and returns a session token. The
// username's unique index is the authority on duplicates; the prior lookup
// only produces a friendlier path for the common case.
func (s *AuthService) Signup(username, password string) (string, error) {
	if username == "" {
		return "", validationErr("Username is required")
	}
	if len(password) < 6 {
		return "", validationErr("Password must be at least 6 characters")
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return "", ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrDuplicateUsername
		}
		return "", err
	}

	return s.tokens.Issue(Identity{ID: user.ID, Username: user.Username})
}

// Login verifies credentials and returns a session token. Unknown usernames
// and wrong passwords are deliberately indistinguishable.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(Identity{ID: user.ID, Username: user.Username})
}
