package store

import (
	"errors"
	"fmt"
	"strings"

	"emberlink/internal/models"
	"emberlink/internal/utils"

	"gorm.io/gorm"
)

// CreateUser hashes the password and persists the new user, returning its
// id. The plaintext never touches the database or the logs.
func (s *Store) CreateUser(username, password string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: username must not be empty", ErrValidation)
	}
	if len(username) > 50 {
		return 0, fmt.Errorf("%w: username must be at most 50 characters", ErrValidation)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Username: username,
		Password: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return user.ID, nil
}

// VerifyCredentials looks the user up by username and checks the password
// against the stored hash. Both failure modes collapse into
// ErrInvalidCredentials. The returned record has its hash cleared.
func (s *Store) VerifyCredentials(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}
