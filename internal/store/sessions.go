package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"emberlink/internal/models"

	"gorm.io/gorm"
)

// newSessionToken draws 32 bytes from the CSPRNG. Session identifiers are
// bearer credentials, so they get a dedicated generator rather than
// piggybacking on a password-salt primitive.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateSession issues an opaque token for the user and persists the
// mapping. The token is the only copy handed to the client.
func (s *Store) CreateSession(userID uint) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	session := models.Session{
		Token:  token,
		UserID: userID,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ResolveSession returns the user owning the token, or (nil, nil) when the
// token is absent, unknown or expired. Absence is a normal outcome here;
// the access-control gate branches on it.
func (s *Store) ResolveSession(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	var session models.Session
	err := s.db.Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if s.SessionTTL > 0 && time.Since(session.CreatedAt) > s.SessionTTL {
		// Stale row: clean it up and treat the token as unknown.
		if err := s.db.Delete(&models.Session{}, session.ID).Error; err != nil {
			log.Printf("failed to delete expired session %d: %v", session.ID, err)
		}
		return nil, nil
	}

	user := session.User
	user.Password = ""
	return &user, nil
}

// EndSession deletes the session row. Deleting a token that does not
// exist is not an error.
func (s *Store) EndSession(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
