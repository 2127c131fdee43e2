package store

import (
	"errors"
	"fmt"
	"strings"

	"emberlink/internal/models"

	"gorm.io/gorm"
)

// CreateSubreddit inserts a community and returns its id.
func (s *Store) CreateSubreddit(sub models.Subreddit) (uint, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	if sub.Name == "" {
		return 0, fmt.Errorf("%w: subreddit name must not be empty", ErrValidation)
	}
	if len(sub.Name) > 50 {
		return 0, fmt.Errorf("%w: subreddit name must be at most 50 characters", ErrValidation)
	}

	if err := s.db.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateSubreddit
		}
		return 0, err
	}
	return sub.ID, nil
}

// ListSubreddits returns all communities, newest first.
func (s *Store) ListSubreddits() ([]models.Subreddit, error) {
	var subs []models.Subreddit
	if err := s.db.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// GetSubredditByName looks a community up by its unique name.
func (s *Store) GetSubredditByName(name string) (*models.Subreddit, error) {
	var sub models.Subreddit
	if err := s.db.Where("name = ?", name).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}
