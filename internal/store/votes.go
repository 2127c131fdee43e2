package store

import (
	"errors"

	"emberlink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateVote records or overwrites the caller's vote on a post. A user
// holds at most one vote per post; the (post_id, user_id) uniqueness
// constraint serializes concurrent re-votes, so this is a single upsert
// statement rather than a check-then-insert.
func (s *Store) CreateVote(vote models.Vote) error {
	switch vote.Direction {
	case -1, 0, 1:
	default:
		return ErrInvalidVoteDirection
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
	}).Create(&vote).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		// Voting on a post that does not exist must not leave a row behind.
		return ErrNotFound
	}
	return err
}
