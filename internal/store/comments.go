package store

import (
	"fmt"
	"strings"

	"emberlink/internal/models"
)

const commentSelect = `
SELECT
    c.id AS comments_id,
    c.text AS comments_text,
    c.created_at AS comments_created_at,
    c.updated_at AS comments_updated_at,

    u.id AS users_id,
    u.username AS users_username

FROM comments c
    JOIN users u ON c.user_id = u.id
`

// ListComments returns the newest 25 comments on a post, joined to their
// authors and rendered for display.
func (s *Store) ListComments(postID uint) ([]CommentView, error) {
	query := strings.Join([]string{
		commentSelect,
		"WHERE c.post_id = ?",
		"ORDER BY c.created_at DESC",
		"LIMIT ?",
	}, "\n")

	var rows []commentRow
	if err := s.db.Raw(query, postID, listLimit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]CommentView, len(rows))
	for i, row := range rows {
		views[i] = toCommentView(row)
	}
	return views, nil
}

// CreateComment inserts a comment and returns its id.
func (s *Store) CreateComment(comment models.Comment) (uint, error) {
	if strings.TrimSpace(comment.Text) == "" {
		return 0, fmt.Errorf("%w: comment text must not be empty", ErrValidation)
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return 0, err
	}
	return comment.ID, nil
}
