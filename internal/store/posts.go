package store

import (
	"fmt"
	"sort"
	"strings"

	"emberlink/internal/models"
)

const (
	SortNew = "new"
	SortTop = "top"
	SortHot = "hot"
)

// listLimit caps every listing. No pagination cursor beyond it.
const listLimit = 25

// hotCandidateWindow bounds how many recent posts are ranked in memory
// for the hot sort. Computing the decayed score in the database would tie
// the query to one SQL dialect; a recent window is ranked in Go instead.
const hotCandidateWindow = 100

// PostFilter narrows and orders a post listing. Zero values mean
// "no subreddit scope" and "newest first".
type PostFilter struct {
	SubredditID uint
	Sort        string
}

const postSelect = `
SELECT
    p.id AS posts_id,
    p.title AS posts_title,
    p.url AS posts_url,
    p.created_at AS posts_created_at,
    p.updated_at AS posts_updated_at,

    u.id AS users_id,
    u.username AS users_username,
    u.created_at AS users_created_at,
    u.updated_at AS users_updated_at,

    s.id AS subreddits_id,
    s.name AS subreddits_name,
    s.description AS subreddits_description,
    s.created_at AS subreddits_created_at,
    s.updated_at AS subreddits_updated_at,

    COALESCE(SUM(v.direction), 0) AS vote_score,
    COALESCE(SUM(CASE WHEN v.direction = 1 THEN 1 ELSE 0 END), 0) AS num_upvotes,
    COALESCE(SUM(CASE WHEN v.direction = -1 THEN 1 ELSE 0 END), 0) AS num_downvotes

FROM posts p
    JOIN users u ON p.user_id = u.id
    JOIN subreddits s ON p.subreddit_id = s.id
    LEFT JOIN votes v ON v.post_id = p.id
`

const postGroupBy = "GROUP BY p.id, u.id, s.id"

// ListPosts runs the aggregate join and returns up to 25 response-ready
// posts, optionally scoped to one subreddit and ordered by the requested
// sorting method.
func (s *Store) ListPosts(filter PostFilter) ([]PostView, error) {
	var (
		clauses []string
		args    []interface{}
	)
	clauses = append(clauses, postSelect)
	if filter.SubredditID != 0 {
		clauses = append(clauses, "WHERE p.subreddit_id = ?")
		args = append(args, filter.SubredditID)
	}
	clauses = append(clauses, postGroupBy)

	limit := listLimit
	switch filter.Sort {
	case SortTop:
		clauses = append(clauses, "ORDER BY vote_score DESC, posts_created_at DESC")
	case SortHot:
		// Rank a window of recent posts in Go, see rankHot.
		clauses = append(clauses, "ORDER BY posts_created_at DESC")
		limit = hotCandidateWindow
	case SortNew, "":
		clauses = append(clauses, "ORDER BY posts_created_at DESC")
	default:
		return nil, fmt.Errorf("%w: unknown sorting method %q", ErrValidation, filter.Sort)
	}
	clauses = append(clauses, "LIMIT ?")
	args = append(args, limit)

	var rows []postRow
	if err := s.db.Raw(strings.Join(clauses, "\n"), args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	if filter.Sort == SortHot {
		rows = rankHot(rows, listLimit)
	}

	views := make([]PostView, len(rows))
	for i, row := range rows {
		views[i] = toPostView(row)
	}
	return views, nil
}

// GetPost retrieves a single post with the same aggregate shape as
// ListPosts. Returns ErrNotFound when the id does not match.
func (s *Store) GetPost(postID uint) (*PostView, error) {
	query := strings.Join([]string{postSelect, "WHERE p.id = ?", postGroupBy}, "\n")

	var rows []postRow
	if err := s.db.Raw(query, postID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	view := toPostView(rows[0])
	return &view, nil
}

// CreatePost inserts a post and returns its id. A post always belongs to
// a subreddit, so a zero reference is rejected up front.
func (s *Store) CreatePost(post models.Post) (uint, error) {
	if post.SubredditID == 0 {
		return 0, ErrMissingSubreddit
	}
	if strings.TrimSpace(post.Title) == "" {
		return 0, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}

	if err := s.db.Create(&post).Error; err != nil {
		return 0, err
	}
	return post.ID, nil
}

// rankHot orders candidate rows by vote score decayed over age and keeps
// the best `limit`. The formula is score / (ageHours + 2); ties go to the
// newer post. Input rows are expected newest-first, which sort.SliceStable
// preserves for equal ranks.
func rankHot(rows []postRow, limit int) []postRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return hotRank(rows[i]) > hotRank(rows[j])
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
