package store

import (
	"html/template"
	"time"

	"emberlink/internal/utils"
)

// postRow is the flat shape produced by the aggregate join. Column groups
// are prefixed per source table so one scan carries the whole picture.
type postRow struct {
	PostsID        uint      `gorm:"column:posts_id"`
	PostsTitle     string    `gorm:"column:posts_title"`
	PostsURL       string    `gorm:"column:posts_url"`
	PostsCreatedAt time.Time `gorm:"column:posts_created_at"`
	PostsUpdatedAt time.Time `gorm:"column:posts_updated_at"`

	UsersID        uint      `gorm:"column:users_id"`
	UsersUsername  string    `gorm:"column:users_username"`
	UsersCreatedAt time.Time `gorm:"column:users_created_at"`
	UsersUpdatedAt time.Time `gorm:"column:users_updated_at"`

	SubredditsID          uint      `gorm:"column:subreddits_id"`
	SubredditsName        string    `gorm:"column:subreddits_name"`
	SubredditsDescription string    `gorm:"column:subreddits_description"`
	SubredditsCreatedAt   time.Time `gorm:"column:subreddits_created_at"`
	SubredditsUpdatedAt   time.Time `gorm:"column:subreddits_updated_at"`

	VoteScore    int `gorm:"column:vote_score"`
	NumUpvotes   int `gorm:"column:num_upvotes"`
	NumDownvotes int `gorm:"column:num_downvotes"`
}

type commentRow struct {
	CommentsID        uint      `gorm:"column:comments_id"`
	CommentsText      string    `gorm:"column:comments_text"`
	CommentsCreatedAt time.Time `gorm:"column:comments_created_at"`
	CommentsUpdatedAt time.Time `gorm:"column:comments_updated_at"`

	UsersID       uint   `gorm:"column:users_id"`
	UsersUsername string `gorm:"column:users_username"`
}

type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

type SubredditView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostView is the nested, response-ready object handed to the HTTP layer.
// The title is already rendered markdown with emoji aliases substituted.
type PostView struct {
	ID           uint          `json:"id"`
	Title        template.HTML `json:"title"`
	URL          string        `json:"url"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	VoteScore    int           `json:"vote_score"`
	NumUpvotes   int           `json:"num_upvotes"`
	NumDownvotes int           `json:"num_downvotes"`
	User         UserView      `json:"user"`
	Subreddit    SubredditView `json:"subreddit"`
}

type CommentView struct {
	ID        uint          `json:"id"`
	Text      template.HTML `json:"text"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	User      UserView      `json:"user"`
}

// toPostView maps one flat joined row to its nested form. Pure and
// deterministic, so list and single-post retrieval render identically.
func toPostView(row postRow) PostView {
	return PostView{
		ID:           row.PostsID,
		Title:        utils.RenderMarkdown(row.PostsTitle),
		URL:          row.PostsURL,
		CreatedAt:    row.PostsCreatedAt,
		UpdatedAt:    row.PostsUpdatedAt,
		VoteScore:    row.VoteScore,
		NumUpvotes:   row.NumUpvotes,
		NumDownvotes: row.NumDownvotes,
		User: UserView{
			ID:        row.UsersID,
			Username:  row.UsersUsername,
			CreatedAt: row.UsersCreatedAt,
			UpdatedAt: row.UsersUpdatedAt,
		},
		Subreddit: SubredditView{
			ID:          row.SubredditsID,
			Name:        row.SubredditsName,
			Description: row.SubredditsDescription,
			CreatedAt:   row.SubredditsCreatedAt,
			UpdatedAt:   row.SubredditsUpdatedAt,
		},
	}
}

func toCommentView(row commentRow) CommentView {
	return CommentView{
		ID:        row.CommentsID,
		Text:      utils.RenderMarkdown(row.CommentsText),
		CreatedAt: row.CommentsCreatedAt,
		UpdatedAt: row.CommentsUpdatedAt,
		User: UserView{
			ID:       row.UsersID,
			Username: row.UsersUsername,
		},
	}
}
