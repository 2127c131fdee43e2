package models

import (
	"time"
)

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	SubredditID uint      `gorm:"not null;index" json:"subreddit_id"`
	Subreddit   Subreddit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"subreddit"`
	Title       string    `gorm:"not null" json:"title"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
