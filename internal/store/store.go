package store

import (
	"time"

	"gorm.io/gorm"
)

// DefaultSessionTTL bounds how long a session token stays valid after
// it is issued. Stale sessions are cleaned up lazily on lookup.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Store is the data access layer: credentials, sessions, posts, votes,
// comments and subreddits all go through it. It owns no connection state
// of its own; the handle is constructed at the composition root and
// passed in.
type Store struct {
	db         *gorm.DB
	SessionTTL time.Duration
}

func New(conn *gorm.DB) *Store {
	return &Store{
		db:         conn,
		SessionTTL: DefaultSessionTTL,
	}
}
