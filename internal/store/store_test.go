package store

import (
	"testing"

	"emberlink/internal/db"
	"emberlink/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens an in-memory SQLite database with the full schema.
// Capped to one connection so every query sees the same memory database,
// with foreign keys switched on so referential constraints behave like
// the production database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(conn))

	return New(conn)
}

// seedUser registers a user directly through the credential store and
// returns its id.
func seedUser(t *testing.T, s *Store, username string) uint {
	t.Helper()
	id, err := s.CreateUser(username, "password123")
	require.NoError(t, err)
	return id
}

func seedSubreddit(t *testing.T, s *Store, name string) uint {
	t.Helper()
	id, err := s.CreateSubreddit(models.Subreddit{Name: name, Description: name + " things"})
	require.NoError(t, err)
	return id
}

func seedPost(t *testing.T, s *Store, userID, subID uint, title string) uint {
	t.Helper()
	id, err := s.CreatePost(models.Post{
		UserID:      userID,
		SubredditID: subID,
		Title:       title,
		URL:         "http://example.com/" + title,
	})
	require.NoError(t, err)
	return id
}
