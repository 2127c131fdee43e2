package db

import (
	"log"

	"emberlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and runs migrations. The returned handle is
// owned by the caller and passed down explicitly; nothing in this package
// keeps global connection state.
func Open(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	seedSubreddits(conn)
	return conn, nil
}

// Migrate applies the schema. Split out so tests can run it against
// their own database.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Subreddit{},
		&models.Post{},
		&models.Vote{},
		&models.Comment{},
	)
}

func seedSubreddits(conn *gorm.DB) {
	var count int64
	conn.Model(&models.Subreddit{}).Count(&count)
	if count > 0 {
		log.Println("Subreddits already seeded, skipping")
		return
	}

	subreddits := []models.Subreddit{
		{Name: "programming", Description: "Code, tools and computer things"},
		{Name: "news", Description: "What is happening in the world"},
		{Name: "showoff", Description: "Share something you built"},
		{Name: "casual", Description: "Anything goes"},
	}

	for _, sub := range subreddits {
		if err := conn.Create(&sub).Error; err != nil {
			log.Printf("Failed to create subreddit %s: %v", sub.Name, err)
		}
	}
	log.Println("Initial subreddits created successfully")
}
