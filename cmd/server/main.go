package main

import (
	"log"
	"os"
	"time"

	"emberlink/internal/db"
	"emberlink/internal/router"
	"emberlink/internal/store"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=emberlink port=5432 sslmode=disable"
	}
	conn, err := db.Open(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	st := store.New(conn)
	if hours := utils.StringToInt(os.Getenv("SESSION_TTL_HOURS")); hours > 0 {
		st.SessionTTL = time.Duration(hours) * time.Hour
	}

	// Initialize Gin
	r := gin.Default()
	router.RegisterRoutes(r, st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("emberlink server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
