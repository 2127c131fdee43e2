package router

import (
	"emberlink/internal/handlers"
	"emberlink/internal/middleware"
	"emberlink/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st *store.Store) {
	r.Use(middleware.LoadUser(st))

	// Handlers
	authHandler := handlers.NewAuthHandler(st)
	postHandler := handlers.NewPostHandler(st)
	voteHandler := handlers.NewVoteHandler(st)
	subredditHandler := handlers.NewSubredditHandler(st)

	// Public Routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/me", authHandler.Me)

	r.GET("/posts", postHandler.List)
	r.GET("/posts/:id", postHandler.Detail)
	r.GET("/posts/:id/comments", postHandler.ListComments)
	r.GET("/subreddits", subredditHandler.List)
	r.GET("/subreddits/:name", subredditHandler.Detail)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/logout", authHandler.Logout)
		authorized.POST("/posts", postHandler.Create)
		authorized.POST("/posts/:id/comments", postHandler.CreateComment)
		authorized.POST("/posts/:id/vote", voteHandler.Vote)
		authorized.POST("/subreddits", subredditHandler.Create)
	}
}
