package handlers

import (
	"errors"
	"log"
	"net/http"

	"emberlink/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError maps core errors onto HTTP statuses. Unknown failures get
// a generic message; details stay in the server log so credentials and
// tokens never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrInvalidVoteDirection),
		errors.Is(err, store.ErrMissingSubreddit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateUsername),
		errors.Is(err, store.ErrDuplicateSubreddit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
