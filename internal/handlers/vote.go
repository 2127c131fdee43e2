package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/models"
	"emberlink/internal/store"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(st *store.Store) *VoteHandler {
	return &VoteHandler{store: st}
}

type voteRequest struct {
	Direction int `json:"direction"`
}

// Vote upserts the caller's vote on a post and answers with the fresh
// aggregates so clients can update counts in place.
func (h *VoteHandler) Vote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	postID := utils.StringToUint(c.Param("id"))
	if postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction is required"})
		return
	}

	err := h.store.CreateVote(models.Vote{
		PostID:    postID,
		UserID:    user.ID,
		Direction: req.Direction,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.store.GetPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vote_score":    post.VoteScore,
		"num_upvotes":   post.NumUpvotes,
		"num_downvotes": post.NumDownvotes,
	})
}
