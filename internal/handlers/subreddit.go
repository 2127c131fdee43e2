package handlers

import (
	"net/http"

	"emberlink/internal/models"
	"emberlink/internal/store"

	"github.com/gin-gonic/gin"
)

type SubredditHandler struct {
	store *store.Store
}

func NewSubredditHandler(st *store.Store) *SubredditHandler {
	return &SubredditHandler{store: st}
}

func (h *SubredditHandler) List(c *gin.Context) {
	subs, err := h.store.ListSubreddits()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subreddits": subs})
}

func (h *SubredditHandler) Detail(c *gin.Context) {
	sub, err := h.store.GetSubredditByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

type createSubredditRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *SubredditHandler) Create(c *gin.Context) {
	var req createSubredditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.store.CreateSubreddit(models.Subreddit{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "name": req.Name})
}
