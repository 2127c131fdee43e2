package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/models"
	"emberlink/internal/store"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store *store.Store
}

func NewPostHandler(st *store.Store) *PostHandler {
	return &PostHandler{store: st}
}

// List serves the ranked front page. Query params: subreddit (name) and
// sort (new, top, hot).
func (h *PostHandler) List(c *gin.Context) {
	filter := store.PostFilter{Sort: c.Query("sort")}

	if name := c.Query("subreddit"); name != "" {
		sub, err := h.store.GetSubredditByName(name)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.SubredditID = sub.ID
	}

	posts, err := h.store.ListPosts(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *PostHandler) Detail(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))
	if postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.store.GetPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

type createPostRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	SubredditID uint   `json:"subreddit_id"`
}

func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.store.CreatePost(models.Post{
		UserID:      user.ID,
		SubredditID: req.SubredditID,
		Title:       req.Title,
		URL:         req.URL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *PostHandler) ListComments(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))
	if postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	comments, err := h.store.ListComments(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type createCommentRequest struct {
	Text string `json:"text"`
}

func (h *PostHandler) CreateComment(c *gin.Context) {
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

	// Reject comments on posts that do not exist rather than relying on
	// the foreign key error shape.
	if _, err := h.store.GetPost(postID); err != nil {
		respondError(c, err)
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.store.CreateComment(models.Comment{
		PostID: postID,
		UserID: user.ID,
		Text:   req.Text,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
