package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	id, err := h.store.CreateUser(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "username": req.Username})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.store.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.store.CreateSession(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookie(c, token, int(h.store.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if err := h.store.EndSession(token); err != nil {
			respondError(c, err)
			return
		}
	}

	setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated caller, resolved by LoadUser.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
}
