package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"emberlink/internal/db"
	"emberlink/internal/middleware"
	"emberlink/internal/router"
	"emberlink/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	r := gin.New()
	router.RegisterRoutes(r, store.New(conn))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("no SESSION cookie in response")
	return nil
}

func signupAndLogin(t *testing.T, r *gin.Engine, username string) *http.Cookie {
	t.Helper()
	w := doJSON(t, r, "POST", "/signup", map[string]string{"username": username, "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/login", map[string]string{"username": username, "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	return sessionCookie(t, w)
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	r := setupApp(t)

	w := doJSON(t, r, "POST", "/signup", map[string]string{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	// The response must never carry the password or its hash.
	assert.NotContains(t, w.Body.String(), "password123")

	// Duplicate signup conflicts.
	w = doJSON(t, r, "POST", "/signup", map[string]string{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Wrong password and unknown user read identically.
	w = doJSON(t, r, "POST", "/login", map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPw := w.Body.String()
	w = doJSON(t, r, "POST", "/login", map[string]string{"username": "nobody", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPw, w.Body.String())

	w = doJSON(t, r, "POST", "/login", map[string]string{"username": "alice", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	w = doJSON(t, r, "GET", "/me", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	w = doJSON(t, r, "POST", "/logout", nil, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The old token is dead after logout.
	w = doJSON(t, r, "GET", "/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrivilegedRoutesRequireSession(t *testing.T) {
	r := setupApp(t)

	for _, route := range []struct{ method, path string }{
		{"POST", "/posts"},
		{"POST", "/posts/1/comments"},
		{"POST", "/posts/1/vote"},
		{"POST", "/subreddits"},
		{"POST", "/logout"},
	} {
		w := doJSON(t, r, route.method, route.path, map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	r := setupApp(t)
	cookie := signupAndLogin(t, r, "alice")

	w := doJSON(t, r, "POST", "/subreddits", map[string]string{
		"name":        "bikes",
		"description": "two wheels",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var subResp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subResp))

	w = doJSON(t, r, "POST", "/posts", map[string]interface{}{
		"title":        "Hi",
		"url":          "http://x",
		"subreddit_id": subResp.ID,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var postResp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &postResp))

	// Post without a subreddit is a 400.
	w = doJSON(t, r, "POST", "/posts", map[string]interface{}{"title": "orphan"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/posts/%d", postResp.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vote_score":0`)

	w = doJSON(t, r, "POST", fmt.Sprintf("/posts/%d/vote", postResp.ID), map[string]int{"direction": 1}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vote_score":1`)
	assert.Contains(t, w.Body.String(), `"num_upvotes":1`)

	w = doJSON(t, r, "POST", fmt.Sprintf("/posts/%d/vote", postResp.ID), map[string]int{"direction": 7}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Voting on a post that does not exist is a 404, not a stored vote.
	w = doJSON(t, r, "POST", "/posts/999999/vote", map[string]int{"direction": 1}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "POST", fmt.Sprintf("/posts/%d/comments", postResp.ID), map[string]string{"text": "nice :bike:"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/posts/%d/comments", postResp.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nice")

	w = doJSON(t, r, "GET", "/posts/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/posts?subreddit=bikes&sort=top", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hi")

	w = doJSON(t, r, "GET", "/posts?subreddit=ghosts", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
