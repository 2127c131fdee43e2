package store

import "errors"

var (
	// ErrValidation covers malformed input caught before it reaches storage.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is deliberately the same for an unknown
	// username and a wrong password, so logins can't be used to probe
	// which usernames exist.
	ErrInvalidCredentials = errors.New("username or password incorrect")

	ErrDuplicateUsername  = errors.New("a user with this username already exists")
	ErrDuplicateSubreddit = errors.New("a subreddit with this name already exists")

	ErrInvalidVoteDirection = errors.New("vote direction must be one of -1, 0, 1")
	ErrMissingSubreddit     = errors.New("post is missing a subreddit")

	// ErrNotFound is a branch target for callers, not a fault; handlers
	// translate it into a 404 at the boundary.
	ErrNotFound = errors.New("record not found")
)
