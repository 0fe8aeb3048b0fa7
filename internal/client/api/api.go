// Package api implements the HTTP adapter for the Hacker-or-Snooze API.
// It maps the remote JSON contract to typed records and typed errors; it
// performs no state keeping beyond the base URL and the underlying
// http.Client.
package api

import (
	"context"

	"github.com/dspetrov/hacksnooze/internal/client/models"
)

// Profile is the user record as returned by the API. The login token is
// never part of a profile; auth endpoints return it separately and the
// profile fetch does not echo it back.
type Profile struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
	Favorites []models.Story `json:"favorites"`
	Stories   []models.Story `json:"stories"`
}

// Client is the remote API surface the application depends on.
//
// Contract:
//   - Stories: fetch the global feed, no auth.
//   - CreateStory/DeleteStory: mutate the feed under a bearer token.
//   - Signup/Login: account lifecycle, return the profile and a fresh token.
//   - User: fetch a profile using the token as a query credential.
//   - AddFavorite/RemoveFavorite: per-user favorite set under a token.
//
// All methods honor context cancellation. Failures are reported through the
// sentinel errors in this package (ErrUnavailable, ErrUnauthorized,
// ErrNotFound), matchable with errors.Is.
type Client interface {
	Close() error
	Stories(ctx context.Context) ([]models.Story, error)
	CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error)
	DeleteStory(ctx context.Context, token string, storyID string) error
	Signup(ctx context.Context, username, password, name string) (Profile, string, error)
	Login(ctx context.Context, username, password string) (Profile, string, error)
	User(ctx context.Context, token string, username string) (Profile, error)
	AddFavorite(ctx context.Context, token string, username string, storyID string) error
	RemoveFavorite(ctx context.Context, token string, username string, storyID string) error
}
