// Package services contains the application services of the client.
// This file defines the auth service: account lifecycle (signup, login,
// resume, logout) and housekeeping of the persisted session credentials.
package services

import (
	"context"
	"fmt"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/client/repositories/creds"
)

// AuthService defines the account-lifecycle operations.
//
// Contract:
//   - SignUp: create an account, return the authenticated user, persist
//     the session credentials.
//   - LogIn: authenticate, return the user with favorites and own stories
//     populated from the server payload, persist the credentials.
//   - Resume: rebuild the session from persisted credentials. A missing
//     credential pair is a valid empty session, reported as (nil, nil)
//     without any network call.
//   - LogOut: clear the persisted credentials. Discarding in-memory state
//     is the caller's job.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	SignUp(ctx context.Context, username, password, name string) (*models.User, error)
	LogIn(ctx context.Context, username, password string) (*models.User, error)
	Resume(ctx context.Context) (*models.User, error)
	LogOut(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	creds  creds.Repository
}

// NewAuthService constructs an AuthService bound to the given API client
// and credentials store.
func NewAuthService(client api.Client, repo creds.Repository) AuthService {
	return &authService{client: client, creds: repo}
}

// userFromProfile builds a User from an API profile. The token is attached
// separately because profile fetches never echo it back.
func userFromProfile(p api.Profile, token string) *models.User {
	return &models.User{
		Username:   p.Username,
		Name:       p.Name,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		LoginToken: token,
		Favorites:  p.Favorites,
		OwnStories: p.Stories,
	}
}

func (a *authService) SignUp(ctx context.Context, username, password, name string) (*models.User, error) {
	profile, token, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, fmt.Errorf("signup error: %w", err)
	}

	// the signup response carries no story lists, the account starts empty
	user := userFromProfile(profile, token)
	user.Favorites = nil
	user.OwnStories = nil

	if err := a.creds.Save(ctx, creds.Credentials{Token: token, Username: user.Username}); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) LogIn(ctx context.Context, username, password string) (*models.User, error) {
	profile, token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	user := userFromProfile(profile, token)

	if err := a.creds.Save(ctx, creds.Credentials{Token: token, Username: user.Username}); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Resume(ctx context.Context) (*models.User, error) {
	stored, err := a.creds.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("session loading error: %w", err)
	}
	if !stored.Complete() {
		return nil, nil
	}

	profile, err := a.client.User(ctx, stored.Token, stored.Username)
	if err != nil {
		return nil, fmt.Errorf("session resume error: %w", err)
	}
	return userFromProfile(profile, stored.Token), nil
}

func (a *authService) LogOut(ctx context.Context) error {
	return a.creds.Clear(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
