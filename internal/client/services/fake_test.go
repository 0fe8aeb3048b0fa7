package services

import (
	"context"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/client/repositories/creds"
)

// fakeClient implements api.Client for unit tests. Each method records its
// last arguments and call count and returns the configured result.
type fakeClient struct {
	CloseErr error

	StoriesRet   []models.Story
	StoriesErr   error
	StoriesCalls int

	CreateStoryRet   models.Story
	CreateStoryErr   error
	CreateStoryCalls int
	LastCreateToken  string
	LastCreateDraft  models.StoryDraft

	DeleteStoryErr   error
	DeleteStoryCalls int
	LastDeleteToken  string
	LastDeleteID     string

	SignupProfile api.Profile
	SignupToken   string
	SignupErr     error

	LoginProfile api.Profile
	LoginToken   string
	LoginErr     error

	UserProfile  api.Profile
	UserErr      error
	UserCalls    int
	LastUserTok  string
	LastUserName string

	AddFavErr    error
	AddFavCalls  int
	LastFavID    string
	RemoveFavErr error
	RemoveCalls  int
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Stories(ctx context.Context) ([]models.Story, error) {
	f.StoriesCalls++
	return f.StoriesRet, f.StoriesErr
}

func (f *fakeClient) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	f.CreateStoryCalls++
	f.LastCreateToken = token
	f.LastCreateDraft = draft
	return f.CreateStoryRet, f.CreateStoryErr
}

func (f *fakeClient) DeleteStory(ctx context.Context, token string, storyID string) error {
	f.DeleteStoryCalls++
	f.LastDeleteToken = token
	f.LastDeleteID = storyID
	return f.DeleteStoryErr
}

func (f *fakeClient) Signup(ctx context.Context, username, password, name string) (api.Profile, string, error) {
	return f.SignupProfile, f.SignupToken, f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (api.Profile, string, error) {
	return f.LoginProfile, f.LoginToken, f.LoginErr
}

func (f *fakeClient) User(ctx context.Context, token string, username string) (api.Profile, error) {
	f.UserCalls++
	f.LastUserTok = token
	f.LastUserName = username
	return f.UserProfile, f.UserErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, token string, username string, storyID string) error {
	f.AddFavCalls++
	f.LastFavID = storyID
	return f.AddFavErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token string, username string, storyID string) error {
	f.RemoveCalls++
	f.LastFavID = storyID
	return f.RemoveFavErr
}

// fakeCreds is an in-memory creds.Repository.
type fakeCreds struct {
	stored  creds.Credentials
	LoadErr error
	SaveErr error
}

func (f *fakeCreds) Load(ctx context.Context) (creds.Credentials, error) {
	return f.stored, f.LoadErr
}

func (f *fakeCreds) Save(ctx context.Context, c creds.Credentials) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.stored = c
	return nil
}

func (f *fakeCreds) Clear(ctx context.Context) error {
	f.stored = creds.Credentials{}
	return nil
}

func credsWith(token, username string) creds.Credentials {
	return creds.Credentials{Token: token, Username: username}
}

func storyIDs(stories []models.Story) []string {
	ids := make([]string, 0, len(stories))
	for _, s := range stories {
		ids = append(ids, s.StoryID)
	}
	return ids
}
