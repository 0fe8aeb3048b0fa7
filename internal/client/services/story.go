package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/models"
)

// StoryService defines the feed and favorite operations.
//
// Contract:
//   - List: fetch the global feed, order as returned by the server.
//   - Add: create a story under the user's token and front-insert it into
//     both the global list and the user's own stories.
//   - Delete: delete by id and remove it from both lists; local removal
//     never fails on a missing id.
//   - Favorite/Unfavorite: toggle server-side, then refresh the user's
//     lists from the profile. No optimistic local patch: the server stays
//     the sole source of truth.
//   - Refresh: re-fetch the profile and replace favorites and own stories
//     wholesale.
//
// Mutating operations are serialized per service instance, so two quick
// favorite toggles cannot interleave their refreshes.
type StoryService interface {
	List(ctx context.Context) (*models.StoryList, error)
	Add(ctx context.Context, list *models.StoryList, user *models.User, draft models.StoryDraft) (models.Story, error)
	Delete(ctx context.Context, list *models.StoryList, user *models.User, storyID string) error
	Favorite(ctx context.Context, user *models.User, storyID string) error
	Unfavorite(ctx context.Context, user *models.User, storyID string) error
	Refresh(ctx context.Context, user *models.User) error
}

type storyService struct {
	client api.Client
	mu     sync.Mutex
}

// NewStoryService constructs a StoryService bound to the given API client.
func NewStoryService(client api.Client) StoryService {
	return &storyService{client: client}
}

func (s *storyService) List(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed fetching error: %w", err)
	}
	return models.NewStoryList(stories), nil
}

func (s *storyService) Add(ctx context.Context, list *models.StoryList, user *models.User, draft models.StoryDraft) (models.Story, error) {
	if !user.LoggedIn() {
		return models.Story{}, fmt.Errorf("%w: login required to post a story", api.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	story, err := s.client.CreateStory(ctx, user.LoginToken, draft)
	if err != nil {
		return models.Story{}, fmt.Errorf("story posting error: %w", err)
	}

	list.Prepend(story)
	user.PrependOwnStory(story)
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, list *models.StoryList, user *models.User, storyID string) error {
	if !user.LoggedIn() {
		return fmt.Errorf("%w: login required to delete a story", api.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.DeleteStory(ctx, user.LoginToken, storyID); err != nil {
		return fmt.Errorf("story deletion error: %w", err)
	}

	list.Remove(storyID)
	user.RemoveOwnStory(storyID)
	return nil
}

func (s *storyService) Favorite(ctx context.Context, user *models.User, storyID string) error {
	if !user.LoggedIn() {
		return fmt.Errorf("%w: login required to favorite a story", api.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.AddFavorite(ctx, user.LoginToken, user.Username, storyID); err != nil {
		return fmt.Errorf("favorite error: %w", err)
	}
	return s.refresh(ctx, user)
}

func (s *storyService) Unfavorite(ctx context.Context, user *models.User, storyID string) error {
	if !user.LoggedIn() {
		return fmt.Errorf("%w: login required to unfavorite a story", api.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.RemoveFavorite(ctx, user.LoginToken, user.Username, storyID); err != nil {
		return fmt.Errorf("unfavorite error: %w", err)
	}
	return s.refresh(ctx, user)
}

func (s *storyService) Refresh(ctx context.Context, user *models.User) error {
	if !user.LoggedIn() {
		return fmt.Errorf("%w: login required", api.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refresh(ctx, user)
}

// refresh replaces the user's lists from the authoritative profile.
// Callers must hold s.mu.
func (s *storyService) refresh(ctx context.Context, user *models.User) error {
	profile, err := s.client.User(ctx, user.LoginToken, user.Username)
	if err != nil {
		return fmt.Errorf("profile refresh error: %w", err)
	}
	user.ReplaceStories(profile.Favorites, profile.Stories)
	return nil
}
