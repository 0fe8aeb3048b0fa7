package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/models"
)

type fakeAuth struct {
	user      *models.User
	loginErr  error
	signupErr error
	resumeErr error

	lastUsername string
	lastPassword string
	lastName     string
	logoutCalls  int
}

func (f *fakeAuth) SignUp(ctx context.Context, username, password, name string) (*models.User, error) {
	f.lastUsername, f.lastPassword, f.lastName = username, password, name
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.user, nil
}

func (f *fakeAuth) LogIn(ctx context.Context, username, password string) (*models.User, error) {
	f.lastUsername, f.lastPassword = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeAuth) Resume(ctx context.Context) (*models.User, error) {
	return f.user, f.resumeErr
}

func (f *fakeAuth) LogOut(ctx context.Context) error {
	f.logoutCalls++
	return nil
}

func (f *fakeAuth) Close(ctx context.Context) error { return nil }

type fakeStories struct {
	list     *models.StoryList
	listErr  error
	addStory models.Story
	addErr   error
	delErr   error
	favErr   error

	favCalls   int
	unfavCalls int
}

func (f *fakeStories) List(ctx context.Context) (*models.StoryList, error) {
	return f.list, f.listErr
}

func (f *fakeStories) Add(ctx context.Context, list *models.StoryList, user *models.User, draft models.StoryDraft) (models.Story, error) {
	return f.addStory, f.addErr
}

func (f *fakeStories) Delete(ctx context.Context, list *models.StoryList, user *models.User, storyID string) error {
	return f.delErr
}

func (f *fakeStories) Favorite(ctx context.Context, user *models.User, storyID string) error {
	f.favCalls++
	return f.favErr
}

func (f *fakeStories) Unfavorite(ctx context.Context, user *models.User, storyID string) error {
	f.unfavCalls++
	return f.favErr
}

func (f *fakeStories) Refresh(ctx context.Context, user *models.User) error { return nil }

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func withJSONOutput(t *testing.T) {
	t.Helper()
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })
}

func alice() *models.User {
	return &models.User{
		Username:   "alice",
		Name:       "Alice",
		LoginToken: "tok1",
		Favorites:  []models.Story{{StoryID: "s2", Title: "Second", URL: "http://other.org", Author: "bob", Username: "bob"}},
		OwnStories: []models.Story{{StoryID: "s1", Title: "First"}},
	}
}

func TestRunLogin(t *testing.T) {
	stubPassword(t, "secret1")
	auth := &fakeAuth{user: alice()}
	e := &env{auth: auth}

	var out bytes.Buffer
	err := runLogin(context.Background(), e, &out, "alice")

	require.NoError(t, err)
	require.Equal(t, "alice", auth.lastUsername)
	require.Equal(t, "secret1", auth.lastPassword)
	require.Contains(t, out.String(), "logged in as alice")
}

func TestRunLoginBadCredentials(t *testing.T) {
	stubPassword(t, "wrong")
	e := &env{auth: &fakeAuth{loginErr: api.ErrUnauthorized}}

	err := runLogin(context.Background(), e, &bytes.Buffer{}, "alice")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestRunSignup(t *testing.T) {
	stubPassword(t, "secret1")
	auth := &fakeAuth{user: alice()}
	e := &env{auth: auth}

	var out bytes.Buffer
	err := runSignup(context.Background(), e, &out, "alice", "Alice")

	require.NoError(t, err)
	require.Equal(t, "Alice", auth.lastName)
	require.Contains(t, out.String(), "account created")
}

func TestRunLogout(t *testing.T) {
	auth := &fakeAuth{}
	e := &env{auth: auth}

	var out bytes.Buffer
	require.NoError(t, runLogout(context.Background(), e, &out))
	require.Equal(t, 1, auth.logoutCalls)
	require.Contains(t, out.String(), "logged out")
}

func TestRunWhoami(t *testing.T) {
	e := &env{auth: &fakeAuth{user: alice()}}

	var out bytes.Buffer
	require.NoError(t, runWhoami(context.Background(), e, &out))
	require.Contains(t, out.String(), "alice (Alice)")
	require.Contains(t, out.String(), "stories: 1, favorites: 1")
}

func TestRunWhoamiNotLoggedIn(t *testing.T) {
	e := &env{auth: &fakeAuth{}}

	err := runWhoami(context.Background(), e, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not logged in")
}

func TestRunWhoamiJSONKeepsTokenLocal(t *testing.T) {
	withJSONOutput(t)
	e := &env{auth: &fakeAuth{user: alice()}}

	var out bytes.Buffer
	require.NoError(t, runWhoami(context.Background(), e, &out))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	require.Equal(t, "alice", payload["username"])
	require.NotContains(t, out.String(), "tok1")
}

func TestRunStories(t *testing.T) {
	list := models.NewStoryList([]models.Story{
		{StoryID: "s1", Title: "First", URL: "http://www.example.com", Author: "alice", Username: "alice"},
		{StoryID: "s2", Title: "Second", URL: "http://other.org", Author: "bob", Username: "bob"},
	})
	e := &env{stories: &fakeStories{list: list}}

	var out bytes.Buffer
	require.NoError(t, runStories(context.Background(), e, &out))

	s := out.String()
	require.Contains(t, s, " 1. First (example.com)")
	require.Contains(t, s, " 2. Second (other.org)")
	require.Contains(t, s, "posted by bob")
}

func TestRunStoriesJSON(t *testing.T) {
	withJSONOutput(t)
	list := models.NewStoryList([]models.Story{{StoryID: "s1", Title: "First"}})
	e := &env{stories: &fakeStories{list: list}}

	var out bytes.Buffer
	require.NoError(t, runStories(context.Background(), e, &out))

	var stories []models.Story
	require.NoError(t, json.Unmarshal(out.Bytes(), &stories))
	require.Len(t, stories, 1)
	require.Equal(t, "s1", stories[0].StoryID)
}

func TestRunStoriesEmpty(t *testing.T) {
	e := &env{stories: &fakeStories{list: models.NewStoryList(nil)}}

	var out bytes.Buffer
	require.NoError(t, runStories(context.Background(), e, &out))
	require.Contains(t, out.String(), "no stories")
}

func TestRunPost(t *testing.T) {
	e := &env{
		auth:    &fakeAuth{user: alice()},
		stories: &fakeStories{addStory: models.Story{StoryID: "s9", Title: "Ninth"}},
	}

	var out bytes.Buffer
	err := runPost(context.Background(), e, &out, models.StoryDraft{Author: "alice", Title: "Ninth", URL: "http://x.org"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "posted Ninth (s9)")
}

func TestRunPostNotLoggedIn(t *testing.T) {
	e := &env{auth: &fakeAuth{}, stories: &fakeStories{}}

	err := runPost(context.Background(), e, &bytes.Buffer{}, models.StoryDraft{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not logged in")
}

func TestRunDelete(t *testing.T) {
	e := &env{auth: &fakeAuth{user: alice()}, stories: &fakeStories{}}

	var out bytes.Buffer
	require.NoError(t, runDelete(context.Background(), e, &out, "s1"))
	require.Contains(t, out.String(), "deleted s1")
}

func TestRunDeleteMissing(t *testing.T) {
	e := &env{auth: &fakeAuth{user: alice()}, stories: &fakeStories{delErr: api.ErrNotFound}}

	err := runDelete(context.Background(), e, &bytes.Buffer{}, "nope")
	require.ErrorIs(t, err, api.ErrNotFound)
}

func TestRunFavorite(t *testing.T) {
	stories := &fakeStories{}
	e := &env{auth: &fakeAuth{user: alice()}, stories: stories}

	var out bytes.Buffer
	require.NoError(t, runFavorite(context.Background(), e, &out, "s2", true))
	require.Equal(t, 1, stories.favCalls)
	require.Contains(t, out.String(), "favorited s2")

	out.Reset()
	require.NoError(t, runFavorite(context.Background(), e, &out, "s2", false))
	require.Equal(t, 1, stories.unfavCalls)
	require.Contains(t, out.String(), "unfavorited s2")
}

func TestRunFavorites(t *testing.T) {
	e := &env{auth: &fakeAuth{user: alice()}}

	var out bytes.Buffer
	require.NoError(t, runFavorites(context.Background(), e, &out))
	require.Contains(t, out.String(), "Second")
}
