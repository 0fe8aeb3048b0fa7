package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspetrov/hacksnooze/internal/client/api"
	"github.com/dspetrov/hacksnooze/internal/client/models"
)

func TestSignUp_Success(t *testing.T) {
	fc := &fakeClient{
		SignupProfile: api.Profile{Username: "bob", Name: "Bob"},
		SignupToken:   "tok-signup",
	}
	store := &fakeCreds{}
	svc := NewAuthService(fc, store)

	user, err := svc.SignUp(context.Background(), "bob", "pw", "Bob")
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	require.Equal(t, "Bob", user.Name)
	require.NotEmpty(t, user.LoginToken)
	require.Empty(t, user.Favorites, "signup starts with no favorites")
	require.Empty(t, user.OwnStories, "signup starts with no own stories")

	require.Equal(t, "tok-signup", store.stored.Token, "credentials persisted")
	require.Equal(t, "bob", store.stored.Username)
}

func TestSignUp_UsernameTaken(t *testing.T) {
	fc := &fakeClient{SignupErr: api.ErrUnauthorized}
	svc := NewAuthService(fc, &fakeCreds{})

	_, err := svc.SignUp(context.Background(), "bob", "pw", "Bob")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestLogIn_PopulatesLists(t *testing.T) {
	fc := &fakeClient{
		LoginProfile: api.Profile{
			Username:  "alice",
			Name:      "Alice",
			Favorites: []models.Story{},
			Stories:   []models.Story{{StoryID: "s1", Title: "Mine"}},
		},
		LoginToken: "tok1",
	}
	store := &fakeCreds{}
	svc := NewAuthService(fc, store)

	user, err := svc.LogIn(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok1", user.LoginToken)
	require.Len(t, user.OwnStories, 1)
	require.Equal(t, "s1", user.OwnStories[0].StoryID)
	require.Empty(t, user.Favorites)

	require.Equal(t, "tok1", store.stored.Token)
	require.Equal(t, "alice", store.stored.Username)
}

func TestLogIn_PreservesOrder(t *testing.T) {
	fc := &fakeClient{
		LoginProfile: api.Profile{
			Username:  "alice",
			Favorites: []models.Story{{StoryID: "f2"}, {StoryID: "f1"}},
			Stories:   []models.Story{{StoryID: "s3"}, {StoryID: "s1"}, {StoryID: "s2"}},
		},
		LoginToken: "tok1",
	}
	svc := NewAuthService(fc, &fakeCreds{})

	user, err := svc.LogIn(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, []string{"f2", "f1"}, storyIDs(user.Favorites))
	require.Equal(t, []string{"s3", "s1", "s2"}, storyIDs(user.OwnStories))
}

func TestLogIn_BadCredentials(t *testing.T) {
	fc := &fakeClient{LoginErr: api.ErrUnauthorized}
	store := &fakeCreds{}
	svc := NewAuthService(fc, store)

	_, err := svc.LogIn(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Empty(t, store.stored.Token, "nothing persisted on failure")
}

func TestResume_NoCredentials(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, &fakeCreds{})

	user, err := svc.Resume(context.Background())
	require.NoError(t, err)
	require.Nil(t, user, "absent credentials are a valid empty session")
	require.Zero(t, fc.UserCalls, "no network call for an empty session")
}

func TestResume_PartialCredentials(t *testing.T) {
	fc := &fakeClient{}
	store := &fakeCreds{}
	require.NoError(t, store.Save(context.Background(), credsWith("tok1", "")))
	svc := NewAuthService(fc, store)

	user, err := svc.Resume(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
	require.Zero(t, fc.UserCalls)
}

func TestResume_RoundTrip(t *testing.T) {
	fc := &fakeClient{
		UserProfile: api.Profile{
			Username:  "alice",
			Name:      "Alice",
			Favorites: []models.Story{{StoryID: "s1"}},
			Stories:   []models.Story{{StoryID: "s2"}},
		},
	}
	store := &fakeCreds{}
	require.NoError(t, store.Save(context.Background(), credsWith("tok1", "alice")))
	svc := NewAuthService(fc, store)

	user, err := svc.Resume(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "tok1", user.LoginToken, "stored token reattached, the fetch does not echo it")
	require.True(t, user.IsFavorite("s1"))
	require.Len(t, user.OwnStories, 1)

	require.Equal(t, "tok1", fc.LastUserTok)
	require.Equal(t, "alice", fc.LastUserName)
}

func TestResume_ExpiredToken(t *testing.T) {
	fc := &fakeClient{UserErr: api.ErrUnauthorized}
	store := &fakeCreds{}
	require.NoError(t, store.Save(context.Background(), credsWith("stale", "alice")))
	svc := NewAuthService(fc, store)

	_, err := svc.Resume(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestLogOut_ClearsCredentials(t *testing.T) {
	store := &fakeCreds{}
	require.NoError(t, store.Save(context.Background(), credsWith("tok1", "alice")))
	svc := NewAuthService(&fakeClient{}, store)

	require.NoError(t, svc.LogOut(context.Background()))
	require.Empty(t, store.stored.Token)
	require.Empty(t, store.stored.Username)
}

func TestClose_PropagatesClientError(t *testing.T) {
	wantErr := errors.New("close failed")
	svc := NewAuthService(&fakeClient{CloseErr: wantErr}, &fakeCreds{})
	require.ErrorIs(t, svc.Close(context.Background()), wantErr)
}
