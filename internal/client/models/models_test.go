package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_IsFavorite(t *testing.T) {
	u := &User{Username: "alice"}

	require.False(t, u.IsFavorite("s1"), "empty favorites")

	u.Favorites = []Story{{StoryID: "s1"}, {StoryID: "s2"}}
	require.True(t, u.IsFavorite("s1"))
	require.True(t, u.IsFavorite("s2"))
	require.False(t, u.IsFavorite("s3"))

	var nilUser *User
	require.False(t, nilUser.IsFavorite("s1"))
}

func TestUser_LoggedIn(t *testing.T) {
	var nilUser *User
	require.False(t, nilUser.LoggedIn())

	u := &User{Username: "alice"}
	require.False(t, u.LoggedIn())

	u.LoginToken = "tok1"
	require.True(t, u.LoggedIn())
}

func TestUser_Favorites(t *testing.T) {
	u := &User{Favorites: []Story{{StoryID: "s1"}}}

	u.AddFavorite(Story{StoryID: "s2"})
	require.Equal(t, "s2", u.Favorites[0].StoryID, "new favorite goes to the front")
	require.Len(t, u.Favorites, 2)

	// marking twice is a no-op
	u.AddFavorite(Story{StoryID: "s2"})
	require.Len(t, u.Favorites, 2)

	u.RemoveFavorite("s1")
	require.Len(t, u.Favorites, 1)
	require.Equal(t, "s2", u.Favorites[0].StoryID)

	u.RemoveFavorite("nope")
	require.Len(t, u.Favorites, 1)
}

func TestUser_OwnStories(t *testing.T) {
	u := &User{OwnStories: []Story{{StoryID: "s1"}}}

	u.PrependOwnStory(Story{StoryID: "s2"})
	require.Equal(t, "s2", u.OwnStories[0].StoryID, "new story goes to the front")
	require.Len(t, u.OwnStories, 2)

	u.RemoveOwnStory("s1")
	require.Len(t, u.OwnStories, 1)
	require.Equal(t, "s2", u.OwnStories[0].StoryID)

	// removing an unknown id is a no-op
	u.RemoveOwnStory("nope")
	require.Len(t, u.OwnStories, 1)
}

func TestStoryList_PrependRemove(t *testing.T) {
	l := NewStoryList([]Story{{StoryID: "a"}, {StoryID: "b"}})

	l.Prepend(Story{StoryID: "c"})
	require.Equal(t, 3, l.Len())
	require.Equal(t, "c", l.Stories[0].StoryID)

	l.Remove("b")
	require.Equal(t, 2, l.Len())
	require.Equal(t, "c", l.Stories[0].StoryID)
	require.Equal(t, "a", l.Stories[1].StoryID)

	l.Remove("missing")
	require.Equal(t, 2, l.Len())

	var nilList *StoryList
	require.Equal(t, 0, nilList.Len())
}

func TestStoryList_ByID(t *testing.T) {
	l := NewStoryList([]Story{{StoryID: "a", Title: "Alpha"}, {StoryID: "b"}})

	s, ok := l.ByID("a")
	require.True(t, ok)
	require.Equal(t, "Alpha", s.Title)

	_, ok = l.ByID("missing")
	require.False(t, ok)

	var nilList *StoryList
	_, ok = nilList.ByID("a")
	require.False(t, ok)
}
