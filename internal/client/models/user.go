package models

// User represents the current user together with the story lists the API
// keeps per account. Favorites and OwnStories are independent copies of the
// records in the global feed, keyed by StoryID; they are only brought back
// in sync with the server by re-fetching the profile.
//
// LoginToken is an opaque bearer credential. It is the empty string (never
// a null-style pointer) while the user is not authenticated.
type User struct {
	Username   string
	Name       string
	CreatedAt  string
	UpdatedAt  string
	LoginToken string
	Favorites  []Story
	OwnStories []Story
}

// LoggedIn reports whether the user holds a login token.
// Every mutating operation requires this to be true.
func (u *User) LoggedIn() bool {
	return u != nil && u.LoginToken != ""
}

// IsFavorite reports whether the story with the given id is in Favorites.
// Pure query, no side effects.
func (u *User) IsFavorite(storyID string) bool {
	if u == nil {
		return false
	}
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddFavorite puts a story at the front of Favorites if it is not
// already marked. Adding a marked story is a no-op.
func (u *User) AddFavorite(s Story) {
	if u.IsFavorite(s.StoryID) {
		return
	}
	u.Favorites = append([]Story{s}, u.Favorites...)
}

// RemoveFavorite removes the story with the given id from Favorites.
// Filter-based: removing an unmarked id is a no-op.
func (u *User) RemoveFavorite(storyID string) {
	filtered := u.Favorites[:0]
	for _, s := range u.Favorites {
		if s.StoryID != storyID {
			filtered = append(filtered, s)
		}
	}
	u.Favorites = filtered
}

// ReplaceStories replaces Favorites and OwnStories wholesale,
// preserving the order of the provided slices.
func (u *User) ReplaceStories(favorites []Story, ownStories []Story) {
	u.Favorites = favorites
	u.OwnStories = ownStories
}

// PrependOwnStory inserts a story at the front of OwnStories (newest first).
func (u *User) PrependOwnStory(s Story) {
	u.OwnStories = append([]Story{s}, u.OwnStories...)
}

// RemoveOwnStory removes the story with the given id from OwnStories.
// Filter-based: removing an id that is not present is a no-op.
func (u *User) RemoveOwnStory(storyID string) {
	filtered := u.OwnStories[:0]
	for _, s := range u.OwnStories {
		if s.StoryID != storyID {
			filtered = append(filtered, s)
		}
	}
	u.OwnStories = filtered
}
