// Package session holds the process-wide UI state: the current user (or
// none, for an anonymous session) and the materialized global feed. The
// view layer owns exactly one Session; it is created anonymous at startup
// and replaced wholesale on login and logout.
package session

import "github.com/dspetrov/hacksnooze/internal/client/models"

type Session struct {
	User    *models.User
	Stories *models.StoryList
}

// New returns an anonymous session with an empty feed.
func New() *Session {
	return &Session{Stories: models.NewStoryList(nil)}
}

// Anonymous reports whether no user is logged in.
func (s *Session) Anonymous() bool {
	return s.User == nil
}

// Reset drops the current user. The feed stays; it never depended on the
// session in the first place.
func (s *Session) Reset() {
	s.User = nil
}
