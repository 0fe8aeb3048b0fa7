// Package storylist renders a scrollable, cursorable list of stories.
package storylist

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/client/tui/styles"
)

const (
	starFavorite = "★"
	starPlain    = "☆"
)

// Model is a plain view component, the parent owns key handling and
// calls CursorUp/CursorDown/Selected.
type Model struct {
	stories []models.Story
	user    *models.User

	cursor int
	offset int
	height int

	showDelete bool
	empty      string
}

// New returns a list that shows the given text when it has no stories.
func New(empty string) *Model {
	return &Model{empty: empty, height: 10}
}

// SetStories replaces the content and clamps the cursor.
func (m *Model) SetStories(stories []models.Story) {
	m.stories = stories
	if m.cursor >= len(stories) {
		m.cursor = len(stories) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// SetUser sets the user whose favorites decide the star markers.
// A nil user renders every story with the plain star.
func (m *Model) SetUser(user *models.User) {
	m.user = user
}

// SetHeight sets how many stories are visible at once.
func (m *Model) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	m.height = h
	m.clampOffset()
}

// ShowDelete toggles the delete hint on every line.
func (m *Model) ShowDelete(on bool) {
	m.showDelete = on
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.clampOffset()
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.stories)-1 {
		m.cursor++
	}
	m.clampOffset()
}

// Selected returns the story under the cursor.
func (m *Model) Selected() (models.Story, bool) {
	if len(m.stories) == 0 {
		return models.Story{}, false
	}
	return m.stories[m.cursor], true
}

func (m *Model) Len() int {
	return len(m.stories)
}

func (m *Model) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) View() string {
	if len(m.stories) == 0 {
		return styles.StoryMeta.Render(m.empty)
	}

	var b strings.Builder
	end := m.offset + m.height
	if end > len(m.stories) {
		end = len(m.stories)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.line(i))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) line(i int) string {
	s := m.stories[i]

	star := starPlain
	if m.user != nil && m.user.IsFavorite(s.StoryID) {
		star = starFavorite
	}

	cursor := "  "
	title := styles.StoryTitle.Render(s.Title)
	if i == m.cursor {
		cursor = styles.SelectedLine.Render("> ")
		title = styles.SelectedLine.Render(s.Title)
	}

	meta := fmt.Sprintf("(%s) by %s, posted by %s", HostName(s.URL), s.Author, s.Username)
	line := fmt.Sprintf("%s%s %s %s", cursor, styles.Star.Render(star), title, styles.StoryMeta.Render(meta))
	if m.showDelete {
		line += " " + styles.StatusError.Render("[d]elete")
	}
	return line
}

// HostName extracts the display host of a story URL, without a www prefix.
func HostName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}
