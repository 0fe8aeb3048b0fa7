package models

// StoryList wraps the global feed, newest first.
type StoryList struct {
	Stories []Story
}

// NewStoryList builds a list around the given stories, keeping their order.
func NewStoryList(stories []Story) *StoryList {
	return &StoryList{Stories: stories}
}

// Prepend inserts a story at the front of the list.
func (l *StoryList) Prepend(s Story) {
	l.Stories = append([]Story{s}, l.Stories...)
}

// Remove removes the story with the given id from the list.
// Filter-based: removing an id that is not present is a no-op.
func (l *StoryList) Remove(storyID string) {
	filtered := l.Stories[:0]
	for _, s := range l.Stories {
		if s.StoryID != storyID {
			filtered = append(filtered, s)
		}
	}
	l.Stories = filtered
}

// ByID looks up a story by id.
func (l *StoryList) ByID(storyID string) (Story, bool) {
	if l == nil {
		return Story{}, false
	}
	for _, s := range l.Stories {
		if s.StoryID == storyID {
			return s, true
		}
	}
	return Story{}, false
}

// Len returns the number of stories in the list.
func (l *StoryList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Stories)
}
