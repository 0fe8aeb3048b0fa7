// Package models defines the client-side story and user types.
package models

// Story is a single story record as returned by the API.
// It carries no behavior; equality for application purposes is by StoryID.
// CreatedAt/UpdatedAt are opaque ISO timestamps and are never parsed.
type Story struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// StoryDraft is the user-provided part of a new story.
type StoryDraft struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}
