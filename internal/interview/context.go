package interview

import "strings"

const (
	// fallbackRole is sent when the job context carries no title.
	fallbackRole = "General Technical Role"
	// snippetLimit caps the description excerpt sent with a question
	// request. Hard cut, no word-boundary adjustment.
	snippetLimit = 1000
)

// JobContext is the job a user is practicing for, handed over from the
// job-listing screen. It is read-only for the session.
type JobContext struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Company     Company `json:"company,omitempty"`
}

type Company struct {
	DisplayName string `json:"display_name,omitempty"`
}

// Usable reports whether the context can drive a question request: at
// least one of title and description must be present.
func (j JobContext) Usable() bool {
	return strings.TrimSpace(j.Title) != "" || strings.TrimSpace(j.Description) != ""
}

// Role returns the job title used to condition question generation,
// falling back to a generic role when the title is absent.
func (j JobContext) Role() string {
	if title := strings.TrimSpace(j.Title); title != "" {
		return title
	}
	return fallbackRole
}

// Snippet returns the description truncated to at most snippetLimit runes.
func (j JobContext) Snippet() string {
	runes := []rune(j.Description)
	if len(runes) <= snippetLimit {
		return j.Description
	}
	return string(runes[:snippetLimit])
}
