package interview

import (
	"strings"
	"testing"
)

func TestJobContextUsable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		job    JobContext
		usable bool
	}{
		{
			name:   "title only",
			job:    JobContext{Title: "Backend Engineer"},
			usable: true,
		},
		{
			name:   "description only",
			job:    JobContext{Description: "Build APIs"},
			usable: true,
		},
		{
			name:   "both blank",
			job:    JobContext{Title: "  ", Description: "\n"},
			usable: false,
		},
		{
			name:   "company alone is not enough",
			job:    JobContext{Company: Company{DisplayName: "Acme"}},
			usable: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.job.Usable(); got != tt.usable {
				t.Fatalf("expected %v, got %v", tt.usable, got)
			}
		})
	}
}

func TestJobContextRole(t *testing.T) {
	t.Parallel()

	job := JobContext{Title: " Backend Engineer "}
	if job.Role() != "Backend Engineer" {
		t.Fatalf("unexpected role: %q", job.Role())
	}

	job = JobContext{Description: "Build APIs"}
	if job.Role() != "General Technical Role" {
		t.Fatalf("expected fallback role, got %q", job.Role())
	}
}

func TestJobContextSnippet(t *testing.T) {
	t.Parallel()

	short := JobContext{Description: "Build APIs"}
	if short.Snippet() != "Build APIs" {
		t.Fatalf("short description must pass through unchanged")
	}

	long := JobContext{Description: strings.Repeat("я", 1200)}
	snippet := long.Snippet()
	if got := len([]rune(snippet)); got != 1000 {
		t.Fatalf("expected a hard cut at 1000 runes, got %d", got)
	}
	if !strings.HasPrefix(long.Description, snippet) {
		t.Fatalf("snippet must be a prefix of the description")
	}
}
