package interview

import (
	"testing"

	"careerprep/internal/assistant"
)

func TestDetailEntryDisplayIDFallsBackToPosition(t *testing.T) {
	t.Parallel()

	id := 5
	withID := DetailEntry{QuestionID: &id, FeedbackText: "good"}
	if withID.DisplayID(2) != 5 {
		t.Fatalf("expected the backend id to win, got %d", withID.DisplayID(2))
	}

	withoutID := DetailEntry{FeedbackText: "good"}
	if withoutID.DisplayID(2) != 3 {
		t.Fatalf("expected 1-based position fallback, got %d", withoutID.DisplayID(2))
	}
}

func TestFormatScore(t *testing.T) {
	t.Parallel()

	if FormatScore(nil) != "N/A" {
		t.Fatalf("absent score must render as N/A")
	}

	score := 80.0
	if FormatScore(&score) != "80%" {
		t.Fatalf("unexpected rendering: %s", FormatScore(&score))
	}

	fractional := 79.6
	if FormatScore(&fractional) != "80%" {
		t.Fatalf("unexpected rendering: %s", FormatScore(&fractional))
	}

	zero := 0.0
	if FormatScore(&zero) != "0%" {
		t.Fatalf("an explicit zero is a real score: %s", FormatScore(&zero))
	}
}

func TestResultFromResponseSkipsNilEntries(t *testing.T) {
	t.Parallel()

	resp := &assistant.EvaluationResponse{
		Feedback: "ok",
		DetailedFeedback: []*assistant.DetailedItem{
			nil,
			{FeedbackText: "first"},
		},
	}

	result := resultFromResponse(resp)
	if result.Score != nil {
		t.Fatalf("expected absent score to stay absent")
	}
	if len(result.Detailed) != 1 || result.Detailed[0].FeedbackText != "first" {
		t.Fatalf("unexpected detail entries: %+v", result.Detailed)
	}

	if got := resultFromResponse(nil); got == nil {
		t.Fatalf("nil response must map to an empty result")
	}
}
