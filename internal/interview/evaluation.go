package interview

import (
	"fmt"

	"careerprep/internal/assistant"
)

// EvaluationResult is the backend's scored evaluation of a submitted
// answer set. Replaced, never merged, on resubmission.
type EvaluationResult struct {
	Score    *float64      `json:"score,omitempty"`
	Feedback string        `json:"feedback,omitempty"`
	Detailed []DetailEntry `json:"detailed_feedback,omitempty"`
}

type DetailEntry struct {
	QuestionID   *int     `json:"question_id,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	FeedbackText string   `json:"feedback_text"`
}

// DisplayID returns the question number shown for this entry. Entries
// without a question id fall back to their 1-based position; the
// fallback is for display only and never used to match a question.
func (d DetailEntry) DisplayID(position int) int {
	if d.QuestionID != nil {
		return *d.QuestionID
	}
	return position + 1
}

// FormatScore renders a 0-100 score as a percentage. An absent score is
// reported as not available rather than coerced to zero.
func FormatScore(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", *score)
}

func resultFromResponse(resp *assistant.EvaluationResponse) *EvaluationResult {
	if resp == nil {
		return &EvaluationResult{}
	}

	result := &EvaluationResult{
		Score:    resp.Score,
		Feedback: resp.Feedback,
	}

	for _, item := range resp.DetailedFeedback {
		if item == nil {
			continue
		}
		result.Detailed = append(result.Detailed, DetailEntry{
			QuestionID:   item.QuestionID,
			Score:        item.Score,
			FeedbackText: item.FeedbackText,
		})
	}

	return result
}
