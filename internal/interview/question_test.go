package interview

import "testing"

func TestCategoryFromKey(t *testing.T) {
	t.Parallel()

	if categoryFromKey("technical_questions") != CategoryTechnical {
		t.Fatalf("unexpected category for technical key")
	}
	if categoryFromKey("behavioral_questions") != CategoryBehavioral {
		t.Fatalf("unexpected category for behavioral key")
	}
	if categoryFromKey("situational_questions") != CategorySituational {
		t.Fatalf("unexpected category for situational key")
	}
}

func TestSetAnswerReturnsFreshList(t *testing.T) {
	t.Parallel()

	original := []*Question{
		{ID: 1, Category: CategoryTechnical, Prompt: "t1"},
		{ID: 2, Category: CategoryBehavioral, Prompt: "b1"},
	}

	updated := setAnswer(original, 1, "answer")

	if original[0].Answer != "" {
		t.Fatalf("setAnswer must not mutate the original element")
	}
	if updated[0].Answer != "answer" {
		t.Fatalf("expected updated answer, got %q", updated[0].Answer)
	}
	if updated[1] != original[1] {
		t.Fatalf("untouched elements should be shared, not copied")
	}
}

func TestQuestionAnswered(t *testing.T) {
	t.Parallel()

	question := &Question{ID: 1, Answer: "  \t"}
	if question.Answered() {
		t.Fatalf("whitespace-only answer must count as unanswered")
	}

	question.Answer = "done"
	if !question.Answered() {
		t.Fatalf("expected answered")
	}
}
