package interview

import (
	"strings"

	"careerprep/internal/assistant"
)

type Category string

const (
	CategoryTechnical   Category = "technical"
	CategoryBehavioral  Category = "behavioral"
	CategorySituational Category = "situational"

	categoryKeySuffix = "_questions"
)

// categoryKeys fixes the flattening order of the generated set.
var categoryKeys = []string{
	"technical_questions",
	"behavioral_questions",
	"situational_questions",
}

// Question is one generated interview question plus the user's answer.
// Questions are created in a batch when a fetch resolves and replaced
// wholesale on re-fetch; they are never reordered.
type Question struct {
	ID       int      `json:"id"`
	Category Category `json:"category"`
	Prompt   string   `json:"question"`
	Answer   string   `json:"answer"`
}

// Answered reports whether the answer is non-blank after trimming.
func (q *Question) Answered() bool {
	return strings.TrimSpace(q.Answer) != ""
}

// Quota is the fixed per-category question count requested from the
// backend.
type Quota struct {
	Technical   int `mapstructure:"technical"`
	Behavioral  int `mapstructure:"behavioral"`
	Situational int `mapstructure:"situational"`
}

func DefaultQuota() Quota {
	return Quota{Technical: 3, Behavioral: 2, Situational: 2}
}

func categoryFromKey(key string) Category {
	return Category(strings.TrimSuffix(key, categoryKeySuffix))
}

// flatten turns the category-keyed set into the session question list:
// categories in fixed order, ids sequential and 1-based across the
// whole flattened sequence.
func flatten(set assistant.GeneratedQuestions) []*Question {
	var questions []*Question

	id := 1
	for _, key := range categoryKeys {
		category := categoryFromKey(key)
		for _, prompt := range set[key] {
			questions = append(questions, &Question{
				ID:       id,
				Category: category,
				Prompt:   prompt,
			})
			id++
		}
	}

	return questions
}

// setAnswer returns a new list with the answer of exactly the matching
// question replaced. Length and order are preserved; an unknown id
// leaves every element untouched.
func setAnswer(questions []*Question, id int, text string) []*Question {
	updated := make([]*Question, len(questions))
	for i, question := range questions {
		if question.ID != id {
			updated[i] = question
			continue
		}

		replaced := *question
		replaced.Answer = text
		updated[i] = &replaced
	}
	return updated
}
