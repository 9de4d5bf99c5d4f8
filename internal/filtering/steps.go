package filtering

import (
	"strings"

	"careerprep/internal/assistant"
)

type missingContextFilter struct{}

// NewMissingContext creates a filter that removes listings carrying
// neither a title nor a description. Such listings cannot seed scoring,
// tailoring or question generation.
func NewMissingContext() Filter {
	return &missingContextFilter{}
}

func (f *missingContextFilter) Name() string { return "missing_context" }

func (f *missingContextFilter) IsEnabled() bool { return true }

func (f *missingContextFilter) Apply(jobs *assistant.Jobs) (*assistant.Jobs, Step, error) {
	initial := jobs.Len()

	kept := make([]*assistant.Job, 0, initial)
	for _, job := range jobs.Items {
		if strings.TrimSpace(job.Description) == "" && strings.TrimSpace(job.Title) == "" {
			continue
		}
		kept = append(kept, job)
	}

	result := &assistant.Jobs{Items: kept, Total: jobs.Total}
	return result, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type excludeKeywordsFilter struct {
	keywords []string
}

// NewExcludeKeywords creates a filter that removes listings whose title
// contains one of the configured keywords. An empty keyword list
// disables the step.
func NewExcludeKeywords(keywords []string) Filter {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			cleaned = append(cleaned, strings.ToLower(keyword))
		}
	}
	return &excludeKeywordsFilter{keywords: cleaned}
}

func (f *excludeKeywordsFilter) Name() string { return "exclude_keywords" }

func (f *excludeKeywordsFilter) IsEnabled() bool { return len(f.keywords) > 0 }

func (f *excludeKeywordsFilter) Apply(jobs *assistant.Jobs) (*assistant.Jobs, Step, error) {
	initial := jobs.Len()

	kept := make([]*assistant.Job, 0, initial)
	for _, job := range jobs.Items {
		if f.matches(job.Title) {
			continue
		}
		kept = append(kept, job)
	}

	result := &assistant.Jobs{Items: kept, Total: jobs.Total}
	return result, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *excludeKeywordsFilter) matches(title string) bool {
	title = strings.ToLower(title)
	for _, keyword := range f.keywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}
