package filtering

import (
	"fmt"

	"careerprep/internal/assistant"

	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to job listings
// before they are offered for selection.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(jobs *assistant.Jobs) (*assistant.Jobs, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, returning the
// resulting job list.
func Run(logger *zap.Logger, steps []Filter, jobs *assistant.Jobs) (*assistant.Jobs, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			if logger != nil {
				logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(jobs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		jobs = next
	}

	return jobs, nil
}
