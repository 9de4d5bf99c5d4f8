package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"careerprep/internal/assistant"
	"careerprep/internal/filtering"
	"careerprep/internal/interview"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptBack           = "back"
	PromptPractice       = "Practice interview for this job"
	PromptMatchScore     = "Score my resume against this job"
	PromptTailorResume   = "Tailor my resume for this job"
	PromptRelatedCourses = "Find related courses"
	PromptJobsToFile     = "Dump job listings to file"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job listings and pick one to work with",
	Run: func(cmd *cobra.Command, _ []string) {
		jobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().StringP("keywords", "k", "", "search keywords (default from config)")
	jobsCmd.Flags().StringP("location", "l", "", "location to search in")
	jobsCmd.Flags().String("country", "", "two-letter country code")
	jobsCmd.Flags().Int("page", 0, "result page to fetch")
	jobsCmd.Flags().String("resume", "", "resume file used for scoring and tailoring")
}

func jobs(cmd *cobra.Command) {
	ctx := context.Background()

	logg, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logg.Fatal("getting a config", zap.Error(err))
	}

	client := newClient(ctx, config, logg)
	params := searchParams(cmd, config)

	logg.Info("starting the search", zap.String("keywords", params.Keywords))

	listings, err := client.FetchJobs(params)
	if err != nil {
		logg.Fatal("fetching job listings", zap.Error(err))
	}

	logg.Info("getting job listings", zap.Int("count", listings.Len()), zap.Int("total_results", listings.Total))

	listings, err = filtering.Run(logg, prepareFilters(config), listings)
	if err != nil {
		logg.Fatal("filtering failed", zap.Error(err))
	}

	if listings.Len() == 0 {
		logg.Info("exiting", zap.String("reason", "no jobs left to choose from"))
		return
	}

	resume := cmd.Flag("resume").Value.String()

	if err := browse(client, config, listings, resume, logg); err != nil {
		logg.Info("exiting", zap.Error(err))
	}
}

// browse runs the listing selection loop. Choosing a job opens an action
// menu; the practice action hands the selected job over as the one-shot
// context of a new interview session.
func browse(client *assistant.Client, config *Config, listings *assistant.Jobs, resume string, logg *zap.Logger) error {
	for {
		items := make([]string, 0, listings.Len()+2)
		for _, job := range listings.Items {
			label := fmt.Sprintf("%s %s / %s / %s",
				job.ID, job.Title, job.Company.DisplayName, job.Location.DisplayName,
			)
			items = append(items, label)
		}
		items = append(items, PromptJobsToFile, PromptBack)

		jobPrompt := promptui.Select{
			Label: "Choose a job and press ENTER",
			Items: items,
		}

		_, selected, err := jobPrompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptBack:
			return nil
		case PromptJobsToFile:
			filename, err := listings.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump listings to file: %w", err)
			}
			logg.Info("dumping listings to file", zap.String("filename", filename))
		default:
			jobID := strings.Split(selected, " ")[0]

			job := listings.FindByID(jobID)
			if job == nil {
				return fmt.Errorf("there is no such job id %s", jobID)
			}

			if err := jobActions(client, config, job, resume, logg); err != nil {
				return err
			}
		}
	}
}

func jobActions(client *assistant.Client, config *Config, job *assistant.Job, resume string, logg *zap.Logger) error {
	for {
		actionPrompt := promptui.Select{
			Label: fmt.Sprintf("%s / %s", job.Title, job.Company.DisplayName),
			Items: []string{PromptPractice, PromptMatchScore, PromptTailorResume, PromptRelatedCourses, PromptBack},
		}

		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptBack:
			return nil
		case PromptPractice:
			if err := runPractice(client, quotaFromConfig(config), jobContext(job), logg); err != nil {
				logg.Info("practice session ended", zap.Error(err))
			}
		case PromptMatchScore:
			path, err := resolveResume(resume)
			if err != nil {
				return err
			}
			resume = path

			score, err := client.MatchScore(path, job.Description)
			if err != nil {
				fmt.Printf("Scoring failed: %v\n", err)
				continue
			}
			fmt.Printf("Match score: %.2f%%\n", score)
		case PromptTailorResume:
			path, err := resolveResume(resume)
			if err != nil {
				return err
			}
			resume = path

			if err := tailorResume(client, path, job.Title, job.Description, "", logg); err != nil {
				fmt.Printf("Tailoring failed: %v\n", err)
			}
		case PromptRelatedCourses:
			prediction, err := client.PredictCourses(&assistant.CourseRequest{
				JobTitle:       job.Title,
				JobDescription: job.Description,
			})
			if err != nil {
				fmt.Printf("Course prediction failed: %v\n", err)
				continue
			}
			renderCourses(prediction)
		}
	}
}

func jobContext(job *assistant.Job) interview.JobContext {
	ctx := interview.JobContext{
		Title:       job.Title,
		Description: job.Description,
	}
	ctx.Company.DisplayName = job.Company.DisplayName
	return ctx
}

func resolveResume(current string) (string, error) {
	if current != "" {
		return current, nil
	}

	entry := promptui.Prompt{Label: "Path to your resume file"}
	path, err := entry.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(path), nil
}

func searchParams(cmd *cobra.Command, config *Config) *assistant.SearchParams {
	params := &assistant.SearchParams{}
	if config.Jobs != nil {
		params.Keywords = config.Jobs.Keywords
		params.Location = config.Jobs.Location
		params.Country = config.Jobs.Country
		params.Page = config.Jobs.Page
	}

	if v := cmd.Flag("keywords").Value.String(); v != "" {
		params.Keywords = v
	}
	if v := cmd.Flag("location").Value.String(); v != "" {
		params.Location = v
	}
	if v := cmd.Flag("country").Value.String(); v != "" {
		params.Country = v
	}
	if v, err := cmd.Flags().GetInt("page"); err == nil && v > 0 {
		params.Page = v
	}

	return params
}

func prepareFilters(config *Config) []filtering.Filter {
	var excludeKeywords []string
	if config.Jobs != nil {
		excludeKeywords = config.Jobs.ExcludeKeywords
	}

	return []filtering.Filter{
		filtering.NewMissingContext(),
		filtering.NewExcludeKeywords(excludeKeywords),
	}
}
