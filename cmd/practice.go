package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"careerprep/internal/assistant"
	"careerprep/internal/interview"
	"careerprep/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes            = "Yes"
	PromptNo             = "No"
	PromptQuit           = "Quit"
	PromptSubmitAnswers  = "Submit answers for evaluation"
	PromptDumpTranscript = "Dump session transcript to file"

	answeredMarker = "[answered]"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate interview questions for a job and get your answers evaluated",
	Run: func(cmd *cobra.Command, _ []string) {
		practice(cmd)
	},
}

func init() {
	rootCmd.AddCommand(practiceCmd)

	practiceCmd.Flags().StringP("title", "t", "", "job title to practice for")
	practiceCmd.Flags().String("description", "", "job description text")
	practiceCmd.Flags().String("description-file", "", "file containing the job description")
	practiceCmd.Flags().String("company", "", "company name, shown in the session header")
}

func practice(cmd *cobra.Command) {
	ctx := context.Background()

	logg, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logg.Fatal("getting a config", zap.Error(err))
	}

	description, err := resolveDescription(cmd)
	if err != nil {
		logg.Fatal("reading job description", zap.Error(err))
	}

	job := interview.JobContext{
		Title:       cmd.Flag("title").Value.String(),
		Description: description,
	}
	job.Company.DisplayName = cmd.Flag("company").Value.String()

	client := newClient(ctx, config, logg)

	if err := runPractice(client, quotaFromConfig(config), job, logg); err != nil {
		logg.Info("exiting", zap.Error(err))
	}
}

// runPractice drives one practice session: question fetch on context
// receipt, the answer-entry loop, submission and result rendering. Every
// error is shown next to the action that caused it; none of them ends
// the process.
func runPractice(backend interview.Backend, quota interview.Quota, job interview.JobContext, logg *zap.Logger) error {
	logg = logger.WithJobFields(logg, job.Title, job.Company.DisplayName)

	session := interview.NewSession(backend, quota, logg)
	defer session.Close()

	for {
		err := session.Begin(job)
		if err == nil {
			break
		}

		if errors.Is(err, interview.ErrUnusableContext) {
			fmt.Println("No job context provided. Select a job first, for example via the jobs command.")
			return err
		}

		// fetch-error: recoverable, but only by an explicit new attempt
		fmt.Printf("Fetching interview questions failed: %v\n", err)
		retry := promptui.Select{
			Label: "Try again?",
			Items: []string{PromptYes, PromptNo},
		}
		if _, action, perr := retry.Run(); perr != nil || action == PromptNo {
			return err
		}
	}

	printSessionHeader(session)

	for {
		questions := session.Questions()

		items := make([]string, 0, len(questions)+3)
		for _, question := range questions {
			items = append(items, questionLabel(question))
		}
		if len(questions) > 0 {
			items = append(items, PromptSubmitAnswers)
		}
		items = append(items, PromptDumpTranscript, PromptQuit)

		menu := promptui.Select{
			Label: "Choose a question and press ENTER",
			Items: items,
			Size:  len(items),
		}

		_, selected, err := menu.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptQuit:
			return nil
		case PromptDumpTranscript:
			filename, err := session.DumpToTmpFile()
			if err != nil {
				fmt.Printf("Dumping transcript failed: %v\n", err)
				continue
			}
			fmt.Printf("Transcript written to %s\n", filename)
		case PromptSubmitAnswers:
			result, err := session.Submit()
			if err != nil {
				fmt.Printf("Evaluation failed: %v\n", err)
				continue
			}
			renderEvaluation(result)
		default:
			answerQuestion(session, selected)
		}
	}
}

func printSessionHeader(session *interview.Session) {
	job := session.Job()

	if job.Title != "" {
		header := fmt.Sprintf("Practicing for: %s", job.Title)
		if job.Company.DisplayName != "" {
			header += fmt.Sprintf(" at %s", job.Company.DisplayName)
		}
		fmt.Println(header)
	}

	// empty-result is informational: the menu stays usable
	if notice := session.Notice(); notice != "" {
		fmt.Println(notice)
	}
}

func questionLabel(question *interview.Question) string {
	label := fmt.Sprintf("%d. (%s) %s", question.ID, question.Category, logger.TruncateForLog(question.Prompt, 70))
	if question.Answered() {
		label = fmt.Sprintf("%s %s", label, answeredMarker)
	}
	return label
}

func answerQuestion(session *interview.Session, selected string) {
	id, err := strconv.Atoi(strings.Split(selected, ".")[0])
	if err != nil {
		return
	}

	var question *interview.Question
	for _, candidate := range session.Questions() {
		if candidate.ID == id {
			question = candidate
			break
		}
	}
	if question == nil {
		return
	}

	fmt.Printf("\n(%s) %s\n", question.Category, question.Prompt)

	entry := promptui.Prompt{
		Label:     "Your answer",
		Default:   question.Answer,
		AllowEdit: true,
	}

	answer, err := entry.Run()
	if err != nil {
		// interrupted entry leaves the stored answer untouched
		return
	}

	session.SetAnswer(id, answer)
}

func renderEvaluation(result *interview.EvaluationResult) {
	fmt.Printf("\nOverall score: %s\n", interview.FormatScore(result.Score))

	if result.Feedback != "" {
		fmt.Printf("General feedback: %s\n", result.Feedback)
	}

	if len(result.Detailed) > 0 {
		fmt.Println("Detailed feedback:")
		for i, entry := range result.Detailed {
			line := fmt.Sprintf("  Q%d: %s", entry.DisplayID(i), entry.FeedbackText)
			if entry.Score != nil {
				line = fmt.Sprintf("%s (%s)", line, interview.FormatScore(entry.Score))
			}
			fmt.Println(line)
		}
	}

	fmt.Println()
}

func newClient(ctx context.Context, config *Config, logg *zap.Logger) *assistant.Client {
	client := assistant.New(ctx, logg, config.APIURL)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}
	return client
}

func resolveDescription(cmd *cobra.Command) (string, error) {
	if description := cmd.Flag("description").Value.String(); description != "" {
		return description, nil
	}

	path := cmd.Flag("description-file").Value.String()
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading description file %q: %w", path, err)
	}

	return string(data), nil
}
