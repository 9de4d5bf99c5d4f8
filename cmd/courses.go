package cmd

import (
	"context"
	"fmt"
	"log"

	"careerprep/internal/assistant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Recommend courses for a target job",
	Run: func(cmd *cobra.Command, _ []string) {
		courses(cmd)
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)

	coursesCmd.Flags().StringP("title", "t", "", "target job title")
	coursesCmd.Flags().String("description", "", "target job description text")
	coursesCmd.Flags().String("description-file", "", "file containing the target job description")
}

func courses(cmd *cobra.Command) {
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

	client := newClient(ctx, config, logg)

	prediction, err := client.PredictCourses(&assistant.CourseRequest{
		JobTitle:       cmd.Flag("title").Value.String(),
		JobDescription: description,
	})
	if err != nil {
		logg.Fatal("getting course recommendations", zap.Error(err))
	}

	renderCourses(prediction)
}

func renderCourses(prediction *assistant.CoursePrediction) {
	if prediction.Len() == 0 {
		fmt.Println("No course recommendations for this job.")
		if prediction.Message != "" {
			fmt.Println(prediction.Message)
		}
		return
	}

	for _, course := range prediction.Courses {
		line := course.Name
		if course.Platform != "" {
			line = fmt.Sprintf("%s - %s", line, course.Platform)
		}
		if course.Relevance != "" {
			line = fmt.Sprintf("%s (relevance: %s)", line, course.Relevance)
		}
		if course.URL != "" {
			line = fmt.Sprintf("%s %s", line, course.URL)
		}
		fmt.Println(line)
	}

	if prediction.Message != "" {
		fmt.Println(prediction.Message)
	}
}
