package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "resume file to score")
	scoreCmd.Flags().String("description", "", "job description text")
	scoreCmd.Flags().String("description-file", "", "file containing the job description")

	scoreCmd.MarkFlagRequired("resume")
}

func score(cmd *cobra.Command) {
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
	if description == "" {
		logg.Fatal("a job description is required for scoring")
	}

	client := newClient(ctx, config, logg)

	resume := cmd.Flag("resume").Value.String()

	result, err := client.MatchScore(resume, description)
	if err != nil {
		logg.Fatal("getting a match score", zap.Error(err))
	}

	fmt.Printf("Match score: %.2f%%\n", result)
}
