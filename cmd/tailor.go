package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"careerprep/internal/assistant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTailorOutput = "tailored_resume.txt"

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate a resume tailored for a target job",
	Run: func(cmd *cobra.Command, _ []string) {
		tailor(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tailorCmd)

	tailorCmd.Flags().StringP("resume", "r", "", "base resume file")
	tailorCmd.Flags().StringP("title", "t", "", "target job title")
	tailorCmd.Flags().String("description", "", "target job description text")
	tailorCmd.Flags().String("description-file", "", "file containing the target job description")
	tailorCmd.Flags().StringP("output", "o", defaultTailorOutput, "file to write the tailored resume to")

	tailorCmd.MarkFlagRequired("resume")
}

func tailor(cmd *cobra.Command) {
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

	resume := cmd.Flag("resume").Value.String()
	title := cmd.Flag("title").Value.String()
	output := cmd.Flag("output").Value.String()

	if err := tailorResume(client, resume, title, description, output, logg); err != nil {
		logg.Fatal("generating tailored resume", zap.Error(err))
	}
}

func tailorResume(client *assistant.Client, resume, title, description, output string, logg *zap.Logger) error {
	text, err := client.GenerateResume(resume, title, description)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultTailorOutput
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing tailored resume: %w", err)
	}

	logg.Info("tailored resume written", zap.String("filename", output))
	fmt.Printf("Tailored resume written to %s\n", output)

	return nil
}
