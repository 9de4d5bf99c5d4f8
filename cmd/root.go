package cmd

import (
	"errors"
	"log"

	"careerprep/internal/interview"
	"careerprep/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "careerprep"

	defaultAPIURL = "http://localhost:5002"
)

type Config struct {
	APIURL    string           `mapstructure:"api-url"`
	UserAgent string           `mapstructure:"user-agent"`
	Jobs      *JobsConfig      `mapstructure:"jobs"`
	Interview *InterviewConfig `mapstructure:"interview"`
}

type JobsConfig struct {
	Keywords        string   `mapstructure:"keywords"`
	Location        string   `mapstructure:"location"`
	Country         string   `mapstructure:"country"`
	Page            int      `mapstructure:"page"`
	ExcludeKeywords []string `mapstructure:"exclude-keywords"`
}

type InterviewConfig struct {
	Technical   int `mapstructure:"technical"`
	Behavioral  int `mapstructure:"behavioral"`
	Situational int `mapstructure:"situational"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "careerprep is a simple cli for practicing interviews and preparing applications for job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-url", "CAREERPREP_API_URL"); err != nil {
		log.Fatalf("binding CAREERPREP_API_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is careerprep.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A .env file, when present, fills the process environment before
	// viper resolves its bound variables.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional unless it was named explicitly. A file
	// that exists but does not parse is always fatal.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			log.Fatal(err)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	if config.APIURL == "" {
		config.APIURL = viper.GetString("api-url")
	}
	if config.APIURL == "" {
		config.APIURL = defaultAPIURL
	}

	return config, nil
}

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

func quotaFromConfig(config *Config) interview.Quota {
	if config == nil || config.Interview == nil {
		return interview.DefaultQuota()
	}

	return interview.Quota{
		Technical:   config.Interview.Technical,
		Behavioral:  config.Interview.Behavioral,
		Situational: config.Interview.Situational,
	}
}
