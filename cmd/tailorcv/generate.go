package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/tailorcv/internal/config"
	"github.com/jonathan/tailorcv/internal/llm"
	"github.com/jonathan/tailorcv/internal/logger"
	"github.com/jonathan/tailorcv/internal/observability"
	"github.com/jonathan/tailorcv/internal/oracle"
	"github.com/jonathan/tailorcv/internal/pipeline"
	"github.com/jonathan/tailorcv/internal/schemas"
	"github.com/jonathan/tailorcv/internal/selection"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume document",
	Long:  "Generate a RenderCV document from a profile and a job description, using either a manual selection plan or LLM-driven selection with validation and retries.",
	RunE:  runGenerate,
}

var (
	genProfilePath   string
	genJobPath       string
	genJobURL        string
	genSelectionPath string
	genDesignPath    string
	genLocalePath    string
	genSettingsPath  string
	genOutputPath    string
	genConfigPath    string
	genProvider      string
	genModel         string
	genAPIKey        string
	genMaxAttempts   int
	genTimeoutSecs   int
	genLexiconPath   string
	genMaxKeywords   int
	genVerbose       bool
	genJSONLogs      bool
)

func init() {
	generateCmd.Flags().StringVarP(&genProfilePath, "profile", "p", "", "Path to profile YAML file (required)")
	generateCmd.Flags().StringVarP(&genJobPath, "job", "j", "", "Path to job description text file")
	generateCmd.Flags().StringVarP(&genJobURL, "job-url", "u", "", "URL to fetch the job description from")
	generateCmd.Flags().StringVarP(&genSelectionPath, "selection", "s", "", "Path to a manual selection plan JSON file (skips LLM generation)")
	generateCmd.Flags().StringVar(&genDesignPath, "design", "", "Path to a design override YAML file")
	generateCmd.Flags().StringVar(&genLocalePath, "locale", "", "Path to a locale override YAML file")
	generateCmd.Flags().StringVar(&genSettingsPath, "settings", "", "Path to a settings override YAML file")
	generateCmd.Flags().StringVarP(&genOutputPath, "out", "o", "", "Output YAML path (default: stdout)")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config file")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "LLM provider: gemini or anthropic")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Model name override")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "API key (default: provider env var)")
	generateCmd.Flags().IntVar(&genMaxAttempts, "max-attempts", 0, "Selection generation attempt budget")
	generateCmd.Flags().IntVar(&genTimeoutSecs, "timeout", 0, "Per-attempt timeout in seconds")
	generateCmd.Flags().StringVar(&genLexiconPath, "lexicon", "", "Custom keyword lexicon file")
	generateCmd.Flags().IntVar(&genMaxKeywords, "max-keywords", 0, "Maximum keywords extracted from the job")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print step summaries and debug logs")
	generateCmd.Flags().BoolVar(&genJSONLogs, "json-logs", false, "Emit logs as JSON")

	generateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log, err := logger.New(genJSONLogs, genVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is not actionable

	cfg, err := resolveConfig(genConfigPath, log)
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		ProfilePath:   genProfilePath,
		JobPath:       genJobPath,
		JobURL:        genJobURL,
		SelectionPath: genSelectionPath,
		DesignPath:    genDesignPath,
		LocalePath:    genLocalePath,
		SettingsPath:  genSettingsPath,
		LexiconPath:   firstNonEmpty(genLexiconPath, cfg.LexiconPath),
		MaxKeywords:   firstPositive(genMaxKeywords, cfg.MaxKeywords),
		Logger:        log,
	}
	if genVerbose {
		opts.Printer = observability.NewPrinter(os.Stderr)
	}

	if genSelectionPath == "" {
		provider := llm.Provider(firstNonEmpty(genProvider, cfg.Provider))
		apiKey, err := config.ResolveAPIKey(provider, genAPIKey)
		if err != nil {
			return err
		}
		opts.Provider = provider
		opts.Model = firstNonEmpty(genModel, cfg.Model)
		opts.APIKey = apiKey
		opts.MaxAttempts = firstPositive(genMaxAttempts, cfg.MaxAttempts)
		opts.AttemptTimeout = time.Duration(firstPositive(genTimeoutSecs, cfg.AttemptTimeoutSeconds)) * time.Second
	}

	result, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return describeGenerateFailure(err)
	}

	out := os.Stdout
	if genOutputPath != "" {
		f, err := os.Create(genOutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := pipeline.WriteDocument(out, result.Document); err != nil {
		return err
	}

	if genOutputPath != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", genOutputPath)
	}
	return nil
}

// resolveConfig loads the config file when one exists and merges it over the
// built-in defaults
func resolveConfig(explicitPath string, log *zap.Logger) (config.Config, error) {
	path := config.ResolvePath(explicitPath)
	defaults := config.DefaultConfig()

	if path == "" {
		return defaults, nil
	}
	if _, err := os.Stat(path); err != nil {
		if explicitPath != "" {
			return config.Config{}, fmt.Errorf("config file not found: %s", explicitPath)
		}
		return defaults, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	log.Debug("config loaded", zap.String("path", path))
	return loaded.MergeWithDefaults(defaults), nil
}

// describeGenerateFailure adds actionable hints to the terminal errors the
// pipeline can surface
func describeGenerateFailure(err error) error {
	var failure *selection.ValidationFailure
	if errors.As(err, &failure) {
		return fmt.Errorf("selection plan rejected:\n  %s\nfix the plan to reference only ids and labels present in the profile", joinMessages(failure.Messages()))
	}

	var exhausted *oracle.ExhaustedError
	if errors.As(err, &exhausted) {
		return fmt.Errorf("%w\nconsider raising --max-attempts or simplifying the profile", err)
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return fmt.Errorf("generated document failed schema validation; check override files:\n%w", err)
	}

	return err
}

func joinMessages(messages []string) string {
	out := ""
	for i, m := range messages {
		if i > 0 {
			out += "\n  "
		}
		out += m
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
