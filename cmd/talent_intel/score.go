package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-intel/internal/cache"
	"github.com/jonathan/talent-intel/internal/config"
	"github.com/jonathan/talent-intel/internal/embeddings"
	"github.com/jonathan/talent-intel/internal/extraction"
	"github.com/jonathan/talent-intel/internal/ingestion"
	"github.com/jonathan/talent-intel/internal/llm"
	"github.com/jonathan/talent-intel/internal/logger"
	"github.com/jonathan/talent-intel/internal/observability"
	"github.com/jonathan/talent-intel/internal/pipeline"
)

var (
	scoreConfigPath string
	scoreJobURL     string
	scoreJobFile    string
	scoreUseBrowser bool
	scoreFuzzy      bool
	scoreJSONLog    bool
	scoreDebug      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume files]",
	Short: "Score and rank resumes against a job description",
	Long: `Score one or more resume files (PDF, DOCX, plain text) against a job
description given as a URL or a text file, and print a ranked shortlist with
every score component broken out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job description from")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a job description text file")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use a headless browser for SPA job boards")
	scoreCmd.Flags().BoolVar(&scoreFuzzy, "fuzzy", false, "Use fuzzy skill matching instead of exact overlap")
	scoreCmd.Flags().BoolVar(&scoreJSONLog, "json-log", false, "Emit JSON logs")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Debug-level logging")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(scoreConfigPath)
	if err != nil {
		return err
	}
	if scoreJobURL != "" {
		cfg.JobURL = scoreJobURL
	}
	if scoreJobFile != "" {
		cfg.JobFile = scoreJobFile
	}
	if scoreUseBrowser {
		cfg.UseBrowser = true
	}
	if scoreFuzzy {
		cfg.SkillMatchMode = "fuzzy"
	}
	if cfg.JobURL == "" && cfg.JobFile == "" {
		return fmt.Errorf("either --job-url or --job is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log, err := logger.New(scoreJSONLog || cfg.JSONLog, scoreDebug || cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()

	// Job description text
	var jobText string
	if cfg.JobURL != "" {
		jobText, err = ingestion.JobTextFromURL(ctx, cfg.JobURL, cfg.UseBrowser, log)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	} else {
		data, readErr := os.ReadFile(cfg.JobFile)
		if readErr != nil {
			return fmt.Errorf("failed to read job file: %w", readErr)
		}
		jobText = ingestion.CleanText(string(data))
	}

	// Resume files
	resumes := make([]pipeline.ResumeInput, 0, len(args))
	for _, path := range args {
		text, readErr := ingestion.ReadDocument(path)
		if readErr != nil {
			// One unreadable file must not abort the batch
			log.Warn("skipping unreadable resume", zap.String("path", path), zap.Error(readErr))
			continue
		}
		resumes = append(resumes, pipeline.ResumeInput{FileName: path, Text: text})
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no readable resumes among %d input files", len(args))
	}

	runner, closeClient, err := buildRunner(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	result, err := runner.ScoreBatch(ctx, jobText, resumes, cfg.InitialWeights())
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRequirementProfile(&result.Job)
	printer.PrintRankedCandidates(result.Candidates)
	return nil
}

// loadConfig reads the optional config file and merges environment values.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildRunner wires the Gemini client, extractor, embedder, and cache into a
// pipeline runner. The returned func releases the underlying client.
func buildRunner(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pipeline.Runner, func(), error) {
	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	runner := pipeline.NewRunner(
		extraction.NewLLMExtractor(client),
		embeddings.NewGeminiProvider(client.Genai(), cfg.EmbedModel),
		pipeline.Options{
			Variants:    cfg.ScoringVariants(),
			Concurrency: cfg.Concurrency,
			Cache:       cache.New(),
			Logger:      log,
		},
	)
	return runner, func() { _ = client.Close() }, nil
}
