// Package pipeline provides the high-level orchestration for resume document
// generation: load profile, ingest job, obtain a valid selection plan, map,
// assemble, and validate against the output schema.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/tailorcv/internal/assembly"
	"github.com/jonathan/tailorcv/internal/ingestion"
	"github.com/jonathan/tailorcv/internal/llm"
	"github.com/jonathan/tailorcv/internal/mapping"
	"github.com/jonathan/tailorcv/internal/observability"
	"github.com/jonathan/tailorcv/internal/oracle"
	"github.com/jonathan/tailorcv/internal/profile"
	"github.com/jonathan/tailorcv/internal/schemas"
	"github.com/jonathan/tailorcv/internal/selection"
	"github.com/jonathan/tailorcv/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ProfilePath string
	JobPath     string
	JobURL      string

	// SelectionPath supplies a manual plan and bypasses generation entirely.
	// The plan is still validated strictly.
	SelectionPath string

	// Override block files, empty means use defaults
	DesignPath   string
	LocalePath   string
	SettingsPath string

	// Generation settings, ignored when SelectionPath is set
	Provider       llm.Provider
	Model          string
	APIKey         string
	MaxAttempts    int
	AttemptTimeout time.Duration

	// Keyword extraction settings
	LexiconPath string
	MaxKeywords int

	// Client and Authority may be injected for testing; when nil the real
	// implementations are constructed.
	Client    llm.Client
	Authority schemas.Authority

	Logger  *zap.Logger
	Printer *observability.Printer
}

// Result is the pipeline output
type Result struct {
	RunID    uuid.UUID
	Job      *types.Job
	Plan     *types.SelectionPlan
	Document *types.Document
}

// Run executes the full pipeline and returns the validated document
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	runID := uuid.New()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", runID.String()))

	// 1. Load and validate the profile
	prof, err := profile.Load(opts.ProfilePath)
	if err != nil {
		return nil, err
	}
	log.Debug("profile loaded",
		zap.Int("experience", len(prof.Experience)),
		zap.Int("projects", len(prof.Projects)),
		zap.Int("education", len(prof.Education)),
		zap.Int("skills", len(prof.Skills)))

	// 2. Ingest the job description
	job, err := loadJob(ctx, opts)
	if err != nil {
		return nil, err
	}
	log.Debug("job ingested",
		zap.Int("cleaned_chars", len(job.CleanedText)),
		zap.Int("keywords", len(job.Keywords)))
	if opts.Printer != nil {
		opts.Printer.PrintJob(job)
	}

	// 3. Obtain a strictly valid selection plan
	plan, err := resolvePlan(ctx, opts, log, prof, job)
	if err != nil {
		return nil, err
	}
	if opts.Printer != nil {
		opts.Printer.PrintPlan(plan)
	}

	// 4. Map profile + plan into the cv block
	cv := mapping.BuildCV(prof, plan)

	// 5. Assemble the document with defaults and overrides
	overrides, err := loadOverrides(opts)
	if err != nil {
		return nil, err
	}
	doc := assembly.Assemble(cv, overrides)
	if opts.Printer != nil {
		opts.Printer.PrintDocument(doc)
	}

	// 6. Validate against the output schema
	authority := opts.Authority
	if authority == nil {
		authority, err = schemas.NewSchemaAuthority()
		if err != nil {
			return nil, err
		}
	}
	if err := authority.Validate(doc); err != nil {
		return nil, err
	}
	log.Info("document generated",
		zap.Int("sections", len(cv.Sections)))

	return &Result{
		RunID:    runID,
		Job:      job,
		Plan:     plan,
		Document: doc,
	}, nil
}

// WriteDocument serializes the document as YAML to the given writer
func WriteDocument(w io.Writer, doc *types.Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return encoder.Close()
}

func loadJob(ctx context.Context, opts RunOptions) (*types.Job, error) {
	jobOpts := &ingestion.Options{
		LexiconPath: opts.LexiconPath,
		MaxKeywords: opts.MaxKeywords,
	}

	switch {
	case opts.JobPath != "" && opts.JobURL != "":
		return nil, fmt.Errorf("job path and job URL are mutually exclusive")
	case opts.JobPath != "":
		return ingestion.LoadJob(opts.JobPath, jobOpts)
	case opts.JobURL != "":
		return ingestion.LoadJobFromURL(ctx, opts.JobURL, jobOpts)
	default:
		return nil, fmt.Errorf("either a job path or a job URL is required")
	}
}

// resolvePlan returns a validated selection plan, either loaded from a manual
// file or generated through the retry coordinator
func resolvePlan(ctx context.Context, opts RunOptions, log *zap.Logger, prof *types.Profile, job *types.Job) (*types.SelectionPlan, error) {
	if opts.SelectionPath != "" {
		plan, err := selection.LoadPlan(opts.SelectionPath)
		if err != nil {
			return nil, err
		}
		if failure := selection.Validate(prof, plan); failure != nil {
			if opts.Printer != nil {
				opts.Printer.PrintViolations(failure.Violations)
			}
			return nil, failure
		}
		log.Debug("manual selection plan accepted", zap.String("path", opts.SelectionPath))
		return plan, nil
	}

	client := opts.Client
	if client == nil {
		llmConfig := llm.DefaultConfigFor(opts.Provider)
		if opts.Model != "" {
			llmConfig = llmConfig.WithModel(llm.TierStandard, opts.Model)
		}
		var err error
		client, err = llm.NewClient(ctx, llmConfig, opts.APIKey)
		if err != nil {
			return nil, err
		}
		defer client.Close()
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = oracle.DefaultMaxAttempts
	}

	gateway := oracle.NewGateway(client, llm.TierStandard, 0)
	coordinator, err := oracle.NewCoordinator(gateway, maxAttempts,
		oracle.WithAttemptTimeout(opts.AttemptTimeout),
		oracle.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return coordinator.Generate(ctx, prof, job)
}

func loadOverrides(opts RunOptions) (assembly.Overrides, error) {
	design, err := assembly.LoadBlock(opts.DesignPath)
	if err != nil {
		return assembly.Overrides{}, err
	}
	locale, err := assembly.LoadBlock(opts.LocalePath)
	if err != nil {
		return assembly.Overrides{}, err
	}
	settings, err := assembly.LoadBlock(opts.SettingsPath)
	if err != nil {
		return assembly.Overrides{}, err
	}
	return assembly.Overrides{Design: design, Locale: locale, Settings: settings}, nil
}
