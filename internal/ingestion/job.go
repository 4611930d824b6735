package ingestion

import (
	"fmt"
	"os"

	"github.com/jonathan/tailorcv/internal/types"
)

// Options configures job ingestion
type Options struct {
	// LexiconPath optionally points at a newline-delimited lexicon file.
	// When empty the built-in lexicon is used.
	LexiconPath string
	// MaxKeywords caps the extracted keyword list; zero means DefaultMaxKeywords.
	MaxKeywords int
}

// LoadJob reads a job posting from a text file, cleans it, and extracts
// keywords. The only failure mode is I/O-level: noisy content (embedded emails,
// URLs, tracking chrome) never produces an error.
func LoadJob(path string, opts *Options) (*types.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &JobLoadError{
			Message: fmt.Sprintf("failed to read job file %s", path),
			Cause:   err,
		}
	}

	job, err := FromText(string(content), opts)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// FromText cleans raw job text and extracts keywords. It fails only when a
// caller-supplied lexicon file cannot be read.
func FromText(raw string, opts *Options) (*types.Job, error) {
	if opts == nil {
		opts = &Options{}
	}

	lexicon := DefaultLexicon()
	if opts.LexiconPath != "" {
		loaded, err := LoadLexiconFile(opts.LexiconPath)
		if err != nil {
			return nil, err
		}
		lexicon = loaded
	}

	cleaned := CleanText(raw)
	keywords := ExtractKeywords(cleaned, lexicon, opts.MaxKeywords)

	return &types.Job{
		RawText:     raw,
		CleanedText: cleaned,
		Keywords:    keywords,
	}, nil
}
