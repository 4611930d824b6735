package ingestion

import (
	"context"

	"github.com/jonathan/tailorcv/internal/fetch"
	"github.com/jonathan/tailorcv/internal/types"
)

// LoadJobFromURL fetches a job posting over HTTP, extracts the main text, and
// runs the same cleaning and keyword extraction as file-based ingestion.
func LoadJobFromURL(ctx context.Context, urlStr string, opts *Options) (*types.Job, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, &JobLoadError{
			Message: "failed to fetch job posting",
			Cause:   err,
		}
	}

	text, err := fetch.ExtractMainText(result.HTML)
	if err != nil {
		return nil, &JobLoadError{
			Message: "failed to extract text from job posting HTML",
			Cause:   err,
		}
	}

	return FromText(text, opts)
}
