package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/tailorcv/internal/ingestion"
	"github.com/jonathan/tailorcv/internal/types"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show cleaned text stats and extracted keywords for a job",
	Long:  "Ingest a job description and print the cleaning statistics and extracted keywords. Useful for debugging lexicon coverage.",
	RunE:  runKeywords,
}

var (
	kwJobPath     string
	kwJobURL      string
	kwLexiconPath string
	kwMaxKeywords int
)

func init() {
	keywordsCmd.Flags().StringVarP(&kwJobPath, "job", "j", "", "Path to job description text file")
	keywordsCmd.Flags().StringVarP(&kwJobURL, "job-url", "u", "", "URL to fetch the job description from")
	keywordsCmd.Flags().StringVar(&kwLexiconPath, "lexicon", "", "Custom keyword lexicon file")
	keywordsCmd.Flags().IntVar(&kwMaxKeywords, "max-keywords", 0, "Maximum keywords to extract")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if kwJobPath == "" && kwJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if kwJobPath != "" && kwJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	opts := &ingestion.Options{
		LexiconPath: kwLexiconPath,
		MaxKeywords: kwMaxKeywords,
	}

	var job *types.Job
	var err error
	if kwJobPath != "" {
		job, err = ingestion.LoadJob(kwJobPath, opts)
	} else {
		job, err = ingestion.LoadJobFromURL(cmd.Context(), kwJobURL, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Raw text:     %d chars\n", len(job.RawText))
	fmt.Fprintf(os.Stdout, "Cleaned text: %d chars\n", len(job.CleanedText))
	fmt.Fprintf(os.Stdout, "Keywords:     %d\n\n", len(job.Keywords))
	for _, kw := range job.Keywords {
		fmt.Fprintf(os.Stdout, "  %s\n", kw)
	}
	return nil
}
