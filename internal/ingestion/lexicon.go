package ingestion

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed lexicon.txt
var defaultLexiconData string

// DefaultLexicon returns the built-in tech term lexicon
func DefaultLexicon() []string {
	return ParseLexicon(defaultLexiconData)
}

// LoadLexiconFile loads a newline-delimited lexicon from disk.
// Format: one term per line, phrases allowed, '#' starts a comment.
func LoadLexiconFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &JobLoadError{
			Message: fmt.Sprintf("failed to read lexicon file %s", path),
			Cause:   err,
		}
	}
	return ParseLexicon(string(content)), nil
}

// ParseLexicon parses lexicon content into normalized, deduplicated terms
func ParseLexicon(content string) []string {
	terms := make([]string, 0, 64)
	seen := make(map[string]bool)

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Inline comments: "kubernetes  # orchestration". Only a '#' preceded
		// by whitespace starts one, so terms like "c#" survive.
		if idx := inlineCommentStart(line); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		term := normalizeTerm(line)
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	return terms
}

// inlineCommentStart returns the index of the first '#' preceded by
// whitespace, or -1 when the line has no inline comment
func inlineCommentStart(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return i
		}
	}
	return -1
}

// normalizeTerm lowercases a term and collapses internal whitespace
func normalizeTerm(term string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(term)), " ")
}
