package ingestion

import (
	"regexp"
	"strings"
)

// Lines matching these patterns are usually page chrome, legal footers, or
// application UI. Matching is applied at line level so core content elsewhere
// in the posting survives.
var noiseLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bcookie\b`),
	regexp.MustCompile(`\bprivacy\b`),
	regexp.MustCompile(`\bterms\b`),
	regexp.MustCompile(`\bequal opportunity\b`),
	regexp.MustCompile(`\ball qualified applicants\b`),
	regexp.MustCompile(`\baccessibility\b`),
	regexp.MustCompile(`\ball rights reserved\b`),
	regexp.MustCompile(`\bsubscribe\b`),
	regexp.MustCompile(`\bsign up\b`),
	regexp.MustCompile(`\bget notified\b`),
	regexp.MustCompile(`\baccept all\b`),
	regexp.MustCompile(`\bmore options\b`),
	regexp.MustCompile(`\bshare job\b`),
	regexp.MustCompile(`\bsave job\b`),
	regexp.MustCompile(`\bapply now\b`),
	regexp.MustCompile(`\bback to\b`),
	regexp.MustCompile(`\bview all\b`),
	regexp.MustCompile(`\bfraudulent\b`),
	regexp.MustCompile(`\bsite map\b`),
}

var (
	emailRe      = regexp.MustCompile(`(?i)\b[\w.-]+@[\w.-]+\.\w+\b`)
	urlRe        = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText cleans and normalizes job posting text. It removes obvious
// UI/footer/legal lines, strips embedded emails and URLs, and collapses
// whitespace. It never fails, and for any non-blank input it returns non-empty
// output: when line filtering would remove everything, the whitespace-normalized
// raw text is used instead.
func CleanText(text string) string {
	// Strip invisible whitespace that breaks tokenization
	text = strings.ReplaceAll(text, "\u200B", " ")
	text = strings.ReplaceAll(text, "\uFEFF", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	kept := make([]string, 0, 64)
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}

		lower := strings.ToLower(s)

		// Short pure-navigation lines like "next", "apply"
		if len(lower) <= 3 {
			continue
		}

		if isNoiseLine(lower) {
			continue
		}

		// Strip emails/URLs inside the line rather than dropping the line
		s = emailRe.ReplaceAllString(s, " ")
		s = urlRe.ReplaceAllString(s, " ")

		kept = append(kept, s)
	}

	cleaned := strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.Join(kept, " "), " "))
	if cleaned == "" {
		cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	}
	return cleaned
}

// isNoiseLine reports whether a lowercased line looks like page chrome
func isNoiseLine(lower string) bool {
	for _, pattern := range noiseLinePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
