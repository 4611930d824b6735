package ingestion

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxKeywords caps the keyword list handed to the selection oracle
const DefaultMaxKeywords = 50

// maxFrequencyCandidates bounds the frequency-derived candidate pool
const maxFrequencyCandidates = 80

var stopwords = map[string]bool{
	"the": true, "and": true, "or": true, "to": true, "of": true, "in": true,
	"for": true, "with": true, "on": true, "at": true, "is": true, "are": true,
	"as": true, "an": true, "a": true, "by": true, "this": true, "that": true,
	"will": true, "be": true, "you": true, "your": true, "we": true, "our": true,
	"us": true, "from": true, "they": true, "their": true, "it": true,
	"about": true, "role": true, "team": true, "work": true, "working": true,
	"ability": true, "skills": true, "experience": true, "required": true,
	"preferred": true, "responsibilities": true, "qualifications": true,
	"including": true, "within": true, "across": true,
}

// Token regex tuned for tech terms: keeps c++, c#, node.js, .net-ish tokens, ci/cd
var tokenRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#./-]*`)

// Tokens matching these are very likely junk (numbers, requisition ids)
var junkTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`(?i)^[a-z]{1,2}\d{3,}$`),
}

// junkExceptions are short tech tokens that would otherwise trip the junk filters
var junkExceptions = map[string]bool{"k8s": true, "c++": true, "c#": true}

var vowelRe = regexp.MustCompile(`[aeiou]`)

// ExtractKeywords extracts a prioritized, duplicate-free keyword list from
// cleaned job text. Lexicon matches come first (high precision, even when
// mentioned once), then frequency-derived tokens fill the remainder.
func ExtractKeywords(cleanedText string, lexicon []string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	textLower := strings.ToLower(cleanedText)

	out := make([]string, 0, maxKeywords)
	seen := make(map[string]bool)

	for _, hit := range lexiconHits(textLower, lexicon) {
		if !seen[hit] {
			seen[hit] = true
			out = append(out, hit)
		}
		if len(out) >= maxKeywords {
			return out
		}
	}

	for _, token := range frequencyKeywords(textLower) {
		if !seen[token] {
			seen[token] = true
			out = append(out, token)
		}
		if len(out) >= maxKeywords {
			break
		}
	}

	return out
}

// lexiconHits finds lexicon terms in the text, ordered by first appearance.
// Phrases use substring matching; single tokens use a boundary-aware pattern
// that still allows c++, c#, and node.js (\b breaks on '.', '+', '#').
func lexiconHits(textLower string, lexicon []string) []string {
	type hit struct {
		pos  int
		term string
	}

	hits := make([]hit, 0, len(lexicon))
	for _, term := range lexicon {
		if term == "" {
			continue
		}

		if strings.Contains(term, " ") {
			if idx := strings.Index(textLower, term); idx != -1 {
				hits = append(hits, hit{pos: idx, term: term})
			}
			continue
		}

		pattern, err := regexp.Compile(`(?i)(^|[^a-z0-9])` + regexp.QuoteMeta(term) + `($|[^a-z0-9])`)
		if err != nil {
			continue
		}
		if loc := pattern.FindStringIndex(textLower); loc != nil {
			hits = append(hits, hit{pos: loc[0], term: term})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	terms := make([]string, 0, len(hits))
	for _, h := range hits {
		terms = append(terms, h.term)
	}
	return terms
}

// frequencyKeywords extracts frequent tokens not captured by the lexicon,
// with aggressive junk filtering.
func frequencyKeywords(textLower string) []string {
	counts := make(map[string]int)
	order := make([]string, 0, 64)

	for _, raw := range tokenRe.FindAllString(textLower, -1) {
		token := strings.ToLower(strings.Trim(raw, "._-/"))
		if !keepToken(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// Sort by descending count, first-appearance order as tiebreak
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxFrequencyCandidates {
		order = order[:maxFrequencyCandidates]
	}
	return order
}

// keepToken applies the junk filters to a candidate token
func keepToken(token string) bool {
	if junkExceptions[token] {
		return true
	}
	if token == "" || len(token) <= 2 || len(token) > 32 {
		return false
	}
	if strings.Contains(token, "@") {
		return false
	}
	if strings.HasPrefix(token, "http") || strings.HasPrefix(token, "www") {
		return false
	}
	if stopwords[token] {
		return false
	}

	for _, pattern := range junkTokenPatterns {
		if pattern.MatchString(token) {
			return false
		}
	}

	// Long vowel-free tokens are usually requisition ids or hashes
	if len(token) >= 12 && !vowelRe.MatchString(token) {
		return false
	}

	return true
}
