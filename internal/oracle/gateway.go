// Package oracle generates selection plans by prompting an LLM and validating
// every proposal strictly against the profile. Invalid proposals are fed back
// to the model as retry feedback until a valid plan emerges or the attempt
// budget runs out.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/tailorcv/internal/llm"
	"github.com/jonathan/tailorcv/internal/prompts"
	"github.com/jonathan/tailorcv/internal/selection"
	"github.com/jonathan/tailorcv/internal/types"
)

// DefaultMaxJobChars bounds the cleaned job text included in a prompt
const DefaultMaxJobChars = 8000

// maxPromptKeywords bounds the job keywords included in a prompt
const maxPromptKeywords = 40

// Proposer produces selection plan candidates. Prior rejection messages are
// passed as feedback so the next proposal can correct them.
type Proposer interface {
	Propose(ctx context.Context, profile *types.Profile, job *types.Job, feedback []string) (*types.SelectionPlan, error)
}

// Gateway is the LLM-backed Proposer
type Gateway struct {
	client      llm.Client
	tier        llm.ModelTier
	maxJobChars int
}

// NewGateway creates a gateway over an LLM client. maxJobChars <= 0 selects
// the default.
func NewGateway(client llm.Client, tier llm.ModelTier, maxJobChars int) *Gateway {
	if maxJobChars <= 0 {
		maxJobChars = DefaultMaxJobChars
	}
	return &Gateway{
		client:      client,
		tier:        tier,
		maxJobChars: maxJobChars,
	}
}

// promptPayload is the structured request body embedded in the prompt. The
// model sees exactly what it may choose from and what shape to answer in.
type promptPayload struct {
	Task           string              `json:"task"`
	AllowedValues  map[string][]string `json:"allowed_values"`
	Profile        map[string]any      `json:"profile"`
	Job            map[string]any      `json:"job"`
	OutputTemplate map[string]any      `json:"output_template"`
	RetryFeedback  []string            `json:"retry_feedback,omitempty"`
}

// Propose asks the model for a selection plan and parses the response. The
// returned plan has NOT been validated against the profile; that is the
// coordinator's job.
func (g *Gateway) Propose(ctx context.Context, profile *types.Profile, job *types.Job, feedback []string) (*types.SelectionPlan, error) {
	prompt, err := g.buildPrompt(profile, job, feedback)
	if err != nil {
		return nil, err
	}

	raw, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, err
	}

	return selection.ParsePlan([]byte(raw))
}

func (g *Gateway) buildPrompt(profile *types.Profile, job *types.Job, feedback []string) (string, error) {
	keywords := job.Keywords
	if len(keywords) > maxPromptKeywords {
		keywords = keywords[:maxPromptKeywords]
	}
	excerpt := truncateOnRuneBoundary(job.CleanedText, g.maxJobChars)

	payload := promptPayload{
		Task:          "Select the most relevant profile items for this job and return JSON matching the output_template shape.",
		AllowedValues: allowedValues(profile),
		Profile:       profilePayload(profile),
		Job: map[string]any{
			"keywords":             keywords,
			"cleaned_text_excerpt": excerpt,
		},
		OutputTemplate: map[string]any{
			"selected_experience_ids": []string{"exp_id_1"},
			"selected_project_ids":    []string{"proj_id_1"},
			"selected_education_ids":  []string{"edu_id_1"},
			"selected_skill_labels":   []string{"Languages"},
			"bullet_overrides":        map[string][]string{"exp_id_1": {"Optional rewritten bullet"}},
			"section_order":           types.CanonicalSectionOrder(),
		},
		RetryFeedback: feedback,
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode prompt payload: %w", err)
	}

	template, err := prompts.Get("selection.json", "system")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{"Payload": string(encoded)})
	if len(feedback) > 0 {
		suffix, err := prompts.Get("selection.json", "retry_suffix")
		if err != nil {
			return "", err
		}
		prompt += "\n\n" + suffix
	}
	return prompt, nil
}

// truncateOnRuneBoundary caps s at max bytes without splitting a multibyte
// rune, backing off to the start of the rune that straddles the cut
func truncateOnRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// allowedValues lists every id and label the model may legally select
func allowedValues(profile *types.Profile) map[string][]string {
	return map[string][]string{
		"experience_ids":       profile.ExperienceIDs(),
		"project_ids":          profile.ProjectIDs(),
		"education_ids":        profile.EducationIDs(),
		"skill_labels":         profile.SkillLabels(),
		"section_order_titles": types.CanonicalSectionOrder(),
	}
}

// profilePayload trims the profile to selection-relevant fields. Contact
// details stay out of the prompt.
func profilePayload(profile *types.Profile) map[string]any {
	experience := make([]map[string]any, 0, len(profile.Experience))
	for _, e := range profile.Experience {
		experience = append(experience, map[string]any{
			"id":         e.ID,
			"company":    e.Company,
			"position":   e.Position,
			"summary":    e.Summary,
			"highlights": e.Highlights,
			"tags":       e.Tags,
		})
	}

	projects := make([]map[string]any, 0, len(profile.Projects))
	for _, p := range profile.Projects {
		projects = append(projects, map[string]any{
			"id":         p.ID,
			"name":       p.Name,
			"summary":    p.Summary,
			"highlights": p.Highlights,
			"tags":       p.Tags,
		})
	}

	education := make([]map[string]any, 0, len(profile.Education))
	for _, e := range profile.Education {
		education = append(education, map[string]any{
			"id":          e.ID,
			"institution": e.Institution,
			"area":        e.Area,
			"degree":      e.Degree,
			"summary":     e.Summary,
			"tags":        e.Tags,
		})
	}

	skills := make([]map[string]any, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skills = append(skills, map[string]any{
			"label":   s.Label,
			"details": s.Details,
		})
	}

	return map[string]any{
		"meta": map[string]any{
			"name":     profile.Meta.Name,
			"headline": profile.Meta.Headline,
			"location": profile.Meta.Location,
		},
		"experience": experience,
		"projects":   projects,
		"education":  education,
		"skills":     skills,
	}
}
