// Package mapping converts a validated profile and selection plan into the cv
// content block. The mapping is pure and deterministic: identical inputs
// always produce an identical result, with no I/O and no randomness.
package mapping

import (
	"github.com/jonathan/tailorcv/internal/types"
)

// BuildCV maps the profile header and the plan's selected entries into a cv
// block. The plan is assumed to have passed validation: ids and labels it
// names exist in the profile, and the selection is non-empty.
//
// Ordering rules:
//  1. Entries within a section follow the plan's selection order, not the
//     profile's declaration order.
//  2. Sections follow the plan's section_order when present; titles the plan
//     does not mention are appended in canonical order. Unknown titles are
//     ignored.
//  3. Sections with no selected entries are omitted entirely.
func BuildCV(profile *types.Profile, plan *types.SelectionPlan) *types.CV {
	cv := &types.CV{
		Name:     profile.Meta.Name,
		Headline: profile.Meta.Headline,
		Location: profile.Meta.Location,
		Email:    profile.Meta.Email,
		Phone:    profile.Meta.Phone,
		Website:  profile.Meta.Website,
	}
	for _, s := range profile.Meta.Socials {
		cv.SocialNetworks = append(cv.SocialNetworks, types.SocialNetwork{
			Network:  s.Network,
			Username: s.Username,
		})
	}

	built := map[string]types.Section{}
	if entries := buildExperienceEntries(profile, plan); len(entries) > 0 {
		built[types.SectionExperience] = types.Section{Title: types.SectionExperience, Entries: entries}
	}
	if entries := buildProjectEntries(profile, plan); len(entries) > 0 {
		built[types.SectionProjects] = types.Section{Title: types.SectionProjects, Entries: entries}
	}
	if entries := buildEducationEntries(profile, plan); len(entries) > 0 {
		built[types.SectionEducation] = types.Section{Title: types.SectionEducation, Entries: entries}
	}
	if entries := buildSkillEntries(profile, plan); len(entries) > 0 {
		built[types.SectionSkills] = types.Section{Title: types.SectionSkills, Entries: entries}
	}

	for _, title := range resolveSectionOrder(plan.SectionOrder) {
		if section, ok := built[title]; ok {
			cv.Sections = append(cv.Sections, section)
		}
	}
	return cv
}

// resolveSectionOrder normalizes a requested section order to the full set of
// canonical titles: requested known titles first, then any canonical titles
// the request omitted
func resolveSectionOrder(requested []string) []string {
	canonical := types.CanonicalSectionOrder()
	known := make(map[string]bool, len(canonical))
	for _, title := range canonical {
		known[title] = true
	}

	order := make([]string, 0, len(canonical))
	seen := make(map[string]bool, len(canonical))
	for _, title := range requested {
		if known[title] && !seen[title] {
			order = append(order, title)
			seen[title] = true
		}
	}
	for _, title := range canonical {
		if !seen[title] {
			order = append(order, title)
		}
	}
	return order
}

func buildExperienceEntries(profile *types.Profile, plan *types.SelectionPlan) []any {
	byID := make(map[string]types.Experience, len(profile.Experience))
	for _, e := range profile.Experience {
		if e.ID != "" {
			byID[e.ID] = e
		}
	}

	entries := make([]any, 0, len(plan.SelectedExperienceIDs))
	for _, id := range plan.SelectedExperienceIDs {
		e, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, types.ExperienceEntry{
			Company:    e.Company,
			Position:   e.Position,
			Location:   e.Location,
			Date:       e.Date,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Summary:    e.Summary,
			Highlights: resolveHighlights(plan, id, e.Highlights),
		})
	}
	return entries
}

func buildProjectEntries(profile *types.Profile, plan *types.SelectionPlan) []any {
	byID := make(map[string]types.Project, len(profile.Projects))
	for _, p := range profile.Projects {
		if p.ID != "" {
			byID[p.ID] = p
		}
	}

	entries := make([]any, 0, len(plan.SelectedProjectIDs))
	for _, id := range plan.SelectedProjectIDs {
		p, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, types.ProjectEntry{
			Name:       p.Name,
			Location:   p.Location,
			Date:       p.Date,
			StartDate:  p.StartDate,
			EndDate:    p.EndDate,
			Summary:    p.Summary,
			Highlights: resolveHighlights(plan, id, p.Highlights),
		})
	}
	return entries
}

func buildEducationEntries(profile *types.Profile, plan *types.SelectionPlan) []any {
	byID := make(map[string]types.Education, len(profile.Education))
	for _, e := range profile.Education {
		if e.ID != "" {
			byID[e.ID] = e
		}
	}

	entries := make([]any, 0, len(plan.SelectedEducationIDs))
	for _, id := range plan.SelectedEducationIDs {
		e, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, types.EducationEntry{
			Institution: e.Institution,
			Area:        e.Area,
			Degree:      e.Degree,
			Location:    e.Location,
			Date:        e.Date,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Summary:     e.Summary,
			Highlights:  resolveHighlights(plan, id, e.Highlights),
		})
	}
	return entries
}

func buildSkillEntries(profile *types.Profile, plan *types.SelectionPlan) []any {
	byLabel := make(map[string]types.SkillEntry, len(profile.Skills))
	for _, s := range profile.Skills {
		byLabel[s.Label] = s
	}

	entries := make([]any, 0, len(plan.SelectedSkillLabels))
	for _, label := range plan.SelectedSkillLabels {
		s, ok := byLabel[label]
		if !ok {
			continue
		}
		entries = append(entries, types.SkillLineEntry{
			Label:   s.Label,
			Details: s.Details,
		})
	}
	return entries
}

// resolveHighlights returns the plan's override bullets for an entry when one
// exists, otherwise a copy of the profile's own bullets. Overrides are used
// verbatim: no trimming, rewriting, or reordering.
func resolveHighlights(plan *types.SelectionPlan, id string, original []string) []string {
	if override, ok := plan.BulletOverrides[id]; ok {
		return copyStrings(override)
	}
	return copyStrings(original)
}

func copyStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
