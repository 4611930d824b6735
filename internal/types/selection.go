package types

// SelectionPlan represents a content-selection decision: which profile entries
// to include, in what order, with optional rewritten highlights.
//
// All keys in the wire format are optional; absent keys decode to empty values.
// A plan is produced once per generation attempt and never mutated — each retry
// yields a new instance.
type SelectionPlan struct {
	SelectedExperienceIDs []string            `json:"selected_experience_ids,omitempty"`
	SelectedProjectIDs    []string            `json:"selected_project_ids,omitempty"`
	SelectedEducationIDs  []string            `json:"selected_education_ids,omitempty"`
	SelectedSkillLabels   []string            `json:"selected_skill_labels,omitempty"`
	BulletOverrides       map[string][]string `json:"bullet_overrides,omitempty"`
	SectionOrder          []string            `json:"section_order,omitempty"`
}

// SelectedIDSet returns the union of all selected entry ids across the three
// id-bearing categories. Used to detect overrides that target unselected entries.
func (p *SelectionPlan) SelectedIDSet() map[string]bool {
	set := make(map[string]bool, len(p.SelectedExperienceIDs)+len(p.SelectedProjectIDs)+len(p.SelectedEducationIDs))
	for _, id := range p.SelectedExperienceIDs {
		set[id] = true
	}
	for _, id := range p.SelectedProjectIDs {
		set[id] = true
	}
	for _, id := range p.SelectedEducationIDs {
		set[id] = true
	}
	return set
}

// IsEmpty reports whether the plan selects nothing at all
func (p *SelectionPlan) IsEmpty() bool {
	return len(p.SelectedExperienceIDs) == 0 &&
		len(p.SelectedProjectIDs) == 0 &&
		len(p.SelectedEducationIDs) == 0 &&
		len(p.SelectedSkillLabels) == 0
}
