package selection

import (
	"sort"

	"github.com/jonathan/tailorcv/internal/types"
)

// Validate checks a selection plan against its profile. It accumulates all
// violations rather than short-circuiting so a single failed attempt yields
// complete feedback, and returns them in a deterministic order:
//
//  1. unknown experience ids, in plan order
//  2. unknown project ids, in plan order
//  3. unknown education ids, in plan order
//  4. unknown skill labels, in plan order
//  5. bullet overrides keyed by unselected entry ids, in sorted key order
//  6. empty-resume check
//
// A nil return means the plan is valid. Validation has no side effects and
// identical inputs always produce identical output.
func Validate(profile *types.Profile, plan *types.SelectionPlan) *ValidationFailure {
	violations := &types.Violations{}

	checkIDs(violations, "experience", plan.SelectedExperienceIDs, profile.ExperienceIDs())
	checkIDs(violations, "projects", plan.SelectedProjectIDs, profile.ProjectIDs())
	checkIDs(violations, "education", plan.SelectedEducationIDs, profile.EducationIDs())

	checkLabels(violations, plan.SelectedSkillLabels, profile.SkillLabels())

	checkOverrides(violations, plan)

	// Strict emptiness: a plan that selects nothing produces an empty resume.
	// An override-only or order-only plan is not a selection.
	if plan.IsEmpty() {
		violations.Add(types.NewEmptySelectionViolation())
	}

	if violations.Empty() {
		return nil
	}
	return &ValidationFailure{Violations: violations}
}

// checkIDs reports each plan id missing from the profile category
func checkIDs(violations *types.Violations, category string, provided, known []string) {
	knownSet := make(map[string]bool, len(known))
	for _, id := range known {
		knownSet[id] = true
	}

	for _, id := range provided {
		if !knownSet[id] {
			violations.Add(types.NewUnknownIDViolation(category, id))
		}
	}
}

// checkLabels reports each selected skill label missing from the profile
func checkLabels(violations *types.Violations, provided, known []string) {
	knownSet := make(map[string]bool, len(known))
	for _, label := range known {
		knownSet[label] = true
	}

	for _, label := range provided {
		if !knownSet[label] {
			violations.Add(types.NewUnknownLabelViolation(label))
		}
	}
}

// checkOverrides reports bullet overrides whose key is not among the selected
// entry ids. An override for an unselected entry is a violation, not silently
// ignored: the caller asked for content that the mapped output cannot contain.
func checkOverrides(violations *types.Violations, plan *types.SelectionPlan) {
	if len(plan.BulletOverrides) == 0 {
		return
	}

	selected := plan.SelectedIDSet()

	// Map iteration order is randomized; sort keys so violation order is stable
	keys := make([]string, 0, len(plan.BulletOverrides))
	for id := range plan.BulletOverrides {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	for _, id := range keys {
		if !selected[id] {
			violations.Add(types.NewOrphanOverrideViolation(id))
		}
	}
}
