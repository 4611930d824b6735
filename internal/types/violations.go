package types

import "fmt"

// Violation type constants produced by the selection validator
const (
	ViolationUnknownID       = "unknown_id"
	ViolationUnknownLabel    = "unknown_label"
	ViolationOrphanOverride  = "orphan_override"
	ViolationEmptySelection  = "empty_selection"
	ViolationUnknownCategory = "unknown_category"
)

// Violation represents a single selection validation failure
type Violation struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"` // experience, projects, education, skills
	ID       string `json:"id,omitempty"`       // offending entry id or skill label
	Details  string `json:"details"`
}

// Violations represents an ordered collection of validation failures.
// The ordering is deterministic for identical inputs: it follows the order of
// the plan fields being checked, then the order of items within each field.
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Empty reports whether no violations were recorded
func (v *Violations) Empty() bool {
	return v == nil || len(v.Violations) == 0
}

// Messages returns the human-readable violation messages in order.
// This is the feedback payload consumed by the retry coordinator.
func (v *Violations) Messages() []string {
	if v == nil {
		return nil
	}
	msgs := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		msgs = append(msgs, violation.Details)
	}
	return msgs
}

// Add appends a violation
func (v *Violations) Add(violation Violation) {
	v.Violations = append(v.Violations, violation)
}

// NewUnknownIDViolation builds a violation for a plan id missing from the profile
func NewUnknownIDViolation(category, id string) Violation {
	return Violation{
		Type:     ViolationUnknownID,
		Category: category,
		ID:       id,
		Details:  fmt.Sprintf("unknown %s id: %q", category, id),
	}
}

// NewUnknownLabelViolation builds a violation for a skill label missing from the profile
func NewUnknownLabelViolation(label string) Violation {
	return Violation{
		Type:     ViolationUnknownLabel,
		Category: "skills",
		ID:       label,
		Details:  fmt.Sprintf("unknown skills label: %q", label),
	}
}

// NewOrphanOverrideViolation builds a violation for a bullet override keyed by an unselected entry
func NewOrphanOverrideViolation(id string) Violation {
	return Violation{
		Type:    ViolationOrphanOverride,
		ID:      id,
		Details: fmt.Sprintf("bullet_overrides refers to unselected entry id: %q", id),
	}
}

// NewEmptySelectionViolation builds the empty-resume violation
func NewEmptySelectionViolation() Violation {
	return Violation{
		Type:    ViolationEmptySelection,
		Details: "selection plan results in an empty resume",
	}
}
