package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tailorcv/internal/types"
)

func testProfile() *types.Profile {
	return &types.Profile{
		Meta: types.Meta{Name: "Test User", Location: "Boston", Email: "test@example.com"},
		Experience: []types.Experience{
			{ID: "exp_1", Company: "Acme", Position: "Engineer", Highlights: []string{"A", "B"}},
			{ID: "exp_2", Company: "Globex", Position: "Developer"},
		},
		Projects: []types.Project{
			{ID: "proj_1", Name: "tailorcv"},
		},
		Education: []types.Education{
			{ID: "edu_1", Institution: "MIT", Area: "CS"},
		},
		Skills: []types.SkillEntry{
			{Label: "Languages", Details: "Go, Python"},
			{Label: "Infrastructure", Details: "Kubernetes"},
		},
	}
}

func TestValidate_ValidPlan(t *testing.T) {
	plan := &types.SelectionPlan{
		SelectedExperienceIDs: []string{"exp_1", "exp_2"},
		SelectedProjectIDs:    []string{"proj_1"},
		SelectedEducationIDs:  []string{"edu_1"},
		SelectedSkillLabels:   []string{"Languages"},
		BulletOverrides:       map[string][]string{"exp_1": {"C"}},
	}

	assert.Nil(t, Validate(testProfile(), plan))
}

func TestValidate_UnknownExperienceID(t *testing.T) {
	plan := &types.SelectionPlan{
		SelectedExperienceIDs: []string{"exp_1", "exp_9"},
	}

	failure := Validate(testProfile(), plan)
	require.NotNil(t, failure)

	require.Len(t, failure.Violations.Violations, 1)
	v := failure.Violations.Violations[0]
	assert.Equal(t, types.ViolationUnknownID, v.Type)
	assert.Equal(t, "experience", v.Category)
	assert.Equal(t, "exp_9", v.ID)
	assert.Contains(t, v.Details, "exp_9")
}

func TestValidate_UnknownSkillLabel(t *testing.T) {
	plan := &types.SelectionPlan{
		SelectedExperienceIDs: []string{"exp_1"},
		SelectedSkillLabels:   []string{"Databases"},
	}

	failure := Validate(testProfile(), plan)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Error(), `"Databases"`)
}

func TestValidate_OverrideForUnselectedEntry(t *testing.T) {
	// exp_2 exists in the profile but is not selected; an override for it is
	// a violation rather than being silently ignored.
	plan := &types.SelectionPlan{
		SelectedExperienceIDs: []string{"exp_1"},
		BulletOverrides:       map[string][]string{"exp_2": {"rewritten"}},
	}

	failure := Validate(testProfile(), plan)
	require.NotNil(t, failure)

	require.Len(t, failure.Violations.Violations, 1)
	assert.Equal(t, types.ViolationOrphanOverride, failure.Violations.Violations[0].Type)
	assert.Equal(t, "exp_2", failure.Violations.Violations[0].ID)
}

func TestValidate_EmptySelection(t *testing.T) {
	failure := Validate(testProfile(), &types.SelectionPlan{})
	require.NotNil(t, failure)

	require.Len(t, failure.Violations.Violations, 1)
	assert.Equal(t, types.ViolationEmptySelection, failure.Violations.Violations[0].Type)
	assert.Contains(t, failure.Violations.Violations[0].Details, "empty resume")
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	plan := &types.SelectionPlan{
		SelectedExperienceIDs: []string{"exp_9"},
		SelectedProjectIDs:    []string{"proj_9"},
		SelectedEducationIDs:  []string{"edu_9"},
		SelectedSkillLabels:   []string{"Nope"},
		BulletOverrides:       map[string][]string{"exp_1": {"x"}},
	}

	failure := Validate(testProfile(), plan)
	require.NotNil(t, failure)

	// All checks ran: three unknown ids, one unknown label, one orphan override
	require.Len(t, failure.Violations.Violations, 5)
	assert.Equal(t, "experience", failure.Violations.Violations[0].Category)
	assert.Equal(t, "projects", failure.Violations.Violations[1].Category)
	assert.Equal(t, "education", failure.Violations.Violations[2].Category)
	assert.Equal(t, types.ViolationUnknownLabel, failure.Violations.Violations[3].Type)
	assert.Equal(t, types.ViolationOrphanOverride, failure.Violations.Violations[4].Type)
}

func TestValidate_DeterministicViolationOrder(t *testing.T) {
	plan := &types.SelectionPlan{
		SelectedExperienceIDs: []string{"exp_1"},
		BulletOverrides: map[string][]string{
			"zz_id": {"x"},
			"aa_id": {"y"},
			"mm_id": {"z"},
		},
	}

	first := Validate(testProfile(), plan)
	require.NotNil(t, first)

	for i := 0; i < 20; i++ {
		again := Validate(testProfile(), plan)
		require.NotNil(t, again)
		assert.Equal(t, first.Messages(), again.Messages())
	}

	// Override violations come in sorted key order
	assert.Equal(t, "aa_id", first.Violations.Violations[0].ID)
	assert.Equal(t, "mm_id", first.Violations.Violations[1].ID)
	assert.Equal(t, "zz_id", first.Violations.Violations[2].ID)
}

func TestValidate_SkillsOnlyPlanIsValid(t *testing.T) {
	plan := &types.SelectionPlan{SelectedSkillLabels: []string{"Languages"}}
	assert.Nil(t, Validate(testProfile(), plan))
}

func TestValidate_EntriesWithoutIDsAreNotSelectable(t *testing.T) {
	p := testProfile()
	p.Experience = append(p.Experience, types.Experience{Company: "NoID Inc", Position: "Engineer"})

	// A plan can only reference entries that expose ids; the id-less entry
	// contributes nothing to the known set.
	plan := &types.SelectionPlan{SelectedExperienceIDs: []string{""}}
	failure := Validate(p, plan)
	require.NotNil(t, failure)
	assert.Equal(t, types.ViolationUnknownID, failure.Violations.Violations[0].Type)
}
