package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionPlan_AbsentKeysDecodeToEmpty(t *testing.T) {
	var plan SelectionPlan
	err := json.Unmarshal([]byte(`{}`), &plan)
	require.NoError(t, err)

	assert.Empty(t, plan.SelectedExperienceIDs)
	assert.Empty(t, plan.SelectedProjectIDs)
	assert.Empty(t, plan.SelectedEducationIDs)
	assert.Empty(t, plan.SelectedSkillLabels)
	assert.Empty(t, plan.BulletOverrides)
	assert.Empty(t, plan.SectionOrder)
	assert.True(t, plan.IsEmpty())
}

func TestSelectionPlan_FullWireFormat(t *testing.T) {
	raw := `{
		"selected_experience_ids": ["exp_1", "exp_2"],
		"selected_project_ids": ["proj_1"],
		"selected_education_ids": ["edu_1"],
		"selected_skill_labels": ["Languages"],
		"bullet_overrides": {"exp_1": ["Rewritten bullet"]},
		"section_order": ["Projects", "Experience", "Education", "Skills"]
	}`

	var plan SelectionPlan
	require.NoError(t, json.Unmarshal([]byte(raw), &plan))

	assert.Equal(t, []string{"exp_1", "exp_2"}, plan.SelectedExperienceIDs)
	assert.Equal(t, []string{"Rewritten bullet"}, plan.BulletOverrides["exp_1"])
	assert.Equal(t, "Projects", plan.SectionOrder[0])
	assert.False(t, plan.IsEmpty())
}

func TestSelectionPlan_SelectedIDSet(t *testing.T) {
	plan := SelectionPlan{
		SelectedExperienceIDs: []string{"exp_1"},
		SelectedProjectIDs:    []string{"proj_1"},
		SelectedEducationIDs:  []string{"edu_1"},
	}

	set := plan.SelectedIDSet()
	assert.True(t, set["exp_1"])
	assert.True(t, set["proj_1"])
	assert.True(t, set["edu_1"])
	assert.False(t, set["exp_2"])
}

func TestSelectionPlan_SkillsOnlyIsNotEmpty(t *testing.T) {
	plan := SelectionPlan{SelectedSkillLabels: []string{"Languages"}}
	assert.False(t, plan.IsEmpty())
}
