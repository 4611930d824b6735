// Package types provides type definitions for structured data used throughout the tailorcv pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents the user's persistent, job-independent career data.
// It is constructed once per run and treated as read-only by all downstream stages.
type Profile struct {
	Meta           Meta         `yaml:"meta" validate:"required"`
	Education      []Education  `yaml:"education"`
	Experience     []Experience `yaml:"experience"`
	Projects       []Project    `yaml:"projects"`
	Skills         []SkillEntry `yaml:"skills"`
	Certifications []string     `yaml:"certifications"`
	Interests      []string     `yaml:"interests"`
}

// Meta holds the profile header fields
type Meta struct {
	Name     string   `yaml:"name" validate:"required"`
	Headline string   `yaml:"headline"`
	Location string   `yaml:"location" validate:"required"`
	Email    string   `yaml:"email" validate:"required,email"`
	Phone    string   `yaml:"phone"`
	Website  string   `yaml:"website"`
	Socials  []Social `yaml:"socials"`
}

// Social represents a social network handle for the profile header
type Social struct {
	Network  string `yaml:"network" validate:"required"`
	Username string `yaml:"username" validate:"required"`
}

// Experience represents a single position. Entries without an ID are never
// individually selectable by a selection plan.
type Experience struct {
	ID         string   `yaml:"id"`
	Company    string   `yaml:"company" validate:"required"`
	Position   string   `yaml:"position" validate:"required"`
	Location   string   `yaml:"location"`
	Date       string   `yaml:"date"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
	Tags       []string `yaml:"tags"`
}

// Project represents a single project entry
type Project struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name" validate:"required"`
	Summary    string   `yaml:"summary"`
	Location   string   `yaml:"location"`
	Date       string   `yaml:"date"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	Highlights []string `yaml:"highlights"`
	Tags       []string `yaml:"tags"`
}

// Education represents a single education entry
type Education struct {
	ID          string   `yaml:"id"`
	Institution string   `yaml:"institution" validate:"required"`
	Area        string   `yaml:"area" validate:"required"`
	Degree      string   `yaml:"degree"`
	Location    string   `yaml:"location"`
	Date        string   `yaml:"date"`
	StartDate   string   `yaml:"start_date"`
	EndDate     string   `yaml:"end_date"`
	Summary     string   `yaml:"summary"`
	Highlights  []string `yaml:"highlights"`
	Tags        []string `yaml:"tags"`
}

// SkillEntry represents a labeled skill list, e.g. label "Languages", details "Go, Python"
type SkillEntry struct {
	Label   string `yaml:"label" validate:"required"`
	Details string `yaml:"details" validate:"required"`
}

// ExperienceIDs returns the ids of all individually selectable experience entries
func (p *Profile) ExperienceIDs() []string {
	ids := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		if e.ID != "" {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// ProjectIDs returns the ids of all individually selectable project entries
func (p *Profile) ProjectIDs() []string {
	ids := make([]string, 0, len(p.Projects))
	for _, pr := range p.Projects {
		if pr.ID != "" {
			ids = append(ids, pr.ID)
		}
	}
	return ids
}

// EducationIDs returns the ids of all individually selectable education entries
func (p *Profile) EducationIDs() []string {
	ids := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		if e.ID != "" {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SkillLabels returns the skill category labels in profile order
func (p *Profile) SkillLabels() []string {
	labels := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		labels = append(labels, s.Label)
	}
	return labels
}
