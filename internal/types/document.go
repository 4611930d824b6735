package types

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Canonical section titles used when a plan supplies no section_order
const (
	SectionExperience = "Experience"
	SectionProjects   = "Projects"
	SectionEducation  = "Education"
	SectionSkills     = "Skills"
)

// CanonicalSectionOrder returns the default top-level section sequence
func CanonicalSectionOrder() []string {
	return []string{SectionExperience, SectionProjects, SectionEducation, SectionSkills}
}

// ExperienceEntry is a mapped experience item in the cv block.
// Empty optional fields are elided on serialization: the downstream schema
// treats absence and emptiness differently.
type ExperienceEntry struct {
	Company    string   `yaml:"company" json:"company"`
	Position   string   `yaml:"position" json:"position"`
	Location   string   `yaml:"location,omitempty" json:"location,omitempty"`
	Date       string   `yaml:"date,omitempty" json:"date,omitempty"`
	StartDate  string   `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate    string   `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Summary    string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Highlights []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
}

// ProjectEntry is a mapped project item in the cv block
type ProjectEntry struct {
	Name       string   `yaml:"name" json:"name"`
	Location   string   `yaml:"location,omitempty" json:"location,omitempty"`
	Date       string   `yaml:"date,omitempty" json:"date,omitempty"`
	StartDate  string   `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate    string   `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Summary    string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Highlights []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
}

// EducationEntry is a mapped education item in the cv block
type EducationEntry struct {
	Institution string   `yaml:"institution" json:"institution"`
	Area        string   `yaml:"area" json:"area"`
	Degree      string   `yaml:"degree,omitempty" json:"degree,omitempty"`
	Location    string   `yaml:"location,omitempty" json:"location,omitempty"`
	Date        string   `yaml:"date,omitempty" json:"date,omitempty"`
	StartDate   string   `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     string   `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Summary     string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Highlights  []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
}

// SkillLineEntry is a mapped one-line skill item in the cv block
type SkillLineEntry struct {
	Label   string `yaml:"label" json:"label"`
	Details string `yaml:"details" json:"details"`
}

// SocialNetwork is a social handle in the cv header
type SocialNetwork struct {
	Network  string `yaml:"network" json:"network"`
	Username string `yaml:"username" json:"username"`
}

// Section is one titled group of entries in the cv block.
// Entries within a section share one entry type.
type Section struct {
	Title   string
	Entries []any
}

// Sections is an ordered sequence of sections. It serializes as a mapping of
// title to entry list, preserving insertion order. Order is part of the
// contract: the mapper's output for identical inputs is byte-identical.
type Sections []Section

// MarshalYAML renders sections as an order-preserving YAML mapping
func (s Sections) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, section := range s {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(section.Title); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(section.Entries); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// MarshalJSON renders sections as an order-preserving JSON object
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(section.Title)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		entries, err := json.Marshal(section.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(entries)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CV is the content block produced by the deterministic mapper: the profile
// header plus the filtered, reordered sections.
type CV struct {
	Name           string          `yaml:"name" json:"name"`
	Headline       string          `yaml:"headline,omitempty" json:"headline,omitempty"`
	Location       string          `yaml:"location,omitempty" json:"location,omitempty"`
	Email          string          `yaml:"email,omitempty" json:"email,omitempty"`
	Phone          string          `yaml:"phone,omitempty" json:"phone,omitempty"`
	Website        string          `yaml:"website,omitempty" json:"website,omitempty"`
	SocialNetworks []SocialNetwork `yaml:"social_networks,omitempty" json:"social_networks,omitempty"`
	Sections       Sections        `yaml:"sections" json:"sections"`
}

// Document is the assembled four-block output handed to the schema authority.
// Each configuration block is either a system default or a caller override,
// last-writer-wins at block granularity.
type Document struct {
	CV       *CV            `yaml:"cv" json:"cv"`
	Design   map[string]any `yaml:"design" json:"design"`
	Locale   map[string]any `yaml:"locale" json:"locale"`
	Settings map[string]any `yaml:"settings" json:"settings"`
}
