// Package model defines the résumé document tree and its structural helpers.
// The JSON field names are the interchange format: exported documents are the
// Resume struct serialized verbatim.
package model

import "time"

// SectionType is the closed set of section categories.
type SectionType string

const (
	SectionSummary         SectionType = "SUMMARY"
	SectionWorkExperience  SectionType = "WORK_EXPERIENCE"
	SectionProject         SectionType = "PROJECT"
	SectionSkill           SectionType = "SKILL"
	SectionEducation       SectionType = "EDUCATION"
	SectionCertification   SectionType = "CERTIFICATION"
	SectionExtracurricular SectionType = "EXTRACURRICULAR"
	SectionCustom          SectionType = "CUSTOM"
)

// SectionTypes lists every valid SectionType in canonical order.
var SectionTypes = []SectionType{
	SectionSummary,
	SectionWorkExperience,
	SectionProject,
	SectionSkill,
	SectionEducation,
	SectionCertification,
	SectionExtracurricular,
	SectionCustom,
}

// IsValid reports whether t is one of the known section types.
func (t SectionType) IsValid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SectionBlueprint pairs a section type with its default display title.
type SectionBlueprint struct {
	Type  SectionType
	Title string
}

// DefaultSectionBlueprints is the ordered set of sections offered when a new
// section is added. CUSTOM is intentionally absent: custom sections always
// carry an explicit title override.
var DefaultSectionBlueprints = []SectionBlueprint{
	{Type: SectionSummary, Title: "Summary"},
	{Type: SectionWorkExperience, Title: "Work Experience"},
	{Type: SectionProject, Title: "Projects"},
	{Type: SectionSkill, Title: "Skills"},
	{Type: SectionEducation, Title: "Education"},
	{Type: SectionCertification, Title: "Certifications"},
	{Type: SectionExtracurricular, Title: "Extracurricular"},
}

// BlueprintFor returns the blueprint for t, falling back to the first
// blueprint when t is unknown.
func BlueprintFor(t SectionType) SectionBlueprint {
	for _, bp := range DefaultSectionBlueprints {
		if bp.Type == t {
			return bp
		}
	}
	return DefaultSectionBlueprints[0]
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type BasicInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Headline string `json:"headline,omitempty"`
	Links    []Link `json:"links"`
}

// Metadata holds per-document presentation settings.
type Metadata struct {
	Locale       string  `json:"locale"`
	Theme        string  `json:"theme"`
	FontFamily   string  `json:"fontFamily"`
	LineHeight   float64 `json:"lineHeight"`
	AccentColor  string  `json:"accentColor"`
	PrimaryColor string  `json:"primaryColor"`
}

// DefaultMetadata returns the presentation settings a fresh document starts with.
func DefaultMetadata() Metadata {
	return Metadata{
		Locale:       "en-US",
		Theme:        "light",
		FontFamily:   "Inter",
		LineHeight:   1.4,
		AccentColor:  "#2563eb",
		PrimaryColor: "#0f172a",
	}
}

// DefaultBasicInfo returns an empty contact block with a non-nil links slice.
func DefaultBasicInfo() BasicInfo {
	return BasicInfo{Links: []Link{}}
}

type Bullet struct {
	ID       string `json:"id"`
	EntryID  string `json:"entryId"`
	Position int    `json:"position"`
	Text     string `json:"text"`
}

type Entry struct {
	ID           string   `json:"id"`
	SectionID    string   `json:"sectionId"`
	Position     int      `json:"position"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	CompanyOrOrg string   `json:"companyOrOrg,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  string   `json:"description,omitempty"`
	ProjectURL   string   `json:"projectUrl,omitempty"`
	TechStack    []string `json:"techStack,omitempty"`
	Bullets      []Bullet `json:"bullets"`
}

type Section struct {
	ID            string      `json:"id"`
	ResumeID      string      `json:"resumeId"`
	Type          SectionType `json:"type"`
	TitleOverride string      `json:"titleOverride,omitempty"`
	Position      int         `json:"position"`
	Collapsed     bool        `json:"collapsed"`
	Entries       []Entry     `json:"entries"`
}

// Resume is the root document. It exclusively owns every descendant; a value
// handed out by the store must be treated as immutable.
type Resume struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	BasicInfo BasicInfo `json:"basicInfo"`
	Metadata  Metadata  `json:"metadata"`
	Sections  []Section `json:"sections"`
}

// SectionByID returns the first section with the given id, or nil.
// Lookup is first-match: duplicate SUMMARY sections, which the model does not
// forbid, resolve to the earliest slice element.
func (r *Resume) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

// SectionByType returns the first section of the given type, or nil.
func (r *Resume) SectionByType(t SectionType) *Section {
	for i := range r.Sections {
		if r.Sections[i].Type == t {
			return &r.Sections[i]
		}
	}
	return nil
}

// EntryByID returns the first entry with the given id inside s, or nil.
func (s *Section) EntryByID(id string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return &s.Entries[i]
		}
	}
	return nil
}

// BulletByID returns the first bullet with the given id inside e, or nil.
func (e *Entry) BulletByID(id string) *Bullet {
	for i := range e.Bullets {
		if e.Bullets[i].ID == id {
			return &e.Bullets[i]
		}
	}
	return nil
}
