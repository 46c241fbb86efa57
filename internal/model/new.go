package model

import (
	"time"

	"github.com/google/uuid"
)

// NewResume creates a blank document owned by userID. It starts with default
// contact and presentation settings and no sections; the onboarding flow adds
// sections one at a time.
func NewResume(userID, title string) *Resume {
	now := time.Now().UTC()
	if title == "" {
		title = "Untitled Resume"
	}
	return &Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		BasicInfo: DefaultBasicInfo(),
		Metadata:  DefaultMetadata(),
		Sections:  []Section{},
	}
}

// NewSection creates an empty section of the given type at the given position.
// Unknown types fall back to the first blueprint, matching the add-section
// behavior of the editor.
func NewSection(resumeID string, t SectionType, position int) Section {
	bp := BlueprintFor(t)
	if !t.IsValid() {
		t = bp.Type
	}
	return Section{
		ID:            uuid.NewString(),
		ResumeID:      resumeID,
		Type:          t,
		TitleOverride: bp.Title,
		Position:      position,
		Collapsed:     false,
		Entries:       []Entry{},
	}
}

// NewEntry creates a blank entry at the given position within sectionID.
func NewEntry(sectionID string, position int) Entry {
	return Entry{
		ID:        uuid.NewString(),
		SectionID: sectionID,
		Position:  position,
		TechStack: []string{},
		Bullets:   []Bullet{},
	}
}

// NewBullet creates an empty bullet at the given position within entryID.
func NewBullet(entryID string, position int) Bullet {
	return Bullet{
		ID:       uuid.NewString(),
		EntryID:  entryID,
		Position: position,
	}
}

// Restamp assigns a fresh id and fresh timestamps to the document and fixes
// up every section back-reference. Nested section/entry/bullet ids are left
// untouched: they only need to be unique within the document.
func (r *Resume) Restamp() {
	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now
	for i := range r.Sections {
		r.Sections[i].ResumeID = r.ID
	}
}
