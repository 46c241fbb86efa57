package store

import "sync"

// EditorSync tracks which section and entry the editor currently focuses so
// an independent preview renderer can highlight them. It holds ids only and
// never checks them against the document; a stale id simply highlights
// nothing. By caller convention an active entry implies its parent section
// is active too, but that is not enforced here.
type EditorSync struct {
	mu              sync.Mutex
	activeSectionID string
	activeEntryID   string
}

// NewEditorSync returns a sync state with nothing active.
func NewEditorSync() *EditorSync {
	return &EditorSync{}
}

// SetActiveSection records the focused section; empty string means none.
func (es *EditorSync) SetActiveSection(sectionID string) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.activeSectionID = sectionID
}

// SetActiveEntry records the focused entry; empty string means none.
func (es *EditorSync) SetActiveEntry(entryID string) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.activeEntryID = entryID
}

// ActiveSectionID returns the focused section id, or "" when none.
func (es *EditorSync) ActiveSectionID() string {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.activeSectionID
}

// ActiveEntryID returns the focused entry id, or "" when none.
func (es *EditorSync) ActiveEntryID() string {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.activeEntryID
}

// Clear drops both active ids.
func (es *EditorSync) Clear() {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.activeSectionID = ""
	es.activeEntryID = ""
}
