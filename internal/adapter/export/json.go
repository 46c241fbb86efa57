// Package export serializes finalized document snapshots to the interchange
// formats: JSON, HTML (which also backs the PDF path), PDF, and DOCX. Every
// exporter works on an immutable snapshot taken at invocation time, so the
// document may keep changing while an export runs.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/mazenS1/Resume-Builder/internal/model"
)

// ExportJSON serializes the document verbatim as indented JSON.
func ExportJSON(r *model.Resume) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export resume: %w", err)
	}
	return out, nil
}

// ImportJSON validates raw against the resume schema and returns the decoded
// document with a fresh id and fresh timestamps, so an import can never
// collide with a document already in the store. Nested ids are kept as-is.
func ImportJSON(raw []byte) (*model.Resume, error) {
	if err := model.ValidateDocument(raw); err != nil {
		return nil, err
	}
	r := &model.Resume{}
	if err := json.Unmarshal(raw, r); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	r.Restamp()
	return r, nil
}
