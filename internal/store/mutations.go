package store

import "github.com/mazenS1/Resume-Builder/internal/model"

// Transform signatures for the update operations. Transforms receive a deep
// copy and may change any content field; identity and position fields are
// engine-owned and restored after the transform runs.

// UpdateBasicInfo applies transform to a copy of the contact block.
func (s *Store) UpdateBasicInfo(transform func(*model.BasicInfo)) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		transform(&next.BasicInfo)
		return next, true
	})
}

// UpdateMetadata applies transform to a copy of the presentation settings.
func (s *Store) UpdateMetadata(transform func(*model.Metadata)) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		transform(&next.Metadata)
		return next, true
	})
}

// AddSection appends a new empty section of the given type. Unknown types
// fall back to the first blueprint. Duplicate SUMMARY sections are not
// rejected here; lookups are first-match by convention.
func (s *Store) AddSection(t model.SectionType) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		next.Sections = append(next.Sections, model.NewSection(next.ID, t, len(next.Sections)))
		return next, true
	})
}

// UpdateSection applies transform to a copy of the named section. A stale id
// leaves the document unchanged.
func (s *Store) UpdateSection(sectionID string, transform func(*model.Section)) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		id, resumeID, pos := sec.ID, sec.ResumeID, sec.Position
		transform(sec)
		sec.ID, sec.ResumeID, sec.Position = id, resumeID, pos
		return next, true
	})
}

// RemoveSection deletes the named section with all its entries and renumbers
// the survivors so positions stay dense.
func (s *Store) RemoveSection(sectionID string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		kept := next.Sections[:0]
		for _, sec := range next.Sections {
			if sec.ID != sectionID {
				kept = append(kept, sec)
			}
		}
		if len(kept) == len(next.Sections) {
			return r, false
		}
		next.Sections = kept
		renumberSections(next)
		return next, true
	})
}

// ReorderSections rearranges sections so the named ids come first in the
// given order; sections absent from orderedIDs keep their relative order and
// follow after. Ids that match nothing are skipped. All positions are
// renumbered densely afterward.
func (s *Store) ReorderSections(orderedIDs []string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		byID := make(map[string]int, len(next.Sections))
		for i, sec := range next.Sections {
			byID[sec.ID] = i
		}
		named := make([]model.Section, 0, len(orderedIDs))
		taken := make(map[string]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			if i, ok := byID[id]; ok && !taken[id] {
				named = append(named, next.Sections[i])
				taken[id] = true
			}
		}
		rest := make([]model.Section, 0, len(next.Sections)-len(named))
		for _, sec := range next.Sections {
			if !taken[sec.ID] {
				rest = append(rest, sec)
			}
		}
		next.Sections = append(named, rest...)
		renumberSections(next)
		if sameSectionOrder(r, next) {
			return r, false
		}
		return next, true
	})
}

// AddEntry appends a blank entry to the named section.
func (s *Store) AddEntry(sectionID string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		sec.Entries = append(sec.Entries, model.NewEntry(sec.ID, len(sec.Entries)))
		return next, true
	})
}

// UpdateEntry applies transform to a copy of the named entry. Either id being
// stale leaves the document unchanged.
func (s *Store) UpdateEntry(sectionID, entryID string, transform func(*model.Entry)) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		e := sec.EntryByID(entryID)
		if e == nil {
			return r, false
		}
		id, secID, pos := e.ID, e.SectionID, e.Position
		transform(e)
		e.ID, e.SectionID, e.Position = id, secID, pos
		return next, true
	})
}

// RemoveEntry deletes the named entry and renumbers its surviving siblings.
func (s *Store) RemoveEntry(sectionID, entryID string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		kept := sec.Entries[:0]
		for _, e := range sec.Entries {
			if e.ID != entryID {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(sec.Entries) {
			return r, false
		}
		sec.Entries = kept
		renumberEntries(sec)
		return next, true
	})
}

// ReorderEntries rebuilds the named section's entry list from orderedIDs.
// Entries whose id is absent from orderedIDs are dropped, so callers must
// always pass the complete id set; ids that match nothing are skipped.
func (s *Store) ReorderEntries(sectionID string, orderedIDs []string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		byID := make(map[string]int, len(sec.Entries))
		for i, e := range sec.Entries {
			byID[e.ID] = i
		}
		reordered := make([]model.Entry, 0, len(orderedIDs))
		seen := make(map[string]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			if i, ok := byID[id]; ok && !seen[id] {
				reordered = append(reordered, sec.Entries[i])
				seen[id] = true
			}
		}
		prev := sec.Entries
		sec.Entries = reordered
		renumberEntries(sec)
		if sameEntryOrder(prev, sec.Entries) {
			return r, false
		}
		return next, true
	})
}

// AddBullet appends an empty bullet to the named entry.
func (s *Store) AddBullet(sectionID, entryID string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		e := sec.EntryByID(entryID)
		if e == nil {
			return r, false
		}
		e.Bullets = append(e.Bullets, model.NewBullet(e.ID, len(e.Bullets)))
		return next, true
	})
}

// UpdateBullet replaces one bullet's text. Any stale id segment leaves the
// document unchanged.
func (s *Store) UpdateBullet(sectionID, entryID, bulletID, text string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		e := sec.EntryByID(entryID)
		if e == nil {
			return r, false
		}
		b := e.BulletByID(bulletID)
		if b == nil {
			return r, false
		}
		b.Text = text
		return next, true
	})
}

// RemoveBullet deletes the named bullet and renumbers its surviving siblings.
func (s *Store) RemoveBullet(sectionID, entryID, bulletID string) *model.Resume {
	return s.apply(func(r *model.Resume) (*model.Resume, bool) {
		next := r.Clone()
		sec := next.SectionByID(sectionID)
		if sec == nil {
			return r, false
		}
		e := sec.EntryByID(entryID)
		if e == nil {
			return r, false
		}
		kept := e.Bullets[:0]
		for _, b := range e.Bullets {
			if b.ID != bulletID {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(e.Bullets) {
			return r, false
		}
		e.Bullets = kept
		renumberBullets(e)
		return next, true
	})
}

// renumberSections rewrites section positions to match slice order.
func renumberSections(r *model.Resume) {
	for i := range r.Sections {
		r.Sections[i].Position = i
	}
}

// renumberEntries rewrites entry positions to match slice order.
func renumberEntries(sec *model.Section) {
	for i := range sec.Entries {
		sec.Entries[i].Position = i
	}
}

// renumberBullets rewrites bullet positions to match slice order.
func renumberBullets(e *model.Entry) {
	for i := range e.Bullets {
		e.Bullets[i].Position = i
	}
}

func sameSectionOrder(a, b *model.Resume) bool {
	if len(a.Sections) != len(b.Sections) {
		return false
	}
	for i := range a.Sections {
		if a.Sections[i].ID != b.Sections[i].ID || a.Sections[i].Position != b.Sections[i].Position {
			return false
		}
	}
	return true
}

func sameEntryOrder(a, b []model.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Position != b[i].Position {
			return false
		}
	}
	return true
}
