package model

// Clone returns a deep copy of the document. Mutation operations clone before
// touching anything so callers can keep old snapshots indefinitely.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r
	out.BasicInfo = r.BasicInfo.Clone()
	out.Sections = make([]Section, len(r.Sections))
	for i := range r.Sections {
		out.Sections[i] = r.Sections[i].Clone()
	}
	return &out
}

// Clone returns a deep copy of the contact block.
func (b BasicInfo) Clone() BasicInfo {
	out := b
	out.Links = make([]Link, len(b.Links))
	copy(out.Links, b.Links)
	return out
}

// Clone returns a deep copy of the section and its entries.
func (s Section) Clone() Section {
	out := s
	out.Entries = make([]Entry, len(s.Entries))
	for i := range s.Entries {
		out.Entries[i] = s.Entries[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the entry and its bullets.
func (e Entry) Clone() Entry {
	out := e
	if e.TechStack != nil {
		out.TechStack = make([]string, len(e.TechStack))
		copy(out.TechStack, e.TechStack)
	}
	out.Bullets = make([]Bullet, len(e.Bullets))
	copy(out.Bullets, e.Bullets)
	return out
}
