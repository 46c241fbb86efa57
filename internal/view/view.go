// Package view holds the pure projection helpers shared by the editor form,
// the preview renderer, and the exporters. Nothing here caches or mutates;
// callers that want memoization do it themselves.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/mazenS1/Resume-Builder/internal/model"
)

// SortSections returns the sections ordered ascending by position. The sort
// is stable so equal positions keep their slice order. The input is not
// modified.
func SortSections(sections []model.Section) []model.Section {
	out := make([]model.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// SectionDisplayTitle resolves the title shown for a section: the override
// verbatim when set and non-empty, otherwise the humanized type name
// (WORK_EXPERIENCE becomes "Work Experience").
func SectionDisplayTitle(s model.Section) string {
	if s.TitleOverride != "" {
		return s.TitleOverride
	}
	return humanizeType(s.Type)
}

func humanizeType(t model.SectionType) string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// dateLayouts are tried in order when parsing stored date strings. Dates are
// month precision; the day component, when present, is always "01".
var dateLayouts = []string{"2006-01-02", "2006-01"}

// FormatDateRange renders a "Mar 2022 — Present" style label.
// Both bounds absent yields ""; IsCurrent forces "Present" as the end label
// regardless of any stored end date; a single bound renders without a dash.
func FormatDateRange(start, end string, isCurrent bool) string {
	if start == "" && end == "" {
		return ""
	}
	startLabel := formatMonth(start)
	endLabel := formatMonth(end)
	if isCurrent {
		endLabel = "Present"
	}
	if startLabel == "" && endLabel == "" {
		return ""
	}
	if startLabel == "" {
		return endLabel
	}
	if endLabel == "" {
		return startLabel
	}
	return startLabel + " — " + endLabel
}

// formatMonth renders a stored date as "Jan 2006"; unparseable or empty
// input renders as "".
func formatMonth(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}
