package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorSync(t *testing.T) {
	es := NewEditorSync()
	assert.Empty(t, es.ActiveSectionID())
	assert.Empty(t, es.ActiveEntryID())

	es.SetActiveSection("s1")
	es.SetActiveEntry("e1")
	assert.Equal(t, "s1", es.ActiveSectionID())
	assert.Equal(t, "e1", es.ActiveEntryID())

	// ids are not checked against any document; stale values are allowed
	es.SetActiveEntry("gone")
	assert.Equal(t, "gone", es.ActiveEntryID())

	es.SetActiveSection("")
	assert.Empty(t, es.ActiveSectionID())

	es.SetActiveSection("s2")
	es.Clear()
	assert.Empty(t, es.ActiveSectionID())
	assert.Empty(t, es.ActiveEntryID())
}
