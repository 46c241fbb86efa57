package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazenS1/Resume-Builder/internal/model"
)

func TestRenderHTML(t *testing.T) {
	doc := model.SampleResume("en")
	html, err := RenderHTML(doc, false)
	require.NoError(t, err)

	assert.Contains(t, html, `dir="ltr"`)
	assert.Contains(t, html, "Sarah Johnson")
	assert.Contains(t, html, "Senior Software Engineer")
	assert.Contains(t, html, "Work Experience</h2>")
	assert.Contains(t, html, "Mar 2022 — Present")
	assert.Contains(t, html, "Jan 2020 — Feb 2022")
	assert.Contains(t, html, "Led a team of 5 engineers")
	assert.Contains(t, html, "React · Node.js · MongoDB")
	assert.Contains(t, html, "github.com/sarahj-dev/taskmaster")
}

func TestRenderHTML_SectionsFollowPositionOrder(t *testing.T) {
	doc := model.SampleResume("en")
	// scramble slice order; positions still dictate output order
	doc.Sections[0], doc.Sections[2] = doc.Sections[2], doc.Sections[0]

	html, err := RenderHTML(doc, false)
	require.NoError(t, err)
	summary := strings.Index(html, "Summary</h2>")
	education := strings.Index(html, "Education</h2>")
	require.Greater(t, summary, 0)
	require.Greater(t, education, 0)
	assert.Less(t, summary, education)
}

func TestRenderHTML_RTL(t *testing.T) {
	doc := model.SampleResume("ar")
	html, err := RenderHTML(doc, true)
	require.NoError(t, err)

	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, "سارة أحمد")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	doc := model.SampleResume("en")
	doc.BasicInfo.Name = `<script>alert("x")</script>`

	html, err := RenderHTML(doc, false)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestRenderHTML_MinimalDocument(t *testing.T) {
	doc := model.NewResume("u1", "Empty")
	html, err := RenderHTML(doc, false)
	require.NoError(t, err)
	assert.Contains(t, html, "<body>")
}
