package export

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazenS1/Resume-Builder/internal/model"
)

func readDocxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("part %s not found in archive", name)
	return ""
}

func TestExportDOCX_PackageParts(t *testing.T) {
	data, err := ExportDOCX(model.SampleResume("en"), false)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	} {
		assert.True(t, names[want], "missing part %s", want)
	}
}

func TestExportDOCX_DocumentContent(t *testing.T) {
	doc := model.SampleResume("en")
	data, err := ExportDOCX(doc, false)
	require.NoError(t, err)

	body := readDocxPart(t, data, "word/document.xml")
	assert.Contains(t, body, doc.BasicInfo.Name)
	assert.Contains(t, body, "WORK EXPERIENCE")
	assert.Contains(t, body, "Mar 2022 — Present")
	assert.Contains(t, body, "• ")
	assert.NotContains(t, body, "<w:bidi/>")
}

func TestExportDOCX_EscapesText(t *testing.T) {
	doc := model.NewResume("user-1", "Escape Check")
	doc.BasicInfo.Name = "Q&A <Specialist>"

	data, err := ExportDOCX(doc, false)
	require.NoError(t, err)

	body := readDocxPart(t, data, "word/document.xml")
	assert.Contains(t, body, "Q&amp;A &lt;Specialist&gt;")
	assert.NotContains(t, body, "<Specialist>")
}

func TestExportDOCX_RTL(t *testing.T) {
	data, err := ExportDOCX(model.SampleResume("ar"), true)
	require.NoError(t, err)

	body := readDocxPart(t, data, "word/document.xml")
	assert.Contains(t, body, "<w:bidi/>")
}

func TestExportDOCX_DoesNotMutateInput(t *testing.T) {
	doc := model.SampleResume("en")
	before, err := ExportJSON(doc)
	require.NoError(t, err)

	_, err = ExportDOCX(doc, false)
	require.NoError(t, err)

	after, err := ExportJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
