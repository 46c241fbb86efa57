package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazenS1/Resume-Builder/internal/adapter/storage"
	"github.com/mazenS1/Resume-Builder/internal/logging"
	"github.com/mazenS1/Resume-Builder/internal/model"
)

type stubRenderer struct {
	lastHTML string
	out      []byte
	err      error
}

func (r *stubRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	r.lastHTML = html
	return r.out, r.err
}

func newTestSession(t *testing.T) (*Session, *storage.Store, *stubRenderer) {
	t.Helper()
	ctx := context.Background()
	repo, err := storage.Open(ctx, filepath.Join(t.TempDir(), "resumes.db"), logging.Nop{})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	renderer := &stubRenderer{out: []byte("%PDF-1.4 stub")}
	return NewSession(repo, renderer), repo, renderer
}

func TestOpen_EmptyStore(t *testing.T) {
	s, _, _ := newTestSession(t)

	require.NoError(t, s.Open(context.Background()))
	assert.Nil(t, s.Document())
}

func TestOpen_RestoresActiveDocument(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestSession(t)

	created, err := s.CreateBlank(ctx, "u1", "My Resume")
	require.NoError(t, err)

	// A second session over the same store picks the document back up.
	s2 := NewSession(repo, &stubRenderer{})
	require.NoError(t, s2.Open(ctx))
	require.NotNil(t, s2.Document())
	assert.Equal(t, created.ID, s2.Document().ID)
	assert.Equal(t, "My Resume", s2.Document().Title)
}

func TestOpen_MissingActiveDocumentClearsPointer(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestSession(t)

	require.NoError(t, repo.SetActiveResumeID(ctx, "gone"))
	require.NoError(t, s.Open(ctx))
	assert.Nil(t, s.Document())

	id, err := repo.ActiveResumeID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestCreateBlank(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestSession(t)

	r, err := s.CreateBlank(ctx, "u1", "Fresh Start")
	require.NoError(t, err)
	assert.Equal(t, "Fresh Start", r.Title)
	assert.Empty(t, r.Sections)

	require.NotNil(t, s.Document())
	assert.Equal(t, r.ID, s.Document().ID)

	active, err := repo.ActiveResumeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, r.ID, active)

	stored, err := repo.LoadResume(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Start", stored.Title)
}

func TestCreateFromTemplate(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	r, err := s.CreateFromTemplate(ctx, "u1", "en")
	require.NoError(t, err)
	assert.Equal(t, "u1", r.UserID)
	assert.NotEmpty(t, r.Sections)
	assert.NotEqual(t, model.SampleResume("en").ID, r.ID)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestSession(t)

	raw, err := s.CreateFromTemplate(ctx, "u1", "en")
	require.NoError(t, err)
	payload, err := s.ExportJSON()
	require.NoError(t, err)

	imported, err := s.Import(ctx, payload)
	require.NoError(t, err)
	assert.NotEqual(t, raw.ID, imported.ID, "import adopts a fresh id")
	assert.Equal(t, raw.Title, imported.Title)
	assert.Equal(t, imported.ID, s.Document().ID)

	active, err := repo.ActiveResumeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, imported.ID, active)
}

func TestImport_InvalidPayloadLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	current, err := s.CreateBlank(ctx, "u1", "Keep Me")
	require.NoError(t, err)

	_, err = s.Import(ctx, []byte(`{"title":"no basics"}`))
	require.Error(t, err)

	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
	require.NotNil(t, s.Document())
	assert.Equal(t, current.ID, s.Document().ID)
}

func TestOpenResume_SwitchesDocuments(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestSession(t)

	first, err := s.CreateBlank(ctx, "u1", "First")
	require.NoError(t, err)
	second, err := s.CreateBlank(ctx, "u1", "Second")
	require.NoError(t, err)
	assert.Equal(t, second.ID, s.Document().ID)

	s.Sync().SetActiveSection("sec-x")
	opened, err := s.OpenResume(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, opened.ID)
	assert.Equal(t, first.ID, s.Document().ID)
	assert.Empty(t, s.Sync().ActiveSectionID(), "switching documents clears editor focus")

	active, err := repo.ActiveResumeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active)
}

func TestOpenResume_NotFound(t *testing.T) {
	s, _, _ := newTestSession(t)

	_, err := s.OpenResume(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteResume_OtherDocument(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	first, err := s.CreateBlank(ctx, "u1", "First")
	require.NoError(t, err)
	second, err := s.CreateBlank(ctx, "u1", "Second")
	require.NoError(t, err)

	require.NoError(t, s.DeleteResume(ctx, first.ID))
	require.NotNil(t, s.Document())
	assert.Equal(t, second.ID, s.Document().ID)

	list, err := s.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestDeleteResume_WorkingDocumentResetsEditor(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	r, err := s.CreateBlank(ctx, "u1", "Doomed")
	require.NoError(t, err)
	s.Sync().SetActiveSection("sec-1")

	require.NoError(t, s.DeleteResume(ctx, r.ID))
	assert.Nil(t, s.Document())
	assert.Empty(t, s.Sync().ActiveSectionID())
}

func TestExports_NoDocument(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()

	_, err := s.ExportJSON()
	assert.ErrorIs(t, err, ErrNoDocument)
	_, err = s.ExportPDF(ctx, false)
	assert.ErrorIs(t, err, ErrNoDocument)
	_, err = s.ExportDOCX(false)
	assert.ErrorIs(t, err, ErrNoDocument)
	_, err = s.RenderPreview(false)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestExportPDF_UsesRenderedHTML(t *testing.T) {
	ctx := context.Background()
	s, _, renderer := newTestSession(t)

	_, err := s.CreateFromTemplate(ctx, "u1", "en")
	require.NoError(t, err)

	pdf, err := s.ExportPDF(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 stub"), pdf)
	assert.Contains(t, renderer.lastHTML, s.Document().BasicInfo.Name)
}

func TestRenderPreview(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	_, err := s.CreateFromTemplate(ctx, "u1", "ar")
	require.NoError(t, err)

	html, err := s.RenderPreview(true)
	require.NoError(t, err)
	assert.Contains(t, html, `dir="rtl"`)
}

func TestOpen_AloneDoesNotRewriteStoredDocument(t *testing.T) {
	ctx := context.Background()
	repo, err := storage.Open(ctx, filepath.Join(t.TempDir(), "resumes.db"), logging.Nop{})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	s := NewSession(repo, &stubRenderer{}, WithAutosaveDelay(20*time.Millisecond))
	r, err := s.CreateBlank(ctx, "u1", "Stable")
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	stored, err := repo.LoadResume(ctx, r.ID)
	require.NoError(t, err)
	before := stored.UpdatedAt

	// Loading without editing must not schedule a save: a rewrite would
	// bump UpdatedAt and shuffle the most-recently-updated listing.
	s2 := NewSession(repo, &stubRenderer{}, WithAutosaveDelay(20*time.Millisecond))
	require.NoError(t, s2.Open(ctx))
	time.Sleep(150 * time.Millisecond)

	after, err := repo.LoadResume(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.Equal(before), "open re-saved an unedited document")
	assert.False(t, s2.Store().HasPendingChanges())
}

func TestClose_FlushesPendingEdits(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestSession(t)

	r, err := s.CreateBlank(ctx, "u1", "Draft")
	require.NoError(t, err)

	s.Store().UpdateBasicInfo(func(b *model.BasicInfo) {
		b.Name = "Dana Kareem"
	})
	require.NoError(t, s.Close(ctx))

	stored, err := repo.LoadResume(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana Kareem", stored.BasicInfo.Name)
	assert.False(t, s.Store().HasPendingChanges())
}

func TestPreferences_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSession(t)

	prefs, err := s.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)
	assert.False(t, prefs.DarkMode)

	prefs.DarkMode = true
	prefs.Language = "ar"
	prefs.HasCompletedOnboarding = true
	require.NoError(t, s.SavePreferences(ctx, prefs))

	got, err := s.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}
