// Package usecase wires the document store, the persistence adapter, the
// autosaver, and the exporters into one editing session facade. UI layers
// talk to a Session; everything below it stays independently testable.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mazenS1/Resume-Builder/internal/adapter/export"
	"github.com/mazenS1/Resume-Builder/internal/adapter/storage"
	"github.com/mazenS1/Resume-Builder/internal/autosave"
	"github.com/mazenS1/Resume-Builder/internal/logging"
	"github.com/mazenS1/Resume-Builder/internal/model"
	"github.com/mazenS1/Resume-Builder/internal/store"
)

// ErrNoDocument is returned by operations that need a working document when
// none is loaded.
var ErrNoDocument = errors.New("no document loaded")

// Repository is the slice of the storage adapter a session depends on.
type Repository interface {
	SaveResume(ctx context.Context, r *model.Resume) (*model.Resume, error)
	LoadResume(ctx context.Context, id string) (*model.Resume, error)
	ListResumes(ctx context.Context) ([]*model.Resume, error)
	DeleteResume(ctx context.Context, id string) error
	ActiveResumeID(ctx context.Context) (string, error)
	SetActiveResumeID(ctx context.Context, id string) error
	Preferences(ctx context.Context) (storage.Preferences, error)
	SavePreferences(ctx context.Context, p storage.Preferences) error
}

// Session is one user's editing session over the local document store.
type Session struct {
	store     *store.Store
	sync      *store.EditorSync
	repo      Repository
	saver     *autosave.Autosaver
	pdf       *export.PDFExporter
	log       logging.Logger
	saveDelay time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log logging.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithAutosaveDelay overrides the autosave debounce delay.
func WithAutosaveDelay(d time.Duration) Option {
	return func(s *Session) { s.saveDelay = d }
}

// NewSession builds a session over repo, rendering PDFs with renderer.
// Document changes autosave after the default debounce delay.
func NewSession(repo Repository, renderer export.Renderer, opts ...Option) *Session {
	s := &Session{
		store: store.New(),
		sync:  store.NewEditorSync(),
		repo:  repo,
		log:   logging.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pdf = export.NewPDFExporter(renderer, s.log)
	saverOpts := []autosave.Option{
		autosave.WithLogger(s.log),
		// The saved snapshot may already be stale by the time the
		// callback runs, so only the dirty flag is cleared; the stamped
		// UpdatedAt is picked up on the next load.
		autosave.WithOnSaved(func(*model.Resume) { s.store.MarkSaved(nil) }),
	}
	if s.saveDelay > 0 {
		saverOpts = append(saverOpts, autosave.WithDelay(s.saveDelay))
	}
	s.saver = autosave.New(repo, saverOpts...)
	// Loads and resets notify too; persisting a clean snapshot would
	// re-stamp UpdatedAt on every open. Only dirty snapshots reach the
	// autosaver. nil passes through so a reset cancels a pending save.
	s.store.Subscribe(func(r *model.Resume) {
		if r != nil && !s.store.HasPendingChanges() {
			return
		}
		s.saver.Notify(r)
	})
	return s
}

// Store exposes the mutation engine for the editor form.
func (s *Session) Store() *store.Store { return s.store }

// Sync exposes the editor/preview focus state.
func (s *Session) Sync() *store.EditorSync { return s.sync }

// Document returns the current working snapshot, or nil.
func (s *Session) Document() *model.Resume { return s.store.Resume() }

// Open restores the session from durable state: when an active document
// pointer exists, that document becomes the working document.
func (s *Session) Open(ctx context.Context) error {
	activeID, err := s.repo.ActiveResumeID(ctx)
	if err != nil {
		return err
	}
	if activeID == "" {
		return nil
	}
	r, err := s.repo.LoadResume(ctx, activeID)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Warn(ctx, "active resume missing from store", "id", activeID)
		return s.repo.SetActiveResumeID(ctx, "")
	}
	if err != nil {
		return err
	}
	s.store.SetResume(r)
	return nil
}

// CreateBlank starts a new empty document, persists it, and makes it active.
func (s *Session) CreateBlank(ctx context.Context, userID, title string) (*model.Resume, error) {
	return s.adopt(ctx, model.NewResume(userID, title))
}

// CreateFromTemplate starts a new document seeded from the sample for lang,
// persists it, and makes it active.
func (s *Session) CreateFromTemplate(ctx context.Context, userID, lang string) (*model.Resume, error) {
	return s.adopt(ctx, model.FromTemplate(userID, lang))
}

// Import validates raw JSON, adopts it as a fresh document (new id, new
// timestamps), persists it, and makes it active. On validation failure the
// working document is left untouched.
func (s *Session) Import(ctx context.Context, raw []byte) (*model.Resume, error) {
	r, err := export.ImportJSON(raw)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, r)
}

func (s *Session) adopt(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	saved, err := s.repo.SaveResume(ctx, r)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetActiveResumeID(ctx, saved.ID); err != nil {
		return nil, err
	}
	s.store.SetResume(saved)
	s.sync.Clear()
	s.log.Info(ctx, "document adopted", "id", saved.ID)
	return saved, nil
}

// OpenResume loads a stored document into the session and makes it active.
func (s *Session) OpenResume(ctx context.Context, id string) (*model.Resume, error) {
	r, err := s.repo.LoadResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetActiveResumeID(ctx, id); err != nil {
		return nil, err
	}
	s.store.SetResume(r)
	s.sync.Clear()
	return r, nil
}

// ListResumes returns every stored document, most recently updated first.
func (s *Session) ListResumes(ctx context.Context) ([]*model.Resume, error) {
	return s.repo.ListResumes(ctx)
}

// DeleteResume removes a stored document. Deleting the working document also
// resets the editor.
func (s *Session) DeleteResume(ctx context.Context, id string) error {
	if err := s.repo.DeleteResume(ctx, id); err != nil {
		return err
	}
	if cur := s.store.Resume(); cur != nil && cur.ID == id {
		s.store.Reset()
		s.sync.Clear()
	}
	return nil
}

// ExportJSON serializes the working document.
func (s *Session) ExportJSON() ([]byte, error) {
	r := s.store.Resume()
	if r == nil {
		return nil, ErrNoDocument
	}
	return export.ExportJSON(r)
}

// ExportPDF renders the working document to PDF. The snapshot is taken up
// front; edits made while Chrome renders do not affect the output.
func (s *Session) ExportPDF(ctx context.Context, isRTL bool) ([]byte, error) {
	r := s.store.Resume()
	if r == nil {
		return nil, ErrNoDocument
	}
	return s.pdf.Export(ctx, r, isRTL)
}

// ExportDOCX serializes the working document to DOCX bytes.
func (s *Session) ExportDOCX(isRTL bool) ([]byte, error) {
	r := s.store.Resume()
	if r == nil {
		return nil, ErrNoDocument
	}
	return export.ExportDOCX(r, isRTL)
}

// RenderPreview renders the working document to the preview HTML page.
func (s *Session) RenderPreview(isRTL bool) (string, error) {
	r := s.store.Resume()
	if r == nil {
		return "", ErrNoDocument
	}
	return export.RenderHTML(r, isRTL)
}

// Preferences loads the scalar app settings.
func (s *Session) Preferences(ctx context.Context) (storage.Preferences, error) {
	return s.repo.Preferences(ctx)
}

// SavePreferences persists the scalar app settings.
func (s *Session) SavePreferences(ctx context.Context, p storage.Preferences) error {
	return s.repo.SavePreferences(ctx, p)
}

// Close flushes any pending autosave.
func (s *Session) Close(ctx context.Context) error {
	if err := s.saver.Flush(ctx); err != nil {
		return fmt.Errorf("failed to flush pending save: %w", err)
	}
	return s.saver.Close()
}
