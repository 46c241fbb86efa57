// Package storage is the durable local store for résumé documents, the
// active-document pointer, and scalar app preferences. Documents are kept as
// JSON payloads in a SQLite file, so the on-disk format and the interchange
// format are the same thing.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/mazenS1/Resume-Builder/internal/logging"
	"github.com/mazenS1/Resume-Builder/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SchemaVersion tags the stored state. There is no migrator for old
// versions: a mismatch wipes the store and starts fresh.
const SchemaVersion = 2

// ErrNotFound is returned when no document with the requested id exists.
var ErrNotFound = errors.New("resume not found")

const (
	keySchemaVersion  = "schema_version"
	keyActiveResumeID = "active_resume_id"
	keyDarkMode       = "dark_mode"
	keyLanguage       = "language"
	keyOnboardingDone = "has_completed_onboarding"
)

// timeLayout keeps a fixed-width fractional part so the stored strings sort
// lexicographically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Preferences are the scalar app settings persisted next to the documents.
type Preferences struct {
	DarkMode               bool
	Language               string
	HasCompletedOnboarding bool
}

// Store is a SQLite-backed document store.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (or creates) the store at path and brings its schema up to
// date. A stored state tagged with a different schema version is dropped.
func Open(ctx context.Context, path string, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.Nop{}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.checkSchemaVersion(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// checkSchemaVersion wipes the store when the persisted version tag does not
// match SchemaVersion, then stamps the current version.
func (s *Store) checkSchemaVersion(ctx context.Context) error {
	stored, err := s.getState(ctx, keySchemaVersion)
	if err != nil {
		return err
	}
	if stored != "" {
		if v, convErr := strconv.Atoi(stored); convErr == nil && v == SchemaVersion {
			return nil
		}
		s.log.Warn(ctx, "schema version mismatch, starting fresh", "stored", stored, "current", SchemaVersion)
		if _, err := s.db.ExecContext(ctx, `DELETE FROM resumes`); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state`); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
	}
	return s.setState(ctx, keySchemaVersion, strconv.Itoa(SchemaVersion))
}

// SaveResume inserts or replaces the document by id, stamping UpdatedAt. The
// input is not modified; the stamped copy that was persisted is returned.
func (s *Store) SaveResume(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	stamped := r.Clone()
	stamped.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(stamped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}

	query := `INSERT INTO resumes (id, title, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title,
			payload = excluded.payload,
			updated_at = excluded.updated_at`
	_, err = s.db.ExecContext(ctx, query,
		stamped.ID, stamped.Title, string(payload), stamped.UpdatedAt.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}
	s.log.Debug(ctx, "resume saved", "id", stamped.ID)
	return stamped, nil
}

// LoadResume returns the stored document with the given id, or ErrNotFound.
func (s *Store) LoadResume(ctx context.Context, id string) (*model.Resume, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM resumes WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	r := &model.Resume{}
	if err := json.Unmarshal([]byte(payload), r); err != nil {
		return nil, fmt.Errorf("failed to decode stored resume %s: %w", id, err)
	}
	return r, nil
}

// ListResumes returns every stored document, most recently updated first.
func (s *Store) ListResumes(ctx context.Context) ([]*model.Resume, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM resumes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var out []*model.Resume
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		r := &model.Resume{}
		if err := json.Unmarshal([]byte(payload), r); err != nil {
			return nil, fmt.Errorf("failed to decode stored resume: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteResume removes the document and clears the active pointer when it
// referenced that id. Deleting an id that does not exist is not an error.
func (s *Store) DeleteResume(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM app_state WHERE key = ? AND value = ?`, keyActiveResumeID, id); err != nil {
		return fmt.Errorf("failed to clear active resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	s.log.Debug(ctx, "resume deleted", "id", id)
	return nil
}

// ActiveResumeID returns the active-document pointer, or "" when none is set.
func (s *Store) ActiveResumeID(ctx context.Context) (string, error) {
	return s.getState(ctx, keyActiveResumeID)
}

// SetActiveResumeID records id as the active document; "" clears the pointer.
func (s *Store) SetActiveResumeID(ctx context.Context, id string) error {
	if id == "" {
		_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, keyActiveResumeID)
		if err != nil {
			return fmt.Errorf("failed to clear active resume: %w", err)
		}
		return nil
	}
	return s.setState(ctx, keyActiveResumeID, id)
}

// Preferences loads the scalar app settings, applying defaults for anything
// never written.
func (s *Store) Preferences(ctx context.Context) (Preferences, error) {
	p := Preferences{Language: "en"}
	dark, err := s.getState(ctx, keyDarkMode)
	if err != nil {
		return p, err
	}
	p.DarkMode = dark == "true"
	if lang, err := s.getState(ctx, keyLanguage); err != nil {
		return p, err
	} else if lang != "" {
		p.Language = lang
	}
	done, err := s.getState(ctx, keyOnboardingDone)
	if err != nil {
		return p, err
	}
	p.HasCompletedOnboarding = done == "true"
	return p, nil
}

// SavePreferences persists the scalar app settings.
func (s *Store) SavePreferences(ctx context.Context, p Preferences) error {
	if err := s.setState(ctx, keyDarkMode, strconv.FormatBool(p.DarkMode)); err != nil {
		return err
	}
	if err := s.setState(ctx, keyLanguage, p.Language); err != nil {
		return err
	}
	return s.setState(ctx, keyOnboardingDone, strconv.FormatBool(p.HasCompletedOnboarding))
}

func (s *Store) getState(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read app state %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) setState(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write app state %q: %w", key, err)
	}
	return nil
}
