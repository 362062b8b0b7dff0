// Package store provides the SQLite-backed notebook and note repository.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notebooks (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	content     TEXT NOT NULL DEFAULT '',
	notebook_id TEXT NOT NULL DEFAULT 'default' REFERENCES notebooks(id),
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_notebook ON notes(notebook_id);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);
`

// Store wraps a sql.DB with repository operations. Every mutation commits
// before returning, so the on-disk state never lags the in-memory state.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path, applies the schema, and
// bootstraps the reserved default notebook.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	nb := models.DefaultNotebook()
	_, err = conn.Exec(`
		INSERT OR IGNORE INTO notebooks (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, nb.ID, nb.Name, nb.CreatedAt, nb.UpdatedAt)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ensure default notebook: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Notebooks returns all notebooks in creation order (default first).
func (s *Store) Notebooks() ([]models.Notebook, error) {
	rows, err := s.conn.Query(`
		SELECT id, name, created_at, updated_at
		FROM notebooks
		ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list notebooks: %w", err)
	}
	defer rows.Close()

	var out []models.Notebook
	for rows.Next() {
		var nb models.Notebook
		if err := rows.Scan(&nb.ID, &nb.Name, &nb.CreatedAt, &nb.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, nb)
	}
	return out, rows.Err()
}

// Notebook returns a single notebook by id.
func (s *Store) Notebook(id string) (*models.Notebook, error) {
	var nb models.Notebook
	err := s.conn.QueryRow(`
		SELECT id, name, created_at, updated_at FROM notebooks WHERE id = ?
	`, id).Scan(&nb.ID, &nb.Name, &nb.CreatedAt, &nb.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get notebook: %w", err)
	}
	return &nb, nil
}

// CreateNotebook creates a new named notebook.
func (s *Store) CreateNotebook(name string) (models.Notebook, error) {
	nb := models.NewNotebook(name)
	_, err := s.conn.Exec(`
		INSERT INTO notebooks (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, nb.ID, nb.Name, nb.CreatedAt, nb.UpdatedAt)
	if err != nil {
		return models.Notebook{}, fmt.Errorf("store: create notebook: %w", err)
	}
	return nb, nil
}

// RenameNotebook changes a notebook's name.
func (s *Store) RenameNotebook(id, name string) error {
	nb, err := s.Notebook(id)
	if err != nil {
		return err
	}
	nb.Rename(name)
	_, err = s.conn.Exec(`
		UPDATE notebooks SET name = ?, updated_at = ? WHERE id = ?
	`, nb.Name, nb.UpdatedAt, nb.ID)
	if err != nil {
		return fmt.Errorf("store: rename notebook: %w", err)
	}
	return nil
}

// DeleteNotebook removes a notebook, reassigning its notes to the default
// notebook. The default notebook itself cannot be deleted; the call is a
// no-op returning false.
func (s *Store) DeleteNotebook(id string) (bool, error) {
	if id == models.DefaultNotebookID {
		return false, nil
	}
	tx, err := s.conn.Begin()
	if err != nil {
		return false, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, err = tx.Exec(`
		UPDATE notes SET notebook_id = ?, updated_at = ? WHERE notebook_id = ?
	`, models.DefaultNotebookID, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("store: reassign notes: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM notebooks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("store: delete notebook: %w", err)
	}
	n, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("store: commit: %w", err)
	}
	return n > 0, nil
}

// NoteCount returns the number of notes in a notebook.
func (s *Store) NoteCount(notebookID string) (int, error) {
	var n int
	err := s.conn.QueryRow(`
		SELECT count(*) FROM notes WHERE notebook_id = ?
	`, notebookID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: note count: %w", err)
	}
	return n, nil
}

// Notes returns the notes of a notebook, most recently updated first.
func (s *Store) Notes(notebookID string) ([]models.Note, error) {
	rows, err := s.conn.Query(`
		SELECT id, title, content, notebook_id, created_at, updated_at
		FROM notes
		WHERE notebook_id = ?
		ORDER BY updated_at DESC, rowid DESC
	`, notebookID)
	if err != nil {
		return nil, fmt.Errorf("store: list notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// Note returns a single note by id.
func (s *Store) Note(id string) (*models.Note, error) {
	var n models.Note
	err := s.conn.QueryRow(`
		SELECT id, title, content, notebook_id, created_at, updated_at
		FROM notes WHERE id = ?
	`, id).Scan(&n.ID, &n.Title, &n.Content, &n.NotebookID, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get note: %w", err)
	}
	return &n, nil
}

// CreateNote creates an empty note with the given title in a notebook.
func (s *Store) CreateNote(title, notebookID string) (models.Note, error) {
	n := models.NewNote(title, notebookID)
	_, err := s.conn.Exec(`
		INSERT INTO notes (id, title, content, notebook_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Content, n.NotebookID, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return models.Note{}, fmt.Errorf("store: create note: %w", err)
	}
	return n, nil
}

// UpdateNote persists a note's current title, content, and notebook.
func (s *Store) UpdateNote(n *models.Note) error {
	res, err := s.conn.Exec(`
		UPDATE notes SET title = ?, content = ?, notebook_id = ?, updated_at = ?
		WHERE id = ?
	`, n.Title, n.Content, n.NotebookID, n.UpdatedAt, n.ID)
	if err != nil {
		return fmt.Errorf("store: update note: %w", err)
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteNote removes a note, reporting whether it existed.
func (s *Store) DeleteNote(id string) (bool, error) {
	res, err := s.conn.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("store: delete note: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// SearchNotes returns notes whose title or content contains the query,
// case-insensitively, most recently updated first. An empty query yields no
// results rather than all notes.
func (s *Store) SearchNotes(query string) ([]models.Note, error) {
	if query == "" {
		return nil, nil
	}
	rows, err := s.conn.Query(`
		SELECT id, title, content, notebook_id, created_at, updated_at
		FROM notes
		WHERE instr(lower(title), lower(?)) > 0 OR instr(lower(content), lower(?)) > 0
		ORDER BY updated_at DESC, rowid DESC
	`, query, query)
	if err != nil {
		return nil, fmt.Errorf("store: search: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	var out []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.NotebookID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
