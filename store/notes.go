// server/store/notes.go
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ViniZap4/noteful-server/domain"
)

const noteColumns = `id, title, content, folder_id, tags, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListNotes returns the notes matching every set filter, most recently
// updated first, with tags populated.
func (s *Store) ListNotes(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, error) {
	var (
		where []string
		args  []any
	)

	if filter.SearchTerm != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.SearchTerm)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", n, n))
	}
	if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		where = append(where, fmt.Sprintf("folder_id = $%d", len(args)))
	}
	if filter.TagID != nil {
		args = append(args, *filter.TagID)
		where = append(where, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}

	query := `SELECT ` + noteColumns + ` FROM notes`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes, err := pgx.CollectRows(rows, scanNote)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}

	if err := s.populateTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote returns ErrNotFound when id does not exist.
func (s *Store) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return s.collectNote(ctx, rows)
}

// CreateNote inserts a note.
func (s *Store) CreateNote(ctx context.Context, in domain.NoteInput) (*domain.Note, error) {
	rows, err := s.pool.Query(ctx,
		`INSERT INTO notes (title, content, folder_id, tags)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+noteColumns,
		in.Title, in.Content, in.FolderID, tagIDs(in.TagIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return s.collectNote(ctx, rows)
}

// UpdateNote replaces every mutable field of an existing note. It never inserts.
func (s *Store) UpdateNote(ctx context.Context, id uuid.UUID, in domain.NoteInput) (*domain.Note, error) {
	rows, err := s.pool.Query(ctx,
		`UPDATE notes
		 SET title = $2, content = $3, folder_id = $4, tags = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+noteColumns,
		id, in.Title, in.Content, in.FolderID, tagIDs(in.TagIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return s.collectNote(ctx, rows)
}

// DeleteNote returns ErrNotFound when id does not exist.
func (s *Store) DeleteNote(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) collectNote(ctx context.Context, rows pgx.Rows) (*domain.Note, error) {
	n, err := pgx.CollectExactlyOneRow(rows, scanNote)
	if err != nil {
		return nil, translate(err)
	}

	notes := []domain.Note{n}
	if err := s.populateTags(ctx, notes); err != nil {
		return nil, err
	}
	return &notes[0], nil
}

func scanNote(row pgx.CollectableRow) (domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.FolderID, &n.TagIDs, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// tagIDs keeps the NOT NULL tags column satisfied when no tags are given.
func tagIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
