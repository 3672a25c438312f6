// server/store/folders.go
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ViniZap4/noteful-server/domain"
)

const folderColumns = `id, name, created_at, updated_at`

// ListFolders returns every folder ordered by name.
func (s *Store) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+folderColumns+` FROM folders ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	folders, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Folder])
	if err != nil {
		return nil, fmt.Errorf("failed to scan folders: %w", err)
	}
	return folders, nil
}

// GetFolder returns ErrNotFound when id does not exist.
func (s *Store) GetFolder(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+folderColumns+` FROM folders WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return collectFolder(rows)
}

// CreateFolder inserts a folder. A taken name yields ErrDuplicate.
func (s *Store) CreateFolder(ctx context.Context, name string) (*domain.Folder, error) {
	rows, err := s.pool.Query(ctx,
		`INSERT INTO folders (name) VALUES ($1) RETURNING `+folderColumns, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return collectFolder(rows)
}

// UpdateFolder renames an existing folder. It never inserts.
func (s *Store) UpdateFolder(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error) {
	rows, err := s.pool.Query(ctx,
		`UPDATE folders SET name = $2, updated_at = now() WHERE id = $1 RETURNING `+folderColumns,
		id, name)
	if err != nil {
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}
	return collectFolder(rows)
}

// DeleteFolder detaches every note that references the folder, then removes
// the folder, in one transaction. The detach step is committed even when the
// folder itself is already gone, in which case ErrNotFound is returned.
func (s *Store) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	var deleted int64
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE notes SET folder_id = NULL, updated_at = now() WHERE folder_id = $1`, id); err != nil {
			return fmt.Errorf("failed to detach notes: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete folder: %w", err)
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func collectFolder(rows pgx.Rows) (*domain.Folder, error) {
	f, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Folder])
	if err != nil {
		return nil, translate(err)
	}
	return f, nil
}
