// server/store/replace.go
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ViniZap4/noteful-server/domain"
)

// Replace wipes every table and inserts the given records with their ids
// preserved. Used to seed development and test databases.
func (s *Store) Replace(ctx context.Context, folders []domain.Folder, tags []domain.Tag, notes []domain.Note) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE notes, tags, folders`); err != nil {
			return fmt.Errorf("failed to truncate: %w", err)
		}

		batch := &pgx.Batch{}
		for _, f := range folders {
			batch.Queue(`INSERT INTO folders (id, name) VALUES ($1, $2)`, f.ID, f.Name)
		}
		for _, t := range tags {
			batch.Queue(`INSERT INTO tags (id, name) VALUES ($1, $2)`, t.ID, t.Name)
		}
		for _, n := range notes {
			// clock_timestamp keeps insertion order visible in updated_at.
			batch.Queue(`INSERT INTO notes (id, title, content, folder_id, tags, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, clock_timestamp(), clock_timestamp())`,
				n.ID, n.Title, n.Content, n.FolderID, tagIDs(n.TagIDs))
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert records: %w", translate(err))
		}
		return nil
	})
}
