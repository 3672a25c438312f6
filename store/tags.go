// server/store/tags.go
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ViniZap4/noteful-server/domain"
)

// TagsByID loads the tags with the given ids. Unknown ids are skipped.
func (s *Store) TagsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Tag, error) {
	byID := make(map[uuid.UUID]domain.Tag, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM tags WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	tags, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Tag])
	if err != nil {
		return nil, fmt.Errorf("failed to scan tags: %w", err)
	}

	for _, t := range tags {
		byID[t.ID] = t
	}
	return byID, nil
}

// populateTags expands each note's TagIDs into Tags with one query for the
// whole batch. Dangling references are dropped.
func (s *Store) populateTags(ctx context.Context, notes []domain.Note) error {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, n := range notes {
		for _, id := range n.TagIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	byID, err := s.TagsByID(ctx, ids)
	if err != nil {
		return err
	}

	for i := range notes {
		notes[i].Tags = make([]domain.Tag, 0, len(notes[i].TagIDs))
		for _, id := range notes[i].TagIDs {
			if t, ok := byID[id]; ok {
				notes[i].Tags = append(notes[i].Tags, t)
			}
		}
	}
	return nil
}
