// server/domain/note.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Folder struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Tag is only referenced by notes; its lifecycle is managed elsewhere.
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Note struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   *string    `json:"content,omitempty"`
	FolderID  *uuid.UUID `json:"folderId,omitempty"`
	Tags      []Tag      `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// TagIDs are the stored references that Tags is populated from.
	TagIDs []uuid.UUID `json:"-"`
}

// NoteInput carries the mutable fields of a note. Update replaces all of
// them, so a nil field clears the stored value.
type NoteInput struct {
	Title    string
	Content  *string
	FolderID *uuid.UUID
	TagIDs   []uuid.UUID
}

// NoteFilter narrows a note listing. Zero values disable a filter.
type NoteFilter struct {
	SearchTerm string
	FolderID   *uuid.UUID
	TagID      *uuid.UUID
}
