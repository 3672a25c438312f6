package http

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ViniZap4/noteful-server/domain"
	"github.com/ViniZap4/noteful-server/id"
	"github.com/ViniZap4/noteful-server/store"
)

// memStore is an in-memory Store. Every call is counted so tests can assert
// that rejected requests never reached persistence.
type memStore struct {
	mu      sync.Mutex
	folders map[uuid.UUID]domain.Folder
	notes   map[uuid.UUID]domain.Note
	tags    map[uuid.UUID]domain.Tag
	now     time.Time
	calls   int
	err     error
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{
		folders: make(map[uuid.UUID]domain.Folder),
		notes:   make(map[uuid.UUID]domain.Note),
		tags:    make(map[uuid.UUID]domain.Tag),
		now:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so that every write gets a distinct time.
func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memStore) enter() error {
	m.calls++
	return m.err
}

func (m *memStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *memStore) addFolder(name string) domain.Folder {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	f := domain.Folder{ID: id.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	m.folders[f.ID] = f
	return f
}

func (m *memStore) addTag(name string) domain.Tag {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	t := domain.Tag{ID: id.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	m.tags[t.ID] = t
	return t
}

func (m *memStore) addNote(in domain.NoteInput) domain.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertNote(in)
}

func (m *memStore) note(noteID uuid.UUID) (domain.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[noteID]
	return n, ok
}

func (m *memStore) counts() (folders, notes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.folders), len(m.notes)
}

func (m *memStore) ListFolders(_ context.Context) ([]domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	folders := make([]domain.Folder, 0, len(m.folders))
	for _, f := range m.folders {
		folders = append(folders, f)
	}
	slices.SortFunc(folders, func(a, b domain.Folder) int {
		return strings.Compare(a.Name, b.Name)
	})
	return folders, nil
}

func (m *memStore) GetFolder(_ context.Context, folderID uuid.UUID) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	f, ok := m.folders[folderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &f, nil
}

func (m *memStore) CreateFolder(_ context.Context, name string) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}
	if m.nameTaken(name, uuid.Nil) {
		return nil, store.ErrDuplicate
	}

	now := m.tick()
	f := domain.Folder{ID: id.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	m.folders[f.ID] = f
	return &f, nil
}

func (m *memStore) UpdateFolder(_ context.Context, folderID uuid.UUID, name string) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	f, ok := m.folders[folderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if m.nameTaken(name, folderID) {
		return nil, store.ErrDuplicate
	}

	f.Name = name
	f.UpdatedAt = m.tick()
	m.folders[folderID] = f
	return &f, nil
}

func (m *memStore) DeleteFolder(_ context.Context, folderID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	for nid, n := range m.notes {
		if n.FolderID != nil && *n.FolderID == folderID {
			n.FolderID = nil
			n.UpdatedAt = m.tick()
			m.notes[nid] = n
		}
	}

	if _, ok := m.folders[folderID]; !ok {
		return store.ErrNotFound
	}
	delete(m.folders, folderID)
	return nil
}

func (m *memStore) ListNotes(_ context.Context, filter domain.NoteFilter) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	term := strings.ToLower(filter.SearchTerm)
	notes := make([]domain.Note, 0, len(m.notes))
	for _, n := range m.notes {
		if term != "" {
			content := ""
			if n.Content != nil {
				content = *n.Content
			}
			if !strings.Contains(strings.ToLower(n.Title), term) &&
				!strings.Contains(strings.ToLower(content), term) {
				continue
			}
		}
		if filter.FolderID != nil && (n.FolderID == nil || *n.FolderID != *filter.FolderID) {
			continue
		}
		if filter.TagID != nil && !slices.Contains(n.TagIDs, *filter.TagID) {
			continue
		}
		notes = append(notes, m.populate(n))
	}

	slices.SortFunc(notes, func(a, b domain.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return notes, nil
}

func (m *memStore) GetNote(_ context.Context, noteID uuid.UUID) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	n, ok := m.notes[noteID]
	if !ok {
		return nil, store.ErrNotFound
	}
	n = m.populate(n)
	return &n, nil
}

func (m *memStore) CreateNote(_ context.Context, in domain.NoteInput) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	n := m.populate(m.insertNote(in))
	return &n, nil
}

func (m *memStore) UpdateNote(_ context.Context, noteID uuid.UUID, in domain.NoteInput) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	n, ok := m.notes[noteID]
	if !ok {
		return nil, store.ErrNotFound
	}
	n.Title = in.Title
	n.Content = in.Content
	n.FolderID = in.FolderID
	n.TagIDs = in.TagIDs
	n.UpdatedAt = m.tick()
	m.notes[noteID] = n

	n = m.populate(n)
	return &n, nil
}

func (m *memStore) DeleteNote(_ context.Context, noteID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	if _, ok := m.notes[noteID]; !ok {
		return store.ErrNotFound
	}
	delete(m.notes, noteID)
	return nil
}

func (m *memStore) Ping(_ context.Context) error {
	return m.pingErr
}

func (m *memStore) insertNote(in domain.NoteInput) domain.Note {
	now := m.tick()
	n := domain.Note{
		ID:        id.New(),
		Title:     in.Title,
		Content:   in.Content,
		FolderID:  in.FolderID,
		TagIDs:    in.TagIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.notes[n.ID] = n
	return n
}

func (m *memStore) populate(n domain.Note) domain.Note {
	n.Tags = make([]domain.Tag, 0, len(n.TagIDs))
	for _, tid := range n.TagIDs {
		if t, ok := m.tags[tid]; ok {
			n.Tags = append(n.Tags, t)
		}
	}
	return n
}

func (m *memStore) nameTaken(name string, except uuid.UUID) bool {
	for fid, f := range m.folders {
		if f.Name == name && fid != except {
			return true
		}
	}
	return false
}
