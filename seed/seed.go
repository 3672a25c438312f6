// server/seed/seed.go

// Package seed loads YAML fixtures and writes them to the store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ViniZap4/noteful-server/domain"
	"github.com/ViniZap4/noteful-server/id"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type fixtures struct {
	Folders []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"folders"`
	Tags []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"tags"`
	Notes []struct {
		ID       string   `yaml:"id"`
		Title    string   `yaml:"title"`
		Content  *string  `yaml:"content"`
		FolderID string   `yaml:"folderId"`
		Tags     []string `yaml:"tags"`
	} `yaml:"notes"`
}

// Dataset is a validated set of fixtures with parsed ids.
type Dataset struct {
	Folders []domain.Folder
	Tags    []domain.Tag
	Notes   []domain.Note
}

// Replacer is the store operation that seeding relies on.
type Replacer interface {
	Replace(ctx context.Context, folders []domain.Folder, tags []domain.Tag, notes []domain.Note) error
}

// Default returns the fixtures bundled with the binary.
func Default() (*Dataset, error) {
	return Parse(defaultFixtures)
}

// Load reads fixtures from a YAML file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes fixtures and checks every id and required field.
func Parse(data []byte) (*Dataset, error) {
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	ds := &Dataset{}

	for i, f := range fx.Folders {
		fid, err := id.Parse(f.ID, "invalid id")
		if err != nil {
			return nil, fmt.Errorf("folders[%d]: %w", i, err)
		}
		if f.Name == "" {
			return nil, fmt.Errorf("folders[%d]: missing name", i)
		}
		ds.Folders = append(ds.Folders, domain.Folder{ID: fid, Name: f.Name})
	}

	for i, t := range fx.Tags {
		tid, err := id.Parse(t.ID, "invalid id")
		if err != nil {
			return nil, fmt.Errorf("tags[%d]: %w", i, err)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("tags[%d]: missing name", i)
		}
		ds.Tags = append(ds.Tags, domain.Tag{ID: tid, Name: t.Name})
	}

	for i, n := range fx.Notes {
		nid, err := id.Parse(n.ID, "invalid id")
		if err != nil {
			return nil, fmt.Errorf("notes[%d]: %w", i, err)
		}
		if n.Title == "" {
			return nil, fmt.Errorf("notes[%d]: missing title", i)
		}
		folderID, err := id.ParseOptional(n.FolderID, "invalid folderId")
		if err != nil {
			return nil, fmt.Errorf("notes[%d]: %w", i, err)
		}
		tagIDs, err := id.ParseAll(n.Tags, "invalid tag id")
		if err != nil {
			return nil, fmt.Errorf("notes[%d]: %w", i, err)
		}
		ds.Notes = append(ds.Notes, domain.Note{
			ID:       nid,
			Title:    n.Title,
			Content:  n.Content,
			FolderID: folderID,
			TagIDs:   tagIDs,
		})
	}

	return ds, nil
}

// Apply replaces the store contents with ds.
func Apply(ctx context.Context, r Replacer, ds *Dataset) error {
	if err := r.Replace(ctx, ds.Folders, ds.Tags, ds.Notes); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}
	return nil
}
