package hugo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

// Store is a directory of per-observation markdown files.
type Store struct {
	dir string
}

// NewStore creates a content store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating content directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the content directory path.
func (s *Store) Dir() string {
	return s.dir
}

// path derives the file name for an observation id.
func (s *Store) path(id int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(id, 10)+".md")
}

// ExistingIDs returns the ids of all stored observations, derived from
// the .md file names. Files whose stem is not a numeric id are ignored.
func (s *Store) ExistingIDs(_ context.Context) (map[int64]bool, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing content directory: %w", err)
	}

	ids := make(map[int64]bool, len(matches))
	for _, match := range matches {
		stem := strings.TrimSuffix(filepath.Base(match), ".md")
		id, err := strconv.ParseInt(stem, 10, 64)
		if err != nil {
			continue
		}
		ids[id] = true
	}
	return ids, nil
}

// Read loads a stored observation's frontmatter and content body.
func (s *Store) Read(_ context.Context, id int64) (map[string]any, string, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("observation %d: %w", id, domain.ErrNotFound)
		}
		return nil, "", fmt.Errorf("read observation %d: %w", id, err)
	}

	frontmatter, content, err := Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("read observation %d: %w", id, err)
	}
	return frontmatter, content, nil
}

// Write persists an observation, replacing any existing file. The write
// goes to a temp file in the same directory and is renamed into place, so
// a failure never leaves a partial file visible.
func (s *Store) Write(_ context.Context, obs *domain.Observation) error {
	data, err := Encode(obs)
	if err != nil {
		return fmt.Errorf("write observation %d: %w", obs.ID, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+strconv.FormatInt(obs.ID, 10)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write observation %d: %w", obs.ID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write observation %d: %w", obs.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write observation %d: %w", obs.ID, err)
	}

	if err := os.Rename(tmpName, s.path(obs.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write observation %d: %w", obs.ID, err)
	}
	return nil
}
