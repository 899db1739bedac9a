package minecraft

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrVersionNotFound is returned if no manifest exists for a version
	ErrVersionNotFound = errors.New("version not found")
	// ErrInheritanceCycle is returned if versions inherit from each other
	ErrInheritanceCycle = errors.New("version inherits from itself")
)

// Manager reads versions from a versions directory.
// Every version lives in <dir>/<id>/<id>.json
type Manager struct {
	dir      string
	platform Platform
}

// NewManager returns a manager for the given versions directory
// that evaluates rules for the current platform
func NewManager(dir string) *Manager {
	return &Manager{dir: dir, platform: CurrentPlatform()}
}

// NewManagerFor is NewManager with an explicit platform
func NewManagerFor(dir string, p Platform) *Manager {
	return &Manager{dir: dir, platform: p}
}

// Dir returns the versions directory
func (m *Manager) Dir() string {
	return m.dir
}

// VersionOf reads the version with the given id and merges in all parents
func (m *Manager) VersionOf(id string) (*Version, error) {
	man, err := m.manifest(id, map[string]bool{})
	if err != nil {
		return nil, err
	}
	return &Version{manifest: man, platform: m.platform}, nil
}

func (m *Manager) manifest(id string, seen map[string]bool) (*Manifest, error) {
	if id == "" || filepath.Base(id) != id {
		return nil, errors.Wrapf(ErrVersionNotFound, "%q", id)
	}
	if seen[id] {
		return nil, errors.Wrap(ErrInheritanceCycle, id)
	}
	seen[id] = true

	buf, err := os.ReadFile(m.manifestPath(id))
	switch {
	case os.IsNotExist(err):
		return nil, errors.Wrap(ErrVersionNotFound, id)
	case err != nil:
		return nil, err
	}

	man := &Manifest{}
	if err := json.Unmarshal(buf, man); err != nil {
		return nil, errors.Wrapf(err, "could not parse manifest of %s", id)
	}
	if man.ID == "" {
		man.ID = id
	}

	if man.InheritsFrom != "" {
		parent, err := m.manifest(man.InheritsFrom, seen)
		if err != nil {
			return nil, errors.Wrapf(err, "parent of %s", id)
		}
		MergeManifests(man, parent)
	}
	return man, nil
}

func (m *Manager) manifestPath(id string) string {
	return filepath.Join(m.dir, id, id+".json")
}

// NativesPath returns the directory natives of id are extracted to
func (m *Manager) NativesPath(id string) string {
	return filepath.Join(m.dir, id, "natives")
}

// PrimaryJarPath returns the path of the game jar launched for id.
// Versions that inherit from another version usually use the jar of their parent
func (m *Manager) PrimaryJarPath(id string) string {
	jar := id
	if man, err := m.manifest(id, map[string]bool{}); err == nil && man.Jar != "" {
		jar = man.Jar
	}
	return filepath.Join(m.dir, jar, jar+".jar")
}

// Installed returns the ids of all versions that have a manifest
func (m *Manager) Installed() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	switch {
	case os.IsNotExist(err):
		return []string{}, nil
	case err != nil:
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(m.manifestPath(e.Name())); err == nil {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
