package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrNoLevels     = errors.New("levels: manifest lists no levels")
	ErrInvalidLevel = errors.New("levels: invalid level")
)

// Level is one background the player can be sent to. Image is a path inside
// the asset file system.
type Level struct {
	ID    string `json:"id"`
	Image string `json:"image"`
}

type Manifest struct {
	Levels []Level `json:"levels"`
}

// LoadManifest reads and validates a level manifest from fsys.
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal levels: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadEmbedded reads the manifest shipped with the binary.
func LoadEmbedded(name string) (*Manifest, error) {
	return LoadManifest(LevelsFS, name)
}

func (m *Manifest) Validate() error {
	if m == nil || len(m.Levels) == 0 {
		return ErrNoLevels
	}
	seen := make(map[string]struct{}, len(m.Levels))
	for i, lvl := range m.Levels {
		if lvl.ID == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidLevel, i)
		}
		if lvl.Image == "" {
			return fmt.Errorf("%w: %q has no image", ErrInvalidLevel, lvl.ID)
		}
		if _, dup := seen[lvl.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidLevel, lvl.ID)
		}
		seen[lvl.ID] = struct{}{}
	}
	return nil
}

func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Levels)
}

// Index returns the position of the level with the given id.
func (m *Manifest) Index(id string) (int, bool) {
	if m == nil {
		return 0, false
	}
	for i, lvl := range m.Levels {
		if lvl.ID == id {
			return i, true
		}
	}
	return 0, false
}

// At returns the level at index i. Out of range indexes return false.
func (m *Manifest) At(i int) (Level, bool) {
	if m == nil || i < 0 || i >= len(m.Levels) {
		return Level{}, false
	}
	return m.Levels[i], true
}

// RandomIndex picks a level index uniformly, with replacement.
func (m *Manifest) RandomIndex(r *rand.Rand) int {
	n := m.Len()
	if n <= 1 {
		return 0
	}
	return r.IntN(n)
}
