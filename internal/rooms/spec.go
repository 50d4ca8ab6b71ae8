package rooms

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoRoot        = errors.New("map has no root room")
	ErrEmptyName     = errors.New("room name is empty")
	ErrDuplicateRoom = errors.New("room name is used more than once")
)

// Spec is the data shape of a map as it arrives from a file or a remote
// supplier. JSON documents decode through the same tags.
type Spec struct {
	Name  string `yaml:"name" json:"name"`
	Clue  string `yaml:"clue,omitempty" json:"clue,omitempty"`
	Left  *Spec  `yaml:"left,omitempty" json:"left,omitempty"`
	Right *Spec  `yaml:"right,omitempty" json:"right,omitempty"`
}

// Build turns a spec into a room tree. Names are trimmed and must be
// non-empty and unique across the map.
func Build(spec *Spec) (*Room, error) {
	if spec == nil {
		return nil, ErrNoRoot
	}
	seen := make(map[string]bool)
	return build(spec, seen, "")
}

func build(spec *Spec, seen map[string]bool, path string) (*Room, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		if path == "" {
			path = "root"
		}
		return nil, fmt.Errorf("%w at %s", ErrEmptyName, path)
	}
	if seen[name] {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateRoom, name)
	}
	seen[name] = true

	room := &Room{Name: name, Clue: strings.TrimSpace(spec.Clue)}
	if spec.Left != nil {
		left, err := build(spec.Left, seen, name+".left")
		if err != nil {
			return nil, err
		}
		room.Left = left
	}
	if spec.Right != nil {
		right, err := build(spec.Right, seen, name+".right")
		if err != nil {
			return nil, err
		}
		room.Right = right
	}
	return room, nil
}

// ParseSpec decodes a YAML (or JSON) map document.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	return &spec, nil
}

// FileSupplier reads a map from a YAML or JSON file.
type FileSupplier struct {
	Path string
}

func (f FileSupplier) Supply(ctx context.Context) (*Room, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return nil, err
	}
	root, err := Build(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build map from %s: %w", f.Path, err)
	}
	return root, nil
}
