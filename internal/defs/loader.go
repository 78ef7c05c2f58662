// internal/defs/loader.go
package defs

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed arena.yaml
var defaultLayout []byte

// DefaultLayout returns the built-in arena.
func DefaultLayout() *Layout {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		panic(errors.Wrap(err, "embedded arena layout"))
	}
	return l
}

// LoadLayout reads an arena layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read arena layout %s", path)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, errors.Wrapf(err, "arena layout %s", path)
	}
	return l, nil
}

// ParseLayout decodes and validates a layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal arena layout")
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) validate() error {
	if l.Bounds.Min[0] >= l.Bounds.Max[0] || l.Bounds.Min[1] >= l.Bounds.Max[1] {
		return errors.Errorf("bounds min %v must be below max %v", l.Bounds.Min, l.Bounds.Max)
	}
	for i, o := range l.Obstacles {
		for axis, h := range o.Half {
			if h <= 0 {
				return errors.Errorf("obstacle %d (%s): half extent on axis %d must be positive", i, o.Name, axis)
			}
		}
	}
	if len(l.Enemies) == 0 {
		return errors.New("at least one enemy definition is required")
	}
	total := 0
	seen := make(map[string]bool, len(l.Enemies))
	for _, e := range l.Enemies {
		if e.ID == "" {
			return errors.New("enemy definition without id")
		}
		if seen[e.ID] {
			return errors.Errorf("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
		switch e.Policy {
		case PolicyHunter, PolicyDrifter:
		default:
			return errors.Errorf("enemy %q: unknown policy %q", e.ID, e.Policy)
		}
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return errors.New("enemy weights must sum to a positive value")
	}
	return nil
}
