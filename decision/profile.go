package decision

import (
	_ "embed"
	"fmt"
	"maps"
	"math"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tgoodington/Ancient-Order-sub002/model"
)

// Profile is the static behaviour record for one character template.
type Profile struct {
	ID       string                       `yaml:"id"`
	Name     string                       `yaml:"name"`
	Affinity model.Affinity               `yaml:"affinity"`
	Base     map[model.ActionKind]float64 `yaml:"base"`
	Weights  map[string]float64           `yaml:"weights"`
}

// Weight returns the profile's multiplier for a factor, 0 when unset.
func (p Profile) Weight(factor string) float64 { return p.Weights[factor] }

// BaseScore returns the innate score for an action kind, 0 when unset.
func (p Profile) BaseScore(kind model.ActionKind) float64 { return p.Base[kind] }

func (p Profile) validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProfile)
	}
	if !p.Affinity.Valid() {
		return fmt.Errorf("%w: %q has unknown affinity %q", ErrInvalidProfile, p.ID, p.Affinity)
	}
	for kind, v := range p.Base {
		if !kind.Valid() {
			return fmt.Errorf("%w: %q has base score for unknown action %q", ErrInvalidProfile, p.ID, kind)
		}
		if !finite(v) {
			return fmt.Errorf("%w: %q base score for %q is %v", ErrInvalidProfile, p.ID, kind, v)
		}
	}
	for name, v := range p.Weights {
		if !isFactorName(name) {
			return fmt.Errorf("%w: %q weights unknown factor %q", ErrInvalidProfile, p.ID, name)
		}
		if !finite(v) {
			return fmt.Errorf("%w: %q weight for %q is %v", ErrInvalidProfile, p.ID, name, v)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// clone detaches the profile from the caller's maps.
func (p Profile) clone() Profile {
	p.Base = maps.Clone(p.Base)
	p.Weights = maps.Clone(p.Weights)
	return p
}

//go:embed profiles.yaml
var defaultProfilesYAML []byte

// Registry maps archetype ids to profiles. Adding an archetype is a data
// change; the evaluator only ever does a lookup.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// NewDefaultRegistry returns a registry seeded with the built-in profiles.
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadYAML(defaultProfilesYAML); err != nil {
		return nil, fmt.Errorf("load built-in profiles: %w", err)
	}
	return r, nil
}

// LoadFile adds or replaces profiles from a YAML file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profiles file: %w", err)
	}
	return r.LoadYAML(data)
}

// LoadYAML adds or replaces profiles from a YAML list. Nothing is registered
// unless every entry validates.
func (r *Registry) LoadYAML(data []byte) error {
	var list []Profile
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse profiles YAML: %w", err)
	}
	seen := make(map[string]struct{}, len(list))
	for _, p := range list {
		if err := p.validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidProfile, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range list {
		r.profiles[p.ID] = p.clone()
	}
	return nil
}

// Register adds or replaces a single profile.
func (r *Registry) Register(p Profile) error {
	if err := p.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.profiles[p.ID] = p.clone()
	r.mu.Unlock()
	return nil
}

// Get returns a copy of the profile for an archetype id.
func (r *Registry) Get(id string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, id)
	}
	return p.clone(), nil
}

// IDs returns every registered archetype id, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered profiles.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
