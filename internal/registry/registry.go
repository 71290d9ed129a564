// Package registry provides a global registry of critter species.
// Species register themselves in init() functions, allowing the engine and
// the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/critters/internal/critter"
)

// ErrUnknownSpecies is wrapped into the construction error for names that
// were never registered.
var ErrUnknownSpecies = errors.New("unknown species")

// SpeciesInfo contains metadata about a registered species.
type SpeciesInfo struct {
	Name        string
	Description string
	Mode        critter.Mode
}

// Registry maps species names to descriptors.
type Registry struct {
	mu      sync.RWMutex
	species map[string]critter.Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{species: make(map[string]critter.Descriptor)}
}

// Register adds a species descriptor.
// Panics if the descriptor is invalid or the name is already registered.
func (r *Registry) Register(d critter.Descriptor) {
	if err := d.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.species[d.Name]; exists {
		panic(fmt.Sprintf("registry: species %q already registered", d.Name))
	}
	r.species[d.Name] = d
}

// List returns information about all registered species, sorted by name.
func (r *Registry) List() []SpeciesInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SpeciesInfo, 0, len(r.species))
	for _, d := range r.species {
		result = append(result, SpeciesInfo{
			Name:        d.Name,
			Description: d.Description,
			Mode:        d.Mode,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (critter.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.species[name]
	return d, ok
}

// Exists checks if a species with the given name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Factory returns a critter.Factory backed by this registry.
// Coin-flip construction draws from rng; the caller owns rng and must not
// share it across goroutines.
func (r *Registry) Factory(rng *rand.Rand) *Factory {
	return &Factory{reg: r, rng: rng}
}

// Factory builds critters from registered descriptors.
type Factory struct {
	reg *Registry
	rng *rand.Rand
}

var _ critter.Factory = (*Factory)(nil)

// Construct builds a new instance of the named species.
// Unknown names, nil results and constructor panics are all reported as
// *critter.ConstructionError.
func (f *Factory) Construct(species string) (c critter.Critter, err error) {
	d, ok := f.reg.Lookup(species)
	if !ok {
		return nil, &critter.ConstructionError{Species: species, Err: ErrUnknownSpecies}
	}

	defer func() {
		if p := recover(); p != nil {
			c = nil
			err = &critter.ConstructionError{Species: species, Err: fmt.Errorf("constructor panicked: %v", p)}
		}
	}()

	switch d.Mode {
	case critter.ModeCoinFlip:
		c = d.NewWithFlag(f.rng.Float64() < 0.5)
	default:
		c = d.New()
	}

	if c == nil {
		return nil, &critter.ConstructionError{Species: species, Err: errors.New("constructor returned nil")}
	}
	return c, nil
}

var defaultRegistry = New()

// Register adds a species to the global registry.
// Typically called from a species package's init() function.
func Register(d critter.Descriptor) {
	defaultRegistry.Register(d)
}

// List returns all globally registered species, sorted by name.
func List() []SpeciesInfo {
	return defaultRegistry.List()
}

// Lookup returns a globally registered descriptor.
func Lookup(name string) (critter.Descriptor, bool) {
	return defaultRegistry.Lookup(name)
}

// Exists checks the global registry for a species name.
func Exists(name string) bool {
	return defaultRegistry.Exists(name)
}

// NewFactory returns a factory backed by the global registry.
func NewFactory(rng *rand.Rand) *Factory {
	return defaultRegistry.Factory(rng)
}
