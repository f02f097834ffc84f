package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mmrzaf/secgen/internal/domain"
	"github.com/mmrzaf/secgen/internal/generators"
)

// Factory builds a configured generator instance.
type Factory func(opts generators.Options) generators.Generator

// Registry maps kind names to generator factories. Instances are created per
// Create call and carry their own rng, so nothing is shared between them.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(kind string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

func (r *Registry) Create(kind string, opts generators.Options) (generators.Generator, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGeneratorKind, kind)
	}
	return factory(opts), nil
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func Default() *Registry {
	r := NewRegistry()
	r.Register(domain.KindUser, func(opts generators.Options) generators.Generator {
		return generators.NewUserGenerator(opts)
	})
	r.Register(domain.KindVulnerability, func(opts generators.Options) generators.Generator {
		return generators.NewVulnerabilityGenerator(opts)
	})
	r.Register(domain.KindSensitiveData, func(opts generators.Options) generators.Generator {
		return generators.NewSensitiveDataGenerator(opts)
	})
	r.Register(domain.KindPenetration, func(opts generators.Options) generators.Generator {
		return generators.NewPenetrationGenerator(opts)
	})
	return r
}
