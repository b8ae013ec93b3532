package integrator

import (
	"github.com/vfg2006/adlens-api/internal/domain"
)

// Registry resolves a platform to its adapter. It is assembled once at
// startup and read-only afterwards.
type Registry struct {
	adapters map[domain.Platform]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{
		adapters: make(map[domain.Platform]Adapter, len(adapters)),
	}

	for _, adapter := range adapters {
		r.adapters[adapter.Platform()] = adapter
	}

	return r
}

func (r *Registry) Resolve(platform domain.Platform) (Adapter, bool) {
	adapter, ok := r.adapters[platform]
	return adapter, ok
}

func (r *Registry) Supports(platform domain.Platform) bool {
	_, ok := r.adapters[platform]
	return ok
}
