package console

import (
	"fmt"
	"sort"
)

// PageFactory builds a fresh page whose notices go to n.
type PageFactory func(n Notifier) PageHandle

type registryEntry struct {
	info    EntityInfo
	factory PageFactory
}

// Registry maps entity names to page factories.
type Registry struct {
	entries map[string]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds an entity. Registering the same name twice panics.
func (r *Registry) Register(info EntityInfo, factory PageFactory) {
	if _, dup := r.entries[info.Name]; dup {
		panic(fmt.Sprintf("console: entity %q registered twice", info.Name))
	}
	r.entries[info.Name] = registryEntry{info: info, factory: factory}
}

// NewPage builds a page for the named entity.
func (r *Registry) NewPage(name string, n Notifier) (PageHandle, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, name)
	}
	return e.factory(n), nil
}

// Entities lists the registered entities sorted by name.
func (r *Registry) Entities() []EntityInfo {
	infos := make([]EntityInfo, 0, len(r.entries))
	for _, e := range r.entries {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
