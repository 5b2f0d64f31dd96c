package protointrospect

import (
	"fmt"
	"sort"
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Registry stores message types by full name, providing discovery and
// duplication safeguards. The introspector consults it before falling back
// to the process-global registry or dynamicpb when resolving nested types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]protoreflect.MessageType
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]protoreflect.MessageType),
	}
}

// Register adds a message type under its full name. Duplicate names return
// an error.
func (r *Registry) Register(mt protoreflect.MessageType) error {
	if mt == nil {
		return fmt.Errorf("protointrospect: message type is required")
	}
	name := string(mt.Descriptor().FullName())
	if name == "" {
		return fmt.Errorf("protointrospect: message type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return fmt.Errorf("protointrospect: message type %q already registered", name)
	}

	r.types[name] = mt
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(mt protoreflect.MessageType) {
	if err := r.Register(mt); err != nil {
		panic(err)
	}
}

// Lookup retrieves a message type by full name.
func (r *Registry) Lookup(name string) (protoreflect.MessageType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mt, ok := r.types[name]
	return mt, ok
}

// Introspector returns an introspector bound to the named type, wired back
// to this registry for nested resolution.
func (r *Registry) Introspector(name string) (*Introspector, error) {
	mt, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("protointrospect: message type %q not found", name)
	}
	return ForType(mt).WithRegistry(r), nil
}

// List returns the sorted full names of all registered types.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[name]
	return ok
}
