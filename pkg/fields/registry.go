package fields

import (
	"fmt"
	"sync"

	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRenderer sets the template renderer used by template-backed definitions.
func WithRenderer(renderer rendertemplate.TemplateRenderer) RegistryOption {
	return func(r *Registry) {
		r.renderer = renderer
	}
}

// Registry maps tag names to field definitions. Tags are unique: registering a
// tag twice fails with ErrDuplicateTag.
type Registry struct {
	mu          sync.RWMutex
	renderer    rendertemplate.TemplateRenderer
	definitions map[string]Definition
	order       []string
}

// New creates an empty registry.
func New(opts ...RegistryOption) *Registry {
	r := &Registry{
		definitions: make(map[string]Definition),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Clone returns a deep copy of the registry to allow isolated registrations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New(WithRenderer(r.renderer))
	for _, tag := range r.order {
		cloned.definitions[tag] = cloneDefinition(r.definitions[tag])
		cloned.order = append(cloned.order, tag)
	}
	return cloned
}

// Register adds a definition under its tag.
func (r *Registry) Register(def Definition) error {
	def.Tag = normalize(def.Tag)
	if err := def.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Tag]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, def.Tag)
	}
	def = cloneDefinition(def)
	def.renderer = r.renderer
	r.definitions[def.Tag] = def
	r.order = append(r.order, def.Tag)
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definition fetches a definition by tag.
func (r *Registry) Definition(tag string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[normalize(tag)]
	if !ok {
		return Definition{}, false
	}
	return cloneDefinition(def), true
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.definitions[normalize(tag)]
	return ok
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Create returns a new unattached element for tag.
func (r *Registry) Create(tag string) (*Element, error) {
	def, ok := r.Definition(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	return NewElement(def.Tag, def), nil
}

// Mount renders the markup for tag without creating an element.
func (r *Registry) Mount(tag string) (string, error) {
	def, ok := r.Definition(tag)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	return def.Mount()
}
