package formfields

import (
	"io/fs"

	"github.com/goliatone/go-formfields/pkg/fields"
)

// EmbeddedTemplates exposes the built-in field templates so callers can copy
// or extend them without importing the fields package directly.
func EmbeddedTemplates() fs.FS {
	return fields.TemplatesFS()
}

// DefaultRegistry returns the process-wide registry holding the eight
// built-in fields. Every call returns the same instance.
func DefaultRegistry() (*fields.Registry, error) {
	return fields.Shared()
}
