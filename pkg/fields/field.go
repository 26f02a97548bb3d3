package fields

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
)

var (
	// ErrDuplicateTag is returned when a tag is registered twice.
	ErrDuplicateTag = errors.New("fields: tag already registered")
	// ErrUnknownTag is returned when a lookup names an unregistered tag.
	ErrUnknownTag = errors.New("fields: unknown tag")
	// ErrInvalidTag is returned for names that are not valid custom element names.
	ErrInvalidTag = errors.New("fields: invalid tag name")
)

// Field is the single capability a field needs: produce its markup given no
// external input.
type Field interface {
	Mount() (string, error)
}

// Kind describes the control a field renders. Non-HTML renderers use it to
// pick an equivalent input.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
)

// Option is one enumerated choice of a select or radio field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Definition pairs a tag with the markup it materialises. Markup is used as-is
// when set; otherwise Template is rendered with a payload built from the
// definition.
type Definition struct {
	Tag      string
	Label    string
	Kind     Kind
	Bindings []string
	Options  []Option
	Hint     string
	Template string
	Markup   string
	Data     map[string]any

	renderer rendertemplate.TemplateRenderer
}

var _ Field = Definition{}

// Mount returns the definition's markup. Repeated calls return identical
// output.
func (d Definition) Mount() (string, error) {
	if d.Markup != "" {
		return d.Markup, nil
	}
	if d.Template == "" {
		return "", fmt.Errorf("fields: %q has neither markup nor template", d.Tag)
	}
	if d.renderer == nil {
		return "", fmt.Errorf("fields: template renderer not configured for %q", d.Tag)
	}
	rendered, err := d.renderer.RenderTemplate(d.Template, d.payload())
	if err != nil {
		return "", fmt.Errorf("fields: render %q: %w", d.Tag, err)
	}
	return rendered, nil
}

// Binding returns the primary bound variable name.
func (d Definition) Binding() string {
	if len(d.Bindings) == 0 {
		return ""
	}
	return d.Bindings[0]
}

func (d Definition) payload() map[string]any {
	payload := make(map[string]any, len(d.Data)+6)
	for key, value := range d.Data {
		payload[key] = value
	}
	payload["tag"] = d.Tag
	payload["label"] = d.Label
	payload["kind"] = string(d.Kind)
	payload["bind"] = d.Binding()
	payload["bindings"] = slices.Clone(d.Bindings)
	payload["options"] = slices.Clone(d.Options)
	if d.Hint != "" {
		payload["hint"] = d.Hint
	}
	return payload
}

func (d Definition) validate() error {
	if d.Tag == "" {
		return fmt.Errorf("%w: tag is required", ErrInvalidTag)
	}
	if !ValidTagName(d.Tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, d.Tag)
	}
	if strings.TrimSpace(d.Markup) == "" && strings.TrimSpace(d.Template) == "" {
		return fmt.Errorf("fields: %q requires markup or a template", d.Tag)
	}
	for _, name := range d.Bindings {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("fields: %q declares an empty binding", d.Tag)
		}
	}
	return nil
}

func cloneDefinition(src Definition) Definition {
	clone := src
	clone.Bindings = slices.Clone(src.Bindings)
	clone.Options = slices.Clone(src.Options)
	clone.Data = maps.Clone(src.Data)
	return clone
}

// reservedTags cannot be used as custom element names.
var reservedTags = map[string]struct{}{
	"annotation-xml":   {},
	"color-profile":    {},
	"font-face":        {},
	"font-face-src":    {},
	"font-face-uri":    {},
	"font-face-format": {},
	"font-face-name":   {},
	"missing-glyph":    {},
}

// ValidTagName reports whether name is usable as a custom element name: it
// starts with a lowercase ASCII letter, contains a hyphen, has no uppercase
// letters and is not one of the reserved names.
func ValidTagName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	if !strings.Contains(name, "-") {
		return false
	}
	if _, reserved := reservedTags[name]; reserved {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-', r == '.', r == '_':
		case r > 0x7f:
		default:
			return false
		}
	}
	return true
}

func normalize(tag string) string {
	return strings.TrimSpace(tag)
}
