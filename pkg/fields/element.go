package fields

import "fmt"

// Element is one instance of a registered tag. It starts unattached; Attach
// replaces its content with the field markup.
type Element struct {
	tag      string
	field    Field
	content  string
	attached bool
}

// NewElement wraps field as an element instance named tag.
func NewElement(tag string, field Field) *Element {
	return &Element{tag: tag, field: field}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Attach materialises the field markup into the element, replacing any prior
// content. Attaching an attached element re-renders it.
func (e *Element) Attach() error {
	if e.field == nil {
		return fmt.Errorf("fields: element %q has no field", e.tag)
	}
	markup, err := e.field.Mount()
	if err != nil {
		return err
	}
	e.content = markup
	e.attached = true
	return nil
}

// Detach marks the element as removed from the document. The last rendered
// content is kept, mirroring a detached node that still owns its children.
func (e *Element) Detach() {
	e.attached = false
}

// Attached reports whether the element is currently attached.
func (e *Element) Attached() bool {
	return e.attached
}

// Content returns the markup produced by the most recent Attach.
func (e *Element) Content() string {
	return e.content
}
