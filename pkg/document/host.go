package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formfields/pkg/fields"
)

// Host attaches registered field tags found in parsed HTML.
type Host struct {
	registry *fields.Registry
}

// NewHost returns a host resolving tags through registry.
func NewHost(registry *fields.Registry) *Host {
	return &Host{registry: registry}
}

// Expand parses a full HTML document from r, attaches every registered tag and
// writes the result to w. Tags the registry does not know are left untouched.
func (h *Host) Expand(r io.Reader, w io.Writer) (int, error) {
	root, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("document: parse: %w", err)
	}
	count, err := h.ExpandNode(root)
	if err != nil {
		return count, err
	}
	if err := html.Render(w, root); err != nil {
		return count, fmt.Errorf("document: render: %w", err)
	}
	return count, nil
}

// ExpandString is Expand over strings.
func (h *Host) ExpandString(page string) (string, int, error) {
	var buf bytes.Buffer
	count, err := h.Expand(strings.NewReader(page), &buf)
	if err != nil {
		return "", count, err
	}
	return buf.String(), count, nil
}

// ExpandNode attaches every registered tag below root in document order and
// returns how many elements were attached. Markup injected by a field is not
// scanned again. When an attach fails the tree is left partly expanded and the
// count covers the elements attached before the failure.
func (h *Host) ExpandNode(root *html.Node) (int, error) {
	if h == nil || h.registry == nil {
		return 0, fmt.Errorf("document: host has no registry")
	}
	if root == nil {
		return 0, nil
	}

	var targets []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && h.registry.Has(n.Data) {
			targets = append(targets, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for i, node := range targets {
		if err := h.attach(node); err != nil {
			return i, err
		}
	}
	return len(targets), nil
}

func (h *Host) attach(node *html.Node) error {
	el, err := h.registry.Create(node.Data)
	if err != nil {
		return err
	}
	if err := el.Attach(); err != nil {
		return err
	}

	children, err := html.ParseFragment(strings.NewReader(el.Content()), node)
	if err != nil {
		return fmt.Errorf("document: parse %q markup: %w", node.Data, err)
	}
	for c := node.FirstChild; c != nil; {
		next := c.NextSibling
		node.RemoveChild(c)
		c = next
	}
	for _, child := range children {
		node.AppendChild(child)
	}
	return nil
}
