// Package template defines the renderer-agnostic template contract used to
// materialise field markup. The pongo2 implementation lives in the gotemplate
// subpackage.
package template
