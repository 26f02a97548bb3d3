// Package fields defines the reusable form-field fragments and the tag registry
// that maps custom element names to them.
//
// Each Definition produces one fixed block of markup carrying Datastar binding
// attributes (data-bind:*, data-show, data-class, data-on:*). The attributes are
// emitted verbatim and never interpreted here; when no binding engine is loaded
// in the browser the markup simply stays inert.
//
// A Registry is populated once at startup, usually through NewDefaultRegistry,
// and rejects duplicate tags instead of silently replacing them. Elements
// created from the registry model a single instance on a page: Attach
// materialises the markup and re-attaching always yields identical content.
package fields
