// Package document plays the role of the host page: it finds custom field tags
// in HTML and attaches them, replacing each tag's children with the field
// markup from a fields.Registry. It also renders a complete demo page around a
// set of tags.
package document
