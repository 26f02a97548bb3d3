// Package formfields provides reusable Datastar form-field fragments (name,
// email, password, country, message, terms, plan and status) registered under
// custom element tags.
//
// The fields themselves live in pkg/fields; pkg/document attaches them inside
// HTML pages; components/emailcheck serves the endpoint the email field posts
// to. This package exposes the embedded templates and default stylesheet.
package formfields
