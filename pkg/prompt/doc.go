// Package prompt fills registered fields from a terminal instead of a browser.
// Each field kind maps to an equivalent prompt and the answers are keyed by
// the field's bound variable, matching the signals a page would submit.
package prompt
