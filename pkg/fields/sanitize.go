package fields

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup strips everything from raw that a form fragment does not
// need: scripts, event handler attributes and unknown elements. Form controls,
// their common attributes and data-* binding attributes survive.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(markupSanitizer().Sanitize(trimmed))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"div", "span", "label", "small", "p", "fieldset", "legend",
			"input", "select", "option", "optgroup", "textarea",
		)
		policy.AllowNoAttrs().OnElements("label", "input", "span", "small")
		policy.AllowDataAttributes()
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"type", "name", "value", "placeholder", "autocomplete",
			"autofocus", "checked", "disabled", "required", "readonly",
			"min", "max", "minlength", "maxlength", "pattern", "step",
		).OnElements("input")
		policy.AllowAttrs("name", "autocomplete", "multiple", "disabled", "required").OnElements("select")
		policy.AllowAttrs("value", "selected", "disabled", "label").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		policy.AllowAttrs(
			"name", "rows", "cols", "placeholder", "autocomplete",
			"disabled", "required", "readonly", "maxlength",
		).OnElements("textarea")
		markupPolicy = policy
	})
	return markupPolicy
}
