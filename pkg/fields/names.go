package fields

import "time"

// Tags reserved by the built-in fields.
const (
	TagName     = "name-field"
	TagEmail    = "email-field"
	TagPassword = "password-field"
	TagCountry  = "country-field"
	TagMessage  = "message-field"
	TagTerms    = "terms-field"
	TagPlan     = "plan-field"
	TagStatus   = "status-field"
)

// Bound variable names owned by the binding engine's state store.
const (
	BindName     = "name"
	BindEmail    = "email"
	BindPassword = "password"
	BindCountry  = "country"
	BindMessage  = "message"
	BindTerms    = "terms"
	BindPlan     = "plan"
	BindStatus   = "status"

	// SignalEmailInvalid is the flag toggled by the email validation endpoint.
	SignalEmailInvalid = "emailInvalid"
)

const (
	// ValidateEmailPath is the endpoint the email field posts to.
	ValidateEmailPath = "/validate-email"
	// EmailDebounce is the input quiet period before validation is requested.
	EmailDebounce = 500 * time.Millisecond
)

// DefaultTags lists the built-in tags in registration order.
func DefaultTags() []string {
	return []string{
		TagName,
		TagEmail,
		TagPassword,
		TagCountry,
		TagMessage,
		TagTerms,
		TagPlan,
		TagStatus,
	}
}

// CountryOptions returns the fixed country choices in display order.
func CountryOptions() []Option {
	names := []string{"Switzerland", "Germany", "Spain", "Canada", "Australia", "USA"}
	out := make([]Option, 0, len(names))
	for _, name := range names {
		out = append(out, Option{Value: name, Label: name})
	}
	return out
}

// PlanOptions returns the two mutually exclusive plan choices.
func PlanOptions() []Option {
	return []Option{
		{Value: "starter", Label: "Starter (Free)"},
		{Value: "pro", Label: "Pro (Paid)"},
	}
}
