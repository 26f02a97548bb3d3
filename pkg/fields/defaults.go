package fields

import (
	"fmt"
	"sync"

	rendertemplate "github.com/goliatone/go-formfields/pkg/render/template"
)

// NewDefaultRegistry constructs a registry holding the eight built-in fields,
// rendered through renderer.
func NewDefaultRegistry(renderer rendertemplate.TemplateRenderer) *Registry {
	registry := New(WithRenderer(renderer))
	for _, def := range DefaultDefinitions() {
		registry.MustRegister(def)
	}
	return registry
}

// Default builds a new built-in registry backed by the embedded templates.
// Use Shared for the process-wide instance.
func Default() (*Registry, error) {
	engine, err := NewTemplateEngine("")
	if err != nil {
		return nil, fmt.Errorf("fields: template engine: %w", err)
	}
	return NewDefaultRegistry(engine), nil
}

var (
	sharedOnce     sync.Once
	sharedRegistry *Registry
	sharedErr      error
)

// Shared returns the process-wide registry of built-in fields. It is built on
// first use; later calls return the same instance, so tags registered on it
// are visible to every caller.
func Shared() (*Registry, error) {
	sharedOnce.Do(func() {
		sharedRegistry, sharedErr = Default()
	})
	return sharedRegistry, sharedErr
}

// DefaultDefinitions returns fresh copies of the built-in definitions in
// registration order.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Tag:      TagName,
			Label:    "Name",
			Kind:     KindText,
			Bindings: []string{BindName},
			Template: templatePrefix + TagName,
			Data: map[string]any{
				"placeholder": "Your Name",
			},
		},
		{
			Tag:      TagEmail,
			Label:    "Email",
			Kind:     KindEmail,
			Bindings: []string{BindEmail},
			Hint:     "Enter a valid E-Mail address",
			Template: templatePrefix + TagEmail,
			Data: map[string]any{
				"errorSignal": SignalEmailInvalid,
				"errorText":   "Invalid E-Mail address",
				"debounce":    EmailDebounce.String(),
				"endpoint":    ValidateEmailPath,
			},
		},
		{
			Tag:      TagPassword,
			Label:    "Password",
			Kind:     KindPassword,
			Bindings: []string{BindPassword},
			Hint:     "Use at least 8 characters.",
			Template: templatePrefix + TagPassword,
			Data: map[string]any{
				"placeholder": "••••••••",
			},
		},
		{
			Tag:      TagCountry,
			Label:    "Country",
			Kind:     KindSelect,
			Bindings: []string{BindCountry},
			Options:  CountryOptions(),
			Hint:     "This helps us show localized content.",
			Template: templatePrefix + TagCountry,
			Data: map[string]any{
				"placeholder": "Select country",
			},
		},
		{
			Tag:      TagMessage,
			Label:    "Message",
			Kind:     KindTextarea,
			Bindings: []string{BindMessage},
			Hint:     "Tell us what you want to build.",
			Template: templatePrefix + TagMessage,
			Data: map[string]any{
				"placeholder": "Write your message...",
				"rows":        6,
			},
		},
		{
			Tag:      TagTerms,
			Label:    "I agree to the terms and conditions",
			Kind:     KindCheckbox,
			Bindings: []string{BindTerms},
			Template: templatePrefix + TagTerms,
		},
		{
			Tag:      TagPlan,
			Label:    "Choose Plan",
			Kind:     KindRadio,
			Bindings: []string{BindPlan},
			Options:  PlanOptions(),
			Template: templatePrefix + TagPlan,
		},
		{
			Tag:      TagStatus,
			Label:    "Status",
			Kind:     KindText,
			Bindings: []string{BindStatus},
			Template: templatePrefix + TagStatus,
		},
	}
}
