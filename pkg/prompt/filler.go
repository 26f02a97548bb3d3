package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfields/pkg/fields"
)

// Option configures a Filler.
type Option func(*Filler)

// WithDriver overrides the prompt driver (survey by default).
func WithDriver(driver Driver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithValidator attaches a validator to the text prompt for binding.
func WithValidator(binding string, fn func(string) error) Option {
	return func(f *Filler) {
		if fn != nil {
			f.validators[binding] = fn
		}
	}
}

// Filler asks for each field's value through a Driver.
type Filler struct {
	registry   *fields.Registry
	driver     Driver
	validators map[string]func(string) error
}

// NewFiller returns a filler over registry.
func NewFiller(registry *fields.Registry, opts ...Option) *Filler {
	f := &Filler{
		registry:   registry,
		driver:     NewSurveyDriver(),
		validators: make(map[string]func(string) error),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fill prompts for each tag in order and returns the answers keyed by bound
// variable. An empty tags slice prompts for every registered tag.
func (f *Filler) Fill(ctx context.Context, tags []string) (map[string]any, error) {
	if len(tags) == 0 {
		tags = f.registry.Tags()
	}
	values := make(map[string]any, len(tags))
	for _, tag := range tags {
		def, ok := f.registry.Definition(tag)
		if !ok {
			return nil, fmt.Errorf("%w: %q", fields.ErrUnknownTag, tag)
		}
		binding := def.Binding()
		if binding == "" {
			continue
		}
		value, err := f.ask(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", tag, err)
		}
		values[binding] = value
	}
	return values, nil
}

func (f *Filler) ask(ctx context.Context, def fields.Definition) (any, error) {
	message := def.Label
	if message == "" {
		message = def.Tag
	}
	validator := f.validators[def.Binding()]

	switch def.Kind {
	case fields.KindPassword:
		return f.driver.Password(ctx, InputConfig{Message: message, Help: def.Hint, Validator: validator})
	case fields.KindTextarea:
		return f.driver.TextArea(ctx, TextAreaConfig{Message: message, Help: def.Hint})
	case fields.KindCheckbox:
		return f.driver.Confirm(ctx, ConfirmConfig{Message: message, Help: def.Hint})
	case fields.KindSelect, fields.KindRadio:
		if len(def.Options) == 0 {
			return nil, fmt.Errorf("no options to choose from")
		}
		labels := make([]string, len(def.Options))
		for i, option := range def.Options {
			labels[i] = option.Label
		}
		idx, err := f.driver.Select(ctx, SelectConfig{Message: message, Options: labels, Help: def.Hint, DefaultIndex: -1})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(def.Options) {
			return nil, fmt.Errorf("selection %d out of range", idx)
		}
		return def.Options[idx].Value, nil
	default:
		return f.driver.Input(ctx, InputConfig{Message: message, Help: def.Hint, Validator: validator})
	}
}
