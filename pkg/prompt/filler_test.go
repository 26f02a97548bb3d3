package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/fields"
)

type stubDriver struct {
	inputs    map[string]string
	selects   map[string]int
	confirm   bool
	err       error
	validated map[string]error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	value := s.inputs[cfg.Message]
	if cfg.Validator != nil {
		if s.validated == nil {
			s.validated = map[string]error{}
		}
		s.validated[cfg.Message] = cfg.Validator(value)
	}
	return value, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	return s.inputs[cfg.Message], s.err
}

func (s *stubDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return s.confirm, s.err
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	return s.selects[cfg.Message], s.err
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	return s.inputs[cfg.Message], s.err
}

func newRegistry(t *testing.T) *fields.Registry {
	t.Helper()
	registry, err := fields.Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	return registry
}

func TestFillAllDefaultFields(t *testing.T) {
	driver := &stubDriver{
		inputs: map[string]string{
			"Name":     "Ada",
			"Email":    "ada@example.com",
			"Password": "correct horse",
			"Message":  "hello",
			"Status":   "ready",
		},
		selects: map[string]int{
			"Country":     2,
			"Choose Plan": 1,
		},
		confirm: true,
	}

	values, err := NewFiller(newRegistry(t), WithDriver(driver)).Fill(context.Background(), nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]any{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "correct horse",
		"country":  "Spain",
		"message":  "hello",
		"terms":    true,
		"plan":     "pro",
		"status":   "ready",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFillAppliesValidator(t *testing.T) {
	driver := &stubDriver{inputs: map[string]string{"Email": "nope"}}
	rejected := errors.New("bad address")

	filler := NewFiller(newRegistry(t),
		WithDriver(driver),
		WithValidator(fields.BindEmail, func(string) error { return rejected }),
	)
	if _, err := filler.Fill(context.Background(), []string{fields.TagEmail}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !errors.Is(driver.validated["Email"], rejected) {
		t.Fatalf("expected validator to run on the email prompt")
	}
}

func TestFillPropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	_, err := NewFiller(newRegistry(t), WithDriver(driver)).Fill(context.Background(), []string{fields.TagName})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestFillUnknownTag(t *testing.T) {
	_, err := NewFiller(newRegistry(t), WithDriver(&stubDriver{})).Fill(context.Background(), []string{"nope-field"})
	if !errors.Is(err, fields.ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestFillRejectsOutOfRangeSelection(t *testing.T) {
	driver := &stubDriver{selects: map[string]int{"Country": 42}}
	_, err := NewFiller(newRegistry(t), WithDriver(driver)).Fill(context.Background(), []string{fields.TagCountry})
	if err == nil {
		t.Fatalf("expected out of range selection error")
	}
}
