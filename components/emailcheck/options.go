package emailcheck

import (
	"context"
	"log/slog"
	"net/http"
)

// GuardFunc can reject a request before validation runs. Returning an error
// implementing HTTPError selects the response status.
type GuardFunc func(r *http.Request) error

// ValidatorFunc reports whether address is acceptable.
type ValidatorFunc func(ctx context.Context, address string) error

type Options struct {
	RoutePath   string
	EmailSignal string
	FlagSignal  string
	Guard       GuardFunc
	Validator   ValidatorFunc
	Logger      *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:   "/validate-email",
		EmailSignal: "email",
		FlagSignal:  "emailInvalid",
		Validator:   ValidateAddress,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/validate-email"
	}
	if opts.EmailSignal == "" {
		opts.EmailSignal = "email"
	}
	if opts.FlagSignal == "" {
		opts.FlagSignal = "emailInvalid"
	}
	if opts.Validator == nil {
		opts.Validator = ValidateAddress
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithEmailSignal(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmailSignal = name
	}
}

func WithFlagSignal(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FlagSignal = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithValidator(validator ValidatorFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Validator = validator
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
