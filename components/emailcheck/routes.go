package emailcheck

import (
	"errors"
	"net/http"
	"path"
)

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the validation handler at basePath joined with the
// configured route path and returns the registered pattern.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	if mux == nil {
		return "", errors.New("emailcheck: missing mux")
	}
	opts := NewOptions(fns...)
	pattern := path.Join("/", basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}
