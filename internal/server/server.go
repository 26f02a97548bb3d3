// Package server exposes the field registry over HTTP: a demo page hosting
// the fields, individual fragments, and the email validation endpoint the
// email field posts to.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	formfields "github.com/goliatone/go-formfields"
	"github.com/goliatone/go-formfields/components/emailcheck"
	"github.com/goliatone/go-formfields/pkg/document"
	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
)

// AssetsPath is where the default stylesheet is served.
const AssetsPath = "/assets/"

// Config controls the server.
type Config struct {
	Addr          string
	Title         string
	DatastarSrc   string
	TemplatesDir  string
	ShutdownGrace time.Duration
	Logger        *slog.Logger
}

// Server serves the demo page and field fragments.
type Server struct {
	cfg      Config
	registry *fields.Registry
	page     *document.Page
	log      *slog.Logger
}

// New builds a server over registry.
func New(registry *fields.Registry, cfg Config) (*Server, error) {
	if registry == nil {
		return nil, errors.New("server: registry is required")
	}
	var pageOpts []gotemplate.Option
	if cfg.TemplatesDir != "" {
		pageOpts = append(pageOpts, gotemplate.WithBaseDir(cfg.TemplatesDir))
	}
	page, err := document.NewPage(registry, pageOpts...)
	if err != nil {
		return nil, err
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, registry: registry, page: page, log: logger}, nil
}

// Routes returns the HTTP handler with every route registered.
func (s *Server) Routes() (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /fields/{tag}", s.handleFragment)
	mux.Handle("GET "+AssetsPath,
		http.StripPrefix(AssetsPath, http.FileServerFS(formfields.AssetsFS())),
	)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if _, err := emailcheck.RegisterRoutes(mux, "/", emailcheck.WithLogger(s.log)); err != nil {
		return nil, fmt.Errorf("server: email check routes: %w", err)
	}
	return mux, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Routes()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("starting web server", "addr", s.cfg.Addr, "tags", len(s.registry.Tags()))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("web server stopped")
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var tags []string
	if raw := strings.TrimSpace(r.URL.Query().Get("tags")); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	out, err := s.page.Render(tags,
		document.WithTitle(s.cfg.Title),
		document.WithDatastarSrc(s.cfg.DatastarSrc),
		document.WithStylesheet(AssetsPath+formfields.StylesheetName),
	)
	if err != nil {
		if errors.Is(err, fields.ErrUnknownTag) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.writeHTML(w, out)
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	markup, err := s.registry.Mount(tag)
	if err != nil {
		if errors.Is(err, fields.ErrUnknownTag) {
			http.NotFound(w, r)
			return
		}
		s.log.Error("mount field", "tag", tag, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.writeHTML(w, markup)
}

func (s *Server) writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(body)); err != nil {
		s.log.Error("write response", "error", err)
	}
}
