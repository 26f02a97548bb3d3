package document

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var pageTemplates embed.FS

const (
	// DefaultDatastarSrc is the client bundle loaded by rendered pages.
	DefaultDatastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

	// StylesheetAsset is the theme asset key resolved for the page stylesheet.
	StylesheetAsset = "formfields.stylesheet"
	// PagePartial is the theme partial key that can replace the page template.
	PagePartial = "formfields.page"

	defaultPageTemplate = "templates/page"
)

// PageOption configures Page.Render.
type PageOption func(*pageConfig)

type pageConfig struct {
	title       string
	datastarSrc string
	stylesheet  string
	theme       *theme.RendererConfig
}

// WithTitle sets the document title.
func WithTitle(title string) PageOption {
	return func(cfg *pageConfig) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithDatastarSrc overrides the Datastar client bundle URL.
func WithDatastarSrc(src string) PageOption {
	return func(cfg *pageConfig) {
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			cfg.datastarSrc = trimmed
		}
	}
}

// WithStylesheet links a stylesheet from the document head. A theme asset
// URL, when present, takes precedence.
func WithStylesheet(href string) PageOption {
	return func(cfg *pageConfig) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithTheme applies a resolved go-theme configuration: its stylesheet asset,
// CSS variables and an optional page template partial.
func WithTheme(cfg *theme.RendererConfig) PageOption {
	return func(pc *pageConfig) {
		pc.theme = cfg
	}
}

// Page renders complete HTML documents hosting a set of field tags.
type Page struct {
	host   *Host
	engine *gotemplate.Engine
}

// NewPage builds a page renderer over registry. The embedded page template is
// always available; pass gotemplate.WithBaseDir to resolve theme partials (or
// a replacement templates/page.tpl) from disk first.
func NewPage(registry *fields.Registry, opts ...gotemplate.Option) (*Page, error) {
	engineOpts := append([]gotemplate.Option{gotemplate.WithFS(pageTemplates)}, opts...)
	engine, err := gotemplate.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("document: page engine: %w", err)
	}
	return &Page{host: NewHost(registry), engine: engine}, nil
}

// Render emits a document with one element per tag, in order, each attached.
// An empty tags slice renders every registered tag.
func (p *Page) Render(tags []string, opts ...PageOption) (string, error) {
	cfg := pageConfig{
		title:       "Form fields",
		datastarSrc: DefaultDatastarSrc,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(tags) == 0 {
		tags = p.host.registry.Tags()
	}
	for _, tag := range tags {
		if !p.host.registry.Has(tag) {
			return "", fmt.Errorf("%w: %q", fields.ErrUnknownTag, tag)
		}
	}

	payload := map[string]any{
		"title":        cfg.title,
		"datastar_src": cfg.datastarSrc,
		"tags":         tags,
	}
	if cfg.stylesheet != "" {
		payload["stylesheet"] = cfg.stylesheet
	}
	templateName := defaultPageTemplate
	if t := cfg.theme; t != nil {
		payload["theme"] = t.Theme
		payload["variant"] = t.Variant
		payload["css_vars"] = cssVarsStyle(t.CSSVars)
		if t.AssetURL != nil {
			if href := t.AssetURL(StylesheetAsset); href != "" {
				payload["stylesheet"] = href
			}
		}
		if partial := strings.TrimSpace(t.Partials[PagePartial]); partial != "" {
			templateName = partial
		}
	}

	skeleton, err := p.engine.RenderTemplate(templateName, payload)
	if err != nil {
		return "", fmt.Errorf("document: render page: %w", err)
	}
	out, _, err := p.host.ExpandString(skeleton)
	return out, err
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
