package fields

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-formfields/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const templatePrefix = "templates/"

// TemplatesFS exposes the embedded field templates. Paths are rooted at
// "templates/", matching the Template value of the built-in definitions.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// NewTemplateEngine returns a pongo2 engine that loads the embedded field
// templates. When dir is not empty, templates found there take precedence so
// callers can restyle individual fields without forking the package.
func NewTemplateEngine(dir string) (*gotemplate.Engine, error) {
	opts := []gotemplate.Option{gotemplate.WithFS(embeddedTemplates)}
	if dir != "" {
		opts = append(opts, gotemplate.WithBaseDir(dir))
	}
	return gotemplate.New(opts...)
}
