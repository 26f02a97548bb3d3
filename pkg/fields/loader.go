package fields

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileDocument is the on-disk shape of a custom field file.
type fileDocument struct {
	Fields []fileField `json:"fields" yaml:"fields"`
}

type fileField struct {
	Tag      string   `json:"tag" yaml:"tag"`
	Label    string   `json:"label" yaml:"label"`
	Kind     string   `json:"kind" yaml:"kind"`
	Bindings []string `json:"bindings" yaml:"bindings"`
	Options  []Option `json:"options" yaml:"options"`
	Hint     string   `json:"hint" yaml:"hint"`
	Markup   string   `json:"markup" yaml:"markup"`
}

// LoadFS walks fsys and parses JSON/YAML files declaring extra fields. Markup
// is sanitized before it is accepted. Tags must be unique across all files.
// A nil fsys yields no definitions.
func LoadFS(fsys fs.FS) ([]Definition, error) {
	if fsys == nil {
		return nil, nil
	}

	var defs []Definition
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fields: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for idx, raw := range doc.Fields {
			def, err := raw.definition()
			if err != nil {
				return fmt.Errorf("fields: %s: field %d: %w", path, idx, err)
			}
			if prev, exists := seen[def.Tag]; exists {
				return fmt.Errorf("%w: %q (files %s and %s)", ErrDuplicateTag, def.Tag, prev, path)
			}
			seen[def.Tag] = path
			defs = append(defs, def)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// RegisterFS loads definitions from fsys and registers them on r. Nothing is
// registered when any file fails to load or any tag collides.
func (r *Registry) RegisterFS(fsys fs.FS) ([]string, error) {
	defs, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if r.Has(def.Tag) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, def.Tag)
		}
	}
	tags := make([]string, 0, len(defs))
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return tags, err
		}
		tags = append(tags, def.Tag)
	}
	return tags, nil
}

func (f fileField) definition() (Definition, error) {
	def := Definition{
		Tag:      normalize(f.Tag),
		Label:    strings.TrimSpace(f.Label),
		Kind:     Kind(strings.ToLower(strings.TrimSpace(f.Kind))),
		Bindings: f.Bindings,
		Options:  f.Options,
		Hint:     strings.TrimSpace(f.Hint),
		Markup:   SanitizeMarkup(f.Markup),
	}
	if def.Kind == "" {
		def.Kind = KindText
	}
	if def.Markup == "" {
		return Definition{}, fmt.Errorf("%q has no markup after sanitizing", def.Tag)
	}
	if err := def.validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func parseDocument(data []byte, path string) (fileDocument, error) {
	var doc fileDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return fileDocument{}, fmt.Errorf("fields: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fileDocument{}, fmt.Errorf("fields: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
