package formfields

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	for _, class := range []string{".form-group", ".hint", ".error", ".input-error"} {
		if !strings.Contains(string(data), class) {
			t.Fatalf("expected stylesheet to style %s", class)
		}
	}
}

func TestEmbeddedTemplatesContainEveryField(t *testing.T) {
	fsys := EmbeddedTemplates()
	for _, tag := range []string{
		"name-field", "email-field", "password-field", "country-field",
		"message-field", "terms-field", "plan-field", "status-field",
	} {
		if _, err := fs.Stat(fsys, "templates/"+tag+".tpl"); err != nil {
			t.Fatalf("missing template for %s: %v", tag, err)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	markup, err := registry.Mount("terms-field")
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if !strings.Contains(markup, "data-bind:terms") {
		t.Fatalf("unexpected terms markup: %q", markup)
	}
}

func TestDefaultRegistryIsShared(t *testing.T) {
	first, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	second, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	if first != second {
		t.Fatalf("expected one registry per process")
	}
}
