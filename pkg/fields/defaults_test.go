package fields_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/testsupport"
)

func newDefaultRegistry(t *testing.T) *fields.Registry {
	t.Helper()
	registry, err := fields.Default()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	return registry
}

func mount(t *testing.T, registry *fields.Registry, tag string) string {
	t.Helper()
	el, err := registry.Create(tag)
	if err != nil {
		t.Fatalf("create %s: %v", tag, err)
	}
	if err := el.Attach(); err != nil {
		t.Fatalf("attach %s: %v", tag, err)
	}
	return el.Content()
}

func TestSharedRegistryIsBuiltOnce(t *testing.T) {
	first, err := fields.Shared()
	if err != nil {
		t.Fatalf("shared: %v", err)
	}
	second, err := fields.Shared()
	if err != nil {
		t.Fatalf("shared: %v", err)
	}
	if first != second {
		t.Fatalf("expected the same registry instance")
	}
	if diff := cmp.Diff(fields.DefaultTags(), first.Tags()); diff != "" {
		t.Fatalf("shared registry tags mismatch (-want +got):\n%s", diff)
	}

	fresh := newDefaultRegistry(t)
	if fresh == first {
		t.Fatalf("Default should build a new registry")
	}
}

func TestDefaultRegistryTags(t *testing.T) {
	registry := newDefaultRegistry(t)
	want := []string{
		"name-field", "email-field", "password-field", "country-field",
		"message-field", "terms-field", "plan-field", "status-field",
	}
	if diff := cmp.Diff(want, registry.Tags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultFieldsBindDocumentedVariables(t *testing.T) {
	registry := newDefaultRegistry(t)
	want := map[string][]string{
		fields.TagName:     {"name"},
		fields.TagEmail:    {"email"},
		fields.TagPassword: {"password"},
		fields.TagCountry:  {"country"},
		fields.TagMessage:  {"message"},
		fields.TagTerms:    {"terms"},
		fields.TagPlan:     {"plan", "plan"},
		fields.TagStatus:   {"status"},
	}

	for tag, bindings := range want {
		t.Run(tag, func(t *testing.T) {
			nodes := testsupport.ParseFragment(t, mount(t, registry, tag))
			if diff := cmp.Diff(bindings, testsupport.BindingAttrs(nodes)); diff != "" {
				t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultFieldsReattachIsByteIdentical(t *testing.T) {
	registry := newDefaultRegistry(t)
	for _, tag := range registry.Tags() {
		t.Run(tag, func(t *testing.T) {
			el, err := registry.Create(tag)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := el.Attach(); err != nil {
				t.Fatalf("attach: %v", err)
			}
			first := el.Content()
			el.Detach()
			if err := el.Attach(); err != nil {
				t.Fatalf("reattach: %v", err)
			}
			if first != el.Content() {
				t.Fatalf("reattach changed markup\nfirst:  %q\nsecond: %q", first, el.Content())
			}

			other, _ := registry.Create(tag)
			if err := other.Attach(); err != nil {
				t.Fatalf("attach second instance: %v", err)
			}
			if first != other.Content() {
				t.Fatalf("second instance rendered different markup")
			}
		})
	}
}

func TestNameFieldAutofocus(t *testing.T) {
	nodes := testsupport.ParseFragment(t, mount(t, newDefaultRegistry(t), fields.TagName))
	inputs := testsupport.FindElements(nodes, "input")
	if len(inputs) != 1 {
		t.Fatalf("expected one input, got %d", len(inputs))
	}
	if _, ok := testsupport.Attr(inputs[0], "autofocus"); !ok {
		t.Fatalf("expected autofocus attribute")
	}
	if init, _ := testsupport.Attr(inputs[0], "data-init"); !strings.Contains(init, ".focus()") {
		t.Fatalf("expected data-init focus directive, got %q", init)
	}
}

func TestEmailFieldValidationDirectives(t *testing.T) {
	markup := mount(t, newDefaultRegistry(t), fields.TagEmail)
	nodes := testsupport.ParseFragment(t, markup)

	inputs := testsupport.FindElements(nodes, "input")
	if len(inputs) != 1 {
		t.Fatalf("expected one input, got %d", len(inputs))
	}
	input := inputs[0]
	if typ, _ := testsupport.Attr(input, "type"); typ != "email" {
		t.Fatalf("expected type=email, got %q", typ)
	}
	trigger, ok := testsupport.Attr(input, "data-on:input__debounce.500ms")
	if !ok {
		t.Fatalf("expected 500ms debounced input directive in %q", markup)
	}
	if trigger != "@post('/validate-email')" {
		t.Fatalf("unexpected trigger action %q", trigger)
	}
	if class, _ := testsupport.Attr(input, "data-class"); class != "{'input-error': $emailInvalid}" {
		t.Fatalf("unexpected data-class %q", class)
	}

	var shown bool
	for _, small := range testsupport.FindElements(nodes, "small") {
		if show, ok := testsupport.Attr(small, "data-show"); ok {
			shown = show == "$emailInvalid"
		}
	}
	if !shown {
		t.Fatalf("expected error text toggled by $emailInvalid")
	}
}

func TestPasswordFieldIsMasked(t *testing.T) {
	nodes := testsupport.ParseFragment(t, mount(t, newDefaultRegistry(t), fields.TagPassword))
	input := testsupport.FindElements(nodes, "input")[0]
	if typ, _ := testsupport.Attr(input, "type"); typ != "password" {
		t.Fatalf("expected type=password, got %q", typ)
	}
	if ac, _ := testsupport.Attr(input, "autocomplete"); ac != "new-password" {
		t.Fatalf("expected autocomplete=new-password, got %q", ac)
	}
}

func TestCountryFieldOptions(t *testing.T) {
	nodes := testsupport.ParseFragment(t, mount(t, newDefaultRegistry(t), fields.TagCountry))
	options := testsupport.FindElements(nodes, "option")
	if len(options) != 7 {
		t.Fatalf("expected 7 options, got %d", len(options))
	}

	placeholder := options[0]
	if _, ok := testsupport.Attr(placeholder, "disabled"); !ok {
		t.Fatalf("expected placeholder option to be disabled")
	}
	if value, _ := testsupport.Attr(placeholder, "value"); value != "" {
		t.Fatalf("expected empty placeholder value, got %q", value)
	}

	var got []string
	for _, option := range options[1:] {
		if _, disabled := testsupport.Attr(option, "disabled"); disabled {
			t.Fatalf("selectable option unexpectedly disabled")
		}
		got = append(got, option.FirstChild.Data)
	}
	want := []string{"Switzerland", "Germany", "Spain", "Canada", "Australia", "USA"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("country order mismatch (-want +got):\n%s", diff)
	}
}

func TestMessageFieldIsMultiline(t *testing.T) {
	nodes := testsupport.ParseFragment(t, mount(t, newDefaultRegistry(t), fields.TagMessage))
	areas := testsupport.FindElements(nodes, "textarea")
	if len(areas) != 1 {
		t.Fatalf("expected one textarea, got %d", len(areas))
	}
	if rows, _ := testsupport.Attr(areas[0], "rows"); rows != "6" {
		t.Fatalf("expected rows=6, got %q", rows)
	}
}

func TestTermsFieldSingleCheckbox(t *testing.T) {
	nodes := testsupport.ParseFragment(t, mount(t, newDefaultRegistry(t), fields.TagTerms))
	inputs := testsupport.FindElements(nodes, "input")
	if len(inputs) != 1 {
		t.Fatalf("expected exactly one input, got %d", len(inputs))
	}
	if typ, _ := testsupport.Attr(inputs[0], "type"); typ != "checkbox" {
		t.Fatalf("expected checkbox, got %q", typ)
	}
	if _, ok := testsupport.Attr(inputs[0], "data-bind:terms"); !ok {
		t.Fatalf("expected checkbox bound to terms")
	}
	if labels := testsupport.FindElements(nodes, "label"); len(labels) != 2 {
		t.Fatalf("expected the empty trailing label slot to be kept, got %d labels", len(labels))
	}
}

func TestPlanFieldRadioGroup(t *testing.T) {
	nodes := testsupport.ParseFragment(t, mount(t, newDefaultRegistry(t), fields.TagPlan))
	inputs := testsupport.FindElements(nodes, "input")
	if len(inputs) != 2 {
		t.Fatalf("expected 2 radios, got %d", len(inputs))
	}
	var values []string
	for _, input := range inputs {
		if typ, _ := testsupport.Attr(input, "type"); typ != "radio" {
			t.Fatalf("expected radio input, got %q", typ)
		}
		if _, ok := testsupport.Attr(input, "data-bind:plan"); !ok {
			t.Fatalf("expected radio bound to plan")
		}
		value, _ := testsupport.Attr(input, "value")
		values = append(values, value)
	}
	if diff := cmp.Diff([]string{"starter", "pro"}, values); diff != "" {
		t.Fatalf("plan values mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusFieldPlainText(t *testing.T) {
	markup := mount(t, newDefaultRegistry(t), fields.TagStatus)
	nodes := testsupport.ParseFragment(t, markup)
	input := testsupport.FindElements(nodes, "input")[0]
	if typ, _ := testsupport.Attr(input, "type"); typ != "text" {
		t.Fatalf("expected type=text, got %q", typ)
	}
	if strings.Contains(markup, "data-on:") || strings.Contains(markup, "data-show") {
		t.Fatalf("status field should carry no extra directives: %q", markup)
	}
}

func TestDefaultRegistryRejectsRedefinition(t *testing.T) {
	registry := newDefaultRegistry(t)
	err := registry.Register(fields.Definition{Tag: fields.TagEmail, Markup: "<input>"})
	if err == nil {
		t.Fatalf("expected duplicate registration of %s to fail", fields.TagEmail)
	}
}

func TestTemplateOverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir+"/templates/status-field.tpl", `<input data-bind:{{ bind }} class="custom" />`)

	engine, err := fields.NewTemplateEngine(dir)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	registry := fields.NewDefaultRegistry(engine)

	got, err := registry.Mount(fields.TagStatus)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if got != `<input data-bind:status class="custom" />` {
		t.Fatalf("override not applied: %q", got)
	}
	if _, err := registry.Mount(fields.TagName); err != nil {
		t.Fatalf("embedded fallback failed: %v", err)
	}
}
