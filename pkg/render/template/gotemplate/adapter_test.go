package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestNewRequiresLoader(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("New() without a loader should fail")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ who }}!"),
		},
	}

	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"who": "world"})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if out != "Hello world!" {
		t.Errorf("RenderTemplate() = %q, want %q", out, "Hello world!")
	}

	// Extension already present is not doubled.
	out, err = engine.RenderTemplate("greeting.tmpl", map[string]any{"who": "again"})
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if out != "Hello again!" {
		t.Errorf("RenderTemplate() = %q, want %q", out, "Hello again!")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := engine.RenderString("{% for item in items %}{{ item }};{% endfor %}", map[string]any{
		"items": []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if out != "a;b;" {
		t.Errorf("RenderString() = %q, want %q", out, "a;b;")
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := engine.GlobalContext(map[string]any{"brand": "builder"}); err != nil {
		t.Fatalf("GlobalContext() error = %v", err)
	}

	out, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if !strings.Contains(out, "builder") {
		t.Errorf("RenderString() = %q, want it to include the global value", out)
	}
}
