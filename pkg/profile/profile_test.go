package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-protofake/internal/corpus"
	"github.com/goliatone/go-protofake/pkg/generator"
	"github.com/goliatone/go-protofake/pkg/openapiintrospect"
	"github.com/goliatone/go-protofake/pkg/profile"
	"github.com/goliatone/go-protofake/pkg/schema"
)

const fixtureProfile = `
type: fixtures.Contact
count: 3
maxDepth: 4
repeated:
  min: 2
  max: 6
overrides:
  email: pinned@example.com
`

func TestParse_ReadsAllSections(t *testing.T) {
	p, err := profile.Parse([]byte(fixtureProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := profile.Profile{
		Type:     "fixtures.Contact",
		Count:    3,
		MaxDepth: 4,
		Repeated: &profile.RepeatedRange{Min: 2, Max: 6},
		Overrides: map[string]any{
			"email": "pinned@example.com",
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyDocumentIsZeroProfile(t *testing.T) {
	p, err := profile.Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(profile.Profile{}, p); diff != "" {
		t.Fatalf("expected zero profile (-want +got):\n%s", diff)
	}
}

func TestParse_UnknownKeysRejected(t *testing.T) {
	if _, err := profile.Parse([]byte("typ: oops\n")); err == nil {
		t.Fatal("unknown keys should fail")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(fixtureProfile), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p, err := profile.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Type != "fixtures.Contact" {
		t.Fatalf("unexpected type: %q", p.Type)
	}
}

func TestLoad_MissingPathFails(t *testing.T) {
	if _, err := profile.Load(""); err == nil {
		t.Fatal("empty path should fail")
	}
	if _, err := profile.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestApply_ConfiguresGenerator(t *testing.T) {
	intr, err := openapiintrospect.FromDocument([]byte(`
openapi: 3.0.3
info:
  title: fixtures
  version: "1.0"
paths: {}
components:
  schemas:
    Contact:
      type: object
      properties:
        email:
          type: string
        tags:
          type: array
          items:
            type: string
`), "Contact")
	if err != nil {
		t.Fatalf("introspector: %v", err)
	}

	p, err := profile.Parse([]byte(fixtureProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	gen := p.Apply(generator.New(intr,
		append(p.Options(), generator.WithSource(corpus.NewSeeded(3)))...))

	for i := 0; i < 50; i++ {
		instance, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		obj := instance.(schema.Object)
		if obj["email"] != "pinned@example.com" {
			t.Fatalf("override not applied: %#v", obj["email"])
		}
		tags, _ := obj["tags"].([]any)
		if len(tags) < 2 || len(tags) >= 6 {
			t.Fatalf("repeated range not applied, got %d items", len(tags))
		}
	}
}
