package generator_test

import (
	"testing"

	"github.com/goliatone/go-protofake/internal/corpus"
	"github.com/goliatone/go-protofake/pkg/generator"
	"github.com/goliatone/go-protofake/pkg/schema"
)

func enumIntrospector(values ...schema.EnumValue) *stubIntrospector {
	return &stubIntrospector{desc: schema.Descriptor{
		FullName: "fixtures.WithEnum",
		Fields: []schema.FieldDescriptor{
			{Name: "status", Kind: schema.KindEnum, EnumValues: values},
		},
	}}
}

func selectedEnum(t *testing.T, gen *generator.Generator) schema.EnumValue {
	t.Helper()
	instance, err := gen.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	value, ok := asObject(t, instance)["status"].(schema.EnumValue)
	if !ok {
		t.Fatalf("status not selected: %#v", asObject(t, instance)["status"])
	}
	return value
}

func TestEnumSelector_SkipsUnknownSentinel(t *testing.T) {
	gen := generator.New(enumIntrospector(
		schema.EnumValue{Name: "UNKNOWN", Number: 0},
		schema.EnumValue{Name: "A", Number: 1},
		schema.EnumValue{Name: "B", Number: 2},
	), generator.WithSource(corpus.NewSeeded(53)))

	for i := 0; i < 1000; i++ {
		if value := selectedEnum(t, gen); value.Name == "UNKNOWN" {
			t.Fatalf("trial %d selected the sentinel", i)
		}
	}
}

func TestEnumSelector_SoleSentinelIsSelectable(t *testing.T) {
	gen := generator.New(enumIntrospector(
		schema.EnumValue{Name: "UNKNOWN", Number: 0},
	), generator.WithSource(corpus.NewSeeded(53)))

	if value := selectedEnum(t, gen); value.Name != "UNKNOWN" {
		t.Fatalf("sole value must be selected, got %#v", value)
	}
}

func TestEnumSelector_SentinelMatchIsCaseSensitive(t *testing.T) {
	gen := generator.New(enumIntrospector(
		schema.EnumValue{Name: "unknown", Number: 0},
		schema.EnumValue{Name: "A", Number: 1},
	), generator.WithSource(corpus.NewSeeded(59)))

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[selectedEnum(t, gen).Name] = true
	}
	if !seen["unknown"] {
		t.Fatal("lowercase sentinel should stay selectable")
	}
}

func TestEnumSelector_UpperBoundIsInclusive(t *testing.T) {
	gen := generator.New(enumIntrospector(
		schema.EnumValue{Name: "UNKNOWN", Number: 0},
		schema.EnumValue{Name: "A", Number: 1},
		schema.EnumValue{Name: "B", Number: 2},
		schema.EnumValue{Name: "C", Number: 3},
	), generator.WithSource(corpus.NewSeeded(61)))

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[selectedEnum(t, gen).Name] = true
	}
	for _, want := range []string{"A", "B", "C"} {
		if !seen[want] {
			t.Fatalf("value %s never selected: %v", want, seen)
		}
	}
}

func TestEnumSelector_SentinelOnlySkippedAtPositionZero(t *testing.T) {
	gen := generator.New(enumIntrospector(
		schema.EnumValue{Name: "A", Number: 0},
		schema.EnumValue{Name: "STATE_UNKNOWN", Number: 1},
	), generator.WithSource(corpus.NewSeeded(67)))

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[selectedEnum(t, gen).Name] = true
	}
	if !seen["A"] || !seen["STATE_UNKNOWN"] {
		t.Fatalf("all values should be selectable when position 0 is not a sentinel: %v", seen)
	}
}
