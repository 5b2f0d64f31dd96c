package schema_test

import (
	"testing"

	"github.com/goliatone/go-protofake/pkg/schema"
)

func TestKindPredicates(t *testing.T) {
	for _, kind := range []schema.Kind{
		schema.KindInt32, schema.KindSint32, schema.KindSfixed32,
		schema.KindUint32, schema.KindFixed32,
	} {
		if !kind.Is32BitInteger() || kind.Is64BitInteger() {
			t.Errorf("%s misclassified", kind)
		}
	}
	for _, kind := range []schema.Kind{
		schema.KindInt64, schema.KindSint64, schema.KindSfixed64,
		schema.KindUint64, schema.KindFixed64,
	} {
		if !kind.Is64BitInteger() || kind.Is32BitInteger() {
			t.Errorf("%s misclassified", kind)
		}
	}
	if !schema.KindDouble.IsNumeric() || !schema.KindFloat.IsNumeric() {
		t.Error("floating kinds should be numeric")
	}
	for _, kind := range []schema.Kind{
		schema.KindBool, schema.KindString, schema.KindBytes,
		schema.KindEnum, schema.KindMessage, schema.KindUnspecified,
	} {
		if kind.IsNumeric() {
			t.Errorf("%s should not be numeric", kind)
		}
	}
}

func TestDescriptorField(t *testing.T) {
	desc := schema.Descriptor{
		FullName: "fixtures.Contact",
		Fields: []schema.FieldDescriptor{
			{Name: "email", Kind: schema.KindString},
			{Name: "age", Kind: schema.KindInt32},
		},
	}

	field, ok := desc.Field("age")
	if !ok || field.Kind != schema.KindInt32 {
		t.Fatalf("lookup failed: %#v, %v", field, ok)
	}
	if _, ok := desc.Field("missing"); ok {
		t.Fatal("missing field should not be found")
	}
}

func TestObjectClone_IsDeep(t *testing.T) {
	original := schema.Object{
		"name":   "a",
		"tags":   []any{"x", "y"},
		"nested": schema.Object{"city": "Berlin"},
		"raw":    []byte("payload"),
	}

	clone := original.Clone()
	clone["name"] = "b"
	clone["tags"].([]any)[0] = "mutated"
	clone["nested"].(schema.Object)["city"] = "Hamburg"
	clone["raw"].([]byte)[0] = 'X'

	if original["name"] != "a" {
		t.Fatal("scalar mutation leaked into original")
	}
	if original["tags"].([]any)[0] != "x" {
		t.Fatal("slice mutation leaked into original")
	}
	if original["nested"].(schema.Object)["city"] != "Berlin" {
		t.Fatal("nested mutation leaked into original")
	}
	if original["raw"].([]byte)[0] != 'p' {
		t.Fatal("byte mutation leaked into original")
	}
}

func TestObjectClone_NilStaysNil(t *testing.T) {
	var obj schema.Object
	if obj.Clone() != nil {
		t.Fatal("nil clone should stay nil")
	}
}
