// Package openapiintrospect adapts OpenAPI object schemas to the schema
// introspection contract, so the generator can fake request and response
// payloads without a protobuf runtime. Instances are schema.Object maps.
package openapiintrospect

import (
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-protofake/pkg/schema"
)

// Introspector implements schema.Introspector over one OpenAPI object schema.
// Nested object resolution is lazy, which keeps cyclic $ref graphs from
// recursing at construction time; the generator's depth ceiling bounds them
// during generation.
type Introspector struct {
	name  string
	desc  schema.Descriptor
	props map[string]*openapi3.SchemaRef
}

var _ schema.Introspector = (*Introspector)(nil)

// FromDocument loads an OpenAPI document and binds an introspector to the
// named component schema.
func FromDocument(data []byte, component string) (*Introspector, error) {
	if len(data) == 0 {
		return nil, errors.New("openapiintrospect: document payload is empty")
	}
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapiintrospect: load document: %w", err)
	}
	if spec.Components == nil || spec.Components.Schemas == nil {
		return nil, errors.New("openapiintrospect: document has no component schemas")
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("openapiintrospect: component schema %q not found", component)
	}
	if ref.Value == nil {
		return nil, fmt.Errorf("openapiintrospect: component schema %q is unresolved", component)
	}
	return FromSchema(component, ref.Value)
}

// FromSchema binds an introspector to an object schema under the given type
// name. Non-object schemas are a construction error: only message-shaped
// schemas have a field list to generate.
func FromSchema(name string, src *openapi3.Schema) (*Introspector, error) {
	if src == nil {
		return nil, errors.New("openapiintrospect: schema is required")
	}
	if !isObject(src) {
		return nil, fmt.Errorf("openapiintrospect: schema %q is not an object", name)
	}

	intr := &Introspector{
		name:  name,
		props: make(map[string]*openapi3.SchemaRef, len(src.Properties)),
	}
	intr.desc = schema.Descriptor{FullName: name}

	// OpenAPI properties are an unordered map; sort for a stable field order.
	names := make([]string, 0, len(src.Properties))
	for propName := range src.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	for _, propName := range names {
		ref := src.Properties[propName]
		intr.props[propName] = ref
		intr.desc.Fields = append(intr.desc.Fields, fieldFor(propName, ref))
	}
	return intr, nil
}

// Descriptor returns the bound schema's ordered field list.
func (i *Introspector) Descriptor() schema.Descriptor {
	return i.desc
}

// NewBuilder returns an empty map-backed builder.
func (i *Introspector) NewBuilder() schema.Builder {
	return &builder{intr: i, values: make(schema.Object)}
}

// ToBuilder returns a builder pre-populated with a deep copy of the instance.
func (i *Introspector) ToBuilder(instance schema.Instance) (schema.Builder, error) {
	obj, ok := instance.(schema.Object)
	if !ok {
		return nil, fmt.Errorf("openapiintrospect: %T is not a schema.Object", instance)
	}
	return &builder{intr: i, values: obj.Clone()}, nil
}

// Nested resolves a message-kinded field to an introspector over the
// property's object schema. For repeated fields the element schema is used.
func (i *Introspector) Nested(field schema.FieldDescriptor) (schema.Introspector, error) {
	ref, ok := i.props[field.Name]
	if !ok {
		return nil, fmt.Errorf("openapiintrospect: %s has no field %q", i.name, field.Name)
	}
	if field.Repeated {
		if ref == nil || ref.Value == nil || ref.Value.Items == nil {
			return nil, fmt.Errorf("openapiintrospect: field %q has no element schema", field.Name)
		}
		ref = ref.Value.Items
	}
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapiintrospect: field %q is unresolved", field.Name)
	}
	return FromSchema(nestedName(field, ref), ref.Value)
}

func nestedName(field schema.FieldDescriptor, ref *openapi3.SchemaRef) string {
	if ref.Value.Title != "" {
		return ref.Value.Title
	}
	if field.Nested != "" {
		return field.Nested
	}
	return field.Name
}

// fieldFor maps one property schema onto a field descriptor. Unknown or
// unresolved shapes come back unspecified, which the engine resolves to
// "leave unset".
func fieldFor(name string, ref *openapi3.SchemaRef) schema.FieldDescriptor {
	field := schema.FieldDescriptor{Name: name, Kind: schema.KindUnspecified}
	if ref == nil || ref.Value == nil {
		return field
	}
	src := ref.Value

	if typeIs(src, openapi3.TypeArray) {
		field.Repeated = true
		if src.Items == nil || src.Items.Value == nil {
			return field
		}
		src = src.Items.Value
	}

	switch {
	case isObject(src):
		field.Kind = schema.KindMessage
		field.Nested = src.Title
	case len(src.Enum) > 0:
		field.Kind = schema.KindEnum
		field.EnumValues = enumValues(src.Enum)
	case typeIs(src, openapi3.TypeString):
		if src.Format == "byte" || src.Format == "binary" {
			field.Kind = schema.KindBytes
		} else {
			field.Kind = schema.KindString
		}
	case typeIs(src, openapi3.TypeInteger):
		if src.Format == "int32" {
			field.Kind = schema.KindInt32
		} else {
			field.Kind = schema.KindInt64
		}
	case typeIs(src, openapi3.TypeNumber):
		if src.Format == "float" {
			field.Kind = schema.KindFloat
		} else {
			field.Kind = schema.KindDouble
		}
	case typeIs(src, openapi3.TypeBoolean):
		field.Kind = schema.KindBool
	}
	return field
}

// enumValues converts OpenAPI enum literals to named values. Ordinals follow
// declaration order, which preserves the position-0 sentinel convention.
func enumValues(literals []any) []schema.EnumValue {
	values := make([]schema.EnumValue, 0, len(literals))
	for idx, literal := range literals {
		values = append(values, schema.EnumValue{
			Name:   fmt.Sprint(literal),
			Number: int32(idx),
		})
	}
	return values
}

func isObject(src *openapi3.Schema) bool {
	return typeIs(src, openapi3.TypeObject) || (src.Type == nil && len(src.Properties) > 0)
}

func typeIs(src *openapi3.Schema, want string) bool {
	return src.Type != nil && src.Type.Is(want)
}
