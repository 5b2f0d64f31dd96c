package openapiintrospect

import (
	"fmt"

	"github.com/goliatone/go-protofake/pkg/schema"
)

// builder accumulates a field-name → value mapping and constructs the final
// immutable Object in one step on Build.
type builder struct {
	intr   *Introspector
	values schema.Object
}

func (b *builder) Set(field schema.FieldDescriptor, value any) error {
	stored, err := storedValue(field, value)
	if err != nil {
		return err
	}
	b.values[field.Name] = stored
	return nil
}

func (b *builder) Add(field schema.FieldDescriptor, value any) error {
	if !field.Repeated {
		return fmt.Errorf("openapiintrospect: field %q is not repeated", field.Name)
	}
	stored, err := storedValue(field, value)
	if err != nil {
		return err
	}
	items, _ := b.values[field.Name].([]any)
	b.values[field.Name] = append(items, stored)
	return nil
}

// Merge folds a template object onto the accumulated values: singular fields
// replace, nested objects merge key by key, repeated items append after the
// existing ones.
func (b *builder) Merge(template schema.Instance) error {
	obj, ok := template.(schema.Object)
	if !ok {
		return fmt.Errorf("openapiintrospect: template %T is not a schema.Object", template)
	}
	for name, value := range obj {
		b.values[name] = mergeValue(b.values[name], value)
	}
	return nil
}

func (b *builder) Build() schema.Instance {
	return b.values.Clone()
}

func mergeValue(existing, incoming any) any {
	switch inc := incoming.(type) {
	case schema.Object:
		if cur, ok := existing.(schema.Object); ok {
			merged := cur.Clone()
			for name, value := range inc {
				merged[name] = mergeValue(merged[name], value)
			}
			return merged
		}
		return inc.Clone()
	case []any:
		cur, _ := existing.([]any)
		merged := make([]any, 0, len(cur)+len(inc))
		merged = append(merged, cur...)
		for _, item := range inc {
			merged = append(merged, item)
		}
		return merged
	default:
		return incoming
	}
}

// storedValue validates a value against the field's declared kind and
// normalizes it for the map representation. Incompatible overrides surface
// here, mirroring the proto builder's set-time mismatch errors.
func storedValue(field schema.FieldDescriptor, value any) (any, error) {
	switch {
	case field.Kind == schema.KindDouble:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		}
	case field.Kind == schema.KindFloat:
		switch v := value.(type) {
		case float32:
			return v, nil
		case float64:
			return float32(v), nil
		case int:
			return float32(v), nil
		}
	case field.Kind.Is32BitInteger():
		switch v := value.(type) {
		case int32:
			return v, nil
		case int:
			return int32(v), nil
		case int64:
			return int32(v), nil
		}
	case field.Kind.Is64BitInteger():
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		}
	case field.Kind == schema.KindBool:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case field.Kind == schema.KindString:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case field.Kind == schema.KindBytes:
		switch v := value.(type) {
		case []byte:
			return v, nil
		case string:
			return []byte(v), nil
		}
	case field.Kind == schema.KindEnum:
		// Enums are stored by literal name so Objects serialize cleanly.
		switch v := value.(type) {
		case schema.EnumValue:
			return v.Name, nil
		case string:
			return v, nil
		}
	case field.Kind == schema.KindMessage:
		if v, ok := value.(schema.Object); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("openapiintrospect: field %q (%s) cannot accept %T",
		field.Name, field.Kind, value)
}
