package schema

// EnumValue is one declared constant of an enum-kinded field, in declaration
// order. Number is the wire ordinal, not the position in the value list.
type EnumValue struct {
	Name   string
	Number int32
}

// FieldDescriptor describes a single field of a message type. Names are
// unique within a Descriptor; EnumValues is non-empty when Kind is KindEnum.
// Nested carries the nested type's full name for diagnostics only — concrete
// nested types are resolved through Introspector.Nested, never by name.
type FieldDescriptor struct {
	Name       string
	Kind       Kind
	Repeated   bool
	EnumValues []EnumValue
	Nested     string
}

// Descriptor is the ordered, read-only field list of one message type. It is
// supplied by an Introspector and outlives any generator bound to it.
type Descriptor struct {
	FullName string
	Fields   []FieldDescriptor
}

// Field looks up a field descriptor by name.
func (d Descriptor) Field(name string) (FieldDescriptor, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}
