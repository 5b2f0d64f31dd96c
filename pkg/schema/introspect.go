package schema

// Instance is an opaque generated message value. Adapters define the concrete
// representation: the protobuf introspector produces proto.Message values,
// the OpenAPI adapter produces Object maps. Instances have no identity beyond
// structural equality of their fields.
type Instance = any

// Introspector exposes the reflective capabilities the generator consumes for
// one message type: the ordered field list, empty builders, and resolution of
// message-kinded fields to introspectors for their concrete nested types.
type Introspector interface {
	// Descriptor returns the bound type's ordered field list.
	Descriptor() Descriptor

	// NewBuilder returns an empty mutable builder for the bound type.
	NewBuilder() Builder

	// ToBuilder returns a builder pre-populated with the instance's fields.
	// The instance must have been produced by this introspector's type.
	ToBuilder(instance Instance) (Builder, error)

	// Nested returns an introspector bound to the concrete type of a
	// message-kinded field. An error means the nested type cannot be
	// determined; callers recover by leaving the field unset.
	Nested(field FieldDescriptor) (Introspector, error)
}

// Builder assembles an immutable instance field by field. Set and Add report
// an error when the value is incompatible with the field's declared kind,
// which is how override type mismatches surface.
type Builder interface {
	// Set assigns a singular field.
	Set(field FieldDescriptor, value any) error

	// Add appends one occurrence to a repeated field.
	Add(field FieldDescriptor, value any) error

	// Merge folds a template instance of the same type onto the builder:
	// explicitly set singular scalars replace, message fields merge
	// recursively, repeated items append after existing ones.
	Merge(template Instance) error

	// Build finalizes the builder into an immutable instance.
	Build() Instance
}
