package protointrospect

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/goliatone/go-protofake/pkg/schema"
)

// Introspector implements schema.Introspector over one protobuf message type.
type Introspector struct {
	mt       protoreflect.MessageType
	registry *Registry
}

// Ensure the implementation satisfies the generator-facing interface.
var _ schema.Introspector = (*Introspector)(nil)

// New binds an introspector to the concrete type of the given message. The
// message itself is only used as a type token.
func New(msg proto.Message) (*Introspector, error) {
	if msg == nil {
		return nil, errors.New("protointrospect: message is required")
	}
	reflected := msg.ProtoReflect()
	if reflected == nil {
		return nil, fmt.Errorf("protointrospect: %T carries no protobuf reflection", msg)
	}
	return ForType(reflected.Type()), nil
}

// ForType binds an introspector to an explicit message type.
func ForType(mt protoreflect.MessageType) *Introspector {
	return &Introspector{mt: mt}
}

// FromDescriptor binds an introspector to a dynamicpb type for the given
// descriptor, typically one loaded from a serialized descriptor set.
func FromDescriptor(md protoreflect.MessageDescriptor) *Introspector {
	return ForType(dynamicpb.NewMessageType(md))
}

// WithRegistry wires a type registry consulted first when resolving nested
// message fields. Returns the receiver for chaining.
func (i *Introspector) WithRegistry(registry *Registry) *Introspector {
	i.registry = registry
	return i
}

// Descriptor returns the bound type's ordered field list.
func (i *Introspector) Descriptor() schema.Descriptor {
	md := i.mt.Descriptor()
	fields := md.Fields()

	out := schema.Descriptor{
		FullName: string(md.FullName()),
		Fields:   make([]schema.FieldDescriptor, 0, fields.Len()),
	}
	for idx := 0; idx < fields.Len(); idx++ {
		fd := fields.Get(idx)
		field := schema.FieldDescriptor{
			Name:     string(fd.Name()),
			Kind:     kindOf(fd),
			Repeated: fd.IsList(),
		}
		if fd.Kind() == protoreflect.EnumKind && !fd.IsMap() {
			values := fd.Enum().Values()
			field.EnumValues = make([]schema.EnumValue, 0, values.Len())
			for j := 0; j < values.Len(); j++ {
				value := values.Get(j)
				field.EnumValues = append(field.EnumValues, schema.EnumValue{
					Name:   string(value.Name()),
					Number: int32(value.Number()),
				})
			}
		}
		if field.Kind == schema.KindMessage {
			field.Nested = string(fd.Message().FullName())
		}
		out.Fields = append(out.Fields, field)
	}
	return out
}

// NewBuilder returns an empty builder for the bound type.
func (i *Introspector) NewBuilder() schema.Builder {
	return &builder{msg: i.mt.New()}
}

// ToBuilder clones the instance and returns a builder over the clone.
func (i *Introspector) ToBuilder(instance schema.Instance) (schema.Builder, error) {
	msg, err := i.sameType(instance)
	if err != nil {
		return nil, err
	}
	return &builder{msg: proto.Clone(msg).ProtoReflect()}, nil
}

// Nested resolves the concrete type of a message-kinded field: explicit
// registry first, then the process-global type registry (which yields
// concrete generated types when they are linked in), then dynamicpb.
func (i *Introspector) Nested(field schema.FieldDescriptor) (schema.Introspector, error) {
	fd := i.mt.Descriptor().Fields().ByName(protoreflect.Name(field.Name))
	if fd == nil {
		return nil, fmt.Errorf("protointrospect: %s has no field %q", i.mt.Descriptor().FullName(), field.Name)
	}
	md := fd.Message()
	if md == nil {
		return nil, fmt.Errorf("protointrospect: field %q is not a message", field.Name)
	}

	if i.registry != nil {
		if mt, ok := i.registry.Lookup(string(md.FullName())); ok {
			return ForType(mt).WithRegistry(i.registry), nil
		}
	}
	if mt, err := protoregistry.GlobalTypes.FindMessageByName(md.FullName()); err == nil && mt.Descriptor() == md {
		return ForType(mt).WithRegistry(i.registry), nil
	}
	return FromDescriptor(md).WithRegistry(i.registry), nil
}

func (i *Introspector) sameType(instance schema.Instance) (proto.Message, error) {
	msg, ok := instance.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("protointrospect: %T is not a protobuf message", instance)
	}
	want := i.mt.Descriptor().FullName()
	got := msg.ProtoReflect().Descriptor().FullName()
	if got != want {
		return nil, fmt.Errorf("protointrospect: instance is %s, want %s", got, want)
	}
	return msg, nil
}

// kindOf maps a protobuf field descriptor onto the closed schema kind
// enumeration. Map fields have no counterpart and come back unspecified,
// which the engine resolves to "leave unset".
func kindOf(fd protoreflect.FieldDescriptor) schema.Kind {
	if fd.IsMap() {
		return schema.KindUnspecified
	}
	switch fd.Kind() {
	case protoreflect.DoubleKind:
		return schema.KindDouble
	case protoreflect.FloatKind:
		return schema.KindFloat
	case protoreflect.Int32Kind:
		return schema.KindInt32
	case protoreflect.Sint32Kind:
		return schema.KindSint32
	case protoreflect.Sfixed32Kind:
		return schema.KindSfixed32
	case protoreflect.Uint32Kind:
		return schema.KindUint32
	case protoreflect.Fixed32Kind:
		return schema.KindFixed32
	case protoreflect.Int64Kind:
		return schema.KindInt64
	case protoreflect.Sint64Kind:
		return schema.KindSint64
	case protoreflect.Sfixed64Kind:
		return schema.KindSfixed64
	case protoreflect.Uint64Kind:
		return schema.KindUint64
	case protoreflect.Fixed64Kind:
		return schema.KindFixed64
	case protoreflect.BoolKind:
		return schema.KindBool
	case protoreflect.StringKind:
		return schema.KindString
	case protoreflect.BytesKind:
		return schema.KindBytes
	case protoreflect.EnumKind:
		return schema.KindEnum
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return schema.KindMessage
	default:
		return schema.KindUnspecified
	}
}
