package protointrospect

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goliatone/go-protofake/pkg/schema"
)

// builder implements schema.Builder over a mutable protoreflect message.
// Value coercion validates before assignment, so incompatible overrides come
// back as errors rather than reflection panics.
type builder struct {
	msg protoreflect.Message
}

func (b *builder) Set(field schema.FieldDescriptor, value any) error {
	fd, err := b.fieldDesc(field)
	if err != nil {
		return err
	}
	pv, err := protoValue(fd, value)
	if err != nil {
		return err
	}
	b.msg.Set(fd, pv)
	return nil
}

func (b *builder) Add(field schema.FieldDescriptor, value any) error {
	fd, err := b.fieldDesc(field)
	if err != nil {
		return err
	}
	if !fd.IsList() {
		return fmt.Errorf("protointrospect: field %q is not repeated", field.Name)
	}
	pv, err := protoValue(fd, value)
	if err != nil {
		return err
	}
	b.msg.Mutable(fd).List().Append(pv)
	return nil
}

func (b *builder) Merge(template schema.Instance) error {
	msg, ok := template.(proto.Message)
	if !ok {
		return fmt.Errorf("protointrospect: template %T is not a protobuf message", template)
	}
	// proto.Merge panics on a descriptor mismatch, so the check compares
	// descriptors rather than full names.
	if msg.ProtoReflect().Descriptor() != b.msg.Descriptor() {
		return fmt.Errorf("protointrospect: template is %s, want %s",
			msg.ProtoReflect().Descriptor().FullName(), b.msg.Descriptor().FullName())
	}
	proto.Merge(b.msg.Interface(), msg)
	return nil
}

func (b *builder) Build() schema.Instance {
	return b.msg.Interface()
}

func (b *builder) fieldDesc(field schema.FieldDescriptor) (protoreflect.FieldDescriptor, error) {
	fd := b.msg.Descriptor().Fields().ByName(protoreflect.Name(field.Name))
	if fd == nil {
		return nil, fmt.Errorf("protointrospect: %s has no field %q", b.msg.Descriptor().FullName(), field.Name)
	}
	return fd, nil
}

// protoValue coerces a generated or caller-supplied value into the
// protoreflect value for the field's kind. The accepted Go types per kind are
// deliberately generous for integers so overrides written as untyped
// constants work, but cross-kind mismatches are always errors.
func protoValue(fd protoreflect.FieldDescriptor, value any) (protoreflect.Value, error) {
	switch fd.Kind() {
	case protoreflect.DoubleKind:
		switch v := value.(type) {
		case float64:
			return protoreflect.ValueOfFloat64(v), nil
		case float32:
			return protoreflect.ValueOfFloat64(float64(v)), nil
		case int:
			return protoreflect.ValueOfFloat64(float64(v)), nil
		}
	case protoreflect.FloatKind:
		switch v := value.(type) {
		case float32:
			return protoreflect.ValueOfFloat32(v), nil
		case float64:
			return protoreflect.ValueOfFloat32(float32(v)), nil
		case int:
			return protoreflect.ValueOfFloat32(float32(v)), nil
		}
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		if v, ok := toInt64(value); ok {
			return protoreflect.ValueOfInt32(int32(v)), nil
		}
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		switch v := value.(type) {
		case uint32:
			return protoreflect.ValueOfUint32(v), nil
		case uint64:
			return protoreflect.ValueOfUint32(uint32(v)), nil
		case uint:
			return protoreflect.ValueOfUint32(uint32(v)), nil
		default:
			if i, ok := toInt64(value); ok {
				return protoreflect.ValueOfUint32(uint32(i)), nil
			}
		}
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		if v, ok := toInt64(value); ok {
			return protoreflect.ValueOfInt64(v), nil
		}
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		switch v := value.(type) {
		case uint64:
			return protoreflect.ValueOfUint64(v), nil
		case uint32:
			return protoreflect.ValueOfUint64(uint64(v)), nil
		case uint:
			return protoreflect.ValueOfUint64(uint64(v)), nil
		default:
			if i, ok := toInt64(value); ok {
				return protoreflect.ValueOfUint64(uint64(i)), nil
			}
		}
	case protoreflect.BoolKind:
		if v, ok := value.(bool); ok {
			return protoreflect.ValueOfBool(v), nil
		}
	case protoreflect.StringKind:
		if v, ok := value.(string); ok {
			return protoreflect.ValueOfString(v), nil
		}
	case protoreflect.BytesKind:
		switch v := value.(type) {
		case []byte:
			return protoreflect.ValueOfBytes(v), nil
		case string:
			return protoreflect.ValueOfBytes([]byte(v)), nil
		}
	case protoreflect.EnumKind:
		switch v := value.(type) {
		case schema.EnumValue:
			return protoreflect.ValueOfEnum(protoreflect.EnumNumber(v.Number)), nil
		case protoreflect.EnumNumber:
			return protoreflect.ValueOfEnum(v), nil
		default:
			if i, ok := toInt64(value); ok {
				return protoreflect.ValueOfEnum(protoreflect.EnumNumber(i)), nil
			}
		}
	case protoreflect.MessageKind, protoreflect.GroupKind:
		switch v := value.(type) {
		case proto.Message:
			reflected := v.ProtoReflect()
			if reflected.Descriptor().FullName() != fd.Message().FullName() {
				return protoreflect.Value{}, fmt.Errorf("protointrospect: field %q wants %s, got %s",
					fd.Name(), fd.Message().FullName(), reflected.Descriptor().FullName())
			}
			return protoreflect.ValueOfMessage(reflected), nil
		case protoreflect.Message:
			return protoreflect.ValueOfMessage(v), nil
		}
	}
	return protoreflect.Value{}, fmt.Errorf("protointrospect: field %q (%s) cannot accept %T",
		fd.Name(), fd.Kind(), value)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}
