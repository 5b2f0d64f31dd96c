package schema

// Kind is the closed enumeration of field kinds the generator dispatches on.
// The zero value KindUnspecified marks kinds the source schema could not map;
// the engine resolves those to "no value" and leaves the field unset.
type Kind string

const (
	KindUnspecified Kind = ""
	KindDouble      Kind = "double"
	KindFloat       Kind = "float"
	KindInt32       Kind = "int32"
	KindSint32      Kind = "sint32"
	KindSfixed32    Kind = "sfixed32"
	KindUint32      Kind = "uint32"
	KindFixed32     Kind = "fixed32"
	KindInt64       Kind = "int64"
	KindSint64      Kind = "sint64"
	KindSfixed64    Kind = "sfixed64"
	KindUint64      Kind = "uint64"
	KindFixed64     Kind = "fixed64"
	KindBool        Kind = "bool"
	KindString      Kind = "string"
	KindBytes       Kind = "bytes"
	KindEnum        Kind = "enum"
	KindMessage     Kind = "message"
)

// Is32BitInteger reports whether the kind is any 32-bit integer variant,
// signed, unsigned, fixed, or zig-zag encoded.
func (k Kind) Is32BitInteger() bool {
	switch k {
	case KindInt32, KindSint32, KindSfixed32, KindUint32, KindFixed32:
		return true
	}
	return false
}

// Is64BitInteger reports whether the kind is any 64-bit integer variant.
func (k Kind) Is64BitInteger() bool {
	switch k {
	case KindInt64, KindSint64, KindSfixed64, KindUint64, KindFixed64:
		return true
	}
	return false
}

// IsNumeric reports whether the kind carries a numeric scalar.
func (k Kind) IsNumeric() bool {
	return k == KindDouble || k == KindFloat || k.Is32BitInteger() || k.Is64BitInteger()
}
