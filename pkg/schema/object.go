package schema

// Object is the map-backed instance representation used by adapters without
// a native message runtime. Keys are field names; repeated fields hold []any
// and message fields hold nested Objects. Builders deep-copy on Build and
// ToBuilder, so a returned Object is immutable by construction as long as
// callers treat it as read-only.
type Object map[string]any

// Get returns the value stored for a field name.
func (o Object) Get(name string) (any, bool) {
	value, ok := o[name]
	return value, ok
}

// Has reports whether a field name is explicitly set.
func (o Object) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Clone returns a deep copy of the object. Nested Objects and []any slices
// are copied recursively; scalar values are shared, which is safe because
// scalars are immutable.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for name, value := range o {
		out[name] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case Object:
		return v.Clone()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = cloneValue(item)
		}
		return items
	case []byte:
		return append([]byte(nil), v...)
	default:
		return v
	}
}
