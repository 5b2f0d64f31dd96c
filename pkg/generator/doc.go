// Package generator implements the descriptor-driven synthesis engine: it
// walks a message type's ordered field list once, resolving each field to a
// caller override, a synthesized scalar, or a recursively generated nested
// message, and finalizes the result into an immutable instance. Schema access
// goes through schema.Introspector and raw values come from a DataSource, so
// the engine itself is representation-agnostic.
package generator
