// Package protointrospect adapts protobuf reflection to the schema
// introspection contract the generator consumes. Concrete generated messages,
// dynamicpb messages built from descriptor sets, and registry-supplied types
// all flow through the same Introspector. Nested message types resolve
// through an explicit registry (then the process-global type registry, then
// dynamicpb), never through name mangling.
package protointrospect
