// Package protofake generates synthetic, semantically plausible protobuf
// messages for tests: field names drive string categories, enums avoid their
// unknown sentinel, nested messages populate recursively. The root package
// exposes convenience entry points; pkg/generator holds the engine and
// pkg/protointrospect / pkg/openapiintrospect the schema adapters.
package protofake

import (
	"google.golang.org/protobuf/proto"

	"github.com/goliatone/go-protofake/pkg/generator"
	"github.com/goliatone/go-protofake/pkg/protointrospect"
	"github.com/goliatone/go-protofake/pkg/schema"
)

// Generator produces populated instances of one message type; alias exported
// via the root package for convenience.
type Generator = generator.Generator

// Option customises generator collaborators at construction time.
type Option = generator.Option

// DataSource supplies randomness and corpus categories to the engine.
type DataSource = generator.DataSource

// Descriptor is the ordered field list of one message type.
type Descriptor = schema.Descriptor

// FieldDescriptor describes a single field of a message type.
type FieldDescriptor = schema.FieldDescriptor

// EnumValue is one declared enum constant.
type EnumValue = schema.EnumValue

// Instance is an opaque generated message value.
type Instance = schema.Instance

// Construction options re-exported from the generator package.
var (
	WithSource   = generator.WithSource
	WithLogger   = generator.WithLogger
	WithMaxDepth = generator.WithMaxDepth
)

// New constructs a generator bound to the concrete type of msg. The message
// is only used as a type token; configure the returned generator with the
// chainable WithFieldOverride / WithRepeatedCountRange calls.
func New(msg proto.Message, options ...Option) (*Generator, error) {
	intr, err := protointrospect.New(msg)
	if err != nil {
		return nil, err
	}
	return generator.New(intr, options...), nil
}

// Fake generates one fully populated instance of msg's type. It is the
// simplest entry point for callers that just want a message.
func Fake(msg proto.Message, options ...Option) (proto.Message, error) {
	gen, err := New(msg, options...)
	if err != nil {
		return nil, err
	}
	instance, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return instance.(proto.Message), nil
}

// FakeMany generates count independent instances of msg's type.
func FakeMany(msg proto.Message, count int, options ...Option) ([]proto.Message, error) {
	gen, err := New(msg, options...)
	if err != nil {
		return nil, err
	}
	instances, err := gen.GenerateMany(count)
	if err != nil {
		return nil, err
	}
	messages := make([]proto.Message, len(instances))
	for i, instance := range instances {
		messages[i] = instance.(proto.Message)
	}
	return messages, nil
}
