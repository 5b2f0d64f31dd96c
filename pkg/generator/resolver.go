package generator

import (
	"math"

	"go.uber.org/zap"

	"github.com/goliatone/go-protofake/pkg/schema"
)

// valueFor resolves a single non-repeated occurrence of a field. The second
// return is false when the field should stay unset: unknown kinds, nested
// types that cannot be resolved, and nesting beyond the depth ceiling.
func (g *Generator) valueFor(field schema.FieldDescriptor, depth int) (any, bool) {
	switch {
	case field.Kind == schema.KindDouble:
		return g.boundedDouble(), true
	case field.Kind == schema.KindFloat:
		return float32(g.boundedDouble()), true
	case field.Kind.Is32BitInteger():
		return int32(g.source.IntRange(1, 9999)), true
	case field.Kind.Is64BitInteger():
		return int64(g.source.IntRange(1, 9999)), true
	case field.Kind == schema.KindBool:
		return g.source.Bool(), true
	case field.Kind == schema.KindString:
		return g.contextualString(field.Name), true
	case field.Kind == schema.KindBytes:
		return g.source.Quote(), true
	case field.Kind == schema.KindEnum:
		return g.selectEnumValue(field.EnumValues), true
	case field.Kind == schema.KindMessage:
		return g.nestedInstance(field, depth)
	default:
		return nil, false
	}
}

// boundedDouble draws from [0, 100) rounded to 2 decimal places.
func (g *Generator) boundedDouble() float64 {
	return math.Round(g.source.Float64Range(0, 100)*100) / 100
}

// nestedInstance recursively generates a message-kinded field through a child
// generator with default configuration: overrides and repeated-count bounds
// do not cascade into nested messages. Resolution failures are recovered
// locally by leaving the field unset.
func (g *Generator) nestedInstance(field schema.FieldDescriptor, depth int) (any, bool) {
	if depth >= g.maxDepth {
		g.logger.Warn("nested message exceeds depth ceiling, leaving field unset",
			zap.String("field", field.Name),
			zap.String("type", field.Nested),
			zap.Int("depth", depth))
		return nil, false
	}

	nested, err := g.intr.Nested(field)
	if err != nil {
		g.logger.Warn("could not resolve nested message type, leaving field unset",
			zap.String("field", field.Name),
			zap.String("type", field.Nested),
			zap.Error(err))
		return nil, false
	}

	child := New(nested, WithSource(g.source), WithLogger(g.logger), WithMaxDepth(g.maxDepth))
	instance, err := child.generate(depth + 1)
	if err != nil {
		g.logger.Warn("nested message generation failed, leaving field unset",
			zap.String("field", field.Name),
			zap.String("type", field.Nested),
			zap.Error(err))
		return nil, false
	}
	return instance, true
}
