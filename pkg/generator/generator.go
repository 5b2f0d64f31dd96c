package generator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-protofake/internal/corpus"
	"github.com/goliatone/go-protofake/pkg/schema"
)

const (
	defaultMinRepeated = 1
	defaultMaxRepeated = 5
	defaultMaxDepth    = 16
)

// Option customises generator collaborators at construction time.
type Option func(*Generator)

// WithSource injects a custom data source. Tests use a seeded source to make
// generation deterministic.
func WithSource(source DataSource) Option {
	return func(g *Generator) {
		g.source = source
	}
}

// WithLogger injects the logger used to report per-field resolution
// failures. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMaxDepth overrides the nesting ceiling for recursive message
// generation. Fields beyond the ceiling are left unset, which is what keeps
// self-referential schemas from recursing forever.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) {
		if depth > 0 {
			g.maxDepth = depth
		}
	}
}

// Generator produces populated instances of one message type. Configuration
// is applied through the chainable WithFieldOverride / WithRepeatedCountRange
// calls and read on every generation; a Generator is not safe for concurrent
// use. Independent instances share no state.
type Generator struct {
	intr        schema.Introspector
	source      DataSource
	logger      *zap.Logger
	overrides   map[string]any
	minRepeated int
	maxRepeated int
	maxDepth    int
}

// New constructs a Generator bound to the message type the introspector
// describes. Missing collaborators are initialised with the built-in
// implementations.
func New(intr schema.Introspector, options ...Option) *Generator {
	g := &Generator{
		intr:        intr,
		overrides:   make(map[string]any),
		minRepeated: defaultMinRepeated,
		maxRepeated: defaultMaxRepeated,
		maxDepth:    defaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.source == nil {
		g.source = corpus.New()
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// WithFieldOverride pins a field to a caller-supplied value, bypassing
// synthesis. The value is used verbatim; compatibility with the field's
// declared kind is the caller's responsibility and an incompatible value
// surfaces as an error when the builder assigns it. For repeated fields the
// override is appended exactly once.
func (g *Generator) WithFieldOverride(name string, value any) *Generator {
	g.overrides[name] = value
	return g
}

// WithRepeatedCountRange sets the occurrence count drawn for repeated fields
// to [min, maxExclusive). The defaults are 1 and 5. Passing min >= maxExclusive
// is a caller error with unspecified behaviour.
func (g *Generator) WithRepeatedCountRange(min, maxExclusive int) *Generator {
	g.minRepeated = min
	g.maxRepeated = maxExclusive
	return g
}

// Generate produces one fully populated instance. Every generation starts
// from a fresh builder; nothing is retained between calls except
// configuration.
func (g *Generator) Generate() (schema.Instance, error) {
	return g.generate(0)
}

// GenerateFrom produces a fresh instance and merges the template onto it:
// explicitly set singular template fields replace the generated values
// (message fields merge recursively), repeated template items are appended
// after the generated ones.
func (g *Generator) GenerateFrom(template schema.Instance) (schema.Instance, error) {
	generated, err := g.Generate()
	if err != nil {
		return nil, err
	}
	builder, err := g.intr.ToBuilder(generated)
	if err != nil {
		return nil, fmt.Errorf("generator: template merge: %w", err)
	}
	if err := builder.Merge(template); err != nil {
		return nil, fmt.Errorf("generator: template merge: %w", err)
	}
	return builder.Build(), nil
}

// GenerateMany produces count independent instances.
func (g *Generator) GenerateMany(count int) ([]schema.Instance, error) {
	instances := make([]schema.Instance, 0, max(count, 0))
	for i := 0; i < count; i++ {
		instance, err := g.Generate()
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// GenerateManyFrom produces count instances, each freshly generated and then
// merged with the same template.
func (g *Generator) GenerateManyFrom(template schema.Instance, count int) ([]schema.Instance, error) {
	instances := make([]schema.Instance, 0, max(count, 0))
	for i := 0; i < count; i++ {
		instance, err := g.GenerateFrom(template)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// GenerateFromTemplates produces exactly one instance per template, in
// template order.
func (g *Generator) GenerateFromTemplates(templates []schema.Instance) ([]schema.Instance, error) {
	instances := make([]schema.Instance, 0, len(templates))
	for _, template := range templates {
		instance, err := g.GenerateFrom(template)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

func (g *Generator) generate(depth int) (schema.Instance, error) {
	builder := g.intr.NewBuilder()

	for _, field := range g.intr.Descriptor().Fields {
		if value, ok := g.overrides[field.Name]; ok {
			if field.Repeated {
				if err := builder.Add(field, value); err != nil {
					return nil, fmt.Errorf("generator: add override %q: %w", field.Name, err)
				}
			} else {
				if err := builder.Set(field, value); err != nil {
					return nil, fmt.Errorf("generator: set override %q: %w", field.Name, err)
				}
			}
			continue
		}

		if field.Repeated {
			count := g.source.IntRange(g.minRepeated, g.maxRepeated-1)
			for i := 0; i < count; i++ {
				value, ok := g.valueFor(field, depth)
				if !ok {
					continue
				}
				if err := builder.Add(field, value); err != nil {
					return nil, fmt.Errorf("generator: add field %q: %w", field.Name, err)
				}
			}
			continue
		}

		value, ok := g.valueFor(field, depth)
		if !ok {
			continue
		}
		if err := builder.Set(field, value); err != nil {
			return nil, fmt.Errorf("generator: set field %q: %w", field.Name, err)
		}
	}

	return builder.Build(), nil
}
