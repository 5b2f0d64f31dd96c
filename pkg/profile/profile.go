// Package profile loads YAML-declared generation profiles: field overrides,
// repeated-count bounds, nesting depth, and batch size, so test suites can
// keep generator configuration next to their fixtures.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-protofake/pkg/generator"
)

// RepeatedRange mirrors WithRepeatedCountRange: Min inclusive, Max exclusive.
type RepeatedRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Profile is one declarative generator configuration.
type Profile struct {
	// Type names the message type to generate, for callers that resolve
	// introspectors from a registry.
	Type string `yaml:"type"`

	// Count is the batch size for callers generating many instances.
	Count int `yaml:"count"`

	// MaxDepth bounds recursive nested generation when positive.
	MaxDepth int `yaml:"maxDepth"`

	Repeated  *RepeatedRange `yaml:"repeated"`
	Overrides map[string]any `yaml:"overrides"`
}

// Parse decodes a profile document. Unknown keys are rejected so typos in
// fixture files fail loudly.
func Parse(data []byte) (Profile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var p Profile
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, nil
		}
		return Profile{}, fmt.Errorf("profile: parse: %w", err)
	}
	return p, nil
}

// Load reads and parses a profile file.
func Load(path string) (Profile, error) {
	if path == "" {
		return Profile{}, errors.New("profile: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Options returns the construction-time options the profile declares.
func (p Profile) Options() []generator.Option {
	var options []generator.Option
	if p.MaxDepth > 0 {
		options = append(options, generator.WithMaxDepth(p.MaxDepth))
	}
	return options
}

// Apply chains the profile's overrides and repeated-count bounds onto an
// already constructed generator.
func (p Profile) Apply(g *generator.Generator) *generator.Generator {
	if p.Repeated != nil {
		g = g.WithRepeatedCountRange(p.Repeated.Min, p.Repeated.Max)
	}
	for name, value := range p.Overrides {
		g = g.WithFieldOverride(name, value)
	}
	return g
}
