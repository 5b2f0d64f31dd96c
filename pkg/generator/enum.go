package generator

import (
	"strings"

	"github.com/goliatone/go-protofake/pkg/schema"
)

// enumSentinel marks the conventional "unknown/unset" constant at position 0.
// Matching is case-sensitive on purpose.
const enumSentinel = "UNKNOWN"

// selectEnumValue picks one declared constant uniformly. When the first value
// names the sentinel and alternatives exist, position 0 is excluded from the
// selectable window. Unlike the repeated-count range, the window's upper
// bound is the last index inclusive.
func (g *Generator) selectEnumValue(values []schema.EnumValue) schema.EnumValue {
	start := 0
	if len(values) > 1 && strings.Contains(values[0].Name, enumSentinel) {
		start = 1
	}
	return values[g.source.IntRange(start, len(values)-1)]
}
