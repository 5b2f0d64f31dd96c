package generator_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-protofake/internal/corpus"
	"github.com/goliatone/go-protofake/pkg/generator"
	"github.com/goliatone/go-protofake/pkg/schema"
)

// markerSource returns a distinct marker per category so tests can assert
// which category a field name routed to.
type markerSource struct{}

func (markerSource) Float64Range(min, max float64) float64 { return min }
func (markerSource) IntRange(min, max int) int             { return min }
func (markerSource) Bool() bool                            { return true }
func (markerSource) Email() string                         { return "<email>" }
func (markerSource) FirstName() string                     { return "<first>" }
func (markerSource) LastName() string                      { return "<last>" }
func (markerSource) FullName() string                      { return "<full>" }
func (markerSource) PhoneNumber() string                   { return "<phone>" }
func (markerSource) StreetAddress() string                 { return "<street>" }
func (markerSource) City() string                          { return "<city>" }
func (markerSource) State() string                         { return "<state>" }
func (markerSource) Country() string                       { return "<country>" }
func (markerSource) Zip() string                           { return "<zip>" }
func (markerSource) URL() string                           { return "<url>" }
func (markerSource) DomainName() string                    { return "<domain>" }
func (markerSource) Company() string                       { return "<company>" }
func (markerSource) JobTitle() string                      { return "<job>" }
func (markerSource) UUID() string                          { return "<uuid>" }
func (markerSource) Sentence() string                      { return "<sentence>" }
func (markerSource) Color() string                         { return "<color>" }
func (markerSource) DisplayName() string                   { return "<display>" }
func (markerSource) Quote() []byte                         { return []byte("<quote>") }

func generateString(t *testing.T, fieldName string) string {
	t.Helper()
	intr := &stubIntrospector{desc: schema.Descriptor{
		FullName: "fixtures.One",
		Fields:   []schema.FieldDescriptor{{Name: fieldName, Kind: schema.KindString}},
	}}
	gen := generator.New(intr, generator.WithSource(markerSource{}))

	instance, err := gen.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	value, _ := asObject(t, instance)[fieldName].(string)
	return value
}

func TestContextualString_CategoryRouting(t *testing.T) {
	cases := []struct {
		field string
		want  string
	}{
		{"email", "<email>"},
		{"contact_mail", "<email>"},
		{"EmailAddress", "<email>"},
		// email wins over id when both substrings match
		{"email_id", "<email>"},
		{"first_name", "<first>"},
		{"firstName", "<first>"},
		{"last_name", "<last>"},
		{"lastname", "<last>"},
		{"full_name", "<full>"},
		{"name", "<full>"},
		{"username", "<full>"},
		{"display_name", "<full>"},
		// firstname beats the generic name bucket
		{"user_first_name", "<first>"},
		{"phone", "<phone>"},
		{"mobile", "<phone>"},
		{"tel", "<phone>"},
		{"tracking_number", "<phone>"},
		// number wins over id for "number_id"
		{"number_id", "<phone>"},
		{"address", "<street>"},
		{"street_line", "<street>"},
		{"city", "<city>"},
		{"home_city", "<city>"},
		{"state", "<state>"},
		{"province", "<state>"},
		{"country", "<country>"},
		{"zip", "<zip>"},
		{"postal_code", "<zip>"},
		{"url", "<url>"},
		{"website", "<url>"},
		{"domain", "<domain>"},
		{"company", "<company>"},
		{"organization", "<company>"},
		{"job", "<job>"},
		{"position", "<job>"},
		{"title", "<job>"},
		{"role", "<job>"},
		{"id", "<uuid>"},
		{"user_id", "<uuid>"},
		{"uuid", "<uuid>"},
		{"description", "<sentence>"},
		{"comment", "<sentence>"},
		{"note", "<sentence>"},
		{"message", "<sentence>"},
		{"color", "<color>"},
		{"colour", "<color>"},
		{"whatever", "<display>"},
		{"payload", "<display>"},
	}

	for _, tc := range cases {
		if got := generateString(t, tc.field); got != tc.want {
			t.Errorf("field %q routed to %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestContextualString_AlwaysNonEmpty(t *testing.T) {
	names := []string{"", "x", "zzz", "payload", "data_blob", "weird-Name-42"}
	for _, name := range names {
		intr := &stubIntrospector{desc: schema.Descriptor{
			FullName: "fixtures.One",
			Fields:   []schema.FieldDescriptor{{Name: name, Kind: schema.KindString}},
		}}
		gen := generator.New(intr, generator.WithSource(corpus.NewSeeded(17)))

		instance, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if value, _ := asObject(t, instance)[name].(string); value == "" {
			t.Errorf("field %q produced an empty string", name)
		}
	}
}

func TestContextualString_EmailCategoryContainsAt(t *testing.T) {
	intr := &stubIntrospector{desc: schema.Descriptor{
		FullName: "fixtures.One",
		Fields:   []schema.FieldDescriptor{{Name: "billing_email", Kind: schema.KindString}},
	}}
	gen := generator.New(intr, generator.WithSource(corpus.NewSeeded(17)))

	for i := 0; i < 25; i++ {
		instance, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		value, _ := asObject(t, instance)["billing_email"].(string)
		if !strings.Contains(value, "@") {
			t.Fatalf("email field produced %q without @", value)
		}
	}
}
