// Package corpus provides the default data source backing the generator:
// realistic category strings and bounded scalars drawn from gofakeit, with
// UUIDs from google/uuid.
package corpus

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const (
	sentenceWords = 6
	quoteWords    = 12
)

// Corpus implements generator.DataSource over a gofakeit Faker.
type Corpus struct {
	faker *gofakeit.Faker
}

// New returns a corpus seeded from process entropy.
func New() *Corpus {
	return &Corpus{faker: gofakeit.New(0)}
}

// NewSeeded returns a deterministic corpus for the given non-zero seed. Seed
// zero falls back to process entropy.
func NewSeeded(seed uint64) *Corpus {
	return &Corpus{faker: gofakeit.New(seed)}
}

// Float64Range returns a value in [min, max).
func (c *Corpus) Float64Range(min, max float64) float64 {
	return c.faker.Float64Range(min, max)
}

// IntRange returns a value in [min, max], inclusive on both ends.
func (c *Corpus) IntRange(min, max int) int {
	return c.faker.Number(min, max)
}

// Bool returns a uniform random boolean.
func (c *Corpus) Bool() bool {
	return c.faker.Bool()
}

func (c *Corpus) Email() string {
	return c.faker.Email()
}

func (c *Corpus) FirstName() string {
	return c.faker.FirstName()
}

func (c *Corpus) LastName() string {
	return c.faker.LastName()
}

func (c *Corpus) FullName() string {
	return c.faker.Name()
}

func (c *Corpus) PhoneNumber() string {
	return c.faker.PhoneFormatted()
}

func (c *Corpus) StreetAddress() string {
	return c.faker.Street()
}

func (c *Corpus) City() string {
	return c.faker.City()
}

func (c *Corpus) State() string {
	return c.faker.State()
}

func (c *Corpus) Country() string {
	return c.faker.Country()
}

func (c *Corpus) Zip() string {
	return c.faker.Zip()
}

func (c *Corpus) URL() string {
	return c.faker.URL()
}

func (c *Corpus) DomainName() string {
	return c.faker.DomainName()
}

func (c *Corpus) Company() string {
	return c.faker.Company()
}

func (c *Corpus) JobTitle() string {
	return c.faker.JobTitle()
}

// UUID uses google/uuid rather than the faker so identifiers are always
// RFC 4122 version 4, independent of the faker's seed.
func (c *Corpus) UUID() string {
	return uuid.NewString()
}

func (c *Corpus) Sentence() string {
	return c.faker.Sentence(sentenceWords)
}

func (c *Corpus) Color() string {
	return c.faker.Color()
}

// DisplayName returns a whimsical handle, the fallback category for string
// fields whose name matches no other pattern.
func (c *Corpus) DisplayName() string {
	return c.faker.Gamertag()
}

// Quote returns a non-empty text payload for bytes fields.
func (c *Corpus) Quote() []byte {
	return []byte(c.faker.HipsterSentence(quoteWords))
}
