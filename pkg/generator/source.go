package generator

// DataSource supplies the raw randomness and corpus categories the engine
// draws from. Both IntRange bounds are inclusive; the engine owns any
// half-open arithmetic. Implementations are not required to be safe for
// concurrent use — the generator itself is single-threaded.
type DataSource interface {
	// Float64Range returns a value in [min, max).
	Float64Range(min, max float64) float64
	// IntRange returns a value in [min, max], inclusive on both ends.
	IntRange(min, max int) int
	// Bool returns a uniform random boolean.
	Bool() bool

	Email() string
	FirstName() string
	LastName() string
	FullName() string
	PhoneNumber() string
	StreetAddress() string
	City() string
	State() string
	Country() string
	Zip() string
	URL() string
	DomainName() string
	Company() string
	JobTitle() string
	UUID() string
	Sentence() string
	Color() string

	// DisplayName is the fallback category for string fields whose name
	// matches nothing else: an arbitrary whimsical handle.
	DisplayName() string

	// Quote returns a non-empty text payload for bytes fields.
	Quote() []byte
}
