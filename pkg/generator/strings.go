package generator

import "strings"

// contextualString chooses a corpus category from the field's declared name.
// Containment checks run in a fixed priority order and the first match wins:
// "email_id" must produce an email, not a UUID. The function is total —
// unmatched names fall through to the whimsical display-name category.
func (g *Generator) contextualString(fieldName string) string {
	name := strings.ToLower(fieldName)

	if strings.Contains(name, "email") || strings.Contains(name, "mail") {
		return g.source.Email()
	}

	if strings.Contains(name, "firstname") || strings.Contains(name, "first_name") {
		return g.source.FirstName()
	}
	if strings.Contains(name, "lastname") || strings.Contains(name, "last_name") {
		return g.source.LastName()
	}
	if strings.Contains(name, "fullname") || strings.Contains(name, "full_name") ||
		name == "name" || strings.Contains(name, "username") ||
		strings.Contains(name, "displayname") || strings.Contains(name, "display_name") {
		return g.source.FullName()
	}

	if strings.Contains(name, "phone") || strings.Contains(name, "mobile") ||
		strings.Contains(name, "tel") || strings.Contains(name, "number") {
		return g.source.PhoneNumber()
	}

	if strings.Contains(name, "address") || strings.Contains(name, "street") {
		return g.source.StreetAddress()
	}
	if strings.Contains(name, "city") {
		return g.source.City()
	}
	if strings.Contains(name, "state") || strings.Contains(name, "province") {
		return g.source.State()
	}
	if strings.Contains(name, "country") {
		return g.source.Country()
	}
	if strings.Contains(name, "zip") || strings.Contains(name, "postal") {
		return g.source.Zip()
	}

	if strings.Contains(name, "url") || strings.Contains(name, "website") {
		return g.source.URL()
	}
	if strings.Contains(name, "domain") {
		return g.source.DomainName()
	}

	if strings.Contains(name, "company") || strings.Contains(name, "organization") {
		return g.source.Company()
	}
	if strings.Contains(name, "job") || strings.Contains(name, "position") ||
		strings.Contains(name, "title") || strings.Contains(name, "role") {
		return g.source.JobTitle()
	}

	if strings.Contains(name, "id") || strings.Contains(name, "uuid") {
		return g.source.UUID()
	}

	if strings.Contains(name, "description") || strings.Contains(name, "comment") ||
		strings.Contains(name, "note") || strings.Contains(name, "message") {
		return g.source.Sentence()
	}

	if strings.Contains(name, "color") || strings.Contains(name, "colour") {
		return g.source.Color()
	}

	return g.source.DisplayName()
}
