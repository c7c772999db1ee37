package domain

import (
	"regexp"
	"strings"
)

var (
	nameRe    = regexp.MustCompile(`^[a-zA-Zа-яА-Я\s']+$`)
	mapLinkRe = regexp.MustCompile(`^https://maps\.app\.goo\.gl/[a-zA-Z0-9]+$`)
)

// countryCallingCode is prefixed onto bare 8-digit local numbers.
const countryCallingCode = "506"

// ValidateName checks a company name: Latin or Cyrillic letters, whitespace,
// and apostrophes only. Empty input is invalid.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return NewValidationError(FieldName, "only letters, spaces, and apostrophes are allowed")
	}
	return nil
}

// ValidateCategory checks membership in the fixed category enumeration.
func ValidateCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", NewValidationError(FieldCategory, "must be one of the listed categories")
	}
	return c, nil
}

// ValidateMapLink checks the short Google Maps link shape
// https://maps.app.goo.gl/{id}.
func ValidateMapLink(url string) error {
	if !mapLinkRe.MatchString(url) {
		return NewValidationError(FieldMapLink, "must look like https://maps.app.goo.gl/{LocationID}")
	}
	return nil
}

// ValidatePhotos checks a batch of pending photo references: the list must be
// non-empty and every element must be a non-blank retrievable location.
func ValidatePhotos(refs []string) error {
	if len(refs) == 0 {
		return NewValidationError(FieldPhotos, "no photos received")
	}
	for _, r := range refs {
		if strings.TrimSpace(r) == "" {
			return NewValidationError(FieldPhotos, "photo has no retrievable file")
		}
	}
	return nil
}

// NormalizePhone strips all non-digit characters and applies the country
// prefix: 8 digits get "+506" prepended, 11 digits already starting with 506
// get "+". Any other digit count is returned as bare digits; malformed input
// is never rejected.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 8:
		return "+" + countryCallingCode + digits
	case len(digits) == 11 && strings.HasPrefix(digits, countryCallingCode):
		return "+" + digits
	}
	return digits
}
