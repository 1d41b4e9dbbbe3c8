package brtypes

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const minNameLetters = 2

// Name is a person's name: letters separated by single spaces, NFC-normalised.
type Name struct {
	value string
}

// TryParseName trims raw, collapses internal whitespace and composes it to
// NFC. The result must contain only letters apart from the separating spaces,
// and at least two of them.
func TryParseName(raw string) (Name, bool) {
	name := norm.NFC.String(CollapseWhitespace(raw))
	letters := StripWhitespace(name)
	if utf8.RuneCountInString(letters) < minNameLetters {
		return Name{}, false
	}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return Name{}, false
		}
	}
	return Name{value: name}, true
}

// ParseName is TryParseName returning an *InvalidValueError on rejection.
func ParseName(raw string) (Name, error) {
	return Parse(NameParser, raw)
}

// MustParseName panics when raw is not a valid name.
func MustParseName(raw string) Name {
	return MustParse(NameParser, raw)
}

// String returns the normalized name.
func (n Name) String() string { return n.value }

// Kind returns KindName.
func (n Name) Kind() Kind { return KindName }

// IsZero reports whether the Name is the zero value.
func (n Name) IsZero() bool { return n.value == "" }

// Redact keeps the first letter of each word.
func (n Name) Redact() string { return nameRedaction.Mask(n.value) }
