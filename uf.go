package brtypes

import (
	"slices"
	"strings"
)

// UF is the two-letter abbreviation of a Brazilian federative unit.
type UF struct {
	value string
}

var states = []string{
	"AC", "AL", "AM", "AP", "BA", "CE", "DF", "ES", "GO",
	"MA", "MG", "MS", "MT", "PA", "PB", "PE", "PI", "PR",
	"RJ", "RN", "RO", "RR", "RS", "SC", "SE", "SP", "TO",
}

// States returns the 27 federative-unit codes in alphabetical order.
func States() []string {
	return slices.Clone(states)
}

// TryParseUF trims and upper-cases raw and accepts one of the 27 codes.
func TryParseUF(raw string) (UF, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if _, found := slices.BinarySearch(states, code); !found {
		return UF{}, false
	}
	return UF{value: code}, true
}

// ParseUF is TryParseUF returning an *InvalidValueError on rejection.
func ParseUF(raw string) (UF, error) {
	return Parse(UFParser, raw)
}

// MustParseUF panics when raw is not one of the 27 federative units.
func MustParseUF(raw string) UF {
	return MustParse(UFParser, raw)
}

// String returns the upper-case two-letter code.
func (u UF) String() string { return u.value }

// Kind returns KindUF.
func (u UF) Kind() Kind { return KindUF }

// IsZero reports whether the UF is the zero value.
func (u UF) IsZero() bool { return u.value == "" }
