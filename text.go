package brtypes

import "strings"

// Text is a non-empty string with surrounding whitespace removed.
type Text struct {
	value string
}

// TryParseText trims raw and rejects the empty result.
func TryParseText(raw string) (Text, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Text{}, false
	}
	return Text{value: s}, true
}

// ParseText is TryParseText returning an *InvalidValueError on rejection.
func ParseText(raw string) (Text, error) {
	return Parse(TextParser, raw)
}

// MustParseText panics when raw is not non-empty text.
func MustParseText(raw string) Text {
	return MustParse(TextParser, raw)
}

// String returns the trimmed text.
func (t Text) String() string { return t.value }

// Kind returns KindText.
func (t Text) Kind() Kind { return KindText }

// IsZero reports whether the Text is the zero value.
func (t Text) IsZero() bool { return t.value == "" }
