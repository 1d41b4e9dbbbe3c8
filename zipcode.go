package brtypes

const zipCodeLength = 8

// ZipCode is a postal code (CEP) held as 8 digits.
type ZipCode struct {
	value string
}

// TryParseZipCode strips every non-digit from raw and accepts exactly 8 digits.
func TryParseZipCode(raw string) (ZipCode, bool) {
	digits := StripNonDigits(raw)
	if len(digits) != zipCodeLength {
		return ZipCode{}, false
	}
	return ZipCode{value: digits}, true
}

// ParseZipCode is TryParseZipCode returning an *InvalidValueError on rejection.
func ParseZipCode(raw string) (ZipCode, error) {
	return Parse(ZipCodeParser, raw)
}

// MustParseZipCode panics when raw is not a valid zip code.
func MustParseZipCode(raw string) ZipCode {
	return MustParse(ZipCodeParser, raw)
}

// GenerateZipCode returns 8 random digits. The result is well-formed, not
// necessarily an assigned postal code.
func GenerateZipCode() ZipCode {
	return ZipCode{value: randomDigits(newRand(), zipCodeLength)}
}

// String returns the 8 canonical digits.
func (z ZipCode) String() string { return z.value }

// Kind returns KindZipCode.
func (z ZipCode) Kind() Kind { return KindZipCode }

// IsZero reports whether the ZipCode is the zero value.
func (z ZipCode) IsZero() bool { return z.value == "" }

// Mask returns the display form 00000-000.
func (z ZipCode) Mask() string { return zipCodeDisplay.Mask(z.value) }

// Redact keeps the five-digit region prefix.
func (z ZipCode) Redact() string { return zipCodeRedaction.Mask(z.value) }
