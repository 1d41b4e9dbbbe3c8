package brtypes

// CPF is an individual taxpayer registry number held as 11 digits.
// The zero value is the empty CPF and is never produced by a successful parse.
type CPF struct {
	value string
}

// TryParseCPF strips every non-digit from raw and accepts the result when it
// has 11 digits, not all equal, with matching check digits.
func TryParseCPF(raw string) (CPF, bool) {
	digits := StripNonDigits(raw)
	if len(digits) != cpfLength || allSame(digits) {
		return CPF{}, false
	}
	if !hasValidCheckDigits(digits, cpfWeights) {
		return CPF{}, false
	}
	return CPF{value: digits}, true
}

// ParseCPF is TryParseCPF returning an *InvalidValueError on rejection.
func ParseCPF(raw string) (CPF, error) {
	return Parse(CPFParser, raw)
}

// MustParseCPF panics when raw is not a valid CPF.
func MustParseCPF(raw string) CPF {
	return MustParse(CPFParser, raw)
}

// GenerateCPF returns a random valid CPF.
func GenerateCPF() CPF {
	body := randomBody(newRand(), cpfBodyLength)
	return CPF{value: body + checkDigits(body, cpfWeights)}
}

// String returns the 11 canonical digits.
func (c CPF) String() string { return c.value }

// Kind returns KindCPF.
func (c CPF) Kind() Kind { return KindCPF }

// IsZero reports whether the CPF is the zero value.
func (c CPF) IsZero() bool { return c.value == "" }

// Mask returns the display form 000.000.000-00.
func (c CPF) Mask() string { return cpfDisplay.Mask(c.value) }

// Redact returns the display form with the first group and check digits hidden.
func (c CPF) Redact() string { return cpfRedaction.Mask(c.value) }

// Digits returns the two check digits.
func (c CPF) Digits() string {
	if c.IsZero() {
		return ""
	}
	return c.value[cpfBodyLength:]
}
