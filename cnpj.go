package brtypes

// CNPJ is a legal-entity registry number held as 14 digits.
type CNPJ struct {
	value string
}

// TryParseCNPJ strips every non-digit from raw and accepts the result when it
// has 14 digits, not all equal, with matching check digits.
func TryParseCNPJ(raw string) (CNPJ, bool) {
	digits := StripNonDigits(raw)
	if len(digits) != cnpjLength || allSame(digits) {
		return CNPJ{}, false
	}
	if !hasValidCheckDigits(digits, cnpjWeights) {
		return CNPJ{}, false
	}
	return CNPJ{value: digits}, true
}

// ParseCNPJ is TryParseCNPJ returning an *InvalidValueError on rejection.
func ParseCNPJ(raw string) (CNPJ, error) {
	return Parse(CNPJParser, raw)
}

// MustParseCNPJ panics when raw is not a valid CNPJ.
func MustParseCNPJ(raw string) CNPJ {
	return MustParse(CNPJParser, raw)
}

// GenerateCNPJ returns a random valid CNPJ.
func GenerateCNPJ() CNPJ {
	body := randomBody(newRand(), cnpjBodyLength)
	return CNPJ{value: body + checkDigits(body, cnpjWeights)}
}

// String returns the 14 canonical digits.
func (c CNPJ) String() string { return c.value }

// Kind returns KindCNPJ.
func (c CNPJ) Kind() Kind { return KindCNPJ }

// IsZero reports whether the CNPJ is the zero value.
func (c CNPJ) IsZero() bool { return c.value == "" }

// Mask returns the display form 00.000.000/0000-00.
func (c CNPJ) Mask() string { return cnpjDisplay.Mask(c.value) }

// Redact hides the company root and keeps branch and check digits.
func (c CNPJ) Redact() string { return cnpjRedaction.Mask(c.value) }

// Branch returns the four-digit branch number (0001 for the head office).
func (c CNPJ) Branch() string {
	if c.IsZero() {
		return ""
	}
	return c.value[8:12]
}

// Digits returns the two check digits.
func (c CNPJ) Digits() string {
	if c.IsZero() {
		return ""
	}
	return c.value[cnpjBodyLength:]
}
