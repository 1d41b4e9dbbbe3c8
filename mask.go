package brtypes

import (
	"strings"
)

// Display and redaction patterns. '#' copies the next digit, '*' consumes a
// digit and hides it, anything else is written as-is.
const (
	cpfPattern       = "###.###.###-##"
	cnpjPattern      = "##.###.###/####-##"
	zipCodePattern   = "#####-###"
	mobilePattern    = "(##) #####-####"
	landlinePattern  = "(##) ####-####"
	cpfRedacted      = "***.###.###-**"
	cnpjRedacted     = "**.***.***/####-##"
	zipCodeRedacted  = "#####-***"
	mobileRedacted   = "(##) *****-####"
	landlineRedacted = "(##) ****-####"
)

const redactionPlaceholder = '*'

// Masker rewrites a value into a display form.
type Masker interface {
	// Mask applies the masker to value.
	Mask(value string) string
}

// patternMasker lays the digits of a value over a fixed pattern.
type patternMasker struct {
	pattern string
	slots   int
	hides   bool
}

// PatternMasker returns a masker for a positional pattern.
// '#' copies the next digit, '*' consumes a digit and writes '*', other
// characters are literal. When the digit count of the value does not match
// the pattern, hiding patterns mask the whole value and plain patterns
// return it unchanged.
func PatternMasker(pattern string) Masker {
	m := &patternMasker{pattern: pattern}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '#':
			m.slots++
		case '*':
			m.slots++
			m.hides = true
		}
	}
	return m
}

func (m *patternMasker) Mask(value string) string {
	digits := StripNonDigits(value)
	if len(digits) != m.slots {
		if m.hides {
			return strings.Repeat("*", len(value))
		}
		return value
	}
	return applyPattern(m.pattern, digits)
}

func applyPattern(pattern, digits string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	next := 0
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '#':
			b.WriteByte(digits[next])
			next++
		case '*':
			b.WriteByte(redactionPlaceholder)
			next++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CPFMasker formats 11 digits as 000.000.000-00.
func CPFMasker() Masker { return PatternMasker(cpfPattern) }

// CNPJMasker formats 14 digits as 00.000.000/0000-00.
func CNPJMasker() Masker { return PatternMasker(cnpjPattern) }

// ZipCodeMasker formats 8 digits as 00000-000.
func ZipCodeMasker() Masker { return PatternMasker(zipCodePattern) }

// CPFRedactor hides the first group and the check digits: ***.815.600-**
func CPFRedactor() Masker { return PatternMasker(cpfRedacted) }

// CNPJRedactor hides the company root and keeps branch and check digits: **.***.***/0001-50
func CNPJRedactor() Masker { return PatternMasker(cnpjRedacted) }

// ZipCodeRedactor keeps the region prefix and hides the suffix: 01310-***
func ZipCodeRedactor() Masker { return PatternMasker(zipCodeRedacted) }

// phoneMasker picks the mobile or landline layout by digit count.
type phoneMasker struct {
	mobile   Masker
	landline Masker
	hides    bool
}

// PhoneMasker formats 11 digits as (00) 00000-0000 and 10 digits as (00) 0000-0000.
func PhoneMasker() Masker {
	return &phoneMasker{
		mobile:   PatternMasker(mobilePattern),
		landline: PatternMasker(landlinePattern),
	}
}

// PhoneRedactor keeps the area code and the last four digits: (11) *****-5678
func PhoneRedactor() Masker {
	return &phoneMasker{
		mobile:   PatternMasker(mobileRedacted),
		landline: PatternMasker(landlineRedacted),
		hides:    true,
	}
}

func (m *phoneMasker) Mask(value string) string {
	switch len(StripNonDigits(value)) {
	case 11:
		return m.mobile.Mask(value)
	case 10:
		return m.landline.Mask(value)
	}
	if m.hides {
		return strings.Repeat("*", len(value))
	}
	return value
}

// emailRedactor masks email format: alice@example.com -> a***@example.com
type emailRedactor struct{}

// EmailRedactor returns a redactor for email addresses.
// Preserves first character of local part and full domain.
func EmailRedactor() Masker {
	return &emailRedactor{}
}

func (m *emailRedactor) Mask(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return strings.Repeat("*", len(value))
	}
	local, domain := []rune(value[:at]), value[at:]
	return string(local[0]) + "***" + domain
}

// nameRedactor masks names: João Silva -> J*** S****
type nameRedactor struct{}

// NameRedactor returns a redactor for personal names.
// Preserves first letter of each word, masks the rest.
func NameRedactor() Masker {
	return &nameRedactor{}
}

func (m *nameRedactor) Mask(value string) string {
	words := strings.Fields(value)
	masked := make([]string, len(words))
	for i, word := range words {
		runes := []rune(word)
		masked[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(masked, " ")
}

// Shared instances used by the value types.
var (
	cpfDisplay       = CPFMasker()
	cnpjDisplay      = CNPJMasker()
	zipCodeDisplay   = ZipCodeMasker()
	phoneDisplay     = PhoneMasker()
	cpfRedaction     = CPFRedactor()
	cnpjRedaction    = CNPJRedactor()
	zipCodeRedaction = ZipCodeRedactor()
	phoneRedaction   = PhoneRedactor()
	emailRedaction   = EmailRedactor()
	nameRedaction    = NameRedactor()
)

// BuiltinMaskers returns the display masker registry keyed by kind.
func BuiltinMaskers() map[Kind]Masker {
	return map[Kind]Masker{
		KindCPF:     cpfDisplay,
		KindCNPJ:    cnpjDisplay,
		KindPhone:   phoneDisplay,
		KindZipCode: zipCodeDisplay,
	}
}

// BuiltinRedactors returns the redactor registry keyed by kind.
func BuiltinRedactors() map[Kind]Masker {
	return map[Kind]Masker{
		KindCPF:     cpfRedaction,
		KindCNPJ:    cnpjRedaction,
		KindPhone:   phoneRedaction,
		KindZipCode: zipCodeRedaction,
		KindEmail:   emailRedaction,
		KindName:    nameRedaction,
	}
}
