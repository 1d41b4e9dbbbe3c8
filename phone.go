package brtypes

const (
	dddLength      = 2
	mobileLength   = 11
	landlineLength = 10
)

// Phone is a Brazilian phone number held as its digits: a two-digit area
// code (DDD) followed by an 8-digit landline or 9-digit mobile number.
type Phone struct {
	value string
}

// TryParsePhone strips every non-digit from raw. Eleven digits are a mobile
// number and must have '9' after the area code; ten digits are a landline
// and must have '3' after the area code.
func TryParsePhone(raw string) (Phone, bool) {
	digits := StripNonDigits(raw)
	switch len(digits) {
	case mobileLength:
		if digits[dddLength] != '9' {
			return Phone{}, false
		}
	case landlineLength:
		if digits[dddLength] != '3' {
			return Phone{}, false
		}
	default:
		return Phone{}, false
	}
	return Phone{value: digits}, true
}

// ParsePhone is TryParsePhone returning an *InvalidValueError on rejection.
func ParsePhone(raw string) (Phone, error) {
	return Parse(PhoneParser, raw)
}

// MustParsePhone panics when raw is not a valid phone number.
func MustParsePhone(raw string) Phone {
	return MustParse(PhoneParser, raw)
}

// PhoneFromParts parses an area code and a subscriber number given separately.
func PhoneFromParts(ddd, number string) (Phone, error) {
	return ParsePhone(ddd + number)
}

// String returns the 10 or 11 canonical digits.
func (p Phone) String() string { return p.value }

// Kind returns KindPhone.
func (p Phone) Kind() Kind { return KindPhone }

// IsZero reports whether the Phone is the zero value.
func (p Phone) IsZero() bool { return p.value == "" }

// DDD returns the two-digit area code.
func (p Phone) DDD() string {
	if p.IsZero() {
		return ""
	}
	return p.value[:dddLength]
}

// Number returns the subscriber number without the area code.
func (p Phone) Number() string {
	if p.IsZero() {
		return ""
	}
	return p.value[dddLength:]
}

// IsMobile reports whether the number has the mobile '9' prefix.
func (p Phone) IsMobile() bool {
	return len(p.value) == mobileLength
}

// Mask returns (00) 00000-0000 for mobiles and (00) 0000-0000 for landlines.
func (p Phone) Mask() string { return phoneDisplay.Mask(p.value) }

// Redact keeps the area code and the last four digits.
func (p Phone) Redact() string { return phoneRedaction.Mask(p.value) }
