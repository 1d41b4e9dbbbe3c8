package brtypes

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// Email is an email address held trimmed and lower-cased.
type Email struct {
	value string
}

// TryParseEmail trims and lower-cases raw, then requires a single '@', a
// well-formed address and a domain of at least two non-empty labels.
func TryParseEmail(raw string) (Email, bool) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if strings.Count(addr, "@") != 1 {
		return Email{}, false
	}
	local, domain, _ := strings.Cut(addr, "@")
	if local == "" || !validDomain(domain) {
		return Email{}, false
	}
	if !govalidator.IsEmail(addr) {
		return Email{}, false
	}
	return Email{value: addr}, true
}

// validDomain rejects empty labels, which also covers leading, trailing and doubled dots.
func validDomain(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}

// ParseEmail is TryParseEmail returning an *InvalidValueError on rejection.
func ParseEmail(raw string) (Email, error) {
	return Parse(EmailParser, raw)
}

// MustParseEmail panics when raw is not a valid email address.
func MustParseEmail(raw string) Email {
	return MustParse(EmailParser, raw)
}

// String returns the trimmed, lower-cased address.
func (e Email) String() string { return e.value }

// Kind returns KindEmail.
func (e Email) Kind() Kind { return KindEmail }

// IsZero reports whether the Email is the zero value.
func (e Email) IsZero() bool { return e.value == "" }

// Local returns the part before '@'.
func (e Email) Local() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the part after '@'.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// Redact keeps the first character of the local part and the domain.
func (e Email) Redact() string { return emailRedaction.Mask(e.value) }
