package brtypes

import (
	"fmt"
	"testing"
)

func TestTryParsePhone_Mobile(t *testing.T) {
	for _, input := range []string{"11 91234-5678", "(11) 91234-5678", "11 912345678", "11912345678"} {
		phone, ok := TryParsePhone(input)
		if !ok {
			t.Errorf("TryParsePhone(%q) rejected", input)
			continue
		}
		if phone.String() != "11912345678" {
			t.Errorf("TryParsePhone(%q) = %q, want %q", input, phone.String(), "11912345678")
		}
		if !phone.IsMobile() {
			t.Errorf("TryParsePhone(%q).IsMobile() = false", input)
		}
		if phone.DDD() != "11" {
			t.Errorf("TryParsePhone(%q).DDD() = %q, want %q", input, phone.DDD(), "11")
		}
		if phone.Number() != "912345678" {
			t.Errorf("TryParsePhone(%q).Number() = %q, want %q", input, phone.Number(), "912345678")
		}
		if phone.Mask() != "(11) 91234-5678" {
			t.Errorf("TryParsePhone(%q).Mask() = %q, want %q", input, phone.Mask(), "(11) 91234-5678")
		}
	}
}

func TestTryParsePhone_Landline(t *testing.T) {
	for _, input := range []string{"(11) 3123-5678", "11 3123-5678", "11 3123 5678", "1131235678"} {
		phone, ok := TryParsePhone(input)
		if !ok {
			t.Errorf("TryParsePhone(%q) rejected", input)
			continue
		}
		if phone.String() != "1131235678" {
			t.Errorf("TryParsePhone(%q) = %q, want %q", input, phone.String(), "1131235678")
		}
		if phone.IsMobile() {
			t.Errorf("TryParsePhone(%q).IsMobile() = true", input)
		}
		if phone.Number() != "31235678" {
			t.Errorf("TryParsePhone(%q).Number() = %q, want %q", input, phone.Number(), "31235678")
		}
		if phone.Mask() != "(11) 3123-5678" {
			t.Errorf("TryParsePhone(%q).Mask() = %q, want %q", input, phone.Mask(), "(11) 3123-5678")
		}
	}
}

func TestTryParsePhone_Invalid(t *testing.T) {
	inputs := []string{
		"91234-5678",
		"191234-5678",
		"11 91234-56789",
		"11 9123-5678",
		"",
		"abc",
	}
	for d := '0'; d <= '8'; d++ {
		inputs = append(inputs, fmt.Sprintf("11 %c1234-5678", d))
	}
	for d := '0'; d <= '9'; d++ {
		if d != '3' {
			inputs = append(inputs, fmt.Sprintf("11 %c123-5678", d))
		}
	}

	for _, input := range inputs {
		if phone, ok := TryParsePhone(input); ok {
			t.Errorf("TryParsePhone(%q) = %q, want rejection", input, phone.String())
		}
	}
}

func TestPhoneFromParts(t *testing.T) {
	phone, err := PhoneFromParts("21", "98765-4321")
	if err != nil {
		t.Fatalf("PhoneFromParts() error: %v", err)
	}
	if phone.String() != "21987654321" {
		t.Errorf("PhoneFromParts() = %q, want %q", phone.String(), "21987654321")
	}

	if _, err := PhoneFromParts("21", "8765-4321"); err == nil {
		t.Error("PhoneFromParts() should reject a landline without the '3' prefix")
	}
}

func TestPhone_Redact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"11912345678", "(11) *****-5678"},
		{"1131235678", "(11) ****-5678"},
	}

	for _, tt := range tests {
		if got := MustParsePhone(tt.input).Redact(); got != tt.expected {
			t.Errorf("MustParsePhone(%q).Redact() = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPhone_Zero(t *testing.T) {
	var phone Phone
	if !phone.IsZero() || phone.IsMobile() || phone.DDD() != "" || phone.Number() != "" || phone.Mask() != "" {
		t.Error("zero Phone should be empty")
	}
}
