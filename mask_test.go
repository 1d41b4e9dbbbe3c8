package brtypes

import (
	"testing"
)

func TestPatternMasker(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		expected string
	}{
		{cpfPattern, "00181560020", "001.815.600-20"},
		{cpfPattern, "001.815.600-20", "001.815.600-20"},
		{cpfPattern, "123", "123"}, // Wrong length, plain pattern
		{cpfRedacted, "00181560020", "***.815.600-**"},
		{cpfRedacted, "123", "***"}, // Wrong length, hiding pattern
		{"##/##", "1234", "12/34"},
		{"**##", "1234", "**34"},
		{"", "", ""},
	}

	for _, tt := range tests {
		result := PatternMasker(tt.pattern).Mask(tt.input)
		if result != tt.expected {
			t.Errorf("PatternMasker(%q).Mask(%q) = %q, want %q", tt.pattern, tt.input, result, tt.expected)
		}
	}
}

func TestCNPJMasker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"49700512000150", "49.700.512/0001-50"},
		{"49-700-512-0001-50", "49.700.512/0001-50"},
		{"4970051200015", "4970051200015"},
	}

	for _, tt := range tests {
		result := CNPJMasker().Mask(tt.input)
		if result != tt.expected {
			t.Errorf("CNPJMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCNPJRedactor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"49700512000150", "**.***.***/0001-50"},
		{"49.700.512/0001-50", "**.***.***/0001-50"},
		{"12345", "*****"},
	}

	for _, tt := range tests {
		result := CNPJRedactor().Mask(tt.input)
		if result != tt.expected {
			t.Errorf("CNPJRedactor(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestZipCodeMasker(t *testing.T) {
	if got := ZipCodeMasker().Mask("01310100"); got != "01310-100" {
		t.Errorf("ZipCodeMasker() = %q, want %q", got, "01310-100")
	}
	if got := ZipCodeRedactor().Mask("01310100"); got != "01310-***" {
		t.Errorf("ZipCodeRedactor() = %q, want %q", got, "01310-***")
	}
}

func TestPhoneMasker(t *testing.T) {
	m := PhoneMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"11912345678", "(11) 91234-5678"},
		{"1131235678", "(11) 3123-5678"},
		{"(11) 91234-5678", "(11) 91234-5678"},
		{"123", "123"}, // Neither layout
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("PhoneMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestPhoneRedactor(t *testing.T) {
	m := PhoneRedactor()

	tests := []struct {
		input    string
		expected string
	}{
		{"11912345678", "(11) *****-5678"},
		{"1131235678", "(11) ****-5678"},
		{"123", "***"}, // Neither layout
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("PhoneRedactor(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestEmailRedactor(t *testing.T) {
	m := EmailRedactor()

	tests := []struct {
		input    string
		expected string
	}{
		{"alice@example.com", "a***@example.com"},
		{"bob@test.com.br", "b***@test.com.br"},
		{"a@b.com", "a***@b.com"},
		{"joão@exemplo.com.br", "j***@exemplo.com.br"},
		{"noatsign", "********"}, // No @
		{"@b.com", "******"},     // Empty local part
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("EmailRedactor(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNameRedactor(t *testing.T) {
	m := NameRedactor()

	tests := []struct {
		input    string
		expected string
	}{
		{"João Silva", "J*** S****"},
		{"Ana", "A**"},
		{"  Maria   Souza ", "M**** S****"},
		{"", ""},
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("NameRedactor(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestBuiltinMaskers(t *testing.T) {
	maskers := BuiltinMaskers()
	for _, k := range []Kind{KindCPF, KindCNPJ, KindPhone, KindZipCode} {
		if maskers[k] == nil {
			t.Errorf("BuiltinMaskers() missing %q", k)
		}
	}

	redactors := BuiltinRedactors()
	for _, k := range []Kind{KindCPF, KindCNPJ, KindPhone, KindZipCode, KindEmail, KindName} {
		if redactors[k] == nil {
			t.Errorf("BuiltinRedactors() missing %q", k)
		}
	}
	if _, ok := redactors[KindUF]; ok {
		t.Error("BuiltinRedactors() should not redact UF")
	}
}

func TestMask_Reparses(t *testing.T) {
	cpf := MustParseCPF("00181560020")
	if again, ok := TryParseCPF(cpf.Mask()); !ok || again != cpf {
		t.Errorf("TryParseCPF(%q) = %q, %v; want %q", cpf.Mask(), again, ok, cpf)
	}

	phone := MustParsePhone("1131235678")
	if again, ok := TryParsePhone(phone.Mask()); !ok || again != phone {
		t.Errorf("TryParsePhone(%q) = %q, %v; want %q", phone.Mask(), again, ok, phone)
	}
}
