// Package testing provides fixtures for code that uses brtypes.
package testing

import (
	"testing"

	"github.com/zoobzio/brtypes"
)

// TestKey returns a valid 32-byte AES key for testing.
func TestKey(t testing.TB) []byte {
	t.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor(t testing.TB) brtypes.Encryptor {
	t.Helper()
	enc, err := brtypes.AES(TestKey(t))
	if err != nil {
		t.Fatalf("AES() error: %v", err)
	}
	return enc
}

// NewProcessor returns a processor for T with the test encryptor registered
// and its capabilities validated.
func NewProcessor[T brtypes.Cloner[T]](t testing.TB, codec brtypes.Codec) *brtypes.Processor[T] {
	t.Helper()
	proc, err := brtypes.NewProcessor[T](codec)
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	proc.SetEncryptor(brtypes.EncryptAES, TestEncryptor(t))
	if err := proc.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	return proc
}

// Customer uses every processor tag.
type Customer struct {
	ID    string `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	CPF   string `json:"cpf" xml:"cpf" yaml:"cpf" msgpack:"cpf" bson:"cpf" brtype:"cpf" store.encrypt:"aes" load.decrypt:"aes" send.mask:"cpf"`
	Email string `json:"email" xml:"email" yaml:"email" msgpack:"email" bson:"email" brtype:"email" send.redact:"email"`
	Phone string `json:"phone" xml:"phone" yaml:"phone" msgpack:"phone" bson:"phone" brtype:"phone,omitempty" send.mask:"phone"`
	State string `json:"state" xml:"state" yaml:"state" msgpack:"state" bson:"state" brtype:"uf"`
	Note  string `json:"note" xml:"note" yaml:"note" msgpack:"note" bson:"note" send.redact:"[REDACTED]"`
}

// Clone implements Cloner[Customer].
func (c Customer) Clone() Customer { return c }

// SampleCustomer returns a Customer whose fields are already canonical.
func SampleCustomer() Customer {
	return Customer{
		ID:    "123",
		CPF:   "00181560020",
		Email: "alice@example.com",
		Phone: "11912345678",
		State: "SP",
		Note:  "internal note",
	}
}

// RandomCustomer returns a canonical Customer with a generated CPF.
func RandomCustomer() Customer {
	c := SampleCustomer()
	c.CPF = brtypes.GenerateCPF().String()
	return c
}
