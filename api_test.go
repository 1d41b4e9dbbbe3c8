package brtypes_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/zoobzio/brtypes"
	"github.com/zoobzio/brtypes/codec"
)

// --- Cloner interface tests ---

type clonerTestStruct struct {
	CPF     brtypes.CPF
	Billing *brtypes.ZipCode
	Phones  []string
	Labels  map[string]string
}

func (c clonerTestStruct) Clone() clonerTestStruct {
	clone := clonerTestStruct{CPF: c.CPF}
	if c.Billing != nil {
		z := *c.Billing
		clone.Billing = &z
	}
	if c.Phones != nil {
		clone.Phones = make([]string, len(c.Phones))
		copy(clone.Phones, c.Phones)
	}
	if c.Labels != nil {
		clone.Labels = make(map[string]string, len(c.Labels))
		for k, v := range c.Labels {
			clone.Labels[k] = v
		}
	}
	return clone
}

var _ brtypes.Cloner[clonerTestStruct] = clonerTestStruct{}

func TestCloner_DeepCopy(t *testing.T) {
	zip := brtypes.MustParseZipCode("01310100")
	original := clonerTestStruct{
		CPF:     brtypes.MustParseCPF("00181560020"),
		Billing: &zip,
		Phones:  []string{"11912345678"},
		Labels:  map[string]string{"tier": "gold"},
	}

	clone := original.Clone()
	clone.Phones[0] = "changed"
	clone.Labels["tier"] = "changed"
	*clone.Billing = brtypes.MustParseZipCode("70040010")

	if original.Phones[0] != "11912345678" {
		t.Error("Clone() should deep copy Phones")
	}
	if original.Labels["tier"] != "gold" {
		t.Error("Clone() should deep copy Labels")
	}
	if original.Billing.String() != "01310100" {
		t.Error("Clone() should deep copy Billing")
	}
	if clone.CPF != original.CPF {
		t.Error("Clone() should copy value types")
	}
}

// --- Override interface tests ---

type overrideTest struct {
	CPF string
}

func (o overrideTest) Clone() overrideTest { return o }

func (o *overrideTest) Normalize() error {
	cpf, err := brtypes.ParseCPF(o.CPF)
	if err != nil {
		return err
	}
	o.CPF = cpf.String()
	return nil
}

func (o *overrideTest) Encrypt(map[brtypes.EncryptAlgo]brtypes.Encryptor) error { return nil }
func (o *overrideTest) Decrypt(map[brtypes.EncryptAlgo]brtypes.Encryptor) error { return nil }
func (o *overrideTest) Mask(map[brtypes.Kind]brtypes.Masker) error              { return nil }
func (o *overrideTest) Redact(map[brtypes.Kind]brtypes.Masker) error            { return nil }

var (
	_ brtypes.Normalizable = (*overrideTest)(nil)
	_ brtypes.Encryptable  = (*overrideTest)(nil)
	_ brtypes.Decryptable  = (*overrideTest)(nil)
	_ brtypes.Maskable     = (*overrideTest)(nil)
	_ brtypes.Redactable   = (*overrideTest)(nil)
)

func TestNormalizable_SingleError(t *testing.T) {
	proc, err := brtypes.NewProcessor[overrideTest](codec.JSON())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	_, err = proc.Receive(context.Background(), []byte(`{"CPF":"1"}`))
	if !errors.Is(err, brtypes.ErrInvalidValue) {
		t.Errorf("Receive() error = %v, want ErrInvalidValue", err)
	}
}

// --- Typed fields ---

// Registration holds value types directly; decoding validates them.
type Registration struct {
	CPF   brtypes.CPF     `json:"cpf"`
	Phone brtypes.Phone   `json:"phone"`
	Zip   brtypes.ZipCode `json:"zip"`
	State brtypes.UF      `json:"state"`
	Email brtypes.Email   `json:"email"`
	Name  brtypes.Name    `json:"name"`
}

func (r Registration) Clone() Registration { return r }

func TestTypedFields_Receive(t *testing.T) {
	proc, err := brtypes.NewProcessor[Registration](codec.JSON())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	input := `{
		"cpf":"001.815.600-20",
		"phone":"(11) 91234-5678",
		"zip":"01310-100",
		"state":"sp",
		"email":"Alice@Example.com",
		"name":"  Alice   Souza "
	}`
	r, err := proc.Receive(context.Background(), []byte(input))
	if err != nil {
		t.Fatalf("Receive() error: %v", err)
	}

	if r.CPF.String() != "00181560020" || r.Phone.DDD() != "11" || r.State.String() != "SP" {
		t.Errorf("Receive() = %+v", r)
	}
	if r.Name.String() != "Alice Souza" {
		t.Errorf("Name = %q, want %q", r.Name, "Alice Souza")
	}

	out, err := proc.Send(context.Background(), r)
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	var wire map[string]string
	if err := json.Unmarshal(out, &wire); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if wire["cpf"] != "00181560020" || wire["email"] != "alice@example.com" || wire["zip"] != "01310100" {
		t.Errorf("Send() = %s, want canonical values", out)
	}
}

func TestTypedFields_RejectInvalid(t *testing.T) {
	proc, _ := brtypes.NewProcessor[Registration](codec.JSON())

	_, err := proc.Receive(context.Background(), []byte(`{"cpf":"111.111.111-11"}`))
	if !errors.Is(err, brtypes.ErrUnmarshal) {
		t.Errorf("Receive() error = %v, want ErrUnmarshal", err)
	}
	if !errors.Is(err, brtypes.ErrInvalidValue) {
		t.Errorf("Receive() error = %v, want ErrInvalidValue", err)
	}

	var ive *brtypes.InvalidValueError
	if !errors.As(err, &ive) || ive.Kind != brtypes.KindCPF {
		t.Errorf("Receive() error should carry the rejected CPF, got %v", err)
	}
}

func TestTypedFields_Empty(t *testing.T) {
	proc, _ := brtypes.NewProcessor[Registration](codec.JSON())

	r, err := proc.Receive(context.Background(), []byte(`{"cpf":"","phone":null}`))
	if err != nil {
		t.Fatalf("Receive() error: %v", err)
	}
	if !r.CPF.IsZero() || !r.Phone.IsZero() {
		t.Errorf("Receive() = %+v, want zero values", r)
	}
}
