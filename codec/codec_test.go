package codec_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/brtypes"
	"github.com/zoobzio/brtypes/codec"
)

type Company struct {
	Document brtypes.CNPJ    `json:"document" xml:"document" yaml:"document" msgpack:"document" bson:"document"`
	Owner    brtypes.CPF     `json:"owner" xml:"owner" yaml:"owner" msgpack:"owner" bson:"owner"`
	Phone    brtypes.Phone   `json:"phone" xml:"phone" yaml:"phone" msgpack:"phone" bson:"phone"`
	ZipCode  brtypes.ZipCode `json:"zip_code" xml:"zip_code" yaml:"zip_code" msgpack:"zip_code" bson:"zip_code"`
	State    brtypes.UF      `json:"state" xml:"state" yaml:"state" msgpack:"state" bson:"state"`
	Email    brtypes.Email   `json:"email" xml:"email" yaml:"email" msgpack:"email" bson:"email"`
	Contact  brtypes.Name    `json:"contact" xml:"contact" yaml:"contact" msgpack:"contact" bson:"contact"`
	Notes    brtypes.Text    `json:"notes" xml:"notes" yaml:"notes" msgpack:"notes" bson:"notes"`
}

func sampleCompany() Company {
	return Company{
		Document: brtypes.MustParseCNPJ("49.700.512/0001-50"),
		Owner:    brtypes.MustParseCPF("001.815.600-20"),
		Phone:    brtypes.MustParsePhone("(11) 91234-5678"),
		ZipCode:  brtypes.MustParseZipCode("01310-100"),
		State:    brtypes.MustParseUF("sp"),
		Email:    brtypes.MustParseEmail("Contato@Empresa.com.br"),
		Contact:  brtypes.MustParseName("Júlia  Souza"),
		Notes:    brtypes.MustParseText("  cliente desde 2019  "),
	}
}

func TestContentTypes(t *testing.T) {
	tests := []struct {
		codec brtypes.Codec
		want  string
	}{
		{codec.JSON(), "application/json"},
		{codec.XML(), "application/xml"},
		{codec.YAML(), "application/yaml"},
		{codec.MsgPack(), "application/msgpack"},
		{codec.BSON(), "application/bson"},
	}

	for _, tt := range tests {
		if got := tt.codec.ContentType(); got != tt.want {
			t.Errorf("ContentType() = %q, want %q", got, tt.want)
		}
	}
}

func TestForContentType(t *testing.T) {
	for _, c := range codec.All() {
		got, ok := codec.ForContentType(c.ContentType())
		if !ok {
			t.Errorf("ForContentType(%q) not found", c.ContentType())
			continue
		}
		if got.ContentType() != c.ContentType() {
			t.Errorf("ForContentType(%q).ContentType() = %q", c.ContentType(), got.ContentType())
		}
	}

	if _, ok := codec.ForContentType("text/csv"); ok {
		t.Error("ForContentType(text/csv) should not be found")
	}
}

func TestRoundTrip(t *testing.T) {
	original := sampleCompany()

	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			var restored Company
			if err := c.Unmarshal(data, &restored); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}

			if restored != original {
				t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
			}
		})
	}
}

func TestRoundTrip_ZeroValues(t *testing.T) {
	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(Company{})
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			var restored Company
			if err := c.Unmarshal(data, &restored); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}

			if restored != (Company{}) {
				t.Errorf("zero round-trip = %+v, want zero", restored)
			}
		})
	}
}

func TestJSON_CanonicalOnWire(t *testing.T) {
	data, err := codec.JSON().Marshal(struct {
		Owner brtypes.CPF `json:"owner"`
		State brtypes.UF  `json:"state"`
	}{
		Owner: brtypes.MustParseCPF("001.815.600-20"),
		State: brtypes.MustParseUF("rj"),
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"owner":"00181560020","state":"RJ"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestJSON_AcceptsMaskedInput(t *testing.T) {
	var v struct {
		Owner brtypes.CPF `json:"owner"`
	}
	if err := codec.JSON().Unmarshal([]byte(`{"owner":"001.815.600-20"}`), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if v.Owner.String() != "00181560020" {
		t.Errorf("Owner = %q, want %q", v.Owner.String(), "00181560020")
	}
}

func TestJSON_RejectsInvalid(t *testing.T) {
	var v struct {
		Owner brtypes.CPF `json:"owner"`
	}
	err := codec.JSON().Unmarshal([]byte(`{"owner":"111.111.111-11"}`), &v)
	if !errors.Is(err, brtypes.ErrInvalidValue) {
		t.Errorf("Unmarshal() error = %v, want ErrInvalidValue", err)
	}
}

func TestRejectsInvalid_AllCodecs(t *testing.T) {
	type loose struct {
		Document string `json:"document" xml:"document" yaml:"document" msgpack:"document" bson:"document"`
	}
	type strict struct {
		Document brtypes.CNPJ `json:"document" xml:"document" yaml:"document" msgpack:"document" bson:"document"`
	}

	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := c.Marshal(loose{Document: "49.700.512/0001-52"})
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			var v strict
			if err := c.Unmarshal(data, &v); err == nil {
				t.Errorf("Unmarshal() accepted invalid CNPJ: %+v", v)
			}
		})
	}
}

func TestUnmarshalInvalidPayload(t *testing.T) {
	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			var v Company
			if err := c.Unmarshal([]byte("\x00{not valid"), &v); err == nil {
				t.Error("Unmarshal(invalid) should return error")
			}
		})
	}
}
