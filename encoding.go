package brtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Every type encodes as its canonical string. Decoding re-validates through
// the type's parser; empty input and null decode to the zero value.

func decodeString[T Value](p Parser[T], dst *T, raw string) error {
	if raw == "" {
		var zero T
		*dst = zero
		return nil
	}
	v, err := Parse(p, raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// decodeJSON exists because encoding/json rejects null for a non-pointer
// TextUnmarshaler.
func decodeJSON[T Value](p Parser[T], dst *T, data []byte) error {
	if string(data) == "null" {
		return decodeString(p, dst, "")
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return decodeString(p, dst, s)
}

func decodeYAML[T Value](p Parser[T], dst *T, node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return decodeString(p, dst, s)
}

func decodeMsgpack[T Value](p Parser[T], dst *T, dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return decodeString(p, dst, s)
}

func decodeBSON[T Value](p Parser[T], dst *T, typ bsontype.Type, data []byte) error {
	if typ == bson.TypeNull || typ == bson.TypeUndefined {
		return decodeString(p, dst, "")
	}
	s, ok := bson.RawValue{Type: typ, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("cannot decode BSON %s into %s", typ, p.Kind())
	}
	return decodeString(p, dst, s)
}

func decodeSQL[T Value](p Parser[T], dst *T, src any) error {
	switch v := src.(type) {
	case nil:
		return decodeString(p, dst, "")
	case string:
		return decodeString(p, dst, v)
	case []byte:
		return decodeString(p, dst, string(v))
	default:
		return fmt.Errorf("cannot scan %T into %s", src, p.Kind())
	}
}

func sqlValue(v Value) (driver.Value, error) {
	if v.IsZero() {
		return nil, nil
	}
	return v.String(), nil
}

func encodeMsgpack(enc *msgpack.Encoder, v Value) error {
	if v.IsZero() {
		return enc.EncodeNil()
	}
	return enc.EncodeString(v.String())
}

// CPF

func (c CPF) MarshalText() ([]byte, error) { return []byte(c.value), nil }

func (c *CPF) UnmarshalText(text []byte) error { return decodeString(CPFParser, c, string(text)) }

func (c *CPF) UnmarshalJSON(data []byte) error { return decodeJSON(CPFParser, c, data) }

func (c CPF) MarshalYAML() (any, error) { return c.value, nil }

func (c *CPF) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(CPFParser, c, node) }

func (c CPF) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, c) }

func (c *CPF) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(CPFParser, c, dec) }

func (c CPF) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(c.value) }

func (c *CPF) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(CPFParser, c, typ, data)
}

func (c CPF) Value() (driver.Value, error) { return sqlValue(c) }

func (c *CPF) Scan(src any) error { return decodeSQL(CPFParser, c, src) }

// CNPJ

func (c CNPJ) MarshalText() ([]byte, error) { return []byte(c.value), nil }

func (c *CNPJ) UnmarshalText(text []byte) error { return decodeString(CNPJParser, c, string(text)) }

func (c *CNPJ) UnmarshalJSON(data []byte) error { return decodeJSON(CNPJParser, c, data) }

func (c CNPJ) MarshalYAML() (any, error) { return c.value, nil }

func (c *CNPJ) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(CNPJParser, c, node) }

func (c CNPJ) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, c) }

func (c *CNPJ) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(CNPJParser, c, dec) }

func (c CNPJ) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(c.value) }

func (c *CNPJ) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(CNPJParser, c, typ, data)
}

func (c CNPJ) Value() (driver.Value, error) { return sqlValue(c) }

func (c *CNPJ) Scan(src any) error { return decodeSQL(CNPJParser, c, src) }

// Phone

func (p Phone) MarshalText() ([]byte, error) { return []byte(p.value), nil }

func (p *Phone) UnmarshalText(text []byte) error { return decodeString(PhoneParser, p, string(text)) }

func (p *Phone) UnmarshalJSON(data []byte) error { return decodeJSON(PhoneParser, p, data) }

func (p Phone) MarshalYAML() (any, error) { return p.value, nil }

func (p *Phone) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(PhoneParser, p, node) }

func (p Phone) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, p) }

func (p *Phone) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(PhoneParser, p, dec) }

func (p Phone) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(p.value) }

func (p *Phone) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(PhoneParser, p, typ, data)
}

func (p Phone) Value() (driver.Value, error) { return sqlValue(p) }

func (p *Phone) Scan(src any) error { return decodeSQL(PhoneParser, p, src) }

// ZipCode

func (z ZipCode) MarshalText() ([]byte, error) { return []byte(z.value), nil }

func (z *ZipCode) UnmarshalText(text []byte) error { return decodeString(ZipCodeParser, z, string(text)) }

func (z *ZipCode) UnmarshalJSON(data []byte) error { return decodeJSON(ZipCodeParser, z, data) }

func (z ZipCode) MarshalYAML() (any, error) { return z.value, nil }

func (z *ZipCode) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(ZipCodeParser, z, node) }

func (z ZipCode) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, z) }

func (z *ZipCode) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(ZipCodeParser, z, dec) }

func (z ZipCode) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(z.value) }

func (z *ZipCode) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(ZipCodeParser, z, typ, data)
}

func (z ZipCode) Value() (driver.Value, error) { return sqlValue(z) }

func (z *ZipCode) Scan(src any) error { return decodeSQL(ZipCodeParser, z, src) }

// UF

func (u UF) MarshalText() ([]byte, error) { return []byte(u.value), nil }

func (u *UF) UnmarshalText(text []byte) error { return decodeString(UFParser, u, string(text)) }

func (u *UF) UnmarshalJSON(data []byte) error { return decodeJSON(UFParser, u, data) }

func (u UF) MarshalYAML() (any, error) { return u.value, nil }

func (u *UF) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(UFParser, u, node) }

func (u UF) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, u) }

func (u *UF) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(UFParser, u, dec) }

func (u UF) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(u.value) }

func (u *UF) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(UFParser, u, typ, data)
}

func (u UF) Value() (driver.Value, error) { return sqlValue(u) }

func (u *UF) Scan(src any) error { return decodeSQL(UFParser, u, src) }

// Email

func (e Email) MarshalText() ([]byte, error) { return []byte(e.value), nil }

func (e *Email) UnmarshalText(text []byte) error { return decodeString(EmailParser, e, string(text)) }

func (e *Email) UnmarshalJSON(data []byte) error { return decodeJSON(EmailParser, e, data) }

func (e Email) MarshalYAML() (any, error) { return e.value, nil }

func (e *Email) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(EmailParser, e, node) }

func (e Email) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, e) }

func (e *Email) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(EmailParser, e, dec) }

func (e Email) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(e.value) }

func (e *Email) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(EmailParser, e, typ, data)
}

func (e Email) Value() (driver.Value, error) { return sqlValue(e) }

func (e *Email) Scan(src any) error { return decodeSQL(EmailParser, e, src) }

// Name

func (n Name) MarshalText() ([]byte, error) { return []byte(n.value), nil }

func (n *Name) UnmarshalText(text []byte) error { return decodeString(NameParser, n, string(text)) }

func (n *Name) UnmarshalJSON(data []byte) error { return decodeJSON(NameParser, n, data) }

func (n Name) MarshalYAML() (any, error) { return n.value, nil }

func (n *Name) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(NameParser, n, node) }

func (n Name) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, n) }

func (n *Name) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(NameParser, n, dec) }

func (n Name) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(n.value) }

func (n *Name) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(NameParser, n, typ, data)
}

func (n Name) Value() (driver.Value, error) { return sqlValue(n) }

func (n *Name) Scan(src any) error { return decodeSQL(NameParser, n, src) }

// Text

func (t Text) MarshalText() ([]byte, error) { return []byte(t.value), nil }

func (t *Text) UnmarshalText(text []byte) error { return decodeString(TextParser, t, string(text)) }

func (t *Text) UnmarshalJSON(data []byte) error { return decodeJSON(TextParser, t, data) }

func (t Text) MarshalYAML() (any, error) { return t.value, nil }

func (t *Text) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(TextParser, t, node) }

func (t Text) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpack(enc, t) }

func (t *Text) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(TextParser, t, dec) }

func (t Text) MarshalBSONValue() (bsontype.Type, []byte, error) { return bson.MarshalValue(t.value) }

func (t *Text) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return decodeBSON(TextParser, t, typ, data)
}

func (t Text) Value() (driver.Value, error) { return sqlValue(t) }

func (t *Text) Scan(src any) error { return decodeSQL(TextParser, t, src) }
