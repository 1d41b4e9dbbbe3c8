// Package codec provides the wire formats understood by brtypes.Processor.
//
// Every value type in brtypes encodes as its canonical string in each of
// these formats and re-validates when decoded.
package codec

import (
	"encoding/json"
	"encoding/xml"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/brtypes"
)

// Content types.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeXML     = "application/xml"
	ContentTypeYAML    = "application/yaml"
	ContentTypeMsgPack = "application/msgpack"
	ContentTypeBSON    = "application/bson"
)

// funcCodec implements brtypes.Codec with a pair of functions.
type funcCodec struct {
	contentType string
	marshal     func(v any) ([]byte, error)
	unmarshal   func(data []byte, v any) error
}

func (c *funcCodec) ContentType() string                { return c.contentType }
func (c *funcCodec) Marshal(v any) ([]byte, error)      { return c.marshal(v) }
func (c *funcCodec) Unmarshal(data []byte, v any) error { return c.unmarshal(data, v) }

// JSON returns a JSON codec.
func JSON() brtypes.Codec {
	return &funcCodec{ContentTypeJSON, json.Marshal, json.Unmarshal}
}

// XML returns an XML codec.
func XML() brtypes.Codec {
	return &funcCodec{ContentTypeXML, xml.Marshal, xml.Unmarshal}
}

// YAML returns a YAML codec.
func YAML() brtypes.Codec {
	return &funcCodec{ContentTypeYAML, yaml.Marshal, yaml.Unmarshal}
}

// MsgPack returns a MessagePack codec.
func MsgPack() brtypes.Codec {
	return &funcCodec{ContentTypeMsgPack, msgpack.Marshal, msgpack.Unmarshal}
}

// BSON returns a BSON codec. Top-level values must be documents (structs or maps).
func BSON() brtypes.Codec {
	return &funcCodec{ContentTypeBSON, bson.Marshal, bson.Unmarshal}
}

var byContentType = map[string]func() brtypes.Codec{
	ContentTypeJSON:    JSON,
	ContentTypeXML:     XML,
	ContentTypeYAML:    YAML,
	ContentTypeMsgPack: MsgPack,
	ContentTypeBSON:    BSON,
}

// ForContentType returns the codec for a MIME type.
func ForContentType(contentType string) (brtypes.Codec, bool) {
	newCodec, ok := byContentType[contentType]
	if !ok {
		return nil, false
	}
	return newCodec(), true
}

// All returns one instance of every codec.
func All() []brtypes.Codec {
	return []brtypes.Codec{JSON(), XML(), YAML(), MsgPack(), BSON()}
}
