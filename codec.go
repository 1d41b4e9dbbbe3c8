package brtypes

// Codec provides content-type aware marshaling for Processor.
// Implementations for JSON, XML, YAML, MessagePack and BSON live in the codec package.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
