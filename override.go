package brtypes

// Override interfaces allow types to bypass reflection-based processing.
// When a type implements one of these interfaces, the Processor calls the
// interface method instead of walking tagged fields.

// Normalizable bypasses reflection for brtype validation on Receive and Load.
type Normalizable interface {
	// Normalize validates the receiver's fields and rewrites them to their
	// canonical form. Return ValidationErrors to report per-field failures.
	Normalize() error
}

// Encryptable bypasses reflection for store.encrypt actions.
type Encryptable interface {
	// Encrypt transforms the receiver's fields that require encryption.
	// The receiver is a clone, so mutations are safe.
	Encrypt(encryptors map[EncryptAlgo]Encryptor) error
}

// Decryptable bypasses reflection for load.decrypt actions.
type Decryptable interface {
	// Decrypt transforms the receiver's fields that require decryption.
	// Called on freshly unmarshaled data.
	Decrypt(encryptors map[EncryptAlgo]Encryptor) error
}

// Maskable bypasses reflection for send.mask actions.
type Maskable interface {
	// Mask formats the receiver's fields using the display maskers keyed by kind.
	// The receiver is a clone, so mutations are safe.
	Mask(maskers map[Kind]Masker) error
}

// Redactable bypasses reflection for send.redact actions.
type Redactable interface {
	// Redact hides the receiver's sensitive fields using the redactors keyed by kind.
	// The receiver is a clone, so mutations are safe.
	Redact(redactors map[Kind]Masker) error
}
