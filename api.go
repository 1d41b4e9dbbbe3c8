// Package brtypes provides validated value types for Brazilian identifiers
// and contact data, plus a Processor that validates and transforms tagged
// struct fields as they cross a boundary.
//
// # Value types
//
// Each type is an immutable value holding its canonical form:
//
//	CPF      11 digits, check digits verified       00181560020
//	CNPJ     14 digits, check digits verified       49700512000150
//	Phone    DDD + 8-digit landline or 9-digit mobile
//	ZipCode  8 digits                               01310100
//	UF       one of the 27 federative units         SP
//	Email    trimmed, lower-cased address
//	Name     letters and single spaces, NFC
//	Text     trimmed, non-empty
//
// Every type has TryParseX (reports ok), ParseX (returns *InvalidValueError)
// and MustParseX. Parsing is lenient about punctuation: "001.815.600-20",
// "001-815-600-20" and "00181560020" are the same CPF. The zero value of each
// type is never produced by a successful parse, and encodes as empty.
//
//	cpf, err := brtypes.ParseCPF("001.815.600-20")
//	cpf.String() // 00181560020
//	cpf.Mask()   // 001.815.600-20
//	cpf.Redact() // ***.815.600-**
//
// The types implement encoding.TextMarshaler, json, yaml.v3, msgpack, BSON
// and database/sql interfaces. Decoding re-validates, so a struct field of
// type CPF can only ever hold a valid CPF.
//
// # Validation adapter
//
// Validate and KindValidator report a Result with a fixed message and an
// error code (400 unless configured) for form and request validation.
//
//	res := brtypes.Validate(ctx, &raw, brtypes.KindPhone)
//	if !res.Valid {
//	    return res.ErrorCode, res.Message
//	}
//
// # Processor
//
// A Processor handles structs whose fields are plain strings. Field behavior
// is declared via struct tags:
//
//	brtype:"cpf"             - Validate and canonicalize on receive and load
//	brtype:"phone,omitempty" - Same, skipping empty values
//	load.decrypt:"aes"       - Decrypt on load
//	store.encrypt:"aes"      - Encrypt on store
//	send.mask:"cpf"          - Format for display on send
//	send.redact:"email"      - Redact by kind on send
//	send.redact:"***"        - Replace with a literal on send
//
// # Basic Usage
//
//	type Customer struct {
//	    ID    string `json:"id"`
//	    CPF   string `json:"cpf" brtype:"cpf" store.encrypt:"aes" load.decrypt:"aes" send.mask:"cpf"`
//	    Email string `json:"email" brtype:"email" send.redact:"email"`
//	}
//
//	func (c Customer) Clone() Customer { return c }
//
//	proc, _ := brtypes.NewProcessor[Customer](codec.JSON())
//	enc, _ := brtypes.AESKeyRing(map[byte][]byte{1: oldKey, 2: newKey}, 2)
//	proc.SetEncryptor(brtypes.EncryptAES, enc)
//	brtypes.Register(proc) // later: brtypes.Use[Customer](codec.JSON())
//
//	customer, err := proc.Receive(ctx, body) // ValidationErrors on bad fields
//	stored, _ := proc.Store(ctx, customer)    // CPF encrypted
//	out, _ := proc.Send(ctx, customer)        // CPF masked, email redacted
//
// Types can bypass reflection by implementing Normalizable, Encryptable,
// Decryptable, Maskable or Redactable.
//
// # Observability
//
// Validation outcomes and processor operations are emitted as capitan
// signals. Events carry kinds, field names, messages and counts, never the
// raw values.
package brtypes
