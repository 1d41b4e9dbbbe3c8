package brtypes

// Kind identifies one of the Brazilian value types.
// Use these constants in struct tags: `brtype:"cpf"`
type Kind string

const (
	// KindCPF is the individual taxpayer registry number (Cadastro de Pessoas Físicas).
	KindCPF Kind = "cpf"

	// KindCNPJ is the legal-entity registry number (Cadastro Nacional da Pessoa Jurídica).
	KindCNPJ Kind = "cnpj"

	// KindPhone is a landline or mobile number with area code.
	KindPhone Kind = "phone"

	// KindZipCode is a postal code (CEP).
	KindZipCode Kind = "zipcode"

	// KindUF is a federative-unit abbreviation.
	KindUF Kind = "uf"

	// KindEmail is an email address.
	KindEmail Kind = "email"

	// KindName is a person's name.
	KindName Kind = "name"

	// KindText is a non-empty free text.
	KindText Kind = "text"
)

// EncryptAlgo represents a supported encryption algorithm.
// Use these constants in struct tags: `store.encrypt:"aes"`
type EncryptAlgo string

const (
	// EncryptAES uses AES-GCM symmetric encryption.
	EncryptAES EncryptAlgo = "aes"
)

// HashAlgo represents a supported fingerprint algorithm.
type HashAlgo string

const (
	HashSHA256  HashAlgo = "sha256"
	HashSHA512  HashAlgo = "sha512"
	HashBlake2b HashAlgo = "blake2b"
)

var kinds = []Kind{
	KindCPF,
	KindCNPJ,
	KindPhone,
	KindZipCode,
	KindUF,
	KindEmail,
	KindName,
	KindText,
}

// errorMessages holds the fixed message reported for each kind.
var errorMessages = map[Kind]string{
	KindCPF:     "invalid CPF",
	KindCNPJ:    "invalid CNPJ",
	KindPhone:   "invalid phone number",
	KindZipCode: "invalid zip code",
	KindUF:      "invalid UF",
	KindEmail:   "invalid email address",
	KindName:    "name must have only letters and cannot be empty",
	KindText:    "text cannot be empty",
}

var validEncryptAlgos = map[EncryptAlgo]bool{
	EncryptAES: true,
}

var validHashAlgos = map[HashAlgo]bool{
	HashSHA256:  true,
	HashSHA512:  true,
	HashBlake2b: true,
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// IsValidKind reports whether k is a supported kind.
func IsValidKind(k Kind) bool {
	_, ok := errorMessages[k]
	return ok
}

// ErrorMessage returns the fixed validation message for k,
// or an empty string when k is unknown.
func ErrorMessage(k Kind) string {
	return errorMessages[k]
}

// IsValidEncryptAlgo reports whether algo is a supported encryption algorithm.
func IsValidEncryptAlgo(algo EncryptAlgo) bool {
	return validEncryptAlgos[algo]
}

// IsValidHashAlgo reports whether algo is a supported hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}
