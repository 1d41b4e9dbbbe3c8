package brtypes

import (
	"fmt"
	"reflect"
)

// Value is implemented by every type in this package.
// A Value is either the zero value or holds a canonical form that passed validation.
type Value interface {
	fmt.Stringer
	Kind() Kind
	IsZero() bool
}

// Masked is a Value with a punctuated display form.
type Masked interface {
	Value
	Mask() string
}

// Redacted is a Value with a display form that hides identifying parts.
type Redacted interface {
	Value
	Redact() string
}

// Parser turns raw input into a T.
type Parser[T Value] interface {
	// TryParse reports whether raw is valid for T and returns its canonical value.
	TryParse(raw string) (T, bool)

	// ErrorMessage returns the fixed message used when raw is rejected.
	ErrorMessage() string

	// Kind identifies T.
	Kind() Kind
}

type parserFunc[T Value] struct {
	kind Kind
	try  func(string) (T, bool)
}

func (p parserFunc[T]) TryParse(raw string) (T, bool) { return p.try(raw) }
func (p parserFunc[T]) ErrorMessage() string          { return ErrorMessage(p.kind) }
func (p parserFunc[T]) Kind() Kind                    { return p.kind }

// Parsers for each type.
var (
	CPFParser     Parser[CPF]     = parserFunc[CPF]{KindCPF, TryParseCPF}
	CNPJParser    Parser[CNPJ]    = parserFunc[CNPJ]{KindCNPJ, TryParseCNPJ}
	PhoneParser   Parser[Phone]   = parserFunc[Phone]{KindPhone, TryParsePhone}
	ZipCodeParser Parser[ZipCode] = parserFunc[ZipCode]{KindZipCode, TryParseZipCode}
	UFParser      Parser[UF]      = parserFunc[UF]{KindUF, TryParseUF}
	EmailParser   Parser[Email]   = parserFunc[Email]{KindEmail, TryParseEmail}
	NameParser    Parser[Name]    = parserFunc[Name]{KindName, TryParseName}
	TextParser    Parser[Text]    = parserFunc[Text]{KindText, TryParseText}
)

// Parse runs p over raw and returns an *InvalidValueError on rejection.
func Parse[T Value](p Parser[T], raw string) (T, error) {
	v, ok := p.TryParse(raw)
	if !ok {
		var zero T
		return zero, newInvalidValueError(p.Kind(), raw)
	}
	return v, nil
}

// MustParse is like Parse but panics on rejection.
// Use it for literals and fixtures only.
func MustParse[T Value](p Parser[T], raw string) T {
	v, err := Parse(p, raw)
	if err != nil {
		panic(err)
	}
	return v
}

// isNil reports whether v is nil or a nil pointer held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

type anyParser func(string) (Value, bool)

func erase[T Value](p Parser[T]) anyParser {
	return func(raw string) (Value, bool) {
		v, ok := p.TryParse(raw)
		if !ok {
			return nil, false
		}
		return v, true
	}
}

var parsersByKind = map[Kind]anyParser{
	KindCPF:     erase(CPFParser),
	KindCNPJ:    erase(CNPJParser),
	KindPhone:   erase(PhoneParser),
	KindZipCode: erase(ZipCodeParser),
	KindUF:      erase(UFParser),
	KindEmail:   erase(EmailParser),
	KindName:    erase(NameParser),
	KindText:    erase(TextParser),
}

// TryParse dispatches raw to the parser for kind.
// Unknown kinds report false.
func TryParse(kind Kind, raw string) (Value, bool) {
	p, ok := parsersByKind[kind]
	if !ok {
		return nil, false
	}
	return p(raw)
}

// ParseKind dispatches raw to the parser for kind.
// Unknown kinds fail with ErrUnknownKind.
func ParseKind(kind Kind, raw string) (Value, error) {
	p, ok := parsersByKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	v, ok := p(raw)
	if !ok {
		return nil, newInvalidValueError(kind, raw)
	}
	return v, nil
}
