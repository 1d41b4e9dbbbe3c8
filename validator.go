package brtypes

import (
	"context"
	"fmt"
)

// DefaultErrorCode is the error code reported for rejected input unless configured otherwise.
const DefaultErrorCode = 400

// Result is the outcome of validating one field value.
// Message and ErrorCode are empty when Valid is true.
type Result struct {
	Valid     bool
	Message   string
	ErrorCode int
}

// FieldValidator validates an optional raw field value. A nil raw is absent
// input and is always invalid.
type FieldValidator interface {
	Validate(ctx context.Context, raw *string) Result
}

// ValidatorOption configures a KindValidator.
type ValidatorOption func(*KindValidator)

// WithErrorCode sets the error code reported for rejected input.
func WithErrorCode(code int) ValidatorOption {
	return func(v *KindValidator) {
		v.errorCode = code
	}
}

// WithField names the field in emitted validation events.
func WithField(name string) ValidatorOption {
	return func(v *KindValidator) {
		v.field = name
	}
}

// KindValidator adapts one kind's TryParse to the FieldValidator contract.
type KindValidator struct {
	kind      Kind
	field     string
	errorCode int
}

var _ FieldValidator = (*KindValidator)(nil)

// NewValidator returns a validator for kind.
func NewValidator(kind Kind, opts ...ValidatorOption) (*KindValidator, error) {
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	v := &KindValidator{kind: kind, errorCode: DefaultErrorCode}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Kind returns the kind this validator checks.
func (v *KindValidator) Kind() Kind { return v.kind }

// ErrorCode returns the code reported for rejected input.
func (v *KindValidator) ErrorCode() int { return v.errorCode }

// Validate checks raw against the validator's kind.
func (v *KindValidator) Validate(ctx context.Context, raw *string) Result {
	var res Result
	if raw == nil {
		res = v.invalid()
	} else if _, ok := TryParse(v.kind, *raw); !ok {
		res = v.invalid()
	} else {
		res = Result{Valid: true}
	}
	emitValidation(ctx, v.kind, v.field, res)
	return res
}

// ValidateAny checks a loosely typed value. nil, typed nil pointers and
// values that are neither strings nor fmt.Stringers are treated as absent.
func (v *KindValidator) ValidateAny(ctx context.Context, raw any) Result {
	s, ok := stringOf(raw)
	if !ok {
		return v.Validate(ctx, nil)
	}
	return v.Validate(ctx, &s)
}

func (v *KindValidator) invalid() Result {
	return Result{
		Message:   ErrorMessage(v.kind),
		ErrorCode: v.errorCode,
	}
}

// Validate checks raw against kind with the default error code.
// Unknown kinds are reported as invalid.
func Validate(ctx context.Context, raw *string, kind Kind) Result {
	v, err := NewValidator(kind)
	if err != nil {
		return Result{Message: err.Error(), ErrorCode: DefaultErrorCode}
	}
	return v.Validate(ctx, raw)
}

func stringOf(raw any) (string, bool) {
	if isNil(raw) {
		return "", false
	}
	switch s := raw.(type) {
	case string:
		return s, true
	case *string:
		return *s, true
	case []byte:
		return string(s), true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}
