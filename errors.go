package brtypes

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidValue indicates raw input failed a type's validation rules.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownKind indicates a kind that is not one of the supported types.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrInvalidBody indicates a check-digit body of the wrong length or with non-digits.
	ErrInvalidBody = errors.New("invalid check-digit body")

	// ErrEmptyValue indicates an operation was given the zero value of a type.
	ErrEmptyValue = errors.New("empty value")

	// ErrMissingEncryptor indicates a required encryptor was not registered.
	ErrMissingEncryptor = errors.New("missing encryptor")

	// ErrMissingMasker indicates a required masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrEncrypt indicates encryption of a field failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates decryption of a field failed.
	ErrDecrypt = errors.New("decrypt failed")
)

// InvalidValueError reports raw input rejected by a type's parser.
type InvalidValueError struct {
	Kind    Kind   // Type that rejected the input
	Message string // Fixed message for the type
	Value   string // Raw input as received
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

func newInvalidValueError(kind Kind, raw string) error {
	return &InvalidValueError{
		Kind:    kind,
		Message: ErrorMessage(kind),
		Value:   raw,
	}
}

// FieldError is a validation failure attached to a struct field.
type FieldError struct {
	Field     string
	Kind      Kind
	Message   string
	Value     string
	ErrorCode int
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field failures from a single pass over a struct.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve))
	for i, fe := range ve {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes ValidationErrors match ErrInvalidValue.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrInvalidValue
}

// Has reports whether field has at least one failure.
func (ve ValidationErrors) Has(field string) bool {
	for _, fe := range ve {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns the failures recorded for field.
func (ve ValidationErrors) Get(field string) []FieldError {
	var out []FieldError
	for _, fe := range ve {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// Fields returns the distinct field names with failures, in order of first occurrence.
func (ve ValidationErrors) Fields() []string {
	seen := make(map[string]bool, len(ve))
	var out []string
	for _, fe := range ve {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			out = append(out, fe.Field)
		}
	}
	return out
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and capability.
type ConfigError struct {
	Err        error  // Underlying sentinel error (ErrMissingEncryptor, etc.)
	Field      string // Field name that triggered the error
	Capability string // Algorithm or kind that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Capability != "" {
		return fmt.Sprintf("%s for %q (field %s)", e.Err.Error(), e.Capability, e.Field)
	}
	if e.Capability != "" {
		return fmt.Sprintf("%s for %q", e.Err.Error(), e.Capability)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents an error during field transformation.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrEncrypt, ErrDecrypt)
	Field     string // Field name that failed
	Operation string // Operation that failed
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the sentinel and the codec's own error, so a value
// type rejected during decoding still matches ErrInvalidValue.
func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newConfigError(sentinel error, capability, field string) error {
	return &ConfigError{
		Err:        sentinel,
		Capability: capability,
		Field:      field,
	}
}

func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
