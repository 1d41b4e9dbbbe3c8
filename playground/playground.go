// Package playground registers the brtypes kinds as go-playground/validator tags.
//
//	v, _ := playground.New()
//	type Signup struct {
//	    CPF   string        `validate:"required,cpf"`
//	    Phone brtypes.Phone `validate:"omitempty,phone"`
//	}
//	err := v.Struct(signup)
//	fields := playground.Errors(err)
package playground

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zoobzio/brtypes"
)

// Validation tags. Email and name are prefixed because validator already
// ships a generic "email" check.
const (
	TagCPF     = "cpf"
	TagCNPJ    = "cnpj"
	TagPhone   = "phone"
	TagZipCode = "zipcode"
	TagUF      = "uf"
	TagEmail   = "br_email"
	TagName    = "br_name"
	TagText    = "text"
)

var tagKinds = map[string]brtypes.Kind{
	TagCPF:     brtypes.KindCPF,
	TagCNPJ:    brtypes.KindCNPJ,
	TagPhone:   brtypes.KindPhone,
	TagZipCode: brtypes.KindZipCode,
	TagUF:      brtypes.KindUF,
	TagEmail:   brtypes.KindEmail,
	TagName:    brtypes.KindName,
	TagText:    brtypes.KindText,
}

// New returns a validator with every tag registered.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Register adds the brtypes tags to v. Fields holding brtypes value types are
// validated through their canonical string, so a zero value counts as empty
// for required and omitempty.
func Register(v *validator.Validate) error {
	for tag, kind := range tagKinds {
		kv, err := brtypes.NewValidator(kind)
		if err != nil {
			return err
		}
		fn := func(ctx context.Context, fl validator.FieldLevel) bool {
			return kv.ValidateAny(ctx, fl.Field().Interface()).Valid
		}
		if err := v.RegisterValidationCtx(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}

	v.RegisterCustomTypeFunc(canonical,
		brtypes.CPF{}, brtypes.CNPJ{}, brtypes.Phone{}, brtypes.ZipCode{},
		brtypes.UF{}, brtypes.Email{}, brtypes.Name{}, brtypes.Text{},
	)
	return nil
}

func canonical(field reflect.Value) any {
	if v, ok := field.Interface().(brtypes.Value); ok {
		return v.String()
	}
	return nil
}

// Kind returns the kind checked by tag.
func Kind(tag string) (brtypes.Kind, bool) {
	k, ok := tagKinds[tag]
	return k, ok
}

// Message returns the brtypes message for failures on a brtypes tag and the
// validator's own text otherwise.
func Message(fe validator.FieldError) string {
	if kind, ok := tagKinds[fe.Tag()]; ok {
		return brtypes.ErrorMessage(kind)
	}
	return fe.Error()
}

// Errors converts validator failures into brtypes.ValidationErrors. Field
// names drop the top-level struct name, matching the processor's naming.
// It returns nil when err holds no validator failures.
func Errors(err error) brtypes.ValidationErrors {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}

	out := make(brtypes.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		kind := tagKinds[fe.Tag()]
		out = append(out, brtypes.FieldError{
			Field:     fieldName(fe.StructNamespace()),
			Kind:      kind,
			Message:   Message(fe),
			Value:     fmt.Sprint(fe.Value()),
			ErrorCode: brtypes.DefaultErrorCode,
		})
	}
	return out
}

func fieldName(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
