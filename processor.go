package brtypes

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

const (
	tagBrtype  = "brtype"
	tagDecrypt = "load.decrypt"
	tagEncrypt = "store.encrypt"
	tagMask    = "send.mask"
	tagRedact  = "send.redact"

	optOmitEmpty = "omitempty"
)

var processorTags = []string{tagBrtype, tagDecrypt, tagEncrypt, tagMask, tagRedact}

func init() {
	for _, tag := range processorTags {
		sentinel.Tag(tag)
	}
}

// Processor validates and transforms Brazilian values in tagged struct fields
// as they cross a boundary. Use Receive/Load for ingress and Store/Send for egress.
//
// Processors are safe for concurrent use. Configuration methods may be called
// at any time to update or rotate keys.
//
// Capability validation occurs automatically on first operation. Configure all
// required encryptors before the first call to Receive, Load, Store, or Send.
type Processor[T Cloner[T]] struct {
	codec Codec

	mu         sync.RWMutex
	encryptors map[EncryptAlgo]Encryptor
	maskers    map[Kind]Masker
	redactors  map[Kind]Masker
	errorCode  int

	validateOnce sync.Once
	validateErr  error

	plans    *typeFieldPlans
	typeName string
}

// typeFieldPlans holds the immutable per-type field plans.
type typeFieldPlans struct {
	typeName  string
	normalize []processorFieldPlan
	decrypt   []processorFieldPlan
	encrypt   []processorFieldPlan
	mask      []processorFieldPlan
	redact    []processorFieldPlan
}

// processorFieldPlan describes how to transform a single field.
type processorFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // dotted field name for errors and events
	tagVal     string // kind, algorithm or literal
	omitEmpty  bool   // brtype only: empty strings are skipped
	ptrIndices []int  // positions in index where a pointer is dereferenced
	isSlice    bool   // true if field is []string
}

var planCache sync.Map // reflect.Type -> *typeFieldPlans

// NewProcessor creates a new Processor for type T.
//
// The processor starts with the builtin maskers and redactors. Encryptors
// must be configured via SetEncryptor before using Store/Load on fields with
// encryption tags.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:      codec,
		encryptors: make(map[EncryptAlgo]Encryptor),
		maskers:    BuiltinMaskers(),
		redactors:  BuiltinRedactors(),
		errorCode:  DefaultErrorCode,
		plans:      plans,
		typeName:   plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetEncryptor registers an encryptor for the given algorithm.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetEncryptor(algo EncryptAlgo, enc Encryptor) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encryptors[algo] = enc
	return p
}

// SetMasker replaces the display masker for kind.
func (p *Processor[T]) SetMasker(kind Kind, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[kind] = m
	return p
}

// SetRedactor replaces the redactor for kind.
func (p *Processor[T]) SetRedactor(kind Kind, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.redactors[kind] = m
	return p
}

// SetErrorCode sets the error code attached to field failures.
func (p *Processor[T]) SetErrorCode(code int) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorCode = code
	return p
}

// Validate checks that all required capabilities are configured.
// Validation also runs automatically on first operation; calling it
// explicitly catches configuration errors at startup.
func (p *Processor[T]) Validate() error {
	return p.ensureValidated()
}

func (p *Processor[T]) ensureValidated() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateCapabilities()
	})
	return p.validateErr
}

func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typeFieldPlans), nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typeFieldPlans), nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		isString := field.ReflectType.Kind() == reflect.String
		isStringSlice := field.ReflectType.Kind() == reflect.Slice &&
			field.ReflectType.Elem().Kind() == reflect.String

		if !isString && !isStringSlice {
			for _, tag := range processorTags {
				if _, ok := field.Tags[tag]; ok {
					return &ConfigError{Err: ErrInvalidTag, Field: fullName, Capability: tag}
				}
			}
			continue
		}

		basePlan := processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
		}

		if val, ok := field.Tags[tagBrtype]; ok {
			kind, opts, _ := strings.Cut(val, ",")
			if !IsValidKind(Kind(kind)) || (opts != "" && opts != optOmitEmpty) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = kind
			plan.omitEmpty = opts == optOmitEmpty
			plans.normalize = append(plans.normalize, plan)
		}

		if val, ok := field.Tags[tagDecrypt]; ok {
			if !IsValidEncryptAlgo(EncryptAlgo(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.decrypt = append(plans.decrypt, plan)
		}

		if val, ok := field.Tags[tagEncrypt]; ok {
			if !IsValidEncryptAlgo(EncryptAlgo(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.encrypt = append(plans.encrypt, plan)
		}

		if val, ok := field.Tags[tagMask]; ok {
			if !IsValidKind(Kind(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.mask = append(plans.mask, plan)
		}

		// Redact values are either a kind or a literal replacement.
		if val, ok := field.Tags[tagRedact]; ok {
			plan := basePlan
			plan.tagVal = val
			plans.redact = append(plans.redact, plan)
		}
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseProcessorTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

func parseProcessorTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range processorTags {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// validateCapabilities ensures all required capabilities are registered.
// Plans covered by an override interface are skipped.
func (p *Processor[T]) validateCapabilities() error {
	var zero T
	_, hasDecryptable := any(&zero).(Decryptable)
	_, hasEncryptable := any(&zero).(Encryptable)
	_, hasMaskable := any(&zero).(Maskable)
	_, hasRedactable := any(&zero).(Redactable)

	if !hasDecryptable {
		for _, plan := range p.plans.decrypt {
			if _, ok := p.encryptors[EncryptAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingEncryptor, plan.tagVal, plan.name)
			}
		}
	}

	if !hasEncryptable {
		for _, plan := range p.plans.encrypt {
			if _, ok := p.encryptors[EncryptAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingEncryptor, plan.tagVal, plan.name)
			}
		}
	}

	if !hasMaskable {
		for _, plan := range p.plans.mask {
			if _, ok := p.maskers[Kind(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingMasker, plan.tagVal, plan.name)
			}
		}
	}

	if !hasRedactable {
		for _, plan := range p.plans.redact {
			if !IsValidKind(Kind(plan.tagVal)) {
				continue
			}
			if _, ok := p.redactors[Kind(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingMasker, plan.tagVal, plan.name)
			}
		}
	}

	return nil
}

// Receive unmarshals data and validates every brtype field, rewriting valid
// values to their canonical form. Use for data coming from external sources
// (API requests, events). Field failures are returned together as ValidationErrors.
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitReceiveStart(ctx, p.codec.ContentType(), p.typeName)

	var invalid int
	var retErr error
	defer func() {
		emitReceiveComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.plans.normalize), invalid, retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if n, err := p.normalizeObject(ctx, &obj); err != nil {
		invalid = n
		retErr = fmt.Errorf("validate: %w", err)
		return nil, retErr
	}

	return &obj, nil
}

// Load unmarshals data, applies decrypt actions and then validates brtype
// fields. Use for data coming from storage (database, cache).
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitLoadStart(ctx, p.codec.ContentType(), p.typeName)

	var invalid int
	var retErr error
	defer func() {
		emitLoadComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.plans.decrypt), invalid, retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if d, ok := any(&obj).(Decryptable); ok {
		if err := d.Decrypt(p.encryptors); err != nil {
			retErr = fmt.Errorf("decrypt: %w", err)
			return nil, retErr
		}
	} else if err := p.applyDecrypt(&obj); err != nil {
		retErr = fmt.Errorf("decrypt: %w", err)
		return nil, retErr
	}

	if n, err := p.normalizeObject(ctx, &obj); err != nil {
		invalid = n
		retErr = fmt.Errorf("validate: %w", err)
		return nil, retErr
	}

	return &obj, nil
}

// Store applies store context actions (encrypt) and marshals the result.
// Use for data going to storage (database, cache).
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.plans.encrypt), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if e, ok := any(&clone).(Encryptable); ok {
		if err := e.Encrypt(p.encryptors); err != nil {
			retErr = fmt.Errorf("encrypt: %w", err)
			return nil, retErr
		}
	} else if err := p.applyEncrypt(&clone); err != nil {
		retErr = fmt.Errorf("encrypt: %w", err)
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Send applies send context actions (mask, redact) and marshals the result.
// Use for data going to external destinations (API responses, events).
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitSendStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start),
			len(p.plans.mask), len(p.plans.redact), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if m, ok := any(&clone).(Maskable); ok {
		if err := m.Mask(p.maskers); err != nil {
			retErr = fmt.Errorf("mask: %w", err)
			return nil, retErr
		}
	} else {
		p.applyMask(&clone)
	}

	if r, ok := any(&clone).(Redactable); ok {
		if err := r.Redact(p.redactors); err != nil {
			retErr = fmt.Errorf("redact: %w", err)
			return nil, retErr
		}
	} else {
		p.applyRedact(&clone)
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Normalize validates the brtype fields of obj in place, rewriting valid
// values to their canonical form. obj is left unchanged when any field fails.
func (p *Processor[T]) Normalize(ctx context.Context, obj *T) error {
	if obj == nil {
		return nil
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	_, err := p.normalizeObject(ctx, &clone)
	p.mu.RUnlock()

	if err != nil {
		return err
	}

	*obj = clone
	return nil
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// normalizeObject validates obj through its Normalizable override when
// present, otherwise through the brtype plans. It returns the failure count.
func (p *Processor[T]) normalizeObject(ctx context.Context, obj *T) (int, error) {
	if n, ok := any(obj).(Normalizable); ok {
		if err := n.Normalize(); err != nil {
			var errs ValidationErrors
			if errors.As(err, &errs) {
				return len(errs), err
			}
			return 1, err
		}
		return 0, nil
	}

	if errs := p.normalize(ctx, obj); len(errs) > 0 {
		return len(errs), errs
	}
	return 0, nil
}

// normalize runs every brtype plan and collects the failures.
func (p *Processor[T]) normalize(ctx context.Context, obj *T) ValidationErrors {
	rv := reflect.ValueOf(obj).Elem()

	var errs ValidationErrors
	for _, plan := range p.plans.normalize {
		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				name := fmt.Sprintf("%s[%d]", plan.name, i)
				if fe, failed := p.normalizeValue(ctx, field.Index(i), plan, name); failed {
					errs = append(errs, fe)
				}
			}
			continue
		}

		if fe, failed := p.normalizeValue(ctx, field, plan, plan.name); failed {
			errs = append(errs, fe)
		}
	}

	return errs
}

func (p *Processor[T]) normalizeValue(ctx context.Context, field reflect.Value, plan processorFieldPlan, name string) (FieldError, bool) {
	kind := Kind(plan.tagVal)
	raw := field.String()
	if raw == "" && plan.omitEmpty {
		return FieldError{}, false
	}

	v, ok := TryParse(kind, raw)
	if ok {
		emitValidation(ctx, kind, name, Result{Valid: true})
		if field.CanSet() {
			field.SetString(v.String())
		}
		return FieldError{}, false
	}

	res := Result{Message: ErrorMessage(kind), ErrorCode: p.errorCode}
	emitValidation(ctx, kind, name, res)
	return FieldError{
		Field:     name,
		Kind:      kind,
		Message:   res.Message,
		Value:     raw,
		ErrorCode: res.ErrorCode,
	}, true
}

func (p *Processor[T]) applyDecrypt(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.plans.decrypt {
		enc := p.encryptors[EncryptAlgo(plan.tagVal)]

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		err := eachString(field, plan, func(name, value string) (string, error) {
			if value == "" {
				return "", nil
			}
			ciphertext, err := base64.StdEncoding.DecodeString(value)
			if err != nil {
				return "", newTransformError(ErrDecrypt, "base64 decode", name, err)
			}
			plaintext, err := enc.Decrypt(ciphertext)
			if err != nil {
				return "", newTransformError(ErrDecrypt, "decrypt", name, err)
			}
			return string(plaintext), nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Processor[T]) applyEncrypt(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.plans.encrypt {
		enc := p.encryptors[EncryptAlgo(plan.tagVal)]

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		err := eachString(field, plan, func(name, value string) (string, error) {
			if value == "" {
				return "", nil
			}
			ciphertext, err := enc.Encrypt([]byte(value))
			if err != nil {
				return "", newTransformError(ErrEncrypt, "encrypt", name, err)
			}
			return base64.StdEncoding.EncodeToString(ciphertext), nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Processor[T]) applyMask(obj *T) {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.plans.mask {
		masker := p.maskers[Kind(plan.tagVal)]

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		_ = eachString(field, plan, func(_, value string) (string, error) {
			return masker.Mask(value), nil
		})
	}
}

func (p *Processor[T]) applyRedact(obj *T) {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.plans.redact {
		redactor, byKind := p.redactors[Kind(plan.tagVal)]

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		_ = eachString(field, plan, func(_, value string) (string, error) {
			if byKind {
				return redactor.Mask(value), nil
			}
			return plan.tagVal, nil
		})
	}
}

// eachString rewrites a string field, or every element of a []string field, with fn.
func eachString(field reflect.Value, plan processorFieldPlan, fn func(name, value string) (string, error)) error {
	if plan.isSlice {
		for i := 0; i < field.Len(); i++ {
			elem := field.Index(i)
			if !elem.CanSet() {
				continue
			}
			out, err := fn(fmt.Sprintf("%s[%d]", plan.name, i), elem.String())
			if err != nil {
				return err
			}
			elem.SetString(out)
		}
		return nil
	}

	if !field.CanSet() {
		return nil
	}
	out, err := fn(plan.name, field.String())
	if err != nil {
		return err
	}
	field.SetString(out)
	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
// It reports false when a pointer on the path is nil.
func getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
