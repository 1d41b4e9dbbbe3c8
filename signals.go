package brtypes

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for validation and processor events.
var (
	SignalValidationPassed = capitan.NewSignal("brtypes.validation.passed", "Field value accepted")
	SignalValidationFailed = capitan.NewSignal("brtypes.validation.failed", "Field value rejected")
	SignalProcessorCreated = capitan.NewSignal("brtypes.processor.created", "Processor instantiated")
	SignalReceiveStart     = capitan.NewSignal("brtypes.receive.start", "Receive operation beginning")
	SignalReceiveComplete  = capitan.NewSignal("brtypes.receive.complete", "Receive operation finished")
	SignalLoadStart        = capitan.NewSignal("brtypes.load.start", "Load operation beginning")
	SignalLoadComplete     = capitan.NewSignal("brtypes.load.complete", "Load operation finished")
	SignalStoreStart       = capitan.NewSignal("brtypes.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("brtypes.store.complete", "Store operation finished")
	SignalSendStart        = capitan.NewSignal("brtypes.send.start", "Send operation beginning")
	SignalSendComplete     = capitan.NewSignal("brtypes.send.complete", "Send operation finished")
)

// Keys for typed event data.
var (
	KeyKind           = capitan.NewStringKey("kind")
	KeyField          = capitan.NewStringKey("field")
	KeyMessage        = capitan.NewStringKey("message")
	KeyErrorCode      = capitan.NewIntKey("error_code")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyValidatedCount = capitan.NewIntKey("validated_count")
	KeyInvalidCount   = capitan.NewIntKey("invalid_count")
	KeyEncryptedCount = capitan.NewIntKey("encrypted_count")
	KeyDecryptedCount = capitan.NewIntKey("decrypted_count")
	KeyMaskedCount    = capitan.NewIntKey("masked_count")
	KeyRedactedCount  = capitan.NewIntKey("redacted_count")
)

// emitValidation reports the outcome of a single field validation.
// Raw values are never attached.
func emitValidation(ctx context.Context, kind Kind, field string, res Result) {
	fields := []capitan.Field{
		KeyKind.Field(string(kind)),
	}
	if field != "" {
		fields = append(fields, KeyField.Field(field))
	}
	if res.Valid {
		capitan.Emit(ctx, SignalValidationPassed, fields...)
		return
	}
	fields = append(fields,
		KeyMessage.Field(res.Message),
		KeyErrorCode.Field(res.ErrorCode),
	)
	capitan.Emit(ctx, SignalValidationFailed, fields...)
}

func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitReceiveStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveComplete emits an event when receive finishes.
func emitReceiveComplete(ctx context.Context, contentType, typeName string, duration time.Duration, validated, invalid int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyValidatedCount.Field(validated),
		KeyInvalidCount.Field(invalid),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}

func emitLoadStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, decrypted, invalid int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDecryptedCount.Field(decrypted),
		KeyInvalidCount.Field(invalid),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, encrypted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyEncryptedCount.Field(encrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

func emitSendStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSendComplete emits an event when send finishes.
func emitSendComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, masked, redacted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyMaskedCount.Field(masked),
		KeyRedactedCount.Field(redacted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSendComplete, fields...)
	}
}
