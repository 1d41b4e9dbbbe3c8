package integration

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/brtypes"
	"github.com/zoobzio/brtypes/codec"
	brtest "github.com/zoobzio/brtypes/testing"
)

func TestProcessor_StoreLoad(t *testing.T) {
	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			proc := brtest.NewProcessor[brtest.Customer](t, c)
			ctx := context.Background()

			original := brtest.SampleCustomer()
			data, err := proc.Store(ctx, &original)
			if err != nil {
				t.Fatalf("Store error: %v", err)
			}
			if bytes.Contains(data, []byte(original.CPF)) {
				t.Error("stored data should not contain the plaintext CPF")
			}

			restored, err := proc.Load(ctx, data)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if *restored != original {
				t.Errorf("Load() = %+v, want %+v", *restored, original)
			}
		})
	}
}

func TestProcessor_ReceiveSend(t *testing.T) {
	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			proc := brtest.NewProcessor[brtest.Customer](t, c)
			ctx := context.Background()

			// Marshal a non-canonical customer with the codec itself so the
			// payload is in the right format.
			raw := brtest.SampleCustomer()
			raw.CPF = "001.815.600-20"
			raw.Email = "Alice@Example.com"
			raw.State = "sp"
			payload, err := c.Marshal(&raw)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}

			received, err := proc.Receive(ctx, payload)
			if err != nil {
				t.Fatalf("Receive error: %v", err)
			}
			if *received != brtest.SampleCustomer() {
				t.Errorf("Receive() = %+v, want canonical customer", *received)
			}

			out, err := proc.Send(ctx, received)
			if err != nil {
				t.Fatalf("Send error: %v", err)
			}

			var sent brtest.Customer
			if err := c.Unmarshal(out, &sent); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if sent.CPF != "001.815.600-20" {
				t.Errorf("sent CPF = %q, want masked", sent.CPF)
			}
			if sent.Email != "a***@example.com" {
				t.Errorf("sent Email = %q, want redacted", sent.Email)
			}
			if sent.Phone != "(11) 91234-5678" {
				t.Errorf("sent Phone = %q, want masked", sent.Phone)
			}
			if sent.Note != "[REDACTED]" {
				t.Errorf("sent Note = %q, want literal redaction", sent.Note)
			}
		})
	}
}

func TestProcessor_Receive_Invalid(t *testing.T) {
	for _, c := range codec.All() {
		t.Run(c.ContentType(), func(t *testing.T) {
			proc := brtest.NewProcessor[brtest.Customer](t, c)

			raw := brtest.SampleCustomer()
			raw.CPF = "111.111.111-11"
			raw.State = "XX"
			payload, _ := c.Marshal(&raw)

			_, err := proc.Receive(context.Background(), payload)

			var errs brtypes.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Receive error = %v, want ValidationErrors", err)
			}
			if !errs.Has("CPF") || !errs.Has("State") || len(errs) != 2 {
				t.Errorf("Receive failures = %v, want CPF and State", errs)
			}
		})
	}
}
