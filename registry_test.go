package angzarr

import (
	"testing"

	"google.golang.org/protobuf/types/known/anypb"

	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func TestTypeRegistryDecode(t *testing.T) {
	registry := NewTypeRegistry().
		RegisterMessage(&examples.CreateOrder{}).
		RegisterMessage(&examples.CancelOrder{})

	packed, err := PackPayload(&examples.CancelOrder{Reason: "changed my mind"})
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	msg, err := registry.Decode(packed)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	cancel, ok := msg.(*examples.CancelOrder)
	if !ok {
		t.Fatalf("decoded wrong type: %T", msg)
	}
	if cancel.Reason != "changed my mind" {
		t.Errorf("reason lost in round trip: %q", cancel.Reason)
	}
}

func TestTypeRegistryDecodeUnknownType(t *testing.T) {
	registry := NewTypeRegistry().
		RegisterMessage(&examples.CreateOrder{})

	_, err := registry.Decode(&anypb.Any{TypeUrl: "type.examples/examples.UnknownThing"})
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	ce := AsClientError(err)
	if ce == nil || ce.Kind != ErrUnknownType {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestTypeRegistryDecodeEmpty(t *testing.T) {
	registry := NewTypeRegistry()
	if _, err := registry.Decode(nil); err == nil {
		t.Error("expected error for nil payload")
	}
	if _, err := registry.Decode(&anypb.Any{}); err == nil {
		t.Error("expected error for empty type_url")
	}
}

func TestTypeRegistryAmbiguousRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for ambiguous suffix pair")
		}
	}()

	// "OrderCreated" is a suffix of "ReorderCreated"; dispatch could not
	// tell the two apart.
	NewTypeRegistry().
		Register("ReorderCreated", nil).
		Register("OrderCreated", nil)
}

func TestTypeRegistryEmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty name")
		}
	}()
	NewTypeRegistry().Register("", nil)
}

func TestTypeRegistryEncodeUsesPrefix(t *testing.T) {
	registry := NewTypeRegistry().WithPrefix("type.test/custom.")

	packed, err := registry.Encode(&examples.Ship{Carrier: "ups"})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if packed.TypeUrl != "type.test/custom.Ship" {
		t.Errorf("unexpected type_url: %s", packed.TypeUrl)
	}
}

func TestTypeRegistryHandlesAndNames(t *testing.T) {
	registry := NewTypeRegistry().
		RegisterMessage(&examples.CreateOrder{}).
		RegisterMessage(&examples.Ship{})

	if !registry.Handles("type.examples/examples.CreateOrder") {
		t.Error("should handle registered type")
	}
	if registry.Handles("type.examples/examples.CancelOrder") {
		t.Error("should not handle unregistered type")
	}

	names := registry.Names()
	if len(names) != 2 || names[0] != "CreateOrder" || names[1] != "Ship" {
		t.Errorf("unexpected names: %v", names)
	}
}
