package angzarr

import (
	"testing"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func declinedPaymentNotification(t *testing.T) *pb.Notification {
	t.Helper()
	rejected, err := PackCommand(
		NewCover("payment", ComputeRoot("payment", "order-1"), "corr-1"),
		&examples.ProcessPayment{AmountCents: 4200}, 1)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	source := NewCover("order", OrderRoot("order-1"), "corr-1")

	notification, err := NewRejectionNotification("sag-payment", ComponentSaga, 2, "card_declined", rejected, source)
	if err != nil {
		t.Fatalf("notification build failed: %v", err)
	}
	return notification
}

func TestCompensationContext(t *testing.T) {
	cctx := NewCompensationContext(declinedPaymentNotification(t))

	if cctx.IssuerName != "sag-payment" || cctx.IssuerType != ComponentSaga {
		t.Errorf("issuer lost: %s/%s", cctx.IssuerName, cctx.IssuerType)
	}
	if cctx.SourceEventSequence != 2 {
		t.Errorf("unexpected source sequence: %d", cctx.SourceEventSequence)
	}
	if cctx.RejectionReason != "card_declined" {
		t.Errorf("unexpected reason: %s", cctx.RejectionReason)
	}
	if cctx.SourceAggregate.GetDomain() != "order" {
		t.Error("source aggregate cover lost")
	}
	if cctx.RejectedCommandName() != "ProcessPayment" {
		t.Errorf("unexpected rejected command: %s", cctx.RejectedCommandName())
	}
	if !TypeURLMatches(cctx.RejectedCommandType(), "ProcessPayment") {
		t.Errorf("unexpected rejected type url: %s", cctx.RejectedCommandType())
	}
}

func TestCompensationContextEmptyNotification(t *testing.T) {
	cctx := NewCompensationContext(&pb.Notification{})

	if cctx.RejectionReason != "" || cctx.RejectedCommand != nil {
		t.Error("empty notification should yield zero context")
	}
	if cctx.RejectedCommandName() != "" || cctx.RejectedCommandType() != "" {
		t.Error("missing command should yield empty names")
	}
}

func TestDelegateToFramework(t *testing.T) {
	resp := DelegateToFramework("no custom compensation")

	revocation := resp.GetRevocation()
	if revocation == nil {
		t.Fatal("expected a revocation result")
	}
	if !revocation.EmitSystemRevocation {
		t.Error("delegation should request a system revocation")
	}
	if revocation.Reason != "no custom compensation" {
		t.Errorf("unexpected reason: %s", revocation.Reason)
	}
}

func TestDelegateToFrameworkWithOptions(t *testing.T) {
	resp := DelegateToFrameworkWithOptions("poison message", false, true, true, false)

	revocation := resp.GetRevocation()
	if revocation.EmitSystemRevocation {
		t.Error("system event flag should be off")
	}
	if !revocation.SendToDeadLetterQueue || !revocation.Escalate || revocation.Abort {
		t.Errorf("unexpected flags: %+v", revocation)
	}
}

func TestEmitCompensationEvents(t *testing.T) {
	book, err := PackEvent(NewCover("order", OrderRoot("order-1"), "corr-1"),
		&examples.OrderCancelled{Reason: "payment failed"}, 3)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	resp := EmitCompensationEvents(book)
	if resp.GetRevocation() != nil {
		t.Error("compensation events should not carry a revocation")
	}
	if resp.GetEvents() != book {
		t.Error("events should pass through")
	}
}

func TestPMCompensationHelpers(t *testing.T) {
	t.Run("delegate", func(t *testing.T) {
		resp := PMDelegateToFramework("unknown flow")
		if resp.ProcessEvents != nil {
			t.Error("delegation carries no process events")
		}
		if !resp.Revocation.EmitSystemRevocation {
			t.Error("delegation should request a system revocation")
		}
	})

	t.Run("emit with own log entry", func(t *testing.T) {
		book := &pb.EventBook{}
		resp := PMEmitCompensationEvents(book, false, "handled in process log")
		if resp.ProcessEvents != book {
			t.Error("process events should pass through")
		}
		if resp.Revocation.EmitSystemRevocation {
			t.Error("system event flag should honor the argument")
		}
	})
}

func TestIsNotification(t *testing.T) {
	if !IsNotification("type.googleapis.com/angzarr.Notification") {
		t.Error("framework notification should match")
	}
	if IsNotification("type.examples/examples.CreateOrder") {
		t.Error("ordinary command should not match")
	}
}
