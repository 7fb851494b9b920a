// Compensation flow helpers for revocation handling.
//
// When a coordinator command is rejected by a target aggregate, the framework
// sends a Notification carrying a RejectionNotification back to the aggregate
// whose event started the flow. These helpers make compensation handlers easy
// to write.
//
// Example in an aggregate:
//
//	router := NewCommandRouter("order", rebuildState).
//	    On("CreateOrder", handleCreateOrder).
//	    OnRejected("payment", "ProcessPayment", handlePaymentRejected)
//
//	func handlePaymentRejected(notification *pb.Notification, state OrderState) *pb.BusinessResponse {
//	    cctx := NewCompensationContext(notification)
//
//	    book, err := PackEvent(cctx.SourceAggregate, &examples.OrderCancelled{
//	        Reason: "payment failed: " + cctx.RejectionReason,
//	    }, seq)
//	    if err != nil {
//	        return DelegateToFramework(err.Error())
//	    }
//	    return EmitCompensationEvents(book)
//	}
package angzarr

import (
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// NotificationSuffix detects rejection notifications on the command path.
const NotificationSuffix = "Notification"

// CompensationContext provides flat access to rejection details.
type CompensationContext struct {
	// IssuerName is the name of the coordinator that issued the rejected
	// command.
	IssuerName string

	// IssuerType is "saga" or "process_manager".
	IssuerType string

	// SourceEventSequence is the sequence of the event that triggered the
	// coordinator.
	SourceEventSequence uint64

	// RejectionReason is why the command was rejected.
	RejectionReason string

	// RejectedCommand is the command that was rejected (may be nil).
	RejectedCommand *pb.CommandBook

	// SourceAggregate is the cover of the aggregate that triggered the flow.
	SourceAggregate *pb.Cover
}

// NewCompensationContext extracts context from a Notification.
func NewCompensationContext(notification *pb.Notification) *CompensationContext {
	cctx := &CompensationContext{}

	if notification.GetPayload() != nil {
		var rejection pb.RejectionNotification
		if err := proto.Unmarshal(notification.Payload.Value, &rejection); err == nil {
			cctx.IssuerName = rejection.IssuerName
			cctx.IssuerType = rejection.IssuerType
			cctx.SourceEventSequence = rejection.SourceEventSequence
			cctx.RejectionReason = rejection.RejectionReason
			cctx.RejectedCommand = rejection.RejectedCommand
			cctx.SourceAggregate = rejection.SourceAggregate
		}
	}

	return cctx
}

// RejectedCommandType returns the type URL of the rejected command, if available.
func (c *CompensationContext) RejectedCommandType() string {
	if c.RejectedCommand != nil && len(c.RejectedCommand.Pages) > 0 {
		page := c.RejectedCommand.Pages[0]
		if page.Command != nil {
			return page.Command.TypeUrl
		}
	}
	return ""
}

// RejectedCommandName returns the short name of the rejected command type.
func (c *CompensationContext) RejectedCommandName() string {
	if url := c.RejectedCommandType(); url != "" {
		return ShortName(url)
	}
	return ""
}

// --- Aggregate helpers ---

// DelegateToFramework creates a response that delegates compensation to the
// framework, which emits a system revocation event to the fallback domain.
//
// Use when the aggregate has no custom compensation logic for the flow.
func DelegateToFramework(reason string) *pb.BusinessResponse {
	return &pb.BusinessResponse{
		Result: &pb.BusinessResponse_Revocation{
			Revocation: &pb.RevocationResponse{
				EmitSystemRevocation: true,
				Reason:               reason,
			},
		},
	}
}

// DelegateToFrameworkWithOptions creates a response with custom revocation flags.
func DelegateToFrameworkWithOptions(reason string, emitSystemEvent, sendToDLQ, escalate, abort bool) *pb.BusinessResponse {
	return &pb.BusinessResponse{
		Result: &pb.BusinessResponse_Revocation{
			Revocation: &pb.RevocationResponse{
				EmitSystemRevocation:  emitSystemEvent,
				SendToDeadLetterQueue: sendToDLQ,
				Escalate:              escalate,
				Abort:                 abort,
				Reason:                reason,
			},
		},
	}
}

// EmitCompensationEvents creates a response containing compensation events.
//
// The framework persists these events and does not emit a system revocation.
func EmitCompensationEvents(events *pb.EventBook) *pb.BusinessResponse {
	return &pb.BusinessResponse{
		Result: &pb.BusinessResponse_Events{Events: events},
	}
}

// --- Process manager helpers ---

// PMRevocationResponse holds process manager compensation results.
type PMRevocationResponse struct {
	// ProcessEvents contains process manager events to persist (may be nil).
	ProcessEvents *pb.EventBook

	// Revocation contains framework action flags.
	Revocation *pb.RevocationResponse
}

// PMDelegateToFramework creates a process manager response that delegates
// compensation to the framework.
func PMDelegateToFramework(reason string) *PMRevocationResponse {
	return &PMRevocationResponse{
		Revocation: &pb.RevocationResponse{
			EmitSystemRevocation: true,
			Reason:               reason,
		},
	}
}

// PMEmitCompensationEvents creates a process manager response with
// compensation events recorded in its own log.
func PMEmitCompensationEvents(events *pb.EventBook, alsoEmitSystemEvent bool, reason string) *PMRevocationResponse {
	return &PMRevocationResponse{
		ProcessEvents: events,
		Revocation: &pb.RevocationResponse{
			EmitSystemRevocation: alsoEmitSystemEvent,
			Reason:               reason,
		},
	}
}

// --- Helpers ---

// IsNotification checks whether a command type URL carries a rejection
// Notification.
func IsNotification(typeURL string) bool {
	return strings.HasSuffix(typeURL, NotificationSuffix)
}

// NewRejectionNotification builds the wire payload a gateway delivers to the
// flow's source aggregate when a coordinator command is rejected.
func NewRejectionNotification(issuerName, issuerType string, sourceSeq uint64, reason string, rejected *pb.CommandBook, source *pb.Cover) (*pb.Notification, error) {
	payload, err := anypb.New(&pb.RejectionNotification{
		IssuerName:          issuerName,
		IssuerType:          issuerType,
		SourceEventSequence: sourceSeq,
		RejectionReason:     reason,
		RejectedCommand:     rejected,
		SourceAggregate:     source,
	})
	if err != nil {
		return nil, err
	}
	return &pb.Notification{Payload: payload}, nil
}
