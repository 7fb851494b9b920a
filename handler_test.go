package angzarr

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func TestAggregateHandlerStatusCodes(t *testing.T) {
	handler := NewAggregateHandler(testOrderRouter())
	ctx := context.Background()

	t.Run("rejection maps to FAILED_PRECONDITION", func(t *testing.T) {
		prior := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
		}}
		_, err := handler.Handle(ctx, contextualCommand(t, &examples.CreateOrder{}, prior))
		if status.Code(err) != codes.FailedPrecondition {
			t.Errorf("expected FailedPrecondition, got %v", status.Code(err))
		}
	})

	t.Run("unknown command maps to INVALID_ARGUMENT", func(t *testing.T) {
		_, err := handler.Handle(ctx, contextualCommand(t, &examples.Ship{}, nil))
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("expected InvalidArgument, got %v", status.Code(err))
		}
	})

	t.Run("missing book maps to INVALID_ARGUMENT", func(t *testing.T) {
		_, err := handler.Handle(ctx, &pb.ContextualCommand{})
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("expected InvalidArgument, got %v", status.Code(err))
		}
	})

	t.Run("sync path shares business logic", func(t *testing.T) {
		resp, err := handler.HandleSync(ctx, contextualCommand(t, &examples.CreateOrder{CustomerId: "c"}, nil))
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if resp.GetEvents() == nil {
			t.Error("expected events")
		}
	})
}

func TestAggregateHandlerDescriptor(t *testing.T) {
	handler := NewAggregateHandler(testOrderRouter())
	d, err := handler.GetDescriptor(context.Background(), &pb.GetDescriptorRequest{})
	if err != nil {
		t.Fatalf("descriptor failed: %v", err)
	}
	if d.Name != "order" || d.ComponentType != ComponentAggregate {
		t.Errorf("unexpected descriptor: %+v", d)
	}
}

func TestAggregateHandlerRevocationRouting(t *testing.T) {
	ctx := context.Background()
	notification := declinedPaymentNotification(t)

	t.Run("no custom compensation delegates to framework", func(t *testing.T) {
		handler := NewAggregateHandler(testOrderRouter())
		resp, err := handler.HandleRevocation(ctx, notification)
		if err != nil {
			t.Fatalf("revocation failed: %v", err)
		}
		if !resp.EmitSystemRevocation {
			t.Error("expected system revocation delegation")
		}
	})

	t.Run("registered compensation claims the flow", func(t *testing.T) {
		router := testOrderRouter().
			OnRejected("payment", "ProcessPayment", func(*pb.Notification, orderState) *pb.BusinessResponse {
				return DelegateToFramework("unused")
			})
		resp, err := NewAggregateHandler(router).HandleRevocation(ctx, notification)
		if err != nil {
			t.Fatalf("revocation failed: %v", err)
		}
		if resp.EmitSystemRevocation {
			t.Error("registered handler should suppress the system revocation")
		}
	})
}

func TestSagaHandler(t *testing.T) {
	ctx := context.Background()
	router := NewEventRouter("sag-shipping", "order").
		Prepare("OrderCompleted", func(source *pb.EventBook, event *anypb.Any) []*pb.Cover {
			return []*pb.Cover{{Domain: "fulfillment"}}
		}).
		On("OrderCompleted", func(source *pb.EventBook, event *anypb.Any, destinations []*pb.EventBook) ([]*pb.CommandBook, error) {
			cb, err := PackCommand(&pb.Cover{Domain: "fulfillment"}, &examples.CreateShipment{}, 0)
			if err != nil {
				return nil, err
			}
			return []*pb.CommandBook{cb}, nil
		})
	handler := NewSagaHandler(router)

	source := &pb.EventBook{
		Cover: NewCover("order", OrderRoot("order-1"), "corr-1"),
		Pages: []*pb.EventPage{{Sequence: 2, Event: mustPack(t, &examples.OrderCompleted{})}},
	}

	t.Run("prepare answers from router registrations", func(t *testing.T) {
		resp, err := handler.Prepare(ctx, &pb.SagaPrepareRequest{Source: source})
		if err != nil {
			t.Fatalf("prepare failed: %v", err)
		}
		if len(resp.Destinations) != 1 || resp.Destinations[0].Domain != "fulfillment" {
			t.Errorf("unexpected destinations: %+v", resp.Destinations)
		}
	})

	t.Run("execute dispatches through router", func(t *testing.T) {
		resp, err := handler.Execute(ctx, &pb.SagaExecuteRequest{Source: source})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if len(resp.Commands) != 1 {
			t.Fatalf("expected one command, got %d", len(resp.Commands))
		}
	})

	t.Run("overrides take precedence", func(t *testing.T) {
		overridden := NewSagaHandler(router).
			WithPrepare(func(*pb.EventBook) []*pb.Cover { return nil }).
			WithExecute(func(*pb.EventBook, []*pb.EventBook) ([]*pb.CommandBook, error) { return nil, nil })

		prep, _ := overridden.Prepare(ctx, &pb.SagaPrepareRequest{Source: source})
		if len(prep.Destinations) != 0 {
			t.Error("prepare override should win")
		}
		exec, _ := overridden.Execute(ctx, &pb.SagaExecuteRequest{Source: source})
		if len(exec.Commands) != 0 {
			t.Error("execute override should win")
		}
	})

	t.Run("descriptor names the saga", func(t *testing.T) {
		d, _ := handler.GetDescriptor(ctx, &pb.GetDescriptorRequest{})
		if d.Name != "sag-shipping" || d.ComponentType != ComponentSaga {
			t.Errorf("unexpected descriptor: %+v", d)
		}
	})
}

func TestProcessManagerHandlerWithFanIn(t *testing.T) {
	ctx := context.Background()
	handler := NewProcessManagerHandler("pmg-fulfillment").
		WithFanIn(fulfillmentFanIn(), "payment", "inventory", "fulfillment")

	t.Run("descriptor derives subscriptions from classifiers", func(t *testing.T) {
		d, _ := handler.GetDescriptor(ctx, &pb.GetDescriptorRequest{})
		if d.ComponentType != ComponentProcessManager || len(d.Inputs) != 3 {
			t.Fatalf("unexpected descriptor: %+v", d)
		}
		if len(d.Inputs[0].Types) != 3 {
			t.Errorf("expected classifier types on each input: %+v", d.Inputs[0])
		}
	})

	t.Run("handle routes through the fan-in", func(t *testing.T) {
		resp, err := handler.Handle(ctx, &pb.ProcessManagerHandleRequest{
			Trigger: fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, "corr-9"),
		})
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if resp.ProcessEvents == nil || len(resp.ProcessEvents.Pages) != 1 {
			t.Error("expected a progress marker")
		}
		if resp.Commands != nil {
			t.Error("incomplete set should not dispatch")
		}
	})
}

func TestProcessManagerHandlerRevocation(t *testing.T) {
	ctx := context.Background()
	notificationAny, err := anypb.New(declinedPaymentNotification(t))
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	trigger := &pb.EventBook{
		Cover: &pb.Cover{Domain: "order", CorrelationId: "corr-1"},
		Pages: []*pb.EventPage{{Sequence: 0, Event: notificationAny}},
	}

	t.Run("default delegates to framework", func(t *testing.T) {
		handler := NewProcessManagerHandler("pmg-test")
		resp, err := handler.Handle(ctx, &pb.ProcessManagerHandleRequest{Trigger: trigger})
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if resp.Commands != nil {
			t.Error("revocation trigger should not dispatch commands")
		}
		if !resp.GetRevocation().GetEmitSystemRevocation() {
			t.Error("unhandled rejection should surface a system revocation")
		}
	})

	t.Run("custom revocation callback runs", func(t *testing.T) {
		var sawReason string
		handler := NewProcessManagerHandler("pmg-test").
			WithRevocationHandler(func(n *pb.Notification, processState *pb.EventBook) *PMRevocationResponse {
				sawReason = NewCompensationContext(n).RejectionReason
				return PMEmitCompensationEvents(&pb.EventBook{}, false, "logged")
			})

		resp, err := handler.Handle(ctx, &pb.ProcessManagerHandleRequest{Trigger: trigger})
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if sawReason != "card_declined" {
			t.Errorf("callback should see the rejection, got %q", sawReason)
		}
		if resp.ProcessEvents == nil {
			t.Error("expected compensation process events")
		}
		if resp.GetRevocation() == nil || resp.GetRevocation().GetEmitSystemRevocation() {
			t.Errorf("custom compensation should report without a system revocation, got %+v", resp.GetRevocation())
		}
	})

	t.Run("multi-page triggers are not treated as notifications", func(t *testing.T) {
		handled := false
		handler := NewProcessManagerHandler("pmg-test").
			WithHandle(func(trigger, processState *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, *pb.EventBook, error) {
				handled = true
				return nil, nil, nil
			})

		multi := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: notificationAny},
			{Sequence: 1, Event: mustPack(t, &examples.OrderCreated{})},
		}}
		if _, err := handler.Handle(ctx, &pb.ProcessManagerHandleRequest{Trigger: multi}); err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if !handled {
			t.Error("ordinary handle path should run")
		}
	})
}

func TestProjectorHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("handle builds a projection", func(t *testing.T) {
		handler := NewProjectorHandler("prj-order-summary", "order").
			WithHandle(func(events *pb.EventBook) (*pb.Projection, error) {
				state := orderBuilder().Rebuild(events)
				payload, err := PackPayload(&examples.OrderCreated{SubtotalCents: state.SubtotalCents})
				if err != nil {
					return nil, err
				}
				return &pb.Projection{
					Cover:      events.Cover,
					Projector:  "prj-order-summary",
					Sequence:   events.Pages[len(events.Pages)-1].Sequence,
					Projection: payload,
				}, nil
			})

		book := &pb.EventBook{
			Cover: NewCover("order", OrderRoot("order-1"), ""),
			Pages: []*pb.EventPage{{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{SubtotalCents: 700})}},
		}
		projection, err := handler.Handle(ctx, book)
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if projection.Projector != "prj-order-summary" || projection.Sequence != 0 {
			t.Errorf("unexpected projection: %+v", projection)
		}
	})

	t.Run("speculative path shares the computation", func(t *testing.T) {
		calls := 0
		handler := NewProjectorHandler("prj-count", "order").
			WithHandle(func(events *pb.EventBook) (*pb.Projection, error) {
				calls++
				return &pb.Projection{}, nil
			})
		if _, err := handler.HandleSpeculative(ctx, &pb.EventBook{}); err != nil {
			t.Fatalf("speculative failed: %v", err)
		}
		if calls != 1 {
			t.Error("speculative should run the same callback")
		}
	})

	t.Run("descriptor lists observed domains", func(t *testing.T) {
		handler := NewProjectorHandler("prj-multi", "order", "payment")
		d, _ := handler.GetDescriptor(ctx, &pb.GetDescriptorRequest{})
		if len(d.Inputs) != 2 || d.Inputs[1].Domain != "payment" {
			t.Errorf("unexpected inputs: %+v", d.Inputs)
		}
	})
}

func TestUpcastHandler(t *testing.T) {
	ctx := context.Background()
	handler := NewUpcastHandler("ups-player", registeredV1Upcaster())

	t.Run("upcasts request pages", func(t *testing.T) {
		resp, err := handler.Upcast(ctx, &pb.UpcastRequest{
			Pages: []*pb.EventPage{
				{Sequence: 0, Event: mustPack(t, &examples.PlayerRegisteredV1{DisplayName: "tal"})},
			},
		})
		if err != nil {
			t.Fatalf("upcast failed: %v", err)
		}
		if !TypeURLMatches(resp.Pages[0].Event.TypeUrl, "PlayerRegistered") {
			t.Errorf("page not upcast: %s", resp.Pages[0].Event.TypeUrl)
		}
	})

	t.Run("descriptor names the router domain", func(t *testing.T) {
		d, _ := handler.GetDescriptor(ctx, &pb.GetDescriptorRequest{})
		if d.ComponentType != ComponentUpcaster || d.Inputs[0].Domain != "player" {
			t.Errorf("unexpected descriptor: %+v", d)
		}
	})
}
