package angzarr

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func testOrderRouter() *CommandRouter[orderState] {
	return NewCommandRouter("order", orderBuilder().RebuildFunc()).
		On("CreateOrder", func(cb *pb.CommandBook, cmd *anypb.Any, state orderState, seq uint64) (*pb.EventBook, error) {
			if state.Exists {
				return nil, NewCommandRejectedError("order already exists")
			}
			var create examples.CreateOrder
			if err := proto.Unmarshal(cmd.Value, &create); err != nil {
				return nil, InvalidArgumentError(err.Error())
			}
			var subtotal int64
			for _, item := range create.Items {
				subtotal += item.Quantity * item.UnitPriceCents
			}
			return PackEvent(cb.Cover, &examples.OrderCreated{
				CustomerId:    create.CustomerId,
				Items:         create.Items,
				SubtotalCents: subtotal,
			}, seq)
		}).
		On("CancelOrder", func(cb *pb.CommandBook, cmd *anypb.Any, state orderState, seq uint64) (*pb.EventBook, error) {
			if !state.Exists {
				return nil, NewCommandRejectedError("order does not exist")
			}
			return PackEvent(cb.Cover, &examples.OrderCancelled{}, seq)
		})
}

func contextualCommand(t *testing.T, cmd proto.Message, prior *pb.EventBook) *pb.ContextualCommand {
	t.Helper()
	book, err := PackCommand(NewCover("order", OrderRoot("order-1"), "corr-1"), cmd, NextSequence(prior))
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	return &pb.ContextualCommand{Command: book, Events: prior}
}

func TestCommandRouterDispatch(t *testing.T) {
	router := testOrderRouter()

	t.Run("routes to matching handler", func(t *testing.T) {
		resp, err := router.Dispatch(contextualCommand(t, &examples.CreateOrder{CustomerId: "cust-1"}, nil))
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		events := resp.GetEvents()
		if events == nil || len(events.Pages) != 1 {
			t.Fatal("expected one event page")
		}
		if !TypeURLMatches(events.Pages[0].Event.TypeUrl, "OrderCreated") {
			t.Errorf("unexpected event: %s", events.Pages[0].Event.TypeUrl)
		}
		if events.Pages[0].Sequence != 0 {
			t.Errorf("cold aggregate should emit at sequence 0, got %d", events.Pages[0].Sequence)
		}
	})

	t.Run("handler derives fields from the command payload", func(t *testing.T) {
		resp, err := router.Dispatch(contextualCommand(t, &examples.CreateOrder{
			CustomerId: "c1",
			Items:      []*examples.LineItem{{Sku: "s1", Quantity: 2, UnitPriceCents: 100}},
		}, nil))
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		var created examples.OrderCreated
		if err := proto.Unmarshal(resp.GetEvents().Pages[0].Event.Value, &created); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if created.SubtotalCents != 200 {
			t.Errorf("expected subtotal 200, got %d", created.SubtotalCents)
		}
	})

	t.Run("handler sees state rebuilt from prior events", func(t *testing.T) {
		prior := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
			{Sequence: 1, Event: mustPack(t, &examples.PaymentSubmitted{})},
			{Sequence: 2, Event: mustPack(t, &examples.OrderCompleted{})},
		}}

		resp, err := router.Dispatch(contextualCommand(t, &examples.CancelOrder{}, prior))
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if got := resp.GetEvents().Pages[0].Sequence; got != 3 {
			t.Errorf("expected next sequence 3, got %d", got)
		}
	})

	t.Run("business rejection surfaces as error", func(t *testing.T) {
		prior := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
		}}
		_, err := router.Dispatch(contextualCommand(t, &examples.CreateOrder{}, prior))
		if err == nil {
			t.Fatal("expected rejection for duplicate create")
		}
		var rejected CommandRejectedError
		if !errors.As(err, &rejected) {
			t.Errorf("expected CommandRejectedError, got %T", err)
		}
	})

	t.Run("unknown command type", func(t *testing.T) {
		_, err := router.Dispatch(contextualCommand(t, &examples.Ship{}, nil))
		ce := AsClientError(err)
		if ce == nil || ce.Kind != ErrUnknownType {
			t.Errorf("expected ErrUnknownType, got %v", err)
		}
	})

	t.Run("missing command book", func(t *testing.T) {
		if _, err := router.Dispatch(nil); err == nil {
			t.Error("expected error for nil input")
		}
		if _, err := router.Dispatch(&pb.ContextualCommand{}); err == nil {
			t.Error("expected error for missing command book")
		}
	})

	t.Run("no command pages", func(t *testing.T) {
		cmd := &pb.ContextualCommand{Command: &pb.CommandBook{}}
		if _, err := router.Dispatch(cmd); err == nil {
			t.Error("expected error for empty page list")
		}
	})
}

func TestCommandRouterAmbiguousRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for ambiguous suffix pair")
		}
	}()
	NewCommandRouter("order", orderBuilder().RebuildFunc()).
		On("CreateOrder", nil).
		On("Order", nil)
}

func TestCommandRouterRejectionDispatch(t *testing.T) {
	rejectedCmd, err := PackCommand(
		NewCover("payment", ComputeRoot("payment", "order-1"), "corr-1"),
		&examples.ProcessPayment{AmountCents: 500}, 0)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	sourceCover := NewCover("order", OrderRoot("order-1"), "corr-1")

	notification, err := NewRejectionNotification(
		"sag-payment", ComponentSaga, 2, "card_declined", rejectedCmd, sourceCover)
	if err != nil {
		t.Fatalf("notification build failed: %v", err)
	}
	notificationAny, err := anypb.New(notification)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	contextual := &pb.ContextualCommand{
		Command: &pb.CommandBook{
			Cover: sourceCover,
			Pages: []*pb.CommandPage{{Command: notificationAny}},
		},
		Events: &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
		}},
	}

	t.Run("routes to registered rejection handler", func(t *testing.T) {
		var sawReason string
		router := testOrderRouter().
			OnRejected("payment", "ProcessPayment", func(n *pb.Notification, state orderState) *pb.BusinessResponse {
				cctx := NewCompensationContext(n)
				sawReason = cctx.RejectionReason
				book, err := PackEvent(cctx.SourceAggregate, &examples.OrderCancelled{Reason: cctx.RejectionReason}, 1)
				if err != nil {
					return DelegateToFramework(err.Error())
				}
				return EmitCompensationEvents(book)
			})

		resp, err := router.Dispatch(contextual)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if sawReason != "card_declined" {
			t.Errorf("handler should see the rejection reason, got %q", sawReason)
		}
		if resp.GetEvents() == nil {
			t.Error("expected compensation events")
		}
	})

	t.Run("unregistered rejection delegates to framework", func(t *testing.T) {
		resp, err := testOrderRouter().Dispatch(contextual)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		revocation := resp.GetRevocation()
		if revocation == nil || !revocation.EmitSystemRevocation {
			t.Error("expected system revocation delegation")
		}
	})
}

func TestCommandRouterHasRejectionHandler(t *testing.T) {
	router := testOrderRouter().
		OnRejected("payment", "ProcessPayment", func(*pb.Notification, orderState) *pb.BusinessResponse { return nil })

	if !router.HasRejectionHandler("payment", "ProcessPayment") {
		t.Error("registered pair should be reported")
	}
	if router.HasRejectionHandler("inventory", "ReserveStock") {
		t.Error("unregistered pair should not be reported")
	}
}

func TestCommandRouterDescriptor(t *testing.T) {
	d := testOrderRouter().Descriptor()
	if d.Name != "order" || d.ComponentType != ComponentAggregate {
		t.Errorf("unexpected descriptor header: %+v", d)
	}
	if len(d.Inputs) != 1 || d.Inputs[0].Domain != "order" {
		t.Fatalf("unexpected inputs: %+v", d.Inputs)
	}
	types := d.Inputs[0].Types
	if len(types) != 2 || types[0] != "CreateOrder" || types[1] != "CancelOrder" {
		t.Errorf("types should follow registration order: %v", types)
	}
}

func TestEventRouterDispatch(t *testing.T) {
	sourceCover := NewCover("order", OrderRoot("order-1"), "corr-7")

	router := NewEventRouter("sag-payment", "order").
		Prepare("OrderCreated", func(source *pb.EventBook, event *anypb.Any) []*pb.Cover {
			return []*pb.Cover{{Domain: "payment", Root: CoverOf(source).Root}}
		}).
		On("OrderCreated", func(source *pb.EventBook, event *anypb.Any, destinations []*pb.EventBook) ([]*pb.CommandBook, error) {
			dest := DestinationFor(destinations, "payment", CoverOf(source).Root)
			cb, err := PackCommand(
				&pb.Cover{Domain: "payment", Root: CoverOf(source).Root},
				&examples.ProcessPayment{AmountCents: 100},
				ExpectedSequence(dest))
			if err != nil {
				return nil, err
			}
			return []*pb.CommandBook{cb}, nil
		})

	source := &pb.EventBook{
		Cover: sourceCover,
		Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
		},
	}

	t.Run("prepare declares destinations from last page", func(t *testing.T) {
		covers := router.PrepareDestinations(source)
		if len(covers) != 1 || covers[0].Domain != "payment" {
			t.Fatalf("unexpected destinations: %+v", covers)
		}
	})

	t.Run("execute uses destination sequence", func(t *testing.T) {
		destinations := []*pb.EventBook{{
			Cover: &pb.Cover{Domain: "payment", Root: sourceCover.Root},
			Pages: []*pb.EventPage{{Sequence: 0}, {Sequence: 1}},
		}}
		commands, err := router.Dispatch(source, destinations)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if len(commands) != 1 {
			t.Fatalf("expected one command, got %d", len(commands))
		}
		if got := commands[0].Pages[0].Sequence; got != 2 {
			t.Errorf("expected destination next sequence 2, got %d", got)
		}
	})

	t.Run("commands inherit source correlation id", func(t *testing.T) {
		commands, err := router.Dispatch(source, nil)
		if err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if got := commands[0].Cover.CorrelationId; got != "corr-7" {
			t.Errorf("expected inherited correlation id, got %q", got)
		}
	})

	t.Run("unmatched domain yields no commands", func(t *testing.T) {
		other := &pb.EventBook{
			Cover: NewCover("inventory", InventoryRoot("sku-1"), ""),
			Pages: source.Pages,
		}
		commands, err := router.Dispatch(other, nil)
		if err != nil || commands != nil {
			t.Errorf("expected nil commands, got %v, %v", commands, err)
		}
	})
}

func TestEventRouterMultiDomain(t *testing.T) {
	handled := []string{}
	record := func(label string) EventHandler {
		return func(*pb.EventBook, *anypb.Any, []*pb.EventBook) ([]*pb.CommandBook, error) {
			handled = append(handled, label)
			return nil, nil
		}
	}

	router := NewEventRouter("pmg-fulfillment").
		Domain("order").
		On("OrderCompleted", record("order")).
		Domain("inventory").
		On("StockReserved", record("inventory"))

	t.Run("subscriptions cover both domains", func(t *testing.T) {
		subs := router.Subscriptions()
		if len(subs) != 2 || subs["order"][0] != "OrderCompleted" || subs["inventory"][0] != "StockReserved" {
			t.Errorf("unexpected subscriptions: %v", subs)
		}
	})

	t.Run("descriptor lists domains in declaration order", func(t *testing.T) {
		d := router.Descriptor(ComponentProcessManager)
		if d.ComponentType != ComponentProcessManager {
			t.Errorf("unexpected component type: %s", d.ComponentType)
		}
		if len(d.Inputs) != 2 || d.Inputs[0].Domain != "order" || d.Inputs[1].Domain != "inventory" {
			t.Errorf("unexpected input order: %+v", d.Inputs)
		}
	})

	t.Run("events route per source domain", func(t *testing.T) {
		handled = nil
		book := &pb.EventBook{
			Cover: NewCover("inventory", InventoryRoot("sku-1"), ""),
			Pages: []*pb.EventPage{
				{Sequence: 0, Event: mustPack(t, &examples.StockReserved{})},
			},
		}
		if _, err := router.Dispatch(book, nil); err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if len(handled) != 1 || handled[0] != "inventory" {
			t.Errorf("unexpected handler trace: %v", handled)
		}
	})
}

func TestEventRouterRequiresDomainContext(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when On is called before Domain")
		}
	}()
	NewEventRouter("sag-test").On("OrderCreated", nil)
}
