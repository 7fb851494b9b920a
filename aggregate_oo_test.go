package angzarr

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

type testOrderState struct {
	Exists    bool
	Status    string
	Cancelled bool
}

type testOrder struct {
	AggregateBase[testOrderState]
}

func newTestOrder(book *pb.EventBook) *testOrder {
	o := &testOrder{}
	o.Init(book, func() testOrderState { return testOrderState{} })
	o.SetDomain("order")
	o.Applies("OrderCreated", o.applyCreated)
	o.Applies("OrderCancelled", o.applyCancelled)
	o.Handles("CreateOrder", o.create)
	o.Handles("CancelOrder", o.cancel)
	o.HandlesMulti("SubmitPayment", o.submitPayment)
	return o
}

func (o *testOrder) applyCreated(state *testOrderState, event *examples.OrderCreated) {
	state.Exists = true
	state.Status = "created"
}

func (o *testOrder) applyCancelled(state *testOrderState, event *examples.OrderCancelled) {
	state.Cancelled = true
	state.Status = "cancelled"
}

func (o *testOrder) create(cmd *examples.CreateOrder) (proto.Message, error) {
	if o.Exists() {
		return nil, NewCommandRejectedError("order already exists")
	}
	return &examples.OrderCreated{CustomerId: cmd.CustomerId}, nil
}

func (o *testOrder) cancel(cmd *examples.CancelOrder) (proto.Message, error) {
	if !o.Exists() {
		return nil, NewCommandRejectedError("order does not exist")
	}
	if o.State().Cancelled {
		return nil, NewCommandRejectedError("already cancelled")
	}
	return &examples.OrderCancelled{Reason: cmd.Reason}, nil
}

func (o *testOrder) submitPayment(cmd *examples.SubmitPayment) ([]proto.Message, error) {
	return []proto.Message{
		&examples.PaymentSubmitted{AmountCents: cmd.AmountCents},
		&examples.OrderCompleted{FinalTotalCents: cmd.AmountCents},
	}, nil
}

func priorOrderBook(t *testing.T) *pb.EventBook {
	t.Helper()
	book, err := PackEvent(NewCover("order", OrderRoot("order-1"), "corr-1"),
		&examples.OrderCreated{}, 0)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	return book
}

func TestAggregateBaseDispatch(t *testing.T) {
	t.Run("command produces a sequenced event", func(t *testing.T) {
		order := newTestOrder(nil)
		if order.Exists() {
			t.Fatal("fresh aggregate should not exist")
		}

		cmd := mustPack(t, &examples.CreateOrder{CustomerId: "cust-1"})
		if err := order.Dispatch(cmd); err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}

		produced := order.EventBook()
		if len(produced.Pages) != 1 || produced.Pages[0].Sequence != 0 {
			t.Fatalf("unexpected produced book: %+v", produced)
		}
		if !TypeURLMatches(produced.Pages[0].Event.TypeUrl, "OrderCreated") {
			t.Error("unexpected event type")
		}
		if order.State().Status != "created" {
			t.Error("event should fold into state immediately")
		}
	})

	t.Run("sequences continue from prior history", func(t *testing.T) {
		order := newTestOrder(priorOrderBook(t))
		if !order.Exists() {
			t.Fatal("aggregate with history should exist")
		}

		if err := order.Dispatch(mustPack(t, &examples.CancelOrder{Reason: "late"})); err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if got := order.EventBook().Pages[0].Sequence; got != 1 {
			t.Errorf("expected sequence 1, got %d", got)
		}
	})

	t.Run("multi handler records every event", func(t *testing.T) {
		order := newTestOrder(priorOrderBook(t))
		if err := order.Dispatch(mustPack(t, &examples.SubmitPayment{AmountCents: 900})); err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		pages := order.EventBook().Pages
		if len(pages) != 2 || pages[0].Sequence != 1 || pages[1].Sequence != 2 {
			t.Fatalf("unexpected pages: %+v", pages)
		}
	})

	t.Run("rejection leaves the produced book empty", func(t *testing.T) {
		order := newTestOrder(priorOrderBook(t))
		err := order.Dispatch(mustPack(t, &examples.CreateOrder{}))
		if err == nil {
			t.Fatal("expected rejection")
		}
		if len(order.EventBook().Pages) != 0 {
			t.Error("rejected command should produce nothing")
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		order := newTestOrder(nil)
		err := order.Dispatch(mustPack(t, &examples.Ship{}))
		ce := AsClientError(err)
		if ce == nil || ce.Kind != ErrUnknownType {
			t.Errorf("expected ErrUnknownType, got %v", err)
		}
	})
}

func TestAggregateBaseStateRebuild(t *testing.T) {
	history := &pb.EventBook{
		Cover: NewCover("order", OrderRoot("order-1"), ""),
		Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
			{Sequence: 1, Event: mustPack(t, &examples.OrderCancelled{})},
		},
	}

	order := newTestOrder(history)
	state := order.State()
	if !state.Exists || !state.Cancelled || state.Status != "cancelled" {
		t.Errorf("unexpected rebuilt state: %+v", state)
	}

	// A cancelled order rejects a second cancel through rebuilt state.
	if err := order.Dispatch(mustPack(t, &examples.CancelOrder{})); err == nil {
		t.Error("expected rejection from rebuilt state")
	}
}

func TestAggregateBaseHandle(t *testing.T) {
	t.Run("full contextual command round trip", func(t *testing.T) {
		order := newTestOrder(nil)
		book, err := PackCommand(NewCover("order", OrderRoot("order-1"), "corr-1"),
			&examples.CreateOrder{CustomerId: "cust-1"}, 0)
		if err != nil {
			t.Fatalf("pack failed: %v", err)
		}

		resp, err := order.Handle(&pb.ContextualCommand{Command: book})
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if resp.GetEvents() == nil || len(resp.GetEvents().Pages) != 1 {
			t.Error("expected produced events in the response")
		}
	})

	t.Run("produced book carries the prior cover", func(t *testing.T) {
		prior := priorOrderBook(t)
		order := newTestOrder(prior)
		if err := order.Dispatch(mustPack(t, &examples.CancelOrder{})); err != nil {
			t.Fatalf("dispatch failed: %v", err)
		}
		if order.EventBook().Cover != prior.Cover {
			t.Error("produced book should address the same aggregate")
		}
	})

	t.Run("notification delegates to framework", func(t *testing.T) {
		order := newTestOrder(priorOrderBook(t))
		notification, err := NewRejectionNotification("sag-x", ComponentSaga, 0, "r", nil, nil)
		if err != nil {
			t.Fatalf("notification build failed: %v", err)
		}
		notificationAny, err := anypb.New(notification)
		if err != nil {
			t.Fatalf("pack failed: %v", err)
		}

		resp, err := order.Handle(&pb.ContextualCommand{Command: &pb.CommandBook{
			Pages: []*pb.CommandPage{{Command: notificationAny}},
		}})
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if resp.GetRevocation() == nil || !resp.GetRevocation().EmitSystemRevocation {
			t.Error("base aggregate should delegate compensation to the framework")
		}
	})

	t.Run("missing pages", func(t *testing.T) {
		order := newTestOrder(nil)
		if _, err := order.Handle(&pb.ContextualCommand{}); err == nil {
			t.Error("expected error for empty command")
		}
	})
}
