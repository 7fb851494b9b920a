package angzarr

import (
	"testing"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func TestEventBookWrapper(t *testing.T) {
	root := OrderRoot("order-1")
	book := &pb.EventBook{
		Cover: NewCover("order", root, "corr-1"),
		Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{CustomerId: "cust-1"})},
			{Sequence: 1, Event: mustPack(t, &examples.PaymentSubmitted{})},
		},
	}
	w := NewEventBookW(book)

	if w.DomainName() != "order" || w.CorrelationID() != "corr-1" || !w.HasCorrelationID() {
		t.Errorf("cover accessors mismatch: %s/%s", w.DomainName(), w.CorrelationID())
	}
	if got, ok := w.RootUUID(); !ok || got != root {
		t.Error("root accessor mismatch")
	}
	if w.NextSeq() != 2 {
		t.Errorf("expected next sequence 2, got %d", w.NextSeq())
	}
	if w.EditionName() != DefaultEdition {
		t.Errorf("unexpected edition: %s", w.EditionName())
	}
	if w.RoutingKey() != "order" {
		t.Errorf("unexpected routing key: %s", w.RoutingKey())
	}
	if w.CacheKey() != "order:"+w.RootIDHex() {
		t.Errorf("unexpected cache key: %s", w.CacheKey())
	}

	t.Run("page wrappers decode typed events", func(t *testing.T) {
		pages := w.PageWrappers()
		if len(pages) != 2 || pages[1].Seq() != 1 {
			t.Fatalf("unexpected pages: %d", len(pages))
		}

		var created examples.OrderCreated
		if !pages[0].Decode("OrderCreated", &created) {
			t.Fatal("expected decode to succeed")
		}
		if created.CustomerId != "cust-1" {
			t.Error("payload lost in decode")
		}
		if pages[0].Decode("PaymentSubmitted", &examples.PaymentSubmitted{}) {
			t.Error("mismatched suffix should not decode")
		}
	})

	t.Run("generated accessors stay available", func(t *testing.T) {
		if w.GetCover().GetDomain() != "order" {
			t.Error("embedded proto accessors should pass through")
		}
	})
}

func TestWrapperNilSafety(t *testing.T) {
	if NewEventBookW(nil).NextSeq() != 0 {
		t.Error("nil book next sequence should be 0")
	}
	if NewEventBookW(nil).PageWrappers() != nil {
		t.Error("nil book pages should be nil")
	}
	if NewEventBookW(nil).DomainName() != UnknownDomain {
		t.Error("nil book domain should default")
	}
	if NewCommandBookW(nil).CacheKey() == "" {
		t.Error("nil command book should still produce a cache key")
	}
	if NewEventPageW(nil).Seq() != 0 {
		t.Error("nil page sequence should be 0")
	}
	if NewEventPageW(nil).Decode("X", &examples.OrderCreated{}) {
		t.Error("nil page should not decode")
	}
	if NewCoverW(nil).CorrelationID() != "" || NewCoverW(nil).HasCorrelationID() {
		t.Error("nil cover should have no correlation id")
	}
	if _, ok := NewQueryW(nil).RootUUID(); ok {
		t.Error("nil query should have no root")
	}
}

func TestCommandBookWrapper(t *testing.T) {
	book, err := PackCommand(NewCover("payment", ComputeRoot("payment", "order-1"), "corr-2"),
		&examples.ProcessPayment{}, 4)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	w := NewCommandBookW(book)

	if w.DomainName() != "payment" || w.CorrelationID() != "corr-2" {
		t.Error("cover accessors mismatch")
	}
	pages := w.PageWrappers()
	if len(pages) != 1 || pages[0].Seq() != 4 {
		t.Errorf("unexpected pages: %+v", pages)
	}
	if w.CoverWrapper().DomainName() != "payment" {
		t.Error("cover wrapper mismatch")
	}
}

func TestCommandResponseWrapper(t *testing.T) {
	t.Run("with events", func(t *testing.T) {
		resp := &pb.CommandResponse{
			Events: &pb.EventBook{Pages: []*pb.EventPage{
				{Sequence: 3, Event: mustPack(t, &examples.OrderCompleted{})},
			}},
		}
		w := NewCommandResponseW(resp)
		if w.EventsBook() == nil {
			t.Fatal("expected an events book")
		}
		events := w.EventWrappers()
		if len(events) != 1 || events[0].Seq() != 3 {
			t.Errorf("unexpected events: %d", len(events))
		}
	})

	t.Run("without events", func(t *testing.T) {
		w := NewCommandResponseW(&pb.CommandResponse{})
		if w.EventsBook() != nil || w.EventWrappers() != nil {
			t.Error("empty response should yield nils")
		}
	})
}
