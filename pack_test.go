package angzarr

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func TestPackPayload(t *testing.T) {
	packed, err := PackPayload(&examples.OrderCreated{CustomerId: "cust-1", SubtotalCents: 2500})
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	if packed.TypeUrl != DefaultTypeURLPrefix+"OrderCreated" {
		t.Errorf("unexpected type_url: %s", packed.TypeUrl)
	}

	var decoded examples.OrderCreated
	if err := proto.Unmarshal(packed.Value, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.CustomerId != "cust-1" || decoded.SubtotalCents != 2500 {
		t.Error("payload lost in round trip")
	}
}

func TestPackEvent(t *testing.T) {
	cover := NewCover("order", OrderRoot("order-1"), "corr-1")

	book, err := PackEvent(cover, &examples.OrderCreated{CustomerId: "cust-1"}, 4)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	if book.Cover != cover {
		t.Error("cover should carry through")
	}
	if len(book.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(book.Pages))
	}
	if book.Pages[0].Sequence != 4 {
		t.Errorf("sequence should be honored literally, got %d", book.Pages[0].Sequence)
	}
	if book.Pages[0].CreatedAt == nil {
		t.Error("created_at should be stamped")
	}
}

func TestPackEventsSequential(t *testing.T) {
	cover := NewCover("order", OrderRoot("order-2"), "corr-2")

	book, err := PackEvents(cover, []proto.Message{
		&examples.OrderCreated{},
		&examples.PaymentSubmitted{},
		&examples.OrderCompleted{},
	}, 7)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	if len(book.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(book.Pages))
	}
	for i, page := range book.Pages {
		want := uint64(7 + i)
		if page.Sequence != want {
			t.Errorf("page %d: expected sequence %d, got %d", i, want, page.Sequence)
		}
	}
	if !TypeURLMatches(book.Pages[1].Event.TypeUrl, "PaymentSubmitted") {
		t.Error("pages should be emitted in argument order")
	}
}

func TestPackCommand(t *testing.T) {
	cover := NewCover("payment", ComputeRoot("payment", "order-1"), "corr-3")

	book, err := PackCommand(cover, &examples.ProcessPayment{AmountCents: 1000}, 3)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	if len(book.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(book.Pages))
	}
	if book.Pages[0].Sequence != 3 {
		t.Errorf("expected destination sequence 3, got %d", book.Pages[0].Sequence)
	}
}

func TestSetPackClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	restore := SetPackClock(func() time.Time { return fixed })
	defer restore()

	book, err := PackEvent(nil, &examples.OrderCreated{}, 0)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	if got := book.Pages[0].CreatedAt.AsTime(); !got.Equal(fixed) {
		t.Errorf("expected fixed timestamp, got %v", got)
	}

	restore()
	book2, err := PackEvent(nil, &examples.OrderCreated{}, 0)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	if book2.Pages[0].CreatedAt.AsTime().Equal(fixed) {
		t.Error("restore should reinstate the real clock")
	}
}
