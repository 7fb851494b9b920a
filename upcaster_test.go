package angzarr

import (
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func registeredV1Upcaster() *UpcasterRouter {
	return NewUpcasterRouter("player").
		On("PlayerRegisteredV1", UpcastTyped(&examples.PlayerRegisteredV1{},
			func(old *examples.PlayerRegisteredV1) *examples.PlayerRegistered {
				return &examples.PlayerRegistered{
					DisplayName: old.DisplayName,
					Email:       old.Email,
					AiModelId:   "none",
				}
			}))
}

func TestUpcastOne(t *testing.T) {
	router := registeredV1Upcaster()

	t.Run("transforms old version to current", func(t *testing.T) {
		old := mustPack(t, &examples.PlayerRegisteredV1{DisplayName: "fischer", Email: "bobby@example.com"})

		upcasted := router.UpcastOne(old)
		if !TypeURLMatches(upcasted.TypeUrl, "PlayerRegistered") || TypeURLMatches(upcasted.TypeUrl, "V1") {
			t.Fatalf("unexpected type_url: %s", upcasted.TypeUrl)
		}

		var current examples.PlayerRegistered
		if err := proto.Unmarshal(upcasted.Value, &current); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if current.DisplayName != "fischer" || current.Email != "bobby@example.com" {
			t.Error("fields lost in upcast")
		}
		if current.AiModelId != "none" {
			t.Errorf("new field should be defaulted, got %q", current.AiModelId)
		}
	})

	t.Run("unmatched events pass through untouched", func(t *testing.T) {
		event := mustPack(t, &examples.OrderCreated{CustomerId: "cust-1"})
		if got := router.UpcastOne(event); got != event {
			t.Error("expected the same Any back")
		}
	})

	t.Run("nil passes through", func(t *testing.T) {
		if router.UpcastOne(nil) != nil {
			t.Error("expected nil")
		}
	})
}

func TestUpcastChaining(t *testing.T) {
	// v1 renames to v2 which renames to the current name; both hops must run.
	router := NewUpcasterRouter("player").
		On("RegisteredV1", func(old *anypb.Any) *anypb.Any {
			return &anypb.Any{TypeUrl: "type.examples/examples.RegisteredV2", Value: old.Value}
		}).
		On("RegisteredV2", func(old *anypb.Any) *anypb.Any {
			return &anypb.Any{TypeUrl: "type.examples/examples.Registered", Value: old.Value}
		})

	got := router.UpcastOne(&anypb.Any{TypeUrl: "type.examples/examples.RegisteredV1"})
	if got.TypeUrl != "type.examples/examples.Registered" {
		t.Errorf("chain did not reach fixed point: %s", got.TypeUrl)
	}
}

func TestUpcastCycleGuard(t *testing.T) {
	router := NewUpcasterRouter("player").
		On("PingEvent", func(old *anypb.Any) *anypb.Any {
			return &anypb.Any{TypeUrl: "type.examples/examples.PongEvent"}
		}).
		On("PongEvent", func(old *anypb.Any) *anypb.Any {
			return &anypb.Any{TypeUrl: "type.examples/examples.PingEvent"}
		})

	original := &anypb.Any{TypeUrl: "type.examples/examples.PingEvent"}
	if got := router.UpcastOne(original); got != original {
		t.Error("cyclic registrations should pass the original through")
	}
}

func TestUpcastPages(t *testing.T) {
	router := registeredV1Upcaster()
	createdAt := timestamppb.New(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	pages := []*pb.EventPage{
		{Sequence: 0, Event: mustPack(t, &examples.PlayerRegisteredV1{DisplayName: "tal"}), CreatedAt: createdAt},
		{Sequence: 1, Event: mustPack(t, &examples.OrderCreated{})},
		{Sequence: 2},
	}

	result := router.Upcast(pages)
	if len(result) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(result))
	}

	t.Run("payload replaced, metadata preserved", func(t *testing.T) {
		if !TypeURLMatches(result[0].Event.TypeUrl, "PlayerRegistered") {
			t.Errorf("page not upcast: %s", result[0].Event.TypeUrl)
		}
		if result[0].Sequence != 0 || !result[0].CreatedAt.AsTime().Equal(createdAt.AsTime()) {
			t.Error("page metadata should carry over")
		}
	})

	t.Run("input pages never mutated", func(t *testing.T) {
		if !TypeURLMatches(pages[0].Event.TypeUrl, "PlayerRegisteredV1") {
			t.Error("original page was mutated")
		}
	})

	t.Run("unmatched and empty pages pass through", func(t *testing.T) {
		if result[1] != pages[1] || result[2] != pages[2] {
			t.Error("untouched pages should be returned as-is")
		}
	})
}

func TestUpcastBook(t *testing.T) {
	router := registeredV1Upcaster()

	if router.UpcastBook(nil) != nil {
		t.Fatal("nil book should yield nil")
	}

	cover := NewCover("player", ComputeRoot("player", "tal"), "corr-1")
	book := &pb.EventBook{
		Cover:        cover,
		NextSequence: 5,
		Pages: []*pb.EventPage{
			{Sequence: 4, Event: mustPack(t, &examples.PlayerRegisteredV1{DisplayName: "tal"})},
		},
	}

	got := router.UpcastBook(book)
	if got.Cover != cover || got.NextSequence != 5 {
		t.Error("cover and next_sequence should carry over")
	}
	if !TypeURLMatches(got.Pages[0].Event.TypeUrl, "PlayerRegistered") {
		t.Error("page should be upcast")
	}
}

func TestUpcastTypedDecodeFailure(t *testing.T) {
	router := NewUpcasterRouter("player").
		On("PlayerRegisteredV1", UpcastTyped(&examples.PlayerRegisteredV1{},
			func(old *examples.PlayerRegisteredV1) *examples.PlayerRegistered {
				return &examples.PlayerRegistered{DisplayName: old.DisplayName}
			}))

	// Garbage bytes that cannot decode as the old message.
	bad := &anypb.Any{
		TypeUrl: "type.examples/examples.PlayerRegisteredV1",
		Value:   []byte{0xff, 0xff, 0xff},
	}
	if got := router.UpcastOne(bad); got != bad {
		t.Error("undecodable payload should pass through unchanged")
	}
}
