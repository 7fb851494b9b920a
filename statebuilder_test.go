package angzarr

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

type orderState struct {
	Exists        bool
	SubtotalCents int64
	Status        string
}

func orderBuilder() *StateBuilder[orderState] {
	return NewStateBuilder(func() orderState { return orderState{Status: "none"} }).
		On("OrderCreated", func(s *orderState, event *anypb.Any) {
			var e examples.OrderCreated
			if proto.Unmarshal(event.Value, &e) != nil {
				return
			}
			s.Exists = true
			s.SubtotalCents = e.SubtotalCents
			s.Status = "created"
		}).
		On("PaymentSubmitted", func(s *orderState, event *anypb.Any) {
			s.Status = "paid"
		}).
		On("OrderCompleted", func(s *orderState, event *anypb.Any) {
			s.Status = "completed"
		})
}

func mustPack(t *testing.T, msg proto.Message) *anypb.Any {
	t.Helper()
	packed, err := PackPayload(msg)
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}
	return packed
}

func TestStateBuilderRebuild(t *testing.T) {
	builder := orderBuilder()

	t.Run("nil book yields zero state", func(t *testing.T) {
		state := builder.Rebuild(nil)
		if state.Exists || state.Status != "none" {
			t.Errorf("unexpected state: %+v", state)
		}
	})

	t.Run("folds pages in wire order", func(t *testing.T) {
		book := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{SubtotalCents: 2500})},
			{Sequence: 1, Event: mustPack(t, &examples.PaymentSubmitted{AmountCents: 2500})},
			{Sequence: 2, Event: mustPack(t, &examples.OrderCompleted{FinalTotalCents: 2500})},
		}}

		state := builder.Rebuild(book)
		if !state.Exists || state.SubtotalCents != 2500 {
			t.Errorf("creation event not applied: %+v", state)
		}
		if state.Status != "completed" {
			t.Errorf("expected completed, got %s", state.Status)
		}
	})

	t.Run("unknown event types are skipped", func(t *testing.T) {
		book := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{SubtotalCents: 100})},
			{Sequence: 1, Event: &anypb.Any{TypeUrl: "type.examples/examples.FutureEvent"}},
		}}

		state := builder.Rebuild(book)
		if state.Status != "created" {
			t.Errorf("unknown page should not disturb state: %+v", state)
		}
	})

	t.Run("pages with nil event are skipped", func(t *testing.T) {
		book := &pb.EventBook{Pages: []*pb.EventPage{{Sequence: 0}}}
		state := builder.Rebuild(book)
		if state.Exists {
			t.Error("empty page should not be applied")
		}
	})
}

func TestStateBuilderSnapshot(t *testing.T) {
	loader := func(s *orderState, snapshot *anypb.Any) {
		var snap examples.OrderCreated
		if proto.Unmarshal(snapshot.Value, &snap) != nil {
			return
		}
		s.Exists = true
		s.SubtotalCents = snap.SubtotalCents
		s.Status = "created"
	}

	t.Run("snapshot plus tail equals full replay", func(t *testing.T) {
		full := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{SubtotalCents: 900})},
			{Sequence: 1, Event: mustPack(t, &examples.PaymentSubmitted{})},
		}}

		snapshotted := &pb.EventBook{
			Snapshot: &pb.Snapshot{
				State:      mustPack(t, &examples.OrderCreated{SubtotalCents: 900}),
				AtSequence: 0,
			},
			Pages: []*pb.EventPage{
				{Sequence: 1, Event: mustPack(t, &examples.PaymentSubmitted{})},
			},
		}

		fromFull := orderBuilder().Rebuild(full)
		fromSnapshot := orderBuilder().WithSnapshot(loader).Rebuild(snapshotted)
		if fromFull != fromSnapshot {
			t.Errorf("replay divergence: %+v != %+v", fromFull, fromSnapshot)
		}
	})

	t.Run("pages at or below the boundary are skipped", func(t *testing.T) {
		book := &pb.EventBook{
			Snapshot: &pb.Snapshot{
				State:      mustPack(t, &examples.OrderCreated{SubtotalCents: 500}),
				AtSequence: 1,
			},
			Pages: []*pb.EventPage{
				{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{SubtotalCents: 999})},
				{Sequence: 1, Event: mustPack(t, &examples.PaymentSubmitted{})},
				{Sequence: 2, Event: mustPack(t, &examples.OrderCompleted{})},
			},
		}

		state := orderBuilder().WithSnapshot(loader).Rebuild(book)
		if state.SubtotalCents != 500 {
			t.Errorf("overlapping page replayed over snapshot: %+v", state)
		}
		if state.Status != "completed" {
			t.Errorf("tail page not applied: %+v", state)
		}
	})

	t.Run("snapshot ignored without a loader", func(t *testing.T) {
		book := &pb.EventBook{
			Snapshot: &pb.Snapshot{
				State:      mustPack(t, &examples.OrderCreated{SubtotalCents: 500}),
				AtSequence: 0,
			},
		}
		state := orderBuilder().Rebuild(book)
		if state.Exists {
			t.Error("snapshot should be ignored when no loader is configured")
		}
	})
}

func TestStateBuilderApply(t *testing.T) {
	builder := orderBuilder()
	state := builder.Rebuild(nil)

	builder.Apply(&state, mustPack(t, &examples.OrderCreated{SubtotalCents: 42}))
	if !state.Exists || state.SubtotalCents != 42 {
		t.Errorf("apply did not fold event: %+v", state)
	}

	builder.Apply(&state, nil)
	if state.SubtotalCents != 42 {
		t.Error("nil event should be a no-op")
	}
}

func TestStateBuilderWithUpcaster(t *testing.T) {
	upcaster := NewUpcasterRouter("player").
		On("PlayerRegisteredV1", UpcastTyped(&examples.PlayerRegisteredV1{},
			func(old *examples.PlayerRegisteredV1) *examples.PlayerRegistered {
				return &examples.PlayerRegistered{
					DisplayName: old.DisplayName,
					Email:       old.Email,
					AiModelId:   "none",
				}
			}))

	type playerState struct {
		Name  string
		Model string
	}

	builder := NewStateBuilder(func() playerState { return playerState{} }).
		WithUpcaster(upcaster).
		On("PlayerRegistered", func(s *playerState, event *anypb.Any) {
			var e examples.PlayerRegistered
			if proto.Unmarshal(event.Value, &e) != nil {
				return
			}
			s.Name = e.DisplayName
			s.Model = e.AiModelId
		})

	book := &pb.EventBook{Pages: []*pb.EventPage{
		{Sequence: 0, Event: mustPack(t, &examples.PlayerRegisteredV1{DisplayName: "kasparov"})},
	}}

	state := builder.Rebuild(book)
	if state.Name != "kasparov" || state.Model != "none" {
		t.Errorf("old-schema page should be upcast before applying: %+v", state)
	}
}
