package features

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	angzarr "github.com/angzarr-io/angzarr-go"
	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func eventByName(name string) proto.Message {
	switch name {
	case "OrderCreated":
		return &examples.OrderCreated{}
	case "PaymentSubmitted":
		return &examples.PaymentSubmitted{}
	case "OrderCompleted":
		return &examples.OrderCompleted{}
	case "OrderCancelled":
		return &examples.OrderCancelled{}
	default:
		return nil
	}
}

// StateContext holds state for rebuild scenarios.
type StateContext struct {
	Book        *pb.EventBook
	State       orderState
	PlayerBook  *pb.EventBook
	PlayerModel string
}

// InitStateSteps registers state rebuilding step definitions.
func InitStateSteps(ctx *godog.ScenarioContext) {
	sc := &StateContext{}

	ctx.Step(`^an order history with events:$`, sc.givenHistory)
	ctx.Step(`^an order snapshot at sequence (\d+) with subtotal (\d+)$`, sc.givenSnapshot)
	ctx.Step(`^a tail event "([^"]*)" at sequence (\d+)$`, sc.givenTailEvent)
	ctx.Step(`^the history contains an unrecognized event at sequence (\d+)$`, sc.givenUnrecognizedEvent)
	ctx.Step(`^I rebuild the order state$`, sc.whenRebuild)
	ctx.Step(`^the order status is "([^"]*)"$`, sc.thenStatusIs)
	ctx.Step(`^the order subtotal is (\d+)$`, sc.thenSubtotalIs)
	ctx.Step(`^the next sequence is (\d+)$`, sc.thenNextSequenceIs)

	ctx.Step(`^a player history with a "PlayerRegisteredV1" event$`, sc.givenOldPlayerEvent)
	ctx.Step(`^I rebuild the player state through the upcaster$`, sc.whenRebuildPlayer)
	ctx.Step(`^the player model id is "([^"]*)"$`, sc.thenPlayerModelIs)
}

func (s *StateContext) givenHistory(table *godog.Table) error {
	s.Book = &pb.EventBook{}
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		msg := eventByName(row.Cells[0].Value)
		if msg == nil {
			return fmt.Errorf("unknown event %q", row.Cells[0].Value)
		}
		seq, err := strconv.ParseUint(row.Cells[1].Value, 10, 64)
		if err != nil {
			return err
		}
		packed, err := angzarr.PackPayload(msg)
		if err != nil {
			return err
		}
		s.Book.Pages = append(s.Book.Pages, &pb.EventPage{Sequence: seq, Event: packed})
	}
	return nil
}

func (s *StateContext) givenSnapshot(seq, subtotal int) error {
	state, err := angzarr.PackPayload(&examples.OrderCreated{SubtotalCents: int64(subtotal)})
	if err != nil {
		return err
	}
	s.Book = &pb.EventBook{
		Snapshot: &pb.Snapshot{State: state, AtSequence: uint64(seq)},
	}
	return nil
}

func (s *StateContext) givenTailEvent(eventType string, seq int) error {
	msg := eventByName(eventType)
	if msg == nil {
		return fmt.Errorf("unknown event %q", eventType)
	}
	packed, err := angzarr.PackPayload(msg)
	if err != nil {
		return err
	}
	s.Book.Pages = append(s.Book.Pages, &pb.EventPage{Sequence: uint64(seq), Event: packed})
	return nil
}

func (s *StateContext) givenUnrecognizedEvent(seq int) error {
	s.Book.Pages = append(s.Book.Pages, &pb.EventPage{
		Sequence: uint64(seq),
		Event:    &anypb.Any{TypeUrl: "type.examples/examples.FutureEvent"},
	})
	return nil
}

func (s *StateContext) whenRebuild() error {
	builder := newOrderBuilder().
		WithSnapshot(func(state *orderState, snapshot *anypb.Any) {
			var snap examples.OrderCreated
			if proto.Unmarshal(snapshot.Value, &snap) != nil {
				return
			}
			state.Exists = true
			state.SubtotalCents = snap.SubtotalCents
			state.Status = "created"
		})
	s.State = builder.Rebuild(s.Book)
	return nil
}

func (s *StateContext) thenStatusIs(expected string) error {
	if s.State.Status != expected {
		return fmt.Errorf("expected status %q, got %q", expected, s.State.Status)
	}
	return nil
}

func (s *StateContext) thenSubtotalIs(expected int) error {
	if s.State.SubtotalCents != int64(expected) {
		return fmt.Errorf("expected subtotal %d, got %d", expected, s.State.SubtotalCents)
	}
	return nil
}

func (s *StateContext) thenNextSequenceIs(expected int) error {
	if got := angzarr.NextSequence(s.Book); got != uint64(expected) {
		return fmt.Errorf("expected next sequence %d, got %d", expected, got)
	}
	return nil
}

func (s *StateContext) givenOldPlayerEvent() error {
	packed, err := angzarr.PackPayload(&examples.PlayerRegisteredV1{DisplayName: "tal"})
	if err != nil {
		return err
	}
	s.PlayerBook = &pb.EventBook{Pages: []*pb.EventPage{{Sequence: 0, Event: packed}}}
	return nil
}

func (s *StateContext) whenRebuildPlayer() error {
	upcaster := angzarr.NewUpcasterRouter("player").
		On("PlayerRegisteredV1", angzarr.UpcastTyped(&examples.PlayerRegisteredV1{},
			func(old *examples.PlayerRegisteredV1) *examples.PlayerRegistered {
				return &examples.PlayerRegistered{
					DisplayName: old.DisplayName,
					Email:       old.Email,
					AiModelId:   "none",
				}
			}))

	type playerState struct{ Model string }
	builder := angzarr.NewStateBuilder(func() playerState { return playerState{} }).
		WithUpcaster(upcaster).
		On("PlayerRegistered", func(state *playerState, event *anypb.Any) {
			var e examples.PlayerRegistered
			if proto.Unmarshal(event.Value, &e) != nil {
				return
			}
			state.Model = e.AiModelId
		})

	s.PlayerModel = builder.Rebuild(s.PlayerBook).Model
	return nil
}

func (s *StateContext) thenPlayerModelIs(expected string) error {
	if s.PlayerModel != expected {
		return fmt.Errorf("expected model %q, got %q", expected, s.PlayerModel)
	}
	return nil
}
