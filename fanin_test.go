package angzarr

import (
	"testing"

	"google.golang.org/protobuf/proto"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

func fulfillmentFanIn() *FanIn {
	return NewFanIn("pmg-fulfillment", "order-fulfillment").
		Require("payment", "inventory", "packing").
		Classify("PaymentSubmitted", "payment").
		Classify("StockReserved", "inventory").
		Classify("ItemsPacked", "packing").
		OnComplete(func(trigger *pb.EventBook, completed []string, destinations []*pb.EventBook) ([]*pb.CommandBook, error) {
			cb, err := PackCommand(
				&pb.Cover{Domain: "fulfillment", Root: UUIDToProto(FulfillmentRoot("order-1"))},
				&examples.Ship{Carrier: "ups"}, 0)
			if err != nil {
				return nil, err
			}
			return []*pb.CommandBook{cb}, nil
		})
}

func fanInTrigger(t *testing.T, domain string, event proto.Message, correlationID string) *pb.EventBook {
	t.Helper()
	return &pb.EventBook{
		Cover: &pb.Cover{Domain: domain, Root: ComputeRootProto(domain, "order-1"), CorrelationId: correlationID},
		Pages: []*pb.EventPage{{Sequence: 0, Event: mustPack(t, event)}},
	}
}

func TestFanInProgress(t *testing.T) {
	fanIn := fulfillmentFanIn()

	trigger := fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, "corr-1")
	commands, processEvents, err := fanIn.Handle(trigger, nil, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	t.Run("first prerequisite records a marker and no dispatch", func(t *testing.T) {
		if commands != nil {
			t.Error("incomplete set should not dispatch")
		}
		if processEvents == nil || len(processEvents.Pages) != 1 {
			t.Fatal("expected one progress marker page")
		}

		var marker pb.PrerequisiteCompleted
		if err := proto.Unmarshal(processEvents.Pages[0].Event.Value, &marker); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if marker.Prerequisite != "payment" {
			t.Errorf("unexpected prerequisite: %s", marker.Prerequisite)
		}
		if len(marker.Remaining) != 2 {
			t.Errorf("expected 2 remaining, got %v", marker.Remaining)
		}
	})

	t.Run("process log keyed by correlation-derived root", func(t *testing.T) {
		if processEvents.Cover.Domain != "order-fulfillment" {
			t.Errorf("unexpected process domain: %s", processEvents.Cover.Domain)
		}
		want := UUIDToProto(ProcessRootForCorrelation("corr-1"))
		if !SameRoot(processEvents.Cover.Root, want) {
			t.Error("process root should derive from the correlation id")
		}
		if processEvents.Cover.CorrelationId != "corr-1" {
			t.Error("correlation id should stamp the process cover")
		}
	})
}

// accumulate replays processEvents back into the state book the way the
// gateway would between deliveries.
func accumulate(state, processEvents *pb.EventBook) *pb.EventBook {
	if processEvents == nil {
		return state
	}
	if state == nil {
		return processEvents
	}
	return &pb.EventBook{
		Cover: processEvents.Cover,
		Pages: append(append([]*pb.EventPage(nil), state.Pages...), processEvents.Pages...),
	}
}

func TestFanInCompletesExactlyOnce(t *testing.T) {
	fanIn := fulfillmentFanIn()

	var state *pb.EventBook

	_, events, err := fanIn.Handle(fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, "corr-2"), state, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	state = accumulate(state, events)

	_, events, err = fanIn.Handle(fanInTrigger(t, "inventory", &examples.StockReserved{}, "corr-2"), state, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	state = accumulate(state, events)

	commands, events, err := fanIn.Handle(fanInTrigger(t, "fulfillment", &examples.ItemsPacked{}, "corr-2"), state, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	t.Run("last prerequisite fires the dispatch", func(t *testing.T) {
		if len(commands) != 1 {
			t.Fatalf("expected one command, got %d", len(commands))
		}
		if !TypeURLMatches(commands[0].Pages[0].Command.TypeUrl, "Ship") {
			t.Errorf("unexpected command: %s", commands[0].Pages[0].Command.TypeUrl)
		}
		if commands[0].Cover.CorrelationId != "corr-2" {
			t.Error("dispatch should inherit the correlation id")
		}
	})

	t.Run("terminal marker follows the progress marker", func(t *testing.T) {
		if len(events.Pages) != 2 {
			t.Fatalf("expected progress + terminal pages, got %d", len(events.Pages))
		}
		if !TypeURLMatches(events.Pages[1].Event.TypeUrl, "DispatchIssued") {
			t.Errorf("unexpected terminal page: %s", events.Pages[1].Event.TypeUrl)
		}
		if events.Pages[1].Sequence != events.Pages[0].Sequence+1 {
			t.Error("terminal page should follow the progress page")
		}
	})

	state = accumulate(state, events)

	t.Run("post-dispatch triggers are ignored", func(t *testing.T) {
		commands, events, err := fanIn.Handle(fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, "corr-2"), state, nil)
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if commands != nil || events != nil {
			t.Error("dispatched process should ignore further triggers")
		}
	})
}

func TestFanInMultiplePrerequisitesInOneTrigger(t *testing.T) {
	fanIn := fulfillmentFanIn()

	trigger := &pb.EventBook{
		Cover: &pb.Cover{Domain: "payment", Root: ComputeRootProto("payment", "order-1"), CorrelationId: "corr-6"},
		Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.PaymentSubmitted{})},
			{Sequence: 1, Event: mustPack(t, &examples.StockReserved{})},
		},
	}

	commands, events, err := fanIn.Handle(trigger, nil, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	t.Run("one marker page per new prerequisite", func(t *testing.T) {
		if commands != nil {
			t.Error("incomplete set should not dispatch")
		}
		if events == nil || len(events.Pages) != 2 {
			t.Fatalf("expected two marker pages, got %+v", events)
		}
		for i, want := range []string{"payment", "inventory"} {
			var marker pb.PrerequisiteCompleted
			if err := proto.Unmarshal(events.Pages[i].Event.Value, &marker); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if marker.Prerequisite != want {
				t.Errorf("page %d: expected prerequisite %q, got %q", i, want, marker.Prerequisite)
			}
			if events.Pages[i].Sequence != uint64(i) {
				t.Errorf("page %d: expected sequence %d, got %d", i, i, events.Pages[i].Sequence)
			}
		}
	})

	t.Run("replayed markers keep both prerequisites", func(t *testing.T) {
		commands, events, err := fanIn.Handle(fanInTrigger(t, "fulfillment", &examples.ItemsPacked{}, "corr-6"), events, nil)
		if err != nil {
			t.Fatalf("handle failed: %v", err)
		}
		if len(commands) != 1 {
			t.Fatalf("expected the dispatch to fire, got %d commands", len(commands))
		}
		if len(events.Pages) != 2 || !TypeURLMatches(events.Pages[1].Event.TypeUrl, "DispatchIssued") {
			t.Fatalf("expected progress + terminal pages, got %+v", events)
		}
		if events.Pages[0].Sequence != 2 || events.Pages[1].Sequence != 3 {
			t.Errorf("expected sequences 2,3, got %d,%d", events.Pages[0].Sequence, events.Pages[1].Sequence)
		}
	})
}

func TestFanInDuplicateTrigger(t *testing.T) {
	fanIn := fulfillmentFanIn()

	var state *pb.EventBook
	_, events, err := fanIn.Handle(fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, "corr-3"), state, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	state = accumulate(state, events)

	commands, events, err := fanIn.Handle(fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, "corr-3"), state, nil)
	if err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if commands != nil || events != nil {
		t.Error("redelivered prerequisite should be a no-op")
	}
}

func TestFanInIgnoresUnclassifiedAndUncorrelated(t *testing.T) {
	fanIn := fulfillmentFanIn()

	t.Run("unclassified event", func(t *testing.T) {
		commands, events, err := fanIn.Handle(fanInTrigger(t, "order", &examples.OrderCreated{}, "corr-4"), nil, nil)
		if err != nil || commands != nil || events != nil {
			t.Error("unclassified trigger should produce nothing")
		}
	})

	t.Run("missing correlation id", func(t *testing.T) {
		commands, events, err := fanIn.Handle(fanInTrigger(t, "payment", &examples.PaymentSubmitted{}, ""), nil, nil)
		if err != nil || commands != nil || events != nil {
			t.Error("uncorrelated trigger should produce nothing")
		}
	})
}

func TestFanInDescriptorSurface(t *testing.T) {
	fanIn := fulfillmentFanIn()

	if fanIn.Name() != "pmg-fulfillment" || fanIn.ProcessDomain() != "order-fulfillment" {
		t.Error("unexpected identity")
	}
	subs := fanIn.Subscriptions()
	if len(subs) != 3 || subs[0] != "PaymentSubmitted" {
		t.Errorf("unexpected subscriptions: %v", subs)
	}
	if fanIn.PrepareDestinations(nil, nil) != nil {
		t.Error("no prepare hook should yield nil destinations")
	}

	fanIn.WithPrepare(func(trigger, processState *pb.EventBook) []*pb.Cover {
		return []*pb.Cover{{Domain: "fulfillment"}}
	})
	if covers := fanIn.PrepareDestinations(nil, nil); len(covers) != 1 {
		t.Error("prepare hook should pass covers through")
	}
}
