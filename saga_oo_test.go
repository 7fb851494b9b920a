package angzarr

import (
	"testing"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

type shipmentSaga struct {
	SagaBase
}

func newShipmentSaga() *shipmentSaga {
	s := &shipmentSaga{}
	s.Init("sag-shipment", "order", "fulfillment")
	s.Prepares("OrderCompleted", s.prepareCompleted)
	s.ReactsTo("OrderCompleted", s.handleCompleted)
	s.ReactsTo("OrderCancelled", s.handleCancelled)
	return s
}

func (s *shipmentSaga) prepareCompleted(event *examples.OrderCompleted) []*pb.Cover {
	return []*pb.Cover{{Domain: "fulfillment", Root: ComputeRootProto("fulfillment", "order-1")}}
}

func (s *shipmentSaga) handleCompleted(event *examples.OrderCompleted, dests []*pb.EventBook) (*pb.CommandBook, error) {
	cover := &pb.Cover{Domain: "fulfillment", Root: ComputeRootProto("fulfillment", "order-1")}
	dest := DestinationFor(dests, "fulfillment", cover.Root)
	return PackCommand(cover, &examples.CreateShipment{Items: event.Items}, ExpectedSequence(dest))
}

// Cancellations need no destination state.
func (s *shipmentSaga) handleCancelled(event *examples.OrderCancelled) (*pb.CommandBook, error) {
	return nil, nil
}

func completedOrderBook(t *testing.T) *pb.EventBook {
	t.Helper()
	return &pb.EventBook{
		Cover: NewCover("order", OrderRoot("order-1"), "corr-1"),
		Pages: []*pb.EventPage{
			{Sequence: 3, Event: mustPack(t, &examples.OrderCompleted{
				Items: []*examples.LineItem{{Sku: "sku-1", Quantity: 2}},
			})},
		},
	}
}

func TestSagaBasePrepare(t *testing.T) {
	saga := newShipmentSaga()

	t.Run("declares destinations for matching events", func(t *testing.T) {
		covers := saga.PrepareDestinations(completedOrderBook(t))
		if len(covers) != 1 || covers[0].Domain != "fulfillment" {
			t.Fatalf("unexpected covers: %+v", covers)
		}
	})

	t.Run("no registration means no destinations", func(t *testing.T) {
		book := &pb.EventBook{Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCreated{})},
		}}
		if saga.PrepareDestinations(book) != nil {
			t.Error("expected nil for unregistered event")
		}
	})

	t.Run("nil and empty sources", func(t *testing.T) {
		if saga.PrepareDestinations(nil) != nil || saga.PrepareDestinations(&pb.EventBook{}) != nil {
			t.Error("expected nil")
		}
	})
}

func TestSagaBaseExecute(t *testing.T) {
	saga := newShipmentSaga()
	source := completedOrderBook(t)

	t.Run("commands carry destination sequence and payload", func(t *testing.T) {
		destinations := []*pb.EventBook{{
			Cover: &pb.Cover{Domain: "fulfillment", Root: ComputeRootProto("fulfillment", "order-1")},
			Pages: []*pb.EventPage{{Sequence: 0}},
		}}

		commands, err := saga.Execute(source, destinations)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if len(commands) != 1 {
			t.Fatalf("expected one command, got %d", len(commands))
		}
		page := commands[0].Pages[0]
		if page.Sequence != 1 {
			t.Errorf("expected destination sequence 1, got %d", page.Sequence)
		}

		var shipment examples.CreateShipment
		if !DecodeEvent(&pb.EventPage{Event: page.Command}, "CreateShipment", &shipment) {
			t.Fatal("expected a CreateShipment command")
		}
		if len(shipment.Items) != 1 || shipment.Items[0].Sku != "sku-1" {
			t.Error("event payload should flow into the command")
		}
	})

	t.Run("correlation id inherited from source", func(t *testing.T) {
		commands, err := saga.Execute(source, nil)
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if commands[0].Cover.CorrelationId != "corr-1" {
			t.Errorf("unexpected correlation id: %q", commands[0].Cover.CorrelationId)
		}
	})

	t.Run("handler returning nil emits nothing", func(t *testing.T) {
		book := &pb.EventBook{
			Cover: NewCover("order", OrderRoot("order-1"), "corr-1"),
			Pages: []*pb.EventPage{
				{Sequence: 4, Event: mustPack(t, &examples.OrderCancelled{})},
			},
		}
		commands, err := saga.Execute(book, nil)
		if err != nil || commands != nil {
			t.Errorf("expected no commands, got %v, %v", commands, err)
		}
	})
}

func TestSagaBaseReactsToMulti(t *testing.T) {
	s := &shipmentSaga{}
	s.Init("sag-fanout", "order", "inventory")
	s.ReactsToMulti("OrderCompleted", func(event *examples.OrderCompleted, dests []*pb.EventBook) ([]*pb.CommandBook, error) {
		var books []*pb.CommandBook
		for _, item := range event.Items {
			cb, err := PackCommand(
				&pb.Cover{Domain: "inventory", Root: ComputeRootProto("inventory", item.Sku)},
				&examples.CreateShipment{}, 0)
			if err != nil {
				return nil, err
			}
			books = append(books, cb)
		}
		return books, nil
	})

	source := &pb.EventBook{
		Cover: NewCover("order", OrderRoot("order-1"), "corr-1"),
		Pages: []*pb.EventPage{
			{Sequence: 0, Event: mustPack(t, &examples.OrderCompleted{
				Items: []*examples.LineItem{{Sku: "a"}, {Sku: "b"}},
			})},
		},
	}

	commands, err := s.Execute(source, nil)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if len(commands) != 2 {
		t.Errorf("expected one command per item, got %d", len(commands))
	}
}

func TestSagaBaseDescriptor(t *testing.T) {
	saga := newShipmentSaga()

	if saga.Name() != "sag-shipment" || saga.InputDomain() != "order" || saga.OutputDomain() != "fulfillment" {
		t.Error("unexpected identity")
	}

	d := saga.Descriptor()
	if d.ComponentType != ComponentSaga || d.Inputs[0].Domain != "order" {
		t.Errorf("unexpected descriptor: %+v", d)
	}
	if len(d.Inputs[0].Types) != 2 {
		t.Errorf("expected both registrations, got %v", d.Inputs[0].Types)
	}
}
