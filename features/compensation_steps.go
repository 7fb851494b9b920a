package features

import (
	"fmt"

	"github.com/cucumber/godog"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	angzarr "github.com/angzarr-io/angzarr-go"
	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

// CompensationContext holds state for rejection handling scenarios.
type CompensationContext struct {
	Router   *angzarr.CommandRouter[orderState]
	Prior    *pb.EventBook
	Response *pb.BusinessResponse
	Err      error
}

// InitCompensationSteps registers compensation step definitions.
func InitCompensationSteps(ctx *godog.ScenarioContext) {
	cc := &CompensationContext{}

	ctx.Step(`^an order aggregate with compensation for rejected "ProcessPayment" commands$`, cc.givenCompensatingAggregate)
	ctx.Step(`^a "([^"]*)" command for domain "([^"]*)" is rejected with "([^"]*)"$`, cc.whenRejected)
	ctx.Step(`^a compensation event "([^"]*)" is emitted with reason "([^"]*)"$`, cc.thenCompensationEvent)
	ctx.Step(`^a system revocation is requested$`, cc.thenSystemRevocation)
}

func (c *CompensationContext) givenCompensatingAggregate() error {
	c.Router = newOrderRouter().
		OnRejected("payment", "ProcessPayment", func(notification *pb.Notification, state orderState) *pb.BusinessResponse {
			cctx := angzarr.NewCompensationContext(notification)
			cancelled, err := angzarr.PackEvent(
				cctx.SourceAggregate,
				&examples.OrderCancelled{Reason: cctx.RejectionReason},
				angzarr.NextSequence(c.Prior),
			)
			if err != nil {
				return angzarr.DelegateToFramework(err.Error())
			}
			return angzarr.EmitCompensationEvents(cancelled)
		})

	created, err := angzarr.PackPayload(&examples.OrderCreated{})
	if err != nil {
		return err
	}
	c.Prior = &pb.EventBook{Pages: []*pb.EventPage{{Sequence: 0, Event: created}}}
	return nil
}

func (c *CompensationContext) whenRejected(command, domain, reason string) error {
	var msg proto.Message
	switch command {
	case "ProcessPayment":
		msg = &examples.ProcessPayment{}
	case "CreateShipment":
		msg = &examples.CreateShipment{}
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	sourceCover := angzarr.NewCover("order", angzarr.OrderRoot("order-1"), "corr-comp")
	rejectedCover := angzarr.NewCover(domain, angzarr.ComputeRoot(domain, "order-1"), "corr-comp")
	rejected, err := angzarr.PackCommand(rejectedCover, msg, 0)
	if err != nil {
		return err
	}

	notification, err := angzarr.NewRejectionNotification(
		"sag-"+domain, "ComponentSaga", 1, reason, rejected, sourceCover)
	if err != nil {
		return err
	}
	notificationAny, err := anypb.New(notification)
	if err != nil {
		return err
	}

	book := &pb.CommandBook{
		Cover: sourceCover,
		Pages: []*pb.CommandPage{{Command: notificationAny}},
	}
	c.Response, c.Err = c.Router.Dispatch(&pb.ContextualCommand{Command: book, Events: c.Prior})
	return c.Err
}

func (c *CompensationContext) thenCompensationEvent(eventType, reason string) error {
	events := c.Response.GetEvents()
	if events == nil || len(events.Pages) == 0 {
		return fmt.Errorf("expected compensation events, got %v", c.Response)
	}
	page := events.Pages[0]
	if !angzarr.TypeURLMatches(page.Event.TypeUrl, eventType) {
		return fmt.Errorf("expected %s, got %s", eventType, page.Event.TypeUrl)
	}
	var cancelled examples.OrderCancelled
	if err := proto.Unmarshal(page.Event.Value, &cancelled); err != nil {
		return err
	}
	if cancelled.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, cancelled.Reason)
	}
	return nil
}

func (c *CompensationContext) thenSystemRevocation() error {
	revocation := c.Response.GetRevocation()
	if revocation == nil {
		return fmt.Errorf("expected a revocation, got %v", c.Response)
	}
	if !revocation.EmitSystemRevocation {
		return fmt.Errorf("expected a system revocation request")
	}
	return nil
}
