package features

import (
	"errors"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	angzarr "github.com/angzarr-io/angzarr-go"
	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
	"github.com/angzarr-io/angzarr-go/proto/examples"
)

// orderState is the aggregate state shared by the scenarios.
type orderState struct {
	Exists        bool
	SubtotalCents int64
	Status        string
}

func newOrderBuilder() *angzarr.StateBuilder[orderState] {
	return angzarr.NewStateBuilder(func() orderState { return orderState{Status: "none"} }).
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

func newOrderRouter() *angzarr.CommandRouter[orderState] {
	return angzarr.NewCommandRouter("order", newOrderBuilder().RebuildFunc()).
		On("CreateOrder", func(cb *pb.CommandBook, cmd *anypb.Any, state orderState, seq uint64) (*pb.EventBook, error) {
			if state.Exists {
				return nil, angzarr.NewCommandRejectedError("order already exists")
			}
			var create examples.CreateOrder
			if err := proto.Unmarshal(cmd.Value, &create); err != nil {
				return nil, angzarr.InvalidArgumentError(err.Error())
			}
			var subtotal int64
			for _, item := range create.Items {
				subtotal += item.Quantity * item.UnitPriceCents
			}
			return angzarr.PackEvent(cb.Cover, &examples.OrderCreated{
				CustomerId:    create.CustomerId,
				Items:         create.Items,
				SubtotalCents: subtotal,
			}, seq)
		}).
		On("CancelOrder", func(cb *pb.CommandBook, cmd *anypb.Any, state orderState, seq uint64) (*pb.EventBook, error) {
			if !state.Exists {
				return nil, angzarr.NewCommandRejectedError("order does not exist")
			}
			return angzarr.PackEvent(cb.Cover, &examples.OrderCancelled{}, seq)
		})
}

func commandByName(name string) proto.Message {
	switch name {
	case "CreateOrder":
		return &examples.CreateOrder{}
	case "CancelOrder":
		return &examples.CancelOrder{}
	case "Ship":
		return &examples.Ship{}
	default:
		return nil
	}
}

// CommandContext holds state for command scenarios.
type CommandContext struct {
	Domain       string
	Key          string
	BuiltCommand *pb.CommandBook
	BuildError   error

	Router   *angzarr.CommandRouter[orderState]
	Prior    *pb.EventBook
	Response *pb.BusinessResponse
	Err      error
}

// InitCommandSteps registers command lifecycle step definitions.
func InitCommandSteps(ctx *godog.ScenarioContext) {
	cc := &CommandContext{}

	ctx.Step(`^I build a "([^"]*)" command for domain "([^"]*)" with key "([^"]*)"$`, cc.whenBuildWithKey)
	ctx.Step(`^I build a command for domain "([^"]*)" without a payload$`, cc.whenBuildWithoutPayload)
	ctx.Step(`^the command domain is "([^"]*)"$`, cc.thenDomainIs)
	ctx.Step(`^the command root matches the key derivation$`, cc.thenRootDerived)
	ctx.Step(`^the command carries a generated correlation id$`, cc.thenCorrelationGenerated)
	ctx.Step(`^building fails with an invalid argument error$`, cc.thenBuildFailsInvalid)

	ctx.Step(`^an order aggregate with no history$`, cc.givenFreshAggregate)
	ctx.Step(`^an order aggregate that was already created$`, cc.givenCreatedAggregate)
	ctx.Step(`^I dispatch a "([^"]*)" command$`, cc.whenDispatch)
	ctx.Step(`^I dispatch a "CreateOrder" command for (\d+) units priced at (\d+) cents$`, cc.whenDispatchCreateWithItems)
	ctx.Step(`^one "([^"]*)" event is produced at sequence (\d+)$`, cc.thenEventProduced)
	ctx.Step(`^the created order subtotal is (\d+) cents$`, cc.thenSubtotalCents)
	ctx.Step(`^the command is rejected with reason "([^"]*)"$`, cc.thenRejectedWithReason)
	ctx.Step(`^dispatch fails for an unknown type$`, cc.thenUnknownType)
}

func (c *CommandContext) whenBuildWithKey(command, domain, key string) error {
	c.Domain = domain
	c.Key = key
	msg := commandByName(command)
	if msg == nil {
		return fmt.Errorf("unknown command %q", command)
	}
	c.BuiltCommand, c.BuildError = angzarr.NewCommandBuilderNew(nil, domain).
		ForKey(key).
		WithCommand(msg).
		Build()
	return c.BuildError
}

func (c *CommandContext) whenBuildWithoutPayload(domain string) error {
	c.BuiltCommand, c.BuildError = angzarr.NewCommandBuilderNew(nil, domain).Build()
	return nil
}

func (c *CommandContext) thenDomainIs(expected string) error {
	if got := angzarr.Domain(c.BuiltCommand); got != expected {
		return fmt.Errorf("expected domain %q, got %q", expected, got)
	}
	return nil
}

func (c *CommandContext) thenRootDerived() error {
	expected := angzarr.ComputeRoot(c.Domain, c.Key)
	got, ok := angzarr.RootUUID(c.BuiltCommand)
	if !ok || got != expected {
		return fmt.Errorf("root %s does not match derivation %s", got, expected)
	}
	return nil
}

func (c *CommandContext) thenCorrelationGenerated() error {
	id := angzarr.CorrelationID(c.BuiltCommand)
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("correlation id %q is not a uuid", id)
	}
	return nil
}

func (c *CommandContext) thenBuildFailsInvalid() error {
	ce := angzarr.AsClientError(c.BuildError)
	if ce == nil || ce.Kind != angzarr.ErrInvalidArgument {
		return fmt.Errorf("expected invalid argument, got %v", c.BuildError)
	}
	return nil
}

func (c *CommandContext) givenFreshAggregate() error {
	c.Router = newOrderRouter()
	c.Prior = nil
	return nil
}

func (c *CommandContext) givenCreatedAggregate() error {
	c.Router = newOrderRouter()
	created, err := angzarr.PackPayload(&examples.OrderCreated{})
	if err != nil {
		return err
	}
	c.Prior = &pb.EventBook{Pages: []*pb.EventPage{{Sequence: 0, Event: created}}}
	return nil
}

func (c *CommandContext) whenDispatch(command string) error {
	msg := commandByName(command)
	if msg == nil {
		return fmt.Errorf("unknown command %q", command)
	}
	cover := angzarr.NewCover("order", angzarr.OrderRoot("order-1"), "corr-feature")
	book, err := angzarr.PackCommand(cover, msg, angzarr.NextSequence(c.Prior))
	if err != nil {
		return err
	}
	c.Response, c.Err = c.Router.Dispatch(&pb.ContextualCommand{Command: book, Events: c.Prior})
	return nil
}

func (c *CommandContext) whenDispatchCreateWithItems(quantity, priceCents int) error {
	cover := angzarr.NewCover("order", angzarr.OrderRoot("order-1"), "corr-feature")
	create := &examples.CreateOrder{
		CustomerId: "c1",
		Items: []*examples.LineItem{{
			Sku:            "s1",
			Quantity:       int64(quantity),
			UnitPriceCents: int64(priceCents),
		}},
	}
	book, err := angzarr.PackCommand(cover, create, angzarr.NextSequence(c.Prior))
	if err != nil {
		return err
	}
	c.Response, c.Err = c.Router.Dispatch(&pb.ContextualCommand{Command: book, Events: c.Prior})
	return nil
}

func (c *CommandContext) thenSubtotalCents(expected int) error {
	if c.Err != nil {
		return fmt.Errorf("dispatch failed: %w", c.Err)
	}
	var created examples.OrderCreated
	if err := proto.Unmarshal(c.Response.GetEvents().Pages[0].Event.Value, &created); err != nil {
		return err
	}
	if created.SubtotalCents != int64(expected) {
		return fmt.Errorf("expected subtotal %d, got %d", expected, created.SubtotalCents)
	}
	return nil
}

func (c *CommandContext) thenEventProduced(eventType string, seq int) error {
	if c.Err != nil {
		return fmt.Errorf("dispatch failed: %w", c.Err)
	}
	events := c.Response.GetEvents()
	if events == nil || len(events.Pages) != 1 {
		return fmt.Errorf("expected exactly one event page")
	}
	page := events.Pages[0]
	if !angzarr.TypeURLMatches(page.Event.TypeUrl, eventType) {
		return fmt.Errorf("expected %s, got %s", eventType, page.Event.TypeUrl)
	}
	if page.Sequence != uint64(seq) {
		return fmt.Errorf("expected sequence %d, got %d", seq, page.Sequence)
	}
	return nil
}

func (c *CommandContext) thenRejectedWithReason(reason string) error {
	var rejected angzarr.CommandRejectedError
	if !errors.As(c.Err, &rejected) {
		return fmt.Errorf("expected a rejection, got %v", c.Err)
	}
	if rejected.Message != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, rejected.Message)
	}
	return nil
}

func (c *CommandContext) thenUnknownType() error {
	ce := angzarr.AsClientError(c.Err)
	if ce == nil || ce.Kind != angzarr.ErrUnknownType {
		return fmt.Errorf("expected unknown type error, got %v", c.Err)
	}
	return nil
}
