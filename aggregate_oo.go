// OO-style aggregate base for rich domain models.
//
// Business logic lives as methods on the aggregate struct, with registration
// calls in the constructor:
//
//   - Handles: command handlers that emit events
//   - Applies: event appliers that mutate state
//
// Example usage:
//
//	type OrderState struct {
//	    OrderID string
//	    Total   int64
//	    Status  string
//	}
//
//	type Order struct {
//	    angzarr.AggregateBase[OrderState]
//	}
//
//	func NewOrder(eventBook *pb.EventBook) *Order {
//	    o := &Order{}
//	    o.Init(eventBook, func() OrderState { return OrderState{} })
//	    o.Applies("OrderCreated", o.applyCreated)
//	    o.Applies("OrderCancelled", o.applyCancelled)
//	    o.Handles("CreateOrder", o.create)
//	    o.Handles("CancelOrder", o.cancel)
//	    return o
//	}
//
//	func (o *Order) create(cmd *examples.CreateOrder) (proto.Message, error) {
//	    if o.Exists() {
//	        return nil, NewCommandRejectedError("order already exists")
//	    }
//	    return &examples.OrderCreated{Items: cmd.Items}, nil
//	}
package angzarr

import (
	"reflect"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

type applierFunc[S any] func(state *S, value []byte)

type handlerFunc func(cmd *anypb.Any) (proto.Message, error)

type multiHandlerFunc func(cmd *anypb.Any) ([]proto.Message, error)

// AggregateBase provides OO-style aggregate infrastructure.
//
// Embed it in an aggregate struct, call Init() in the constructor, then
// register handlers with Handles() and appliers with Applies(). Instantiate
// fresh per request with the prior events.
type AggregateBase[S any] struct {
	prior         *pb.EventBook
	produced      *pb.EventBook
	state         *S
	stateSet      bool
	factory       func() S
	nextSeq       uint64
	handlers      map[string]handlerFunc
	multiHandlers map[string]multiHandlerFunc
	appliers      map[string]applierFunc[S]
	domain        string
}

// Init initializes the base with the prior event book and a state factory.
func (a *AggregateBase[S]) Init(eventBook *pb.EventBook, factory func() S) {
	if eventBook == nil {
		eventBook = &pb.EventBook{}
	}
	a.prior = eventBook
	a.produced = &pb.EventBook{Cover: eventBook.Cover}
	a.factory = factory
	a.nextSeq = NextSequence(eventBook)
	a.handlers = make(map[string]handlerFunc)
	a.multiHandlers = make(map[string]multiHandlerFunc)
	a.appliers = make(map[string]applierFunc[S])
}

// SetDomain sets the aggregate's domain name for descriptor generation.
func (a *AggregateBase[S]) SetDomain(domain string) {
	a.domain = domain
}

// Domain returns the aggregate's domain name.
func (a *AggregateBase[S]) Domain() string {
	return a.domain
}

// Handles registers a command handler for a type_url suffix.
//
// The handler must have signature func(*CommandType) (proto.Message, error).
func (a *AggregateBase[S]) Handles(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 1 {
		panic("handler must have exactly 1 parameter (cmd *CommandType)")
	}
	if handlerType.NumOut() != 2 {
		panic("handler must return (proto.Message, error)")
	}

	cmdPtrType := handlerType.In(0)
	if cmdPtrType.Kind() != reflect.Ptr {
		panic("command parameter must be a pointer")
	}
	cmdType := cmdPtrType.Elem()

	a.handlers[suffix] = func(cmdAny *anypb.Any) (proto.Message, error) {
		cmdPtr := reflect.New(cmdType)
		cmd := cmdPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(cmdAny.Value, cmd); err != nil {
			return nil, InvalidArgumentError("failed to unmarshal command: " + err.Error())
		}

		results := handlerValue.Call([]reflect.Value{cmdPtr})

		var event proto.Message
		if !results[0].IsNil() {
			event = results[0].Interface().(proto.Message)
		}
		var err error
		if !results[1].IsNil() {
			err = results[1].Interface().(error)
		}
		return event, err
	}
}

// HandlesMulti registers a command handler that returns multiple events.
//
// The handler must have signature func(*CommandType) ([]proto.Message, error).
// Use it for commands that produce several events atomically.
func (a *AggregateBase[S]) HandlesMulti(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 1 {
		panic("handler must have exactly 1 parameter (cmd *CommandType)")
	}
	if handlerType.NumOut() != 2 {
		panic("handler must return ([]proto.Message, error)")
	}

	cmdPtrType := handlerType.In(0)
	if cmdPtrType.Kind() != reflect.Ptr {
		panic("command parameter must be a pointer")
	}
	cmdType := cmdPtrType.Elem()

	a.multiHandlers[suffix] = func(cmdAny *anypb.Any) ([]proto.Message, error) {
		cmdPtr := reflect.New(cmdType)
		cmd := cmdPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(cmdAny.Value, cmd); err != nil {
			return nil, InvalidArgumentError("failed to unmarshal command: " + err.Error())
		}

		results := handlerValue.Call([]reflect.Value{cmdPtr})

		var events []proto.Message
		if !results[0].IsNil() {
			slice := results[0]
			events = make([]proto.Message, slice.Len())
			for i := 0; i < slice.Len(); i++ {
				events[i] = slice.Index(i).Interface().(proto.Message)
			}
		}
		var err error
		if !results[1].IsNil() {
			err = results[1].Interface().(error)
		}
		return events, err
	}
}

// Applies registers an event applier for a type_url suffix.
//
// The applier must have signature func(*S, *EventType).
func (a *AggregateBase[S]) Applies(suffix string, applier any) {
	applierValue := reflect.ValueOf(applier)
	applierType := applierValue.Type()

	if applierType.Kind() != reflect.Func {
		panic("applier must be a function")
	}
	if applierType.NumIn() != 2 {
		panic("applier must have exactly 2 parameters (state *S, event *EventType)")
	}

	eventPtrType := applierType.In(1)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	a.appliers[suffix] = func(state *S, value []byte) {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(value, event); err != nil {
			return
		}

		applierValue.Call([]reflect.Value{reflect.ValueOf(state), eventPtr})
	}
}

// State returns the current state, rebuilding from prior events if needed.
func (a *AggregateBase[S]) State() *S {
	if !a.stateSet {
		a.rebuild()
	}
	return a.state
}

// Exists reports whether the aggregate has prior history.
func (a *AggregateBase[S]) Exists() bool {
	return len(a.prior.GetPages()) > 0 || a.prior.GetSnapshot() != nil
}

// EventBook returns the newly produced events for persistence.
func (a *AggregateBase[S]) EventBook() *pb.EventBook {
	return a.produced
}

// Dispatch routes a command to the matching handler.
//
// The resulting events are applied to state and recorded with sequences
// continuing from the prior history.
func (a *AggregateBase[S]) Dispatch(cmdAny *anypb.Any) error {
	if cmdAny == nil || cmdAny.TypeUrl == "" {
		return InvalidArgumentError("empty command payload")
	}

	typeURL := cmdAny.TypeUrl

	for suffix, handler := range a.handlers {
		if strings.HasSuffix(typeURL, suffix) {
			_ = a.State()

			event, err := handler(cmdAny)
			if err != nil {
				return err
			}
			if event != nil {
				if err := a.applyAndRecord(event); err != nil {
					return err
				}
			}
			return nil
		}
	}

	for suffix, handler := range a.multiHandlers {
		if strings.HasSuffix(typeURL, suffix) {
			_ = a.State()

			events, err := handler(cmdAny)
			if err != nil {
				return err
			}
			for _, event := range events {
				if event == nil {
					continue
				}
				if err := a.applyAndRecord(event); err != nil {
					return err
				}
			}
			return nil
		}
	}

	return UnknownTypeError(typeURL)
}

// applyAndRecord packs the event, applies it to state, and appends it to the
// produced book at the next sequence.
func (a *AggregateBase[S]) applyAndRecord(event proto.Message) error {
	eventAny, err := PackPayload(event)
	if err != nil {
		return err
	}

	if a.state != nil {
		a.applyEvent(a.state, eventAny)
	}

	a.produced.Pages = append(a.produced.Pages, &pb.EventPage{
		Sequence:  a.nextSeq,
		Event:     eventAny,
		CreatedAt: packTimestamp(),
	})
	a.nextSeq++
	return nil
}

// applyEvent applies a single event to state using registered appliers.
// Unknown event types are silently skipped.
func (a *AggregateBase[S]) applyEvent(state *S, eventAny *anypb.Any) {
	for suffix, applier := range a.appliers {
		if strings.HasSuffix(eventAny.TypeUrl, suffix) {
			applier(state, eventAny.Value)
			return
		}
	}
}

// rebuild reconstructs state from the prior event book.
func (a *AggregateBase[S]) rebuild() {
	state := a.factory()
	a.state = &state
	a.stateSet = true

	for _, page := range a.prior.GetPages() {
		if event := page.GetEvent(); event != nil {
			a.applyEvent(a.state, event)
		}
	}
}

// HandlerTypes returns the registered command type suffixes.
func (a *AggregateBase[S]) HandlerTypes() []string {
	types := make([]string, 0, len(a.handlers)+len(a.multiHandlers))
	for suffix := range a.handlers {
		types = append(types, suffix)
	}
	for suffix := range a.multiHandlers {
		types = append(types, suffix)
	}
	return types
}

// Handle processes a full ContextualCommand and returns the produced events.
//
// Entry point for gRPC integration; instantiate the aggregate fresh per
// request with the request's prior events.
func (a *AggregateBase[S]) Handle(request *pb.ContextualCommand) (*pb.BusinessResponse, error) {
	if len(request.GetCommand().GetPages()) == 0 {
		return nil, InvalidArgumentError("no command pages")
	}

	cmdAny := request.Command.Pages[0].GetCommand()
	if cmdAny == nil || cmdAny.TypeUrl == "" {
		return nil, InvalidArgumentError("empty command payload")
	}

	if IsNotification(cmdAny.TypeUrl) {
		return DelegateToFramework("no custom compensation registered"), nil
	}

	if err := a.Dispatch(cmdAny); err != nil {
		return nil, err
	}

	return &pb.BusinessResponse{
		Result: &pb.BusinessResponse_Events{Events: a.produced},
	}, nil
}
