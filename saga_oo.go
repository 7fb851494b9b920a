// OO-style saga base for event-driven command production.
//
// Sagas translate events from one domain into commands for another. They are
// stateless; each event is processed independently.
//
// Two-phase protocol support:
//   - Prepares: declare destination aggregates needed before Execute
//   - ReactsTo: produce commands given source event + destination state
//
// Example usage:
//
//	type OrderFulfillmentSaga struct {
//	    angzarr.SagaBase
//	}
//
//	func NewOrderFulfillmentSaga() *OrderFulfillmentSaga {
//	    s := &OrderFulfillmentSaga{}
//	    s.Init("sag-order-fulfillment", "order", "fulfillment")
//	    s.Prepares("OrderCompleted", s.prepareCompleted)
//	    s.ReactsTo("OrderCompleted", s.handleCompleted)
//	    return s
//	}
//
//	func (s *OrderFulfillmentSaga) handleCompleted(
//	    event *examples.OrderCompleted,
//	    dests []*pb.EventBook,
//	) (*pb.CommandBook, error) {
//	    destSeq := NextSequence(dests[0])
//	    // build CreateShipment with expected sequence destSeq
//	    return cmdBook, nil
//	}
package angzarr

import (
	"reflect"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

type prepareOOFunc func(eventAny *anypb.Any) []*pb.Cover

type handlerOOFunc func(eventAny *anypb.Any, dests []*pb.EventBook) ([]*pb.CommandBook, error)

// SagaBase provides OO-style saga infrastructure.
//
// Embed it in a saga struct, call Init() in the constructor, then register
// handlers with Prepares() and ReactsTo().
type SagaBase struct {
	name         string
	inputDomain  string
	outputDomain string
	prepares     map[string]prepareOOFunc
	handlers     map[string]handlerOOFunc
}

// Init initializes the saga base with name and domain configuration.
func (s *SagaBase) Init(name, inputDomain, outputDomain string) {
	s.name = name
	s.inputDomain = inputDomain
	s.outputDomain = outputDomain
	s.prepares = make(map[string]prepareOOFunc)
	s.handlers = make(map[string]handlerOOFunc)
}

// Name returns the saga's name.
func (s *SagaBase) Name() string {
	return s.name
}

// InputDomain returns the domain this saga listens to.
func (s *SagaBase) InputDomain() string {
	return s.inputDomain
}

// OutputDomain returns the domain this saga sends commands to.
func (s *SagaBase) OutputDomain() string {
	return s.outputDomain
}

// Prepares registers a prepare handler for an event type_url suffix.
//
// The handler must have signature func(*EventType) []*pb.Cover.
func (s *SagaBase) Prepares(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 1 {
		panic("handler must have exactly 1 parameter (event *EventType)")
	}
	if handlerType.NumOut() != 1 {
		panic("handler must return []*pb.Cover")
	}

	eventPtrType := handlerType.In(0)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	s.prepares[suffix] = func(eventAny *anypb.Any) []*pb.Cover {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(eventAny.Value, event); err != nil {
			return nil
		}

		results := handlerValue.Call([]reflect.Value{eventPtr})
		if results[0].IsNil() {
			return nil
		}
		return results[0].Interface().([]*pb.Cover)
	}
}

// ReactsTo registers an event handler for a type_url suffix.
//
// Two signatures are accepted:
//
//  1. func(*EventType) (*pb.CommandBook, error)
//  2. func(*EventType, []*pb.EventBook) (*pb.CommandBook, error)
//
// The second form receives the destination state declared in Prepares, which
// carries the sequence numbers needed for optimistic concurrency.
func (s *SagaBase) ReactsTo(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}

	numIn := handlerType.NumIn()
	if numIn < 1 || numIn > 2 {
		panic("handler must have 1-2 parameters (event *EventType [, dests []*pb.EventBook])")
	}
	if handlerType.NumOut() != 2 {
		panic("handler must return (*pb.CommandBook, error)")
	}

	eventPtrType := handlerType.In(0)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	withDests := numIn == 2

	s.handlers[suffix] = func(eventAny *anypb.Any, dests []*pb.EventBook) ([]*pb.CommandBook, error) {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(eventAny.Value, event); err != nil {
			return nil, InvalidArgumentError("failed to unmarshal event: " + err.Error())
		}

		var results []reflect.Value
		if withDests {
			results = handlerValue.Call([]reflect.Value{eventPtr, reflect.ValueOf(dests)})
		} else {
			results = handlerValue.Call([]reflect.Value{eventPtr})
		}

		var cmdBook *pb.CommandBook
		if !results[0].IsNil() {
			cmdBook = results[0].Interface().(*pb.CommandBook)
		}
		var err error
		if !results[1].IsNil() {
			err = results[1].Interface().(error)
		}

		if cmdBook != nil {
			return []*pb.CommandBook{cmdBook}, err
		}
		return nil, err
	}
}

// ReactsToMulti registers an event handler that returns multiple commands.
//
// The handler must have signature
// func(*EventType, []*pb.EventBook) ([]*pb.CommandBook, error).
// Use it for fanning out to multiple aggregates.
func (s *SagaBase) ReactsToMulti(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 2 {
		panic("handler must have 2 parameters (event *EventType, dests []*pb.EventBook)")
	}
	if handlerType.NumOut() != 2 {
		panic("handler must return ([]*pb.CommandBook, error)")
	}

	eventPtrType := handlerType.In(0)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	s.handlers[suffix] = func(eventAny *anypb.Any, dests []*pb.EventBook) ([]*pb.CommandBook, error) {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(eventAny.Value, event); err != nil {
			return nil, InvalidArgumentError("failed to unmarshal event: " + err.Error())
		}

		results := handlerValue.Call([]reflect.Value{eventPtr, reflect.ValueOf(dests)})

		var cmdBooks []*pb.CommandBook
		if !results[0].IsNil() {
			cmdBooks = results[0].Interface().([]*pb.CommandBook)
		}
		var err error
		if !results[1].IsNil() {
			err = results[1].Interface().(error)
		}
		return cmdBooks, err
	}
}

// PrepareDestinations returns the destination covers needed for the source.
// Phase 1 of the two-phase protocol.
func (s *SagaBase) PrepareDestinations(source *pb.EventBook) []*pb.Cover {
	if source == nil || len(source.Pages) == 0 {
		return nil
	}

	var covers []*pb.Cover
	for _, page := range source.Pages {
		if page.Event == nil {
			continue
		}
		for suffix, handler := range s.prepares {
			if strings.HasSuffix(page.Event.TypeUrl, suffix) {
				covers = append(covers, handler(page.Event)...)
				break
			}
		}
	}
	return covers
}

// Execute processes source events and returns commands for other aggregates.
// Phase 2 of the two-phase protocol. Emitted CommandBooks inherit the
// source's correlation_id when the handler did not set one.
func (s *SagaBase) Execute(source *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, error) {
	if source == nil || len(source.Pages) == 0 {
		return nil, nil
	}

	var commands []*pb.CommandBook
	for _, page := range source.Pages {
		if page.Event == nil {
			continue
		}
		for suffix, handler := range s.handlers {
			if strings.HasSuffix(page.Event.TypeUrl, suffix) {
				cmds, err := handler(page.Event, destinations)
				if err != nil {
					return nil, err
				}
				commands = append(commands, cmds...)
				break
			}
		}
	}

	correlationID := CorrelationID(source)
	if correlationID != "" {
		for _, cb := range commands {
			if cb.Cover != nil && cb.Cover.CorrelationId == "" {
				cb.Cover.CorrelationId = correlationID
			}
		}
	}
	return commands, nil
}

// HandlerTypes returns the registered event type suffixes.
func (s *SagaBase) HandlerTypes() []string {
	types := make([]string, 0, len(s.handlers))
	for suffix := range s.handlers {
		types = append(types, suffix)
	}
	return types
}

// Descriptor builds a ComponentDescriptor from registered handlers.
func (s *SagaBase) Descriptor() *pb.ComponentDescriptor {
	return &pb.ComponentDescriptor{
		Name:          s.name,
		ComponentType: ComponentSaga,
		Inputs: []*pb.Target{{
			Domain: s.inputDomain,
			Types:  s.HandlerTypes(),
		}},
	}
}
