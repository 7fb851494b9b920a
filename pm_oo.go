// OO-style process manager base for multi-domain orchestration.
//
// Process managers correlate events across multiple domains, managing state
// machines that span domain boundaries. Unlike sagas (stateless), process
// managers maintain state in their own event log.
//
// Two-phase protocol support:
//   - Prepares: declare destination aggregates needed for an event
//   - Handles: process events given trigger + state + destinations
//
// State reconstruction:
//   - Applies: rebuild process state from the process EventBook
//
// Example usage:
//
//	type FulfillmentPM struct {
//	    angzarr.ProcessManagerBase[*FulfillmentState]
//	}
//
//	func NewFulfillmentPM() *FulfillmentPM {
//	    pm := &FulfillmentPM{}
//	    pm.Init("pm-fulfillment", "fulfillment-flow", []string{"order", "payment"})
//	    pm.WithStateFactory(func() *FulfillmentState { return &FulfillmentState{} })
//	    pm.Applies("FlowStarted", pm.applyFlowStarted)
//	    pm.Prepares("OrderCompleted", pm.prepareCompleted)
//	    pm.Handles("OrderCompleted", pm.handleCompleted)
//	    return pm
//	}
package angzarr

import (
	"reflect"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

type pmPrepareOOFunc[S any] func(trigger *pb.EventBook, state S, eventAny *anypb.Any) []*pb.Cover

type pmHandlerOOFunc[S any] func(trigger *pb.EventBook, state S, eventAny *anypb.Any, dests []*pb.EventBook) ([]*pb.CommandBook, *pb.EventBook, error)

type pmApplierOOFunc[S any] func(state S, eventAny *anypb.Any)

// PMRejectionHandler produces the compensation response for a rejected
// command the process manager issued.
type PMRejectionHandler[S any] func(state S, notification *pb.Notification) *PMRevocationResponse

// ProcessManagerBase provides OO-style process manager infrastructure.
//
// Embed it in a process manager struct, call Init() in the constructor, then
// register handlers with Prepares(), Handles(), and Applies().
//
// Type parameter S is the process state type, normally a pointer type.
type ProcessManagerBase[S any] struct {
	name         string
	pmDomain     string
	inputDomains []string
	stateFactory func() S
	prepares     map[string]pmPrepareOOFunc[S]
	handlers     map[string]pmHandlerOOFunc[S]
	appliers     map[string]pmApplierOOFunc[S]
	rejections   map[string]PMRejectionHandler[S]
}

// Init initializes the process manager base with name and domain
// configuration. pmDomain is the domain of the process manager's own event
// log; inputDomains are the domains it subscribes to.
func (pm *ProcessManagerBase[S]) Init(name, pmDomain string, inputDomains []string) {
	pm.name = name
	pm.pmDomain = pmDomain
	pm.inputDomains = inputDomains
	pm.prepares = make(map[string]pmPrepareOOFunc[S])
	pm.handlers = make(map[string]pmHandlerOOFunc[S])
	pm.appliers = make(map[string]pmApplierOOFunc[S])
	pm.rejections = make(map[string]PMRejectionHandler[S])
}

// WithStateFactory sets the factory for new state instances. Required when S
// is a pointer type, otherwise RebuildState applies events to a nil state.
func (pm *ProcessManagerBase[S]) WithStateFactory(factory func() S) {
	pm.stateFactory = factory
}

// Name returns the process manager's name.
func (pm *ProcessManagerBase[S]) Name() string {
	return pm.name
}

// PMDomain returns the domain of the process manager's own event log.
func (pm *ProcessManagerBase[S]) PMDomain() string {
	return pm.pmDomain
}

// InputDomains returns the domains this process manager subscribes to.
func (pm *ProcessManagerBase[S]) InputDomains() []string {
	return pm.inputDomains
}

// Prepares registers a prepare handler for an event type_url suffix.
//
// The handler must have signature
// func(trigger *pb.EventBook, state S, event *EventType) []*pb.Cover.
func (pm *ProcessManagerBase[S]) Prepares(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 3 {
		panic("handler must have 3 parameters (trigger *pb.EventBook, state S, event *EventType)")
	}
	if handlerType.NumOut() != 1 {
		panic("handler must return []*pb.Cover")
	}

	eventPtrType := handlerType.In(2)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	pm.prepares[suffix] = func(trigger *pb.EventBook, state S, eventAny *anypb.Any) []*pb.Cover {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(eventAny.Value, event); err != nil {
			return nil
		}

		results := handlerValue.Call([]reflect.Value{
			reflect.ValueOf(trigger), reflect.ValueOf(state), eventPtr,
		})
		if results[0].IsNil() {
			return nil
		}
		return results[0].Interface().([]*pb.Cover)
	}
}

// Handles registers an event handler for a type_url suffix.
//
// Two signatures are accepted:
//
//  1. func(trigger, state, event) ([]*pb.CommandBook, *pb.EventBook, error)
//  2. func(trigger, state, event, dests) ([]*pb.CommandBook, *pb.EventBook, error)
//
// The second form receives the destination state declared in Prepares. The
// returned EventBook pages are appended to the process manager's own log.
func (pm *ProcessManagerBase[S]) Handles(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}

	numIn := handlerType.NumIn()
	if numIn < 3 || numIn > 4 {
		panic("handler must have 3-4 parameters (trigger, state, event [, dests])")
	}
	if handlerType.NumOut() != 3 {
		panic("handler must return ([]*pb.CommandBook, *pb.EventBook, error)")
	}

	eventPtrType := handlerType.In(2)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	withDests := numIn == 4

	pm.handlers[suffix] = func(trigger *pb.EventBook, state S, eventAny *anypb.Any, dests []*pb.EventBook) ([]*pb.CommandBook, *pb.EventBook, error) {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(eventAny.Value, event); err != nil {
			return nil, nil, InvalidArgumentError("failed to unmarshal event: " + err.Error())
		}

		args := []reflect.Value{reflect.ValueOf(trigger), reflect.ValueOf(state), eventPtr}
		if withDests {
			args = append(args, reflect.ValueOf(dests))
		}
		results := handlerValue.Call(args)

		var cmds []*pb.CommandBook
		if !results[0].IsNil() {
			cmds = results[0].Interface().([]*pb.CommandBook)
		}
		var pmEvents *pb.EventBook
		if !results[1].IsNil() {
			pmEvents = results[1].Interface().(*pb.EventBook)
		}
		var err error
		if !results[2].IsNil() {
			err = results[2].Interface().(error)
		}
		return cmds, pmEvents, err
	}
}

// Applies registers a state applier for a process event type_url suffix.
//
// The handler must have signature func(state S, event *EventType) and mutate
// state in place.
func (pm *ProcessManagerBase[S]) Applies(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 2 {
		panic("handler must have 2 parameters (state S, event *EventType)")
	}
	if handlerType.NumOut() != 0 {
		panic("handler must not return anything (mutates state in place)")
	}

	eventPtrType := handlerType.In(1)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	pm.appliers[suffix] = func(state S, eventAny *anypb.Any) {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(eventAny.Value, event); err != nil {
			return
		}

		handlerValue.Call([]reflect.Value{reflect.ValueOf(state), eventPtr})
	}
}

// OnRejected registers a compensation handler for when a command this
// process manager issued to the given domain is rejected.
func (pm *ProcessManagerBase[S]) OnRejected(domain, command string, handler PMRejectionHandler[S]) {
	pm.rejections[domain+"/"+command] = handler
}

// RebuildState reconstructs process state from the process EventBook.
func (pm *ProcessManagerBase[S]) RebuildState(processState *pb.EventBook) S {
	var state S
	if pm.stateFactory != nil {
		state = pm.stateFactory()
	}

	if processState == nil || len(processState.Pages) == 0 {
		return state
	}

	for _, page := range processState.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		for suffix, applier := range pm.appliers {
			if strings.HasSuffix(event.TypeUrl, suffix) {
				applier(state, event)
				break
			}
		}
	}
	return state
}

// PrepareDestinations returns the destination covers needed for the trigger.
// Phase 1 of the two-phase protocol.
func (pm *ProcessManagerBase[S]) PrepareDestinations(trigger, processState *pb.EventBook) []*pb.Cover {
	if trigger == nil || len(trigger.Pages) == 0 {
		return nil
	}

	state := pm.RebuildState(processState)

	var covers []*pb.Cover
	for _, page := range trigger.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		for suffix, handler := range pm.prepares {
			if strings.HasSuffix(event.TypeUrl, suffix) {
				covers = append(covers, handler(trigger, state, event)...)
				break
			}
		}
	}
	return covers
}

// Handle processes the trigger and returns commands plus process events.
// Phase 2 of the two-phase protocol. Emitted CommandBooks inherit the
// trigger's correlation_id when the handler did not set one.
func (pm *ProcessManagerBase[S]) Handle(trigger, processState *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, *pb.EventBook, error) {
	if trigger == nil || len(trigger.Pages) == 0 {
		return nil, nil, nil
	}

	state := pm.RebuildState(processState)

	var commands []*pb.CommandBook
	var pmPages []*pb.EventPage

	for _, page := range trigger.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		for suffix, handler := range pm.handlers {
			if strings.HasSuffix(event.TypeUrl, suffix) {
				cmds, pmEvents, err := handler(trigger, state, event, destinations)
				if err != nil {
					return nil, nil, err
				}
				commands = append(commands, cmds...)
				if pmEvents != nil {
					pmPages = append(pmPages, pmEvents.Pages...)
				}
				break
			}
		}
	}

	correlationID := CorrelationID(trigger)
	if correlationID != "" {
		for _, cb := range commands {
			if cb.Cover != nil && cb.Cover.CorrelationId == "" {
				cb.Cover.CorrelationId = correlationID
			}
		}
	}

	var processEvents *pb.EventBook
	if len(pmPages) > 0 {
		processEvents = &pb.EventBook{Pages: pmPages}
	}
	return commands, processEvents, nil
}

// HandleRevocation routes a rejection Notification to the matching
// compensation handler. Without one the framework handles the revocation.
func (pm *ProcessManagerBase[S]) HandleRevocation(notification *pb.Notification, processState *pb.EventBook) *PMRevocationResponse {
	rejection := &pb.RejectionNotification{}
	if notification.GetPayload() != nil {
		if err := proto.Unmarshal(notification.Payload.Value, rejection); err != nil {
			return PMDelegateToFramework("process manager " + pm.name + ": malformed rejection payload")
		}
	}

	var domain, cmdSuffix string
	if rejection.RejectedCommand != nil && len(rejection.RejectedCommand.Pages) > 0 {
		domain = rejection.RejectedCommand.GetCover().GetDomain()
		if cmd := rejection.RejectedCommand.Pages[0].GetCommand(); cmd != nil {
			cmdSuffix = ShortName(cmd.TypeUrl)
		}
	}

	key := domain + "/" + cmdSuffix
	if handler, ok := pm.rejections[key]; ok {
		state := pm.RebuildState(processState)
		return handler(state, notification)
	}
	return PMDelegateToFramework("process manager " + pm.name + " has no custom compensation for " + key)
}

// HandlerTypes returns the registered event type suffixes.
func (pm *ProcessManagerBase[S]) HandlerTypes() []string {
	types := make([]string, 0, len(pm.handlers))
	for suffix := range pm.handlers {
		types = append(types, suffix)
	}
	return types
}

// Handler builds a gRPC ProcessManagerHandler backed by this base.
func (pm *ProcessManagerBase[S]) Handler() *ProcessManagerHandler {
	handler := NewProcessManagerHandler(pm.name).
		WithPrepare(pm.PrepareDestinations).
		WithHandle(pm.Handle).
		WithRevocationHandler(pm.HandleRevocation)
	for _, domain := range pm.inputDomains {
		handler.ListenTo(domain, pm.HandlerTypes()...)
	}
	return handler
}

// RunOOProcessManagerServer runs a gRPC process manager server backed by an
// OO-style process manager base.
func RunOOProcessManagerServer[S any](name, defaultPort string, pm *ProcessManagerBase[S]) error {
	return RunProcessManagerServer(name, defaultPort, pm.Handler())
}
