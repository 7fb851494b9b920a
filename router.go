// Dispatch routers.
//
// CommandRouter replaces manual switch statements in aggregate handlers.
// EventRouter replaces manual switch statements in saga and process manager
// event handlers. Both auto-derive descriptors from their On() registrations.
package angzarr

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// Component type names published in descriptors.
const (
	ComponentAggregate      = "aggregate"
	ComponentSaga           = "saga"
	ComponentProcessManager = "process_manager"
	ComponentProjector      = "projector"
	ComponentUpcaster       = "upcaster"
)

// CommandHandler handles a command and returns events.
// Parameters:
//   - cb: The full CommandBook
//   - cmd: The packed command Any
//   - state: Rebuilt state from prior events
//   - seq: Next event sequence number
//
// Returns: EventBook containing produced events
type CommandHandler[S any] func(cb *pb.CommandBook, cmd *anypb.Any, state S, seq uint64) (*pb.EventBook, error)

// StateRebuilder reconstructs state from prior events.
type StateRebuilder[S any] func(events *pb.EventBook) S

// RevocationHandler handles compensation requests.
// Called when a coordinator command that this aggregate's events triggered
// was rejected downstream.
//
// Returns a BusinessResponse with either compensation events or a
// RevocationResponse delegating to the framework.
type RevocationHandler[S any] func(notification *pb.Notification, state S) *pb.BusinessResponse

// CommandRouter dispatches commands to handlers by type_url suffix.
//
// Example:
//
//	router := NewCommandRouter("order", rebuildState).
//	    On("CreateOrder", handleCreateOrder).
//	    On("CancelOrder", handleCancelOrder).
//	    OnRejected("payment", "ProcessPayment", handlePaymentRejected)
//
//	// In Handle():
//	response, err := router.Dispatch(request)
type CommandRouter[S any] struct {
	domain            string
	rebuild           StateRebuilder[S]
	handlers          []commandRegistration[S]
	rejectionHandlers map[string]RevocationHandler[S] // key: "domain/command"
}

type commandRegistration[S any] struct {
	suffix  string
	handler CommandHandler[S]
}

// NewCommandRouter creates a new router for the given domain.
func NewCommandRouter[S any](domain string, rebuild StateRebuilder[S]) *CommandRouter[S] {
	return &CommandRouter[S]{
		domain:            domain,
		rebuild:           rebuild,
		handlers:          make([]commandRegistration[S], 0),
		rejectionHandlers: make(map[string]RevocationHandler[S]),
	}
}

// On registers a handler for a command type_url suffix.
//
// Panics when the new suffix would make dispatch ambiguous against an
// existing registration.
func (r *CommandRouter[S]) On(suffix string, handler CommandHandler[S]) *CommandRouter[S] {
	if suffix == "" {
		panic("angzarr: cannot register empty command suffix")
	}
	for _, reg := range r.handlers {
		if strings.HasSuffix(reg.suffix, suffix) || strings.HasSuffix(suffix, reg.suffix) {
			panic(fmt.Sprintf("angzarr: ambiguous command registration: %q collides with %q", suffix, reg.suffix))
		}
	}
	r.handlers = append(r.handlers, commandRegistration[S]{suffix: suffix, handler: handler})
	return r
}

// OnRejected registers a handler for rejected commands.
//
// Called when a coordinator command targeting the specified domain and
// command type is rejected by the target aggregate. The handler decides
// whether to emit compensation events or delegate to the framework.
//
// When no handler matches, revocations delegate to the framework.
func (r *CommandRouter[S]) OnRejected(domain, command string, handler RevocationHandler[S]) *CommandRouter[S] {
	key := domain + "/" + command
	r.rejectionHandlers[key] = handler
	return r
}

// Dispatch routes a ContextualCommand to the matching handler.
//
// Extracts command + prior events, rebuilds state, matches type_url suffix,
// and calls the registered handler. Notification payloads route to the
// rejection handlers instead.
func (r *CommandRouter[S]) Dispatch(cmd *pb.ContextualCommand) (*pb.BusinessResponse, error) {
	if cmd == nil || cmd.Command == nil {
		return nil, InvalidArgumentError("missing command book")
	}
	commandBook := cmd.Command
	priorEvents := cmd.Events

	state := r.rebuild(priorEvents)
	seq := NextSequence(priorEvents)

	if len(commandBook.Pages) == 0 {
		return nil, InvalidArgumentError("no command pages")
	}

	commandAny := commandBook.Pages[0].GetCommand()
	if commandAny == nil || commandAny.TypeUrl == "" {
		return nil, InvalidArgumentError("empty command payload")
	}

	typeURL := commandAny.TypeUrl

	if IsNotification(typeURL) {
		notification := &pb.Notification{}
		if err := proto.Unmarshal(commandAny.Value, notification); err != nil {
			return nil, InvalidArgumentError("failed to unmarshal Notification: " + err.Error())
		}
		return r.dispatchRejection(notification, state)
	}

	for _, reg := range r.handlers {
		if strings.HasSuffix(typeURL, reg.suffix) {
			events, err := reg.handler(commandBook, commandAny, state, seq)
			if err != nil {
				return nil, err
			}
			return &pb.BusinessResponse{
				Result: &pb.BusinessResponse_Events{Events: events},
			}, nil
		}
	}

	return nil, UnknownTypeError(typeURL)
}

// dispatchRejection routes a rejection Notification to the matching handler.
func (r *CommandRouter[S]) dispatchRejection(notification *pb.Notification, state S) (*pb.BusinessResponse, error) {
	rejection := &pb.RejectionNotification{}
	if notification.Payload != nil {
		if err := proto.Unmarshal(notification.Payload.Value, rejection); err != nil {
			return nil, InvalidArgumentError("failed to unmarshal RejectionNotification: " + err.Error())
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
	if handler, ok := r.rejectionHandlers[key]; ok {
		return handler(notification, state), nil
	}

	return DelegateToFramework(
		fmt.Sprintf("aggregate %s has no custom compensation for %s", r.domain, key),
	), nil
}

// HasRejectionHandler reports whether custom compensation is registered for
// the given rejected domain/command pair.
func (r *CommandRouter[S]) HasRejectionHandler(domain, command string) bool {
	_, ok := r.rejectionHandlers[domain+"/"+command]
	return ok
}

// RebuildState reconstructs state from an EventBook using the registered
// rebuilder.
func (r *CommandRouter[S]) RebuildState(events *pb.EventBook) S {
	return r.rebuild(events)
}

// CommandTypes returns the registered command suffixes in registration order.
func (r *CommandRouter[S]) CommandTypes() []string {
	types := make([]string, len(r.handlers))
	for i, reg := range r.handlers {
		types[i] = reg.suffix
	}
	return types
}

// Descriptor derives the component descriptor from registrations.
func (r *CommandRouter[S]) Descriptor() *pb.ComponentDescriptor {
	return &pb.ComponentDescriptor{
		Name:          r.domain,
		ComponentType: ComponentAggregate,
		Inputs: []*pb.Target{{
			Domain: r.domain,
			Types:  r.CommandTypes(),
		}},
	}
}

// EventHandler handles an event and returns commands for other aggregates.
// Parameters:
//   - source: The source EventBook
//   - event: The event Any from the EventPage
//   - destinations: EventBooks for destinations declared in Prepare
//
// Returns: List of CommandBooks to execute on other aggregates
type EventHandler func(source *pb.EventBook, event *anypb.Any, destinations []*pb.EventBook) ([]*pb.CommandBook, error)

// PrepareHandler declares which destinations are needed for an event type.
type PrepareHandler func(source *pb.EventBook, event *anypb.Any) []*pb.Cover

// EventRouter dispatches events to handlers by type_url suffix.
// Unified router for sagas, process managers, and projectors.
// Uses the fluent .Domain().Prepare().On() pattern to register handlers with
// domain context.
//
// Example (saga, single domain):
//
//	router := NewEventRouter("sag-fulfillment").
//	    Domain("order").
//	    Prepare("OrderCompleted", prepareShipment).
//	    On("OrderCompleted", handleCompleted)
//
// Example (process manager, multi-domain):
//
//	router := NewEventRouter("pmg-order-flow").
//	    Domain("order").
//	    On("OrderCreated", handleCreated).
//	    Domain("inventory").
//	    On("StockReserved", handleReserved)
type EventRouter struct {
	name            string
	currentDomain   string
	domainOrder     []string
	handlers        map[string][]eventRegistration
	prepareHandlers map[string][]prepareRegistration
}

type eventRegistration struct {
	suffix  string
	handler EventHandler
}

type prepareRegistration struct {
	suffix  string
	handler PrepareHandler
}

// NewEventRouter creates a new router for the given component name.
// For single-domain routers an optional inputDomain may be passed as the
// second argument; multi-domain routers use Domain() instead.
func NewEventRouter(name string, inputDomain ...string) *EventRouter {
	router := &EventRouter{
		name:            name,
		handlers:        make(map[string][]eventRegistration),
		prepareHandlers: make(map[string][]prepareRegistration),
	}
	if len(inputDomain) > 0 && inputDomain[0] != "" {
		router.Domain(inputDomain[0])
	}
	return router
}

// Domain sets the current domain context for subsequent registrations.
func (r *EventRouter) Domain(name string) *EventRouter {
	r.currentDomain = name
	if _, ok := r.handlers[name]; !ok {
		r.domainOrder = append(r.domainOrder, name)
		r.handlers[name] = make([]eventRegistration, 0)
		r.prepareHandlers[name] = make([]prepareRegistration, 0)
	}
	return r
}

// Prepare registers a prepare handler for an event type_url suffix.
// The prepare handler declares which destinations are needed before Execute.
// Must be called after Domain() to set context.
func (r *EventRouter) Prepare(suffix string, handler PrepareHandler) *EventRouter {
	if r.currentDomain == "" {
		panic("angzarr: must call Domain() before Prepare()")
	}
	r.prepareHandlers[r.currentDomain] = append(
		r.prepareHandlers[r.currentDomain],
		prepareRegistration{suffix: suffix, handler: handler},
	)
	return r
}

// On registers a handler for an event type_url suffix in the current domain.
// Must be called after Domain() to set context.
func (r *EventRouter) On(suffix string, handler EventHandler) *EventRouter {
	if r.currentDomain == "" {
		panic("angzarr: must call Domain() before On()")
	}
	for _, reg := range r.handlers[r.currentDomain] {
		if strings.HasSuffix(reg.suffix, suffix) || strings.HasSuffix(suffix, reg.suffix) {
			panic(fmt.Sprintf("angzarr: ambiguous event registration: %q collides with %q", suffix, reg.suffix))
		}
	}
	r.handlers[r.currentDomain] = append(
		r.handlers[r.currentDomain],
		eventRegistration{suffix: suffix, handler: handler},
	)
	return r
}

// OnEvent registers a handler that does not need destination context.
func (r *EventRouter) OnEvent(suffix string, handler func(source *pb.EventBook, event *anypb.Any) ([]*pb.CommandBook, error)) *EventRouter {
	return r.On(suffix, func(source *pb.EventBook, event *anypb.Any, _ []*pb.EventBook) ([]*pb.CommandBook, error) {
		return handler(source, event)
	})
}

// Subscriptions auto-derives subscriptions from registered handlers.
// Returns domain -> event type suffixes.
func (r *EventRouter) Subscriptions() map[string][]string {
	result := make(map[string][]string)
	for domain, handlers := range r.handlers {
		if len(handlers) > 0 {
			types := make([]string, len(handlers))
			for i, reg := range handlers {
				types[i] = reg.suffix
			}
			result[domain] = types
		}
	}
	return result
}

// Descriptor derives the component descriptor from registrations.
func (r *EventRouter) Descriptor(componentType string) *pb.ComponentDescriptor {
	inputs := make([]*pb.Target, 0, len(r.domainOrder))
	for _, domain := range r.domainOrder {
		handlers := r.handlers[domain]
		if len(handlers) == 0 {
			continue
		}
		types := make([]string, len(handlers))
		for i, reg := range handlers {
			types[i] = reg.suffix
		}
		inputs = append(inputs, &pb.Target{Domain: domain, Types: types})
	}
	return &pb.ComponentDescriptor{
		Name:          r.name,
		ComponentType: componentType,
		Inputs:        inputs,
	}
}

// PrepareDestinations returns the destination covers needed for the given
// source. Routes based on source domain and the last event page.
func (r *EventRouter) PrepareDestinations(source *pb.EventBook) []*pb.Cover {
	if source == nil || len(source.Pages) == 0 {
		return nil
	}

	domainHandlers, ok := r.prepareHandlers[Domain(source)]
	if !ok {
		return nil
	}

	page := source.Pages[len(source.Pages)-1]
	event := page.GetEvent()
	if event == nil {
		return nil
	}

	for _, reg := range domainHandlers {
		if strings.HasSuffix(event.TypeUrl, reg.suffix) {
			return reg.handler(source, event)
		}
	}
	return nil
}

// Dispatch routes all events in an EventBook to registered handlers.
//
// Emitted CommandBooks inherit the source's correlation_id when the handler
// did not set one, so chains stay traceable end to end.
func (r *EventRouter) Dispatch(source *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, error) {
	if source == nil {
		return nil, nil
	}

	domainHandlers, ok := r.handlers[Domain(source)]
	if !ok {
		return nil, nil
	}

	var commands []*pb.CommandBook
	for _, page := range source.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		for _, reg := range domainHandlers {
			if strings.HasSuffix(event.TypeUrl, reg.suffix) {
				cmds, err := reg.handler(source, event, destinations)
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

// Name returns the component name.
func (r *EventRouter) Name() string {
	return r.name
}
