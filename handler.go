// gRPC servicers wrapping routers and handle functions.
//
// Each handler maps domain errors to gRPC status codes via MapHandlerError:
// rejected commands become FAILED_PRECONDITION, malformed books become
// INVALID_ARGUMENT, sequence conflicts become ABORTED.
package angzarr

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// AggregateHandler wraps a CommandRouter for the gRPC Aggregate service.
type AggregateHandler[S any] struct {
	pb.UnimplementedAggregateServiceServer
	router *CommandRouter[S]
}

// NewAggregateHandler creates a new aggregate handler with the given router.
func NewAggregateHandler[S any](router *CommandRouter[S]) *AggregateHandler[S] {
	return &AggregateHandler[S]{router: router}
}

// GetDescriptor returns the component descriptor for topology discovery.
func (h *AggregateHandler[S]) GetDescriptor(ctx context.Context, req *pb.GetDescriptorRequest) (*pb.ComponentDescriptor, error) {
	return h.router.Descriptor(), nil
}

// Handle processes a contextual command asynchronously.
func (h *AggregateHandler[S]) Handle(ctx context.Context, req *pb.ContextualCommand) (*pb.BusinessResponse, error) {
	return h.dispatch(req)
}

// HandleSync processes a contextual command synchronously. The caller blocks
// until downstream synchronous consumers have observed the produced events;
// business logic is identical to Handle.
func (h *AggregateHandler[S]) HandleSync(ctx context.Context, req *pb.ContextualCommand) (*pb.BusinessResponse, error) {
	return h.dispatch(req)
}

// HandleRevocation answers whether this aggregate takes over compensation
// for a rejected flow. Stateful compensation itself arrives through Handle
// as a Notification command.
func (h *AggregateHandler[S]) HandleRevocation(ctx context.Context, req *pb.Notification) (*pb.RevocationResponse, error) {
	cctx := NewCompensationContext(req)
	domain := cctx.RejectedCommand.GetCover().GetDomain()
	command := cctx.RejectedCommandName()
	if h.router.HasRejectionHandler(domain, command) {
		return &pb.RevocationResponse{
			Reason: "custom compensation registered for " + domain + "/" + command,
		}, nil
	}
	return &pb.RevocationResponse{
		EmitSystemRevocation: true,
		Reason:               "no custom compensation for " + domain + "/" + command,
	}, nil
}

func (h *AggregateHandler[S]) dispatch(req *pb.ContextualCommand) (*pb.BusinessResponse, error) {
	resp, err := h.router.Dispatch(req)
	if err != nil {
		return nil, MapHandlerError(err)
	}
	return resp, nil
}

// Descriptor returns the router's component descriptor.
func (h *AggregateHandler[S]) Descriptor() *pb.ComponentDescriptor {
	return h.router.Descriptor()
}

// RegisterAggregateHandler returns a ServiceRegistrar for an aggregate router.
func RegisterAggregateHandler[S any](router *CommandRouter[S]) ServiceRegistrar {
	return func(server *grpc.Server) {
		pb.RegisterAggregateServiceServer(server, NewAggregateHandler(router))
	}
}

// RunAggregateServer starts a gRPC server for an aggregate.
func RunAggregateServer[S any](domain, defaultPort string, router *CommandRouter[S]) error {
	return RunServer(RegisterAggregateHandler(router), ServerOptions{
		ServiceName: "Aggregate",
		Domain:      domain,
		DefaultPort: defaultPort,
	})
}

// SagaPrepareFunc examines source events and returns the destination covers
// the saga needs. Return nil for no action.
type SagaPrepareFunc func(source *pb.EventBook) []*pb.Cover

// SagaExecuteFunc processes source events with destination state and returns
// commands.
type SagaExecuteFunc func(source *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, error)

// SagaHandler implements the gRPC Saga service over an EventRouter.
//
// Simple mode (default): Execute delegates to router.Dispatch and Prepare
// answers with the router's prepare registrations. Sagas that need full
// control of the two-phase protocol override with WithPrepare/WithExecute.
type SagaHandler struct {
	pb.UnimplementedSagaServiceServer
	router  *EventRouter
	prepare SagaPrepareFunc
	execute SagaExecuteFunc
}

// NewSagaHandler creates a saga handler backed by an EventRouter.
func NewSagaHandler(router *EventRouter) *SagaHandler {
	return &SagaHandler{router: router}
}

// WithPrepare overrides the router-derived prepare behavior.
func (h *SagaHandler) WithPrepare(fn SagaPrepareFunc) *SagaHandler {
	h.prepare = fn
	return h
}

// WithExecute overrides the router dispatch execute behavior.
func (h *SagaHandler) WithExecute(fn SagaExecuteFunc) *SagaHandler {
	h.execute = fn
	return h
}

// GetDescriptor returns the component descriptor for topology discovery.
func (h *SagaHandler) GetDescriptor(ctx context.Context, req *pb.GetDescriptorRequest) (*pb.ComponentDescriptor, error) {
	return h.router.Descriptor(ComponentSaga), nil
}

// Prepare declares which destination aggregates this saga needs.
// Phase 1 of the two-phase protocol.
func (h *SagaHandler) Prepare(ctx context.Context, req *pb.SagaPrepareRequest) (*pb.SagaPrepareResponse, error) {
	if h.prepare != nil {
		return &pb.SagaPrepareResponse{Destinations: h.prepare(req.Source)}, nil
	}
	return &pb.SagaPrepareResponse{Destinations: h.router.PrepareDestinations(req.Source)}, nil
}

// Execute produces commands given source events and destination state.
// Phase 2 of the two-phase protocol.
func (h *SagaHandler) Execute(ctx context.Context, req *pb.SagaExecuteRequest) (*pb.SagaResponse, error) {
	commands, err := h.executeCommands(req.Source, req.Destinations)
	if err != nil {
		return nil, MapHandlerError(err)
	}
	return &pb.SagaResponse{Commands: commands}, nil
}

func (h *SagaHandler) executeCommands(source *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, error) {
	if h.execute != nil {
		return h.execute(source, destinations)
	}
	return h.router.Dispatch(source, destinations)
}

// Descriptor returns the saga's component descriptor.
func (h *SagaHandler) Descriptor() *pb.ComponentDescriptor {
	return h.router.Descriptor(ComponentSaga)
}

// RegisterSagaHandler returns a ServiceRegistrar for a saga handler.
func RegisterSagaHandler(handler *SagaHandler) ServiceRegistrar {
	return func(server *grpc.Server) {
		pb.RegisterSagaServiceServer(server, handler)
	}
}

// RunSagaServer starts a gRPC server for a saga.
func RunSagaServer(name, defaultPort string, handler *SagaHandler) error {
	return RunServer(RegisterSagaHandler(handler), ServerOptions{
		ServiceName: "Saga",
		Domain:      name,
		DefaultPort: defaultPort,
	})
}

// PMPrepareFunc declares destinations needed beyond the trigger.
type PMPrepareFunc func(trigger, processState *pb.EventBook) []*pb.Cover

// PMHandleFunc processes a trigger and returns commands plus the process
// manager's own new events.
type PMHandleFunc func(trigger, processState *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, *pb.EventBook, error)

// PMRevocationFunc handles compensation for commands issued by this process
// manager. Called when such a command is rejected by the target aggregate.
type PMRevocationFunc func(notification *pb.Notification, processState *pb.EventBook) *PMRevocationResponse

// ProcessManagerHandler wraps callbacks for the gRPC ProcessManager service.
type ProcessManagerHandler struct {
	pb.UnimplementedProcessManagerServiceServer
	name         string
	inputs       []*pb.Target
	prepareFn    PMPrepareFunc
	handleFn     PMHandleFunc
	revocationFn PMRevocationFunc
}

// NewProcessManagerHandler creates a new process manager handler.
func NewProcessManagerHandler(name string) *ProcessManagerHandler {
	return &ProcessManagerHandler{
		name:   name,
		inputs: make([]*pb.Target, 0),
	}
}

// ListenTo subscribes to events from a domain.
func (h *ProcessManagerHandler) ListenTo(domain string, types ...string) *ProcessManagerHandler {
	h.inputs = append(h.inputs, &pb.Target{Domain: domain, Types: types})
	return h
}

// WithPrepare sets the prepare callback.
func (h *ProcessManagerHandler) WithPrepare(fn PMPrepareFunc) *ProcessManagerHandler {
	h.prepareFn = fn
	return h
}

// WithHandle sets the handle callback.
func (h *ProcessManagerHandler) WithHandle(fn PMHandleFunc) *ProcessManagerHandler {
	h.handleFn = fn
	return h
}

// WithRevocationHandler sets the compensation callback. When unset,
// revocations delegate to the framework.
func (h *ProcessManagerHandler) WithRevocationHandler(fn PMRevocationFunc) *ProcessManagerHandler {
	h.revocationFn = fn
	return h
}

// WithFanIn wires a FanIn coordinator as both prepare and handle callbacks
// and derives subscriptions from its classifiers.
func (h *ProcessManagerHandler) WithFanIn(fanIn *FanIn, triggerDomains ...string) *ProcessManagerHandler {
	for _, domain := range triggerDomains {
		h.ListenTo(domain, fanIn.Subscriptions()...)
	}
	return h.
		WithPrepare(fanIn.PrepareDestinations).
		WithHandle(fanIn.Handle)
}

// GetDescriptor returns the component descriptor for topology discovery.
func (h *ProcessManagerHandler) GetDescriptor(ctx context.Context, req *pb.GetDescriptorRequest) (*pb.ComponentDescriptor, error) {
	return &pb.ComponentDescriptor{
		Name:          h.name,
		ComponentType: ComponentProcessManager,
		Inputs:        h.inputs,
	}, nil
}

// Prepare declares which destinations are needed before Handle.
func (h *ProcessManagerHandler) Prepare(ctx context.Context, req *pb.ProcessManagerPrepareRequest) (*pb.ProcessManagerPrepareResponse, error) {
	if h.prepareFn != nil {
		return &pb.ProcessManagerPrepareResponse{
			Destinations: h.prepareFn(req.Trigger, req.ProcessState),
		}, nil
	}
	return &pb.ProcessManagerPrepareResponse{}, nil
}

// Handle processes the trigger and returns commands and process events.
// Notification triggers route to the revocation callback.
func (h *ProcessManagerHandler) Handle(ctx context.Context, req *pb.ProcessManagerHandleRequest) (*pb.ProcessManagerHandleResponse, error) {
	if notification, ok := notificationFromTrigger(req.Trigger); ok {
		resp := h.handleRevocation(notification, req.ProcessState)
		return &pb.ProcessManagerHandleResponse{
			ProcessEvents: resp.ProcessEvents,
			Revocation:    resp.Revocation,
		}, nil
	}

	if h.handleFn != nil {
		commands, processEvents, err := h.handleFn(req.Trigger, req.ProcessState, req.Destinations)
		if err != nil {
			return nil, MapHandlerError(err)
		}
		return &pb.ProcessManagerHandleResponse{
			Commands:      commands,
			ProcessEvents: processEvents,
		}, nil
	}
	return &pb.ProcessManagerHandleResponse{}, nil
}

func (h *ProcessManagerHandler) handleRevocation(notification *pb.Notification, processState *pb.EventBook) *PMRevocationResponse {
	if h.revocationFn != nil {
		return h.revocationFn(notification, processState)
	}
	return PMDelegateToFramework("process manager " + h.name + " has no custom compensation")
}

// notificationFromTrigger detects a rejection Notification delivered as the
// trigger's sole event.
func notificationFromTrigger(trigger *pb.EventBook) (*pb.Notification, bool) {
	pages := trigger.GetPages()
	if len(pages) != 1 {
		return nil, false
	}
	event := pages[0].GetEvent()
	if event == nil || !IsNotification(event.TypeUrl) {
		return nil, false
	}
	notification := &pb.Notification{}
	if err := proto.Unmarshal(event.Value, notification); err != nil {
		return nil, false
	}
	return notification, true
}

// RegisterProcessManagerHandler returns a ServiceRegistrar for a process
// manager handler.
func RegisterProcessManagerHandler(handler *ProcessManagerHandler) ServiceRegistrar {
	return func(server *grpc.Server) {
		pb.RegisterProcessManagerServiceServer(server, handler)
	}
}

// RunProcessManagerServer starts a gRPC server for a process manager.
func RunProcessManagerServer(name, defaultPort string, handler *ProcessManagerHandler) error {
	return RunServer(RegisterProcessManagerHandler(handler), ServerOptions{
		ServiceName: "ProcessManager",
		Domain:      name,
		DefaultPort: defaultPort,
	})
}

// ProjectorHandleFunc processes an EventBook and returns a Projection.
type ProjectorHandleFunc func(events *pb.EventBook) (*pb.Projection, error)

// ProjectorHandler wraps a handle function for the gRPC Projector service.
type ProjectorHandler struct {
	pb.UnimplementedProjectorServiceServer
	name     string
	domains  []string
	handleFn ProjectorHandleFunc
}

// NewProjectorHandler creates a new projector handler observing the given
// domains.
func NewProjectorHandler(name string, domains ...string) *ProjectorHandler {
	return &ProjectorHandler{
		name:    name,
		domains: domains,
	}
}

// WithHandle sets the event handling callback.
func (h *ProjectorHandler) WithHandle(fn ProjectorHandleFunc) *ProjectorHandler {
	h.handleFn = fn
	return h
}

// GetDescriptor returns the component descriptor for topology discovery.
func (h *ProjectorHandler) GetDescriptor(ctx context.Context, req *pb.GetDescriptorRequest) (*pb.ComponentDescriptor, error) {
	inputs := make([]*pb.Target, len(h.domains))
	for i, domain := range h.domains {
		inputs[i] = &pb.Target{Domain: domain}
	}
	return &pb.ComponentDescriptor{
		Name:          h.name,
		ComponentType: ComponentProjector,
		Inputs:        inputs,
	}, nil
}

// Handle processes an EventBook and returns a Projection.
func (h *ProjectorHandler) Handle(ctx context.Context, req *pb.EventBook) (*pb.Projection, error) {
	if h.handleFn == nil {
		return &pb.Projection{}, nil
	}
	projection, err := h.handleFn(req)
	if err != nil {
		return nil, MapHandlerError(err)
	}
	return projection, nil
}

// HandleSpeculative processes events that may never be committed. Same
// computation as Handle; the caller discards side effects.
func (h *ProjectorHandler) HandleSpeculative(ctx context.Context, req *pb.EventBook) (*pb.Projection, error) {
	return h.Handle(ctx, req)
}

// RegisterProjectorHandler returns a ServiceRegistrar for a projector handler.
func RegisterProjectorHandler(handler *ProjectorHandler) ServiceRegistrar {
	return func(server *grpc.Server) {
		pb.RegisterProjectorServiceServer(server, handler)
	}
}

// RunProjectorServer starts a gRPC server for a projector.
func RunProjectorServer(name, defaultPort string, handler *ProjectorHandler) error {
	return RunServer(RegisterProjectorHandler(handler), ServerOptions{
		ServiceName: "Projector",
		Domain:      name,
		DefaultPort: defaultPort,
	})
}

// UpcastHandler wraps an UpcasterRouter for the gRPC Upcaster service.
type UpcastHandler struct {
	pb.UnimplementedUpcasterServiceServer
	name   string
	router *UpcasterRouter
}

// NewUpcastHandler creates an upcaster servicer for the router's domain.
func NewUpcastHandler(name string, router *UpcasterRouter) *UpcastHandler {
	return &UpcastHandler{name: name, router: router}
}

// GetDescriptor returns the component descriptor for topology discovery.
func (h *UpcastHandler) GetDescriptor(ctx context.Context, req *pb.GetDescriptorRequest) (*pb.ComponentDescriptor, error) {
	return &pb.ComponentDescriptor{
		Name:          h.name,
		ComponentType: ComponentUpcaster,
		Inputs:        []*pb.Target{{Domain: h.router.Domain()}},
	}, nil
}

// Upcast transforms old event versions to current versions.
func (h *UpcastHandler) Upcast(ctx context.Context, req *pb.UpcastRequest) (*pb.UpcastResponse, error) {
	return &pb.UpcastResponse{Pages: h.router.Upcast(req.Pages)}, nil
}

// RegisterUpcastHandler returns a ServiceRegistrar for an upcaster handler.
func RegisterUpcastHandler(handler *UpcastHandler) ServiceRegistrar {
	return func(server *grpc.Server) {
		pb.RegisterUpcasterServiceServer(server, handler)
	}
}

// RunUpcasterServer starts a gRPC server for an upcaster.
func RunUpcasterServer(name, defaultPort string, handler *UpcastHandler) error {
	return RunServer(RegisterUpcastHandler(handler), ServerOptions{
		ServiceName: "Upcaster",
		Domain:      name,
		DefaultPort: defaultPort,
	})
}
