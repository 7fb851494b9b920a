// OO-style projector base for event projection.
//
// Projectors subscribe to events from one or more domains and produce read
// models or side effects without emitting commands.
//
// Example usage:
//
//	type OutputProjector struct {
//	    angzarr.ProjectorBase
//	}
//
//	func NewOutputProjector() *OutputProjector {
//	    p := &OutputProjector{}
//	    p.Init("output", []string{"order", "payment"})
//	    p.Projects("OrderCreated", p.projectCreated)
//	    return p
//	}
//
//	func (p *OutputProjector) projectCreated(event *examples.OrderCreated) *pb.Projection {
//	    writeLog(fmt.Sprintf("order created: %d cents", event.SubtotalCents))
//	    return nil // fall through to the default projection
//	}
package angzarr

import (
	"reflect"
	"strings"

	"google.golang.org/protobuf/proto"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

type projectorOOFunc func(data []byte) *pb.Projection

// ProjectorBase provides OO-style projector infrastructure.
//
// Embed it in a projector struct, call Init() in the constructor, then
// register handlers with Projects().
type ProjectorBase struct {
	name     string
	domains  []string
	handlers map[string]projectorOOFunc
}

// Init initializes the projector base with name and domain configuration.
func (p *ProjectorBase) Init(name string, domains []string) {
	p.name = name
	p.domains = domains
	p.handlers = make(map[string]projectorOOFunc)
}

// Name returns the projector's name.
func (p *ProjectorBase) Name() string {
	return p.name
}

// Domains returns the domains this projector subscribes to.
func (p *ProjectorBase) Domains() []string {
	return p.domains
}

// Projects registers a projection handler for an event type_url suffix.
//
// The handler must have signature func(*EventType) *pb.Projection and may
// return nil to fall through to the default projection.
func (p *ProjectorBase) Projects(suffix string, handler any) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	if handlerType.NumIn() != 1 {
		panic("handler must have exactly 1 parameter (event *EventType)")
	}
	if handlerType.NumOut() != 1 {
		panic("handler must return *pb.Projection")
	}

	eventPtrType := handlerType.In(0)
	if eventPtrType.Kind() != reflect.Ptr {
		panic("event parameter must be a pointer")
	}
	eventType := eventPtrType.Elem()

	p.handlers[suffix] = func(data []byte) *pb.Projection {
		eventPtr := reflect.New(eventType)
		event := eventPtr.Interface().(proto.Message)

		if err := proto.Unmarshal(data, event); err != nil {
			return nil
		}

		results := handlerValue.Call([]reflect.Value{eventPtr})
		if results[0].IsNil() {
			return nil
		}
		return results[0].Interface().(*pb.Projection)
	}
}

// Handle processes an EventBook and returns a Projection.
//
// The first handler that returns a non-nil projection wins. When no handler
// claims the book, the default projection carries the cover, the projector
// name, and the highest event sequence consumed.
func (p *ProjectorBase) Handle(events *pb.EventBook) (*pb.Projection, error) {
	if events == nil || events.Cover == nil {
		return &pb.Projection{Projector: p.name}, nil
	}

	var lastSeq uint64
	for _, page := range events.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		lastSeq = page.Sequence
		for suffix, handler := range p.handlers {
			if strings.HasSuffix(event.TypeUrl, suffix) {
				if projection := handler(event.Value); projection != nil {
					return projection, nil
				}
				break
			}
		}
	}

	return &pb.Projection{
		Cover:     events.Cover,
		Projector: p.name,
		Sequence:  lastSeq,
	}, nil
}

// Handler builds a gRPC ProjectorHandler backed by this base.
func (p *ProjectorBase) Handler() *ProjectorHandler {
	return NewProjectorHandler(p.name, p.domains...).WithHandle(p.Handle)
}

// RunOOProjectorServer runs a gRPC projector server backed by an OO-style
// projector base.
func RunOOProjectorServer(name, defaultPort string, projector *ProjectorBase) error {
	return RunProjectorServer(name, defaultPort, projector.Handler())
}
