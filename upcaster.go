// Event version transformation via UpcasterRouter.
package angzarr

import (
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// UpcasterHandler transforms an old event Any to a newer event Any.
type UpcasterHandler func(old *anypb.Any) *anypb.Any

// upcastChainLimit bounds transform chaining per event. A registration set
// that exceeds it is cyclic and the event is passed through as-is.
const upcastChainLimit = 32

// UpcasterRouter transforms old event versions to current versions during
// replay, before any state is built.
//
// Transforms chain: when an upcast output matches another registered suffix,
// that transform runs too, until no registration matches (v1 to v2 to v3).
// Events without matching handlers pass through unchanged, byte for byte.
//
// Example:
//
//	router := NewUpcasterRouter("player").
//	    On("PlayerRegisteredV1", upcastRegisteredV1)
//
//	newPages := router.Upcast(oldPages)
type UpcasterRouter struct {
	domain   string
	handlers []upcasterEntry
}

type upcasterEntry struct {
	suffix  string
	handler UpcasterHandler
}

// NewUpcasterRouter creates a new upcaster router for a domain.
func NewUpcasterRouter(domain string) *UpcasterRouter {
	return &UpcasterRouter{
		domain:   domain,
		handlers: make([]upcasterEntry, 0),
	}
}

// On registers a handler for an old event type_url suffix.
func (r *UpcasterRouter) On(suffix string, handler UpcasterHandler) *UpcasterRouter {
	r.handlers = append(r.handlers, upcasterEntry{suffix: suffix, handler: handler})
	return r
}

// UpcastOne transforms a single event Any to its current version, chaining
// registered transforms until none matches.
func (r *UpcasterRouter) UpcastOne(event *anypb.Any) *anypb.Any {
	if event == nil {
		return nil
	}
	current := event
	for i := 0; i < upcastChainLimit; i++ {
		matched := false
		for _, entry := range r.handlers {
			if strings.HasSuffix(current.TypeUrl, entry.suffix) {
				next := entry.handler(current)
				if next == nil || next.TypeUrl == current.TypeUrl {
					return current
				}
				current = next
				matched = true
				break
			}
		}
		if !matched {
			return current
		}
	}
	return event
}

// Upcast transforms a list of event pages to current versions.
//
// Sequence, timestamp, and synchrony metadata carry over untouched; only the
// event payload is replaced. Input pages are never mutated.
func (r *UpcasterRouter) Upcast(pages []*pb.EventPage) []*pb.EventPage {
	result := make([]*pb.EventPage, 0, len(pages))

	for _, page := range pages {
		event := page.GetEvent()
		if event == nil {
			result = append(result, page)
			continue
		}

		upcasted := r.UpcastOne(event)
		if upcasted == event {
			result = append(result, page)
			continue
		}

		newPage := proto.Clone(page).(*pb.EventPage)
		newPage.Event = upcasted
		result = append(result, newPage)
	}

	return result
}

// UpcastBook transforms the pages of an EventBook, preserving cover and
// snapshot.
func (r *UpcasterRouter) UpcastBook(book *pb.EventBook) *pb.EventBook {
	if book == nil {
		return nil
	}
	return &pb.EventBook{
		Cover:        book.Cover,
		Snapshot:     book.Snapshot,
		Pages:        r.Upcast(book.Pages),
		NextSequence: book.NextSequence,
	}
}

// Domain returns the domain this upcaster handles.
func (r *UpcasterRouter) Domain() string {
	return r.domain
}

// UpcastTyped builds an UpcasterHandler from a typed transform function.
//
// Decodes the old payload into a fresh instance of O, calls transform, and
// repacks the result under the configured prefix. Decode or marshal failures
// pass the event through unchanged.
func UpcastTyped[O, N proto.Message](oldTmpl O, transform func(O) N) UpcasterHandler {
	tmpl := oldTmpl.ProtoReflect()
	return func(old *anypb.Any) *anypb.Any {
		decoded := tmpl.New().Interface().(O)
		if err := proto.Unmarshal(old.GetValue(), decoded); err != nil {
			return old
		}
		packed, err := PackPayload(transform(decoded))
		if err != nil {
			return old
		}
		return packed
	}
}
