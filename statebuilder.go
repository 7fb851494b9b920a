// StateBuilder folds snapshot + event history into in-memory aggregate state.
//
// Register once at startup, call Rebuild per request. State objects are
// ephemeral: reconstructed per request and discarded after the handler
// returns.
package angzarr

import (
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// StateApplier applies a raw event (Any) to state.
//
// Each applier is responsible for decoding and type-checking its event.
type StateApplier[S any] func(state *S, event *anypb.Any)

// SnapshotLoader loads state from a snapshot Any. Optional; when absent,
// snapshots are ignored and replay starts from the first page.
type SnapshotLoader[S any] func(state *S, snapshot *anypb.Any)

type applierEntry[S any] struct {
	suffix string
	apply  StateApplier[S]
}

// StateBuilder builds state from events with registered appliers.
//
// Appliers are tried in registration order and matched by type_url suffix;
// the first match wins. Unknown event types are silently skipped so that
// older readers survive future events.
//
// Example:
//
//	builder := angzarr.NewStateBuilder(func() OrderState { return OrderState{} }).
//	    WithSnapshot(loadOrderSnapshot).
//	    On("OrderCreated", applyOrderCreated).
//	    On("OrderCompleted", applyOrderCompleted)
//
//	func RebuildState(book *pb.EventBook) OrderState {
//	    return builder.Rebuild(book)
//	}
type StateBuilder[S any] struct {
	newState       func() S
	snapshotLoader SnapshotLoader[S]
	upcaster       *UpcasterRouter
	appliers       []applierEntry[S]
}

// NewStateBuilder creates a StateBuilder for state type S.
//
// The newState function produces the zero value; Rebuild(nil) returns exactly
// that.
func NewStateBuilder[S any](newState func() S) *StateBuilder[S] {
	return &StateBuilder[S]{newState: newState}
}

// WithSnapshot sets a snapshot loader for restoring state from snapshots.
func (sb *StateBuilder[S]) WithSnapshot(loader SnapshotLoader[S]) *StateBuilder[S] {
	sb.snapshotLoader = loader
	return sb
}

// WithUpcaster applies an upcaster to every page before the appliers see it.
func (sb *StateBuilder[S]) WithUpcaster(upcaster *UpcasterRouter) *StateBuilder[S] {
	sb.upcaster = upcaster
	return sb
}

// On registers an event applier for a type_url suffix.
func (sb *StateBuilder[S]) On(typeSuffix string, apply StateApplier[S]) *StateBuilder[S] {
	sb.appliers = append(sb.appliers, applierEntry[S]{suffix: typeSuffix, apply: apply})
	return sb
}

// Apply applies a single event to state using registered appliers.
//
// Useful for folding newly emitted events into current state without a full
// Rebuild.
func (sb *StateBuilder[S]) Apply(state *S, event *anypb.Any) {
	if event == nil {
		return
	}
	for _, applier := range sb.appliers {
		if strings.HasSuffix(event.TypeUrl, applier.suffix) {
			applier.apply(state, event)
			break
		}
	}
}

// Rebuild reconstructs state from an EventBook.
//
// Loads the snapshot first when present and a loader is configured, then
// folds the remaining pages in wire order. Pages at or below the snapshot
// boundary are skipped: snapshot + tail must equal a full replay.
func (sb *StateBuilder[S]) Rebuild(book *pb.EventBook) S {
	state := sb.newState()

	if book == nil {
		return state
	}

	var snapshotBoundary uint64
	snapshotLoaded := false
	if sb.snapshotLoader != nil && book.Snapshot != nil && book.Snapshot.State != nil {
		sb.snapshotLoader(&state, book.Snapshot.State)
		snapshotBoundary = book.Snapshot.AtSequence
		snapshotLoaded = true
	}

	pages := book.Pages
	if sb.upcaster != nil {
		pages = sb.upcaster.Upcast(pages)
	}

	for _, page := range pages {
		if page.Event == nil {
			continue
		}
		if snapshotLoaded && page.Sequence <= snapshotBoundary {
			continue
		}
		sb.Apply(&state, page.Event)
	}

	return state
}

// RebuildFunc returns a rebuild function compatible with CommandRouter.
func (sb *StateBuilder[S]) RebuildFunc() func(*pb.EventBook) S {
	return sb.Rebuild
}

// LoadProtoSnapshot creates a snapshot loader for protobuf snapshot states.
//
// The converter receives the decoded proto and populates the Go state.
func LoadProtoSnapshot[S any, M proto.Message](msg M, converter func(*S, M)) SnapshotLoader[S] {
	return func(state *S, snapshot *anypb.Any) {
		if err := snapshot.UnmarshalTo(msg); err == nil {
			converter(state, msg)
		}
	}
}
