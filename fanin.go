// Fan-in coordination for process managers.
//
// A FanIn tracks a fixed set of prerequisites across domains and fires a
// single dispatch when the last one arrives. Progress lives in the process
// manager's own event log as PrerequisiteCompleted markers; a terminal
// DispatchIssued marker makes the dispatch exactly-once under redelivery.
package angzarr

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// dispatchedMarker is an internal sentinel in the completed set.
const dispatchedMarker = "__dispatched__"

// FanInDispatch produces the fan-out commands once every prerequisite is
// satisfied. completed lists prerequisite names in observation order.
type FanInDispatch func(trigger *pb.EventBook, completed []string, destinations []*pb.EventBook) ([]*pb.CommandBook, error)

// FanInPrepare declares destination covers needed before dispatch.
type FanInPrepare func(trigger *pb.EventBook, processState *pb.EventBook) []*pb.Cover

type fanInClassifier struct {
	suffix string
	prereq string
}

// FanIn is a reusable fan-in process manager core.
//
// Example:
//
//	fanIn := NewFanIn("order-fulfillment", "order-fulfillment").
//	    Require("payment", "inventory", "packing").
//	    Classify("PaymentSubmitted", "payment").
//	    Classify("StockReserved", "inventory").
//	    Classify("ItemsPacked", "packing").
//	    OnComplete(issueShip)
//
//	commands, processEvents, err := fanIn.Handle(trigger, processState, destinations)
type FanIn struct {
	name        string
	domain      string
	prereqs     []string
	classifiers []fanInClassifier
	prepare     FanInPrepare
	dispatch    FanInDispatch
}

// NewFanIn creates a fan-in coordinator with the given component name and
// process state domain.
func NewFanIn(name, domain string) *FanIn {
	return &FanIn{name: name, domain: domain}
}

// Require declares the full prerequisite set. Dispatch fires only when every
// named prerequisite has been observed.
func (f *FanIn) Require(prereqs ...string) *FanIn {
	f.prereqs = append(f.prereqs, prereqs...)
	return f
}

// Classify maps a trigger event type_url suffix to a prerequisite name.
func (f *FanIn) Classify(suffix, prereq string) *FanIn {
	f.classifiers = append(f.classifiers, fanInClassifier{suffix: suffix, prereq: prereq})
	return f
}

// WithPrepare sets the destination declaration hook.
func (f *FanIn) WithPrepare(prepare FanInPrepare) *FanIn {
	f.prepare = prepare
	return f
}

// OnComplete sets the dispatch function fired when the last prerequisite
// arrives.
func (f *FanIn) OnComplete(dispatch FanInDispatch) *FanIn {
	f.dispatch = dispatch
	return f
}

// Name returns the component name.
func (f *FanIn) Name() string { return f.name }

// ProcessDomain returns the domain of the process manager's own event log.
func (f *FanIn) ProcessDomain() string { return f.domain }

// Subscriptions returns the trigger suffixes this fan-in classifies.
func (f *FanIn) Subscriptions() []string {
	types := make([]string, len(f.classifiers))
	for i, c := range f.classifiers {
		types[i] = c.suffix
	}
	return types
}

// PrepareDestinations returns the destination covers for the trigger, or nil
// when no prepare hook is set.
func (f *FanIn) PrepareDestinations(trigger, processState *pb.EventBook) []*pb.Cover {
	if f.prepare == nil {
		return nil
	}
	return f.prepare(trigger, processState)
}

// Handle classifies the trigger, replays process state, and emits fan-out
// commands when all prerequisites are complete.
//
// Returns the commands to dispatch and the process manager's own new event
// pages. Both are nil when the trigger carries nothing new: unclassified
// events, duplicate prerequisites, and anything after dispatch are ignored.
func (f *FanIn) Handle(trigger, processState *pb.EventBook, destinations []*pb.EventBook) ([]*pb.CommandBook, *pb.EventBook, error) {
	correlationID := CorrelationID(trigger)
	if correlationID == "" {
		return nil, nil, nil
	}

	completed := f.extractCompleted(processState)
	if contains(completed, dispatchedMarker) {
		return nil, nil, nil
	}

	var newPrereqs []string
	for _, page := range trigger.GetPages() {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		prereq := f.classify(event)
		if prereq == "" || contains(completed, prereq) {
			continue
		}
		completed = append(completed, prereq)
		newPrereqs = append(newPrereqs, prereq)
	}

	if len(newPrereqs) == 0 {
		return nil, nil, nil
	}

	nextSeq := NextSequence(processState)

	// One marker per newly observed prerequisite, so replay recovers every
	// one of them even when a single trigger book carries several.
	progress := append([]string(nil), completed[:len(completed)-len(newPrereqs)]...)
	var pages []*pb.EventPage
	for _, prereq := range newPrereqs {
		progress = append(progress, prereq)
		prereqAny, err := anypb.New(&pb.PrerequisiteCompleted{
			Prerequisite: prereq,
			Completed:    append([]string(nil), progress...),
			Remaining:    difference(f.prereqs, progress),
		})
		if err != nil {
			return nil, nil, err
		}
		pages = append(pages, &pb.EventPage{
			Sequence:  nextSeq,
			Event:     prereqAny,
			CreatedAt: packTimestamp(),
		})
		nextSeq++
	}

	var commands []*pb.CommandBook
	if f.allComplete(completed) {
		if f.dispatch != nil {
			dispatched, err := f.dispatch(trigger, append([]string(nil), completed...), destinations)
			if err != nil {
				return nil, nil, err
			}
			commands = dispatched
		}
		for _, cb := range commands {
			if cb.Cover != nil && cb.Cover.CorrelationId == "" {
				cb.Cover.CorrelationId = correlationID
			}
		}

		dispatchAny, err := anypb.New(&pb.DispatchIssued{
			Completed: append([]string(nil), completed...),
		})
		if err != nil {
			return nil, nil, err
		}
		pages = append(pages, &pb.EventPage{
			Sequence:  nextSeq,
			Event:     dispatchAny,
			CreatedAt: packTimestamp(),
		})
	}

	processEvents := &pb.EventBook{
		Cover: &pb.Cover{
			Domain:        f.domain,
			Root:          UUIDToProto(ProcessRootForCorrelation(correlationID)),
			CorrelationId: correlationID,
		},
		Pages: pages,
	}

	return commands, processEvents, nil
}

// classify maps a trigger event to its prerequisite name, or "".
func (f *FanIn) classify(event *anypb.Any) string {
	for _, c := range f.classifiers {
		if TypeURLMatches(event.GetTypeUrl(), c.suffix) {
			return c.prereq
		}
	}
	return ""
}

// extractCompleted replays process state pages into the completed set. A
// DispatchIssued page adds the dispatched marker.
func (f *FanIn) extractCompleted(processState *pb.EventBook) []string {
	var completed []string
	for _, page := range processState.GetPages() {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		switch {
		case TypeURLMatches(event.TypeUrl, "PrerequisiteCompleted"):
			var marker pb.PrerequisiteCompleted
			if err := proto.Unmarshal(event.Value, &marker); err != nil {
				continue
			}
			if marker.Prerequisite != "" && !contains(completed, marker.Prerequisite) {
				completed = append(completed, marker.Prerequisite)
			}
		case TypeURLMatches(event.TypeUrl, "DispatchIssued"):
			if !contains(completed, dispatchedMarker) {
				completed = append(completed, dispatchedMarker)
			}
		}
	}
	return completed
}

// allComplete reports whether every required prerequisite is present.
func (f *FanIn) allComplete(completed []string) bool {
	for _, p := range f.prereqs {
		if !contains(completed, p) {
			return false
		}
	}
	return true
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}

// difference returns elements of all absent from completed.
func difference(all, completed []string) []string {
	var result []string
	for _, a := range all {
		if !contains(completed, a) {
			result = append(result, a)
		}
	}
	return result
}
