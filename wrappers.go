// Nil-safe wrapper types over the wire protos.
//
// Wrappers embed the proto, so generated accessors stay available; the
// extension methods here never panic on nil receivers or missing fields.
package angzarr

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// CoverW wraps a Cover proto with extension methods.
type CoverW struct {
	*pb.Cover
}

// NewCoverW creates a new CoverW wrapper.
func NewCoverW(cover *pb.Cover) *CoverW {
	return &CoverW{Cover: cover}
}

// DomainName returns the domain, or UnknownDomain if missing.
func (w *CoverW) DomainName() string {
	return Domain(w.Cover)
}

// CorrelationID returns the correlation_id, or empty if missing.
func (w *CoverW) CorrelationID() string {
	return CorrelationID(w.Cover)
}

// HasCorrelationID reports whether a non-empty correlation_id is present.
func (w *CoverW) HasCorrelationID() bool {
	return w.CorrelationID() != ""
}

// RootUUID extracts the root UUID.
func (w *CoverW) RootUUID() (uuid.UUID, bool) {
	return RootUUID(w.Cover)
}

// RootIDHex returns the root UUID as a hex string, or empty if missing.
func (w *CoverW) RootIDHex() string {
	return RootIDHex(w.Cover)
}

// EditionName returns the edition name, defaulting to DefaultEdition.
func (w *CoverW) EditionName() string {
	return EditionName(w.Cover)
}

// RoutingKey computes the bus routing key.
func (w *CoverW) RoutingKey() string {
	return w.DomainName()
}

// CacheKey generates a cache key from domain + root.
func (w *CoverW) CacheKey() string {
	return CacheKey(w.Cover)
}

// EventBookW wraps an EventBook proto with extension methods.
type EventBookW struct {
	*pb.EventBook
}

// NewEventBookW creates a new EventBookW wrapper.
func NewEventBookW(book *pb.EventBook) *EventBookW {
	return &EventBookW{EventBook: book}
}

// NextSeq returns the sequence the next event will take.
func (w *EventBookW) NextSeq() uint64 {
	return NextSequence(w.EventBook)
}

// PageWrappers returns the event pages as wrapped EventPageW instances.
func (w *EventBookW) PageWrappers() []*EventPageW {
	if w.EventBook == nil {
		return nil
	}
	result := make([]*EventPageW, len(w.EventBook.Pages))
	for i, p := range w.EventBook.Pages {
		result[i] = NewEventPageW(p)
	}
	return result
}

// DomainName returns the domain from the cover, or UnknownDomain if missing.
func (w *EventBookW) DomainName() string {
	return Domain(w.EventBook)
}

// CorrelationID returns the correlation_id from the cover, or empty if missing.
func (w *EventBookW) CorrelationID() string {
	return CorrelationID(w.EventBook)
}

// HasCorrelationID reports whether a non-empty correlation_id is present.
func (w *EventBookW) HasCorrelationID() bool {
	return w.CorrelationID() != ""
}

// RootUUID extracts the root UUID from the cover.
func (w *EventBookW) RootUUID() (uuid.UUID, bool) {
	return RootUUID(w.EventBook)
}

// RootIDHex returns the root UUID as a hex string, or empty if missing.
func (w *EventBookW) RootIDHex() string {
	return RootIDHex(w.EventBook)
}

// EditionName returns the edition name, defaulting to DefaultEdition.
func (w *EventBookW) EditionName() string {
	return EditionName(w.EventBook)
}

// RoutingKey computes the bus routing key.
func (w *EventBookW) RoutingKey() string {
	return w.DomainName()
}

// CacheKey generates a cache key from domain + root.
func (w *EventBookW) CacheKey() string {
	return CacheKey(w.EventBook)
}

// CoverWrapper returns a CoverW wrapping the cover.
func (w *EventBookW) CoverWrapper() *CoverW {
	if c := CoverOf(w.EventBook); c != nil {
		return NewCoverW(c)
	}
	return NewCoverW(&pb.Cover{})
}

// CommandBookW wraps a CommandBook proto with extension methods.
type CommandBookW struct {
	*pb.CommandBook
}

// NewCommandBookW creates a new CommandBookW wrapper.
func NewCommandBookW(book *pb.CommandBook) *CommandBookW {
	return &CommandBookW{CommandBook: book}
}

// PageWrappers returns the command pages as wrapped CommandPageW instances.
func (w *CommandBookW) PageWrappers() []*CommandPageW {
	if w.CommandBook == nil {
		return nil
	}
	result := make([]*CommandPageW, len(w.CommandBook.Pages))
	for i, p := range w.CommandBook.Pages {
		result[i] = NewCommandPageW(p)
	}
	return result
}

// DomainName returns the domain from the cover, or UnknownDomain if missing.
func (w *CommandBookW) DomainName() string {
	return Domain(w.CommandBook)
}

// CorrelationID returns the correlation_id from the cover, or empty if missing.
func (w *CommandBookW) CorrelationID() string {
	return CorrelationID(w.CommandBook)
}

// HasCorrelationID reports whether a non-empty correlation_id is present.
func (w *CommandBookW) HasCorrelationID() bool {
	return w.CorrelationID() != ""
}

// RootUUID extracts the root UUID from the cover.
func (w *CommandBookW) RootUUID() (uuid.UUID, bool) {
	return RootUUID(w.CommandBook)
}

// RoutingKey computes the bus routing key.
func (w *CommandBookW) RoutingKey() string {
	return w.DomainName()
}

// CacheKey generates a cache key from domain + root.
func (w *CommandBookW) CacheKey() string {
	return CacheKey(w.CommandBook)
}

// CoverWrapper returns a CoverW wrapping the cover.
func (w *CommandBookW) CoverWrapper() *CoverW {
	if c := CoverOf(w.CommandBook); c != nil {
		return NewCoverW(c)
	}
	return NewCoverW(&pb.Cover{})
}

// QueryW wraps a Query proto with extension methods.
type QueryW struct {
	*pb.Query
}

// NewQueryW creates a new QueryW wrapper.
func NewQueryW(query *pb.Query) *QueryW {
	return &QueryW{Query: query}
}

// DomainName returns the domain from the cover, or UnknownDomain if missing.
func (w *QueryW) DomainName() string {
	return Domain(w.Query)
}

// CorrelationID returns the correlation_id from the cover, or empty if missing.
func (w *QueryW) CorrelationID() string {
	return CorrelationID(w.Query)
}

// HasCorrelationID reports whether a non-empty correlation_id is present.
func (w *QueryW) HasCorrelationID() bool {
	return w.CorrelationID() != ""
}

// RootUUID extracts the root UUID from the cover.
func (w *QueryW) RootUUID() (uuid.UUID, bool) {
	return RootUUID(w.Query)
}

// RoutingKey computes the bus routing key.
func (w *QueryW) RoutingKey() string {
	return w.DomainName()
}

// CoverWrapper returns a CoverW wrapping the cover.
func (w *QueryW) CoverWrapper() *CoverW {
	if c := CoverOf(w.Query); c != nil {
		return NewCoverW(c)
	}
	return NewCoverW(&pb.Cover{})
}

// EventPageW wraps an EventPage proto with extension methods.
type EventPageW struct {
	*pb.EventPage
}

// NewEventPageW creates a new EventPageW wrapper.
func NewEventPageW(page *pb.EventPage) *EventPageW {
	return &EventPageW{EventPage: page}
}

// Decode attempts to decode the event payload if the type URL matches.
func (w *EventPageW) Decode(typeSuffix string, msg proto.Message) bool {
	return DecodeEvent(w.EventPage, typeSuffix, msg)
}

// Seq returns the sequence number.
func (w *EventPageW) Seq() uint64 {
	if w.EventPage == nil {
		return 0
	}
	return w.EventPage.Sequence
}

// CommandPageW wraps a CommandPage proto with extension methods.
type CommandPageW struct {
	*pb.CommandPage
}

// NewCommandPageW creates a new CommandPageW wrapper.
func NewCommandPageW(page *pb.CommandPage) *CommandPageW {
	return &CommandPageW{CommandPage: page}
}

// Seq returns the expected destination sequence.
func (w *CommandPageW) Seq() uint64 {
	if w.CommandPage == nil {
		return 0
	}
	return w.CommandPage.Sequence
}

// CommandResponseW wraps a CommandResponse proto with extension methods.
type CommandResponseW struct {
	*pb.CommandResponse
}

// NewCommandResponseW creates a new CommandResponseW wrapper.
func NewCommandResponseW(resp *pb.CommandResponse) *CommandResponseW {
	return &CommandResponseW{CommandResponse: resp}
}

// EventsBook returns the events as a wrapped EventBookW, or nil if not set.
func (w *CommandResponseW) EventsBook() *EventBookW {
	if w.CommandResponse == nil || w.CommandResponse.Events == nil {
		return nil
	}
	return NewEventBookW(w.CommandResponse.Events)
}

// EventWrappers extracts the event pages as wrapped EventPageW instances.
func (w *CommandResponseW) EventWrappers() []*EventPageW {
	book := w.EventsBook()
	if book == nil {
		return nil
	}
	return book.PageWrappers()
}
