package angzarr

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// Shared constants.
const (
	UnknownDomain       = "unknown"
	WildcardDomain      = "*"
	DefaultEdition      = "angzarr"
	CorrelationIDHeader = "x-correlation-id"
)

// Cover accessors. These work with any Cover-bearing proto type and are
// nil-safe throughout.

// CoverOf extracts the Cover from various proto types.
func CoverOf(v any) *pb.Cover {
	switch t := v.(type) {
	case *pb.EventBook:
		return t.GetCover()
	case *pb.CommandBook:
		return t.GetCover()
	case *pb.Query:
		return t.GetCover()
	case *pb.Projection:
		return t.GetCover()
	case *pb.Cover:
		return t
	default:
		return nil
	}
}

// Domain returns the domain from a Cover-bearing type, or UnknownDomain if missing.
func Domain(v any) string {
	c := CoverOf(v)
	if c == nil || c.Domain == "" {
		return UnknownDomain
	}
	return c.Domain
}

// CorrelationID returns the correlation_id from a Cover-bearing type, or empty if missing.
func CorrelationID(v any) string {
	c := CoverOf(v)
	if c == nil {
		return ""
	}
	return c.CorrelationId
}

// HasCorrelationID returns true if the correlation_id is present and non-empty.
func HasCorrelationID(v any) bool {
	return CorrelationID(v) != ""
}

// RootUUID extracts the root UUID from a Cover-bearing type.
func RootUUID(v any) (uuid.UUID, bool) {
	c := CoverOf(v)
	if c == nil || c.Root == nil {
		return uuid.UUID{}, false
	}
	u, err := uuid.FromBytes(c.Root.Value)
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}

// RootIDHex returns the root UUID as a hex string, or empty if missing.
func RootIDHex(v any) string {
	c := CoverOf(v)
	if c == nil || c.Root == nil {
		return ""
	}
	return hex.EncodeToString(c.Root.Value)
}

// RootIDText returns the root UUID in 8-4-4-4-12 text form, or empty if missing.
func RootIDText(v any) string {
	c := CoverOf(v)
	if c == nil || c.Root == nil {
		return ""
	}
	return BytesToUUIDText(c.Root.Value)
}

// EditionName returns the edition name from a Cover-bearing type, defaulting to DefaultEdition.
func EditionName(v any) string {
	c := CoverOf(v)
	if c == nil || c.Edition == nil || c.Edition.Name == "" {
		return DefaultEdition
	}
	return c.Edition.Name
}

// CacheKey generates a per-aggregate cache key from domain + root. Handler
// caches must additionally key by sequence for idempotency under retry.
func CacheKey(v any) string {
	return fmt.Sprintf("%s:%s", Domain(v), RootIDHex(v))
}

// UUID conversion

// UUIDToProto converts a uuid.UUID to a proto UUID.
func UUIDToProto(u uuid.UUID) *pb.UUID {
	return &pb.UUID{Value: u[:]}
}

// ProtoToUUID converts a proto UUID to uuid.UUID.
func ProtoToUUID(u *pb.UUID) (uuid.UUID, error) {
	if u == nil {
		return uuid.UUID{}, InvalidArgumentError("nil UUID")
	}
	return uuid.FromBytes(u.Value)
}

// BytesToUUIDText converts bytes to standard UUID text format when they are
// exactly 16 bytes; otherwise returns their hex encoding.
func BytesToUUIDText(b []byte) string {
	if len(b) == 16 {
		if u, err := uuid.FromBytes(b); err == nil {
			return u.String()
		}
	}
	return hex.EncodeToString(b)
}

// SameRoot reports whether two proto UUIDs carry identical bytes.
func SameRoot(a, b *pb.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Value) != len(b.Value) {
		return false
	}
	for i := range a.Value {
		if a.Value[i] != b.Value[i] {
			return false
		}
	}
	return true
}

// Edition helpers

// MainTimeline returns an Edition representing the main timeline.
func MainTimeline() *pb.Edition {
	return &pb.Edition{Name: DefaultEdition}
}

// ImplicitEdition creates an edition with the given name but no divergences.
func ImplicitEdition(name string) *pb.Edition {
	return &pb.Edition{Name: name}
}

// ExplicitEdition creates an edition with divergence points.
func ExplicitEdition(name string, divergences []*pb.DomainDivergence) *pb.Edition {
	return &pb.Edition{Name: name, Divergences: divergences}
}

// IsMainTimeline checks if an edition represents the main timeline.
func IsMainTimeline(e *pb.Edition) bool {
	return e == nil || e.Name == "" || e.Name == DefaultEdition
}

// DivergenceFor returns the divergence sequence for a domain, or -1 if not found.
func DivergenceFor(e *pb.Edition, domain string) int64 {
	if e == nil {
		return -1
	}
	for _, d := range e.Divergences {
		if d.Domain == domain {
			return int64(d.Sequence)
		}
	}
	return -1
}

// Book helpers

// NextSequence returns the sequence the next event of a book will take.
//
// Prefers the gateway-computed next_sequence field; falls back to the last
// page's sequence + 1, then to the snapshot boundary, then to 0 for a cold
// aggregate.
func NextSequence(book *pb.EventBook) uint64 {
	if book == nil {
		return 0
	}
	if book.NextSequence > 0 {
		return book.NextSequence
	}
	if n := len(book.Pages); n > 0 {
		return book.Pages[n-1].Sequence + 1
	}
	if book.Snapshot != nil {
		return book.Snapshot.AtSequence + 1
	}
	return 0
}

// ExpectedSequence computes the optimistic expected sequence for a command
// targeting the given destination book. Alias of NextSequence, named for the
// two-phase coordinator call sites.
func ExpectedSequence(destination *pb.EventBook) uint64 {
	return NextSequence(destination)
}

// DestinationFor selects the destination book matching (domain, root) from
// an arbitrarily ordered destination list.
func DestinationFor(destinations []*pb.EventBook, domain string, root *pb.UUID) *pb.EventBook {
	for _, d := range destinations {
		c := d.GetCover()
		if c == nil {
			continue
		}
		if c.Domain == domain && SameRoot(c.Root, root) {
			return d
		}
	}
	return nil
}

// EventPages returns the event pages from an EventBook, or nil if absent.
func EventPages(book *pb.EventBook) []*pb.EventPage {
	if book == nil {
		return nil
	}
	return book.Pages
}

// CommandPages returns the command pages from a CommandBook, or nil if absent.
func CommandPages(book *pb.CommandBook) []*pb.CommandPage {
	if book == nil {
		return nil
	}
	return book.Pages
}

// EventsFromResponse extracts the event pages from a CommandResponse.
func EventsFromResponse(resp *pb.CommandResponse) []*pb.EventPage {
	if resp == nil || resp.Events == nil {
		return nil
	}
	return resp.Events.Pages
}

// Timestamp helpers

// Now returns the current time as a protobuf Timestamp.
func Now() *timestamppb.Timestamp {
	return timestamppb.Now()
}

// ParseTimestamp parses an RFC3339 timestamp string.
func ParseTimestamp(rfc3339 string) (*timestamppb.Timestamp, error) {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return nil, InvalidTimestampError(err.Error())
	}
	return timestamppb.New(t), nil
}

// Event decoding

// DecodeEvent attempts to decode an event payload if the type URL matches.
func DecodeEvent(page *pb.EventPage, typeSuffix string, msg proto.Message) bool {
	if page == nil || page.Event == nil {
		return false
	}
	if !TypeURLMatches(page.Event.TypeUrl, typeSuffix) {
		return false
	}
	return proto.Unmarshal(page.Event.Value, msg) == nil
}

// Constructors

// NewCover creates a new Cover with the given parameters.
func NewCover(domain string, root uuid.UUID, correlationID string) *pb.Cover {
	return &pb.Cover{
		Domain:        domain,
		Root:          UUIDToProto(root),
		CorrelationId: correlationID,
	}
}

// NewCoverWithEdition creates a Cover with an edition.
func NewCoverWithEdition(domain string, root uuid.UUID, correlationID string, edition *pb.Edition) *pb.Cover {
	c := NewCover(domain, root, correlationID)
	c.Edition = edition
	return c
}

// NewCommandPage creates a command page with an expected destination sequence.
func NewCommandPage(sequence uint64, command *anypb.Any) *pb.CommandPage {
	return &pb.CommandPage{
		Sequence: sequence,
		Command:  command,
	}
}

// NewCommandBook creates a CommandBook from a cover and pages.
func NewCommandBook(cover *pb.Cover, pages ...*pb.CommandPage) *pb.CommandBook {
	return &pb.CommandBook{
		Cover: cover,
		Pages: pages,
	}
}

// NewQueryWithRange creates a Query with a cover and range selection.
func NewQueryWithRange(cover *pb.Cover, lower uint64, upper *uint64) *pb.Query {
	r := &pb.SequenceRange{Lower: lower}
	if upper != nil {
		r.Upper = upper
	}
	return &pb.Query{
		Cover:     cover,
		Selection: &pb.Query_Range{Range: r},
	}
}

// NewQueryWithTemporal creates a Query with a temporal selection.
func NewQueryWithTemporal(cover *pb.Cover, temporal *pb.TemporalQuery) *pb.Query {
	return &pb.Query{
		Cover:     cover,
		Selection: &pb.Query_Temporal{Temporal: temporal},
	}
}
