// Event packing: wrapping payloads into sequenced, timestamped pages.
package angzarr

import (
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// packClock supplies created_at timestamps. Tests override it for
// deterministic packing.
var packClock = time.Now

// SetPackClock replaces the packing clock and returns a restore function.
func SetPackClock(clock func() time.Time) func() {
	prev := packClock
	packClock = clock
	return func() { packClock = prev }
}

func packTimestamp() *timestamppb.Timestamp {
	return timestamppb.New(packClock())
}

// PackPayload marshals a proto message into an Any using the configured
// type_url prefix.
func PackPayload(msg proto.Message) (*anypb.Any, error) {
	return PackPayloadWithPrefix(TypeURLPrefix(), msg)
}

// PackPayloadWithPrefix marshals a proto message into an Any with an explicit prefix.
func PackPayloadWithPrefix(prefix string, msg proto.Message) (*anypb.Any, error) {
	value, err := proto.Marshal(msg)
	if err != nil {
		return nil, InvalidArgumentError("failed to marshal " + Name(msg) + ": " + err.Error())
	}
	return &anypb.Any{TypeUrl: prefix + Name(msg), Value: value}, nil
}

// PackEvent wraps a single payload into an EventBook with one page at the
// given sequence.
func PackEvent(cover *pb.Cover, event proto.Message, seq uint64) (*pb.EventBook, error) {
	eventAny, err := PackPayload(event)
	if err != nil {
		return nil, err
	}
	return &pb.EventBook{
		Cover: cover,
		Pages: []*pb.EventPage{{
			Sequence:  seq,
			Event:     eventAny,
			CreatedAt: packTimestamp(),
		}},
	}, nil
}

// PackEvents wraps multiple payloads into an EventBook with sequential
// numbering from startSeq. Sequence fields are honored literally; pages are
// emitted in argument order.
func PackEvents(cover *pb.Cover, events []proto.Message, startSeq uint64) (*pb.EventBook, error) {
	pages := make([]*pb.EventPage, 0, len(events))
	for i, event := range events {
		eventAny, err := PackPayload(event)
		if err != nil {
			return nil, err
		}
		pages = append(pages, &pb.EventPage{
			Sequence:  startSeq + uint64(i),
			Event:     eventAny,
			CreatedAt: packTimestamp(),
		})
	}
	return &pb.EventBook{
		Cover: cover,
		Pages: pages,
	}, nil
}

// PackCommand wraps a single payload into a CommandBook with the expected
// destination sequence.
func PackCommand(cover *pb.Cover, command proto.Message, expectedSeq uint64) (*pb.CommandBook, error) {
	cmdAny, err := PackPayload(command)
	if err != nil {
		return nil, err
	}
	return &pb.CommandBook{
		Cover: cover,
		Pages: []*pb.CommandPage{{
			Sequence: expectedSeq,
			Command:  cmdAny,
		}},
	}, nil
}
