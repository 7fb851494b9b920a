package angzarr

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// Decoder turns a packed Any into a typed payload.
type Decoder func(*anypb.Any) (proto.Message, error)

type registryEntry struct {
	shortName string
	decoder   Decoder
}

// TypeRegistry maps short type names to decoders for the payload types a
// component handles. Lookup is by type_url suffix.
//
// Registration happens at startup and the registry is read-only afterwards;
// ambiguous registrations fail loudly at registration time.
//
// Example:
//
//	registry := angzarr.NewTypeRegistry().
//	    RegisterMessage(&examples.CreateOrder{}).
//	    RegisterMessage(&examples.OrderCreated{})
//
//	msg, err := registry.Decode(page.Event)
type TypeRegistry struct {
	prefix  string
	entries []registryEntry
}

// NewTypeRegistry creates a registry with the configured type_url prefix.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{prefix: TypeURLPrefix()}
}

// WithPrefix overrides the prefix used by Encode.
func (r *TypeRegistry) WithPrefix(prefix string) *TypeRegistry {
	r.prefix = prefix
	return r
}

// Register adds a decoder for a short type name.
//
// Panics when the new name is a suffix of an existing registration or vice
// versa: such a pair would make suffix dispatch ambiguous.
func (r *TypeRegistry) Register(shortName string, decoder Decoder) *TypeRegistry {
	if shortName == "" {
		panic("angzarr: cannot register empty type name")
	}
	for _, e := range r.entries {
		if strings.HasSuffix(e.shortName, shortName) || strings.HasSuffix(shortName, e.shortName) {
			panic(fmt.Sprintf("angzarr: ambiguous type registration: %q collides with %q", shortName, e.shortName))
		}
	}
	r.entries = append(r.entries, registryEntry{shortName: shortName, decoder: decoder})
	return r
}

// RegisterMessage registers a proto message under its own short name with a
// decoder that unmarshals into a fresh instance of the same type.
func (r *TypeRegistry) RegisterMessage(msg proto.Message) *TypeRegistry {
	tmpl := msg.ProtoReflect()
	return r.Register(Name(msg), func(a *anypb.Any) (proto.Message, error) {
		out := tmpl.New().Interface()
		if err := proto.Unmarshal(a.GetValue(), out); err != nil {
			return nil, InvalidArgumentError("failed to decode " + a.GetTypeUrl() + ": " + err.Error())
		}
		return out, nil
	})
}

// Decode finds the decoder whose short name matches the Any's type_url suffix
// and invokes it. Returns ErrUnknownType when nothing matches.
func (r *TypeRegistry) Decode(a *anypb.Any) (proto.Message, error) {
	if a == nil || a.TypeUrl == "" {
		return nil, InvalidArgumentError("empty payload")
	}
	for _, e := range r.entries {
		if strings.HasSuffix(a.TypeUrl, e.shortName) {
			return e.decoder(a)
		}
	}
	return nil, UnknownTypeError(a.TypeUrl)
}

// Encode packs a proto message into an Any with the registry's prefix.
func (r *TypeRegistry) Encode(msg proto.Message) (*anypb.Any, error) {
	value, err := proto.Marshal(msg)
	if err != nil {
		return nil, InvalidArgumentError("failed to marshal " + Name(msg) + ": " + err.Error())
	}
	return &anypb.Any{TypeUrl: r.prefix + Name(msg), Value: value}, nil
}

// Handles reports whether the registry has a decoder matching the type URL.
func (r *TypeRegistry) Handles(typeURL string) bool {
	for _, e := range r.entries {
		if strings.HasSuffix(typeURL, e.shortName) {
			return true
		}
	}
	return false
}

// Names returns the registered short names in insertion order.
func (r *TypeRegistry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.shortName
	}
	return names
}
