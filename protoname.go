// Proto type name helpers. The short name (last dotted segment of a
// type_url) is the dispatch key everywhere in the runtime; routers match on
// type_url suffix and nothing else.
package angzarr

import (
	"os"
	"strings"

	"google.golang.org/protobuf/proto"
)

// DefaultTypeURLPrefix is the prefix applied to packed payloads when no
// explicit prefix is configured.
const DefaultTypeURLPrefix = "type.examples/examples."

// TypeURLPrefixEnvVar overrides the packing prefix per component.
const TypeURLPrefixEnvVar = "TYPE_URL_PREFIX"

// TypeURLPrefix returns the configured type_url prefix for packed payloads.
func TypeURLPrefix() string {
	if p := os.Getenv(TypeURLPrefixEnvVar); p != "" {
		return p
	}
	return DefaultTypeURLPrefix
}

// Name extracts the short type name from a proto message using reflection.
// Example: Name(&examples.CreateOrder{}) returns "CreateOrder".
func Name(msg proto.Message) string {
	return string(msg.ProtoReflect().Descriptor().Name())
}

// TypeURL builds the full type URL for a proto message with the configured prefix.
// Example: TypeURL(&examples.CreateOrder{}) returns "type.examples/examples.CreateOrder".
func TypeURL(msg proto.Message) string {
	return TypeURLPrefix() + Name(msg)
}

// TypeURLWithPrefix builds a type URL with an explicit prefix.
func TypeURLWithPrefix(prefix string, msg proto.Message) string {
	return prefix + Name(msg)
}

// ShortName extracts the short type name from a type URL: the segment after
// the last '.' or, failing that, the last '/'.
func ShortName(typeURL string) string {
	if idx := strings.LastIndex(typeURL, "."); idx >= 0 {
		return typeURL[idx+1:]
	}
	if idx := strings.LastIndex(typeURL, "/"); idx >= 0 {
		return typeURL[idx+1:]
	}
	return typeURL
}

// TypeURLMatches checks if a type URL ends with the given suffix.
// This is the sole cross-language identity rule for dispatch.
func TypeURLMatches(typeURL, suffix string) bool {
	return strings.HasSuffix(typeURL, suffix)
}
