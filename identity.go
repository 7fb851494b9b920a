package angzarr

import (
	"github.com/google/uuid"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// identitySeedPrefix is shared by every conformant angzarr implementation so
// that the same (domain, business_key) pair yields byte-identical roots in
// any language.
const identitySeedPrefix = "angzarr"

// ComputeRoot derives a deterministic aggregate root UUID from a domain and
// business key.
//
// The UUID is a version-5 style name hash of "angzarr" + domain + key in the
// OID namespace.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := identitySeedPrefix + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// ComputeRootProto derives a root and returns it as a proto UUID.
func ComputeRootProto(domain, businessKey string) *pb.UUID {
	return UUIDToProto(ComputeRoot(domain, businessKey))
}

// ProcessRootForCorrelation derives a process manager's own aggregate root
// from the correlation id of the workflow it coordinates. Every trigger in
// one causal chain lands on the same process state.
func ProcessRootForCorrelation(correlationID string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(correlationID))
}

// Convenience root constructors for common domains.

// CustomerRoot computes a deterministic root UUID for a customer aggregate.
func CustomerRoot(email string) uuid.UUID {
	return ComputeRoot("customer", email)
}

// ProductRoot computes a deterministic root UUID for a product aggregate.
func ProductRoot(sku string) uuid.UUID {
	return ComputeRoot("product", sku)
}

// OrderRoot computes a deterministic root UUID for an order aggregate.
func OrderRoot(orderID string) uuid.UUID {
	return ComputeRoot("order", orderID)
}

// InventoryRoot computes a deterministic root UUID for an inventory aggregate.
func InventoryRoot(productID string) uuid.UUID {
	return ComputeRoot("inventory", productID)
}

// CartRoot computes a deterministic root UUID for a cart aggregate.
func CartRoot(customerID string) uuid.UUID {
	return ComputeRoot("cart", customerID)
}

// FulfillmentRoot computes a deterministic root UUID for a fulfillment aggregate.
func FulfillmentRoot(orderID string) uuid.UUID {
	return ComputeRoot("fulfillment", orderID)
}
