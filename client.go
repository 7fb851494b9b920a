// Gateway-facing clients: command submission and event retrieval.
package angzarr

import (
	"context"
	"io"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "github.com/angzarr-io/angzarr-go/proto/angzarr"
)

// formatEndpoint converts an endpoint to gRPC target format.
// Supports TCP (host:port) and Unix domain sockets; UDS paths are detected
// by a leading '/' or './' and converted to unix:// URIs.
func formatEndpoint(endpoint string) string {
	if strings.HasPrefix(endpoint, "/") || strings.HasPrefix(endpoint, "./") {
		return "unix://" + endpoint
	}
	return endpoint
}

func dial(endpoint string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(formatEndpoint(endpoint), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, TransportError(err)
	}
	return conn, nil
}

// withCorrelation propagates the book's correlation_id as gRPC metadata.
func withCorrelation(ctx context.Context, v any) context.Context {
	if id := CorrelationID(v); id != "" {
		return metadata.AppendToOutgoingContext(ctx, CorrelationIDHeader, id)
	}
	return ctx
}

// QueryClient wraps the EventQueryService for event retrieval.
type QueryClient struct {
	inner pb.EventQueryServiceClient
	conn  *grpc.ClientConn
}

// NewQueryClient connects to an event query service at the given endpoint.
func NewQueryClient(endpoint string) (*QueryClient, error) {
	conn, err := dial(endpoint)
	if err != nil {
		return nil, err
	}
	return QueryClientFromConn(conn), nil
}

// QueryClientFromEnv connects using an environment variable with fallback.
func QueryClientFromEnv(envVar, defaultEndpoint string) (*QueryClient, error) {
	endpoint := os.Getenv(envVar)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return NewQueryClient(endpoint)
}

// QueryClientFromConn creates a client from an existing connection.
func QueryClientFromConn(conn *grpc.ClientConn) *QueryClient {
	return &QueryClient{
		inner: pb.NewEventQueryServiceClient(conn),
		conn:  conn,
	}
}

// GetEventBook retrieves a single EventBook for the query.
func (c *QueryClient) GetEventBook(ctx context.Context, query *pb.Query) (*pb.EventBook, error) {
	resp, err := c.inner.GetEventBook(withCorrelation(ctx, query), query)
	if err != nil {
		return nil, GRPCError(err)
	}
	return resp, nil
}

// GetEvents retrieves all EventBooks matching the query.
func (c *QueryClient) GetEvents(ctx context.Context, query *pb.Query) ([]*pb.EventBook, error) {
	stream, err := c.inner.GetEvents(withCorrelation(ctx, query), query)
	if err != nil {
		return nil, GRPCError(err)
	}

	var books []*pb.EventBook
	for {
		book, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return books, GRPCError(err)
		}
		books = append(books, book)
	}
	return books, nil
}

// Close closes the underlying connection.
func (c *QueryClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// AggregateClient wraps the CommandGatewayService for command submission.
type AggregateClient struct {
	inner pb.CommandGatewayServiceClient
	conn  *grpc.ClientConn
}

// NewAggregateClient connects to a command gateway at the given endpoint.
func NewAggregateClient(endpoint string) (*AggregateClient, error) {
	conn, err := dial(endpoint)
	if err != nil {
		return nil, err
	}
	return AggregateClientFromConn(conn), nil
}

// AggregateClientFromEnv connects using an environment variable with fallback.
func AggregateClientFromEnv(envVar, defaultEndpoint string) (*AggregateClient, error) {
	endpoint := os.Getenv(envVar)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return NewAggregateClient(endpoint)
}

// AggregateClientFromConn creates a client from an existing connection.
func AggregateClientFromConn(conn *grpc.ClientConn) *AggregateClient {
	return &AggregateClient{
		inner: pb.NewCommandGatewayServiceClient(conn),
		conn:  conn,
	}
}

// Handle submits a command asynchronously.
func (c *AggregateClient) Handle(ctx context.Context, cmd *pb.CommandBook) (*pb.CommandResponse, error) {
	resp, err := c.inner.Handle(withCorrelation(ctx, cmd), cmd)
	if err != nil {
		return nil, GRPCError(err)
	}
	return resp, nil
}

// HandleSync submits a command and blocks until synchronous downstream
// consumers have observed the produced events.
func (c *AggregateClient) HandleSync(ctx context.Context, cmd *pb.CommandBook) (*pb.CommandResponse, error) {
	resp, err := c.inner.HandleSync(withCorrelation(ctx, cmd), cmd)
	if err != nil {
		return nil, GRPCError(err)
	}
	return resp, nil
}

// Close closes the underlying connection.
func (c *AggregateClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// DomainClient combines command and query clients for a single domain
// behind one connection.
type DomainClient struct {
	Aggregate *AggregateClient
	Query     *QueryClient
	conn      *grpc.ClientConn
}

// NewDomainClient connects to a domain's gateway at the given endpoint.
func NewDomainClient(endpoint string) (*DomainClient, error) {
	conn, err := dial(endpoint)
	if err != nil {
		return nil, err
	}
	return DomainClientFromConn(conn), nil
}

// DomainClientFromEnv connects using an environment variable with fallback.
func DomainClientFromEnv(envVar, defaultEndpoint string) (*DomainClient, error) {
	endpoint := os.Getenv(envVar)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return NewDomainClient(endpoint)
}

// DomainClientFromConn creates a client from an existing connection.
func DomainClientFromConn(conn *grpc.ClientConn) *DomainClient {
	return &DomainClient{
		Aggregate: AggregateClientFromConn(conn),
		Query:     QueryClientFromConn(conn),
		conn:      conn,
	}
}

// Execute is a convenience method that delegates to Aggregate.Handle.
func (c *DomainClient) Execute(ctx context.Context, cmd *pb.CommandBook) (*pb.CommandResponse, error) {
	return c.Aggregate.Handle(ctx, cmd)
}

// Close closes the underlying connection.
func (c *DomainClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
