// gRPC server lifecycle: transport config from the environment, health
// checks, reflection, graceful shutdown.
package angzarr

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Environment variables read by RunServer.
const (
	PortEnvVar          = "PORT"
	SocketPathEnvVar    = "SOCKET_PATH"
	ComponentNameEnvVar = "COMPONENT_NAME"
	LogLevelEnvVar      = "LOG_LEVEL"
)

const defaultPort = "50052"

// TransportConfig holds the resolved listen configuration.
type TransportConfig struct {
	Type    string // "tcp" or "uds"
	Address string // "[::]:port" for TCP, socket path for UDS
}

// GetTransportConfig resolves transport from the environment.
//
// SOCKET_PATH selects a Unix domain socket; otherwise PORT selects TCP,
// falling back to the given default port.
func GetTransportConfig(fallbackPort string) TransportConfig {
	if socketPath := os.Getenv(SocketPathEnvVar); socketPath != "" {
		_ = os.MkdirAll(filepath.Dir(socketPath), 0o755)
		// Remove a stale socket from a previous run.
		_ = os.Remove(socketPath)
		return TransportConfig{Type: "uds", Address: socketPath}
	}

	port := os.Getenv(PortEnvVar)
	if port == "" {
		port = fallbackPort
	}
	if port == "" {
		port = defaultPort
	}
	return TransportConfig{Type: "tcp", Address: "[::]:" + port}
}

// Listen opens the listener described by the config.
func (c TransportConfig) Listen() (net.Listener, error) {
	if c.Type == "uds" {
		return net.Listen("unix", c.Address)
	}
	return net.Listen("tcp", c.Address)
}

// ServerOptions configures RunServer.
type ServerOptions struct {
	// ServiceName is the health check service name ("Aggregate", "Saga", ...).
	ServiceName string
	// Domain is the component's domain or name, used in logs and as the
	// fallback when COMPONENT_NAME is not set.
	Domain string
	// DefaultPort is used when PORT is not set.
	DefaultPort string
	// DisableReflection turns off server reflection.
	DisableReflection bool
}

// ServiceRegistrar registers a service with the gRPC server.
type ServiceRegistrar func(server *grpc.Server)

// NewLogger builds the process logger, honoring LOG_LEVEL.
func NewLogger(component string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level := os.Getenv(LogLevelEnvVar); level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", LogLevelEnvVar, level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger.With(zap.String("component", component)), nil
}

// CreateServer builds a gRPC server with health checking and reflection.
//
// Health status flips to SERVING only after the registrar has run, so
// orchestrators never route to a component before its descriptor is
// available. Returns the server, its listener, and a cleanup function.
func CreateServer(registrar ServiceRegistrar, opts ServerOptions) (*grpc.Server, net.Listener, func(), error) {
	config := GetTransportConfig(opts.DefaultPort)

	listener, err := config.Listen()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to listen on %s: %w", config.Address, err)
	}

	server := grpc.NewServer()
	registrar(server)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	if opts.ServiceName != "" {
		healthServer.SetServingStatus(opts.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	if !opts.DisableReflection {
		reflection.Register(server)
	}

	cleanup := func() {
		if config.Type == "uds" {
			_ = os.Remove(config.Address)
		}
	}

	return server, listener, cleanup, nil
}

// RunServer runs a gRPC server until SIGINT or SIGTERM, then drains
// in-flight requests. Blocks until the server exits.
func RunServer(registrar ServiceRegistrar, opts ServerOptions) error {
	component := os.Getenv(ComponentNameEnvVar)
	if component == "" {
		component = opts.Domain
	}

	logger, err := NewLogger(component)
	if err != nil {
		return err
	}
	defer logger.Sync()

	server, listener, cleanup, err := CreateServer(registrar, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("server started",
		zap.String("service", opts.ServiceName),
		zap.String("address", listener.Addr().String()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		server.GracefulStop()
	}()

	if err := server.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// CleanupSocket removes a UDS socket file.
func CleanupSocket(socketPath string) {
	if socketPath != "" {
		_ = os.Remove(socketPath)
	}
}
