package angzarr

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGetTransportConfig(t *testing.T) {
	t.Run("defaults to tcp on the fallback port", func(t *testing.T) {
		t.Setenv(PortEnvVar, "")
		t.Setenv(SocketPathEnvVar, "")

		config := GetTransportConfig("50060")
		if config.Type != "tcp" || config.Address != "[::]:50060" {
			t.Errorf("unexpected config: %+v", config)
		}
	})

	t.Run("PORT overrides the fallback", func(t *testing.T) {
		t.Setenv(PortEnvVar, "9999")
		t.Setenv(SocketPathEnvVar, "")

		config := GetTransportConfig("50060")
		if config.Address != "[::]:9999" {
			t.Errorf("unexpected address: %s", config.Address)
		}
	})

	t.Run("empty fallback uses the package default", func(t *testing.T) {
		t.Setenv(PortEnvVar, "")
		t.Setenv(SocketPathEnvVar, "")

		config := GetTransportConfig("")
		if config.Address != "[::]:"+defaultPort {
			t.Errorf("unexpected address: %s", config.Address)
		}
	})

	t.Run("SOCKET_PATH selects uds and wins over PORT", func(t *testing.T) {
		socketPath := filepath.Join(t.TempDir(), "sockets", "component.sock")
		t.Setenv(PortEnvVar, "9999")
		t.Setenv(SocketPathEnvVar, socketPath)

		config := GetTransportConfig("50060")
		if config.Type != "uds" || config.Address != socketPath {
			t.Errorf("unexpected config: %+v", config)
		}
	})
}

func TestTransportConfigListen(t *testing.T) {
	t.Run("tcp listener", func(t *testing.T) {
		config := TransportConfig{Type: "tcp", Address: "127.0.0.1:0"}
		listener, err := config.Listen()
		if err != nil {
			t.Fatalf("listen failed: %v", err)
		}
		defer listener.Close()
		if listener.Addr().Network() != "tcp" {
			t.Errorf("unexpected network: %s", listener.Addr().Network())
		}
	})

	t.Run("uds listener", func(t *testing.T) {
		socketPath := filepath.Join(t.TempDir(), "test.sock")
		config := TransportConfig{Type: "uds", Address: socketPath}
		listener, err := config.Listen()
		if err != nil {
			t.Fatalf("listen failed: %v", err)
		}
		defer listener.Close()
		defer CleanupSocket(socketPath)
		if listener.Addr().Network() != "unix" {
			t.Errorf("unexpected network: %s", listener.Addr().Network())
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("honors LOG_LEVEL", func(t *testing.T) {
		t.Setenv(LogLevelEnvVar, "debug")
		logger, err := NewLogger("order")
		if err != nil {
			t.Fatalf("logger failed: %v", err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug level should be enabled")
		}
	})

	t.Run("rejects garbage levels", func(t *testing.T) {
		t.Setenv(LogLevelEnvVar, "chatty")
		if _, err := NewLogger("order"); err == nil {
			t.Error("expected error for invalid level")
		}
	})
}

func TestCreateServer(t *testing.T) {
	t.Setenv(PortEnvVar, "0")
	t.Setenv(SocketPathEnvVar, "")

	registered := false
	server, listener, cleanup, err := CreateServer(
		RegisterAggregateHandler(testOrderRouter()),
		ServerOptions{ServiceName: "Aggregate", Domain: "order"},
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer cleanup()
	defer listener.Close()
	defer server.Stop()

	for name := range server.GetServiceInfo() {
		if name == "angzarr.AggregateService" {
			registered = true
		}
	}
	if !registered {
		t.Error("aggregate service should be registered")
	}
	if _, ok := server.GetServiceInfo()["grpc.health.v1.Health"]; !ok {
		t.Error("health service should be registered")
	}
}
