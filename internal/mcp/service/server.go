package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/flopperam/unrealmcp/internal/unreal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Unreal MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over HTTP with SSE streaming.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	EngineAddr string
	Transport  TransportKind
	HTTPAddr   string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.
	APIToken   string // Optional bearer token required on HTTP endpoints when set.
}

// Server hosts the MCP server and the TCP bridge to the Unreal editor.
type Server struct {
	mcpServer *mcp.Server
	client    *unreal.Client
}

// New creates a configured MCP server that forwards tool calls to the Unreal
// editor bridge at engineAddr. The editor connection is dialed per command, so
// New succeeds even when the editor is not yet running.
func New(engineAddr string, opts ...unreal.Option) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	client := unreal.NewClient(engineAddress(engineAddr), opts...)

	registerActorTools(mcpServer, client)
	registerBlueprintTools(mcpServer, client)
	registerMaterialTools(mcpServer, client)
	registerGraphTools(mcpServer, client)
	registerStructureTools(mcpServer, client)
	registerTownTools(mcpServer, client)
	registerCastleTools(mcpServer, client)
	registerBuildingTools(mcpServer, client)

	return &Server{mcpServer: mcpServer, client: client}
}

// Client returns the Unreal editor client used by the server's tools.
func (s *Server) Client() *unreal.Client {
	if s == nil {
		return nil
	}
	return s.client
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, cfg Config, opts ...unreal.Option) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		server := New(cfg.EngineAddr, opts...)
		server.logEngineStatus(ctx)
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg, opts...)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithHTTPTransport creates a server and serves it over HTTP transport.
func runWithHTTPTransport(ctx context.Context, cfg Config, opts ...unreal.Option) error {
	// Default to localhost-only binding for security
	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = "localhost:8081"
	}

	server := New(cfg.EngineAddr, opts...)
	server.logEngineStatus(ctx)

	// Watch the editor bridge in the background so connection failures show
	// up in logs even when no tool calls are in flight.
	monitorCtx, monitorCancel := context.WithCancel(ctx)
	defer monitorCancel()
	go server.monitorEngine(monitorCtx)

	httpTransport := NewHTTPTransportWithServer(httpAddr, server.mcpServer, server.client, cfg.APIToken)

	return httpTransport.Start(ctx)
}

// logEngineStatus pings the editor bridge once at startup. The editor may be
// launched after the server, so an unreachable bridge is logged, not fatal.
func (s *Server) logEngineStatus(ctx context.Context) {
	callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Ping(callCtx); err != nil {
		log.Printf("Unreal editor at %s is not reachable yet: %v", s.client.Addr(), err)
		return
	}
	log.Printf("Connected to Unreal editor at %s", s.client.Addr())
}

// monitorEngine periodically pings the editor bridge. Failures are logged but
// do not terminate the HTTP server; individual tool calls report their own
// connection errors.
func (s *Server) monitorEngine(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := s.client.Ping(callCtx)
			cancel()
			if err != nil {
				log.Printf("Unreal editor health check failed: %v", err)
			}
		}
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// engineAddress resolves the Unreal editor bridge address from env or defaults.
func engineAddress(fallback string) string {
	if value := os.Getenv("UNREAL_MCP_ENGINE_ADDR"); value != "" {
		return value
	}
	if fallback != "" {
		return fallback
	}
	return "127.0.0.1:55557"
}
