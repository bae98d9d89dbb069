// Package service tests the MCP server wiring.
package service

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flopperam/unrealmcp/internal/unreal"
)

// startFakeEngine runs a loopback TCP listener that answers every command
// with the provided JSON document, mimicking the editor plugin protocol.
func startFakeEngine(t *testing.T, reply string) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				buf := make([]byte, 4096)
				var payload []byte
				for {
					n, err := conn.Read(buf)
					if n > 0 {
						payload = append(payload, buf[:n]...)
						if json.Valid(payload) {
							break
						}
					}
					if err != nil {
						return
					}
				}
				conn.Write([]byte(reply))
			}(conn)
		}
	}()

	return listener.Addr().String()
}

// TestEngineAddressPrefersEnv ensures env configuration overrides defaults.
func TestEngineAddressPrefersEnv(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "env:123")
	if got := engineAddress("fallback:1"); got != "env:123" {
		t.Fatalf("expected env address, got %q", got)
	}
}

// TestEngineAddressFallback ensures the fallback address is used when env is empty.
func TestEngineAddressFallback(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "")
	if got := engineAddress("fallback:1"); got != "fallback:1" {
		t.Fatalf("expected fallback address, got %q", got)
	}
}

// TestEngineAddressDefault ensures the editor plugin default is used last.
func TestEngineAddressDefault(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "")
	if got := engineAddress(""); got != "127.0.0.1:55557" {
		t.Fatalf("expected default address, got %q", got)
	}
}

// TestServeRequiresConfiguredServer ensures Serve returns an error when unconfigured.
func TestServeRequiresConfiguredServer(t *testing.T) {
	tests := []struct {
		name   string
		server *Server
	}{
		{name: "nil server", server: nil},
		{name: "missing mcp server", server: &Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.server.Serve(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestNewConfiguresServer ensures New returns a configured server.
func TestNewConfiguresServer(t *testing.T) {
	server := New("127.0.0.1:55557")
	if server == nil || server.mcpServer == nil {
		t.Fatal("expected configured server")
	}
	if server.Client() == nil {
		t.Fatal("expected engine client")
	}
}

// TestRunRejectsUnknownTransport ensures unsupported transports fail fast.
func TestRunRejectsUnknownTransport(t *testing.T) {
	err := Run(context.Background(), Config{Transport: TransportKind("carrier-pigeon")})
	if err == nil {
		t.Fatal("expected error")
	}
}

// TestServeStopsOnContext ensures Serve exits when the context is cancelled.
func TestServeStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := New("127.0.0.1:55557")

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), time.Second)
	defer clientCancel()
	clientSession, err := client.Connect(clientCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer clientSession.Close()

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

// TestRegistersAllTools lists tools over an in-memory session and checks the
// full surface is registered.
func TestRegistersAllTools(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	server := New("127.0.0.1:55557")

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	go func() {
		_ = server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer clientSession.Close()

	result, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	names := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}

	expected := []string{
		"get_actors_in_level",
		"find_actors_by_name",
		"spawn_actor",
		"delete_actor",
		"set_actor_transform",
		"create_blueprint",
		"add_component_to_blueprint",
		"set_static_mesh_properties",
		"set_physics_properties",
		"compile_blueprint",
		"spawn_blueprint_actor",
		"spawn_physics_blueprint_actor",
		"set_mesh_material_color",
		"set_actor_material_color",
		"create_blueprint_variable",
		"add_blueprint_event_node",
		"add_blueprint_function_node",
		"add_blueprint_branch_node",
		"connect_blueprint_nodes",
		"create_blueprint_custom_event",
		"create_simple_blueprint_from_description",
		"create_interactive_blueprint",
		"create_blueprint_from_prompt",
		"create_pyramid",
		"create_wall",
		"create_tower",
		"create_staircase",
		"create_arch",
		"create_obstacle_course",
		"construct_house",
		"create_maze",
		"create_town",
		"create_castle_fortress",
		"generate_building",
	}
	for _, name := range expected {
		if !names[name] {
			t.Fatalf("tool %s is not registered", name)
		}
	}
	if len(result.Tools) != len(expected) {
		t.Fatalf("expected %d tools, got %d", len(expected), len(result.Tools))
	}
}

// TestCallToolReachesEngine drives spawn_actor end to end through a fake
// editor listener.
func TestCallToolReachesEngine(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	addr := startFakeEngine(t, `{"status":"success","result":{"name":"Wall_01"}}`)
	server := New(addr)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	go func() {
		_ = server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer clientSession.Close()

	result, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name: "spawn_actor",
		Arguments: map[string]any{
			"name": "Wall_01",
			"type": "StaticMeshActor",
		},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error result: %v", result.Content)
	}
}

// TestHandleMessagesInitializeRoundTrip POSTs a JSON-RPC initialize through
// the HTTP transport and expects a decoded response and a session header.
func TestHandleMessagesInitializeRoundTrip(t *testing.T) {
	server := New("127.0.0.1:55557")
	transport := NewHTTPTransportWithServer("localhost:0", server.mcpServer, server.client, "")

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{` +
		`"protocolVersion":"2024-11-05","capabilities":{},` +
		`"clientInfo":{"name":"client","version":"v0.0.1"}}}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	rec := httptest.NewRecorder()
	transport.handleMessages(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	sessionID := rec.Header().Get("X-MCP-Session-ID")
	if sessionID == "" {
		t.Fatal("expected session header")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	msg, err := jsonrpc.DecodeMessage(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		t.Fatalf("expected response message, got %T", msg)
	}
	if resp.Error != nil {
		t.Fatalf("initialize failed: %v", resp.Error)
	}

	var result struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.ServerInfo.Name != serverName {
		t.Fatalf("expected server name %q, got %q", serverName, result.ServerInfo.Name)
	}

	// The follow-up notification on the same session gets no body back.
	notif := `{"jsonrpc":"2.0","method":"notifications/initialized"}`
	req = httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(notif))
	req.Header.Set("X-MCP-Session-ID", sessionID)
	rec = httptest.NewRecorder()
	transport.handleMessages(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for notification, got %d", rec.Code)
	}
}

// TestHandleMessagesRejectsMalformedBody ensures invalid JSON-RPC gets a 400.
func TestHandleMessagesRejectsMalformedBody(t *testing.T) {
	server := New("127.0.0.1:55557")
	transport := NewHTTPTransportWithServer("localhost:0", server.mcpServer, server.client, "")

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"not":"jsonrpc"}`))
	rec := httptest.NewRecorder()
	transport.handleMessages(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestHealthEndpointReportsEngine checks /mcp/health JSON for both a live
// and a dead editor bridge.
func TestHealthEndpointReportsEngine(t *testing.T) {
	tests := []struct {
		name   string
		addr   func(t *testing.T) string
		engine string
	}{
		{
			name:   "connected",
			addr:   func(t *testing.T) string { return startFakeEngine(t, `{"status":"success","result":[]}`) },
			engine: "connected",
		},
		{
			name: "unreachable",
			addr: func(t *testing.T) string {
				listener, err := net.Listen("tcp", "127.0.0.1:0")
				if err != nil {
					t.Fatalf("listen: %v", err)
				}
				addr := listener.Addr().String()
				listener.Close()
				return addr
			},
			engine: "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := unreal.NewClient(tt.addr(t))
			transport := NewHTTPTransportWithServer("localhost:0", nil, client, "")

			req := httptest.NewRequest(http.MethodGet, "/mcp/health", nil)
			rec := httptest.NewRecorder()
			transport.handleHealth(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var status healthStatus
			if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
				t.Fatalf("decode health: %v", err)
			}
			if status.Status != "ok" {
				t.Fatalf("expected status ok, got %q", status.Status)
			}
			if status.Engine != tt.engine {
				t.Fatalf("expected engine %q, got %q", tt.engine, status.Engine)
			}
		})
	}
}

// TestRequireAuthEnforcesBearerToken covers missing, wrong and valid tokens.
func TestRequireAuthEnforcesBearerToken(t *testing.T) {
	transport := NewHTTPTransportWithServer("localhost:0", nil, nil, "secret")

	var reached bool
	handler := transport.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		code   int
		pass   bool
	}{
		{name: "missing", header: "", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic secret", code: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer nope", code: http.StatusUnauthorized},
		{name: "valid", header: "Bearer secret", code: http.StatusNoContent, pass: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if reached != tt.pass {
				t.Fatalf("expected reached=%v, got %v", tt.pass, reached)
			}
		})
	}
}

// TestRequireAuthDisabledWithoutToken ensures requests pass when no token is set.
func TestRequireAuthDisabledWithoutToken(t *testing.T) {
	transport := NewHTTPTransportWithServer("localhost:0", nil, nil, "")

	handler := transport.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
