package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/flopperam/unrealmcp/internal/unreal"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// sessionIdleTTL is how long a session may go unused before cleanup.
	sessionIdleTTL = 15 * time.Minute
	// sessionSweepInterval is how often expired sessions are removed.
	sessionSweepInterval = time.Minute
)

// HTTPTransport implements mcp.Transport for HTTP-based MCP communication.
// It provides an HTTP server that handles JSON-RPC messages over POST requests
// and supports Server-Sent Events (SSE) for streaming responses.
type HTTPTransport struct {
	addr         string
	server       *mcp.Server
	client       *unreal.Client
	authToken    string
	sessions     map[string]*httpSession
	sessionsMu   sync.RWMutex
	httpServer   *http.Server
	serverCtx    context.Context
	serverCancel context.CancelFunc
	serverOnceMu sync.Mutex
	serverOnce   map[string]*sync.Once
}

// httpSession maintains state for an HTTP client connection.
type httpSession struct {
	id        string
	conn      *httpConnection
	createdAt time.Time
	lastUsed  time.Time
}

// httpConnection implements mcp.Connection for HTTP-based communication.
type httpConnection struct {
	sessionID  string
	reqChan    chan jsonrpc.Message
	respChan   chan jsonrpc.Message
	closed     chan struct{}
	mu         sync.Mutex
	closedFlag bool
}

// NewHTTPTransport creates a new HTTP transport that will serve MCP over HTTP.
func NewHTTPTransport(addr string) *HTTPTransport {
	// Bind to localhost unless the caller asks otherwise
	if addr == "" {
		addr = "localhost:8081"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &HTTPTransport{
		addr:         addr,
		sessions:     make(map[string]*httpSession),
		serverCtx:    ctx,
		serverCancel: cancel,
		serverOnce:   make(map[string]*sync.Once),
	}
}

// NewHTTPTransportWithServer creates an HTTP transport wired to the MCP server
// and the Unreal editor client. authToken, when non-empty, is required as a
// bearer token on the /mcp endpoint.
func NewHTTPTransportWithServer(addr string, server *mcp.Server, client *unreal.Client, authToken string) *HTTPTransport {
	transport := NewHTTPTransport(addr)
	transport.server = server
	transport.client = client
	transport.authToken = authToken
	return transport
}

// Connect implements mcp.Transport.Connect.
// For HTTP transport, this creates a new session and connection that will
// be used by the MCP server's Run method. The connection waits for HTTP requests.
func (t *HTTPTransport) Connect(ctx context.Context) (mcp.Connection, error) {
	sessionID := uuid.NewString()

	conn := &httpConnection{
		sessionID: sessionID,
		reqChan:   make(chan jsonrpc.Message, 10),
		respChan:  make(chan jsonrpc.Message, 10),
		closed:    make(chan struct{}),
	}

	session := &httpSession{
		id:        sessionID,
		conn:      conn,
		createdAt: time.Now(),
		lastUsed:  time.Now(),
	}

	t.sessionsMu.Lock()
	t.sessions[sessionID] = session
	t.sessionsMu.Unlock()

	return conn, nil
}

// Start starts the HTTP server and begins handling requests.
// This should be called in a separate goroutine while the MCP server runs.
func (t *HTTPTransport) Start(ctx context.Context) error {
	// Update server context to use the provided context
	t.serverCtx, t.serverCancel = context.WithCancel(ctx)

	mux := http.NewServeMux()

	// POST /mcp - JSON-RPC request/response; GET /mcp - SSE stream
	mux.HandleFunc("/mcp", t.requireAuth(t.handleMCP))

	// GET /mcp/health - Health check endpoint
	mux.HandleFunc("/mcp/health", t.handleHealth)

	t.httpServer = &http.Server{
		Addr:    t.addr,
		Handler: mux,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	go t.sweepSessions(t.serverCtx)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		// Cancel server context to stop all server.Run goroutines
		if t.serverCancel != nil {
			t.serverCancel()
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// requireAuth enforces the bearer token on MCP endpoints when one is configured.
func (t *HTTPTransport) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if t.authToken != "" {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token != t.authToken {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

// handleMCP routes /mcp by method: POST carries JSON-RPC messages, GET opens
// an SSE stream.
func (t *HTTPTransport) handleMCP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		t.handleMessages(w, r)
	case http.MethodGet:
		t.handleSSE(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleMessages handles POST /mcp for JSON-RPC requests.
func (t *HTTPTransport) handleMessages(w http.ResponseWriter, r *http.Request) {
	// Get or create session from header
	sessionID := r.Header.Get("X-MCP-Session-ID")
	var session *httpSession
	var exists bool

	if sessionID != "" {
		t.sessionsMu.RLock()
		session, exists = t.sessions[sessionID]
		t.sessionsMu.RUnlock()
	}

	if !exists || session == nil {
		// Create new session for this request
		conn, err := t.Connect(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to create session: %v", err), http.StatusInternalServerError)
			return
		}
		sessionID = conn.SessionID()
		t.sessionsMu.RLock()
		session = t.sessions[sessionID]
		t.sessionsMu.RUnlock()
		w.Header().Set("X-MCP-Session-ID", sessionID)
	}

	// Read request body
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Parse JSON-RPC message using the SDK's decoder
	msg, err := jsonrpc.DecodeMessage(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON-RPC message: %v", err), http.StatusBadRequest)
		return
	}

	// Update last used time (protected by mutex)
	t.sessionsMu.Lock()
	session.lastUsed = time.Now()
	t.sessionsMu.Unlock()

	// Ensure MCP server is running for this connection
	// Start processing goroutine if not already started
	t.ensureServerRunning(session)

	// Send message to connection's request channel (will be read by MCP server)
	select {
	case session.conn.reqChan <- msg:
	case <-r.Context().Done():
		http.Error(w, "Request cancelled", http.StatusRequestTimeout)
		return
	}

	// Check if message is a request (has ID) or notification (no ID)
	// Message is an interface, so we need to check the concrete type
	var isRequest bool
	switch v := msg.(type) {
	case *jsonrpc.Request:
		// Request has an ID field - check if it's set (not zero value)
		id := v.ID
		isRequest = id != jsonrpc.ID{}
	case *jsonrpc.Response:
		// Response shouldn't come in as a request
		http.Error(w, "Invalid message type: response", http.StatusBadRequest)
		return
	default:
		// For other types, assume it's a request and wait for response
		isRequest = true
	}

	if isRequest {
		// Request - wait for response
		select {
		case resp := <-session.conn.respChan:
			data, err := jsonrpc.EncodeMessage(resp)
			if err != nil {
				log.Printf("Failed to encode response: %v", err)
				http.Error(w, "Failed to encode response", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			if _, err := w.Write(data); err != nil {
				log.Printf("Failed to write response: %v", err)
			}
		case <-r.Context().Done():
			http.Error(w, "Request cancelled", http.StatusRequestTimeout)
			return
		}
	} else {
		// Notification - no response
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleSSE handles GET /mcp for Server-Sent Events streaming.
func (t *HTTPTransport) handleSSE(w http.ResponseWriter, r *http.Request) {
	// Get or create session
	sessionID := r.URL.Query().Get("session")
	var session *httpSession
	var exists bool

	if sessionID != "" {
		t.sessionsMu.RLock()
		session, exists = t.sessions[sessionID]
		t.sessionsMu.RUnlock()
	}

	if !exists || session == nil {
		conn, err := t.Connect(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to create session: %v", err), http.StatusInternalServerError)
			return
		}
		sessionID = conn.SessionID()
		t.sessionsMu.RLock()
		session = t.sessions[sessionID]
		t.sessionsMu.RUnlock()
	}

	// Set up SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-MCP-Session-ID", sessionID)

	// Flush headers
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	// Stream messages from the connection's response channel
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-session.conn.closed:
			return
		case msg := <-session.conn.respChan:
			// Send as SSE event
			data, err := jsonrpc.EncodeMessage(msg)
			if err != nil {
				log.Printf("Failed to marshal SSE message: %v", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

// healthStatus is the /mcp/health response body.
type healthStatus struct {
	Status   string `json:"status"`
	Engine   string `json:"engine"`
	Sessions int    `json:"sessions"`
}

// handleHealth handles GET /mcp/health for health checks. The endpoint is
// unauthenticated so orchestrators can probe it without the API token.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := healthStatus{Status: "ok", Engine: "unknown"}
	if t.client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := t.client.Ping(ctx); err != nil {
			status.Engine = "unreachable"
		} else {
			status.Engine = "connected"
		}
	}

	t.sessionsMu.RLock()
	status.Sessions = len(t.sessions)
	t.sessionsMu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Printf("Failed to encode health response: %v", err)
	}
}

// sweepSessions closes and removes sessions that have been idle past the TTL.
func (t *HTTPTransport) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-sessionIdleTTL)

			t.sessionsMu.Lock()
			var expired []*httpSession
			for id, session := range t.sessions {
				if session.lastUsed.Before(cutoff) {
					expired = append(expired, session)
					delete(t.sessions, id)
				}
			}
			t.sessionsMu.Unlock()

			for _, session := range expired {
				_ = session.conn.Close()
				t.serverOnceMu.Lock()
				delete(t.serverOnce, session.id)
				t.serverOnceMu.Unlock()
				log.Printf("Expired idle MCP session %s", session.id)
			}
		}
	}
}

// Read implements mcp.Connection.Read.
// For HTTP transport, this reads messages from HTTP requests that have been
// sent to the connection's request channel.
func (c *httpConnection) Read(ctx context.Context) (jsonrpc.Message, error) {
	select {
	case msg := <-c.reqChan:
		return msg, nil
	case <-c.closed:
		return nil, fmt.Errorf("connection closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Write implements mcp.Connection.Write.
// For HTTP transport, this writes responses to the connection's response channel,
// which are then sent back to HTTP clients.
func (c *httpConnection) Write(ctx context.Context, msg jsonrpc.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closedFlag {
		return fmt.Errorf("connection closed")
	}

	select {
	case c.respChan <- msg:
		return nil
	case <-c.closed:
		return fmt.Errorf("connection closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close implements mcp.Connection.Close.
func (c *httpConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closedFlag {
		return nil
	}

	c.closedFlag = true
	close(c.closed)
	return nil
}

// SessionID implements mcp.Connection.SessionID.
func (c *httpConnection) SessionID() string {
	return c.sessionID
}

// ensureServerRunning ensures the MCP server is processing messages for this session.
// It starts a goroutine that runs Server.Run with a transport that returns this session's connection.
// Uses sync.Once per session to prevent goroutine leaks from multiple calls.
func (t *HTTPTransport) ensureServerRunning(session *httpSession) {
	if t.server == nil {
		return
	}

	// Get or create sync.Once for this session to ensure server.Run is only started once
	t.serverOnceMu.Lock()
	once, exists := t.serverOnce[session.id]
	if !exists {
		once = &sync.Once{}
		t.serverOnce[session.id] = once
	}
	t.serverOnceMu.Unlock()

	// Create a single-use transport that returns this session's connection
	// This allows Server.Run to use the connection for this session
	sessionTransport := &sessionTransport{conn: session.conn}

	// Start the MCP server for this session only once
	once.Do(func() {
		go func() {
			// Run the MCP server with this session's transport using the long-lived server context
			// This will read from reqChan and write to respChan
			_ = t.server.Run(t.serverCtx, sessionTransport)
		}()
	})
}

// sessionTransport is a transport that returns a specific connection.
// This allows us to use Server.Run with a pre-existing connection.
type sessionTransport struct {
	conn mcp.Connection
}

// Connect implements mcp.Transport.Connect.
// It returns the pre-configured connection for this session.
func (st *sessionTransport) Connect(ctx context.Context) (mcp.Connection, error) {
	return st.conn, nil
}
