package unreal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CommandRecord describes one completed command for journaling.
type CommandRecord struct {
	ID       string
	Type     string
	Params   json.RawMessage
	Status   string
	Error    string
	Started  time.Time
	Duration time.Duration
}

// Recorder persists command records. Implementations must tolerate
// concurrent calls.
type Recorder interface {
	Record(ctx context.Context, rec CommandRecord) error
}

// Client sends commands to the editor plugin. Each command dials a fresh
// connection; the plugin drops idle sockets, so pooling buys nothing.
type Client struct {
	addr     string
	recorder Recorder
	tracer   trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithRecorder journals every command through rec.
func WithRecorder(rec Recorder) Option {
	return func(c *Client) { c.recorder = rec }
}

// NewClient returns a client for the plugin at addr. An empty addr uses
// DefaultAddr.
func NewClient(addr string, opts ...Option) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	c := &Client{
		addr:   addr,
		tracer: otel.Tracer("unreal"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Addr returns the engine address the client dials.
func (c *Client) Addr() string {
	return c.addr
}

// SendCommand sends one command and waits for the full response. params may
// be nil for commands without parameters.
func (c *Client) SendCommand(ctx context.Context, commandType string, params any) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "unreal.send_command",
		trace.WithAttributes(attribute.String("unreal.command", commandType)))
	defer span.End()

	id := uuid.NewString()
	started := time.Now()

	resp, rawParams, err := c.send(ctx, commandType, params)

	rec := CommandRecord{
		ID:       id,
		Type:     commandType,
		Params:   rawParams,
		Started:  started,
		Duration: time.Since(started),
	}
	switch {
	case err != nil:
		rec.Status = "error"
		rec.Error = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case !resp.OK():
		rec.Status = "error"
		rec.Error = resp.Message
		span.SetStatus(codes.Error, resp.Message)
	default:
		rec.Status = "ok"
	}

	if c.recorder != nil {
		if jerr := c.recorder.Record(ctx, rec); jerr != nil {
			log.Printf("journal %s (%s): %v", commandType, id, jerr)
		}
	}

	return resp, err
}

// SendChecked sends a command and folds engine-declared errors into the
// returned error.
func (c *Client) SendChecked(ctx context.Context, commandType string, params any) (*Response, error) {
	resp, err := c.SendCommand(ctx, commandType, params)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Ping checks engine reachability with a cheap read-only command.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.SendCommand(ctx, "get_actors_in_level", nil)
	return err
}

func (c *Client) send(ctx context.Context, commandType string, params any) (*Response, json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}
	payload, err := json.Marshal(struct {
		Type   string `json:"type"`
		Params any    `json:"params"`
	}{Type: commandType, Params: params})
	if err != nil {
		return nil, nil, fmt.Errorf("encode command %s: %w", commandType, err)
	}

	var rawParams json.RawMessage
	if b, err := json.Marshal(params); err == nil {
		rawParams = b
	}

	conn, err := dial(ctx, c.addr)
	if err != nil {
		return nil, rawParams, err
	}
	defer conn.Close()

	// The plugin reads a single JSON document with no trailing newline.
	if _, err := conn.Write(payload); err != nil {
		return nil, rawParams, fmt.Errorf("send %s: %w", commandType, err)
	}

	data, err := readResponse(conn)
	if err != nil {
		return nil, rawParams, fmt.Errorf("receive %s: %w", commandType, err)
	}

	resp, err := parseResponse(data)
	if err != nil {
		return nil, rawParams, err
	}
	return resp, rawParams, nil
}

// readResponse accumulates bytes until they parse as a complete JSON
// document. The plugin does not frame responses, so partial reads of large
// payloads are routine.
func readResponse(r io.Reader) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if json.Valid(buf) {
				return buf, nil
			}
		}
		if err != nil {
			if err == io.EOF && len(buf) > 0 && json.Valid(buf) {
				return buf, nil
			}
			return nil, err
		}
	}
}
