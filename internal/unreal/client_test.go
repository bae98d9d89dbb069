package unreal

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"
)

// fakeEngine accepts plugin-protocol connections on a loopback listener and
// answers each command with a scripted response.
type fakeEngine struct {
	listener net.Listener
	reply    func(command string, params json.RawMessage) []byte
	chunked  bool

	mu       sync.Mutex
	commands []string
}

func newFakeEngine(t *testing.T, reply func(command string, params json.RawMessage) []byte) *fakeEngine {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	e := &fakeEngine{listener: ln, reply: reply}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go e.serve(conn)
		}
	}()
	return e
}

func (e *fakeEngine) serve(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, 64*1024)
	var data []byte
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
			if json.Valid(data) {
				break
			}
		}
		if err != nil {
			return
		}
	}

	var cmd struct {
		Type   string          `json:"type"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &cmd); err != nil {
		return
	}

	e.mu.Lock()
	e.commands = append(e.commands, cmd.Type)
	e.mu.Unlock()

	out := e.reply(cmd.Type, cmd.Params)
	if e.chunked {
		half := len(out) / 2
		conn.Write(out[:half])
		time.Sleep(20 * time.Millisecond)
		conn.Write(out[half:])
		return
	}
	conn.Write(out)
}

func (e *fakeEngine) addr() string {
	return e.listener.Addr().String()
}

func TestClientSendCommand(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		engine := newFakeEngine(t, func(command string, params json.RawMessage) []byte {
			if command != "spawn_actor" {
				t.Errorf("unexpected command: %q", command)
			}
			var p struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(params, &p); err != nil {
				t.Errorf("decode params: %v", err)
			}
			if p.Name != "Cube_1" {
				t.Errorf("unexpected name: %q", p.Name)
			}
			return []byte(`{"status":"success","result":{"name":"Cube_1"}}`)
		})

		client := NewClient(engine.addr())
		resp, err := client.SendCommand(context.Background(), "spawn_actor", map[string]any{"name": "Cube_1"})
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if !resp.OK() {
			t.Fatalf("expected success, got %q", resp.Message)
		}
	})

	t.Run("chunked response", func(t *testing.T) {
		engine := newFakeEngine(t, func(string, json.RawMessage) []byte {
			return []byte(`{"status":"success","result":{"actors":["Floor","Wall_1","Wall_2"]}}`)
		})
		engine.chunked = true

		client := NewClient(engine.addr())
		resp, err := client.SendCommand(context.Background(), "get_actors_in_level", nil)
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		var body struct {
			Actors []string `json:"actors"`
		}
		if err := resp.Unmarshal(&body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(body.Actors) != 3 {
			t.Errorf("expected 3 actors, got %d", len(body.Actors))
		}
	})

	t.Run("engine error surfaces through SendChecked", func(t *testing.T) {
		engine := newFakeEngine(t, func(string, json.RawMessage) []byte {
			return []byte(`{"success":false,"message":"unknown blueprint"}`)
		})

		client := NewClient(engine.addr())
		_, err := client.SendChecked(context.Background(), "compile_blueprint", map[string]any{"blueprint_name": "Nope"})
		if err == nil {
			t.Fatal("expected error")
		}
		if got := err.Error(); got != "engine: unknown blueprint" {
			t.Errorf("unexpected error: %q", got)
		}
	})

	t.Run("unreachable engine", func(t *testing.T) {
		client := NewClient("127.0.0.1:1")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.SendCommand(ctx, "get_actors_in_level", nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("nil params encode as empty object", func(t *testing.T) {
		engine := newFakeEngine(t, func(_ string, params json.RawMessage) []byte {
			if string(params) != "{}" {
				t.Errorf("expected empty params, got %s", params)
			}
			return []byte(`{"status":"success","result":{}}`)
		})

		client := NewClient(engine.addr())
		if _, err := client.SendCommand(context.Background(), "get_actors_in_level", nil); err != nil {
			t.Fatalf("send: %v", err)
		}
	})
}

type captureRecorder struct {
	mu   sync.Mutex
	recs []CommandRecord
}

func (c *captureRecorder) Record(_ context.Context, rec CommandRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, rec)
	return nil
}

func TestClientRecordsCommands(t *testing.T) {
	engine := newFakeEngine(t, func(string, json.RawMessage) []byte {
		return []byte(`{"status":"error","error":"boom"}`)
	})

	rec := &captureRecorder{}
	client := NewClient(engine.addr(), WithRecorder(rec))
	if _, err := client.SendCommand(context.Background(), "delete_actor", map[string]any{"name": "X"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.recs))
	}
	r := rec.recs[0]
	if r.Type != "delete_actor" {
		t.Errorf("unexpected type: %q", r.Type)
	}
	if r.Status != "error" || r.Error != "boom" {
		t.Errorf("unexpected status %q error %q", r.Status, r.Error)
	}
	if r.ID == "" {
		t.Error("expected command id")
	}
}
