package unreal

import (
	"encoding/json"
	"fmt"
)

// Response is the normalized reply to a single engine command. The plugin
// answers in two shapes depending on the command handler:
//
//	{"status": "success"|"error", "result": ..., "error": "..."}
//	{"success": true|false, "message": "...", "error": "..."}
//
// Both normalize into Status, Result and Message.
type Response struct {
	// Status is "success" or "error".
	Status string
	// Result holds the raw payload for successful commands. It may be nil
	// for commands that only acknowledge.
	Result json.RawMessage
	// Message holds the engine's error text when Status is "error".
	Message string
}

// OK reports whether the engine accepted the command.
func (r *Response) OK() bool {
	return r.Status == "success"
}

// Err returns the engine error, or nil for successful responses.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	if r.Message == "" {
		return fmt.Errorf("engine: command failed")
	}
	return fmt.Errorf("engine: %s", r.Message)
}

// Unmarshal decodes the result payload into out.
func (r *Response) Unmarshal(out any) error {
	if len(r.Result) == 0 {
		return fmt.Errorf("empty result")
	}
	if err := json.Unmarshal(r.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

type wireResponse struct {
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result"`
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func parseResponse(data []byte) (*Response, error) {
	var wire wireResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	resp := &Response{Result: wire.Result}

	switch {
	case wire.Status != "":
		resp.Status = wire.Status
		if resp.Status == "error" {
			resp.Message = wire.Error
			if resp.Message == "" {
				resp.Message = wire.Message
			}
		}
	case wire.Success != nil:
		if *wire.Success {
			resp.Status = "success"
			if resp.Result == nil {
				resp.Result = data
			}
		} else {
			resp.Status = "error"
			resp.Message = wire.Message
			if resp.Message == "" {
				resp.Message = wire.Error
			}
		}
	default:
		// Commands without an explicit envelope reply with the payload
		// itself; treat any well-formed document as success.
		resp.Status = "success"
		resp.Result = data
	}

	return resp, nil
}
