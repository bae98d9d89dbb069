package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// VariableInput represents the MCP tool input for creating a blueprint variable.
type VariableInput struct {
	BlueprintName string `json:"blueprint_name" jsonschema:"target blueprint"`
	VariableName  string `json:"variable_name" jsonschema:"variable name"`
	VariableType  string `json:"variable_type" jsonschema:"variable type (bool, float, int, string, Actor, ...)"`
	DefaultValue  any    `json:"default_value,omitempty" jsonschema:"initial value"`
}

// VariableTool defines the MCP tool schema for creating a blueprint variable.
func VariableTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_blueprint_variable",
		Description: "Creates a variable in a Blueprint",
	}
}

// VariableHandler executes a variable creation request.
func VariableHandler(sender CommandSender) mcp.ToolHandlerFor[VariableInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input VariableInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "create_blueprint_variable", map[string]any{
			"blueprint_name": input.BlueprintName,
			"variable_name":  input.VariableName,
			"variable_type":  input.VariableType,
			"default_value":  input.DefaultValue,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("create variable %s: %w", input.VariableName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// EventNodeInput represents the MCP tool input for adding an event node.
type EventNodeInput struct {
	BlueprintName string    `json:"blueprint_name" jsonschema:"target blueprint"`
	EventType     string    `json:"event_type" jsonschema:"event type (BeginPlay, Tick, BeginOverlap, ...)"`
	NodePosition  []float64 `json:"node_position,omitempty" jsonschema:"graph position [x,y]"`
}

// EventNodeTool defines the MCP tool schema for adding an event node.
func EventNodeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_blueprint_event_node",
		Description: "Adds an event node to a Blueprint's event graph",
	}
}

// EventNodeHandler executes an event node request.
func EventNodeHandler(sender CommandSender) mcp.ToolHandlerFor[EventNodeInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventNodeInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "add_blueprint_event_node", map[string]any{
			"blueprint_name": input.BlueprintName,
			"event_type":     input.EventType,
			"node_position":  nodePosition(input.NodePosition, 0, 0),
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("add event node %s: %w", input.EventType, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// FunctionNodeInput represents the MCP tool input for adding a function call node.
type FunctionNodeInput struct {
	BlueprintName string    `json:"blueprint_name" jsonschema:"target blueprint"`
	FunctionName  string    `json:"function_name" jsonschema:"function to call"`
	FunctionClass string    `json:"function_class,omitempty" jsonschema:"owning class when not self"`
	NodePosition  []float64 `json:"node_position,omitempty" jsonschema:"graph position [x,y]"`
}

// FunctionNodeTool defines the MCP tool schema for adding a function node.
func FunctionNodeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_blueprint_function_node",
		Description: "Adds a function call node to a Blueprint graph",
	}
}

// FunctionNodeHandler executes a function node request.
func FunctionNodeHandler(sender CommandSender) mcp.ToolHandlerFor[FunctionNodeInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FunctionNodeInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		params := map[string]any{
			"blueprint_name": input.BlueprintName,
			"function_name":  input.FunctionName,
			"node_position":  nodePosition(input.NodePosition, 300, 0),
		}
		if input.FunctionClass != "" {
			params["function_class"] = input.FunctionClass
		} else {
			params["function_class"] = nil
		}

		resp, err := sendChecked(runCtx, sender, "add_blueprint_function_node", params)
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("add function node %s: %w", input.FunctionName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// BranchNodeInput represents the MCP tool input for adding a branch node.
type BranchNodeInput struct {
	BlueprintName string    `json:"blueprint_name" jsonschema:"target blueprint"`
	NodePosition  []float64 `json:"node_position,omitempty" jsonschema:"graph position [x,y]"`
}

// BranchNodeTool defines the MCP tool schema for adding a branch node.
func BranchNodeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_blueprint_branch_node",
		Description: "Adds a branch (if-then-else) node to a Blueprint graph",
	}
}

// BranchNodeHandler executes a branch node request.
func BranchNodeHandler(sender CommandSender) mcp.ToolHandlerFor[BranchNodeInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BranchNodeInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "add_blueprint_branch_node", map[string]any{
			"blueprint_name": input.BlueprintName,
			"node_position":  nodePosition(input.NodePosition, 600, 0),
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("add branch node: %w", err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// ConnectNodesInput represents the MCP tool input for wiring two nodes.
type ConnectNodesInput struct {
	BlueprintName string `json:"blueprint_name" jsonschema:"target blueprint"`
	SourceNodeID  string `json:"source_node_id" jsonschema:"source node"`
	SourcePin     string `json:"source_pin" jsonschema:"source pin name"`
	TargetNodeID  string `json:"target_node_id" jsonschema:"target node"`
	TargetPin     string `json:"target_pin" jsonschema:"target pin name"`
}

// ConnectNodesTool defines the MCP tool schema for wiring two nodes.
func ConnectNodesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "connect_blueprint_nodes",
		Description: "Connects two nodes in a Blueprint graph",
	}
}

// ConnectNodesHandler executes a node connection request.
func ConnectNodesHandler(sender CommandSender) mcp.ToolHandlerFor[ConnectNodesInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ConnectNodesInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "connect_blueprint_nodes", map[string]any{
			"blueprint_name": input.BlueprintName,
			"source_node_id": input.SourceNodeID,
			"source_pin":     input.SourcePin,
			"target_node_id": input.TargetNodeID,
			"target_pin":     input.TargetPin,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("connect nodes: %w", err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// EventParam describes one typed input parameter of a custom event.
type EventParam struct {
	Name string `json:"name" jsonschema:"parameter name"`
	Type string `json:"type" jsonschema:"parameter type"`
}

// CustomEventInput represents the MCP tool input for creating a custom event.
type CustomEventInput struct {
	BlueprintName string       `json:"blueprint_name" jsonschema:"target blueprint"`
	EventName     string       `json:"event_name" jsonschema:"custom event name"`
	InputParams   []EventParam `json:"input_params,omitempty" jsonschema:"typed input parameters"`
}

// CustomEventTool defines the MCP tool schema for creating a custom event.
func CustomEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_blueprint_custom_event",
		Description: "Creates a custom event in a Blueprint",
	}
}

// CustomEventHandler executes a custom event request.
func CustomEventHandler(sender CommandSender) mcp.ToolHandlerFor[CustomEventInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CustomEventInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		params := input.InputParams
		if params == nil {
			params = []EventParam{}
		}
		resp, err := sendChecked(runCtx, sender, "create_blueprint_custom_event", map[string]any{
			"blueprint_name": input.BlueprintName,
			"event_name":     input.EventName,
			"input_params":   params,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("create custom event %s: %w", input.EventName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

func nodePosition(v []float64, x, y float64) []float64 {
	if len(v) == 2 {
		return v
	}
	return []float64{x, y}
}
