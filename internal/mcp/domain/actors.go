package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EngineResult carries a raw engine payload through the MCP layer.
type EngineResult struct {
	Result  json.RawMessage `json:"result,omitempty" jsonschema:"raw engine response payload"`
	Message string          `json:"message,omitempty" jsonschema:"engine status message"`
}

// ActorsInLevelInput represents the MCP tool input for listing level actors.
type ActorsInLevelInput struct{}

// ActorsInLevelTool defines the MCP tool schema for listing level actors.
func ActorsInLevelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_actors_in_level",
		Description: "Lists all actors in the current level",
	}
}

// ActorsInLevelHandler executes a level listing request.
func ActorsInLevelHandler(sender CommandSender) mcp.ToolHandlerFor[ActorsInLevelInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ActorsInLevelInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "get_actors_in_level", nil)
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("get actors in level: %w", err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// FindActorsInput represents the MCP tool input for pattern searches.
type FindActorsInput struct {
	Pattern string `json:"pattern" jsonschema:"actor name pattern to match"`
}

// FindActorsTool defines the MCP tool schema for finding actors by name.
func FindActorsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "find_actors_by_name",
		Description: "Finds actors whose names match a pattern",
	}
}

// FindActorsHandler executes an actor search request.
func FindActorsHandler(sender CommandSender) mcp.ToolHandlerFor[FindActorsInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FindActorsInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.Pattern) == "" {
			return nil, EngineResult{}, fmt.Errorf("pattern is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "find_actors_by_name", map[string]any{"pattern": input.Pattern})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("find actors by name: %w", err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// SpawnActorInput represents the MCP tool input for spawning an actor.
type SpawnActorInput struct {
	Name       string     `json:"name" jsonschema:"unique actor name"`
	Type       string     `json:"type" jsonschema:"actor class (e.g. StaticMeshActor)"`
	Location   []float64  `json:"location,omitempty" jsonschema:"world location [x,y,z]"`
	Rotation   []float64  `json:"rotation,omitempty" jsonschema:"rotation [pitch,yaw,roll]"`
	Scale      []float64  `json:"scale,omitempty" jsonschema:"scale [x,y,z]"`
	StaticMesh string     `json:"static_mesh,omitempty" jsonschema:"static mesh asset path"`
}

// SpawnActorTool defines the MCP tool schema for spawning an actor.
func SpawnActorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "spawn_actor",
		Description: "Spawns a new actor in the current level",
	}
}

// SpawnActorHandler executes an actor spawn request.
func SpawnActorHandler(sender CommandSender) mcp.ToolHandlerFor[SpawnActorInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SpawnActorInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, EngineResult{}, fmt.Errorf("name is required")
		}
		if strings.TrimSpace(input.Type) == "" {
			return nil, EngineResult{}, fmt.Errorf("type is required")
		}

		params := map[string]any{
			"name":     input.Name,
			"type":     input.Type,
			"location": orZeroVector(input.Location),
			"rotation": orZeroVector(input.Rotation),
		}
		if len(input.Scale) == 3 {
			params["scale"] = input.Scale
		}
		if input.StaticMesh != "" {
			params["static_mesh"] = input.StaticMesh
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "spawn_actor", params)
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("spawn actor %s: %w", input.Name, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// DeleteActorInput represents the MCP tool input for deleting an actor.
type DeleteActorInput struct {
	Name string `json:"name" jsonschema:"actor name to delete"`
}

// DeleteActorTool defines the MCP tool schema for deleting an actor.
func DeleteActorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_actor",
		Description: "Deletes an actor by name",
	}
}

// DeleteActorHandler executes an actor delete request.
func DeleteActorHandler(sender CommandSender) mcp.ToolHandlerFor[DeleteActorInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteActorInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, EngineResult{}, fmt.Errorf("name is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "delete_actor", map[string]any{"name": input.Name})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("delete actor %s: %w", input.Name, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// SetActorTransformInput represents the MCP tool input for moving an actor.
// Omitted fields are not sent, leaving those transform parts untouched.
type SetActorTransformInput struct {
	Name     string    `json:"name" jsonschema:"actor name"`
	Location []float64 `json:"location,omitempty" jsonschema:"world location [x,y,z]"`
	Rotation []float64 `json:"rotation,omitempty" jsonschema:"rotation [pitch,yaw,roll]"`
	Scale    []float64 `json:"scale,omitempty" jsonschema:"scale [x,y,z]"`
}

// SetActorTransformTool defines the MCP tool schema for transforming an actor.
func SetActorTransformTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_actor_transform",
		Description: "Updates an actor's location, rotation, and/or scale",
	}
}

// SetActorTransformHandler executes an actor transform request.
func SetActorTransformHandler(sender CommandSender) mcp.ToolHandlerFor[SetActorTransformInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetActorTransformInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, EngineResult{}, fmt.Errorf("name is required")
		}

		params := map[string]any{"name": input.Name}
		if input.Location != nil {
			params["location"] = input.Location
		}
		if input.Rotation != nil {
			params["rotation"] = input.Rotation
		}
		if input.Scale != nil {
			params["scale"] = input.Scale
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "set_actor_transform", params)
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("set actor transform %s: %w", input.Name, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

func orZeroVector(v []float64) []float64 {
	if len(v) == 3 {
		return v
	}
	return []float64{0, 0, 0}
}
