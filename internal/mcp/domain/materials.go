package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// normalizeColor validates and clamps an RGB or RGBA tuple. Three-component
// colors gain an alpha of 1.
func normalizeColor(color []float64) ([]float64, bool) {
	switch len(color) {
	case 3:
		color = append([]float64{color[0], color[1], color[2]}, 1)
	case 4:
	default:
		return nil, false
	}
	out := make([]float64, 4)
	for i, v := range color {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out[i] = v
	}
	return out, true
}

// setMeshColor applies a tint to a blueprint component, setting both common
// parameter names. Reports whether either apply landed.
func setMeshColor(ctx context.Context, sender CommandSender, blueprint, component string, color []float64, materialPath string) bool {
	applied := false
	for _, param := range []string{"BaseColor", "Color"} {
		resp, err := sender.SendCommand(ctx, "set_mesh_material_color", map[string]any{
			"blueprint_name": blueprint,
			"component_name": component,
			"color":          color,
			"material_path":  materialPath,
			"parameter_name": param,
		})
		if err == nil && resp.OK() {
			applied = true
		}
	}
	return applied
}

// MeshColorInput represents the MCP tool input for tinting a blueprint
// component.
type MeshColorInput struct {
	BlueprintName string    `json:"blueprint_name" jsonschema:"target blueprint"`
	ComponentName string    `json:"component_name" jsonschema:"mesh component to tint"`
	Color         []float64 `json:"color" jsonschema:"RGBA color, components in [0,1]"`
	MaterialPath  string    `json:"material_path,omitempty" jsonschema:"material asset path"`
}

// MeshColorResult represents the tint outcome.
type MeshColorResult struct {
	Applied bool      `json:"applied" jsonschema:"whether any parameter accepted the color"`
	Color   []float64 `json:"color" jsonschema:"clamped RGBA color that was sent"`
}

// MeshColorTool defines the MCP tool schema for tinting a blueprint component.
func MeshColorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_mesh_material_color",
		Description: "Sets a material color on a Blueprint mesh component",
	}
}

// MeshColorHandler executes a component tint request. Both BaseColor and
// Color parameters are set; the call succeeds if either lands.
func MeshColorHandler(sender CommandSender) mcp.ToolHandlerFor[MeshColorInput, MeshColorResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MeshColorInput) (*mcp.CallToolResult, MeshColorResult, error) {
		color, ok := normalizeColor(input.Color)
		if !ok {
			return nil, MeshColorResult{}, fmt.Errorf("color must have 3 or 4 components")
		}
		materialPath := input.MaterialPath
		if materialPath == "" {
			materialPath = basicShapeMaterial
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		if !setMeshColor(runCtx, sender, input.BlueprintName, input.ComponentName, color, materialPath) {
			return nil, MeshColorResult{}, fmt.Errorf("no material parameter accepted the color")
		}
		return nil, MeshColorResult{Applied: true, Color: color}, nil
	}
}

// ActorColorInput represents the MCP tool input for tinting a spawned actor.
type ActorColorInput struct {
	Name          string    `json:"name" jsonschema:"actor name"`
	Color         []float64 `json:"color" jsonschema:"RGBA color, components in [0,1]"`
	MaterialPath  string    `json:"material_path,omitempty" jsonschema:"material asset path"`
	ParameterName string    `json:"parameter_name,omitempty" jsonschema:"material parameter (default BaseColor)"`
	MaterialSlot  int       `json:"material_slot,omitempty" jsonschema:"material slot index"`
}

// ActorColorTool defines the MCP tool schema for tinting a spawned actor.
func ActorColorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_actor_material_color",
		Description: "Sets a material color on an existing actor's mesh",
	}
}

// ActorColorHandler executes an actor tint request.
func ActorColorHandler(sender CommandSender) mcp.ToolHandlerFor[ActorColorInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorColorInput) (*mcp.CallToolResult, EngineResult, error) {
		color, ok := normalizeColor(input.Color)
		if !ok {
			return nil, EngineResult{}, fmt.Errorf("color must have 3 or 4 components")
		}
		materialPath := input.MaterialPath
		if materialPath == "" {
			materialPath = basicShapeMaterial
		}
		parameter := input.ParameterName
		if parameter == "" {
			parameter = "BaseColor"
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "set_actor_material_color", map[string]any{
			"name":           input.Name,
			"color":          color,
			"material_path":  materialPath,
			"parameter_name": parameter,
			"material_slot":  input.MaterialSlot,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("set actor material color %s: %w", input.Name, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}
