package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateBlueprintInput represents the MCP tool input for blueprint creation.
type CreateBlueprintInput struct {
	Name        string `json:"name" jsonschema:"blueprint asset name"`
	ParentClass string `json:"parent_class" jsonschema:"parent class (Actor, Pawn, ...)"`
}

// CreateBlueprintTool defines the MCP tool schema for creating a blueprint.
func CreateBlueprintTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_blueprint",
		Description: "Creates a new Blueprint class",
	}
}

// CreateBlueprintHandler executes a blueprint creation request.
func CreateBlueprintHandler(sender CommandSender) mcp.ToolHandlerFor[CreateBlueprintInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateBlueprintInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, EngineResult{}, fmt.Errorf("name is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "create_blueprint", map[string]any{
			"name":         input.Name,
			"parent_class": input.ParentClass,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("create blueprint %s: %w", input.Name, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// AddComponentInput represents the MCP tool input for adding a component.
type AddComponentInput struct {
	BlueprintName string         `json:"blueprint_name" jsonschema:"target blueprint"`
	ComponentType string         `json:"component_type" jsonschema:"component class (StaticMeshComponent, ...)"`
	ComponentName string         `json:"component_name" jsonschema:"name for the new component"`
	Location      []float64      `json:"location,omitempty" jsonschema:"relative location"`
	Rotation      []float64      `json:"rotation,omitempty" jsonschema:"relative rotation"`
	Scale         []float64      `json:"scale,omitempty" jsonschema:"relative scale"`
	Properties    map[string]any `json:"component_properties,omitempty" jsonschema:"extra component properties"`
}

// AddComponentTool defines the MCP tool schema for adding a component.
func AddComponentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_component_to_blueprint",
		Description: "Adds a component to an existing Blueprint",
	}
}

// AddComponentHandler executes a component addition request.
func AddComponentHandler(sender CommandSender) mcp.ToolHandlerFor[AddComponentInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddComponentInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.BlueprintName) == "" {
			return nil, EngineResult{}, fmt.Errorf("blueprint_name is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "add_component_to_blueprint", addComponentParams(input))
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("add component to %s: %w", input.BlueprintName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

func addComponentParams(input AddComponentInput) map[string]any {
	params := map[string]any{
		"blueprint_name": input.BlueprintName,
		"component_type": input.ComponentType,
		"component_name": input.ComponentName,
		"location":       orEmpty(input.Location),
		"rotation":       orEmpty(input.Rotation),
		"scale":          orEmpty(input.Scale),
	}
	if input.Properties != nil {
		params["component_properties"] = input.Properties
	} else {
		params["component_properties"] = map[string]any{}
	}
	return params
}

func orEmpty(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

// SetStaticMeshInput represents the MCP tool input for mesh assignment.
type SetStaticMeshInput struct {
	BlueprintName string `json:"blueprint_name" jsonschema:"target blueprint"`
	ComponentName string `json:"component_name" jsonschema:"StaticMeshComponent name"`
	StaticMesh    string `json:"static_mesh,omitempty" jsonschema:"static mesh asset path"`
}

// SetStaticMeshTool defines the MCP tool schema for mesh assignment.
func SetStaticMeshTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_static_mesh_properties",
		Description: "Assigns a static mesh to a Blueprint component",
	}
}

// SetStaticMeshHandler executes a mesh assignment request.
func SetStaticMeshHandler(sender CommandSender) mcp.ToolHandlerFor[SetStaticMeshInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetStaticMeshInput) (*mcp.CallToolResult, EngineResult, error) {
		mesh := input.StaticMesh
		if mesh == "" {
			mesh = "/Engine/BasicShapes/Cube.Cube"
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "set_static_mesh_properties", map[string]any{
			"blueprint_name": input.BlueprintName,
			"component_name": input.ComponentName,
			"static_mesh":    mesh,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("set static mesh on %s: %w", input.BlueprintName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// SetPhysicsInput represents the MCP tool input for physics configuration.
type SetPhysicsInput struct {
	BlueprintName   string   `json:"blueprint_name" jsonschema:"target blueprint"`
	ComponentName   string   `json:"component_name" jsonschema:"component to configure"`
	SimulatePhysics *bool    `json:"simulate_physics,omitempty" jsonschema:"enable physics simulation (default true)"`
	GravityEnabled  *bool    `json:"gravity_enabled,omitempty" jsonschema:"enable gravity (default true)"`
	Mass            *float64 `json:"mass,omitempty" jsonschema:"mass in kg (default 1)"`
	LinearDamping   *float64 `json:"linear_damping,omitempty" jsonschema:"linear damping (default 0.01)"`
	AngularDamping  *float64 `json:"angular_damping,omitempty" jsonschema:"angular damping (default 0)"`
}

// SetPhysicsTool defines the MCP tool schema for physics configuration.
func SetPhysicsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_physics_properties",
		Description: "Configures physics simulation on a Blueprint component",
	}
}

// SetPhysicsHandler executes a physics configuration request.
func SetPhysicsHandler(sender CommandSender) mcp.ToolHandlerFor[SetPhysicsInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetPhysicsInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "set_physics_properties", physicsParams(input))
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("set physics on %s: %w", input.BlueprintName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

func physicsParams(input SetPhysicsInput) map[string]any {
	return map[string]any{
		"blueprint_name":   input.BlueprintName,
		"component_name":   input.ComponentName,
		"simulate_physics": boolOr(input.SimulatePhysics, true),
		"gravity_enabled":  boolOr(input.GravityEnabled, true),
		"mass":             floatOr(input.Mass, 1),
		"linear_damping":   floatOr(input.LinearDamping, 0.01),
		"angular_damping":  floatOr(input.AngularDamping, 0),
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// CompileBlueprintInput represents the MCP tool input for compilation.
type CompileBlueprintInput struct {
	BlueprintName string `json:"blueprint_name" jsonschema:"blueprint to compile"`
}

// CompileBlueprintTool defines the MCP tool schema for compilation.
func CompileBlueprintTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compile_blueprint",
		Description: "Compiles a Blueprint",
	}
}

// CompileBlueprintHandler executes a compile request.
func CompileBlueprintHandler(sender CommandSender) mcp.ToolHandlerFor[CompileBlueprintInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompileBlueprintInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "compile_blueprint", map[string]any{
			"blueprint_name": input.BlueprintName,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("compile blueprint %s: %w", input.BlueprintName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// SpawnBlueprintActorInput represents the MCP tool input for spawning from a blueprint.
type SpawnBlueprintActorInput struct {
	BlueprintName string    `json:"blueprint_name" jsonschema:"blueprint to instantiate"`
	ActorName     string    `json:"actor_name" jsonschema:"name for the spawned actor"`
	Location      []float64 `json:"location,omitempty" jsonschema:"world location [x,y,z]"`
	Rotation      []float64 `json:"rotation,omitempty" jsonschema:"rotation [pitch,yaw,roll]"`
}

// SpawnBlueprintActorTool defines the MCP tool schema for spawning from a blueprint.
func SpawnBlueprintActorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "spawn_blueprint_actor",
		Description: "Spawns an actor from a compiled Blueprint",
	}
}

// SpawnBlueprintActorHandler executes a blueprint spawn request.
func SpawnBlueprintActorHandler(sender CommandSender) mcp.ToolHandlerFor[SpawnBlueprintActorInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SpawnBlueprintActorInput) (*mcp.CallToolResult, EngineResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "spawn_blueprint_actor", map[string]any{
			"blueprint_name": input.BlueprintName,
			"actor_name":     input.ActorName,
			"location":       orZeroVector(input.Location),
			"rotation":       orZeroVector(input.Rotation),
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("spawn blueprint actor %s: %w", input.ActorName, err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}

// PhysicsActorInput represents the MCP tool input for the one-shot physics
// actor composite.
type PhysicsActorInput struct {
	Name            string    `json:"name" jsonschema:"actor name; the scratch blueprint is name_BP"`
	MeshPath        string    `json:"mesh_path,omitempty" jsonschema:"static mesh asset path"`
	Location        []float64 `json:"location,omitempty" jsonschema:"world location [x,y,z]"`
	Mass            *float64  `json:"mass,omitempty" jsonschema:"mass in kg (default 1)"`
	SimulatePhysics *bool     `json:"simulate_physics,omitempty" jsonschema:"enable physics (default true)"`
	GravityEnabled  *bool     `json:"gravity_enabled,omitempty" jsonschema:"enable gravity (default true)"`
	Color           []float64 `json:"color,omitempty" jsonschema:"RGB or RGBA color, components in [0,1]"`
	Scale           []float64 `json:"scale,omitempty" jsonschema:"actor scale (default [1,1,1])"`
}

// PhysicsActorResult represents the composite's outcome.
type PhysicsActorResult struct {
	ActorName     string `json:"actor_name" jsonschema:"spawned actor name"`
	BlueprintName string `json:"blueprint_name" jsonschema:"scratch blueprint name"`
	ColorApplied  bool   `json:"color_applied" jsonschema:"whether the material tint landed"`
}

// PhysicsActorTool defines the MCP tool schema for the physics actor composite.
func PhysicsActorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "spawn_physics_blueprint_actor",
		Description: "Spawns a single physics-enabled actor with mesh, color, and scale via a scratch Blueprint",
	}
}

// PhysicsActorHandler builds a scratch blueprint, configures mesh, physics
// and optional tint, compiles it, spawns the actor, and re-asserts scale on
// the spawned instance.
func PhysicsActorHandler(sender CommandSender) mcp.ToolHandlerFor[PhysicsActorInput, PhysicsActorResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PhysicsActorInput) (*mcp.CallToolResult, PhysicsActorResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, PhysicsActorResult{}, fmt.Errorf("name is required")
		}

		mesh := input.MeshPath
		if mesh == "" {
			mesh = "/Engine/BasicShapes/Cube.Cube"
		}
		scale := input.Scale
		if len(scale) != 3 {
			scale = []float64{1, 1, 1}
		}
		bpName := input.Name + "_BP"

		if _, err := sendChecked(ctx, sender, "create_blueprint", map[string]any{
			"name": bpName, "parent_class": "Actor",
		}); err != nil {
			return nil, PhysicsActorResult{}, fmt.Errorf("create blueprint: %w", err)
		}
		if _, err := sendChecked(ctx, sender, "add_component_to_blueprint", addComponentParams(AddComponentInput{
			BlueprintName: bpName,
			ComponentType: "StaticMeshComponent",
			ComponentName: "Mesh",
			Scale:         scale,
		})); err != nil {
			return nil, PhysicsActorResult{}, fmt.Errorf("add mesh component: %w", err)
		}
		if _, err := sendChecked(ctx, sender, "set_static_mesh_properties", map[string]any{
			"blueprint_name": bpName, "component_name": "Mesh", "static_mesh": mesh,
		}); err != nil {
			return nil, PhysicsActorResult{}, fmt.Errorf("set static mesh: %w", err)
		}
		if _, err := sendChecked(ctx, sender, "set_physics_properties", physicsParams(SetPhysicsInput{
			BlueprintName:   bpName,
			ComponentName:   "Mesh",
			SimulatePhysics: input.SimulatePhysics,
			GravityEnabled:  input.GravityEnabled,
			Mass:            input.Mass,
		})); err != nil {
			return nil, PhysicsActorResult{}, fmt.Errorf("set physics: %w", err)
		}

		colorApplied := false
		if color, ok := normalizeColor(input.Color); ok {
			colorApplied = setMeshColor(ctx, sender, bpName, "Mesh", color, basicShapeMaterial)
		}

		if _, err := sendChecked(ctx, sender, "compile_blueprint", map[string]any{
			"blueprint_name": bpName,
		}); err != nil {
			return nil, PhysicsActorResult{}, fmt.Errorf("compile blueprint: %w", err)
		}

		resp, err := sendChecked(ctx, sender, "spawn_blueprint_actor", map[string]any{
			"blueprint_name": bpName,
			"actor_name":     input.Name,
			"location":       orZeroVector(input.Location),
			"rotation":       []float64{0, 0, 0},
		})
		if err != nil {
			return nil, PhysicsActorResult{}, fmt.Errorf("spawn blueprint actor: %w", err)
		}

		// The spawn can discard the component scale; re-assert it on the
		// spawned instance.
		spawnedName := input.Name
		var spawned struct {
			Name string `json:"name"`
		}
		if err := resp.Unmarshal(&spawned); err == nil && spawned.Name != "" {
			spawnedName = spawned.Name
		}
		_, _ = sender.SendCommand(ctx, "set_actor_transform", map[string]any{
			"name": spawnedName, "scale": scale,
		})

		return nil, PhysicsActorResult{
			ActorName:     spawnedName,
			BlueprintName: bpName,
			ColorApplied:  colorApplied,
		}, nil
	}
}
