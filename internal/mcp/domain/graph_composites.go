package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var blueprintNamePattern = regexp.MustCompile(`(?:called|named)\s+(\w+)`)

// DescribeBlueprintInput represents the MCP tool input for the
// description-driven blueprint composite.
type DescribeBlueprintInput struct {
	Description string `json:"description" jsonschema:"natural language description of the blueprint"`
}

// DescribeBlueprintResult summarizes what the composite built.
type DescribeBlueprintResult struct {
	BlueprintName string   `json:"blueprint_name" jsonschema:"created blueprint name"`
	ParentClass   string   `json:"parent_class" jsonschema:"chosen parent class"`
	Components    []string `json:"components" jsonschema:"component types added"`
	Events        []string `json:"events" jsonschema:"event nodes added"`
	Variables     []string `json:"variables" jsonschema:"variables added"`
}

// DescribeBlueprintTool defines the MCP tool schema for the description composite.
func DescribeBlueprintTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_simple_blueprint_from_description",
		Description: "Creates a simple Blueprint from a natural language description",
	}
}

// DescribeBlueprintHandler derives a blueprint name, parent class,
// components, events and variables from description keywords, builds the
// blueprint, and compiles it. Individual enrichment steps tolerate engine
// failures; only the initial create aborts the composite.
func DescribeBlueprintHandler(sender CommandSender) mcp.ToolHandlerFor[DescribeBlueprintInput, DescribeBlueprintResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DescribeBlueprintInput) (*mcp.CallToolResult, DescribeBlueprintResult, error) {
		desc := strings.ToLower(input.Description)
		if strings.TrimSpace(desc) == "" {
			return nil, DescribeBlueprintResult{}, fmt.Errorf("description is required")
		}

		bpName, parentClass := blueprintFromKeywords(desc)

		if _, err := sendChecked(ctx, sender, "create_blueprint", map[string]any{
			"name": bpName, "parent_class": parentClass,
		}); err != nil {
			return nil, DescribeBlueprintResult{}, fmt.Errorf("create blueprint: %w", err)
		}

		result := DescribeBlueprintResult{BlueprintName: bpName, ParentClass: parentClass}

		addComponent := func(componentType, componentName string) {
			_, _ = sender.SendCommand(ctx, "add_component_to_blueprint", addComponentParams(AddComponentInput{
				BlueprintName: bpName,
				ComponentType: componentType,
				ComponentName: componentName,
			}))
			result.Components = append(result.Components, componentType)
		}

		mainMeshAdded := false
		if containsAny(desc, "mesh", "visual") {
			addComponent("StaticMeshComponent", "MainMesh")
			mainMeshAdded = true
		}
		if containsAny(desc, "collision", "collide") {
			addComponent("BoxComponent", "CollisionBox")
		}
		if mainMeshAdded && containsAny(desc, "physics", "fall", "gravity") {
			_, _ = sender.SendCommand(ctx, "set_physics_properties", physicsParams(SetPhysicsInput{
				BlueprintName: bpName,
				ComponentName: "MainMesh",
			}))
		}
		if strings.Contains(desc, "light") {
			addComponent("PointLightComponent", "Light")
		}
		if containsAny(desc, "sound", "audio") {
			addComponent("AudioComponent", "Sound")
		}

		addEvent := func(eventType string) {
			_, _ = sender.SendCommand(ctx, "add_blueprint_event_node", map[string]any{
				"blueprint_name": bpName,
				"event_type":     eventType,
				"node_position":  []float64{0, 0},
			})
			result.Events = append(result.Events, eventType)
		}
		if containsAny(desc, "start", "begin", "spawn") {
			addEvent("BeginPlay")
		}
		if containsAny(desc, "tick", "every frame", "continuously") {
			addEvent("Tick")
		}
		if containsAny(desc, "overlap", "touch", "collide") {
			addEvent("BeginOverlap")
		}

		addVariable := func(name, varType string, defaultValue float64) {
			_, _ = sender.SendCommand(ctx, "create_blueprint_variable", map[string]any{
				"blueprint_name": bpName,
				"variable_name":  name,
				"variable_type":  varType,
				"default_value":  defaultValue,
			})
			result.Variables = append(result.Variables, name)
		}
		if containsAny(desc, "health", "hp") {
			addVariable("Health", "float", 100)
		}
		if strings.Contains(desc, "speed") {
			addVariable("Speed", "float", 600)
		}
		if strings.Contains(desc, "damage") {
			addVariable("Damage", "float", 10)
		}

		_, _ = sender.SendCommand(ctx, "compile_blueprint", map[string]any{"blueprint_name": bpName})

		return nil, result, nil
	}
}

// blueprintFromKeywords picks a blueprint name and parent class from the
// lowercased description.
func blueprintFromKeywords(desc string) (name, parentClass string) {
	switch {
	case strings.Contains(desc, "player"):
		name, parentClass = "BP_Player", "Pawn"
	case containsAny(desc, "pickup", "collectible"):
		name, parentClass = "BP_Pickup", "Actor"
	case containsAny(desc, "enemy", "ai"):
		name, parentClass = "BP_Enemy", "Pawn"
	default:
		name, parentClass = "BP_Custom", "Actor"
	}
	if m := blueprintNamePattern.FindStringSubmatch(desc); m != nil {
		name = "BP_" + strings.ToUpper(m[1][:1]) + m[1][1:]
	}
	return name, parentClass
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// InteractiveBlueprintInput represents the MCP tool input for the
// interaction preset composite.
type InteractiveBlueprintInput struct {
	Name            string `json:"name" jsonschema:"blueprint base name; BP_ prefix is added"`
	InteractionType string `json:"interaction_type,omitempty" jsonschema:"pickup, button, trigger, or door (default pickup)"`
}

// InteractiveBlueprintResult summarizes the built interaction blueprint.
type InteractiveBlueprintResult struct {
	BlueprintName   string `json:"blueprint_name" jsonschema:"created blueprint name"`
	InteractionType string `json:"interaction_type" jsonschema:"applied preset"`
}

// InteractiveBlueprintTool defines the MCP tool schema for interaction presets.
func InteractiveBlueprintTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_interactive_blueprint",
		Description: "Creates a Blueprint with built-in interaction logic (pickup, button, trigger, door)",
	}
}

// InteractiveBlueprintHandler builds a blueprint with a base mesh, trigger
// sphere, and the preset's variables, custom events and graph nodes.
func InteractiveBlueprintHandler(sender CommandSender) mcp.ToolHandlerFor[InteractiveBlueprintInput, InteractiveBlueprintResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InteractiveBlueprintInput) (*mcp.CallToolResult, InteractiveBlueprintResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, InteractiveBlueprintResult{}, fmt.Errorf("name is required")
		}
		interaction := input.InteractionType
		if interaction == "" {
			interaction = "pickup"
		}
		bpName := "BP_" + input.Name

		if _, err := sendChecked(ctx, sender, "create_blueprint", map[string]any{
			"name": bpName, "parent_class": "Actor",
		}); err != nil {
			return nil, InteractiveBlueprintResult{}, fmt.Errorf("create blueprint: %w", err)
		}

		send := func(commandType string, params map[string]any) {
			_, _ = sender.SendCommand(ctx, commandType, params)
		}
		variable := func(name, varType string, defaultValue any) {
			send("create_blueprint_variable", map[string]any{
				"blueprint_name": bpName, "variable_name": name,
				"variable_type": varType, "default_value": defaultValue,
			})
		}
		event := func(eventType string, pos []float64) {
			send("add_blueprint_event_node", map[string]any{
				"blueprint_name": bpName, "event_type": eventType, "node_position": pos,
			})
		}
		function := func(name string, pos []float64) {
			send("add_blueprint_function_node", map[string]any{
				"blueprint_name": bpName, "function_name": name,
				"function_class": nil, "node_position": pos,
			})
		}
		customEvent := func(name string, params []EventParam) {
			send("create_blueprint_custom_event", map[string]any{
				"blueprint_name": bpName, "event_name": name, "input_params": params,
			})
		}

		send("add_component_to_blueprint", addComponentParams(AddComponentInput{
			BlueprintName: bpName, ComponentType: "StaticMeshComponent", ComponentName: "BaseMesh",
		}))
		send("add_component_to_blueprint", addComponentParams(AddComponentInput{
			BlueprintName: bpName, ComponentType: "SphereComponent", ComponentName: "TriggerSphere",
		}))

		switch interaction {
		case "pickup":
			variable("IsCollected", "bool", false)
			variable("RotationSpeed", "float", 90.0)
			event("Tick", []float64{0, 0})
			function("AddLocalRotation", []float64{300, 0})
			event("BeginOverlap", []float64{0, 200})
			function("DestroyActor", []float64{300, 200})
		case "button":
			variable("IsPressed", "bool", false)
			customEvent("OnButtonPressed", []EventParam{})
			event("BeginOverlap", []float64{0, 0})
			send("add_blueprint_branch_node", map[string]any{
				"blueprint_name": bpName, "node_position": []float64{300, 0},
			})
		case "trigger":
			variable("IsTriggered", "bool", false)
			customEvent("OnTriggerEnter", []EventParam{{Name: "Actor", Type: "Actor"}})
			customEvent("OnTriggerExit", []EventParam{{Name: "Actor", Type: "Actor"}})
			event("BeginOverlap", []float64{0, 0})
			event("EndOverlap", []float64{0, 200})
		case "door":
			variable("IsOpen", "bool", false)
			variable("OpenAngle", "float", 90.0)
			customEvent("OpenDoor", []EventParam{})
			customEvent("CloseDoor", []EventParam{})
			event("BeginPlay", []float64{0, 0})
		default:
			return nil, InteractiveBlueprintResult{}, fmt.Errorf("interaction type %q is not supported", interaction)
		}

		send("compile_blueprint", map[string]any{"blueprint_name": bpName})

		return nil, InteractiveBlueprintResult{BlueprintName: bpName, InteractionType: interaction}, nil
	}
}

// PromptBlueprintInput represents the MCP tool input for the prompt composite.
type PromptBlueprintInput struct {
	Prompt string `json:"prompt" jsonschema:"natural language prompt describing the blueprint"`
}

// PromptBlueprintTool defines the MCP tool schema for the prompt composite.
func PromptBlueprintTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_blueprint_from_prompt",
		Description: "Creates a blueprint from a natural language prompt with automatic node connections",
	}
}

// PromptBlueprintHandler forwards the prompt to the engine, which owns the
// prompt interpretation.
func PromptBlueprintHandler(sender CommandSender) mcp.ToolHandlerFor[PromptBlueprintInput, EngineResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PromptBlueprintInput) (*mcp.CallToolResult, EngineResult, error) {
		if strings.TrimSpace(input.Prompt) == "" {
			return nil, EngineResult{}, fmt.Errorf("prompt is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		resp, err := sendChecked(runCtx, sender, "create_blueprint_from_prompt", map[string]any{
			"prompt": input.Prompt,
		})
		if err != nil {
			return nil, EngineResult{}, fmt.Errorf("create blueprint from prompt: %w", err)
		}
		return nil, EngineResult{Result: resp.Result, Message: resp.Message}, nil
	}
}
