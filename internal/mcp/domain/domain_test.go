package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/flopperam/unrealmcp/internal/unreal"
)

// fakeSender records commands and scripts responses per command type.
type fakeSender struct {
	commands []sentCommand
	// respond overrides the default success response when set.
	respond func(commandType string, params any) (*unreal.Response, error)
}

type sentCommand struct {
	Type   string
	Params map[string]any
}

func (f *fakeSender) SendCommand(_ context.Context, commandType string, params any) (*unreal.Response, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		decoded = nil
	}
	f.commands = append(f.commands, sentCommand{Type: commandType, Params: decoded})

	if f.respond != nil {
		return f.respond(commandType, params)
	}
	return &unreal.Response{Status: "success", Result: json.RawMessage(`{}`)}, nil
}

func (f *fakeSender) types() []string {
	out := make([]string, len(f.commands))
	for i, c := range f.commands {
		out[i] = c.Type
	}
	return out
}

func (f *fakeSender) countType(commandType string) int {
	n := 0
	for _, c := range f.commands {
		if c.Type == commandType {
			n++
		}
	}
	return n
}

func TestSpawnActorHandlerSendsParams(t *testing.T) {
	sender := &fakeSender{}
	handler := SpawnActorHandler(sender)

	_, _, err := handler(context.Background(), nil, SpawnActorInput{
		Name:     "Cube1",
		Type:     "StaticMeshActor",
		Location: []float64{100, 200, 300},
		Scale:    []float64{2, 2, 2},
	})
	if err != nil {
		t.Fatalf("spawn actor: %v", err)
	}
	if len(sender.commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(sender.commands))
	}
	cmd := sender.commands[0]
	if cmd.Type != "spawn_actor" {
		t.Fatalf("sent %q", cmd.Type)
	}
	if cmd.Params["name"] != "Cube1" {
		t.Fatalf("name param %v", cmd.Params["name"])
	}
	if _, ok := cmd.Params["scale"]; !ok {
		t.Fatal("scale param missing")
	}
	if _, ok := cmd.Params["static_mesh"]; ok {
		t.Fatal("static_mesh should be omitted when empty")
	}
}

func TestSpawnActorHandlerRequiresName(t *testing.T) {
	handler := SpawnActorHandler(&fakeSender{})
	_, _, err := handler(context.Background(), nil, SpawnActorInput{Type: "StaticMeshActor"})
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestSetActorTransformOmitsUnsetFields(t *testing.T) {
	sender := &fakeSender{}
	handler := SetActorTransformHandler(sender)

	_, _, err := handler(context.Background(), nil, SetActorTransformInput{
		Name:  "Cube1",
		Scale: []float64{3, 3, 3},
	})
	if err != nil {
		t.Fatalf("set transform: %v", err)
	}
	params := sender.commands[0].Params
	if _, ok := params["location"]; ok {
		t.Fatal("location should not be sent when omitted")
	}
	if _, ok := params["rotation"]; ok {
		t.Fatal("rotation should not be sent when omitted")
	}
	if _, ok := params["scale"]; !ok {
		t.Fatal("scale missing")
	}
}

func TestHandlerSurfacesEngineError(t *testing.T) {
	sender := &fakeSender{
		respond: func(commandType string, _ any) (*unreal.Response, error) {
			return &unreal.Response{Status: "error", Message: "no such actor"}, nil
		},
	}
	handler := DeleteActorHandler(sender)
	_, _, err := handler(context.Background(), nil, DeleteActorInput{Name: "Ghost"})
	if err == nil || !strings.Contains(err.Error(), "engine: no such actor") {
		t.Fatalf("expected engine error, got %v", err)
	}
}

func TestPhysicsActorCompositeSequence(t *testing.T) {
	sender := &fakeSender{
		respond: func(commandType string, _ any) (*unreal.Response, error) {
			if commandType == "spawn_blueprint_actor" {
				return &unreal.Response{Status: "success", Result: json.RawMessage(`{"name":"Ball"}`)}, nil
			}
			return &unreal.Response{Status: "success"}, nil
		},
	}
	handler := PhysicsActorHandler(sender)

	_, result, err := handler(context.Background(), nil, PhysicsActorInput{
		Name:  "Ball",
		Color: []float64{1, 0, 0},
	})
	if err != nil {
		t.Fatalf("physics composite: %v", err)
	}
	if result.BlueprintName != "Ball_BP" {
		t.Fatalf("blueprint name %q", result.BlueprintName)
	}

	want := []string{
		"create_blueprint",
		"add_component_to_blueprint",
		"set_static_mesh_properties",
		"set_physics_properties",
		"set_mesh_material_color",
		"set_mesh_material_color",
		"compile_blueprint",
		"spawn_blueprint_actor",
		"set_actor_transform",
	}
	got := sender.types()
	if len(got) != len(want) {
		t.Fatalf("command sequence %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %s, want %s", i, got[i], want[i])
		}
	}

	// RGB input gains alpha 1.
	colorParams := sender.commands[4].Params
	color, ok := colorParams["color"].([]any)
	if !ok || len(color) != 4 {
		t.Fatalf("color param %v", colorParams["color"])
	}
	if color[3].(float64) != 1 {
		t.Fatalf("alpha %v", color[3])
	}
}

func TestPhysicsActorCompositeAbortsOnCreateFailure(t *testing.T) {
	sender := &fakeSender{
		respond: func(commandType string, _ any) (*unreal.Response, error) {
			if commandType == "create_blueprint" {
				return &unreal.Response{Status: "error", Message: "duplicate"}, nil
			}
			return &unreal.Response{Status: "success"}, nil
		},
	}
	handler := PhysicsActorHandler(sender)
	_, _, err := handler(context.Background(), nil, PhysicsActorInput{Name: "Ball"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(sender.commands) != 1 {
		t.Fatalf("composite should abort after the failed create, sent %v", sender.types())
	}
}

func TestMeshColorClampsAndDualApplies(t *testing.T) {
	sender := &fakeSender{}
	handler := MeshColorHandler(sender)

	_, result, err := handler(context.Background(), nil, MeshColorInput{
		BlueprintName: "BP_Thing",
		ComponentName: "Mesh",
		Color:         []float64{2, -1, 0.5, 1},
	})
	if err != nil {
		t.Fatalf("mesh color: %v", err)
	}
	if want := []float64{1, 0, 0.5, 1}; fmt.Sprint(result.Color) != fmt.Sprint(want) {
		t.Fatalf("clamped color %v", result.Color)
	}
	if sender.countType("set_mesh_material_color") != 2 {
		t.Fatalf("expected BaseColor and Color applies, got %v", sender.types())
	}
	params := []string{
		sender.commands[0].Params["parameter_name"].(string),
		sender.commands[1].Params["parameter_name"].(string),
	}
	if params[0] != "BaseColor" || params[1] != "Color" {
		t.Fatalf("parameter order %v", params)
	}
}

func TestMeshColorSucceedsIfEitherParameterLands(t *testing.T) {
	calls := 0
	sender := &fakeSender{
		respond: func(commandType string, _ any) (*unreal.Response, error) {
			calls++
			if calls == 1 {
				return &unreal.Response{Status: "error", Message: "no BaseColor parameter"}, nil
			}
			return &unreal.Response{Status: "success"}, nil
		},
	}
	handler := MeshColorHandler(sender)
	_, result, err := handler(context.Background(), nil, MeshColorInput{
		BlueprintName: "BP_Thing", ComponentName: "Mesh", Color: []float64{0, 1, 0, 1},
	})
	if err != nil {
		t.Fatalf("mesh color: %v", err)
	}
	if !result.Applied {
		t.Fatal("expected applied result")
	}
}

func TestMeshColorRejectsBadTuple(t *testing.T) {
	handler := MeshColorHandler(&fakeSender{})
	_, _, err := handler(context.Background(), nil, MeshColorInput{Color: []float64{1, 0}})
	if err == nil {
		t.Fatal("expected color validation error")
	}
}

func TestDescribeBlueprintPickup(t *testing.T) {
	sender := &fakeSender{}
	handler := DescribeBlueprintHandler(sender)

	_, result, err := handler(context.Background(), nil, DescribeBlueprintInput{
		Description: "A pickup with a mesh that rotates and tracks health",
	})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if result.BlueprintName != "BP_Pickup" || result.ParentClass != "Actor" {
		t.Fatalf("derived %s / %s", result.BlueprintName, result.ParentClass)
	}
	if len(result.Components) != 1 || result.Components[0] != "StaticMeshComponent" {
		t.Fatalf("components %v", result.Components)
	}
	if len(result.Variables) != 1 || result.Variables[0] != "Health" {
		t.Fatalf("variables %v", result.Variables)
	}
	if sender.countType("compile_blueprint") != 1 {
		t.Fatal("blueprint not compiled")
	}
}

func TestDescribeBlueprintCustomName(t *testing.T) {
	sender := &fakeSender{}
	handler := DescribeBlueprintHandler(sender)

	_, result, err := handler(context.Background(), nil, DescribeBlueprintInput{
		Description: "a player called hero that can fall with gravity and a mesh",
	})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if result.BlueprintName != "BP_Hero" {
		t.Fatalf("name %q", result.BlueprintName)
	}
	if result.ParentClass != "Pawn" {
		t.Fatalf("parent %q", result.ParentClass)
	}
	if sender.countType("set_physics_properties") != 1 {
		t.Fatal("physics not configured for gravity description")
	}
}

func TestInteractiveBlueprintDoorPreset(t *testing.T) {
	sender := &fakeSender{}
	handler := InteractiveBlueprintHandler(sender)

	_, result, err := handler(context.Background(), nil, InteractiveBlueprintInput{
		Name: "FrontDoor", InteractionType: "door",
	})
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if result.BlueprintName != "BP_FrontDoor" {
		t.Fatalf("name %q", result.BlueprintName)
	}
	if sender.countType("create_blueprint_custom_event") != 2 {
		t.Fatalf("door preset should add OpenDoor and CloseDoor, got %v", sender.types())
	}
	if sender.countType("create_blueprint_variable") != 2 {
		t.Fatalf("door preset should add IsOpen and OpenAngle, got %v", sender.types())
	}
}

func TestInteractiveBlueprintRejectsUnknownPreset(t *testing.T) {
	handler := InteractiveBlueprintHandler(&fakeSender{})
	_, _, err := handler(context.Background(), nil, InteractiveBlueprintInput{
		Name: "Thing", InteractionType: "teleporter",
	})
	if err == nil {
		t.Fatal("expected unsupported preset error")
	}
}

func TestPyramidHandlerReportsCounts(t *testing.T) {
	sender := &fakeSender{}
	handler := PyramidHandler(sender)

	_, report, err := handler(context.Background(), nil, PyramidInput{BaseSize: 3})
	if err != nil {
		t.Fatalf("pyramid: %v", err)
	}
	if report.Spawned != 14 || report.Failed != 0 {
		t.Fatalf("report %+v", report)
	}
	if sender.countType("spawn_actor") != 14 {
		t.Fatalf("spawn commands %d", sender.countType("spawn_actor"))
	}
}

func TestSpawnSpecsCountsEngineFailures(t *testing.T) {
	calls := 0
	sender := &fakeSender{
		respond: func(commandType string, _ any) (*unreal.Response, error) {
			calls++
			if calls%2 == 0 {
				return &unreal.Response{Status: "error", Message: "spawn failed"}, nil
			}
			return &unreal.Response{Status: "success"}, nil
		},
	}
	handler := ObstacleCourseHandler(sender)

	_, report, err := handler(context.Background(), nil, ObstacleCourseInput{Checkpoints: 4})
	if err != nil {
		t.Fatalf("obstacle course: %v", err)
	}
	if report.Spawned != 2 || report.Failed != 2 {
		t.Fatalf("report %+v", report)
	}
}

func TestSpawnSpecsAbortsOnTransportError(t *testing.T) {
	calls := 0
	sender := &fakeSender{
		respond: func(commandType string, _ any) (*unreal.Response, error) {
			calls++
			if calls == 3 {
				return nil, fmt.Errorf("dial tcp: connection refused")
			}
			return &unreal.Response{Status: "success"}, nil
		},
	}
	handler := ObstacleCourseHandler(sender)

	_, report, err := handler(context.Background(), nil, ObstacleCourseInput{Checkpoints: 5})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if report.Spawned != 2 {
		t.Fatalf("expected counts up to the failure, got %+v", report)
	}
}

func TestBuildingHandlerAppliesColors(t *testing.T) {
	sender := &fakeSender{}
	handler := BuildingHandler(sender)

	_, result, err := handler(context.Background(), nil, BuildingInput{
		Floors: 2, Style: "brutalist",
	})
	if err != nil {
		t.Fatalf("building: %v", err)
	}
	if result.ColorScheme != "concrete" {
		t.Fatalf("scheme %q", result.ColorScheme)
	}
	// Every spawn is followed by two tint commands.
	if sender.countType("set_actor_material_color") != 2*sender.countType("spawn_actor") {
		t.Fatalf("tint commands %d for %d spawns",
			sender.countType("set_actor_material_color"), sender.countType("spawn_actor"))
	}
}

func TestBuildingHandlerReportsSeed(t *testing.T) {
	sender := &fakeSender{}
	handler := BuildingHandler(sender)

	_, result, err := handler(context.Background(), nil, BuildingInput{
		Floors: 2, Seed: 42,
	})
	if err != nil {
		t.Fatalf("building: %v", err)
	}
	if result.SeedUsed != 42 {
		t.Fatalf("seed_used %d, want 42", result.SeedUsed)
	}
}

func TestTownHandlerReportsStats(t *testing.T) {
	sender := &fakeSender{}
	handler := TownHandler(sender)

	off := false
	_, result, err := handler(context.Background(), nil, TownInput{
		TownSize: "small", IncludeInfrastructure: &off,
	})
	if err != nil {
		t.Fatalf("town: %v", err)
	}
	if result.Blocks != 3 {
		t.Fatalf("blocks %d", result.Blocks)
	}
	if result.Spawned == 0 {
		t.Fatal("no actors spawned")
	}
}

func TestCastleHandlerSpawnsPlan(t *testing.T) {
	sender := &fakeSender{}
	handler := CastleHandler(sender)

	_, result, err := handler(context.Background(), nil, CastleInput{CastleSize: "small"})
	if err != nil {
		t.Fatalf("castle: %v", err)
	}
	if result.Spawned == 0 || result.Failed != 0 {
		t.Fatalf("report %+v", result.SpawnReport)
	}
	if result.Towers == 0 {
		t.Fatal("tower stat missing")
	}
}
