// Package domain defines the MCP tool schemas and handlers that drive the
// Unreal editor plugin over the TCP bridge.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/flopperam/unrealmcp/internal/procgen"
	"github.com/flopperam/unrealmcp/internal/unreal"
)

// commandTimeout bounds a single engine command issued by a tool handler.
const commandTimeout = 30 * time.Second

// CommandSender issues one command to the running editor and returns its
// normalized response. Engine-declared failures come back in the response,
// not the error.
type CommandSender interface {
	SendCommand(ctx context.Context, commandType string, params any) (*unreal.Response, error)
}

// sendChecked issues a command and folds engine-declared failures into the
// returned error.
func sendChecked(ctx context.Context, sender CommandSender, commandType string, params any) (*unreal.Response, error) {
	resp, err := sender.SendCommand(ctx, commandType, params)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// SpawnReport summarizes a batch of spawn commands.
type SpawnReport struct {
	Spawned int      `json:"spawned" jsonschema:"number of actors spawned"`
	Failed  int      `json:"failed" jsonschema:"number of actors that failed to spawn"`
	Actors  []string `json:"actors,omitempty" jsonschema:"names of spawned actors"`
}

// spawnSpecs sends one spawn_actor per planned spec, applying material
// colors where a spec carries one. A transport failure aborts the batch
// and reports counts so far.
func spawnSpecs(ctx context.Context, sender CommandSender, specs []procgen.SpawnSpec) (SpawnReport, error) {
	report := SpawnReport{}
	for _, spec := range specs {
		params := map[string]any{
			"name":     spec.Name,
			"type":     "StaticMeshActor",
			"location": spec.Location,
		}
		if spec.Rotation != nil {
			params["rotation"] = *spec.Rotation
		}
		if spec.Scale != nil {
			params["scale"] = *spec.Scale
		}
		if spec.Mesh != "" {
			params["static_mesh"] = spec.Mesh
		}

		resp, err := sender.SendCommand(ctx, "spawn_actor", params)
		if err != nil {
			return report, fmt.Errorf("spawn %s: %w", spec.Name, err)
		}
		if !resp.OK() {
			report.Failed++
			continue
		}
		report.Spawned++
		report.Actors = append(report.Actors, spec.Name)

		if spec.Color != nil {
			applyActorColor(ctx, sender, spec.Name, *spec.Color)
		}
	}
	return report, nil
}

// applyActorColor tints a spawned actor, setting both common parameter
// names so the tint lands regardless of the material. Failures are
// tolerated; geometry matters more than tint.
func applyActorColor(ctx context.Context, sender CommandSender, actorName string, color procgen.Color) {
	for _, param := range []string{"BaseColor", "Color"} {
		_, _ = sender.SendCommand(ctx, "set_actor_material_color", map[string]any{
			"actor_name":     actorName,
			"color":          color,
			"parameter_name": param,
			"material_path":  basicShapeMaterial,
		})
	}
}

const basicShapeMaterial = "/Engine/BasicShapes/BasicShapeMaterial"
