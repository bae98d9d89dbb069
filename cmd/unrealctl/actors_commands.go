package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flopperam/unrealmcp/internal/unreal"
)

func newActorsCommand(engineAddr *string) *cobra.Command {
	actorsCmd := &cobra.Command{
		Use:   "actors",
		Short: "Inspect and spawn level actors",
	}

	actorsCmd.AddCommand(newActorsListCommand(engineAddr))
	actorsCmd.AddCommand(newActorsSpawnCommand(engineAddr))

	return actorsCmd
}

// levelActor is one actor entry from get_actors_in_level. The plugin reports
// either "class" or "type" depending on version.
type levelActor struct {
	Name     string    `json:"name"`
	Class    string    `json:"class"`
	Type     string    `json:"type"`
	Location []float64 `json:"location"`
}

func (a levelActor) kind() string {
	if a.Class != "" {
		return a.Class
	}
	return a.Type
}

func (a levelActor) position() string {
	if len(a.Location) < 3 {
		return ""
	}
	return fmt.Sprintf("%.1f, %.1f, %.1f", a.Location[0], a.Location[1], a.Location[2])
}

// decodeActors accepts both response shapes: a bare array and an object with
// an "actors" key.
func decodeActors(result json.RawMessage) ([]levelActor, error) {
	var wrapped struct {
		Actors []levelActor `json:"actors"`
	}
	if err := json.Unmarshal(result, &wrapped); err == nil && wrapped.Actors != nil {
		return wrapped.Actors, nil
	}

	var actors []levelActor
	if err := json.Unmarshal(result, &actors); err != nil {
		return nil, fmt.Errorf("decode actors: %w", err)
	}
	return actors, nil
}

func newActorsListCommand(engineAddr *string) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actors in the current level",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := unreal.NewClient(*engineAddr)

			commandType := "get_actors_in_level"
			var params map[string]any
			if pattern != "" {
				commandType = "find_actors_by_name"
				params = map[string]any{"pattern": pattern}
			}

			resp, err := client.SendChecked(cmd.Context(), commandType, params)
			if err != nil {
				return err
			}

			actors, err := decodeActors(resp.Result)
			if err != nil {
				return err
			}
			if len(actors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No actors found")
				return nil
			}

			rows := make([][]string, 0, len(actors))
			for _, actor := range actors {
				rows = append(rows, []string{actor.Name, actor.kind(), actor.position()})
			}
			out := renderTable([]string{"Name", "Class", "Location"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight})
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "Filter actors by name pattern")

	return cmd
}

func newActorsSpawnCommand(engineAddr *string) *cobra.Command {
	var (
		actorType string
		location  string
		rotation  string
		mesh      string
	)

	cmd := &cobra.Command{
		Use:   "spawn <name>",
		Short: "Spawn an actor in the current level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseVector(location)
			if err != nil {
				return fmt.Errorf("parse location: %w", err)
			}

			params := map[string]any{
				"name":     args[0],
				"type":     actorType,
				"location": loc,
			}
			if rotation != "" {
				rot, err := parseVector(rotation)
				if err != nil {
					return fmt.Errorf("parse rotation: %w", err)
				}
				params["rotation"] = rot
			}
			if mesh != "" {
				params["static_mesh"] = mesh
			}

			client := unreal.NewClient(*engineAddr)
			if _, err := client.SendChecked(cmd.Context(), "spawn_actor", params); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Spawned %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&actorType, "type", "StaticMeshActor", "Actor type to spawn")
	cmd.Flags().StringVar(&location, "location", "0,0,0", "World location as x,y,z")
	cmd.Flags().StringVar(&rotation, "rotation", "", "Rotation as pitch,yaw,roll")
	cmd.Flags().StringVar(&mesh, "mesh", "", "Static mesh asset path")

	return cmd
}

// parseVector parses "x,y,z" into a 3-element slice.
func parseVector(value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected x,y,z, got %q", value)
	}
	vec := make([]float64, 3)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		vec[i] = f
	}
	return vec, nil
}
