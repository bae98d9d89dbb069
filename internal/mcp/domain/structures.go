package domain

import (
	"context"
	"fmt"

	"github.com/flopperam/unrealmcp/internal/procgen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func vec3(v []float64) procgen.Vec3 {
	if len(v) == 3 {
		return procgen.Vec3{v[0], v[1], v[2]}
	}
	return procgen.Vec3{}
}

// PyramidInput represents the MCP tool input for pyramid generation.
type PyramidInput struct {
	BaseSize   int       `json:"base_size,omitempty" jsonschema:"blocks along the base edge (default 3)"`
	BlockSize  float64   `json:"block_size,omitempty" jsonschema:"block edge length in units (default 100)"`
	Location   []float64 `json:"location,omitempty" jsonschema:"base center [x,y,z]"`
	NamePrefix string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix"`
	Mesh       string    `json:"mesh,omitempty" jsonschema:"static mesh asset path"`
}

// PyramidTool defines the MCP tool schema for pyramid generation.
func PyramidTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_pyramid",
		Description: "Builds a stepped pyramid of blocks",
	}
}

// PyramidHandler plans and spawns a pyramid.
func PyramidHandler(sender CommandSender) mcp.ToolHandlerFor[PyramidInput, SpawnReport] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PyramidInput) (*mcp.CallToolResult, SpawnReport, error) {
		specs := procgen.Pyramid(procgen.PyramidParams{
			BaseSize:   input.BaseSize,
			BlockSize:  input.BlockSize,
			Location:   vec3(input.Location),
			NamePrefix: input.NamePrefix,
			Mesh:       input.Mesh,
		})
		report, err := spawnSpecs(ctx, sender, specs)
		if err != nil {
			return nil, report, fmt.Errorf("create pyramid: %w", err)
		}
		return nil, report, nil
	}
}

// WallInput represents the MCP tool input for wall generation.
type WallInput struct {
	Length      int       `json:"length,omitempty" jsonschema:"blocks along the wall (default 5)"`
	Height      int       `json:"height,omitempty" jsonschema:"blocks high (default 2)"`
	BlockSize   float64   `json:"block_size,omitempty" jsonschema:"block edge length in units (default 100)"`
	Location    []float64 `json:"location,omitempty" jsonschema:"wall start [x,y,z]"`
	Orientation string    `json:"orientation,omitempty" jsonschema:"x or y (default x)"`
	NamePrefix  string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix"`
	Mesh        string    `json:"mesh,omitempty" jsonschema:"static mesh asset path"`
}

// WallTool defines the MCP tool schema for wall generation.
func WallTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_wall",
		Description: "Builds a straight wall of stacked blocks",
	}
}

// WallHandler plans and spawns a wall.
func WallHandler(sender CommandSender) mcp.ToolHandlerFor[WallInput, SpawnReport] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WallInput) (*mcp.CallToolResult, SpawnReport, error) {
		specs := procgen.Wall(procgen.WallParams{
			Length:      input.Length,
			Height:      input.Height,
			BlockSize:   input.BlockSize,
			Location:    vec3(input.Location),
			Orientation: input.Orientation,
			NamePrefix:  input.NamePrefix,
			Mesh:        input.Mesh,
		})
		report, err := spawnSpecs(ctx, sender, specs)
		if err != nil {
			return nil, report, fmt.Errorf("create wall: %w", err)
		}
		return nil, report, nil
	}
}

// TowerInput represents the MCP tool input for tower generation.
type TowerInput struct {
	Height     int       `json:"height,omitempty" jsonschema:"levels (default 10)"`
	BaseSize   int       `json:"base_size,omitempty" jsonschema:"blocks across the base (default 4)"`
	BlockSize  float64   `json:"block_size,omitempty" jsonschema:"block edge length in units (default 100)"`
	Location   []float64 `json:"location,omitempty" jsonschema:"tower center [x,y,z]"`
	NamePrefix string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix"`
	Mesh       string    `json:"mesh,omitempty" jsonschema:"static mesh asset path"`
	Style      string    `json:"style,omitempty" jsonschema:"cylindrical, square, or tapered (default cylindrical)"`
}

// TowerTool defines the MCP tool schema for tower generation.
func TowerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_tower",
		Description: "Builds a tower in cylindrical, square, or tapered style",
	}
}

// TowerHandler plans and spawns a tower.
func TowerHandler(sender CommandSender) mcp.ToolHandlerFor[TowerInput, SpawnReport] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TowerInput) (*mcp.CallToolResult, SpawnReport, error) {
		specs := procgen.Tower(procgen.TowerParams{
			Height:     input.Height,
			BaseSize:   input.BaseSize,
			BlockSize:  input.BlockSize,
			Location:   vec3(input.Location),
			NamePrefix: input.NamePrefix,
			Mesh:       input.Mesh,
			Style:      input.Style,
		})
		report, err := spawnSpecs(ctx, sender, specs)
		if err != nil {
			return nil, report, fmt.Errorf("create tower: %w", err)
		}
		return nil, report, nil
	}
}

// StaircaseInput represents the MCP tool input for staircase generation.
type StaircaseInput struct {
	Steps      int       `json:"steps,omitempty" jsonschema:"number of steps (default 5)"`
	StepSize   []float64 `json:"step_size,omitempty" jsonschema:"step dimensions [x,y,z] in units (default [100,100,50])"`
	Location   []float64 `json:"location,omitempty" jsonschema:"first step [x,y,z]"`
	NamePrefix string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix"`
	Mesh       string    `json:"mesh,omitempty" jsonschema:"static mesh asset path"`
}

// StaircaseTool defines the MCP tool schema for staircase generation.
func StaircaseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_staircase",
		Description: "Builds a straight staircase",
	}
}

// StaircaseHandler plans and spawns a staircase.
func StaircaseHandler(sender CommandSender) mcp.ToolHandlerFor[StaircaseInput, SpawnReport] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StaircaseInput) (*mcp.CallToolResult, SpawnReport, error) {
		specs := procgen.Staircase(procgen.StaircaseParams{
			Steps:      input.Steps,
			StepSize:   vec3(input.StepSize),
			Location:   vec3(input.Location),
			NamePrefix: input.NamePrefix,
			Mesh:       input.Mesh,
		})
		report, err := spawnSpecs(ctx, sender, specs)
		if err != nil {
			return nil, report, fmt.Errorf("create staircase: %w", err)
		}
		return nil, report, nil
	}
}

// ArchInput represents the MCP tool input for arch generation.
type ArchInput struct {
	Radius     float64   `json:"radius,omitempty" jsonschema:"arch radius in units (default 300)"`
	Segments   int       `json:"segments,omitempty" jsonschema:"semicircle segments (default 6)"`
	Location   []float64 `json:"location,omitempty" jsonschema:"arch center [x,y,z]"`
	NamePrefix string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix"`
	Mesh       string    `json:"mesh,omitempty" jsonschema:"static mesh asset path"`
}

// ArchTool defines the MCP tool schema for arch generation.
func ArchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_arch",
		Description: "Builds a semicircular arch of blocks",
	}
}

// ArchHandler plans and spawns an arch.
func ArchHandler(sender CommandSender) mcp.ToolHandlerFor[ArchInput, SpawnReport] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArchInput) (*mcp.CallToolResult, SpawnReport, error) {
		specs := procgen.Arch(procgen.ArchParams{
			Radius:     input.Radius,
			Segments:   input.Segments,
			Location:   vec3(input.Location),
			NamePrefix: input.NamePrefix,
			Mesh:       input.Mesh,
		})
		report, err := spawnSpecs(ctx, sender, specs)
		if err != nil {
			return nil, report, fmt.Errorf("create arch: %w", err)
		}
		return nil, report, nil
	}
}

// HouseInput represents the MCP tool input for house construction.
type HouseInput struct {
	Width      float64   `json:"width,omitempty" jsonschema:"house width in units (default 1200)"`
	Depth      float64   `json:"depth,omitempty" jsonschema:"house depth in units (default 1000)"`
	Height     float64   `json:"height,omitempty" jsonschema:"wall height in units (default 600)"`
	Location   []float64 `json:"location,omitempty" jsonschema:"house center [x,y,z]"`
	NamePrefix string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix"`
	Style      string    `json:"house_style,omitempty" jsonschema:"modern, cottage, or mansion (default modern)"`
}

// HouseResult reports the spawn counts plus the planned house features.
type HouseResult struct {
	SpawnReport
	Features []string `json:"features" jsonschema:"house features included by the style"`
}

// HouseTool defines the MCP tool schema for house construction.
func HouseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "construct_house",
		Description: "Builds a house with walls, door and window openings, roof, and style extras",
	}
}

// HouseHandler plans and spawns a house.
func HouseHandler(sender CommandSender) mcp.ToolHandlerFor[HouseInput, HouseResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HouseInput) (*mcp.CallToolResult, HouseResult, error) {
		plan := procgen.House(procgen.HouseParams{
			Width:      input.Width,
			Depth:      input.Depth,
			Height:     input.Height,
			Location:   vec3(input.Location),
			NamePrefix: input.NamePrefix,
			Style:      input.Style,
		})
		report, err := spawnSpecs(ctx, sender, plan.Specs)
		if err != nil {
			return nil, HouseResult{SpawnReport: report}, fmt.Errorf("construct house: %w", err)
		}
		return nil, HouseResult{SpawnReport: report, Features: plan.Features}, nil
	}
}

// MazeInput represents the MCP tool input for maze generation.
type MazeInput struct {
	Rows       int       `json:"rows,omitempty" jsonschema:"maze rows (default 8)"`
	Cols       int       `json:"cols,omitempty" jsonschema:"maze columns (default 8)"`
	CellSize   float64   `json:"cell_size,omitempty" jsonschema:"cell edge length in units (default 300)"`
	WallHeight int       `json:"wall_height,omitempty" jsonschema:"wall blocks stacked high (default 3)"`
	Location   []float64 `json:"location,omitempty" jsonschema:"maze center [x,y,z]"`
}

// MazeResult reports the spawn counts plus the wall count of the carve.
type MazeResult struct {
	SpawnReport
	WallCount int `json:"wall_count" jsonschema:"number of wall blocks in the carved maze"`
}

// MazeTool defines the MCP tool schema for maze generation.
func MazeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_maze",
		Description: "Builds a solvable maze with entrance and exit markers",
	}
}

// MazeHandler plans and spawns a maze.
func MazeHandler(sender CommandSender) mcp.ToolHandlerFor[MazeInput, MazeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MazeInput) (*mcp.CallToolResult, MazeResult, error) {
		plan := procgen.Maze(procgen.MazeParams{
			Rows:       input.Rows,
			Cols:       input.Cols,
			CellSize:   input.CellSize,
			WallHeight: input.WallHeight,
			Location:   vec3(input.Location),
		})
		report, err := spawnSpecs(ctx, sender, plan.Specs)
		if err != nil {
			return nil, MazeResult{SpawnReport: report}, fmt.Errorf("create maze: %w", err)
		}
		return nil, MazeResult{SpawnReport: report, WallCount: plan.WallCount}, nil
	}
}

// ObstacleCourseInput represents the MCP tool input for obstacle courses.
type ObstacleCourseInput struct {
	Checkpoints int       `json:"checkpoints,omitempty" jsonschema:"number of pillars (default 5)"`
	Spacing     float64   `json:"spacing,omitempty" jsonschema:"distance between pillars in units (default 500)"`
	Location    []float64 `json:"location,omitempty" jsonschema:"course start [x,y,z]"`
}

// ObstacleCourseTool defines the MCP tool schema for obstacle courses.
func ObstacleCourseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_obstacle_course",
		Description: "Builds a row of cylinder checkpoint pillars",
	}
}

// ObstacleCourseHandler plans and spawns an obstacle course.
func ObstacleCourseHandler(sender CommandSender) mcp.ToolHandlerFor[ObstacleCourseInput, SpawnReport] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ObstacleCourseInput) (*mcp.CallToolResult, SpawnReport, error) {
		specs := procgen.ObstacleCourse(procgen.ObstacleCourseParams{
			Checkpoints: input.Checkpoints,
			Spacing:     input.Spacing,
			Location:    vec3(input.Location),
		})
		report, err := spawnSpecs(ctx, sender, specs)
		if err != nil {
			return nil, report, fmt.Errorf("create obstacle course: %w", err)
		}
		return nil, report, nil
	}
}
