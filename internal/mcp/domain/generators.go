package domain

import (
	"context"
	"fmt"

	"github.com/flopperam/unrealmcp/internal/procgen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TownInput represents the MCP tool input for town generation.
type TownInput struct {
	TownSize              string    `json:"town_size,omitempty" jsonschema:"small, medium, large, or metropolis (default medium)"`
	BuildingDensity       float64   `json:"building_density,omitempty" jsonschema:"fraction of blocks with buildings, 0-1 (default 0.7)"`
	Location              []float64 `json:"location,omitempty" jsonschema:"town center [x,y,z]"`
	NamePrefix            string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix (default Town)"`
	IncludeInfrastructure *bool     `json:"include_infrastructure,omitempty" jsonschema:"add streets furniture, lights, vehicles (default true)"`
	ArchitecturalStyle    string    `json:"architectural_style,omitempty" jsonschema:"modern, cottage, mansion, mixed, downtown, or futuristic (default mixed)"`
}

// TownResult reports spawn counts and town statistics.
type TownResult struct {
	SpawnReport
	Buildings           int `json:"buildings" jsonschema:"buildings planned"`
	InfrastructureItems int `json:"infrastructure_items" jsonschema:"infrastructure actors planned"`
	Blocks              int `json:"blocks" jsonschema:"town blocks per side"`
}

// TownTool defines the MCP tool schema for town generation.
func TownTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_town",
		Description: "Builds a full town with streets, buildings, and infrastructure",
	}
}

// TownHandler plans and spawns a town.
func TownHandler(sender CommandSender) mcp.ToolHandlerFor[TownInput, TownResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TownInput) (*mcp.CallToolResult, TownResult, error) {
		plan := procgen.Town(procgen.TownParams{
			Size:                  input.TownSize,
			BuildingDensity:       input.BuildingDensity,
			Location:              vec3(input.Location),
			NamePrefix:            input.NamePrefix,
			IncludeInfrastructure: boolOr(input.IncludeInfrastructure, true),
			ArchitecturalStyle:    input.ArchitecturalStyle,
		})
		report, err := spawnSpecs(ctx, sender, plan.Specs)
		if err != nil {
			return nil, TownResult{SpawnReport: report}, fmt.Errorf("create town: %w", err)
		}
		return nil, TownResult{
			SpawnReport:         report,
			Buildings:           plan.Buildings,
			InfrastructureItems: plan.InfrastructureItems,
			Blocks:              plan.Blocks,
		}, nil
	}
}

// CastleInput represents the MCP tool input for castle generation.
type CastleInput struct {
	CastleSize          string    `json:"castle_size,omitempty" jsonschema:"small, medium, large, or epic (default large)"`
	Location            []float64 `json:"location,omitempty" jsonschema:"castle center [x,y,z]"`
	NamePrefix          string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix (default Castle)"`
	IncludeSiegeWeapons bool      `json:"include_siege_weapons,omitempty" jsonschema:"add catapults and ballistae"`
	IncludeVillage      bool      `json:"include_village,omitempty" jsonschema:"add surrounding village, market, workshops"`
	ArchitecturalStyle  string    `json:"architectural_style,omitempty" jsonschema:"medieval, fantasy, or gothic (default medieval)"`
}

// CastleResult reports spawn counts and castle statistics.
type CastleResult struct {
	SpawnReport
	WallSections int `json:"wall_sections" jsonschema:"outer wall segments planned"`
	Towers       int `json:"towers" jsonschema:"tower count for the chosen size"`
}

// CastleTool defines the MCP tool schema for castle generation.
func CastleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_castle_fortress",
		Description: "Builds a walled fortress with keep, towers, and optional siege weapons and village",
	}
}

// CastleHandler plans and spawns a castle.
func CastleHandler(sender CommandSender) mcp.ToolHandlerFor[CastleInput, CastleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CastleInput) (*mcp.CallToolResult, CastleResult, error) {
		plan := procgen.Castle(procgen.CastleParams{
			Size:                input.CastleSize,
			Location:            vec3(input.Location),
			NamePrefix:          input.NamePrefix,
			IncludeSiegeWeapons: input.IncludeSiegeWeapons,
			IncludeVillage:      input.IncludeVillage,
			ArchitecturalStyle:  input.ArchitecturalStyle,
		})
		report, err := spawnSpecs(ctx, sender, plan.Specs)
		if err != nil {
			return nil, CastleResult{SpawnReport: report}, fmt.Errorf("create castle: %w", err)
		}
		return nil, CastleResult{
			SpawnReport:  report,
			WallSections: plan.WallSections,
			Towers:       plan.Towers,
		}, nil
	}
}

// BuildingInput represents the MCP tool input for the building generator.
type BuildingInput struct {
	Footprint      string    `json:"footprint,omitempty" jsonschema:"rectangle, L_shape, U_shape, T_shape, cross, or circle (default rectangle)"`
	Floors         int       `json:"floors,omitempty" jsonschema:"floor count, clamped to 1-50 (default 6)"`
	Style          string    `json:"style,omitempty" jsonschema:"modern, cottage, gothic, art_deco, brutalist, glass, or industrial (default modern)"`
	FacadePattern  string    `json:"facade_pattern,omitempty" jsonschema:"window arrangement pattern (default grid)"`
	RoofType       string    `json:"roof_type,omitempty" jsonschema:"flat, gable, cone, or dome (default flat)"`
	Width          float64   `json:"width,omitempty" jsonschema:"building width in units (default 1600)"`
	Depth          float64   `json:"depth,omitempty" jsonschema:"building depth in units (default 1200)"`
	FloorHeight    float64   `json:"floor_height,omitempty" jsonschema:"height per floor in units (default 350)"`
	Location       []float64 `json:"location,omitempty" jsonschema:"building center [x,y,z]"`
	NamePrefix     string    `json:"name_prefix,omitempty" jsonschema:"actor name prefix (default Building)"`
	IncludeDetails *bool     `json:"include_details,omitempty" jsonschema:"add windows, doors, decorations (default true)"`
	EntranceSide   string    `json:"entrance_side,omitempty" jsonschema:"front, back, left, right, or corner (default front)"`
	BalconyChance  float64   `json:"balcony_chance,omitempty" jsonschema:"balcony probability for residential styles (default 0.3)"`
	ColorScheme    string    `json:"color_scheme,omitempty" jsonschema:"auto, brick, concrete, stone, wood, glass, metal, or stucco (default auto)"`
	Seed           int64     `json:"seed,omitempty" jsonschema:"random seed for deterministic generation, 0 for random variation"`
}

// BuildingResult reports spawn counts and the resolved building plan.
type BuildingResult struct {
	SpawnReport
	Style       string  `json:"style" jsonschema:"applied style"`
	Footprint   string  `json:"footprint" jsonschema:"applied footprint"`
	Floors      int     `json:"floors" jsonschema:"floor count after clamping"`
	TotalHeight float64 `json:"total_height" jsonschema:"building height in units"`
	ColorScheme string  `json:"color_scheme" jsonschema:"resolved material color scheme"`
	SeedUsed    int64   `json:"seed_used" jsonschema:"seed applied, 0 when variation was random"`
}

// BuildingTool defines the MCP tool schema for the building generator.
func BuildingTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_building",
		Description: "Builds a customizable multi-floor building with facade details, roof, and material colors",
	}
}

// BuildingHandler plans and spawns a building, applying each spec's color
// after its spawn.
func BuildingHandler(sender CommandSender) mcp.ToolHandlerFor[BuildingInput, BuildingResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BuildingInput) (*mcp.CallToolResult, BuildingResult, error) {
		plan := procgen.Building(procgen.BuildingParams{
			Footprint:      input.Footprint,
			Floors:         input.Floors,
			Style:          input.Style,
			FacadePattern:  input.FacadePattern,
			RoofType:       input.RoofType,
			Width:          input.Width,
			Depth:          input.Depth,
			FloorHeight:    input.FloorHeight,
			Location:       vec3(input.Location),
			NamePrefix:     input.NamePrefix,
			IncludeDetails: input.IncludeDetails,
			EntranceSide:   input.EntranceSide,
			BalconyChance:  input.BalconyChance,
			ColorScheme:    input.ColorScheme,
			Seed:           input.Seed,
		})
		report, err := spawnSpecs(ctx, sender, plan.Specs)
		if err != nil {
			return nil, BuildingResult{SpawnReport: report}, fmt.Errorf("generate building: %w", err)
		}
		return nil, BuildingResult{
			SpawnReport: report,
			Style:       plan.Style,
			Footprint:   plan.Footprint,
			Floors:      plan.Floors,
			TotalHeight: plan.TotalHeight,
			ColorScheme: plan.ColorScheme,
			SeedUsed:    plan.Seed,
		}, nil
	}
}
