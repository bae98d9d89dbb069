package service

import (
	"github.com/flopperam/unrealmcp/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerActorTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.ActorsInLevelTool(), domain.ActorsInLevelHandler(sender))
	mcp.AddTool(mcpServer, domain.FindActorsTool(), domain.FindActorsHandler(sender))
	mcp.AddTool(mcpServer, domain.SpawnActorTool(), domain.SpawnActorHandler(sender))
	mcp.AddTool(mcpServer, domain.DeleteActorTool(), domain.DeleteActorHandler(sender))
	mcp.AddTool(mcpServer, domain.SetActorTransformTool(), domain.SetActorTransformHandler(sender))
}

func registerBlueprintTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.CreateBlueprintTool(), domain.CreateBlueprintHandler(sender))
	mcp.AddTool(mcpServer, domain.AddComponentTool(), domain.AddComponentHandler(sender))
	mcp.AddTool(mcpServer, domain.SetStaticMeshTool(), domain.SetStaticMeshHandler(sender))
	mcp.AddTool(mcpServer, domain.SetPhysicsTool(), domain.SetPhysicsHandler(sender))
	mcp.AddTool(mcpServer, domain.CompileBlueprintTool(), domain.CompileBlueprintHandler(sender))
	mcp.AddTool(mcpServer, domain.SpawnBlueprintActorTool(), domain.SpawnBlueprintActorHandler(sender))
	mcp.AddTool(mcpServer, domain.PhysicsActorTool(), domain.PhysicsActorHandler(sender))
}

func registerMaterialTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.MeshColorTool(), domain.MeshColorHandler(sender))
	mcp.AddTool(mcpServer, domain.ActorColorTool(), domain.ActorColorHandler(sender))
}

func registerGraphTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.VariableTool(), domain.VariableHandler(sender))
	mcp.AddTool(mcpServer, domain.EventNodeTool(), domain.EventNodeHandler(sender))
	mcp.AddTool(mcpServer, domain.FunctionNodeTool(), domain.FunctionNodeHandler(sender))
	mcp.AddTool(mcpServer, domain.BranchNodeTool(), domain.BranchNodeHandler(sender))
	mcp.AddTool(mcpServer, domain.ConnectNodesTool(), domain.ConnectNodesHandler(sender))
	mcp.AddTool(mcpServer, domain.CustomEventTool(), domain.CustomEventHandler(sender))
	mcp.AddTool(mcpServer, domain.DescribeBlueprintTool(), domain.DescribeBlueprintHandler(sender))
	mcp.AddTool(mcpServer, domain.InteractiveBlueprintTool(), domain.InteractiveBlueprintHandler(sender))
	mcp.AddTool(mcpServer, domain.PromptBlueprintTool(), domain.PromptBlueprintHandler(sender))
}

func registerStructureTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.PyramidTool(), domain.PyramidHandler(sender))
	mcp.AddTool(mcpServer, domain.WallTool(), domain.WallHandler(sender))
	mcp.AddTool(mcpServer, domain.TowerTool(), domain.TowerHandler(sender))
	mcp.AddTool(mcpServer, domain.StaircaseTool(), domain.StaircaseHandler(sender))
	mcp.AddTool(mcpServer, domain.ArchTool(), domain.ArchHandler(sender))
	mcp.AddTool(mcpServer, domain.ObstacleCourseTool(), domain.ObstacleCourseHandler(sender))
	mcp.AddTool(mcpServer, domain.HouseTool(), domain.HouseHandler(sender))
	mcp.AddTool(mcpServer, domain.MazeTool(), domain.MazeHandler(sender))
}

func registerTownTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.TownTool(), domain.TownHandler(sender))
}

func registerCastleTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.CastleTool(), domain.CastleHandler(sender))
}

func registerBuildingTools(mcpServer *mcp.Server, sender domain.CommandSender) {
	mcp.AddTool(mcpServer, domain.BuildingTool(), domain.BuildingHandler(sender))
}
