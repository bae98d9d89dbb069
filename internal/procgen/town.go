package procgen

import (
	"fmt"
	"math/rand"
)

// Town size presets.
const (
	TownSmall      = "small"
	TownMedium     = "medium"
	TownLarge      = "large"
	TownMetropolis = "metropolis"
)

type townPreset struct {
	blocks           int
	blockSize        float64
	maxHeight        int
	population       int
	skyscraperChance float64
}

var townPresets = map[string]townPreset{
	TownSmall:      {blocks: 3, blockSize: 1500, maxHeight: 5, population: 20, skyscraperChance: 0.1},
	TownMedium:     {blocks: 5, blockSize: 2000, maxHeight: 10, population: 50, skyscraperChance: 0.3},
	TownLarge:      {blocks: 7, blockSize: 2500, maxHeight: 20, population: 100, skyscraperChance: 0.5},
	TownMetropolis: {blocks: 10, blockSize: 3000, maxHeight: 40, population: 200, skyscraperChance: 0.7},
}

// TownParams configures a full town with buildings and infrastructure.
type TownParams struct {
	Size                  string
	BuildingDensity       float64
	Location              Vec3
	NamePrefix            string
	IncludeInfrastructure bool
	ArchitecturalStyle    string
	// Rand drives block skipping and building selection. Nil means a
	// randomly seeded source.
	Rand *rand.Rand
}

func (p TownParams) withDefaults() TownParams {
	if _, ok := townPresets[p.Size]; !ok {
		p.Size = TownMedium
	}
	if p.BuildingDensity <= 0 || p.BuildingDensity > 1 {
		p.BuildingDensity = 0.7
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "Town"
	}
	if p.ArchitecturalStyle == "" {
		p.ArchitecturalStyle = "mixed"
	}
	return p
}

// TownPlan is a planned town with its summary stats.
type TownPlan struct {
	Specs               []SpawnSpec
	Buildings           int
	InfrastructureItems int
	Blocks              int
}

// Town plans a street grid, per-block buildings selected by architectural
// style, and optional infrastructure passes.
func Town(p TownParams) TownPlan {
	p = p.withDefaults()
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	preset := townPresets[p.Size]
	blocks := preset.blocks
	blockSize := preset.blockSize
	targetPopulation := int(float64(preset.population) * p.BuildingDensity)
	streetWidth := blockSize * 0.3
	buildingArea := blockSize * 0.7

	var specs []SpawnSpec
	specs = append(specs, streetGrid(blocks, blockSize, streetWidth, p.Location, p.NamePrefix)...)

	buildingCount := 0
	for blockX := 0; blockX < blocks && buildingCount < targetPopulation; blockX++ {
		for blockY := 0; blockY < blocks && buildingCount < targetPopulation; blockY++ {
			if rng.Float64() > p.BuildingDensity {
				continue
			}

			centerX := p.Location[0] + (float64(blockX)-float64(blocks)/2)*blockSize
			centerY := p.Location[1] + (float64(blockY)-float64(blocks)/2)*blockSize

			types := townBuildingTypes(rng, p.ArchitecturalStyle, blockX, blockY, blocks, preset.skyscraperChance)
			buildingType := types[rng.Intn(len(types))]

			prefix := fmt.Sprintf("%s_Building_%d_%d", p.NamePrefix, blockX, blockY)
			built := townBuilding(rng, buildingType,
				Vec3{centerX, centerY, p.Location[2]},
				buildingArea, preset.maxHeight, prefix, buildingCount)
			specs = append(specs, built...)
			buildingCount++
		}
	}

	infrastructureCount := 0
	if p.IncludeInfrastructure {
		passes := [][]SpawnSpec{
			streetLights(rng, blocks, blockSize, p.Location, p.NamePrefix),
			townVehicles(rng, blocks, blockSize, p.Location, p.NamePrefix, targetPopulation/3),
			townDecorations(rng, blocks, blockSize, p.Location, p.NamePrefix),
			trafficLights(blocks, blockSize, p.Location, p.NamePrefix),
			streetSignage(rng, blocks, blockSize, p.Location, p.NamePrefix, p.Size),
			sidewalksCrosswalks(blocks, blockSize, streetWidth, p.Location, p.NamePrefix),
			urbanFurniture(rng, blocks, blockSize, p.Location, p.NamePrefix),
			streetUtilities(rng, blocks, blockSize, p.Location, p.NamePrefix),
		}
		if p.Size == TownLarge || p.Size == TownMetropolis {
			passes = append(passes, centralPlaza(blockSize, p.Location, p.NamePrefix))
		}
		for _, pass := range passes {
			specs = append(specs, pass...)
			infrastructureCount += len(pass)
		}
	}

	return TownPlan{
		Specs:               specs,
		Buildings:           buildingCount,
		InfrastructureItems: infrastructureCount,
		Blocks:              blocks,
	}
}

func townBuildingTypes(rng *rand.Rand, style string, blockX, blockY, blocks int, skyscraperChance float64) []string {
	switch style {
	case "downtown", "futuristic":
		return []string{"skyscraper", "office_tower", "apartment_complex", "shopping_mall", "parking_garage", "hotel"}
	case "mixed":
		isCentral := abs(blockX-blocks/2) <= 1 && abs(blockY-blocks/2) <= 1
		if isCentral && rng.Float64() < skyscraperChance {
			return []string{"skyscraper", "office_tower", "apartment_complex", "hotel", "shopping_mall"}
		}
		return []string{"house", "tower", "mansion", "commercial", "apartment_building", "restaurant", "store"}
	default:
		return []string{style, style, style, "commercial", "restaurant", "store"}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
