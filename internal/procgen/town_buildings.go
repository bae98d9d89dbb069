package procgen

import (
	"fmt"
	"math/rand"
)

func randBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// randIntIn returns a random int in [min, max].
func randIntIn(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// townBuilding plans one building of the given type, jittered within its
// block.
func townBuilding(rng *rand.Rand, buildingType string, loc Vec3, maxSize float64, maxHeight int, namePrefix string, buildingID int) []SpawnSpec {
	offsetX := randBetween(rng, -maxSize/4, maxSize/4)
	offsetY := randBetween(rng, -maxSize/4, maxSize/4)
	buildingLoc := Vec3{loc[0] + offsetX, loc[1] + offsetY, loc[2]}

	switch buildingType {
	case "house":
		styles := []string{HouseModern, HouseCottage}
		return House(HouseParams{
			Width:      float64(randIntIn(rng, 800, 1200)),
			Depth:      float64(randIntIn(rng, 600, 1000)),
			Height:     float64(randIntIn(rng, 300, 500)),
			Location:   buildingLoc,
			NamePrefix: fmt.Sprintf("%s_%d", namePrefix, buildingID),
			Style:      styles[rng.Intn(len(styles))],
		}).Specs
	case "mansion":
		return House(HouseParams{
			Width:      float64(randIntIn(rng, 1500, 2000)),
			Depth:      float64(randIntIn(rng, 1200, 1600)),
			Height:     float64(randIntIn(rng, 500, 700)),
			Location:   buildingLoc,
			NamePrefix: fmt.Sprintf("%s_Mansion_%d", namePrefix, buildingID),
			Style:      HouseMansion,
		}).Specs
	case "tower":
		styles := []string{TowerCylindrical, TowerSquare, TowerTapered}
		return Tower(TowerParams{
			Height:     randIntIn(rng, maxHeight/2, maxHeight),
			BaseSize:   randIntIn(rng, 3, 6),
			Location:   buildingLoc,
			NamePrefix: fmt.Sprintf("%s_Tower_%d", namePrefix, buildingID),
			Style:      styles[rng.Intn(len(styles))],
		})
	case "skyscraper":
		minH := maxHeight / 2
		if minH < 20 {
			minH = 20
		}
		return skyscraper(rng,
			randIntIn(rng, minH, maxHeight),
			float64(randIntIn(rng, 600, 1000)),
			float64(randIntIn(rng, 600, 1000)),
			buildingLoc,
			fmt.Sprintf("%s_Skyscraper_%d", namePrefix, buildingID))
	case "office_tower":
		maxFloors := maxHeight / 2
		if maxFloors < 15 {
			maxFloors = 15
		}
		return officeTower(
			randIntIn(rng, 10, maxFloors),
			float64(randIntIn(rng, 800, 1200)),
			float64(randIntIn(rng, 800, 1200)),
			buildingLoc,
			fmt.Sprintf("%s_Office_%d", namePrefix, buildingID))
	case "apartment_complex":
		maxFloors := maxHeight / 3
		if maxFloors < 10 {
			maxFloors = 10
		}
		return apartmentComplex(
			randIntIn(rng, 5, maxFloors),
			randIntIn(rng, 4, 8),
			buildingLoc,
			fmt.Sprintf("%s_Apartments_%d", namePrefix, buildingID))
	case "shopping_mall":
		return shoppingMall(
			float64(randIntIn(rng, 1500, 2500)),
			float64(randIntIn(rng, 1500, 2500)),
			randIntIn(rng, 2, 4),
			buildingLoc,
			fmt.Sprintf("%s_Mall_%d", namePrefix, buildingID))
	case "parking_garage":
		return parkingGarage(
			randIntIn(rng, 3, 6),
			float64(randIntIn(rng, 1000, 1500)),
			float64(randIntIn(rng, 800, 1200)),
			buildingLoc,
			fmt.Sprintf("%s_Parking_%d", namePrefix, buildingID))
	case "hotel":
		maxFloors := maxHeight / 2
		if maxFloors < 20 {
			maxFloors = 20
		}
		return hotel(
			randIntIn(rng, 10, maxFloors),
			float64(randIntIn(rng, 1000, 1500)),
			float64(randIntIn(rng, 800, 1200)),
			buildingLoc,
			fmt.Sprintf("%s_Hotel_%d", namePrefix, buildingID))
	case "restaurant":
		return flatShop(
			float64(randIntIn(rng, 600, 1000)),
			float64(randIntIn(rng, 500, 800)),
			buildingLoc,
			fmt.Sprintf("%s_Restaurant_%d", namePrefix, buildingID))
	case "store":
		return flatShop(
			float64(randIntIn(rng, 500, 800)),
			float64(randIntIn(rng, 400, 600)),
			buildingLoc,
			fmt.Sprintf("%s_Store_%d", namePrefix, buildingID))
	case "apartment_building":
		return apartmentBuilding(
			randIntIn(rng, 3, 5),
			float64(randIntIn(rng, 800, 1200)),
			float64(randIntIn(rng, 600, 1000)),
			buildingLoc,
			fmt.Sprintf("%s_AptBuilding_%d", namePrefix, buildingID))
	default:
		return House(HouseParams{
			Width:      float64(randIntIn(rng, 1000, 1500)),
			Depth:      float64(randIntIn(rng, 800, 1200)),
			Height:     float64(randIntIn(rng, 400, 600)),
			Location:   buildingLoc,
			NamePrefix: fmt.Sprintf("%s_Commercial_%d", namePrefix, buildingID),
			Style:      HouseModern,
		}).Specs
	}
}

// skyscraper plans a tapering sectioned high-rise with balconies between
// sections, a spire and rooftop equipment.
func skyscraper(rng *rand.Rand, height int, baseWidth, baseDepth float64, loc Vec3, prefix string) []SpawnSpec {
	const (
		floorHeight    = 150.0
		floorThickness = 30.0
	)
	var specs []SpawnSpec

	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(baseWidth + 200) / 100, (baseDepth + 200) / 100, floorThickness / 100}))

	sections := height / 5
	if sections > 5 {
		sections = 5
	}
	if sections < 1 {
		sections = 1
	}
	currentHeight := loc[2] + floorThickness
	var currentWidth, currentDepth float64
	for section := 0; section < sections; section++ {
		sectionFloors := height / sections
		if section == sections-1 {
			sectionFloors += height % sections
		}
		taper := 1 - float64(section)*0.1
		if taper < 0.6 {
			taper = 0.6
		}
		currentWidth = baseWidth * taper
		currentDepth = baseDepth * taper
		sectionHeight := float64(sectionFloors) * floorHeight

		specs = append(specs, block(fmt.Sprintf("%s_Section_%d", prefix, section), MeshCube,
			Vec3{loc[0], loc[1], currentHeight + sectionHeight/2},
			Vec3{currentWidth / 100, currentDepth / 100, sectionHeight / 100}))
		if section < sections-1 {
			specs = append(specs, block(fmt.Sprintf("%s_Balcony_%d", prefix, section), MeshCube,
				Vec3{loc[0], loc[1], currentHeight + sectionHeight - 25},
				Vec3{(currentWidth + 100) / 100, (currentDepth + 100) / 100, 0.5}))
		}
		currentHeight += sectionHeight
	}

	specs = append(specs, block(prefix+"_Spire", MeshCylinder,
		Vec3{loc[0], loc[1], currentHeight + 300},
		Vec3{0.2, 0.2, 6}))

	for i := 0; i < 3; i++ {
		x := loc[0] + randBetween(rng, -currentWidth/4, currentWidth/4)
		y := loc[1] + randBetween(rng, -currentDepth/4, currentDepth/4)
		specs = append(specs, block(fmt.Sprintf("%s_RoofEquipment_%d", prefix, i), MeshCube,
			Vec3{x, y, currentHeight + 50}, uniform(1)))
	}
	return specs
}

func officeTower(floors int, width, depth float64, loc Vec3, prefix string) []SpawnSpec {
	const (
		floorHeight    = 140.0
		floorThickness = 30.0
	)
	lobbyHeight := floorHeight * 1.5
	towerHeight := float64(floors-1) * floorHeight

	var specs []SpawnSpec
	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(width + 100) / 100, (depth + 100) / 100, floorThickness / 100}))
	specs = append(specs, block(prefix+"_Lobby", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + lobbyHeight/2},
		Vec3{width / 100, depth / 100, lobbyHeight / 100}))
	specs = append(specs, block(prefix+"_Tower", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + lobbyHeight + towerHeight/2},
		Vec3{width / 100, depth / 100, towerHeight / 100}))

	for floor := 2; floor < floors; floor += 3 {
		bandZ := loc[2] + lobbyHeight + float64(floor-1)*floorHeight
		specs = append(specs, block(fmt.Sprintf("%s_WindowBand_%d", prefix, floor), MeshCube,
			Vec3{loc[0], loc[1], bandZ},
			Vec3{(width + 20) / 100, (depth + 20) / 100, 0.2}))
	}

	specs = append(specs, block(prefix+"_Rooftop", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + lobbyHeight + towerHeight + 30},
		Vec3{(width - 100) / 100, (depth - 100) / 100, 0.6}))
	return specs
}

func apartmentComplex(floors, unitsPerFloor int, loc Vec3, prefix string) []SpawnSpec {
	const (
		floorHeight    = 120.0
		floorThickness = 30.0
		depth          = 800.0
	)
	width := float64(200 * unitsPerFloor / 2)
	buildingHeight := float64(floors) * floorHeight

	var specs []SpawnSpec
	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(width + 100) / 100, (depth + 100) / 100, floorThickness / 100}))
	specs = append(specs, block(prefix+"_Building", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + buildingHeight/2},
		Vec3{width / 100, depth / 100, buildingHeight / 100}))

	for floor := 1; floor < floors; floor++ {
		balconyZ := loc[2] + float64(floor)*floorHeight - 20
		specs = append(specs, block(fmt.Sprintf("%s_FrontBalcony_%d", prefix, floor), MeshCube,
			Vec3{loc[0], loc[1] - depth/2 - 50, balconyZ},
			Vec3{width / 100, 1, 0.2}))
		specs = append(specs, block(fmt.Sprintf("%s_BackBalcony_%d", prefix, floor), MeshCube,
			Vec3{loc[0], loc[1] + depth/2 + 50, balconyZ},
			Vec3{width / 100, 1, 0.2}))
	}

	specs = append(specs, block(prefix+"_Rooftop", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + buildingHeight + 15},
		Vec3{(width + 50) / 100, (depth + 50) / 100, 0.3}))
	return specs
}

func shoppingMall(width, depth float64, floors int, loc Vec3, prefix string) []SpawnSpec {
	const (
		floorHeight    = 200.0
		floorThickness = 30.0
	)
	mallHeight := float64(floors) * floorHeight

	var specs []SpawnSpec
	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(width + 200) / 100, (depth + 200) / 100, floorThickness / 100}))
	specs = append(specs, block(prefix+"_Main", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + mallHeight/2},
		Vec3{width / 100, depth / 100, mallHeight / 100}))
	specs = append(specs, block(prefix+"_Canopy", MeshCube,
		Vec3{loc[0], loc[1] - depth/2 - 50, loc[2] + 50},
		Vec3{width / 100 * 0.6, 1, 0.3}))
	return specs
}

func parkingGarage(levels int, width, depth float64, loc Vec3, prefix string) []SpawnSpec {
	const (
		levelHeight    = 150.0
		floorThickness = 30.0
		roofThickness  = 30.0
		pillarRadius   = 0.4
	)
	var specs []SpawnSpec
	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(width + 100) / 100, (depth + 100) / 100, floorThickness / 100}))

	for level := 0; level < levels; level++ {
		specs = append(specs, block(fmt.Sprintf("%s_Level_%d", prefix, level), MeshCube,
			Vec3{loc[0], loc[1], loc[2] + floorThickness + levelHeight*float64(level)},
			Vec3{width / 100, depth / 100, floorThickness / 100}))
	}

	pillarHeight := float64(levels) * levelHeight
	corners := [4][2]float64{
		{-width/2 + 60, -depth/2 + 60},
		{width/2 - 60, -depth/2 + 60},
		{-width/2 + 60, depth/2 - 60},
		{width/2 - 60, depth/2 - 60},
	}
	for i, c := range corners {
		specs = append(specs, block(fmt.Sprintf("%s_Pillar_Corner_%d", prefix, i), MeshCylinder,
			Vec3{loc[0] + c[0], loc[1] + c[1], loc[2] + pillarHeight/2},
			Vec3{pillarRadius, pillarRadius, pillarHeight / 100}))
	}

	colsX := int(width/400) - 1
	if colsX < 1 {
		colsX = 1
	}
	colsY := int(depth/400) - 1
	if colsY < 1 {
		colsY = 1
	}
	for ix := 0; ix < colsX; ix++ {
		for iy := 0; iy < colsY; iy++ {
			x := -width/2 + float64(ix+1)*(width/float64(colsX+1))
			y := -depth/2 + float64(iy+1)*(depth/float64(colsY+1))
			specs = append(specs, block(fmt.Sprintf("%s_Pillar_%d_%d", prefix, ix, iy), MeshCylinder,
				Vec3{loc[0] + x, loc[1] + y, loc[2] + pillarHeight/2},
				Vec3{pillarRadius * 0.8, pillarRadius * 0.8, pillarHeight / 100}))
		}
	}

	specs = append(specs, block(prefix+"_Roof", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + float64(levels)*levelHeight + roofThickness/2},
		Vec3{(width + 50) / 100, (depth + 50) / 100, roofThickness / 100}))
	specs = append(specs, block(prefix+"_Ramp", MeshCube,
		Vec3{loc[0] + width/3, loc[1] - depth/2 - 50, loc[2] + levelHeight/2},
		Vec3{1.5, 4, 0.2}))
	return specs
}

func hotel(floors int, width, depth float64, loc Vec3, prefix string) []SpawnSpec {
	const (
		floorHeight    = 150.0
		lobbyHeight    = 220.0
		floorThickness = 30.0
	)
	towerHeight := float64(floors-1) * floorHeight

	var specs []SpawnSpec
	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(width + 100) / 100, (depth + 100) / 100, floorThickness / 100}))
	specs = append(specs, block(prefix+"_Lobby", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + lobbyHeight/2},
		Vec3{width / 100, depth / 100, lobbyHeight / 100}))
	specs = append(specs, block(prefix+"_Tower", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + lobbyHeight + towerHeight/2},
		Vec3{width / 100, depth / 100, towerHeight / 100}))
	specs = append(specs, block(prefix+"_EntranceCanopy", MeshCube,
		Vec3{loc[0], loc[1] - depth/2 - 50, loc[2] + 40},
		Vec3{width / 100 * 0.5, 1, 0.2}))
	return specs
}

func flatShop(width, depth float64, loc Vec3, prefix string) []SpawnSpec {
	return []SpawnSpec{block(prefix+"_Main", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + 100},
		Vec3{width / 100, depth / 100, 2})}
}

func apartmentBuilding(floors int, width, depth float64, loc Vec3, prefix string) []SpawnSpec {
	const (
		floorHeight    = 130.0
		floorThickness = 30.0
	)
	buildingHeight := float64(floors) * floorHeight

	var specs []SpawnSpec
	specs = append(specs, block(prefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{(width + 80) / 100, (depth + 80) / 100, floorThickness / 100}))
	specs = append(specs, block(prefix+"_Building", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + floorThickness + buildingHeight/2},
		Vec3{width / 100, depth / 100, buildingHeight / 100}))
	specs = append(specs, block(prefix+"_Rooftop", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + buildingHeight + 10},
		Vec3{(width + 40) / 100, (depth + 40) / 100, 0.2}))
	return specs
}
