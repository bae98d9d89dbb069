package procgen

import (
	"fmt"
	"math"
	"math/rand"
)

func streetGrid(blocks int, blockSize, streetWidth float64, loc Vec3, prefix string) []SpawnSpec {
	var specs []SpawnSpec
	fb := float64(blocks)

	for i := 0; i <= blocks; i++ {
		streetY := loc[1] + (float64(i)-fb/2)*blockSize
		for j := 0; j < blocks; j++ {
			streetX := loc[0] + (float64(j)-fb/2+0.5)*blockSize
			specs = append(specs, block(fmt.Sprintf("%s_Street_H_%d_%d", prefix, i, j), MeshCube,
				Vec3{streetX, streetY, loc[2] - 5},
				Vec3{blockSize / 100 * 0.7, streetWidth / 100, 0.1}))
		}
	}
	for i := 0; i <= blocks; i++ {
		streetX := loc[0] + (float64(i)-fb/2)*blockSize
		for j := 0; j < blocks; j++ {
			streetY := loc[1] + (float64(j)-fb/2+0.5)*blockSize
			specs = append(specs, block(fmt.Sprintf("%s_Street_V_%d_%d", prefix, i, j), MeshCube,
				Vec3{streetX, streetY, loc[2] - 5},
				Vec3{streetWidth / 100, blockSize / 100 * 0.7, 0.1}))
		}
	}
	return specs
}

func streetLights(rng *rand.Rand, blocks int, blockSize float64, loc Vec3, prefix string) []SpawnSpec {
	var specs []SpawnSpec
	fb := float64(blocks)
	for i := 0; i <= blocks; i++ {
		for j := 0; j <= blocks; j++ {
			if rng.Float64() > 0.7 {
				continue
			}
			x := loc[0] + (float64(i)-fb/2)*blockSize
			y := loc[1] + (float64(j)-fb/2)*blockSize
			specs = append(specs, block(fmt.Sprintf("%s_LightPole_%d_%d", prefix, i, j), MeshCube,
				Vec3{x, y, loc[2] + 200}, Vec3{0.2, 0.2, 4}))
			specs = append(specs, block(fmt.Sprintf("%s_Light_%d_%d", prefix, i, j), MeshCube,
				Vec3{x, y, loc[2] + 380}, uniform(0.3)))
		}
	}
	return specs
}

func trafficLights(blocks int, blockSize float64, loc Vec3, prefix string) []SpawnSpec {
	var specs []SpawnSpec
	fb := float64(blocks)
	for i := 1; i < blocks; i += 2 {
		for j := 1; j < blocks; j += 2 {
			intersectionX := loc[0] + (float64(i)-fb/2)*blockSize
			intersectionY := loc[1] + (float64(j)-fb/2)*blockSize
			for corner := 0; corner < 4; corner++ {
				angle := float64(corner) * math.Pi / 2
				poleX := intersectionX + 150*math.Cos(angle)
				poleY := intersectionY + 150*math.Sin(angle)
				specs = append(specs, block(fmt.Sprintf("%s_TrafficPole_%d_%d_%d", prefix, i, j, corner), MeshCylinder,
					Vec3{poleX, poleY, loc[2] + 150}, Vec3{0.15, 0.15, 3}))
				specs = append(specs, block(fmt.Sprintf("%s_TrafficLight_%d_%d_%d", prefix, i, j, corner), MeshCube,
					Vec3{poleX, poleY, loc[2] + 280}, Vec3{0.3, 0.2, 0.8}))
			}
		}
	}
	return specs
}

func streetSignage(rng *rand.Rand, blocks int, blockSize float64, loc Vec3, prefix, townSize string) []SpawnSpec {
	var specs []SpawnSpec
	fb := float64(blocks)
	for i := 0; i <= blocks; i += 2 {
		for j := 0; j <= blocks; j += 2 {
			if rng.Float64() > 0.5 {
				continue
			}
			signX := loc[0] + (float64(i)-fb/2)*blockSize + 100
			signY := loc[1] + (float64(j)-fb/2)*blockSize + 100
			specs = append(specs, block(fmt.Sprintf("%s_SignPole_%d_%d", prefix, i, j), MeshCylinder,
				Vec3{signX, signY, loc[2] + 100}, Vec3{0.1, 0.1, 2}))
			specs = append(specs, block(fmt.Sprintf("%s_StreetSign_%d_%d", prefix, i, j), MeshCube,
				Vec3{signX, signY, loc[2] + 180}, Vec3{1.5, 0.05, 0.3}))
		}
	}

	if townSize == TownLarge || townSize == TownMetropolis {
		spread := fb * blockSize / 3
		numBillboards := randIntIn(rng, 3, 8)
		for b := 0; b < numBillboards; b++ {
			x := loc[0] + randBetween(rng, -spread, spread)
			y := loc[1] + randBetween(rng, -spread, spread)
			specs = append(specs, block(fmt.Sprintf("%s_Billboard_%d", prefix, b), MeshCube,
				Vec3{x, y, loc[2] + 400}, Vec3{3, 0.1, 2}))
			specs = append(specs, block(fmt.Sprintf("%s_BillboardSupport_%d_L", prefix, b), MeshCylinder,
				Vec3{x - 100, y, loc[2] + 200}, Vec3{0.2, 0.2, 4}))
			specs = append(specs, block(fmt.Sprintf("%s_BillboardSupport_%d_R", prefix, b), MeshCylinder,
				Vec3{x + 100, y, loc[2] + 200}, Vec3{0.2, 0.2, 4}))
		}
	}
	return specs
}

func townVehicles(rng *rand.Rand, blocks int, blockSize float64, loc Vec3, prefix string, count int) []SpawnSpec {
	var specs []SpawnSpec
	spread := float64(blocks) * blockSize / 2
	for i := 0; i < count; i++ {
		x := loc[0] + randBetween(rng, -spread, spread)
		y := loc[1] + randBetween(rng, -spread, spread)
		specs = append(specs, block(fmt.Sprintf("%s_Car_%d", prefix, i), MeshCube,
			Vec3{x, y, loc[2] + 50}, Vec3{4, 2, 1.5}))
	}
	return specs
}

func townDecorations(rng *rand.Rand, blocks int, blockSize float64, loc Vec3, prefix string) []SpawnSpec {
	var specs []SpawnSpec
	numParks := blocks / 3
	if numParks < 1 {
		numParks = 1
	}
	spread := float64(blocks) * blockSize / 3
	for parkID := 0; parkID < numParks; parkID++ {
		parkX := loc[0] + randBetween(rng, -spread, spread)
		parkY := loc[1] + randBetween(rng, -spread, spread)
		trees := randIntIn(rng, 3, 8)
		for treeID := 0; treeID < trees; treeID++ {
			treeX := parkX + randBetween(rng, -200, 200)
			treeY := parkY + randBetween(rng, -200, 200)
			specs = append(specs, block(fmt.Sprintf("%s_TreeTrunk_%d_%d", prefix, parkID, treeID), MeshCube,
				Vec3{treeX, treeY, loc[2] + 150}, Vec3{0.5, 0.5, 3}))
			specs = append(specs, block(fmt.Sprintf("%s_TreeLeaves_%d_%d", prefix, parkID, treeID), MeshCube,
				Vec3{treeX, treeY, loc[2] + 350}, uniform(2)))
		}
	}
	return specs
}

func sidewalksCrosswalks(blocks int, blockSize, streetWidth float64, loc Vec3, prefix string) []SpawnSpec {
	const sidewalkWidth = 150.0
	var specs []SpawnSpec
	fb := float64(blocks)

	for i := 0; i < blocks; i++ {
		for j := 0; j <= blocks; j++ {
			y := loc[1] + (float64(j)-fb/2)*blockSize
			x := loc[0] + (float64(i)-fb/2+0.5)*blockSize
			specs = append(specs, block(fmt.Sprintf("%s_SidewalkH_North_%d_%d", prefix, i, j), MeshCube,
				Vec3{x, y - streetWidth/2 + sidewalkWidth/2, loc[2]},
				Vec3{blockSize / 100 * 0.7, sidewalkWidth / 100, 0.05}))
			specs = append(specs, block(fmt.Sprintf("%s_SidewalkH_South_%d_%d", prefix, i, j), MeshCube,
				Vec3{x, y + streetWidth/2 - sidewalkWidth/2, loc[2]},
				Vec3{blockSize / 100 * 0.7, sidewalkWidth / 100, 0.05}))
		}
	}
	for i := 0; i <= blocks; i++ {
		for j := 0; j < blocks; j++ {
			x := loc[0] + (float64(i)-fb/2)*blockSize
			y := loc[1] + (float64(j)-fb/2+0.5)*blockSize
			specs = append(specs, block(fmt.Sprintf("%s_SidewalkV_East_%d_%d", prefix, i, j), MeshCube,
				Vec3{x - streetWidth/2 + sidewalkWidth/2, y, loc[2]},
				Vec3{sidewalkWidth / 100, blockSize / 100 * 0.7, 0.05}))
			specs = append(specs, block(fmt.Sprintf("%s_SidewalkV_West_%d_%d", prefix, i, j), MeshCube,
				Vec3{x + streetWidth/2 - sidewalkWidth/2, y, loc[2]},
				Vec3{sidewalkWidth / 100, blockSize / 100 * 0.7, 0.05}))
		}
	}

	const crosswalkWidth = 200.0
	for i := 0; i <= blocks; i++ {
		for j := 0; j <= blocks; j++ {
			intersectionX := loc[0] + (float64(i)-fb/2)*blockSize
			intersectionY := loc[1] + (float64(j)-fb/2)*blockSize
			for stripe := 0; stripe < 5; stripe++ {
				offset := float64(stripe-2) * 40
				specs = append(specs, block(fmt.Sprintf("%s_CrosswalkNS_%d_%d_%d", prefix, i, j, stripe), MeshCube,
					Vec3{intersectionX + offset, intersectionY, loc[2] + 1},
					Vec3{0.3, crosswalkWidth / 100, 0.02}))
				specs = append(specs, block(fmt.Sprintf("%s_CrosswalkEW_%d_%d_%d", prefix, i, j, stripe), MeshCube,
					Vec3{intersectionX, intersectionY + offset, loc[2] + 1},
					Vec3{crosswalkWidth / 100, 0.3, 0.02}))
			}
		}
	}
	return specs
}

func streetUtilities(rng *rand.Rand, blocks int, blockSize float64, loc Vec3, prefix string) []SpawnSpec {
	var specs []SpawnSpec
	spread3 := float64(blocks) * blockSize / 3
	spread2 := float64(blocks) * blockSize / 2

	numMeters := blocks * 4
	for m := 0; m < numMeters; m++ {
		x := loc[0] + randBetween(rng, -spread3, spread3)
		y := loc[1] + randBetween(rng, -spread3, spread3)
		offset := 180.0
		if rng.Intn(2) == 0 {
			offset = -180
		}
		if rng.Float64() > 0.5 {
			x += offset
		} else {
			y += offset
		}
		specs = append(specs, block(fmt.Sprintf("%s_ParkingMeter_%d", prefix, m), MeshCylinder,
			Vec3{x, y, loc[2] + 50}, Vec3{0.15, 0.15, 1}))
		specs = append(specs, block(fmt.Sprintf("%s_MeterHead_%d", prefix, m), MeshCube,
			Vec3{x, y, loc[2] + 100}, Vec3{0.25, 0.15, 0.3}))
	}

	numHydrants := blocks + 2
	for h := 0; h < numHydrants; h++ {
		x := loc[0] + randBetween(rng, -spread2, spread2)
		y := loc[1] + randBetween(rng, -spread2, spread2)
		specs = append(specs, block(fmt.Sprintf("%s_Hydrant_%d", prefix, h), MeshCylinder,
			Vec3{x, y, loc[2] + 40}, Vec3{0.3, 0.3, 0.8}))
		specs = append(specs, block(fmt.Sprintf("%s_HydrantCap_%d", prefix, h), MeshCylinder,
			Vec3{x, y, loc[2] + 75}, Vec3{0.35, 0.35, 0.1}))
	}
	return specs
}

func urbanFurniture(rng *rand.Rand, blocks int, blockSize float64, loc Vec3, prefix string) []SpawnSpec {
	var specs []SpawnSpec
	spread := float64(blocks) * blockSize / 2
	numItems := blocks * blocks / 2
	for f := 0; f < numItems; f++ {
		x := loc[0] + randBetween(rng, -spread, spread)
		y := loc[1] + randBetween(rng, -spread, spread)
		offset := 200.0
		if rng.Intn(2) == 0 {
			offset = -200
		}
		if rng.Float64() > 0.5 {
			x += offset
		} else {
			y += offset
		}
		switch rng.Intn(3) {
		case 0: // bench
			specs = append(specs, block(fmt.Sprintf("%s_Bench_%d", prefix, f), MeshCube,
				Vec3{x, y, loc[2] + 30}, Vec3{1.5, 0.5, 0.6}))
			for _, supportOffset := range []float64{-50, 50} {
				specs = append(specs, block(fmt.Sprintf("%s_BenchSupport_%d_%d", prefix, f, int(supportOffset)), MeshCube,
					Vec3{x + supportOffset, y, loc[2] + 15}, Vec3{0.1, 0.5, 0.3}))
			}
		case 1: // trash can
			specs = append(specs, block(fmt.Sprintf("%s_TrashCan_%d", prefix, f), MeshCylinder,
				Vec3{x, y, loc[2] + 40}, Vec3{0.4, 0.4, 0.8}))
		default: // bus stop
			specs = append(specs, block(fmt.Sprintf("%s_BusStop_%d", prefix, f), MeshCube,
				Vec3{x, y, loc[2] + 120}, Vec3{2, 1, 0.1}))
			for _, postX := range []float64{-80, 80} {
				specs = append(specs, block(fmt.Sprintf("%s_BusStopPost_%d_%d", prefix, f, int(postX)), MeshCylinder,
					Vec3{x + postX, y, loc[2] + 60}, Vec3{0.1, 0.1, 1.2}))
			}
			specs = append(specs, block(fmt.Sprintf("%s_BusStopBench_%d", prefix, f), MeshCube,
				Vec3{x, y + 30, loc[2] + 25}, Vec3{1.8, 0.4, 0.5}))
		}
	}
	return specs
}

func centralPlaza(blockSize float64, loc Vec3, prefix string) []SpawnSpec {
	plazaSize := blockSize * 0.8
	var specs []SpawnSpec

	specs = append(specs, block(prefix+"_PlazaFloor", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + 2},
		Vec3{plazaSize / 100, plazaSize / 100, 0.05}))
	specs = append(specs, block(prefix+"_FountainBase", MeshCylinder,
		Vec3{loc[0], loc[1], loc[2] + 10}, Vec3{3, 3, 0.2}))
	specs = append(specs, block(prefix+"_FountainCenter", MeshCylinder,
		Vec3{loc[0], loc[1], loc[2] + 50}, Vec3{0.5, 0.5, 0.8}))
	specs = append(specs, block(prefix+"_FountainTop", MeshCylinder,
		Vec3{loc[0], loc[1], loc[2] + 80}, Vec3{1.5, 1.5, 0.1}))
	specs = append(specs, block(prefix+"_Monument", MeshCylinder,
		Vec3{loc[0] + plazaSize/3, loc[1], loc[2] + 100}, Vec3{1, 1, 2}))
	specs = append(specs, block(prefix+"_MonumentBase", MeshCube,
		Vec3{loc[0] + plazaSize/3, loc[1], loc[2] + 30}, Vec3{2, 2, 0.6}))

	const numBenches = 8
	for i := 0; i < numBenches; i++ {
		angle := 2 * math.Pi * float64(i) / numBenches
		x := loc[0] + plazaSize/3*math.Cos(angle)
		y := loc[1] + plazaSize/3*math.Sin(angle)
		specs = append(specs, rotatedBlock(fmt.Sprintf("%s_PlazaBench_%d", prefix, i), MeshCube,
			Vec3{x, y, loc[2] + 30},
			Vec3{0, 0, angle * 180 / math.Pi},
			Vec3{1.5, 0.5, 0.6}))
	}

	const numLights = 12
	for i := 0; i < numLights; i++ {
		angle := 2 * math.Pi * float64(i) / numLights
		x := loc[0] + plazaSize/2*math.Cos(angle)
		y := loc[1] + plazaSize/2*math.Sin(angle)
		specs = append(specs, block(fmt.Sprintf("%s_PlazaLightPost_%d", prefix, i), MeshCylinder,
			Vec3{x, y, loc[2] + 100}, Vec3{0.15, 0.15, 2}))
		specs = append(specs, block(fmt.Sprintf("%s_PlazaLight_%d", prefix, i), MeshSphere,
			Vec3{x, y, loc[2] + 180}, Vec3{0.4, 0.4, 0.3}))
	}
	return specs
}
