package procgen

import (
	"fmt"
	"math"
)

// Castle size presets.
const (
	CastleSmall  = "small"
	CastleMedium = "medium"
	CastleLarge  = "large"
	CastleEpic   = "epic"
)

type castlePreset struct {
	outerWidth  float64
	outerDepth  float64
	innerWidth  float64
	innerDepth  float64
	wallHeight  float64
	towerCount  int
	towerHeight float64
}

var castlePresets = map[string]castlePreset{
	CastleSmall:  {6000, 6000, 3000, 3000, 800, 8, 1200},
	CastleMedium: {8000, 8000, 4000, 4000, 1000, 12, 1600},
	CastleLarge:  {12000, 12000, 6000, 6000, 1200, 16, 2000},
	CastleEpic:   {16000, 16000, 8000, 8000, 1600, 24, 2800},
}

// castleScaleFactor doubles every preset dimension and density.
const castleScaleFactor = 2.0

// CastleParams configures a walled fortress with keep and surroundings.
type CastleParams struct {
	Size                string
	Location            Vec3
	NamePrefix          string
	IncludeSiegeWeapons bool
	IncludeVillage      bool
	ArchitecturalStyle  string // "medieval", "fantasy", "gothic"
}

func (p CastleParams) withDefaults() CastleParams {
	if _, ok := castlePresets[p.Size]; !ok {
		p.Size = CastleLarge
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "Castle"
	}
	if p.ArchitecturalStyle == "" {
		p.ArchitecturalStyle = "medieval"
	}
	return p
}

// CastlePlan is a planned castle with its summary stats.
type CastlePlan struct {
	Specs        []SpawnSpec
	WallSections int
	Towers       int
}

// Castle plans a two-bailey fortress: outer walls with battlements, an
// elaborate gate complex, corner and wall towers, a central keep with its
// own towers, courtyard buildings, bailey annexes and walkways, optional
// siege weapons and village, drawbridge, moat, and tower flags.
func Castle(p CastleParams) CastlePlan {
	p = p.withDefaults()
	preset := castlePresets[p.Size]

	complexity := int(math.Round(castleScaleFactor))
	if complexity < 1 {
		complexity = 1
	}

	outerWidth := preset.outerWidth * castleScaleFactor
	outerDepth := preset.outerDepth * castleScaleFactor
	innerWidth := preset.innerWidth * castleScaleFactor
	innerDepth := preset.innerDepth * castleScaleFactor
	wallHeight := preset.wallHeight * castleScaleFactor
	towerHeight := preset.towerHeight * castleScaleFactor
	towerCount := preset.towerCount * complexity

	gateTowerOffset := 700 * castleScaleFactor
	barbicanOffset := 400 * castleScaleFactor
	drawbridgeOffset := 600 * castleScaleFactor
	wallThickness := 300 * math.Max(1, castleScaleFactor*0.75)

	loc := p.Location
	c := &castleBuilder{prefix: p.NamePrefix}

	// Outer bailey walls with battlements on every other segment.
	for i := 0; i < int(outerWidth/200); i++ {
		wallX := loc[0] - outerWidth/2 + float64(i)*200 + 100
		c.add(fmt.Sprintf("WallNorth_%d", i), MeshCube,
			Vec3{wallX, loc[1] - outerDepth/2, loc[2] + wallHeight/2},
			Vec3{2, wallThickness / 100, wallHeight / 100})
		if i%2 == 0 {
			c.add(fmt.Sprintf("BattlementNorth_%d", i), MeshCube,
				Vec3{wallX, loc[1] - outerDepth/2, loc[2] + wallHeight + 50},
				Vec3{1, wallThickness / 100, 1})
		}
		c.add(fmt.Sprintf("WallSouth_%d", i), MeshCube,
			Vec3{wallX, loc[1] + outerDepth/2, loc[2] + wallHeight/2},
			Vec3{2, wallThickness / 100, wallHeight / 100})
		if i%2 == 0 {
			c.add(fmt.Sprintf("BattlementSouth_%d", i), MeshCube,
				Vec3{wallX, loc[1] + outerDepth/2, loc[2] + wallHeight + 50},
				Vec3{1, wallThickness / 100, 1})
		}
	}
	for i := 0; i < int(outerDepth/200); i++ {
		wallY := loc[1] - outerDepth/2 + float64(i)*200 + 100
		c.add(fmt.Sprintf("WallEast_%d", i), MeshCube,
			Vec3{loc[0] + outerWidth/2, wallY, loc[2] + wallHeight/2},
			Vec3{wallThickness / 100, 2, wallHeight / 100})
		// West wall leaves a gap for the main gate.
		if math.Abs(wallY-loc[1]) > 700 {
			c.add(fmt.Sprintf("WallWest_%d", i), MeshCube,
				Vec3{loc[0] - outerWidth/2, wallY, loc[2] + wallHeight/2},
				Vec3{wallThickness / 100, 2, wallHeight / 100})
		}
	}

	// Inner bailey walls, higher than the outer ring.
	innerWallHeight := wallHeight * 1.3
	for i := 0; i < int(innerWidth/200); i++ {
		wallX := loc[0] - innerWidth/2 + float64(i)*200 + 100
		c.add(fmt.Sprintf("InnerWallNorth_%d", i), MeshCube,
			Vec3{wallX, loc[1] - innerDepth/2, loc[2] + innerWallHeight/2},
			Vec3{2, wallThickness / 100, innerWallHeight / 100})
		c.add(fmt.Sprintf("InnerWallSouth_%d", i), MeshCube,
			Vec3{wallX, loc[1] + innerDepth/2, loc[2] + innerWallHeight/2},
			Vec3{2, wallThickness / 100, innerWallHeight / 100})
	}
	for i := 0; i < int(innerDepth/200); i++ {
		wallY := loc[1] - innerDepth/2 + float64(i)*200 + 100
		c.add(fmt.Sprintf("InnerWallEast_%d", i), MeshCube,
			Vec3{loc[0] + innerWidth/2, wallY, loc[2] + innerWallHeight/2},
			Vec3{wallThickness / 100, 2, innerWallHeight / 100})
		c.add(fmt.Sprintf("InnerWallWest_%d", i), MeshCube,
			Vec3{loc[0] - innerWidth/2, wallY, loc[2] + innerWallHeight/2},
			Vec3{wallThickness / 100, 2, innerWallHeight / 100})
	}

	// Gate complex: flanking towers, barbican, double portcullis.
	for _, side := range []float64{-1, 1} {
		c.add(fmt.Sprintf("GateTower_%d", int(side)), MeshCylinder,
			Vec3{loc[0] - outerWidth/2, loc[1] + side*gateTowerOffset, loc[2] + towerHeight/2},
			Vec3{4, 4, towerHeight / 100})
		c.add(fmt.Sprintf("GateTowerTop_%d", int(side)), MeshCone,
			Vec3{loc[0] - outerWidth/2, loc[1] + side*gateTowerOffset, loc[2] + towerHeight + 200},
			Vec3{5, 5, 0.8})
	}
	c.add("Barbican", MeshCube,
		Vec3{loc[0] - outerWidth/2 - barbicanOffset, loc[1], loc[2] + wallHeight/2},
		Vec3{8, 12, wallHeight / 100})
	c.add("Portcullis", MeshCube,
		Vec3{loc[0] - outerWidth/2, loc[1], loc[2] + 200},
		Vec3{0.5, 12, 8})
	c.add("InnerPortcullis", MeshCube,
		Vec3{loc[0] - innerWidth/2, loc[1], loc[2] + 200},
		Vec3{0.5, 8, 6})

	outerCorners := [4][2]float64{
		{loc[0] - outerWidth/2, loc[1] - outerDepth/2},
		{loc[0] + outerWidth/2, loc[1] - outerDepth/2},
		{loc[0] + outerWidth/2, loc[1] + outerDepth/2},
		{loc[0] - outerWidth/2, loc[1] + outerDepth/2},
	}
	innerCorners := [4][2]float64{
		{loc[0] - innerWidth/2, loc[1] - innerDepth/2},
		{loc[0] + innerWidth/2, loc[1] - innerDepth/2},
		{loc[0] + innerWidth/2, loc[1] + innerDepth/2},
		{loc[0] - innerWidth/2, loc[1] + innerDepth/2},
	}

	// Outer corner towers with bases, conical tops and window rings.
	for i, corner := range outerCorners {
		c.add(fmt.Sprintf("TowerBase_%d", i), MeshCylinder,
			Vec3{corner[0], corner[1], loc[2] + 150}, Vec3{6, 6, 3})
		c.add(fmt.Sprintf("Tower_%d", i), MeshCylinder,
			Vec3{corner[0], corner[1], loc[2] + towerHeight/2},
			Vec3{5, 5, towerHeight / 100})
		if p.ArchitecturalStyle == "medieval" || p.ArchitecturalStyle == "fantasy" {
			c.add(fmt.Sprintf("TowerTop_%d", i), MeshCone,
				Vec3{corner[0], corner[1], loc[2] + towerHeight + 150},
				Vec3{6, 6, 2.5})
		}
		for level := 0; level < 5; level++ {
			windowZ := loc[2] + 300 + float64(level)*300
			for _, angle := range []float64{0, 90, 180, 270} {
				rad := angle * math.Pi / 180
				c.addRotated(fmt.Sprintf("TowerWindow_%d_%d_%d", i, level, int(angle)), MeshCube,
					Vec3{corner[0] + 350*math.Cos(rad), corner[1] + 350*math.Sin(rad), windowZ},
					Vec3{0, angle, 0},
					Vec3{0.3, 0.5, 0.8})
			}
		}
	}

	// Inner corner towers, taller and wider.
	innerTowerHeight := towerHeight * 1.4
	for i, corner := range innerCorners {
		c.add(fmt.Sprintf("InnerTowerBase_%d", i), MeshCylinder,
			Vec3{corner[0], corner[1], loc[2] + 200}, Vec3{8, 8, 4})
		c.add(fmt.Sprintf("InnerTower_%d", i), MeshCylinder,
			Vec3{corner[0], corner[1], loc[2] + innerTowerHeight/2},
			Vec3{6, 6, innerTowerHeight / 100})
		c.add(fmt.Sprintf("InnerTowerTop_%d", i), MeshCone,
			Vec3{corner[0], corner[1], loc[2] + innerTowerHeight + 200},
			Vec3{8, 8, 3})
	}

	// Intermediate towers along the north and south walls.
	wallTowers := 3 * complexity
	if wallTowers < 3 {
		wallTowers = 3
	}
	for i := 0; i < wallTowers; i++ {
		towerX := loc[0] - outerWidth/4 + float64(i)*outerWidth/4
		c.add(fmt.Sprintf("NorthWallTower_%d", i), MeshCylinder,
			Vec3{towerX, loc[1] - outerDepth/2, loc[2] + towerHeight*0.8/2},
			Vec3{3, 3, towerHeight * 0.8 / 100})
		c.add(fmt.Sprintf("SouthWallTower_%d", i), MeshCylinder,
			Vec3{towerX, loc[1] + outerDepth/2, loc[2] + towerHeight*0.8/2},
			Vec3{3, 3, towerHeight * 0.8 / 100})
	}

	// Central keep complex.
	keepWidth := innerWidth * 0.6
	keepDepth := innerDepth * 0.6
	keepHeight := towerHeight * 2
	c.add("KeepBase", MeshCube,
		Vec3{loc[0], loc[1], loc[2] + keepHeight/2},
		Vec3{keepWidth / 100, keepDepth / 100, keepHeight / 100})

	// The spire sits on top of the keep base rather than intersecting it.
	keepSpireHeight := math.Max(1200, towerHeight)
	keepTopZ := loc[2] + keepHeight
	c.add("KeepTower", MeshCylinder,
		Vec3{loc[0], loc[1], keepTopZ + keepSpireHeight/2},
		Vec3{4, 4, keepSpireHeight / 100})

	c.add("GreatHall", MeshCube,
		Vec3{loc[0], loc[1] + keepDepth/3, loc[2] + 200},
		Vec3{keepWidth / 100 * 0.8, keepDepth / 100 * 0.5, 6})

	keepCorners := [4][2]float64{
		{loc[0] - keepWidth/3, loc[1] - keepDepth/3},
		{loc[0] + keepWidth/3, loc[1] - keepDepth/3},
		{loc[0] + keepWidth/3, loc[1] + keepDepth/3},
		{loc[0] - keepWidth/3, loc[1] + keepDepth/3},
	}
	for i, corner := range keepCorners {
		c.add(fmt.Sprintf("KeepCornerTower_%d", i), MeshCylinder,
			Vec3{corner[0], corner[1], loc[2] + keepHeight*0.8},
			Vec3{3, 3, keepHeight / 100 * 0.8})
	}

	// Courtyard buildings inside the inner bailey.
	courtyard := []struct {
		name  string
		x, y  float64
		z     float64
		scale Vec3
		mesh  string
	}{
		{"Stables", loc[0] - innerWidth/3, loc[1] + innerDepth/3, 150, Vec3{8, 4, 3}, MeshCube},
		{"Barracks", loc[0] + innerWidth/3, loc[1] + innerDepth/3, 150, Vec3{10, 6, 3}, MeshCube},
		{"Blacksmith", loc[0] + innerWidth/3, loc[1] - innerDepth/3, 100, Vec3{6, 6, 2}, MeshCube},
		{"Well", loc[0] - innerWidth/4, loc[1], 50, Vec3{3, 3, 2}, MeshCylinder},
		{"Armory", loc[0] - innerWidth/3, loc[1] - innerDepth/3, 150, Vec3{6, 4, 3}, MeshCube},
		{"Chapel", loc[0], loc[1] - innerDepth/3, 200, Vec3{8, 5, 4}, MeshCube},
		{"Kitchen", loc[0] - innerWidth/4, loc[1] + innerDepth/4, 120, Vec3{5, 4, 2.5}, MeshCube},
		{"Treasury", loc[0] + innerWidth/4, loc[1] + innerDepth/4, 100, Vec3{3, 3, 2}, MeshCube},
		{"Granary", loc[0] + innerWidth/4, loc[1] - innerDepth/4, 180, Vec3{4, 6, 3.5}, MeshCube},
		{"GuardHouse", loc[0] - innerWidth/4, loc[1] - innerDepth/4, 150, Vec3{4, 4, 3}, MeshCube},
	}
	for _, b := range courtyard {
		c.add(b.name, b.mesh, Vec3{b.x, b.y, loc[2] + b.z}, b.scale)
	}

	c.addBaileyAnnexes(loc, outerWidth, outerDepth)

	if p.IncludeSiegeWeapons {
		c.addSiegeWeapons(loc, outerWidth, outerDepth, wallHeight, towerHeight, outerCorners)
	}
	if p.IncludeVillage {
		c.addVillage(p.Size, complexity, loc, outerWidth, outerDepth)
	}

	c.add("Drawbridge", MeshCube,
		Vec3{loc[0] - outerWidth/2 - drawbridgeOffset, loc[1], loc[2] + 20},
		Vec3{12 * castleScaleFactor, 10 * castleScaleFactor, 0.3})

	// Moat ring.
	moatWidth := 1200 * castleScaleFactor
	moatSections := 30 * complexity
	for i := 0; i < moatSections; i++ {
		angle := 2 * math.Pi * float64(i) / float64(moatSections)
		c.add(fmt.Sprintf("Moat_%d", i), MeshCylinder,
			Vec3{
				loc[0] + (outerWidth/2+moatWidth/2)*math.Cos(angle),
				loc[1] + (outerDepth/2+moatWidth/2)*math.Sin(angle),
				loc[2] - 50,
			},
			Vec3{moatWidth / 100, moatWidth / 100, 0.1})
	}

	// Flags on the corner and gate towers.
	for i := 0; i < len(outerCorners)+2; i++ {
		var flagX, flagY, flagZ float64
		if i < len(outerCorners) {
			flagX = outerCorners[i][0]
			flagY = outerCorners[i][1]
			flagZ = loc[2] + towerHeight + 300
		} else {
			side := -1.0
			if i == len(outerCorners) {
				side = 1
			}
			flagX = loc[0] - outerWidth/2
			flagY = loc[1] + side*gateTowerOffset
			flagZ = loc[2] + towerHeight + 200
		}
		c.add(fmt.Sprintf("FlagPole_%d", i), MeshCylinder,
			Vec3{flagX, flagY, flagZ}, Vec3{0.05, 0.05, 3})
		c.add(fmt.Sprintf("Flag_%d", i), MeshCube,
			Vec3{flagX + 100, flagY, flagZ + 100}, Vec3{0.05, 2, 1.5})
	}

	return CastlePlan{
		Specs:        c.specs,
		WallSections: int(outerWidth/200)*2 + int(outerDepth/200)*2,
		Towers:       towerCount,
	}
}

type castleBuilder struct {
	prefix string
	specs  []SpawnSpec
}

func (c *castleBuilder) add(name, mesh string, loc Vec3, scale Vec3) {
	c.specs = append(c.specs, block(c.prefix+"_"+name, mesh, loc, scale))
}

func (c *castleBuilder) addRotated(name, mesh string, loc, rot, scale Vec3) {
	c.specs = append(c.specs, rotatedBlock(c.prefix+"_"+name, mesh, loc, rot, scale))
}

// addBaileyAnnexes fills the outer bailey with walkways along each wall and
// rows of annex rooms on the wall's inner face.
func (c *castleBuilder) addBaileyAnnexes(loc Vec3, outerWidth, outerDepth float64) {
	annexDepth := 500 * math.Max(1, castleScaleFactor)
	annexWidth := 700 * math.Max(1, castleScaleFactor)
	annexHeight := 300 * math.Max(1, castleScaleFactor)
	walkwayWidth := 300 * math.Max(1, castleScaleFactor)
	spacing := 1200 * math.Max(1, castleScaleFactor)
	const walkwayHeight = 160.0

	walkwayZ := loc[2] + 100
	for _, side := range []struct {
		name   string
		fixedY float64
	}{
		{"north", loc[1] - outerDepth/2 + walkwayWidth/2},
		{"south", loc[1] + outerDepth/2 - walkwayWidth/2},
	} {
		segments := int(outerWidth / 400)
		for i := 0; i < segments; i++ {
			segX := loc[0] - outerWidth/2 + float64(i)*400 + 200
			c.add(fmt.Sprintf("Walkway_%s_%d", side.name, i), MeshCube,
				Vec3{segX, side.fixedY, walkwayZ},
				Vec3{4, walkwayWidth / 100, walkwayHeight / 100})
		}
	}
	for _, side := range []struct {
		name   string
		fixedX float64
	}{
		{"east", loc[0] + outerWidth/2 - walkwayWidth/2},
		{"west", loc[0] - outerWidth/2 + walkwayWidth/2},
	} {
		segments := int(outerDepth / 400)
		for i := 0; i < segments; i++ {
			segY := loc[1] - outerDepth/2 + float64(i)*400 + 200
			c.add(fmt.Sprintf("Walkway_%s_%d", side.name, i), MeshCube,
				Vec3{side.fixedX, segY, walkwayZ},
				Vec3{walkwayWidth / 100, 4, walkwayHeight / 100})
		}
	}

	annexRow := func(baseName string, fixedY, yShift float64) {
		count := 0
		for x := loc[0] - outerWidth/2 + spacing; x <= loc[0]+outerWidth/2-spacing; x += spacing {
			name := fmt.Sprintf("%s_%d", baseName, count)
			annexY := fixedY + yShift
			c.add(name, MeshCube,
				Vec3{x, annexY, loc[2] + annexHeight/2},
				Vec3{annexWidth / 100, annexDepth / 100, annexHeight / 100})
			doorShift := -50.0
			if yShift > 0 {
				doorShift = 50
			}
			c.add(name+"_Door", MeshCylinder,
				Vec3{x, annexY - doorShift, loc[2] + 120},
				Vec3{1, 0.6, 2.4})
			count++
		}
	}
	annexRow("NorthAnnex", loc[1]-outerDepth/2+walkwayWidth+annexDepth/2, walkwayWidth)
	annexRow("SouthAnnex", loc[1]+outerDepth/2-walkwayWidth-annexDepth/2, -walkwayWidth)

	for y := loc[1] - outerDepth/2 + spacing; y <= loc[1]+outerDepth/2-spacing; y += spacing {
		c.add(fmt.Sprintf("WestAnnex_%d", int(y)), MeshCube,
			Vec3{loc[0] - outerWidth/2 + walkwayWidth + annexDepth/2, y, loc[2] + annexHeight/2},
			Vec3{annexDepth / 100, annexWidth / 100, annexHeight / 100})
		c.add(fmt.Sprintf("EastAnnex_%d", int(y)), MeshCube,
			Vec3{loc[0] + outerWidth/2 - walkwayWidth - annexDepth/2, y, loc[2] + annexHeight/2},
			Vec3{annexDepth / 100, annexWidth / 100, annexHeight / 100})
	}
}

func (c *castleBuilder) addSiegeWeapons(loc Vec3, outerWidth, outerDepth, wallHeight, towerHeight float64, outerCorners [4][2]float64) {
	catapultPositions := [4]Vec3{
		{loc[0], loc[1] - outerDepth/2 + 200, loc[2] + wallHeight},
		{loc[0], loc[1] + outerDepth/2 - 200, loc[2] + wallHeight},
		{loc[0] - outerWidth/3, loc[1] - outerDepth/2 + 200, loc[2] + wallHeight},
		{loc[0] + outerWidth/3, loc[1] + outerDepth/2 - 200, loc[2] + wallHeight},
	}
	for i, pos := range catapultPositions {
		c.add(fmt.Sprintf("CatapultBase_%d", i), MeshCube, pos, Vec3{4, 3, 1})
		c.addRotated(fmt.Sprintf("CatapultArm_%d", i), MeshCube,
			Vec3{pos[0], pos[1], pos[2] + 100},
			Vec3{45, 0, 0},
			Vec3{0.4, 0.4, 6})
		for j := 0; j < 5; j++ {
			c.add(fmt.Sprintf("CatapultAmmo_%d_%d", i, j), MeshSphere,
				Vec3{pos[0] + float64(j)*80 - 160, pos[1] + 250, pos[2] + 40},
				uniform(0.6))
		}
	}
	for i := 0; i < 4; i++ {
		corner := outerCorners[i]
		c.add(fmt.Sprintf("Ballista_%d", i), MeshCube,
			Vec3{corner[0], corner[1], loc[2] + towerHeight},
			Vec3{0.5, 3, 0.5})
	}
}

func (c *castleBuilder) addVillage(size string, complexity int, loc Vec3, outerWidth, outerDepth float64) {
	villageRadius := outerWidth * 0.3
	numHouses := 16
	if size == CastleEpic {
		numHouses = 24
	}
	numHouses *= complexity

	for i := 0; i < numHouses; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numHouses)
		houseX := loc[0] + (outerWidth/2+villageRadius)*math.Cos(angle)
		houseY := loc[1] + (outerDepth/2+villageRadius)*math.Sin(angle)
		// Keep the approach to the main gate clear.
		if houseX < loc[0]-outerWidth*0.4 && math.Abs(houseY-loc[1]) < 1000 {
			continue
		}
		rot := Vec3{0, angle * 180 / math.Pi, 0}
		c.addRotated(fmt.Sprintf("VillageHouse_%d", i), MeshCube,
			Vec3{houseX, houseY, loc[2] + 100}, rot, Vec3{3, 2.5, 2})
		c.addRotated(fmt.Sprintf("VillageRoof_%d", i), MeshCone,
			Vec3{houseX, houseY, loc[2] + 250}, rot, Vec3{3.5, 3, 0.8})
	}

	outerVillageRadius := outerWidth * 0.5
	outerHouses := numHouses / 2
	if outerHouses < 1 {
		outerHouses = 1
	}
	for i := 0; i < outerHouses; i++ {
		angle := 2 * math.Pi * float64(i) / float64(outerHouses)
		houseX := loc[0] + (outerWidth/2+outerVillageRadius)*math.Cos(angle)
		houseY := loc[1] + (outerDepth/2+outerVillageRadius)*math.Sin(angle)
		rot := Vec3{0, angle * 180 / math.Pi, 0}
		c.addRotated(fmt.Sprintf("OuterVillageHouse_%d", i), MeshCube,
			Vec3{houseX, houseY, loc[2] + 100}, rot, Vec3{2.5, 2, 2})
		c.addRotated(fmt.Sprintf("OuterVillageRoof_%d", i), MeshCone,
			Vec3{houseX, houseY, loc[2] + 250}, rot, Vec3{3, 2.5, 0.6})
	}

	marketXStart := loc[0] - outerWidth/2 - 800*castleScaleFactor
	for i := 0; i < 8*complexity; i++ {
		stallX := marketXStart + float64(i)*150
		stallY := loc[1] - 200
		if i%2 == 0 {
			stallY = loc[1] + 200
		}
		c.add(fmt.Sprintf("MarketStall_%d", i), MeshCube,
			Vec3{stallX, stallY, loc[2] + 80}, Vec3{2, 1.5, 1.5})
		c.add(fmt.Sprintf("StallCanopy_%d", i), MeshCube,
			Vec3{stallX, stallY, loc[2] + 180}, Vec3{2.5, 2, 0.1})
	}

	var workshopPositions [][2]float64
	for _, offset := range []float64{400 * castleScaleFactor, 600 * castleScaleFactor, 800 * castleScaleFactor} {
		workshopPositions = append(workshopPositions,
			[2]float64{loc[0] - outerWidth/2 - offset, loc[1] + offset},
			[2]float64{loc[0] - outerWidth/2 - offset, loc[1] - offset},
			[2]float64{loc[0] + outerWidth/2 + offset, loc[1] + offset},
			[2]float64{loc[0] + outerWidth/2 + offset, loc[1] - offset},
		)
	}
	for i, pos := range workshopPositions {
		c.add(fmt.Sprintf("Workshop_%d", i), MeshCube,
			Vec3{pos[0], pos[1], loc[2] + 80}, Vec3{2, 1.8, 1.6})
	}
}
