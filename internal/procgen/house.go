package procgen

import "fmt"

// House styles.
const (
	HouseModern  = "modern"
	HouseCottage = "cottage"
	HouseMansion = "mansion"
)

// HouseParams configures a multi-room house.
type HouseParams struct {
	Width      float64
	Depth      float64
	Height     float64
	Location   Vec3
	NamePrefix string
	Mesh       string
	Style      string
}

func (p HouseParams) withDefaults() HouseParams {
	if p.Width <= 0 {
		p.Width = 1200
	}
	if p.Depth <= 0 {
		p.Depth = 1000
	}
	if p.Height <= 0 {
		p.Height = 600
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "House"
	}
	if p.Mesh == "" {
		p.Mesh = MeshCube
	}
	if p.Style == "" {
		p.Style = HouseModern
	}
	return p
}

// HousePlan is a planned house plus the dimensions after style scaling.
type HousePlan struct {
	Specs    []SpawnSpec
	Width    float64
	Depth    float64
	Height   float64
	Features []string
}

// House plans a house with foundation, floor, door and window openings, a
// flat overhanging roof, and style extras (chimney, porch, garage).
func House(p HouseParams) HousePlan {
	p = p.withDefaults()

	const (
		wallThickness  = 20.0
		floorThickness = 30.0
		doorWidth      = 120.0
		doorHeight     = 240.0
		windowHeight   = 150.0
		roofThickness  = 30.0
		roofOverhang   = 100.0
	)

	width, depth, height := p.Width, p.Depth, p.Height
	switch p.Style {
	case HouseMansion:
		width *= 1.5
		depth *= 1.5
		height *= 1.3
	case HouseCottage:
		width *= 0.8
		depth *= 0.8
		height *= 0.9
	}

	loc := p.Location
	var specs []SpawnSpec

	specs = append(specs, block(p.NamePrefix+"_Foundation", p.Mesh,
		Vec3{loc[0], loc[1], loc[2] - floorThickness/2},
		Vec3{(width + 200) / 100, (depth + 200) / 100, floorThickness / 100}))
	specs = append(specs, block(p.NamePrefix+"_Floor", p.Mesh,
		Vec3{loc[0], loc[1], loc[2] + floorThickness/2},
		Vec3{width / 100, depth / 100, floorThickness / 100}))

	baseZ := loc[2] + floorThickness

	// Front wall split around the door opening.
	frontSideWidth := width/2 - doorWidth/2
	specs = append(specs, block(p.NamePrefix+"_FrontWall_Left", p.Mesh,
		Vec3{loc[0] - width/4 - doorWidth/4, loc[1] - depth/2, baseZ + height/2},
		Vec3{frontSideWidth / 100, wallThickness / 100, height / 100}))
	specs = append(specs, block(p.NamePrefix+"_FrontWall_Right", p.Mesh,
		Vec3{loc[0] + width/4 + doorWidth/4, loc[1] - depth/2, baseZ + height/2},
		Vec3{frontSideWidth / 100, wallThickness / 100, height / 100}))
	specs = append(specs, block(p.NamePrefix+"_FrontWall_Top", p.Mesh,
		Vec3{loc[0], loc[1] - depth/2, baseZ + doorHeight + (height-doorHeight)/2},
		Vec3{doorWidth / 100, wallThickness / 100, (height - doorHeight) / 100}))

	// Back wall with a window band through the center section.
	windowY := baseZ + height/2
	specs = append(specs, block(p.NamePrefix+"_BackWall_Left", p.Mesh,
		Vec3{loc[0] - width/3, loc[1] + depth/2, baseZ + height/2},
		Vec3{width / 3 / 100, wallThickness / 100, height / 100}))
	lowerH := windowY - windowHeight/2 - baseZ
	specs = append(specs, block(p.NamePrefix+"_BackWall_Center_Bottom", p.Mesh,
		Vec3{loc[0], loc[1] + depth/2, baseZ + lowerH/2},
		Vec3{width / 3 / 100, wallThickness / 100, lowerH / 100}))
	upperH := baseZ + height - windowY - windowHeight/2
	specs = append(specs, block(p.NamePrefix+"_BackWall_Center_Top", p.Mesh,
		Vec3{loc[0], loc[1] + depth/2, windowY + windowHeight/2 + upperH/2},
		Vec3{width / 3 / 100, wallThickness / 100, upperH / 100}))
	specs = append(specs, block(p.NamePrefix+"_BackWall_Right", p.Mesh,
		Vec3{loc[0] + width/3, loc[1] + depth/2, baseZ + height/2},
		Vec3{width / 3 / 100, wallThickness / 100, height / 100}))

	specs = append(specs, block(p.NamePrefix+"_LeftWall", p.Mesh,
		Vec3{loc[0] - width/2, loc[1], baseZ + height/2},
		Vec3{wallThickness / 100, depth / 100, height / 100}))
	specs = append(specs, block(p.NamePrefix+"_RightWall", p.Mesh,
		Vec3{loc[0] + width/2, loc[1], baseZ + height/2},
		Vec3{wallThickness / 100, depth / 100, height / 100}))

	specs = append(specs, rotatedBlock(p.NamePrefix+"_Roof", p.Mesh,
		Vec3{loc[0], loc[1], baseZ + height + roofThickness/2},
		Vec3{0, 0, 0},
		Vec3{(width + roofOverhang*2) / 100, (depth + roofOverhang*2) / 100, roofThickness / 100}))

	features := []string{"foundation", "floor", "walls", "windows", "door", "flat_roof"}

	if p.Style == HouseCottage || p.Style == HouseMansion {
		specs = append(specs, block(p.NamePrefix+"_Chimney", MeshCylinder,
			Vec3{loc[0] + width/3, loc[1] + depth/3, baseZ + height + roofThickness + 150},
			Vec3{1, 1, 2.5}))
		features = append(features, "chimney")
	}

	if p.Style == HouseMansion {
		specs = append(specs, block(p.NamePrefix+"_Porch_Floor", p.Mesh,
			Vec3{loc[0], loc[1] - depth/2 - 150, loc[2]},
			Vec3{width / 100, 3, 0.3}))
		for i, xOffset := range []float64{-width / 3, 0, width / 3} {
			specs = append(specs, block(fmt.Sprintf("%s_Porch_Column_%d", p.NamePrefix, i), MeshCylinder,
				Vec3{loc[0] + xOffset, loc[1] - depth/2 - 250, baseZ + height/2},
				Vec3{0.5, 0.5, height / 100}))
		}
		specs = append(specs, block(p.NamePrefix+"_Porch_Roof", p.Mesh,
			Vec3{loc[0], loc[1] - depth/2 - 150, baseZ + height - 50},
			Vec3{(width + 100) / 100, 4, 0.3}))
		features = append(features, "porch", "columns")
	}

	if p.Style == HouseModern {
		specs = append(specs, block(p.NamePrefix+"_Garage_Door", p.Mesh,
			Vec3{loc[0] - width/3, loc[1] - depth/2 + wallThickness/2, baseZ + 150},
			Vec3{2.5, 0.1, 2.5}))
		features = append(features, "garage")
	}

	return HousePlan{
		Specs:    specs,
		Width:    width,
		Depth:    depth,
		Height:   height,
		Features: features,
	}
}
