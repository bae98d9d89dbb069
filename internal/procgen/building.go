package procgen

import (
	"fmt"
	"math"
	"math/rand"
)

type buildingStyle struct {
	wallThickness float64
	windowRatio   float64
	detailScale   float64
}

var buildingStyles = map[string]buildingStyle{
	"modern":     {25, 0.7, 1.0},
	"cottage":    {40, 0.4, 0.8},
	"gothic":     {60, 0.3, 1.2},
	"art_deco":   {30, 0.6, 1.1},
	"brutalist":  {80, 0.2, 1.5},
	"glass":      {20, 0.9, 0.7},
	"industrial": {35, 0.5, 0.9},
}

// Palette holds the material colors for each building component.
type Palette struct {
	Walls      Color
	Roof       Color
	Windows    Color
	Doors      Color
	Trim       Color
	Foundation Color
}

var buildingPalettes = map[string]Palette{
	"brick": {
		Walls:      Color{0.7, 0.4, 0.3, 1},
		Roof:       Color{0.3, 0.2, 0.2, 1},
		Windows:    Color{0.2, 0.3, 0.5, 0.8},
		Doors:      Color{0.4, 0.2, 0.1, 1},
		Trim:       Color{0.9, 0.9, 0.8, 1},
		Foundation: Color{0.5, 0.5, 0.5, 1},
	},
	"concrete": {
		Walls:      Color{0.75, 0.75, 0.7, 1},
		Roof:       Color{0.4, 0.4, 0.4, 1},
		Windows:    Color{0.2, 0.3, 0.4, 0.7},
		Doors:      Color{0.2, 0.2, 0.2, 1},
		Trim:       Color{0.6, 0.6, 0.6, 1},
		Foundation: Color{0.45, 0.45, 0.45, 1},
	},
	"stone": {
		Walls:      Color{0.6, 0.55, 0.5, 1},
		Roof:       Color{0.35, 0.3, 0.25, 1},
		Windows:    Color{0.1, 0.2, 0.3, 0.8},
		Doors:      Color{0.3, 0.2, 0.1, 1},
		Trim:       Color{0.8, 0.8, 0.75, 1},
		Foundation: Color{0.4, 0.4, 0.35, 1},
	},
	"wood": {
		Walls:      Color{0.6, 0.45, 0.3, 1},
		Roof:       Color{0.25, 0.2, 0.15, 1},
		Windows:    Color{0.9, 0.9, 0.85, 0.9},
		Doors:      Color{0.5, 0.35, 0.2, 1},
		Trim:       Color{0.9, 0.9, 0.85, 1},
		Foundation: Color{0.5, 0.5, 0.45, 1},
	},
	"glass": {
		Walls:      Color{0.3, 0.4, 0.5, 0.3},
		Roof:       Color{0.2, 0.2, 0.2, 1},
		Windows:    Color{0.2, 0.3, 0.4, 0.4},
		Doors:      Color{0.1, 0.1, 0.1, 1},
		Trim:       Color{0.7, 0.7, 0.7, 1},
		Foundation: Color{0.6, 0.6, 0.6, 1},
	},
	"metal": {
		Walls:      Color{0.6, 0.6, 0.65, 1},
		Roof:       Color{0.4, 0.4, 0.45, 1},
		Windows:    Color{0.2, 0.25, 0.3, 0.8},
		Doors:      Color{0.3, 0.3, 0.35, 1},
		Trim:       Color{0.8, 0.8, 0.85, 1},
		Foundation: Color{0.45, 0.45, 0.45, 1},
	},
	"stucco": {
		Walls:      Color{0.85, 0.8, 0.7, 1},
		Roof:       Color{0.6, 0.3, 0.2, 1},
		Windows:    Color{0.2, 0.3, 0.4, 0.8},
		Doors:      Color{0.4, 0.25, 0.15, 1},
		Trim:       Color{0.9, 0.85, 0.75, 1},
		Foundation: Color{0.7, 0.65, 0.6, 1},
	},
}

var styleToPalette = map[string]string{
	"modern":     "glass",
	"cottage":    "wood",
	"gothic":     "stone",
	"art_deco":   "concrete",
	"brutalist":  "concrete",
	"glass":      "glass",
	"industrial": "metal",
}

// buildingPalette resolves a color scheme name, mapping "auto" to the
// material conventionally paired with the style.
func buildingPalette(scheme, style string) (Palette, string) {
	if scheme == "" || scheme == "auto" {
		scheme = styleToPalette[style]
		if scheme == "" {
			scheme = "concrete"
		}
	}
	p, ok := buildingPalettes[scheme]
	if !ok {
		return buildingPalettes["concrete"], "concrete"
	}
	return p, scheme
}

type footprintSegment struct {
	centerX, centerY float64
	width, depth     float64
	rotation         float64
}

func footprintSegments(footprint string, width, depth float64) []footprintSegment {
	switch footprint {
	case "L_shape":
		return []footprintSegment{
			{width * 0.25, 0, width * 0.5, depth, 0},
			{-width * 0.25, depth * 0.25, width * 0.5, depth * 0.5, 0},
		}
	case "U_shape":
		return []footprintSegment{
			{-width * 0.3, 0, width * 0.4, depth, 0},
			{width * 0.3, 0, width * 0.4, depth, 0},
			{0, -depth * 0.3, width, depth * 0.4, 0},
		}
	case "T_shape":
		return []footprintSegment{
			{0, depth * 0.25, width, depth * 0.5, 0},
			{0, -depth * 0.25, width * 0.5, depth * 0.5, 0},
		}
	case "cross":
		return []footprintSegment{
			{0, 0, width, depth * 0.6, 0},
			{0, 0, width * 0.6, depth, 0},
		}
	case "circle":
		// Octagon approximation.
		radius := math.Min(width, depth) * 0.4
		segments := make([]footprintSegment, 0, 8)
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 4
			segments = append(segments, footprintSegment{
				centerX:  radius * 0.7 * math.Cos(angle),
				centerY:  radius * 0.7 * math.Sin(angle),
				width:    radius * 0.8,
				depth:    radius * 0.4,
				rotation: angle * 180 / math.Pi,
			})
		}
		return segments
	default:
		return []footprintSegment{{0, 0, width, depth, 0}}
	}
}

// BuildingParams configures a single customizable building.
type BuildingParams struct {
	Footprint      string  // "rectangle", "L_shape", "U_shape", "T_shape", "cross", "circle"
	Floors         int
	Style          string  // "modern", "cottage", "gothic", "art_deco", "brutalist", "glass", "industrial"
	FacadePattern  string  // "grid", "bands", "alternating", "random", "columns", "arches"
	RoofType       string  // "flat", "gable", "cone", "dome"
	Width          float64
	Depth          float64
	FloorHeight    float64
	Location       Vec3
	NamePrefix     string
	IncludeDetails *bool
	EntranceSide   string // "front", "back", "left", "right", "corner"
	BalconyChance  float64
	ColorScheme    string
	// Seed drives window and balcony variation when positive; zero or
	// negative means a randomly seeded source. Ignored when Rand is set.
	Seed int64
	Rand *rand.Rand
}

func (p BuildingParams) withDefaults() BuildingParams {
	if p.Footprint == "" {
		p.Footprint = "rectangle"
	}
	if p.Floors <= 0 {
		p.Floors = 6
	}
	p.Floors = clampInt(p.Floors, 1, 50)
	if p.Style == "" {
		p.Style = "modern"
	}
	if p.FacadePattern == "" {
		p.FacadePattern = "grid"
	}
	if p.RoofType == "" {
		p.RoofType = "flat"
	}
	if p.Width <= 0 {
		p.Width = 1600
	}
	p.Width = math.Max(400, p.Width)
	if p.Depth <= 0 {
		p.Depth = 1200
	}
	p.Depth = math.Max(400, p.Depth)
	if p.FloorHeight <= 0 {
		p.FloorHeight = 350
	}
	p.FloorHeight = math.Min(500, math.Max(200, p.FloorHeight))
	if p.NamePrefix == "" {
		p.NamePrefix = "Building"
	}
	if p.IncludeDetails == nil {
		t := true
		p.IncludeDetails = &t
	}
	if p.EntranceSide == "" {
		p.EntranceSide = "front"
	}
	if p.BalconyChance == 0 {
		p.BalconyChance = 0.3
	}
	p.BalconyChance = math.Min(1, math.Max(0, p.BalconyChance))
	if p.Rand == nil {
		if p.Seed > 0 {
			p.Rand = rand.New(rand.NewSource(p.Seed))
		} else {
			p.Rand = rand.New(rand.NewSource(rand.Int63()))
		}
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BuildingPlan is a planned building with its summary stats.
type BuildingPlan struct {
	Specs       []SpawnSpec
	Style       string
	Footprint   string
	Floors      int
	TotalHeight float64
	ColorScheme string
	Palette     Palette
	Seed        int64
}

// Building plans a single building: foundation, per-floor slabs and walls for
// each footprint segment, windows following the style's window ratio,
// balconies for residential styles, an entrance, the chosen roof, and
// style-specific details such as gothic spires or an art deco crown.
func Building(p BuildingParams) BuildingPlan {
	p = p.withDefaults()
	style := buildingStyles[p.Style]
	if style.wallThickness == 0 {
		style = buildingStyles["modern"]
	}
	palette, scheme := buildingPalette(p.ColorScheme, p.Style)
	segments := footprintSegments(p.Footprint, p.Width, p.Depth)
	rng := p.Rand
	details := *p.IncludeDetails

	loc := p.Location
	totalHeight := float64(p.Floors) * p.FloorHeight
	wt := style.wallThickness

	var specs []SpawnSpec
	colored := func(s SpawnSpec, c Color) SpawnSpec {
		col := c
		s.Color = &col
		return s
	}

	specs = append(specs, colored(block(
		p.NamePrefix+"_Foundation", MeshCube,
		Vec3{loc[0], loc[1], loc[2] - 25},
		Vec3{(p.Width + 100) / 100, (p.Depth + 100) / 100, 0.5},
	), palette.Foundation))

	for floor := 0; floor < p.Floors; floor++ {
		floorZ := loc[2] + float64(floor)*p.FloorHeight

		for segIdx, seg := range segments {
			segX := loc[0] + seg.centerX
			segY := loc[1] + seg.centerY
			rot := seg.rotation
			rotRad := rot * math.Pi / 180

			specs = append(specs, colored(rotatedBlock(
				fmt.Sprintf("%s_Floor_%d_%d", p.NamePrefix, floor, segIdx), MeshCube,
				Vec3{segX, segY, floorZ},
				Vec3{0, rot, 0},
				Vec3{seg.width / 100, seg.depth / 100, 0.3},
			), palette.Foundation))

			walls := []struct {
				name   string
				dx, dy float64
				w, d   float64
			}{
				{"North", 0, -seg.depth / 2, seg.width, wt},
				{"South", 0, seg.depth / 2, seg.width, wt},
				{"West", -seg.width / 2, 0, wt, seg.depth},
				{"East", seg.width / 2, 0, wt, seg.depth},
			}

			for wallIdx, wall := range walls {
				wallX := segX + wall.dx*math.Cos(rotRad) - wall.dy*math.Sin(rotRad)
				wallY := segY + wall.dx*math.Sin(rotRad) + wall.dy*math.Cos(rotRad)
				wallRot := rot
				if wallIdx >= 2 {
					wallRot += 90
				}

				specs = append(specs, colored(rotatedBlock(
					fmt.Sprintf("%s_Wall_%d_%d_%s", p.NamePrefix, floor, segIdx, wall.name), MeshCube,
					Vec3{wallX, wallY, floorZ + p.FloorHeight/2},
					Vec3{0, wallRot, 0},
					Vec3{wall.w / 100, wall.d / 100, p.FloorHeight / 100},
				), palette.Walls))

				if !details || floor == 0 {
					continue
				}
				if floor == 1 && segIdx == 0 && p.EntranceSide == lowerWallName(wall.name) {
					continue
				}

				span := wall.w
				if wallIdx >= 2 {
					span = wall.d
				}
				windowCount := int(span / 200)
				if windowCount < 1 {
					windowCount = 1
				}
				for winIdx := 0; winIdx < windowCount; winIdx++ {
					if rng.Float64() >= style.windowRatio {
						continue
					}
					offset := (float64(winIdx) - float64(windowCount-1)/2) * (span / float64(windowCount))
					var winX, winY float64
					if wallIdx < 2 {
						winX = wallX + offset*math.Cos(rotRad)
						winY = wallY + offset*math.Sin(rotRad)
					} else {
						winX = wallX + offset*math.Sin(rotRad)
						winY = wallY - offset*math.Cos(rotRad)
					}
					normal := wt * 0.6
					switch wall.name {
					case "North":
						winY -= normal
					case "South":
						winY += normal
					case "West":
						winX -= normal
					case "East":
						winX += normal
					}
					specs = append(specs, colored(rotatedBlock(
						fmt.Sprintf("%s_Window_%d_%d_%s_%d", p.NamePrefix, floor, segIdx, wall.name, winIdx), MeshCube,
						Vec3{winX, winY, floorZ + p.FloorHeight*0.6},
						Vec3{0, wallRot, 0},
						Vec3{1.2, 0.1, 1.5},
					), palette.Windows))
				}
			}

			if details && floor > 1 && (p.Style == "cottage" || p.Style == "modern") && rng.Float64() < p.BalconyChance {
				balconyX := segX + (seg.width/2+80)*math.Cos(rotRad)
				balconyY := segY + (seg.width/2+80)*math.Sin(rotRad)
				specs = append(specs, colored(rotatedBlock(
					fmt.Sprintf("%s_Balcony_%d_%d", p.NamePrefix, floor, segIdx), MeshCube,
					Vec3{balconyX, balconyY, floorZ + p.FloorHeight - 50},
					Vec3{0, rot, 0},
					Vec3{2, 1, 0.1},
				), palette.Trim))
			}
		}
	}

	if details {
		entrance := segments[0]
		segX := loc[0] + entrance.centerX
		segY := loc[1] + entrance.centerY
		var entranceX, entranceY float64
		switch p.EntranceSide {
		case "back":
			entranceX, entranceY = segX, segY+entrance.depth/2+wt
		case "left":
			entranceX, entranceY = segX-entrance.width/2-wt, segY
		case "right":
			entranceX, entranceY = segX+entrance.width/2+wt, segY
		case "corner":
			entranceX, entranceY = segX-entrance.width/3, segY-entrance.depth/3
		default:
			entranceX, entranceY = segX, segY-entrance.depth/2-wt
		}

		specs = append(specs, colored(block(
			p.NamePrefix+"_MainDoor", MeshCube,
			Vec3{entranceX, entranceY, loc[2] + 120},
			Vec3{1, 0.2, 2.4},
		), palette.Doors))

		if p.Style == "gothic" || p.Style == "art_deco" {
			specs = append(specs, colored(block(
				p.NamePrefix+"_DoorArch", MeshCylinder,
				Vec3{entranceX, entranceY, loc[2] + 180},
				Vec3{1.5, 0.3, 1},
			), palette.Trim))
		}
	}

	roofZ := loc[2] + totalHeight
	main := segments[0]
	mainX := loc[0] + main.centerX
	mainY := loc[1] + main.centerY

	switch p.RoofType {
	case "gable":
		for _, side := range []float64{-1, 1} {
			specs = append(specs, colored(rotatedBlock(
				fmt.Sprintf("%s_GableRoof_%d", p.NamePrefix, int(side)), MeshCube,
				Vec3{mainX + side*main.width/4, mainY, roofZ + 100},
				Vec3{0, main.rotation, side * 25},
				Vec3{main.width / 200, (main.depth + 100) / 100, 0.3},
			), palette.Roof))
		}
	case "cone":
		diameter := math.Max(main.width, main.depth) / 100
		specs = append(specs, colored(rotatedBlock(
			p.NamePrefix+"_ConeRoof", MeshCone,
			Vec3{mainX, mainY, roofZ + 150},
			Vec3{0, main.rotation, 0},
			Vec3{diameter, diameter, 3},
		), palette.Roof))
	case "dome":
		diameter := math.Max(main.width, main.depth) / 100
		specs = append(specs, colored(rotatedBlock(
			p.NamePrefix+"_DomeRoof", MeshSphere,
			Vec3{mainX, mainY, roofZ + 100},
			Vec3{0, main.rotation, 0},
			Vec3{diameter, diameter, 2},
		), palette.Roof))
	default:
		for segIdx, seg := range segments {
			specs = append(specs, colored(rotatedBlock(
				fmt.Sprintf("%s_Roof_%d", p.NamePrefix, segIdx), MeshCube,
				Vec3{loc[0] + seg.centerX, loc[1] + seg.centerY, roofZ + 25},
				Vec3{0, seg.rotation, 0},
				Vec3{(seg.width + 50) / 100, (seg.depth + 50) / 100, 0.5},
			), palette.Roof))
		}
	}

	if details {
		switch p.Style {
		case "gothic":
			corners := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
			for i, corner := range corners {
				specs = append(specs, colored(block(
					fmt.Sprintf("%s_Spire_%d", p.NamePrefix, i), MeshCone,
					Vec3{mainX + corner[0]*main.width*0.4, mainY + corner[1]*main.depth*0.4, roofZ + 200},
					Vec3{0.5, 0.5, 4},
				), palette.Trim))
			}
		case "art_deco":
			specs = append(specs, colored(block(
				p.NamePrefix+"_Crown", MeshCube,
				Vec3{mainX, mainY, roofZ + 100},
				Vec3{(main.width + 200) / 100, (main.depth + 200) / 100, 1},
			), palette.Trim))
		}
	}

	return BuildingPlan{
		Specs:       specs,
		Style:       p.Style,
		Footprint:   p.Footprint,
		Floors:      p.Floors,
		TotalHeight: totalHeight,
		ColorScheme: scheme,
		Palette:     palette,
		Seed:        p.Seed,
	}
}

func lowerWallName(name string) string {
	switch name {
	case "North":
		return "front"
	case "South":
		return "back"
	case "West":
		return "left"
	case "East":
		return "right"
	}
	return ""
}
