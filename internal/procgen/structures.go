package procgen

import (
	"fmt"
	"math"
)

// PyramidParams configures a stepped pyramid of cubes.
type PyramidParams struct {
	BaseSize   int
	BlockSize  float64
	Location   Vec3
	NamePrefix string
	Mesh       string
}

func (p PyramidParams) withDefaults() PyramidParams {
	if p.BaseSize <= 0 {
		p.BaseSize = 3
	}
	if p.BlockSize <= 0 {
		p.BlockSize = 100
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "PyramidBlock"
	}
	if p.Mesh == "" {
		p.Mesh = MeshCube
	}
	return p
}

// Pyramid plans a square stepped pyramid. Level l is a centered
// (base-l) x (base-l) layer of blocks.
func Pyramid(p PyramidParams) []SpawnSpec {
	p = p.withDefaults()
	scale := p.BlockSize / 100
	var specs []SpawnSpec
	for level := 0; level < p.BaseSize; level++ {
		count := p.BaseSize - level
		for x := 0; x < count; x++ {
			for y := 0; y < count; y++ {
				loc := Vec3{
					p.Location[0] + (float64(x)-float64(count-1)/2)*p.BlockSize,
					p.Location[1] + (float64(y)-float64(count-1)/2)*p.BlockSize,
					p.Location[2] + float64(level)*p.BlockSize,
				}
				name := fmt.Sprintf("%s_%d_%d_%d", p.NamePrefix, level, x, y)
				specs = append(specs, block(name, p.Mesh, loc, uniform(scale)))
			}
		}
	}
	return specs
}

// WallParams configures a flat wall of cubes.
type WallParams struct {
	Length      int
	Height      int
	BlockSize   float64
	Location    Vec3
	Orientation string // "x" or "y"
	NamePrefix  string
	Mesh        string
}

func (p WallParams) withDefaults() WallParams {
	if p.Length <= 0 {
		p.Length = 5
	}
	if p.Height <= 0 {
		p.Height = 2
	}
	if p.BlockSize <= 0 {
		p.BlockSize = 100
	}
	if p.Orientation == "" {
		p.Orientation = "x"
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "WallBlock"
	}
	if p.Mesh == "" {
		p.Mesh = MeshCube
	}
	return p
}

// Wall plans a wall of stacked cube rows along the x or y axis.
func Wall(p WallParams) []SpawnSpec {
	p = p.withDefaults()
	scale := p.BlockSize / 100
	var specs []SpawnSpec
	for h := 0; h < p.Height; h++ {
		for i := 0; i < p.Length; i++ {
			loc := Vec3{p.Location[0], p.Location[1], p.Location[2] + float64(h)*p.BlockSize}
			if p.Orientation == "x" {
				loc[0] += float64(i) * p.BlockSize
			} else {
				loc[1] += float64(i) * p.BlockSize
			}
			name := fmt.Sprintf("%s_%d_%d", p.NamePrefix, h, i)
			specs = append(specs, block(name, p.Mesh, loc, uniform(scale)))
		}
	}
	return specs
}

// Tower styles.
const (
	TowerCylindrical = "cylindrical"
	TowerSquare      = "square"
	TowerTapered     = "tapered"
)

// TowerParams configures a multi-level tower.
type TowerParams struct {
	Height     int
	BaseSize   int
	BlockSize  float64
	Location   Vec3
	NamePrefix string
	Mesh       string
	Style      string
}

func (p TowerParams) withDefaults() TowerParams {
	if p.Height <= 0 {
		p.Height = 10
	}
	if p.BaseSize <= 0 {
		p.BaseSize = 4
	}
	if p.BlockSize <= 0 {
		p.BlockSize = 100
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "TowerBlock"
	}
	if p.Mesh == "" {
		p.Mesh = MeshCube
	}
	if p.Style == "" {
		p.Style = TowerCylindrical
	}
	return p
}

// Tower plans a tower in one of three styles. Cylindrical levels are rings
// of max(8, circumference/block) blocks; tapered towers lose one block of
// width every two levels; every third level gains cylinder corner details.
func Tower(p TowerParams) []SpawnSpec {
	p = p.withDefaults()
	scale := p.BlockSize / 100
	var specs []SpawnSpec

	for level := 0; level < p.Height; level++ {
		levelZ := p.Location[2] + float64(level)*p.BlockSize

		switch p.Style {
		case TowerCylindrical:
			radius := float64(p.BaseSize) / 2 * p.BlockSize
			circumference := 2 * math.Pi * radius
			numBlocks := int(circumference / p.BlockSize)
			if numBlocks < 8 {
				numBlocks = 8
			}
			for i := 0; i < numBlocks; i++ {
				angle := 2 * math.Pi * float64(i) / float64(numBlocks)
				loc := Vec3{
					p.Location[0] + radius*math.Cos(angle),
					p.Location[1] + radius*math.Sin(angle),
					levelZ,
				}
				name := fmt.Sprintf("%s_%d_%d", p.NamePrefix, level, i)
				specs = append(specs, block(name, p.Mesh, loc, uniform(scale)))
			}
		case TowerTapered:
			size := p.BaseSize - level/2
			if size < 1 {
				size = 1
			}
			specs = append(specs, squareTowerLevel(p, level, size, levelZ, scale)...)
		default:
			specs = append(specs, squareTowerLevel(p, level, p.BaseSize, levelZ, scale)...)
		}

		if level%3 == 2 && level < p.Height-1 {
			for corner := 0; corner < 4; corner++ {
				angle := float64(corner) * math.Pi / 2
				offset := (float64(p.BaseSize)/2 + 0.5) * p.BlockSize
				loc := Vec3{
					p.Location[0] + offset*math.Cos(angle),
					p.Location[1] + offset*math.Sin(angle),
					levelZ,
				}
				name := fmt.Sprintf("%s_%d_detail_%d", p.NamePrefix, level, corner)
				specs = append(specs, block(name, MeshCylinder, loc, uniform(scale*0.7)))
			}
		}
	}
	return specs
}

func squareTowerLevel(p TowerParams, level, size int, levelZ, scale float64) []SpawnSpec {
	half := float64(size) / 2
	sides := []string{"front", "right", "back", "left"}
	var specs []SpawnSpec
	for sideIdx, side := range sides {
		for i := 0; i < size; i++ {
			var x, y float64
			switch sideIdx {
			case 0:
				x = p.Location[0] + (float64(i)-half+0.5)*p.BlockSize
				y = p.Location[1] - half*p.BlockSize
			case 1:
				x = p.Location[0] + half*p.BlockSize
				y = p.Location[1] + (float64(i)-half+0.5)*p.BlockSize
			case 2:
				x = p.Location[0] + (half-float64(i)-0.5)*p.BlockSize
				y = p.Location[1] + half*p.BlockSize
			default:
				x = p.Location[0] - half*p.BlockSize
				y = p.Location[1] + (half-float64(i)-0.5)*p.BlockSize
			}
			name := fmt.Sprintf("%s_%d_%s_%d", p.NamePrefix, level, side, i)
			specs = append(specs, block(name, p.Mesh, Vec3{x, y, levelZ}, uniform(scale)))
		}
	}
	return specs
}

// StaircaseParams configures a straight staircase.
type StaircaseParams struct {
	Steps      int
	StepSize   Vec3
	Location   Vec3
	NamePrefix string
	Mesh       string
}

func (p StaircaseParams) withDefaults() StaircaseParams {
	if p.Steps <= 0 {
		p.Steps = 5
	}
	if p.StepSize == (Vec3{}) {
		p.StepSize = Vec3{100, 100, 50}
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "Stair"
	}
	if p.Mesh == "" {
		p.Mesh = MeshCube
	}
	return p
}

// Staircase plans evenly spaced steps rising along the x axis.
func Staircase(p StaircaseParams) []SpawnSpec {
	p = p.withDefaults()
	sx, sy, sz := p.StepSize[0], p.StepSize[1], p.StepSize[2]
	var specs []SpawnSpec
	for i := 0; i < p.Steps; i++ {
		loc := Vec3{
			p.Location[0] + float64(i)*sx,
			p.Location[1],
			p.Location[2] + float64(i)*sz,
		}
		name := fmt.Sprintf("%s_%d", p.NamePrefix, i)
		specs = append(specs, block(name, p.Mesh, loc, Vec3{sx / 100, sy / 100, sz / 100}))
	}
	return specs
}

// ArchParams configures a semicircular arch in the XZ plane.
type ArchParams struct {
	Radius     float64
	Segments   int
	Location   Vec3
	NamePrefix string
	Mesh       string
}

func (p ArchParams) withDefaults() ArchParams {
	if p.Radius <= 0 {
		p.Radius = 300
	}
	if p.Segments <= 0 {
		p.Segments = 6
	}
	if p.NamePrefix == "" {
		p.NamePrefix = "ArchBlock"
	}
	if p.Mesh == "" {
		p.Mesh = MeshCube
	}
	return p
}

// Arch plans segments+1 blocks along a semicircle.
func Arch(p ArchParams) []SpawnSpec {
	p = p.withDefaults()
	angleStep := math.Pi / float64(p.Segments)
	scale := p.Radius / 300 / 2
	var specs []SpawnSpec
	for i := 0; i <= p.Segments; i++ {
		theta := angleStep * float64(i)
		loc := Vec3{
			p.Location[0] + p.Radius*math.Cos(theta),
			p.Location[1],
			p.Location[2] + p.Radius*math.Sin(theta),
		}
		name := fmt.Sprintf("%s_%d", p.NamePrefix, i)
		specs = append(specs, block(name, p.Mesh, loc, uniform(scale)))
	}
	return specs
}

// ObstacleCourseParams configures a row of pillar checkpoints.
type ObstacleCourseParams struct {
	Checkpoints int
	Spacing     float64
	Location    Vec3
}

func (p ObstacleCourseParams) withDefaults() ObstacleCourseParams {
	if p.Checkpoints <= 0 {
		p.Checkpoints = 5
	}
	if p.Spacing <= 0 {
		p.Spacing = 500
	}
	return p
}

// ObstacleCourse plans cylinder pillars spaced along the x axis.
func ObstacleCourse(p ObstacleCourseParams) []SpawnSpec {
	p = p.withDefaults()
	var specs []SpawnSpec
	for i := 0; i < p.Checkpoints; i++ {
		loc := Vec3{p.Location[0] + float64(i)*p.Spacing, p.Location[1], p.Location[2]}
		specs = append(specs, SpawnSpec{
			Name:     fmt.Sprintf("Obstacle_%d", i),
			Location: loc,
			Mesh:     MeshCylinder,
		})
	}
	return specs
}
