package procgen

import (
	"strings"
	"testing"
)

func TestPyramidBlockCount(t *testing.T) {
	specs := Pyramid(PyramidParams{BaseSize: 4})

	// Level l holds (base-l) squared blocks.
	want := 16 + 9 + 4 + 1
	if len(specs) != want {
		t.Fatalf("expected %d blocks, got %d", want, len(specs))
	}
	if specs[0].Name != "PyramidBlock_0_0_0" {
		t.Fatalf("unexpected first block name %q", specs[0].Name)
	}
	for _, s := range specs {
		if s.Mesh != MeshCube {
			t.Fatalf("block %s has mesh %q", s.Name, s.Mesh)
		}
	}
}

func TestPyramidDefaults(t *testing.T) {
	specs := Pyramid(PyramidParams{})
	if len(specs) != 9+4+1 {
		t.Fatalf("expected 14 blocks for default base, got %d", len(specs))
	}
}

func TestWallOrientation(t *testing.T) {
	along := Wall(WallParams{Length: 4, Height: 2, Orientation: "x"})
	if len(along) != 8 {
		t.Fatalf("expected 8 blocks, got %d", len(along))
	}
	for _, s := range along {
		if s.Location[1] != 0 {
			t.Fatalf("x-oriented wall block %s has y offset %v", s.Name, s.Location[1])
		}
	}

	across := Wall(WallParams{Length: 4, Height: 2, Orientation: "y"})
	for _, s := range across {
		if s.Location[0] != 0 {
			t.Fatalf("y-oriented wall block %s has x offset %v", s.Name, s.Location[0])
		}
	}
}

func TestTowerCylindrical(t *testing.T) {
	specs := Tower(TowerParams{Height: 3, BaseSize: 4})
	for _, s := range specs {
		if strings.Contains(s.Name, "detail") {
			continue
		}
		if s.Mesh != MeshCylinder {
			t.Fatalf("cylindrical tower block %s has mesh %q", s.Name, s.Mesh)
		}
	}
}

func TestTowerSquareCornerDetails(t *testing.T) {
	specs := Tower(TowerParams{Height: 6, BaseSize: 4, Style: "square"})

	details := 0
	for _, s := range specs {
		if strings.Contains(s.Name, "detail") {
			details++
		}
	}
	// Level 2 qualifies for corner details, level 5 is the top ring.
	if details != 4 {
		t.Fatalf("expected 4 corner details, got %d", details)
	}
}

func TestStaircaseRises(t *testing.T) {
	specs := Staircase(StaircaseParams{Steps: 4})
	if len(specs) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(specs))
	}
	for i := 1; i < len(specs); i++ {
		if specs[i].Location[2] <= specs[i-1].Location[2] {
			t.Fatalf("step %d does not rise above step %d", i, i-1)
		}
	}
}

func TestArchSegmentCount(t *testing.T) {
	specs := Arch(ArchParams{Segments: 8})
	if len(specs) != 9 {
		t.Fatalf("expected 9 blocks for 8 segments, got %d", len(specs))
	}
	for _, s := range specs {
		if s.Location[2] < 0 {
			t.Fatalf("arch block %s dips below the base plane", s.Name)
		}
	}
}

func TestObstacleCourseSpacing(t *testing.T) {
	specs := ObstacleCourse(ObstacleCourseParams{Checkpoints: 3, Spacing: 400})
	if len(specs) != 3 {
		t.Fatalf("expected 3 obstacles, got %d", len(specs))
	}
	for i, s := range specs {
		if s.Location[0] != float64(i)*400 {
			t.Fatalf("obstacle %d at x=%v, want %v", i, s.Location[0], float64(i)*400)
		}
	}
}
