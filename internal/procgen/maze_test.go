package procgen

import (
	"math/rand"
	"testing"
)

// mazeSolvable walks the carved grid from the entrance gap to the exit gap.
func mazeSolvable(grid [][]bool) bool {
	rows := len(grid)
	cols := len(grid[0])
	start := [2]int{1, 0}
	goal := [2]int{rows - 2, cols - 1}

	seen := make(map[[2]int]bool)
	queue := [][2]int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return true
		}
		if seen[cur] {
			continue
		}
		seen[cur] = true
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if next[0] < 0 || next[0] >= rows || next[1] < 0 || next[1] >= cols {
				continue
			}
			if grid[next[0]][next[1]] || seen[next] {
				continue
			}
			queue = append(queue, next)
		}
	}
	return false
}

func TestMazeSolvable(t *testing.T) {
	for _, seed := range []int64{1, 42, 99} {
		plan := Maze(MazeParams{Rows: 6, Cols: 6, Rand: rand.New(rand.NewSource(seed))})
		if !mazeSolvable(plan.Grid) {
			t.Fatalf("maze with seed %d has no path from entrance to exit", seed)
		}
	}
}

func TestMazeDeterministic(t *testing.T) {
	a := Maze(MazeParams{Rows: 5, Cols: 7, Rand: rand.New(rand.NewSource(3))})
	b := Maze(MazeParams{Rows: 5, Cols: 7, Rand: rand.New(rand.NewSource(3))})

	if a.WallCount != b.WallCount {
		t.Fatalf("wall counts differ: %d vs %d", a.WallCount, b.WallCount)
	}
	if len(a.Specs) != len(b.Specs) {
		t.Fatalf("spec counts differ: %d vs %d", len(a.Specs), len(b.Specs))
	}
	for i := range a.Specs {
		if a.Specs[i].Name != b.Specs[i].Name || a.Specs[i].Location != b.Specs[i].Location {
			t.Fatalf("spec %d differs between identical seeds", i)
		}
	}
}

func TestMazeMarkers(t *testing.T) {
	plan := Maze(MazeParams{Rand: rand.New(rand.NewSource(1))})

	last := plan.Specs[len(plan.Specs)-1]
	if last.Name != "Maze_Exit" || last.Mesh != MeshSphere {
		t.Fatalf("unexpected exit marker %q (%s)", last.Name, last.Mesh)
	}
	entrance := plan.Specs[len(plan.Specs)-2]
	if entrance.Name != "Maze_Entrance" || entrance.Mesh != MeshCylinder {
		t.Fatalf("unexpected entrance marker %q (%s)", entrance.Name, entrance.Mesh)
	}
	if entrance.Location[0] >= last.Location[0] {
		t.Fatal("entrance marker should sit on the left side, exit on the right")
	}
}

func TestMazeWallHeightStacks(t *testing.T) {
	tall := Maze(MazeParams{Rows: 4, Cols: 4, WallHeight: 2, Rand: rand.New(rand.NewSource(5))})
	if tall.WallCount%2 != 0 {
		t.Fatalf("wall count %d is not a multiple of the wall height", tall.WallCount)
	}
}
