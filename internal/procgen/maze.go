package procgen

import (
	"fmt"
	"math/rand"
)

// MazeParams configures a solvable maze of stacked cube walls.
type MazeParams struct {
	Rows       int
	Cols       int
	CellSize   float64
	WallHeight int
	Location   Vec3
	// Rand drives the carve order. Nil means a randomly seeded source.
	Rand *rand.Rand
}

func (p MazeParams) withDefaults() MazeParams {
	if p.Rows <= 0 {
		p.Rows = 8
	}
	if p.Cols <= 0 {
		p.Cols = 8
	}
	if p.CellSize <= 0 {
		p.CellSize = 300
	}
	if p.WallHeight <= 0 {
		p.WallHeight = 3
	}
	return p
}

// MazePlan is a planned maze plus its wall block count.
type MazePlan struct {
	Specs     []SpawnSpec
	WallCount int
	// Grid is the carved layout: true cells are walls. Dimensions are
	// (2*rows+1) x (2*cols+1).
	Grid [][]bool
}

// Maze plans a backtracker-carved maze with an entrance on the left edge
// and an exit on the right, plus cylinder and sphere markers outside them.
func Maze(p MazeParams) MazePlan {
	p = p.withDefaults()
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	grid := carveMaze(p.Rows, p.Cols, rng)
	grid[1][0] = false
	grid[p.Rows*2-1][p.Cols*2] = false

	gridH := p.Rows*2 + 1
	gridW := p.Cols*2 + 1

	var specs []SpawnSpec
	wallCount := 0
	for r := 0; r < gridH; r++ {
		for c := 0; c < gridW; c++ {
			if !grid[r][c] {
				continue
			}
			for h := 0; h < p.WallHeight; h++ {
				loc := Vec3{
					p.Location[0] + (float64(c)-float64(gridW)/2)*p.CellSize,
					p.Location[1] + (float64(r)-float64(gridH)/2)*p.CellSize,
					p.Location[2] + float64(h)*p.CellSize,
				}
				name := fmt.Sprintf("Maze_Wall_%d_%d_%d", r, c, h)
				specs = append(specs, block(name, MeshCube, loc, uniform(p.CellSize/100)))
				wallCount++
			}
		}
	}

	specs = append(specs, block("Maze_Entrance", MeshCylinder,
		Vec3{
			p.Location[0] - float64(gridW)/2*p.CellSize - p.CellSize,
			p.Location[1] + (-float64(gridH)/2+1)*p.CellSize,
			p.Location[2] + p.CellSize,
		},
		uniform(0.5)))
	specs = append(specs, block("Maze_Exit", MeshSphere,
		Vec3{
			p.Location[0] + float64(gridW)/2*p.CellSize + p.CellSize,
			p.Location[1] + (-float64(gridH)/2+float64(p.Rows*2)-1)*p.CellSize,
			p.Location[2] + p.CellSize,
		},
		uniform(0.5)))

	return MazePlan{Specs: specs, WallCount: wallCount, Grid: grid}
}

// carveMaze runs an iterative depth-first carve over a (2r+1)x(2c+1) grid.
// Cells at odd coordinates are rooms, even coordinates are walls between
// them. The iterative stack avoids recursion limits on large mazes.
func carveMaze(rows, cols int, rng *rand.Rand) [][]bool {
	grid := make([][]bool, rows*2+1)
	for i := range grid {
		grid[i] = make([]bool, cols*2+1)
		for j := range grid[i] {
			grid[i][j] = true
		}
	}

	type cell struct{ row, col int }
	stack := []cell{{0, 0}}
	grid[1][1] = false

	dirs := [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		order := rng.Perm(4)
		advanced := false
		for _, d := range order {
			dr, dc := dirs[d][0], dirs[d][1]
			nr, nc := cur.row+dr, cur.col+dc
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if !grid[nr*2+1][nc*2+1] {
				continue
			}
			grid[cur.row*2+1+dr][cur.col*2+1+dc] = false
			grid[nr*2+1][nc*2+1] = false
			stack = append(stack, cell{nr, nc})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
	return grid
}
