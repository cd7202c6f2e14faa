package life

import "torus-life/internal/core"

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// CountLiveNeighbors counts the live cells in the Moore neighborhood of
// (x, y), wrapping across the edges of v.
func CountLiveNeighbors(v core.View, x, y int) int {
	size := v.Size()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := size.Wrap(x+dx, y+dy)
			if v.Alive(nx, ny) {
				neighbors++
			}
		}
	}
	return neighbors
}
