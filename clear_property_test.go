package main

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based tests for line clearing. Whatever the traversal order,
// clearing must end in the "collapse" state: incomplete rows keep their
// relative order and slide to the bottom, with fresh empty rows on top.

const fullRowMask = 1<<boardWidth - 1

func gridFromMasks(masks []int) [][]Cell {
	grid := make([][]Cell, boardHeight)
	for y, mask := range masks {
		grid[y] = make([]Cell, boardWidth)
		for x := 0; x < boardWidth; x++ {
			if mask>>x&1 == 1 {
				grid[y][x] = CellFor(PieceKind(x % pieceKindCount))
			}
		}
	}
	return grid
}

func collapsedGrid(masks []int) [][]Cell {
	kept := make([]int, 0, boardHeight)
	for _, mask := range masks {
		if mask != fullRowMask {
			kept = append(kept, mask)
		}
	}
	padded := make([]int, boardHeight-len(kept), boardHeight)
	return gridFromMasks(append(padded, kept...))
}

func TestClearLinesMatchesCollapseModel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	rowMasks := gen.SliceOfN(boardHeight, gen.IntRange(0, fullRowMask))
	forceFull := gen.IntRange(0, 1<<boardHeight-1)

	properties.Property("end state equals collapse by count", prop.ForAll(
		func(masks []int, full int) bool {
			for y := range masks {
				if full>>y&1 == 1 {
					masks[y] = fullRowMask
				}
			}
			g, _ := newTestGame()
			g.Grid = gridFromMasks(masks)

			expectedCount := 0
			for _, mask := range masks {
				if mask == fullRowMask {
					expectedCount++
				}
			}
			expectedGrid := collapsedGrid(masks)

			if g.ClearLines() != expectedCount {
				return false
			}
			for y := 0; y < boardHeight; y++ {
				for x := 0; x < boardWidth; x++ {
					if g.Grid[y][x] != expectedGrid[y][x] {
						return false
					}
				}
			}
			return true
		},
		rowMasks,
		forceFull,
	))

	properties.Property("filled cells shrink by exactly width per cleared row", prop.ForAll(
		func(masks []int, full int) bool {
			for y := range masks {
				if full>>y&1 == 1 {
					masks[y] = fullRowMask
				}
			}
			g, _ := newTestGame()
			g.Grid = gridFromMasks(masks)

			before := g.totalFilledCells()
			cleared := g.ClearLines()
			return g.totalFilledCells() == before-cleared*boardWidth
		},
		rowMasks,
		forceFull,
	))

	properties.TestingRun(t)
}
