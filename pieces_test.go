package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryKindHasFourStatesOfFourBlocks(t *testing.T) {
	for kind := PieceKind(0); kind < pieceKindCount; kind++ {
		for rotation := 0; rotation < 4; rotation++ {
			offsets := pieceRotations[kind][rotation]
			seen := make(map[Point]bool, 4)
			for _, offset := range offsets {
				assert.False(t, seen[offset], "%s rotation %d repeats %v", kind, rotation, offset)
				seen[offset] = true
			}
			assert.Len(t, seen, 4)
		}
	}
}

func TestOPieceStatesAreIdentical(t *testing.T) {
	for rotation := 1; rotation < 4; rotation++ {
		assert.Equal(t, pieceRotations[PieceO][0], pieceRotations[PieceO][rotation])
	}
}

func TestISZPiecesAlternateTwoStates(t *testing.T) {
	for _, kind := range []PieceKind{PieceI, PieceS, PieceZ} {
		assert.Equal(t, pieceRotations[kind][0], pieceRotations[kind][2], "%s", kind)
		assert.Equal(t, pieceRotations[kind][1], pieceRotations[kind][3], "%s", kind)
		assert.NotEqual(t, pieceRotations[kind][0], pieceRotations[kind][1], "%s", kind)
	}
}

func TestSpawnAnchor(t *testing.T) {
	piece := newPiece(PieceT)
	assert.Equal(t, Point{X: boardWidth/2 - 1, Y: 0}, piece.Pos)
	assert.Equal(t, 0, piece.Rotation)
	assert.Equal(t, PieceT, piece.Kind)
}

func TestBlocksAddAnchorToOffsets(t *testing.T) {
	piece := Piece{Kind: PieceT, Pos: Point{X: 3, Y: 7}}
	assert.Equal(t, [4]Point{{4, 7}, {3, 8}, {4, 8}, {5, 8}}, piece.Blocks())
}

func TestRotationIndexWrapsModFour(t *testing.T) {
	piece := Piece{Kind: PieceJ, Rotation: 3}
	assert.Equal(t, 0, piece.rotated(true).Rotation)

	piece.Rotation = 0
	assert.Equal(t, 3, piece.rotated(false).Rotation)
	assert.Equal(t, 1, piece.rotated(true).Rotation)
}

func TestMovedLeavesOriginalUntouched(t *testing.T) {
	piece := Piece{Kind: PieceL, Pos: Point{X: 4, Y: 5}}
	moved := piece.moved(2, -1)
	assert.Equal(t, Point{X: 6, Y: 4}, moved.Pos)
	assert.Equal(t, Point{X: 4, Y: 5}, piece.Pos)
}

func TestPieceKindString(t *testing.T) {
	names := map[PieceKind]string{
		PieceI: "I", PieceO: "O", PieceT: "T", PieceS: "S",
		PieceZ: "Z", PieceJ: "J", PieceL: "L",
	}
	for kind, name := range names {
		assert.Equal(t, name, kind.String())
	}
	assert.Equal(t, "?", PieceKind(42).String())
}
