package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceProviderCycles(t *testing.T) {
	provider := NewSequenceProvider([]PieceKind{PieceI, PieceO, PieceT})
	var drawn []PieceKind
	for i := 0; i < 7; i++ {
		drawn = append(drawn, provider.NextPiece())
	}
	assert.Equal(t, []PieceKind{PieceI, PieceO, PieceT, PieceI, PieceO, PieceT, PieceI}, drawn)
}

func TestSequenceProviderSingleKind(t *testing.T) {
	provider := NewSequenceProvider([]PieceKind{PieceZ})
	for i := 0; i < 5; i++ {
		assert.Equal(t, PieceZ, provider.NextPiece())
	}
}

func TestRandomProviderStaysInRange(t *testing.T) {
	provider := NewRandomProvider()
	for i := 0; i < 200; i++ {
		kind := provider.NextPiece()
		assert.GreaterOrEqual(t, int(kind), 0)
		assert.Less(t, int(kind), pieceKindCount)
	}
}
