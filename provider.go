package main

import (
	"math/rand"
	"time"
)

// PieceProvider supplies the kinds of upcoming pieces. The engine owns
// exactly one provider for its whole lifetime, including across Restart.
type PieceProvider interface {
	NextPiece() PieceKind
}

// RandomProvider draws kinds uniformly at random.
type RandomProvider struct {
	rng *rand.Rand
}

func NewRandomProvider() *RandomProvider {
	return &RandomProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomProvider) NextPiece() PieceKind {
	return PieceKind(p.rng.Intn(pieceKindCount))
}

// SequenceProvider cycles through a fixed list of kinds, wrapping around.
// Used to make game runs reproducible.
type SequenceProvider struct {
	kinds []PieceKind
	index int
}

func NewSequenceProvider(kinds []PieceKind) *SequenceProvider {
	return &SequenceProvider{kinds: kinds}
}

func (p *SequenceProvider) NextPiece() PieceKind {
	kind := p.kinds[p.index%len(p.kinds)]
	p.index++
	return kind
}
