package main

// PieceKind identifies one of the seven tetrominoes.
type PieceKind int

const (
	PieceI PieceKind = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

const pieceKindCount = 7

func (k PieceKind) String() string {
	switch k {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

type Point struct {
	X int
	Y int
}

// pieceRotations holds the literal block offsets for every kind and rotation
// state. The states are lookup data, not computed transforms: I, S and Z only
// have two distinct layouts and O has one, so a generic 90-degree rotation
// would produce different (and wrongly kicked) shapes.
var pieceRotations = [pieceKindCount][4][4]Point{
	// I
	{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	// O
	{
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	// T
	{
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// S
	{
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// Z
	{
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	// J
	{
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	// L
	{
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Piece is the falling tetromino: a kind, a grid anchor and a rotation index.
// It is a value type; the engine replaces it wholesale on every accepted
// move, rotation or spawn.
type Piece struct {
	Kind     PieceKind
	Pos      Point
	Rotation int
}

func newPiece(kind PieceKind) Piece {
	return Piece{
		Kind: kind,
		Pos:  Point{X: boardWidth/2 - 1, Y: 0},
	}
}

// Blocks returns the four absolute grid positions the piece occupies.
func (p Piece) Blocks() [4]Point {
	var blocks [4]Point
	for i, offset := range pieceRotations[p.Kind][p.Rotation%4] {
		blocks[i] = Point{X: p.Pos.X + offset.X, Y: p.Pos.Y + offset.Y}
	}
	return blocks
}

func (p Piece) moved(dx, dy int) Piece {
	p.Pos.X += dx
	p.Pos.Y += dy
	return p
}

func (p Piece) rotated(clockwise bool) Piece {
	if clockwise {
		p.Rotation = (p.Rotation + 1) % 4
	} else {
		p.Rotation = (p.Rotation + 3) % 4
	}
	return p
}
