package main

import (
	"time"
)

const (
	boardWidth   = 10
	boardHeight  = 20
	previewCount = 4

	linesPerLevel = 10

	baseTickMs      = 800
	minTickMs       = 100
	speedStepPerLvl = 50

	scoreSingle = 100
	scoreDouble = 300
	scoreTriple = 500
	scoreTetris = 800
)

// Cell is one board square: CellEmpty or the kind of the piece that filled
// it. Appearance is left to the renderer.
type Cell int8

const CellEmpty Cell = 0

func CellFor(kind PieceKind) Cell {
	return Cell(kind) + 1
}

// Kind reports the originating piece kind of a filled cell.
func (c Cell) Kind() PieceKind {
	return PieceKind(c - 1)
}

// GameState is the engine lifecycle: Playing, Paused or GameOver.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// wallKicks are the positional nudges tried, in order, when a rotation is
// blocked in place. The first offset that yields a valid position wins. This
// is a fixed heuristic, not a standard kick table.
var wallKicks = [5]Point{{1, 0}, {-1, 0}, {0, -1}, {2, 0}, {-2, 0}}

// Game is the whole engine: board, falling piece, preview queue, scoring and
// lifecycle. It is single-threaded; one driving loop calls its operations and
// drains its events in strict sequence.
type Game struct {
	Grid      [][]Cell
	Current   Piece
	Preview   []PieceKind
	Score     int
	Lines     int
	Level     int
	HighScore int
	State     GameState

	provider PieceProvider
	store    HighScoreStore
	events   []Event
}

// NewGame builds a fresh game with a uniform-random provider and the
// file-backed high-score store.
func NewGame() *Game {
	return NewGameWith(NewRandomProvider(), NewFileHighScoreStore())
}

// NewGameWith builds a fresh game around the given piece provider and
// high-score store. The provider is consulted four times to fill the preview
// queue and once more for the first falling piece.
func NewGameWith(provider PieceProvider, store HighScoreStore) *Game {
	grid := make([][]Cell, boardHeight)
	for y := range grid {
		grid[y] = make([]Cell, boardWidth)
	}
	preview := make([]PieceKind, 0, previewCount)
	for i := 0; i < previewCount; i++ {
		preview = append(preview, provider.NextPiece())
	}
	return &Game{
		Grid:      grid,
		Current:   newPiece(provider.NextPiece()),
		Preview:   preview,
		Level:     1,
		HighScore: store.Load(),
		State:     StatePlaying,
		provider:  provider,
		store:     store,
	}
}

// IsValidPosition reports whether every block of the piece is on the board
// and over an empty cell. It is the single bounds check; all board writes go
// through positions this predicate has accepted.
func (g *Game) IsValidPosition(p Piece) bool {
	for _, block := range p.Blocks() {
		if block.X < 0 || block.X >= boardWidth {
			return false
		}
		if block.Y < 0 || block.Y >= boardHeight {
			return false
		}
		if g.Grid[block.Y][block.X] != CellEmpty {
			return false
		}
	}
	return true
}

// Move translates the falling piece by (dx, dy). It reports false and leaves
// all state untouched when the game is not playing or the target position is
// invalid.
func (g *Game) Move(dx, dy int) bool {
	if g.State != StatePlaying {
		return false
	}
	moved := g.Current.moved(dx, dy)
	if !g.IsValidPosition(moved) {
		return false
	}
	g.Current = moved
	g.events = append(g.events, Event{Kind: EventPieceMoved})
	return true
}

// Rotate turns the falling piece a quarter turn. If the in-place rotation is
// blocked it retries with each wall kick in order and commits the first valid
// position. On total failure nothing changes and no event is recorded.
func (g *Game) Rotate(clockwise bool) bool {
	if g.State != StatePlaying {
		return false
	}
	rotated := g.Current.rotated(clockwise)
	if g.IsValidPosition(rotated) {
		g.Current = rotated
		g.events = append(g.events, Event{Kind: EventPieceRotated})
		return true
	}
	for _, kick := range wallKicks {
		kicked := rotated.moved(kick.X, kick.Y)
		if g.IsValidPosition(kicked) {
			g.Current = kicked
			g.events = append(g.events, Event{Kind: EventPieceRotated})
			return true
		}
	}
	return false
}

// SoftDrop moves the piece one row down, locking it in place when it cannot
// fall any further.
func (g *Game) SoftDrop() {
	if g.State != StatePlaying {
		return
	}
	if !g.Move(0, 1) {
		g.lockAndSpawn()
	}
}

// HardDrop sends the piece straight to the floor and locks it. The PieceMoved
// events generated by the descent are discarded so the drained stream shows
// only the terminal lock sequence.
func (g *Game) HardDrop() {
	if g.State != StatePlaying {
		return
	}
	mark := len(g.events)
	for g.Move(0, 1) {
	}
	g.events = g.events[:mark]
	g.lockAndSpawn()
}

// Tick advances gravity by one step. The cadence is owned by the caller; see
// TickDuration.
func (g *Game) Tick() {
	if g.State != StatePlaying {
		return
	}
	if !g.Move(0, 1) {
		g.lockAndSpawn()
	}
}

func (g *Game) lockAndSpawn() {
	g.lockPiece()
	if lines := g.ClearLines(); lines > 0 {
		g.addScore(lines)
	}
	g.spawnNext()
}

func (g *Game) lockPiece() {
	for _, block := range g.Current.Blocks() {
		g.Grid[block.Y][block.X] = CellFor(g.Current.Kind)
	}
	g.events = append(g.events, Event{Kind: EventPieceLocked})
}

// ClearLines removes every complete row and compacts the rows above it.
// The scan runs top to bottom and re-examines the same index after a removal,
// since a new row has shifted into it; that way any pattern of complete rows,
// contiguous or not, is resolved in a single pass.
func (g *Game) ClearLines() int {
	cleared := 0
	y := 0
	for y < boardHeight {
		if !g.rowComplete(y) {
			y++
			continue
		}
		for pull := y; pull > 0; pull-- {
			copy(g.Grid[pull], g.Grid[pull-1])
		}
		for x := 0; x < boardWidth; x++ {
			g.Grid[0][x] = CellEmpty
		}
		cleared++
	}
	if cleared > 0 {
		g.events = append(g.events, Event{Kind: EventLinesCleared, Lines: cleared})
	}
	return cleared
}

func (g *Game) rowComplete(y int) bool {
	for x := 0; x < boardWidth; x++ {
		if g.Grid[y][x] == CellEmpty {
			return false
		}
	}
	return true
}

// addScore applies the line-clear award. The multiplier is the level before
// any level-up this clear triggers, and at most one LevelUp event is recorded
// even when the clear crosses a threshold.
func (g *Game) addScore(lines int) {
	base := 0
	switch lines {
	case 1:
		base = scoreSingle
	case 2:
		base = scoreDouble
	case 3:
		base = scoreTriple
	case 4:
		base = scoreTetris
	}
	g.Score += base * g.Level
	g.Lines += lines

	newLevel := g.Lines/linesPerLevel + 1
	if newLevel > g.Level {
		g.Level = newLevel
		g.events = append(g.events, Event{Kind: EventLevelUp, Level: newLevel})
	}
}

// spawnNext activates the front of the preview queue as the falling piece and
// refills the queue from the provider. A spawn into an occupied region ends
// the game and persists the high score, best effort.
func (g *Game) spawnNext() {
	next := g.Preview[0]
	g.Preview = append(g.Preview[1:], g.provider.NextPiece())
	g.Current = newPiece(next)

	if !g.IsValidPosition(g.Current) {
		g.State = StateGameOver
		g.events = append(g.events, Event{Kind: EventGameOver})
		if g.Score > g.HighScore {
			g.HighScore = g.Score
			if err := g.store.Save(g.HighScore); err != nil {
				DebugLogf("high score save failed: %v", err)
			}
		}
	}
}

// TogglePause flips between Playing and Paused. It does nothing once the game
// is over.
func (g *Game) TogglePause() {
	switch g.State {
	case StatePlaying:
		g.State = StatePaused
		g.events = append(g.events, Event{Kind: EventPaused})
	case StatePaused:
		g.State = StatePlaying
		g.events = append(g.events, Event{Kind: EventUnpaused})
	}
}

// Restart wipes the board, score and pending events and starts a new run with
// the same provider and store. The in-memory high score is kept.
func (g *Game) Restart() {
	for y := range g.Grid {
		for x := range g.Grid[y] {
			g.Grid[y][x] = CellEmpty
		}
	}
	g.Score = 0
	g.Lines = 0
	g.Level = 1
	g.State = StatePlaying
	g.events = g.events[:0]

	g.Preview = g.Preview[:0]
	for i := 0; i < previewCount; i++ {
		g.Preview = append(g.Preview, g.provider.NextPiece())
	}
	g.Current = newPiece(g.provider.NextPiece())
	g.events = append(g.events, Event{Kind: EventGameRestarted})
}

// TickDuration is the gravity interval for the current level. The driving
// loop schedules its own timer from this value.
func (g *Game) TickDuration() time.Duration {
	ms := baseTickMs - (g.Level-1)*speedStepPerLvl
	if ms < minTickMs {
		ms = minTickMs
	}
	return time.Duration(ms) * time.Millisecond
}

// RenderGrid returns a copy of the board with the falling piece overlaid.
// Pure; safe to call in any state.
func (g *Game) RenderGrid() [][]Cell {
	visual := make([][]Cell, boardHeight)
	for y := range g.Grid {
		visual[y] = make([]Cell, boardWidth)
		copy(visual[y], g.Grid[y])
	}
	for _, block := range g.Current.Blocks() {
		if block.Y >= 0 && block.Y < boardHeight && block.X >= 0 && block.X < boardWidth {
			visual[block.Y][block.X] = CellFor(g.Current.Kind)
		}
	}
	return visual
}

// GhostPiece projects the falling piece to where a hard drop would land it.
// Pure; used by the renderer for the drop shadow.
func (g *Game) GhostPiece() Piece {
	ghost := g.Current
	for {
		next := ghost.moved(0, 1)
		if !g.IsValidPosition(next) {
			return ghost
		}
		ghost = next
	}
}

// TakeEvents drains and returns every event recorded since the previous
// drain.
func (g *Game) TakeEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) totalFilledCells() int {
	count := 0
	for y := range g.Grid {
		for x := range g.Grid[y] {
			if g.Grid[y][x] != CellEmpty {
				count++
			}
		}
	}
	return count
}
