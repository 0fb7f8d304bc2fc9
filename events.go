package main

// EventKind tags the discrete outcomes an engine operation can produce.
type EventKind int

const (
	EventPieceMoved EventKind = iota
	EventPieceRotated
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventPaused
	EventUnpaused
	EventGameRestarted
	EventGameOver
)

// Event is a tagged value describing one thing that happened inside the
// engine. Lines is set for EventLinesCleared, Level for EventLevelUp.
type Event struct {
	Kind  EventKind
	Lines int
	Level int
}

func (k EventKind) String() string {
	switch k {
	case EventPieceMoved:
		return "PieceMoved"
	case EventPieceRotated:
		return "PieceRotated"
	case EventPieceLocked:
		return "PieceLocked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventPaused:
		return "Paused"
	case EventUnpaused:
		return "Unpaused"
	case EventGameRestarted:
		return "GameRestarted"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
