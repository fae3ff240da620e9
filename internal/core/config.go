package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the terminal and pace the simulation.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Frame     uint64 // Simulation steps taken
	Remaining int    // Active blocks left
	BallLost  bool   // Ball is frozen; the session continues but nothing moves
	Cleared   bool   // Every block is destroyed
	Paused    bool   // Whether the game is paused
}

// EventKind classifies something that happened during a step.
type EventKind int

const (
	EventBlockDestroyed EventKind = iota
	EventWallBounce
	EventPaddleBounce
	EventBallLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventBallLost:
		return "ball_lost"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence in a step.
// Index is the block index for EventBlockDestroyed and -1 otherwise.
type Event struct {
	Kind  EventKind
	Index int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Renderable is one rectangle to draw, in playfield pixels.
type Renderable struct {
	Rect  Rect
	Color Color
}
