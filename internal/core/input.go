package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - paddle left
	ActionRight          // D, Right arrow - paddle right
	ActionRestart        // R key - start a fresh session
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Actions holds one-shot actions; Intent is the held paddle direction.
type InputFrame struct {
	Actions map[Action]bool
	Intent  Direction
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all one-shot actions for the next frame. Intent is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Direction is the horizontal paddle intent: -1, 0 or +1.
type Direction int

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// PaddleIntent turns key down/up events into a held-key direction.
// Press sets the direction; Release clears it only if the paddle is still
// heading that way, so releasing Left while Right is held keeps Right.
//
// Terminals do not report key releases. When releaseAfter > 0, Tick
// synthesizes a release for a key that has not been pressed (or repeated)
// for that many ticks.
type PaddleIntent struct {
	dir          Direction
	releaseAfter int
	idle         int
}

// NewPaddleIntent creates a tracker. releaseAfter <= 0 disables the
// synthetic release and relies on explicit Release calls.
func NewPaddleIntent(releaseAfter int) *PaddleIntent {
	return &PaddleIntent{releaseAfter: releaseAfter}
}

// Press registers a key-down (or auto-repeat) for the given action.
func (p *PaddleIntent) Press(a Action) {
	switch a {
	case ActionLeft:
		p.dir = DirLeft
	case ActionRight:
		p.dir = DirRight
	default:
		return
	}
	p.idle = 0
}

// Release registers a key-up for the given action.
func (p *PaddleIntent) Release(a Action) {
	switch a {
	case ActionLeft:
		if p.dir == DirLeft {
			p.dir = DirNone
		}
	case ActionRight:
		if p.dir == DirRight {
			p.dir = DirNone
		}
	}
}

// Tick advances the synthetic release timer by one frame.
func (p *PaddleIntent) Tick() {
	if p.releaseAfter <= 0 || p.dir == DirNone {
		return
	}
	p.idle++
	if p.idle >= p.releaseAfter {
		p.dir = DirNone
		p.idle = 0
	}
}

// Direction returns the current intent.
func (p *PaddleIntent) Direction() Direction {
	return p.dir
}

// Reset clears any held direction.
func (p *PaddleIntent) Reset() {
	p.dir = DirNone
	p.idle = 0
}
