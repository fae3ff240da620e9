package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Game adapts a Simulation to the registry.Game interface used by the
// platform: pause handling, event reporting and renderables.
type Game struct {
	id     string
	title  string
	mode   ResolveMode
	cfg    config.ArkanoidConfig
	sim    *Simulation
	paused bool
}

// New creates the standard game, resolving blocks once per movement axis.
func New(cfg config.ArkanoidConfig) *Game {
	return &Game{id: "arkanoid", title: "Arkanoid", mode: ResolvePerAxis, cfg: cfg}
}

// NewClassic creates the variant that resolves blocks in a single combined
// pass per frame.
func NewClassic(cfg config.ArkanoidConfig) *Game {
	return &Game{id: "arkanoid_classic", title: "Arkanoid (single pass)", mode: ResolveCombined, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a fresh session with a newly laid out level.
func (g *Game) Reset(_ core.RuntimeConfig) error {
	sim, err := NewSimulation(g.cfg, g.mode)
	if err != nil {
		return err
	}
	g.sim = sim
	g.paused = false
	return nil
}

// Playfield returns the simulated area in pixels.
func (g *Game) Playfield() core.Rect {
	return core.NewRect(0, 0, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	report := g.sim.Step(in.Intent)
	return core.StepResult{
		State:  g.State(),
		Events: reportEvents(report),
	}
}

// reportEvents flattens a StepReport into platform events.
func reportEvents(r StepReport) []core.Event {
	var events []core.Event
	for _, idx := range r.Destroyed {
		events = append(events, core.Event{Kind: core.EventBlockDestroyed, Index: idx})
	}
	for range r.WallBounces {
		events = append(events, core.Event{Kind: core.EventWallBounce, Index: -1})
	}
	if r.Paddle == ContactBounce {
		events = append(events, core.Event{Kind: core.EventPaddleBounce, Index: -1})
	}
	if r.Lost {
		events = append(events, core.Event{Kind: core.EventBallLost, Index: -1})
	}
	return events
}

// Renderables returns the draw list for the current frame.
func (g *Game) Renderables() []core.Renderable {
	if g.sim == nil {
		return nil
	}
	return g.sim.Renderables()
}

// Simulation exposes the running simulation, or nil before Reset.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Frame:     g.sim.Frame(),
		Remaining: g.sim.World().ActiveBlocks(),
		BallLost:  g.sim.Lost(),
		Cleared:   g.sim.Cleared(),
		Paused:    g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func(cfg config.ArkanoidConfig) registry.Game {
		return New(cfg)
	})
	registry.Register("arkanoid_classic", func(cfg config.ArkanoidConfig) registry.Game {
		return NewClassic(cfg)
	})
}
