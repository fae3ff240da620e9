package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Entity is the shared record for the ball, the paddle and every block.
type Entity struct {
	Rect     core.Rect
	Velocity core.Vec2
	Color    core.Color
}

// Active reports whether the entity is visible (alpha != 0).
// A block with alpha 0 is destroyed.
func (e *Entity) Active() bool {
	return e.Color.Active()
}

// Deactivate marks the entity destroyed by clearing its alpha.
func (e *Entity) Deactivate() {
	e.Color.A = 0
}

// World holds every entity of one session. Blocks keep their creation
// order (row-major) for the whole session; destroyed blocks stay in place.
type World struct {
	Bounds core.Rect
	Ball   Entity
	Paddle Entity
	Blocks []Entity
}

// NewWorld lays out a fresh level from the config.
func NewWorld(cfg config.ArkanoidConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors()
	if err != nil {
		return nil, fmt.Errorf("arkanoid: %w", err)
	}

	w := &World{
		Bounds: core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height),
		Ball: Entity{
			Rect:     core.NewRect(cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Size, cfg.Ball.Size),
			Velocity: core.V(cfg.Physics.BallSpeed, -cfg.Physics.BallSpeed),
			Color:    palette[0],
		},
		Paddle: Entity{
			Rect:  core.NewRect(cfg.Paddle.X, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height),
			Color: palette[0],
		},
		Blocks: make([]Entity, 0, cfg.Blocks.Rows*cfg.Blocks.Columns),
	}

	b := cfg.Blocks
	for row := range b.Rows {
		color := palette[core.Min(row/b.RowsPerColor, len(palette)-1)]
		for col := range b.Columns {
			w.Blocks = append(w.Blocks, Entity{
				Rect:  core.NewRect(b.OriginX+col*b.Width, b.OriginY+row*b.Height, b.Width, b.Height),
				Color: color,
			})
		}
	}

	return w, nil
}

// ActiveBlocks counts blocks that are still standing.
func (w *World) ActiveBlocks() int {
	n := 0
	for i := range w.Blocks {
		if w.Blocks[i].Active() {
			n++
		}
	}
	return n
}

// Renderables lists what to draw this frame: active blocks in creation
// order, then the ball, then the paddle. Entities with alpha 0 are
// omitted. The slice is a copy; mutating it does not touch the world.
func (w *World) Renderables() []core.Renderable {
	out := make([]core.Renderable, 0, len(w.Blocks)+2)
	for i := range w.Blocks {
		if w.Blocks[i].Active() {
			out = append(out, core.Renderable{Rect: w.Blocks[i].Rect, Color: w.Blocks[i].Color})
		}
	}
	if w.Ball.Active() {
		out = append(out, core.Renderable{Rect: w.Ball.Rect, Color: w.Ball.Color})
	}
	if w.Paddle.Active() {
		out = append(out, core.Renderable{Rect: w.Paddle.Rect, Color: w.Paddle.Color})
	}
	return out
}
