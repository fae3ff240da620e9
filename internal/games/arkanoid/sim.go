package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// ResolveMode selects how often blocks are resolved per frame.
type ResolveMode int

const (
	// ResolvePerAxis resolves blocks after the horizontal move and again
	// after the vertical move, so push-out follows the axis just moved.
	ResolvePerAxis ResolveMode = iota

	// ResolveCombined moves on both axes first and resolves blocks once.
	ResolveCombined
)

// StepReport summarizes what happened during one frame.
type StepReport struct {
	Destroyed   []int         // Block indices destroyed, in resolution order
	WallBounces int           // Reflections off the playfield walls
	Paddle      PaddleContact // Paddle resolver outcome
	Lost        bool          // The ball froze this frame
}

// Simulation owns a World and advances it one fixed frame at a time.
// It is not safe for concurrent use; one goroutine drives it.
type Simulation struct {
	world       *World
	paddle      PaddleResolver
	mode        ResolveMode
	paddleSpeed int
	frame       uint64
	lost        bool
}

// NewSimulation builds a fresh level from cfg.
func NewSimulation(cfg config.ArkanoidConfig, mode ResolveMode) (*Simulation, error) {
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		world:       w,
		mode:        mode,
		paddleSpeed: cfg.Physics.PaddleSpeed,
	}, nil
}

// Step advances the simulation by one frame with the given paddle intent.
func (s *Simulation) Step(intent core.Direction) StepReport {
	var report StepReport
	w := s.world
	ball := &w.Ball
	wasMoving := !ball.Velocity.IsZero()

	// Input sets paddle velocity directly: no acceleration curve.
	w.Paddle.Velocity.X = int(intent) * s.paddleSpeed

	// Horizontal move
	ball.Rect.X += ball.Velocity.X
	if s.bounceX(ball) {
		report.WallBounces++
	}
	if s.mode == ResolvePerAxis {
		report.Destroyed = append(report.Destroyed, ResolveBlocks(ball, w.Blocks)...)
	}

	// Vertical move
	ball.Rect.Y += ball.Velocity.Y
	if s.bounceTop(ball) {
		report.WallBounces++
	}
	if ball.Rect.Y >= w.Bounds.Bottom()-ball.Rect.H {
		ball.Velocity = core.Vec2{}
	}
	report.Destroyed = append(report.Destroyed, ResolveBlocks(ball, w.Blocks)...)

	// Paddle move, kept fully inside the playfield
	p := &w.Paddle
	p.Rect = p.Rect.Translate(p.Velocity)
	p.Rect.X = core.Clamp(p.Rect.X, w.Bounds.Left(), core.Max(w.Bounds.Right()-p.Rect.W, w.Bounds.Left()))

	report.Paddle = s.paddle.Resolve(ball, p)

	if wasMoving && ball.Velocity.IsZero() {
		report.Lost = true
		s.lost = true
	}

	s.frame++
	return report
}

// bounceX reflects the ball off the side walls when the move carried it
// onto or past one, and puts it back inside the playfield.
func (s *Simulation) bounceX(ball *Entity) bool {
	b := s.world.Bounds
	hitLeft := ball.Rect.Left() <= b.Left() && ball.Velocity.X < 0
	hitRight := ball.Rect.Right() >= b.Right() && ball.Velocity.X > 0
	if !hitLeft && !hitRight {
		return false
	}
	ball.Velocity.X = -ball.Velocity.X
	ball.Rect.X = core.Clamp(ball.Rect.X, b.Left(), core.Max(b.Right()-ball.Rect.W, b.Left()))
	return true
}

// bounceTop reflects the ball off the ceiling.
func (s *Simulation) bounceTop(ball *Entity) bool {
	b := s.world.Bounds
	if ball.Rect.Top() > b.Top() || ball.Velocity.Y >= 0 {
		return false
	}
	ball.Velocity.Y = -ball.Velocity.Y
	ball.Rect.Y = b.Top()
	return true
}

// World exposes the simulated world for inspection. Renderers should use
// Renderables instead.
func (s *Simulation) World() *World {
	return s.world
}

// Renderables returns the draw list for the current frame.
func (s *Simulation) Renderables() []core.Renderable {
	return s.world.Renderables()
}

// Frame returns the number of steps taken.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Lost reports whether the ball has frozen. Nothing resets it within a
// session; the loop keeps running.
func (s *Simulation) Lost() bool {
	return s.lost
}

// Cleared reports whether every block is destroyed.
func (s *Simulation) Cleared() bool {
	return s.world.ActiveBlocks() == 0
}
