package arkanoid

// Snapshot contains the complete simulation state for replay checks and
// the headless sim command. Uses primitive types only for stable output.
type Snapshot struct {
	Frame uint64

	// Ball and paddle are 6 ints each: X, Y, W, H, VX, VY
	Ball   [6]int
	Paddle [6]int

	// Block alpha values, indexed by creation order
	BlockAlpha []uint8

	PaddleTouching bool
	Lost           bool
	Mode           int
}

func entityInts(e Entity) [6]int {
	return [6]int{e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H, e.Velocity.X, e.Velocity.Y}
}

// Snapshot returns the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	alpha := make([]uint8, len(s.world.Blocks))
	for i := range s.world.Blocks {
		alpha[i] = s.world.Blocks[i].Color.A
	}

	return Snapshot{
		Frame:          s.frame,
		Ball:           entityInts(s.world.Ball),
		Paddle:         entityInts(s.world.Paddle),
		BlockAlpha:     alpha,
		PaddleTouching: s.paddle.Touching(),
		Lost:           s.lost,
		Mode:           int(s.mode),
	}
}

// BlocksRemaining counts non-zero alpha entries.
func (snap *Snapshot) BlocksRemaining() int {
	n := 0
	for _, a := range snap.BlockAlpha {
		if a != 0 {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, v := range snap.Ball {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Paddle {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, a := range snap.BlockAlpha {
		h = h*31 + uint64(a)
	}
	h = h*31 + boolBit(snap.PaddleTouching)
	h = h*31 + boolBit(snap.Lost)
	h = h*31 + uint64(snap.Mode) //#nosec G115 -- hash computation
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
