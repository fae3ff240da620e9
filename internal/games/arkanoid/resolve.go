package arkanoid

// ResolveBlocks destroys every active block the ball overlaps and bounces
// the ball off them.
//
// Blocks are scanned in slice order. Each hit block gets alpha 0, and the
// ball is pushed out along the impact axis by the penetration depth. The
// reflected velocity is collected in a shadow copy and written back once
// after the scan, so each axis flips at most once per call no matter how
// many blocks were hit.
//
// Returns the indices of destroyed blocks in scan order.
func ResolveBlocks(ball *Entity, blocks []Entity) []int {
	var destroyed []int
	velocity := ball.Velocity

	for i := range blocks {
		block := &blocks[i]
		if !block.Active() {
			continue
		}
		if !Detect(ball.Rect, block.Rect) {
			continue
		}

		block.Deactivate()
		destroyed = append(destroyed, i)

		c := Classify(ball.Rect, block.Rect)
		if c.Direction.Vertical() {
			ball.Rect.Y -= c.Depth.Y
			velocity.Y = -ball.Velocity.Y
		} else {
			ball.Rect.X -= c.Depth.X
			velocity.X = -ball.Velocity.X
		}
	}

	ball.Velocity = velocity
	return destroyed
}

// PaddleContact is the outcome of a paddle resolution.
type PaddleContact int

const (
	ContactNone   PaddleContact = iota // No new contact this frame
	ContactBounce                      // Ball bounced off the top of the paddle
	ContactFrozen                      // Ball reached the paddle from below and stopped
)

// String returns a human-readable name for the contact.
func (c PaddleContact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactBounce:
		return "bounce"
	case ContactFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// PaddleResolver bounces the ball off the paddle. It is edge-triggered:
// only the frame where the ball starts touching the paddle counts, so a
// ball resting against the paddle does not flip its velocity every frame.
type PaddleResolver struct {
	wasColliding bool
}

// Resolve handles one frame of ball/paddle contact.
func (r *PaddleResolver) Resolve(ball *Entity, paddle *Entity) PaddleContact {
	c := Collide(ball.Rect, paddle.Rect)
	contact := ContactNone

	if c.Intersects && !r.wasColliding {
		ball.Velocity.Y = -ball.Velocity.Y
		contact = ContactBounce
		if c.Direction == DirDown {
			ball.Velocity.X, ball.Velocity.Y = 0, 0
			contact = ContactFrozen
		}
	}

	r.wasColliding = c.Intersects
	return contact
}

// Touching reports whether the ball overlapped the paddle last frame.
func (r *PaddleResolver) Touching() bool {
	return r.wasColliding
}
