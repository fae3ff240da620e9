package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionPause)
	f.Intent = DirRight
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) = false after Set")
	}

	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should remove actions")
	}
	if f.Intent != DirRight {
		t.Error("Clear should keep the held intent")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestPaddleIntentHeldKeys(t *testing.T) {
	tests := []struct {
		name     string
		events   func(p *PaddleIntent)
		expected Direction
	}{
		{
			name:     "press left",
			events:   func(p *PaddleIntent) { p.Press(ActionLeft) },
			expected: DirLeft,
		},
		{
			name: "press then release left",
			events: func(p *PaddleIntent) {
				p.Press(ActionLeft)
				p.Release(ActionLeft)
			},
			expected: DirNone,
		},
		{
			name: "release of other key keeps direction",
			events: func(p *PaddleIntent) {
				p.Press(ActionLeft)
				p.Press(ActionRight)
				p.Release(ActionLeft)
			},
			expected: DirRight,
		},
		{
			name: "latest press wins",
			events: func(p *PaddleIntent) {
				p.Press(ActionRight)
				p.Press(ActionLeft)
			},
			expected: DirLeft,
		},
		{
			name: "non-movement action ignored",
			events: func(p *PaddleIntent) {
				p.Press(ActionRight)
				p.Press(ActionPause)
				p.Release(ActionPause)
			},
			expected: DirRight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddleIntent(0)
			tc.events(p)
			if p.Direction() != tc.expected {
				t.Errorf("Direction() = %v, expected %v", p.Direction(), tc.expected)
			}
		})
	}
}

func TestPaddleIntentSyntheticRelease(t *testing.T) {
	p := NewPaddleIntent(3)
	p.Press(ActionRight)

	p.Tick()
	p.Tick()
	if p.Direction() != DirRight {
		t.Fatalf("Direction() = %v before timeout, expected right", p.Direction())
	}

	// Auto-repeat resets the timer
	p.Press(ActionRight)
	p.Tick()
	p.Tick()
	if p.Direction() != DirRight {
		t.Fatalf("Direction() = %v after repeat, expected right", p.Direction())
	}

	p.Tick()
	if p.Direction() != DirNone {
		t.Errorf("Direction() = %v after timeout, expected none", p.Direction())
	}
}

func TestPaddleIntentNoTimeout(t *testing.T) {
	p := NewPaddleIntent(0)
	p.Press(ActionLeft)
	for range 100 {
		p.Tick()
	}
	if p.Direction() != DirLeft {
		t.Errorf("Direction() = %v, expected left to be held", p.Direction())
	}

	p.Reset()
	if p.Direction() != DirNone {
		t.Error("Reset should clear direction")
	}
}
