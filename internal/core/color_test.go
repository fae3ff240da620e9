package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#c84848", Color{200, 72, 72, 255}, false},
		{"c84848", Color{200, 72, 72, 255}, false},
		{"#42489600", Color{0x42, 0x48, 0x96, 0}, false},
		{"#fff", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorActiveAndHex(t *testing.T) {
	c := RGB(200, 72, 72)
	if !c.Active() {
		t.Error("Opaque color should be active")
	}
	if c.Hex() != "#c84848" {
		t.Errorf("Hex() = %q, expected #c84848", c.Hex())
	}
	if c.String() != "#c84848ff" {
		t.Errorf("String() = %q, expected #c84848ff", c.String())
	}

	c.A = 0
	if c.Active() {
		t.Error("Alpha 0 should be inactive")
	}
}
