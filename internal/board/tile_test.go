package board

import "testing"

func TestTileAdvanceSnapsToTarget(t *testing.T) {
	tile := NewTile(3, 1, 1)
	tile.Target = Pt(0, 1)

	frames := 0
	for !tile.Advance(DefaultSpeed) {
		frames++
		if tile.Pos.X < tile.Target.X {
			t.Fatalf("tile overshot target: pos %v, target %v", tile.Pos, tile.Target)
		}
		if frames > 100 {
			t.Fatal("tile never settled")
		}
	}

	if tile.Pos != tile.Target {
		t.Errorf("Pos = %v, want %v", tile.Pos, tile.Target)
	}
	if tile.delta != nil {
		t.Error("delta should be cleared once settled")
	}
	// 3 cells at 0.45 per frame: 6 full steps, then the snap.
	if frames != 6 {
		t.Errorf("frames before settle = %d, want 6", frames)
	}
}

func TestTileAdvanceAtRest(t *testing.T) {
	tile := NewTile(2, 2, 3)
	if !tile.Advance(DefaultSpeed) {
		t.Error("resting tile should report settled")
	}
	if tile.Pos != Pt(2, 2) {
		t.Errorf("resting tile moved to %v", tile.Pos)
	}
}

func TestTileAdvanceDirection(t *testing.T) {
	tests := []struct {
		name   string
		from   Point
		to     Point
		deltaX float64
		deltaY float64
	}{
		{"left", Pt(3, 0), Pt(0, 0), -0.5, 0},
		{"right", Pt(0, 0), Pt(3, 0), 0.5, 0},
		{"up", Pt(1, 3), Pt(1, 0), 0, -0.5},
		{"down", Pt(1, 0), Pt(1, 3), 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := Tile{Pos: tt.from, Target: tt.to, Value: 1, TargetValue: 1}
			tile.Advance(0.5)
			if tile.delta == nil {
				t.Fatal("delta should be set after first Advance")
			}
			if tile.delta.X != tt.deltaX || tile.delta.Y != tt.deltaY {
				t.Errorf("delta = %v, want (%v, %v)", *tile.delta, tt.deltaX, tt.deltaY)
			}
		})
	}
}

func TestTileFinalize(t *testing.T) {
	tests := []struct {
		name        string
		value       int
		targetValue int
		credit      int
		finalValue  int
	}{
		{"unchanged", 3, 3, 0, 3},
		{"consumed", 3, 0, 0, 0},
		{"merge 2+2", 1, 2, 2, 2},
		{"merge 512+512", 9, 10, 512, 10},
		{"merge 1k+1k", 10, 11, 1024, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := Tile{Value: tt.value, TargetValue: tt.targetValue}
			if got := tile.Finalize(); got != tt.credit {
				t.Errorf("Finalize() = %d, want %d", got, tt.credit)
			}
			if tile.Value != tt.finalValue {
				t.Errorf("Value = %d, want %d", tile.Value, tt.finalValue)
			}
			if tile.Merging() {
				t.Error("tile should not be merging after Finalize")
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, ""},
		{1, "2"},
		{2, "4"},
		{9, "512"},
		{10, "1k"},
		{11, "2k"},
		{19, "512k"},
		{20, "1M"},
		{30, "1G"},
		{39, "512G"},
		{40, "2^40"},
	}

	for _, tt := range tests {
		if got := Label(tt.value); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDisplayedDoublesOnMerge(t *testing.T) {
	for v := 1; v < 20; v++ {
		if Displayed(v+1) != 2*Displayed(v) {
			t.Errorf("Displayed(%d) = %d, want %d", v+1, Displayed(v+1), 2*Displayed(v))
		}
	}
}
