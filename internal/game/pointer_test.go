package game

import "testing"

func TestPointerTarget(t *testing.T) {
	arena := Arena{Width: 680, Height: 360}
	paddle := NewPaddle(SideHuman, 10, 8, 60, 360)

	tests := []struct {
		name       string
		y          float64
		host       Bounds
		wantCenter float64
		wantOK     bool
	}{
		{"same scale", 100, Bounds{0, 0, 680, 360}, 100, true},
		{"offset host", 120, Bounds{0, 20, 680, 360}, 100, true},
		{"half scale", 50, Bounds{0, 0, 340, 180}, 100, true},
		{"terminal rows", 12, Bounds{0, 1, 80, 22}, 180, true},
		{"clamped top", 5, Bounds{0, 0, 680, 360}, 30, true},
		{"clamped bottom", 900, Bounds{0, 0, 680, 360}, 330, true},
		{"above host", -40, Bounds{0, 0, 680, 360}, 30, true},
		{"empty host", 100, Bounds{0, 0, 0, 0}, 0, false},
		{"negative host", 100, Bounds{0, 0, 680, -360}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointerTarget(0, tt.y, tt.host, arena, paddle)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.wantCenter {
				t.Errorf("expected center %f, got %f", tt.wantCenter, got)
			}
		})
	}
}
