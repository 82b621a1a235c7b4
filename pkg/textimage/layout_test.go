package textimage

import "testing"

func TestCanvasHeight(t *testing.T) {
	tests := []struct {
		lines, lineHeight, want int
	}{
		{0, 25, 25},
		{1, 25, 50},
		{2, 25, 75},
		{10, 1, 11},
		{3, 40, 160},
	}

	for _, tt := range tests {
		if got := CanvasHeight(tt.lines, tt.lineHeight); got != tt.want {
			t.Errorf("CanvasHeight(%d, %d) = %d, want %d", tt.lines, tt.lineHeight, got, tt.want)
		}
	}
}

func TestCanvasHeight_ExceedsLineSpan(t *testing.T) {
	for n := 0; n <= 50; n++ {
		for h := 1; h <= 60; h++ {
			got := CanvasHeight(n, h)
			if got != (n+1)*h {
				t.Fatalf("CanvasHeight(%d, %d) = %d", n, h, got)
			}
			if got <= n*h {
				t.Fatalf("CanvasHeight(%d, %d) = %d does not exceed %d", n, h, got, n*h)
			}
		}
	}
}
