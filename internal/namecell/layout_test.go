package namecell

import "testing"

func TestLayoutThumbnail(t *testing.T) {
	tests := []struct {
		name      string
		bounds    Rect
		img       Size
		wantOK    bool
		wantImage Rect
		wantText  int
		wantBound Rect
	}{
		{
			name:      "fits as is",
			bounds:    Rect{X: 20, Y: 0, W: 380, H: 20},
			img:       Size{W: 16, H: 16},
			wantOK:    true,
			wantImage: Rect{X: 20, Y: 2, W: 16, H: 16},
			wantText:  39,
			wantBound: Rect{X: 20, Y: 0, W: 380, H: 20},
		},
		{
			name:      "tall row reserves minimum width",
			bounds:    Rect{X: 0, Y: 0, W: 300, H: 40},
			img:       Size{W: 64, H: 64},
			wantOK:    true,
			wantImage: Rect{X: 14, Y: 1, W: 37, H: 37},
			wantText:  67,
			wantBound: Rect{X: 0, Y: 1, W: 300, H: 37},
		},
		{
			name:      "narrow cell uses compact slot",
			bounds:    Rect{X: 0, Y: 0, W: 150, H: 40},
			img:       Size{W: 64, H: 64},
			wantOK:    true,
			wantImage: Rect{X: 0, Y: 4, W: 32, H: 32},
			wantText:  35,
			wantBound: Rect{X: 0, Y: 1, W: 150, H: 37},
		},
		{
			name:      "small row shrinks large icon",
			bounds:    Rect{X: 0, Y: 0, W: 300, H: 16},
			img:       Size{W: 32, H: 32},
			wantOK:    true,
			wantImage: Rect{X: 0, Y: 2, W: 16, H: 14},
			wantText:  19,
			wantBound: Rect{X: 0, Y: 1, W: 300, H: 16},
		},
		{
			name:      "wide image scales to width",
			bounds:    Rect{X: 0, Y: 0, W: 50, H: 40},
			img:       Size{W: 100, H: 20},
			wantOK:    true,
			wantImage: Rect{X: 0, Y: 15, W: 46, H: 10},
			wantText:  49,
			wantBound: Rect{X: 0, Y: 1, W: 50, H: 37},
		},
		{
			name:   "empty image",
			bounds: Rect{W: 100, H: 20},
			img:    Size{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LayoutThumbnail(tt.bounds, tt.img)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if got.Image != tt.wantImage {
				t.Errorf("Expected image %v, got %v", tt.wantImage, got.Image)
			}
			if got.TextX != tt.wantText {
				t.Errorf("Expected text at %d, got %d", tt.wantText, got.TextX)
			}
			if got.Bounds != tt.wantBound {
				t.Errorf("Expected bounds %v, got %v", tt.wantBound, got.Bounds)
			}
		})
	}
}

func TestTwistyTriangle(t *testing.T) {
	expanded := TwistyTriangle(10, 20, true)
	if expanded[0].Y != expanded[1].Y || expanded[2].Y <= expanded[0].Y {
		t.Errorf("Expected a downward triangle, got %v", expanded)
	}
	collapsed := TwistyTriangle(10, 20, false)
	if collapsed[0].X != collapsed[2].X || collapsed[1].X <= collapsed[0].X {
		t.Errorf("Expected a right-pointing triangle, got %v", collapsed)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 5, Y: 5, W: 10, H: 10}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{5, 5}, true},
		{Point{14, 14}, true},
		{Point{15, 10}, false},
		{Point{10, 15}, false},
		{Point{4, 10}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Expected Contains(%v)=%v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if got := a.Intersect(Rect{X: 5, Y: 5, W: 10, H: 10}); got != (Rect{X: 5, Y: 5, W: 5, H: 5}) {
		t.Errorf("Expected {5,5 5x5}, got %v", got)
	}
	if got := a.Intersect(Rect{X: 20, Y: 20, W: 1, H: 1}); !got.Empty() {
		t.Errorf("Expected empty intersection, got %v", got)
	}
}
