package panzoom

import "testing"

func TestAlign(t *testing.T) {
	box := Sz(200, 100)
	space := Sz(1000, 500)
	tests := []struct {
		name string
		a    Alignment
		want Offset
	}{
		{"top start", AlignTopStart, Off(0, 0)},
		{"top center", AlignTopCenter, Off(400, 0)},
		{"top end", AlignTopEnd, Off(800, 0)},
		{"center start", AlignCenterStart, Off(0, 200)},
		{"center", AlignCenter, Off(400, 200)},
		{"center end", AlignCenterEnd, Off(800, 200)},
		{"bottom start", AlignBottomStart, Off(0, 400)},
		{"bottom center", AlignBottomCenter, Off(400, 400)},
		{"bottom end", AlignBottomEnd, Off(800, 400)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Align(box, space, LayoutLTR); got != tt.want {
				t.Errorf("%v.Align() = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestAlignRTLFlipsHorizontal(t *testing.T) {
	box := Sz(200, 100)
	space := Sz(1000, 500)
	tests := []struct {
		name string
		a    Alignment
		want Offset
	}{
		{"start pins right", AlignTopStart, Off(800, 0)},
		{"end pins left", AlignTopEnd, Off(0, 0)},
		{"center unchanged", AlignCenter, Off(400, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Align(box, space, LayoutRTL); got != tt.want {
				t.Errorf("%v.Align() RTL = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestAlignBoxLargerThanSpace(t *testing.T) {
	// A box larger than the space intentionally yields negative or
	// over-sized offsets: the content renders partially outside.
	box := Sz(2000, 100)
	space := Sz(1000, 500)
	if got, want := AlignCenter.Align(box, space, LayoutLTR), Off(-500, 200); got != want {
		t.Errorf("center align of oversized box = %v, want %v", got, want)
	}
	if got, want := AlignTopEnd.Align(box, space, LayoutLTR), Off(-1000, 0); got != want {
		t.Errorf("end align of oversized box = %v, want %v", got, want)
	}
}
