package panzoom

import (
	"errors"
	"testing"
)

func TestComputeOffsetBoundsContentLargerThanContainer(t *testing.T) {
	// Base: content 2000x1000 fit into 1000x1000 at 0.5 -> 1000x500 at
	// (0, 250). User scale 4 -> 4000x2000 at (0, 1000).
	bounds, err := ComputeOffsetBounds(Sz(1000, 1000), Sz(2000, 1000), FitContain, AlignCenter, 0, LayoutLTR, 4, false)
	if err != nil {
		t.Fatalf("ComputeOffsetBounds: %v", err)
	}
	want := NewRect(-3000, -2000, 0, -1000)
	if !rectApproxEq(bounds, want, 1e-9) {
		t.Errorf("bounds = %v, want %v", bounds, want)
	}
}

func TestComputeOffsetBoundsCollapsesWhenContentFits(t *testing.T) {
	container := Sz(1000, 1000)
	content := Sz(500, 400)

	t.Run("center at rest", func(t *testing.T) {
		// FitNone keeps content smaller than the container; at user scale
		// 1 the content is already at its aligned rest position, so the
		// collapsed bound is exactly zero.
		bounds, err := ComputeOffsetBounds(container, content, FitNone, AlignCenter, 0, LayoutLTR, 1, false)
		if err != nil {
			t.Fatalf("ComputeOffsetBounds: %v", err)
		}
		if bounds.Left != bounds.Right || bounds.Top != bounds.Bottom {
			t.Errorf("bounds did not collapse: %v", bounds)
		}
		if !rectApproxEq(bounds, ZeroRect, 1e-9) {
			t.Errorf("rest bounds = %v, want zero", bounds)
		}
	})

	t.Run("center keeps content centered under user scale", func(t *testing.T) {
		bounds, err := ComputeOffsetBounds(container, content, FitNone, AlignCenter, 0, LayoutLTR, 1.5, false)
		if err != nil {
			t.Fatalf("ComputeOffsetBounds: %v", err)
		}
		if bounds.Left != bounds.Right || bounds.Top != bounds.Bottom {
			t.Fatalf("bounds did not collapse: %v", bounds)
		}
		// The pinned offset re-centers the scaled display rect: base left
		// 250 scales to 375, centered slack is (1000-750)/2 = 125, so the
		// X offset pins at 125-375 = -250; Y works out the same.
		if want := NewRect(-250, -250, -250, -250); !rectApproxEq(bounds, want, 1e-9) {
			t.Errorf("bounds = %v, want %v", bounds, want)
		}
	})

	t.Run("start alignment pins to zero", func(t *testing.T) {
		bounds, err := ComputeOffsetBounds(container, content, FitNone, AlignTopStart, 0, LayoutLTR, 1.5, false)
		if err != nil {
			t.Fatalf("ComputeOffsetBounds: %v", err)
		}
		if !rectApproxEq(bounds, ZeroRect, 1e-9) {
			t.Errorf("bounds = %v, want zero", bounds)
		}
	})
}

func TestComputeOffsetBoundsMixedAxes(t *testing.T) {
	// Content fills the container's width exactly at fit scale but is
	// shorter: X pans once zoomed, Y collapses until the scaled height
	// exceeds the container.
	bounds, err := ComputeOffsetBounds(Sz(1000, 1000), Sz(2000, 1000), FitContain, AlignCenter, 0, LayoutLTR, 1, false)
	if err != nil {
		t.Fatalf("ComputeOffsetBounds: %v", err)
	}
	if bounds.Left != 0 || bounds.Right != 0 {
		t.Errorf("X bounds = [%g, %g], want [0, 0] (width fits exactly)", bounds.Left, bounds.Right)
	}
	if bounds.Top != bounds.Bottom {
		t.Errorf("Y bounds = [%g, %g], want collapsed", bounds.Top, bounds.Bottom)
	}
}

func TestComputeOffsetBoundsDegenerate(t *testing.T) {
	if bounds, err := ComputeOffsetBounds(Sz(0, 0), Sz(100, 100), FitContain, AlignCenter, 0, LayoutLTR, 2, false); err != nil || bounds != ZeroRect {
		t.Errorf("empty container: bounds = %v, err = %v; want zero rect", bounds, err)
	}
	if bounds, err := ComputeOffsetBounds(Sz(100, 100), Sz(100, 100), FitContain, AlignCenter, 0, LayoutLTR, 0, false); err != nil || bounds != ZeroRect {
		t.Errorf("zero user scale: bounds = %v, err = %v; want zero rect", bounds, err)
	}
}

func TestComputeOffsetBoundsRejectsRotation(t *testing.T) {
	_, err := ComputeOffsetBounds(Sz(100, 100), Sz(50, 50), FitContain, AlignCenter, 33, LayoutLTR, 1, false)
	if !errors.Is(err, ErrRotationNotMultipleOf90) {
		t.Errorf("err = %v, want ErrRotationNotMultipleOf90", err)
	}
}

func TestComputeScrollEdge(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rect
		offset Offset
		want   ScrollEdge
	}{
		{
			"at upper bound reaches content start",
			NewRect(-100, -100, 0, 0), Off(0, -50),
			ScrollEdge{Horizontal: EdgeStart, Vertical: EdgeNone},
		},
		{
			"at lower bound reaches content end",
			NewRect(-100, -100, 0, 0), Off(-100, -50),
			ScrollEdge{Horizontal: EdgeEnd, Vertical: EdgeNone},
		},
		{
			"in between",
			NewRect(-100, -100, 0, 0), Off(-50, -50),
			ScrollEdge{Horizontal: EdgeNone, Vertical: EdgeNone},
		},
		{
			"collapsed bounds pin both",
			NewRect(-30, -100, -30, 0), Off(-30, -50),
			ScrollEdge{Horizontal: EdgeBoth, Vertical: EdgeNone},
		},
		{
			"sub-pixel residue rounds away",
			NewRect(-100, -100, 0, 0), Off(-0.4, -99.6),
			ScrollEdge{Horizontal: EdgeStart, Vertical: EdgeEnd},
		},
		{
			"beyond bounds clamps to edge state",
			NewRect(-100, -100, 0, 0), Off(5, -120),
			ScrollEdge{Horizontal: EdgeStart, Vertical: EdgeEnd},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScrollEdge(tt.bounds, tt.offset); got != tt.want {
				t.Errorf("ComputeScrollEdge(%v, %v) = %+v, want %+v", tt.bounds, tt.offset, got, tt.want)
			}
		})
	}
}

func TestCanScroll(t *testing.T) {
	tests := []struct {
		name       string
		edge       ScrollEdge
		horizontal bool
		direction  int
		want       bool
	}{
		{"free axis positive", ScrollEdge{Horizontal: EdgeNone}, true, 1, true},
		{"free axis negative", ScrollEdge{Horizontal: EdgeNone}, true, -1, true},
		{"at end blocks positive", ScrollEdge{Horizontal: EdgeEnd}, true, 1, false},
		{"at end allows negative", ScrollEdge{Horizontal: EdgeEnd}, true, -1, true},
		{"at start blocks negative", ScrollEdge{Horizontal: EdgeStart}, true, -1, false},
		{"at start allows positive", ScrollEdge{Horizontal: EdgeStart}, true, 1, true},
		{"both blocks everything", ScrollEdge{Horizontal: EdgeBoth}, true, 1, false},
		{"vertical axis", ScrollEdge{Vertical: EdgeEnd}, false, 1, false},
		{"axes independent", ScrollEdge{Horizontal: EdgeBoth, Vertical: EdgeNone}, false, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanScroll(tt.edge, tt.horizontal, tt.direction); got != tt.want {
				t.Errorf("CanScroll(%+v, %v, %d) = %v, want %v", tt.edge, tt.horizontal, tt.direction, got, tt.want)
			}
		})
	}
}

func TestEdgeString(t *testing.T) {
	for e, want := range map[Edge]string{EdgeNone: "None", EdgeStart: "Start", EdgeEnd: "End", EdgeBoth: "Both"} {
		if got := e.String(); got != want {
			t.Errorf("Edge(%d).String() = %q, want %q", e, got, want)
		}
	}
}
