package panzoom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeBaseLayoutContainCenter(t *testing.T) {
	layout, err := ComputeBaseLayout(Sz(1000, 1000), Sz(2000, 1000), FitContain, AlignCenter, 0, LayoutLTR)
	if err != nil {
		t.Fatalf("ComputeBaseLayout: %v", err)
	}

	want := BaseLayout{
		Transform: Transform{
			Scale:          UniformScale(0.5),
			Offset:         Off(0, 250),
			RotationOrigin: OriginOf(1, 0.5),
		},
		ContainerSize:        Sz(1000, 1000),
		ContentSize:          Sz(2000, 1000),
		RotatedContentSize:   Sz(2000, 1000),
		ScaledContentSize:    Sz(1000, 500),
		DisplayRect:          NewRect(0, 250, 1000, 750),
		UnrotatedDisplayRect: NewRect(0, 250, 1000, 750),
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBaseLayoutRotated(t *testing.T) {
	layout, err := ComputeBaseLayout(Sz(1000, 1000), Sz(2000, 1000), FitContain, AlignCenter, 90, LayoutLTR)
	if err != nil {
		t.Fatalf("ComputeBaseLayout: %v", err)
	}
	if got, want := layout.RotatedContentSize, Sz(1000, 2000); got != want {
		t.Errorf("rotated size = %v, want %v", got, want)
	}
	if got, want := layout.Transform.Scale, UniformScale(0.5); got != want {
		t.Errorf("scale = %v, want %v", got, want)
	}
	if got, want := layout.ScaledContentSize, Sz(500, 1000); got != want {
		t.Errorf("scaled size = %v, want %v", got, want)
	}
	if got, want := layout.DisplayRect, NewRect(250, 0, 750, 1000); got != want {
		t.Errorf("display rect = %v, want %v", got, want)
	}
	// The rotation pivot stays the original content's center fraction.
	if got, want := layout.Transform.RotationOrigin, OriginOf(1, 0.5); got != want {
		t.Errorf("rotation origin = %v, want %v", got, want)
	}
	// The unrotated display rect swaps extents around the same center.
	if got, want := layout.UnrotatedDisplayRect, NewRect(0, 250, 1000, 750); !rectApproxEq(got, want, 1e-9) {
		t.Errorf("unrotated display rect = %v, want %v", got, want)
	}
}

func TestComputeBaseLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name               string
		container, content Size
	}{
		{"empty container", Sz(0, 0), Sz(100, 100)},
		{"empty content", Sz(100, 100), Sz(0, 0)},
		{"unspecified container", UnspecifiedSize, Sz(100, 100)},
		{"unspecified content", Sz(100, 100), UnspecifiedSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ComputeBaseLayout(tt.container, tt.content, FitContain, AlignCenter, 0, LayoutLTR)
			if err != nil {
				t.Fatalf("ComputeBaseLayout: %v", err)
			}
			if !layout.Transform.IsIdentity() {
				t.Errorf("transform = %v, want identity", layout.Transform)
			}
		})
	}
}

func TestComputeBaseLayoutRejectsRotation(t *testing.T) {
	_, err := ComputeBaseLayout(Sz(100, 100), Sz(50, 50), FitContain, AlignCenter, 45, LayoutLTR)
	if !errors.Is(err, ErrRotationNotMultipleOf90) {
		t.Errorf("rotation 45: err = %v, want ErrRotationNotMultipleOf90", err)
	}
}

// TestBaseLayoutCornersStayInContainer checks that the painted content
// corners respect each fit mode's containment contract for every quarter
// turn.
func TestBaseLayoutCornersStayInContainer(t *testing.T) {
	container := Sz(1000, 800)
	contents := []Size{Sz(2000, 1000), Sz(300, 900), Sz(800, 800), Sz(50, 60)}
	rotations := []int{0, 90, 180, 270}
	modes := []FitMode{FitContain, FitInside}

	containerRect := container.Rect()
	for _, mode := range modes {
		for _, content := range contents {
			for _, rotation := range rotations {
				layout, err := ComputeBaseLayout(container, content, mode, AlignCenter, rotation, LayoutLTR)
				if err != nil {
					t.Fatalf("ComputeBaseLayout(%v, %v, %d): %v", mode, content, rotation, err)
				}
				m := layout.Matrix()
				corners := []Offset{
					Off(0, 0),
					Off(content.Width, 0),
					Off(0, content.Height),
					Off(content.Width, content.Height),
				}
				for _, c := range corners {
					p := m.TransformPoint(c)
					grown := NewRect(containerRect.Left-1e-6, containerRect.Top-1e-6,
						containerRect.Right+1e-6, containerRect.Bottom+1e-6)
					if !grown.Contains(p) {
						t.Errorf("%v content %v rotation %d: corner %v maps outside container to %v",
							mode, content, rotation, c, p)
					}
				}
			}
		}
	}
}

// TestBaseLayoutFillBoundsCoversExactly checks that FillBounds maps the
// content rect onto the container rect exactly.
func TestBaseLayoutFillBoundsCoversExactly(t *testing.T) {
	container := Sz(1000, 800)
	layout, err := ComputeBaseLayout(container, Sz(300, 900), FitFillBounds, AlignCenter, 0, LayoutLTR)
	if err != nil {
		t.Fatalf("ComputeBaseLayout: %v", err)
	}
	m := layout.Matrix()
	if got := m.TransformPoint(Off(0, 0)); !offsetApproxEq(got, Off(0, 0), 1e-9) {
		t.Errorf("top-left maps to %v, want (0, 0)", got)
	}
	if got := m.TransformPoint(Off(300, 900)); !offsetApproxEq(got, Off(1000, 800), 1e-9) {
		t.Errorf("bottom-right maps to %v, want (1000, 800)", got)
	}
}

// TestBaseLayoutMatrixMatchesPointMapper checks that the painting matrix
// and the point mapper agree on where content points land.
func TestBaseLayoutMatrixMatchesPointMapper(t *testing.T) {
	container := Sz(1000, 800)
	content := Sz(600, 900)
	for _, rotation := range []int{0, 90, 180, 270} {
		layout, err := ComputeBaseLayout(container, content, FitContain, AlignCenter, rotation, LayoutLTR)
		if err != nil {
			t.Fatalf("ComputeBaseLayout(%d): %v", rotation, err)
		}
		m := layout.Matrix()
		for _, p := range []Offset{Off(0, 0), Off(600, 900), Off(300, 450), Off(600, 0)} {
			viaMatrix := m.TransformPoint(p)
			viaMapper := layout.ContentPointToContainerPoint(p)
			if !offsetApproxEq(viaMatrix, viaMapper, 1e-9) {
				t.Errorf("rotation %d point %v: matrix %v != mapper %v", rotation, p, viaMatrix, viaMapper)
			}
		}
	}
}
