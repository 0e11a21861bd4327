package panzoom

import "testing"

func TestFitModeScaleFactor(t *testing.T) {
	container := Sz(1000, 1000)
	tests := []struct {
		name    string
		mode    FitMode
		content Size
		want    ScaleFactor
	}{
		{"contain wide", FitContain, Sz(2000, 1000), UniformScale(0.5)},
		{"contain tall", FitContain, Sz(1000, 4000), UniformScale(0.25)},
		{"contain small upscales", FitContain, Sz(100, 200), UniformScale(5)},
		{"crop wide", FitCrop, Sz(2000, 1000), UniformScale(1)},
		{"crop tall", FitCrop, Sz(500, 2000), UniformScale(2)},
		{"fill bounds distorts", FitFillBounds, Sz(2000, 500), ScaleOf(0.5, 2)},
		{"fill width", FitFillWidth, Sz(2000, 1000), UniformScale(0.5)},
		{"fill height", FitFillHeight, Sz(2000, 500), UniformScale(2)},
		{"inside shrinks", FitInside, Sz(2000, 1000), UniformScale(0.5)},
		{"inside never upscales", FitInside, Sz(100, 200), UniformScale(1)},
		{"none", FitNone, Sz(2000, 1000), UniformScale(1)},
		{"empty content", FitContain, Sz(0, 100), UniformScale(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.ScaleFactor(tt.content, container); got != tt.want {
				t.Errorf("%v.ScaleFactor(%v, %v) = %v, want %v",
					tt.mode, tt.content, container, got, tt.want)
			}
		})
	}
}

func TestFitModeString(t *testing.T) {
	modes := []FitMode{FitContain, FitCrop, FitFillBounds, FitFillWidth, FitFillHeight, FitInside, FitNone}
	seen := map[string]bool{}
	for _, m := range modes {
		s := m.String()
		if s == "" || s == "Unknown" {
			t.Errorf("FitMode(%d).String() = %q", m, s)
		}
		if seen[s] {
			t.Errorf("duplicate name %q", s)
		}
		seen[s] = true
	}
}
