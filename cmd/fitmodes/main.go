// Command fitmodes renders a contact sheet of every fit mode and quarter
// rotation: a synthetic test card drawn through the base layout matrix of
// each configuration, one cell per combination.
package main

import (
	"flag"
	"log"
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/panzoom"
)

var fitModes = []panzoom.FitMode{
	panzoom.FitContain,
	panzoom.FitCrop,
	panzoom.FitFillBounds,
	panzoom.FitFillWidth,
	panzoom.FitFillHeight,
	panzoom.FitInside,
	panzoom.FitNone,
}

var rotations = []int{0, 90, 180, 270}

func main() {
	var (
		cellW    = flag.Int("cellw", 320, "cell width")
		cellH    = flag.Int("cellh", 240, "cell height")
		contentW = flag.Float64("contentw", 800, "content width")
		contentH = flag.Float64("contenth", 500, "content height")
		output   = flag.String("output", "fitmodes.png", "output file")
		font     = flag.String("font", "", "optional TTF font for cell labels")
	)
	flag.Parse()

	const pad = 8
	sheetW := pad + len(fitModes)*(*cellW+pad)
	sheetH := pad + len(rotations)*(*cellH+pad)

	dc := gg.NewContext(sheetW, sheetH)
	dc.SetRGB(0.12, 0.12, 0.14)
	dc.DrawRectangle(0, 0, float64(sheetW), float64(sheetH))
	_ = dc.Fill()

	if *font != "" {
		if err := dc.LoadFontFace(*font, 13); err != nil {
			log.Printf("font %s unavailable, labels skipped: %v", *font, err)
		}
	}

	content := panzoom.Sz(*contentW, *contentH)
	container := panzoom.Sz(float64(*cellW), float64(*cellH))

	for row, rotation := range rotations {
		for col, mode := range fitModes {
			layout, err := panzoom.ComputeBaseLayout(container, content, mode,
				panzoom.AlignCenter, rotation, panzoom.LayoutLTR)
			if err != nil {
				log.Fatalf("layout %v rot %d: %v", mode, rotation, err)
			}

			x := float64(pad + col*(*cellW+pad))
			y := float64(pad + row*(*cellH+pad))
			drawCell(dc, x, y, float64(*cellW), float64(*cellH), content, layout)

			dc.SetRGB(0.9, 0.9, 0.9)
			dc.DrawStringAnchored(layout.Transform.String(), x+4, y+float64(*cellH)-6, 0, 0)
			label := mode.String()
			if rotation != 0 {
				label += " " + strconv.Itoa(rotation)
			}
			dc.DrawStringAnchored(label, x+4, y+14, 0, 0)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Contact sheet saved to %s (%dx%d)\n", *output, sheetW, sheetH)
}

func drawCell(dc *gg.Context, x, y, w, h float64, content panzoom.Size, layout panzoom.BaseLayout) {
	dc.Push()
	dc.ClipRect(x, y, w, h)

	// Cell background marks the container extent.
	dc.SetRGB(0.2, 0.2, 0.24)
	dc.DrawRectangle(x, y, w, h)
	_ = dc.Fill()

	// Everything below draws in content coordinates, placed by the layout
	// matrix. This is exactly the matrix a viewer hands its renderer.
	m := layout.Matrix()
	dc.SetTransform(gg.Matrix{
		A: m.A, B: m.B, C: m.C + x,
		D: m.D, E: m.E, F: m.F + y,
	})
	drawTestCard(dc, content.Width, content.Height)

	dc.Identity()
	dc.ResetClip()
	dc.Pop()
}

// drawTestCard draws an asymmetric scene so that rotation, cropping and
// stretching are all visible at a glance.
func drawTestCard(dc *gg.Context, w, h float64) {
	steps := 24
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetColor(gg.RGB(0.15+t*0.5, 0.3+t*0.2, 0.6-t*0.3))
		dc.DrawRectangle(0, h*t, w, h/float64(steps)+1)
		_ = dc.Fill()
	}

	// Corner markers, one color per corner.
	r := math.Min(w, h) * 0.08
	corners := []struct {
		x, y    float64
		r, g, b float64
	}{
		{r, r, 1, 0.3, 0.3},
		{w - r, r, 0.3, 1, 0.3},
		{w - r, h - r, 0.3, 0.3, 1},
		{r, h - r, 1, 1, 0.3},
	}
	for _, c := range corners {
		dc.SetRGB(c.r, c.g, c.b)
		dc.DrawCircle(c.x, c.y, r)
		_ = dc.Fill()
	}

	// Off-center ring marks the content's focal point.
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.SetLineWidth(math.Min(w, h) * 0.02)
	dc.DrawCircle(w*0.62, h*0.4, math.Min(w, h)*0.22)
	_ = dc.Stroke()

	// Frame.
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Stroke()
}
