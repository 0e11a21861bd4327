// Command panzoomview is an interactive image viewer: drag to pan, scroll
// to zoom about the pointer, right-click to cycle the step scales, R to
// rotate a quarter turn, F to cycle fit modes, 0 to reset.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/panzoom"
)

// maxTexture bounds the decoded image fed to the GPU; larger images are
// downsampled and the original size is declared to the kernel so a step
// scale still restores 1:1 original pixels.
const maxTexture = 2048

var fitModes = []panzoom.FitMode{
	panzoom.FitContain,
	panzoom.FitCrop,
	panzoom.FitFillBounds,
	panzoom.FitInside,
	panzoom.FitNone,
}

func main() {
	var (
		path    = flag.String("image", "", "image to view (PNG or JPEG); a test card when empty")
		verbose = flag.Bool("v", false, "log state resets")
	)
	flag.Parse()

	if *verbose {
		panzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, original, err := loadImage(*path)
	if err != nil {
		log.Fatalf("load %s: %v", *path, err)
	}

	st, err := panzoom.NewState(panzoom.WithOriginalContentSize(original))
	if err != nil {
		log.Fatal(err)
	}
	bounds := img.Bounds()
	st.SetContentSize(panzoom.Sz(float64(bounds.Dx()), float64(bounds.Dy())))

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("panzoomview"),
			app.Size(unit.Dp(1000), unit.Dp(700)),
		)
		v := &viewer{
			state: st,
			img:   paint.NewImageOp(img),
		}
		if err := v.run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadImage decodes path, downsampling to maxTexture when needed. It
// returns the working image and the size of the original.
func loadImage(path string) (image.Image, panzoom.Size, error) {
	if path == "" {
		img := testCard(1600, 1000)
		b := img.Bounds()
		return img, panzoom.Sz(float64(b.Dx()), float64(b.Dy())), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, panzoom.UnspecifiedSize, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, panzoom.UnspecifiedSize, err
	}

	b := img.Bounds()
	original := panzoom.Sz(float64(b.Dx()), float64(b.Dy()))
	if b.Dx() <= maxTexture && b.Dy() <= maxTexture {
		return img, original, nil
	}

	scale := float64(maxTexture) / float64(b.Dx())
	if s := float64(maxTexture) / float64(b.Dy()); s < scale {
		scale = s
	}
	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, original, nil
}

// viewer owns the window-side interaction state; all geometry lives in the
// panzoom State.
type viewer struct {
	state *panzoom.State
	img   paint.ImageOp

	dragging bool
	last     f32.Point
	fitIdx   int
}

func (v *viewer) run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					v.handleKey(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			v.layout(gtx)
			v.updateTitle(w)
			e.Frame(gtx.Ops)
		}
	}
}

func (v *viewer) handleKey(e key.Event) {
	switch e.Name {
	case "R":
		if err := v.state.SetRotation((v.state.Rotation() + 90) % 360); err != nil {
			log.Printf("rotate: %v", err)
		}
	case "F":
		v.fitIdx = (v.fitIdx + 1) % len(fitModes)
		v.state.SetFitMode(fitModes[v.fitIdx])
	case "0":
		v.state.Reset()
	}
}

func (v *viewer) layout(gtx layout.Context) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	v.state.SetContainerSize(panzoom.Sz(float64(bounds.X), float64(bounds.Y)))
	v.handlePointerEvents(gtx)

	m := v.state.DisplayMatrix()
	defer op.Affine(f32.NewAffine2D(
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	)).Push(gtx.Ops).Pop()

	v.img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: bounds}
}

func (v *viewer) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			v.handlePointerEvent(pe)
		}
	}
}

func (v *viewer) handlePointerEvent(ev pointer.Event) {
	pos := panzoom.Off(float64(ev.Position.X), float64(ev.Position.Y))

	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonSecondary) {
			v.state.SwitchNextStepScale(pos)
			break
		}
		v.dragging = true
		v.last = ev.Position

	case pointer.Drag:
		if !v.dragging {
			break
		}
		pan := panzoom.Off(
			float64(ev.Position.X-v.last.X),
			float64(ev.Position.Y-v.last.Y),
		)
		v.state.Gesture(pos, pan, 1, 0)
		v.last = ev.Position

	case pointer.Release, pointer.Cancel:
		v.dragging = false
		// Snap back after rubber-band overshoot.
		if target, ok := v.state.ReboundUserScale(); ok {
			t := v.state.UserTransform()
			t.Scale = panzoom.UniformScale(target)
			v.state.ApplyAnimatedTransform(t)
		}

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			break
		}
		delta := 1.1
		if ev.Scroll.Y > 0 {
			delta = 1 / 1.1
		}
		v.state.Gesture(pos, panzoom.Offset{}, delta, 0)
	}
}

func (v *viewer) updateTitle(w *app.Window) {
	edge := v.state.ScrollEdge()
	w.Option(app.Title(fmt.Sprintf("panzoomview %s rot=%d scale=%.2f h:%s v:%s",
		v.state.FitMode(), v.state.Rotation(), v.state.TotalScale(),
		edge.Horizontal, edge.Vertical)))
}

// testCard is the fallback content: a gradient with a grid and corner
// markers, enough structure to judge fit, rotation and zoom.
func testCard(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint8(40 + 160*x/w)
			g := uint8(60 + 120*y/h)
			b := uint8(180 - 120*x/w)
			if x%100 < 2 || y%100 < 2 {
				r, g, b = 230, 230, 230
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	// Corner markers.
	mark := func(cx, cy int, r, g, b uint8) {
		for y := cy - 30; y < cy+30; y++ {
			for x := cx - 30; x < cx+30; x++ {
				if x < 0 || y < 0 || x >= w || y >= h {
					continue
				}
				i := img.PixOffset(x, y)
				img.Pix[i+0] = r
				img.Pix[i+1] = g
				img.Pix[i+2] = b
				img.Pix[i+3] = 255
			}
		}
	}
	mark(40, 40, 255, 80, 80)
	mark(w-40, 40, 80, 255, 80)
	mark(w-40, h-40, 80, 80, 255)
	mark(40, h-40, 255, 255, 80)
	return img
}
