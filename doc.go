// Package panzoom provides the transform and geometry kernel behind an
// interactive pan-zoom-rotate image viewer.
//
// # Overview
//
// Given a container (viewport) size, a content (image) size, a fit mode, an
// alignment, and a quarter-turn rotation, panzoom computes the layout
// transform that places content in the viewport, tracks the additional
// transform a user applies through gestures, and converts points between
// touch, container, and content coordinate spaces. It knows nothing about
// bitmaps, tiles, decoding, or gesture recognizers: gesture layers feed it
// centroids and deltas, rendering layers consume its transforms and visible
// rects.
//
// # Quick Start
//
//	st, err := panzoom.NewState(panzoom.WithFitMode(panzoom.FitContain))
//	if err != nil {
//	    ...
//	}
//	st.SetContainerSize(panzoom.Sz(1000, 1000))
//	st.SetContentSize(panzoom.Sz(2000, 1000))
//
//	// One pinch tick: zoom 1.1x about the pinch centroid.
//	st.Gesture(panzoom.Off(500, 500), panzoom.Offset{}, 1.1, 0)
//
//	// Flatten for the renderer.
//	m := st.DisplayMatrix()
//
// # Architecture
//
// The package is a set of pure, allocation-light functions over immutable
// value types (Size, Offset, Rect, ScaleFactor, Transform), safe for
// concurrent use. State threads them together on a single logical timeline,
// typically the UI event thread. Animated transitions are externally driven
// ticks through Transform.Lerp and State.ApplyAnimatedTransform; the kernel
// has no notion of time.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Content rotation in degrees, restricted to multiples of 90
package panzoom
