// Package canvas holds the view side of the mind-map: the
// pan/zoom/selection gesture reducer and the SVG renderer.
package canvas

// Zoom limits and wheel step, matching the web canvas.
const (
	MinScale = 0.2
	MaxScale = 10.0
	zoomStep = 0.1
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GestureState is the full interaction state of the canvas. It only
// changes through Apply, so every input event maps to exactly one
// deterministic transition.
type GestureState struct {
	Pan      Point
	Scale    float64
	Dragging bool
	Selected uint // goal ID, 0 = nothing selected

	dragStart Point
}

func NewGestureState() GestureState {
	return GestureState{Scale: 1}
}

// Event is a discrete canvas input.
type Event interface{ isEvent() }

type MouseDown struct{ X, Y float64 }
type MouseMove struct{ X, Y float64 }
type MouseUp struct{}
type Wheel struct{ DeltaY float64 }
type NodeClick struct{ ID uint }

func (MouseDown) isEvent() {}
func (MouseMove) isEvent() {}
func (MouseUp) isEvent()   {}
func (Wheel) isEvent()     {}
func (NodeClick) isEvent() {}

// Apply reduces one event into the next state.
func (s GestureState) Apply(ev Event) GestureState {
	switch e := ev.(type) {
	case MouseDown:
		s.Dragging = true
		s.dragStart = Point{X: e.X - s.Pan.X, Y: e.Y - s.Pan.Y}
	case MouseMove:
		if s.Dragging {
			s.Pan = Point{X: e.X - s.dragStart.X, Y: e.Y - s.dragStart.Y}
		}
	case MouseUp:
		s.Dragging = false
	case Wheel:
		step := zoomStep
		if e.DeltaY > 0 {
			step = -zoomStep
		}
		s.Scale = clamp(s.Scale+step, MinScale, MaxScale)
	case NodeClick:
		if s.Selected == e.ID {
			s.Selected = 0
		} else {
			s.Selected = e.ID
		}
	}

	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
