package canvas

import "testing"

func TestZoomClamped(t *testing.T) {
	s := NewGestureState()
	if s.Scale != 1 {
		t.Fatalf("initial scale = %g, want 1", s.Scale)
	}

	// Scroll up zooms in, never past the maximum
	for i := 0; i < 200; i++ {
		s = s.Apply(Wheel{DeltaY: -1})
	}
	if s.Scale != MaxScale {
		t.Errorf("scale after zooming in = %g, want %g", s.Scale, MaxScale)
	}

	for i := 0; i < 200; i++ {
		s = s.Apply(Wheel{DeltaY: 1})
	}
	if s.Scale != MinScale {
		t.Errorf("scale after zooming out = %g, want %g", s.Scale, MinScale)
	}
}

func TestDragPansCanvas(t *testing.T) {
	s := NewGestureState()

	s = s.Apply(MouseDown{X: 100, Y: 100})
	if !s.Dragging {
		t.Fatal("mouse down should start a drag")
	}

	s = s.Apply(MouseMove{X: 130, Y: 80})
	if s.Pan.X != 30 || s.Pan.Y != -20 {
		t.Errorf("pan = (%g, %g), want (30, -20)", s.Pan.X, s.Pan.Y)
	}

	s = s.Apply(MouseUp{})
	if s.Dragging {
		t.Fatal("mouse up should end the drag")
	}

	// Movement without a held button does nothing
	s = s.Apply(MouseMove{X: 500, Y: 500})
	if s.Pan.X != 30 || s.Pan.Y != -20 {
		t.Errorf("pan changed without dragging: (%g, %g)", s.Pan.X, s.Pan.Y)
	}
}

func TestDragResumesFromCurrentPan(t *testing.T) {
	s := NewGestureState()
	s = s.Apply(MouseDown{X: 0, Y: 0})
	s = s.Apply(MouseMove{X: 10, Y: 10})
	s = s.Apply(MouseUp{})

	// A second drag must not jump back to the origin
	s = s.Apply(MouseDown{X: 50, Y: 50})
	s = s.Apply(MouseMove{X: 55, Y: 50})
	if s.Pan.X != 15 || s.Pan.Y != 10 {
		t.Errorf("pan = (%g, %g), want (15, 10)", s.Pan.X, s.Pan.Y)
	}
}

func TestSelectionToggles(t *testing.T) {
	s := NewGestureState()

	s = s.Apply(NodeClick{ID: 7})
	if s.Selected != 7 {
		t.Fatalf("selected = %d, want 7", s.Selected)
	}

	s = s.Apply(NodeClick{ID: 9})
	if s.Selected != 9 {
		t.Fatalf("selected = %d, want 9", s.Selected)
	}

	// Clicking the selected node again deselects
	s = s.Apply(NodeClick{ID: 9})
	if s.Selected != 0 {
		t.Fatalf("selected = %d, want 0", s.Selected)
	}
}
