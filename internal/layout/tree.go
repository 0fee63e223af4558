// Package layout turns flat goal rows into a positioned forest for
// the mind-map canvas. The layout is rebuilt from scratch on every
// call, nothing here is incremental or persisted.
package layout

import "loomorro/goal-api/internal/model"

// Canvas geometry in pixels. Node boxes are 40px tall with 20px
// between sibling bands, levels sit 200px apart.
const (
	MinNodeWidth = 120
	MaxNodeWidth = 300
	charWidth    = 8
	titlePadding = 20

	NodeHeight   = 60
	nodeSpacing  = 20
	levelSpacing = 200
	baseX        = 50
	baseY        = 100

	canvasMargin = 200
	minCanvasW   = 800
	minCanvasH   = 600
)

// Node is a goal annotated with its children and canvas position.
type Node struct {
	model.Goal
	Children []*Node `json:"children"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
}

// NodeWidth derives a display width from the title length, clamped so
// short and very long titles still render as sensible boxes.
func NodeWidth(title string) int {
	w := len([]rune(title))*charWidth + titlePadding
	if w < MinNodeWidth {
		return MinNodeWidth
	}
	if w > MaxNodeWidth {
		return MaxNodeWidth
	}
	return w
}

// BuildTree partitions goals into a forest and assigns canvas
// positions. Children keep input order. A goal whose parent is not
// present in the input becomes a root instead of silently
// disappearing from the canvas.
func BuildTree(goals []model.Goal) []*Node {
	byID := make(map[uint]*Node, len(goals))
	for i := range goals {
		g := goals[i]
		byID[g.ID] = &Node{
			Goal:     g,
			Children: []*Node{},
			Width:    NodeWidth(g.Title),
		}
	}

	roots := []*Node{}
	for _, g := range goals {
		n := byID[g.ID]
		if g.ParentID != nil {
			if parent, ok := byID[*g.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	assignPositions(roots, 0, baseY)
	return roots
}

// assignPositions walks the forest pre-order. The y cursor only
// advances at leaves, so a parent lines up with the band of its first
// descendant and subtrees never overlap vertically.
func assignPositions(nodes []*Node, level, startY int) int {
	cursor := startY
	for _, n := range nodes {
		n.X = baseX + level*levelSpacing
		n.Y = cursor

		if len(n.Children) > 0 {
			cursor = assignPositions(n.Children, level+1, cursor)
		} else {
			cursor += NodeHeight + nodeSpacing
		}
	}

	return cursor
}

// CanvasSize returns the drawing area needed to fit the forest, with
// a fixed margin and an 800x600 floor.
func CanvasSize(nodes []*Node) (w, h int) {
	var maxX, maxY int

	var walk func([]*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			if n.X+n.Width > maxX {
				maxX = n.X + n.Width
			}
			if n.Y+NodeHeight > maxY {
				maxY = n.Y + NodeHeight
			}
			walk(n.Children)
		}
	}
	walk(nodes)

	w = max(minCanvasW, maxX+canvasMargin)
	h = max(minCanvasH, maxY+canvasMargin)
	return w, h
}
