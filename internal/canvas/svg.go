package canvas

import (
	"fmt"
	"html"
	"strings"

	"loomorro/goal-api/internal/layout"
)

// boxHeight is the drawn height of a node rectangle. The remaining
// 20px of layout.NodeHeight is the gap below it.
const boxHeight = 40

type RenderOptions struct {
	Theme    Theme
	Selected uint
	Pan      Point
	Scale    float64
}

// EdgePath returns the cubic Bezier path from a parent's right edge
// to a child's left edge, with both control points at the horizontal
// midpoint so the curve leaves and enters horizontally.
func EdgePath(parent, child *layout.Node) string {
	sx := float64(parent.X + parent.Width)
	sy := float64(parent.Y) + boxHeight/2
	ex := float64(child.X)
	ey := float64(child.Y) + boxHeight/2
	cx := sx + (ex-sx)*0.5

	return fmt.Sprintf("M %g %g C %g %g, %g %g, %g %g", sx, sy, cx, sy, cx, ey, ex, ey)
}

// RenderSVG draws a laid-out forest as a standalone SVG document, the
// server-side counterpart of the web canvas.
func RenderSVG(nodes []*layout.Node, opts RenderOptions) string {
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	w, h := layout.CanvasSize(nodes)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, opts.Theme.Background)
	fmt.Fprintf(&b, `<g transform="translate(%g %g) scale(%g)">`+"\n", opts.Pan.X, opts.Pan.Y, opts.Scale)

	for _, n := range nodes {
		renderNode(&b, n, opts)
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

func renderNode(b *strings.Builder, n *layout.Node, opts RenderOptions) {
	// Edges first so node boxes draw on top of them
	for _, child := range n.Children {
		fmt.Fprintf(b, `<path d="%s" stroke="%s" stroke-width="2" fill="none" opacity="0.6"/>`+"\n",
			EdgePath(n, child), opts.Theme.Border)
		renderNode(b, child, opts)
	}

	fill := opts.Theme.Surface
	stroke := opts.Theme.Border
	strokeWidth := 2
	textFill := opts.Theme.Text

	if opts.Selected != 0 && n.ID == opts.Selected {
		fill = opts.Theme.Accent
		stroke = opts.Theme.Primary
		strokeWidth = 3
		textFill = "#fff"
	}

	// Drop shadow, box, title
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" rx="12" fill="rgba(0,0,0,0.1)"/>`+"\n",
		n.X+2, n.Y+2, n.Width, boxHeight)
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" rx="12" fill="%s" stroke="%s" stroke-width="%d"/>`+"\n",
		n.X, n.Y, n.Width, boxHeight, fill, stroke, strokeWidth)
	fmt.Fprintf(b, `<text x="%d" y="%d" text-anchor="middle" font-size="12" fill="%s">%s</text>`+"\n",
		n.X+n.Width/2, n.Y+25, textFill, html.EscapeString(n.Title))

	if emoji := PriorityEmoji(n.Priority); emoji != "" {
		fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="11" fill="%s" stroke="rgba(255,255,255,0.9)" stroke-width="2"/>`+"\n",
			n.X+n.Width-3, n.Y+3, PriorityColor(n.Priority))
		fmt.Fprintf(b, `<text x="%d" y="%d" text-anchor="middle" font-size="13">%s</text>`+"\n",
			n.X+n.Width-3, n.Y+8, emoji)
	}

	if len(n.Children) > 0 {
		fmt.Fprintf(b, `<text x="%d" y="%d" text-anchor="middle" font-size="9" fill="%s">%d subgoals</text>`+"\n",
			n.X+60, n.Y+55, opts.Theme.TextSecondary, len(n.Children))
	}
}
