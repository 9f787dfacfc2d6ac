package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/render"
)

// Glyphs used for handles and the grid.
const (
	HandleGlyph = '●'
	GridGlyph   = '·'
)

// gridEvery spaces grid dots ten snap steps apart; a dot per step would
// fill every cell.
const gridEvery = 10

// cell is one rendered terminal position.
type cell struct {
	ch   rune
	fg   string
	bg   string
	bold bool
}

type styleKey struct {
	fg, bg string
	bold   bool
}

// Render draws the visible part of the scene. Each line holds v.Cols
// cells and there are v.Rows lines, joined by newlines.
func Render(sc render.Scene, v Viewport) string {
	grid := paint(sc, v)
	styles := map[styleKey]lipgloss.Style{}
	style := func(c cell) lipgloss.Style {
		k := styleKey{c.fg, c.bg, c.bold}
		if s, ok := styles[k]; ok {
			return s
		}
		s := lipgloss.NewStyle().Bold(c.bold)
		if c.fg != "" {
			s = s.Foreground(lipgloss.Color(c.fg))
		}
		if c.bg != "" {
			s = s.Background(lipgloss.Color(c.bg))
		}
		styles[k] = s
		return s
	}

	var b strings.Builder
	for r, line := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		// Runs of identically styled cells share one escape sequence.
		for i := 0; i < len(line); {
			j := i
			var run strings.Builder
			for j < len(line) && line[j].fg == line[i].fg && line[j].bg == line[i].bg && line[j].bold == line[i].bold {
				run.WriteRune(line[j].ch)
				j++
			}
			b.WriteString(style(line[i]).Render(run.String()))
			i = j
		}
	}
	return b.String()
}

// Plain draws the same cells as [Render] without any styling.
func Plain(sc render.Scene, v Viewport) string {
	var b strings.Builder
	for r, line := range paint(sc, v) {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range line {
			b.WriteRune(c.ch)
		}
	}
	return b.String()
}

func paint(sc render.Scene, v Viewport) [][]cell {
	bg := termColor(sc.Background)
	painted := sc.Painted()

	grid := make([][]cell, v.Rows)
	for r := range grid {
		grid[r] = make([]cell, v.Cols)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' ', bg: bg}
			if gridDot(sc.Grid, v, c, r) {
				grid[r][c].ch = GridGlyph
				grid[r][c].fg = termColor(render.GridColor)
			}
		}
	}

	for _, e := range painted {
		paintElement(grid, v, e, sc.Selected(e.ID), bg)
	}

	if e, ok := sc.HandleTarget(); ok {
		for _, h := range canvas.Handles {
			c, r := v.ToCell(h.Position(e.Rect))
			if !v.Contains(c, r) {
				continue
			}
			grid[r][c].ch = HandleGlyph
			grid[r][c].fg = termColor(render.HandleFill)
			grid[r][c].bold = true
		}
	}
	return grid
}

func paintElement(grid [][]cell, v Viewport, e canvas.Element, selected bool, canvasBG string) {
	c0, r0 := v.ToCell(e.Origin())
	c1, r1 := v.ToCell(canvas.Point{X: e.Right(), Y: e.Bottom()})
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, v.Cols-1), min(r1, v.Rows-1)

	inside := func(c, r int) bool { return covers(e, v.ToCanvas(c, r)) }
	fill := termColor(e.Style.Fill)
	edge := borderGlyphs(e, selected)
	edgeFG := termColor(e.Style.BorderColor)
	if selected {
		edgeFG = termColor(render.SelectionColor)
	}

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if !inside(c, r) {
				continue
			}
			out := cell{ch: ' ', bg: fill}
			if out.bg == "" {
				out.bg = grid[r][c].bg
				if out.bg == "" {
					out.bg = canvasBG
				}
			}
			if edge != nil {
				if ch, ok := edge.at(inside(c, r-1), inside(c, r+1), inside(c-1, r), inside(c+1, r)); ok {
					out.ch, out.fg, out.bold = ch, edgeFG, selected
				}
			}
			grid[r][c] = out
		}
	}

	if e.IsText() {
		paintText(grid, v, e, inside)
	}
}

// paintText writes the content on the first interior row, starting after
// the padding, clipped to the element's interior cells.
func paintText(grid [][]cell, v Viewport, e canvas.Element, inside func(c, r int) bool) {
	start := canvas.Point{X: e.X + e.Text.Padding, Y: e.Y + e.Text.Padding}
	c, r := v.ToCell(start)
	if !inside(c, r) {
		c, r = v.ToCell(e.Center())
	}
	if r < 0 || r >= v.Rows {
		return
	}
	fg := termColor(e.Text.Color)
	for _, ch := range strings.ReplaceAll(e.Text.Content, "\n", " ") {
		if c >= v.Cols || !inside(c, r) {
			return
		}
		if c >= 0 && grid[r][c].ch == ' ' {
			grid[r][c].ch = ch
			grid[r][c].fg = fg
		}
		c++
	}
}

// glyphs is a border character set.
type glyphs struct {
	h, v             rune
	tl, tr, bl, br   rune
	roundTL, roundTR rune
	roundBL, roundBR rune
	rounded          bool
}

var (
	solidGlyphs  = glyphs{h: '─', v: '│', tl: '┌', tr: '┐', bl: '└', br: '┘', roundTL: '╭', roundTR: '╮', roundBL: '╰', roundBR: '╯'}
	dashedGlyphs = glyphs{h: '╌', v: '╎', tl: '┌', tr: '┐', bl: '└', br: '┘', roundTL: '╭', roundTR: '╮', roundBL: '╰', roundBR: '╯'}
	dottedGlyphs = glyphs{h: '┈', v: '┊', tl: '┌', tr: '┐', bl: '└', br: '┘', roundTL: '╭', roundTR: '╮', roundBL: '╰', roundBR: '╯'}
	heavyGlyphs  = glyphs{h: '━', v: '┃', tl: '┏', tr: '┓', bl: '┗', br: '┛', roundTL: '╭', roundTR: '╮', roundBL: '╰', roundBR: '╯'}
)

// borderGlyphs returns the character set for e's outline, or nil when no
// outline is drawn.
func borderGlyphs(e canvas.Element, selected bool) *glyphs {
	var g glyphs
	switch {
	case selected:
		g = heavyGlyphs
	case e.Style.BorderWidth <= 0:
		return nil
	default:
		switch strings.ToLower(e.Style.BorderStyle) {
		case "none", "hidden":
			return nil
		case "dashed":
			g = dashedGlyphs
		case "dotted":
			g = dottedGlyphs
		default:
			g = solidGlyphs
		}
	}
	g.rounded = e.CornerRadius() >= CellWidth
	return &g
}

// at picks the glyph for a cell given which neighbours belong to the same
// element. Interior cells report false.
func (g *glyphs) at(up, down, left, right bool) (rune, bool) {
	top, bottom := !up, !down
	l, r := !left, !right
	switch {
	case top && bottom:
		return g.h, true
	case top && l:
		return g.pick(g.tl, g.roundTL), true
	case top && r:
		return g.pick(g.tr, g.roundTR), true
	case bottom && l:
		return g.pick(g.bl, g.roundBL), true
	case bottom && r:
		return g.pick(g.br, g.roundBR), true
	case top || bottom:
		return g.h, true
	case l || r:
		return g.v, true
	}
	return 0, false
}

func (g *glyphs) pick(square, round rune) rune {
	if g.rounded {
		return round
	}
	return square
}

// gridDot reports whether a grid dot falls inside the cell.
func gridDot(pitch float64, v Viewport, col, row int) bool {
	if pitch <= 0 {
		return false
	}
	step := pitch * gridEvery
	x := v.Origin.X + float64(col)*CellWidth
	y := v.Origin.Y + float64(row)*CellHeight
	return spans(x, CellWidth, step) && spans(y, CellHeight, step)
}

// spans reports whether [lo, lo+size) contains a multiple of step.
func spans(lo, size, step float64) bool {
	return math.Ceil(lo/step)*step < lo+size
}

// termColor converts a CSS color to the #rrggbb form lipgloss accepts.
// Alpha is dropped; transparent and unknown colors map to "".
func termColor(s string) string {
	hex, ok := render.NormalizeColor(s)
	if !ok {
		return ""
	}
	return hex[:7]
}
