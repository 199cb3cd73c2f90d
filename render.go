package cursors

import (
	"image/color"
	"math"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/colornames"
)

// Canvas is the drawing surface of the overlay. *gg.Context satisfies it.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)

	SetColor(c color.Color)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	Stroke() error
	Fill() error

	SetFont(face text.Face)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

// DrawOverlay draws every shown cursor onto dc and then notifies change
// listeners with the intersections of the cursors on the plot.
//
// dc is expected untranslated: the plot box starts at the host's
// PlotOffset.
func (p *Plot) DrawOverlay(dc Canvas) {
	off := p.host.PlotOffset()
	update := make([]Intersections, 0, len(p.cursors))

	for _, c := range p.cursors {
		if !c.Show {
			c.Intersections = nil
			continue
		}
		dc.Push()
		dc.Translate(off.X, off.Y)

		resolvePosition(p.host, c)
		in := findIntersections(p.host, c)
		snapToPlot(p.host, c, in)
		c.Intersections = in

		if c.resolved() {
			p.drawLines(dc, c)
			dc.SetFont(p.fonts.face(c.FontFamily, c.FontSize))
			p.drawLabel(dc, c)
			p.drawIntersections(dc, c, in)
			p.drawValues(dc, c)
			p.drawManipulator(dc, c)
			if in != nil {
				update = append(update, *in)
			} else {
				update = append(update, offPlot(c))
			}
		}
		dc.Pop()
	}

	p.thumbs.draw(dc)
	p.listeners.notify(update)
}

// crisp offsets odd line widths by half a pixel so lines land on pixel
// centers.
func crisp(v, lineWidth float64) float64 {
	if math.Mod(lineWidth, 2) != 0 {
		return math.Floor(v) + 0.5
	}
	return math.Floor(v)
}

// dashSegments splits [0, length] into 2n-1 equal divisions and returns the
// even ones as [from, to] pairs. n <= 1 yields one solid segment.
func dashSegments(length float64, n int) [][2]float64 {
	if n <= 1 {
		return [][2]float64{{0, length}}
	}
	divisions := 2*n - 1
	delta := length / float64(divisions)
	segs := make([][2]float64, 0, n)
	for i := 0; i < divisions; i += 2 {
		segs = append(segs, [2]float64{delta * float64(i), delta * float64(i+1)})
	}
	return segs
}

func (p *Plot) drawLines(dc Canvas, c *Cursor) {
	if c.LineWidth <= 0 {
		return
	}
	w, h := p.host.PlotWidth(), p.host.PlotHeight()
	dc.SetColor(ParseColor(c.Color))
	dc.SetLineWidth(c.LineWidth)

	if c.HasVerticalLine() {
		x := crisp(c.X, c.LineWidth)
		for _, s := range dashSegments(h, c.Dashes) {
			dc.MoveTo(x, s[0])
			dc.LineTo(x, s[1])
		}
	}
	if c.HasHorizontalLine() {
		y := crisp(c.Y, c.LineWidth)
		for _, s := range dashSegments(w, c.Dashes) {
			dc.MoveTo(s[0], y)
			dc.LineTo(s[1], y)
		}
	}
	stroke(dc, c)
}

// labelAnchor places text beside the cursor on the side facing the plot
// center. offset lifts the text when it sits above the cursor and other
// text is stacked below it. ax is the horizontal anchor for
// DrawStringAnchored.
func (p *Plot) labelAnchor(c *Cursor, offset float64) (x, y, ax float64) {
	pad := p.opts.labelPadding
	x, y = c.X, c.Y
	if x > p.host.PlotWidth()/2 {
		x -= pad
		ax = 1
	} else {
		x += pad
	}
	if y > p.host.PlotHeight()/2 {
		y -= pad + offset
	} else {
		y += pad + c.FontSize
	}
	return x, y, ax
}

func (p *Plot) drawLabel(dc Canvas, c *Cursor) {
	if !c.ShowLabel {
		return
	}
	offset := 0.0
	if c.ShowValuesRelativeToSeries >= 0 {
		offset = p.opts.labelPadding * 2
	}
	x, y, ax := p.labelAnchor(c, offset)
	dc.SetColor(ParseColor(c.Color))
	dc.DrawStringAnchored(c.Name, x, y, ax, 0)
}

func (p *Plot) drawIntersections(dc Canvas, c *Cursor, in *Intersections) {
	if in == nil || !c.ShowIntersections.Enabled() || !c.HasVerticalLine() {
		return
	}
	series := p.host.Series()
	m := p.opts.markerSize
	col := ParseColor(c.IntersectionColor)

	for i, pt := range in.Points {
		if !c.ShowIntersections.Includes(i) || pt.Series >= len(series) {
			continue
		}
		s := series[pt.Series]
		px, okx := project(p.host.XAxis(axisNumber(s.XAxis)), pt.X)
		py, oky := project(p.host.YAxis(axisNumber(s.YAxis)), pt.Y)
		if !okx || !oky {
			continue
		}
		dc.SetColor(col)
		dc.DrawRectangle(math.Floor(px)-m/2, math.Floor(py)-m/2, m, m)
		fill(dc, c)

		tx, ty, ax := px+m, py+c.FontSize, 0.0
		switch c.IntersectionLabelPosition {
		case LabelBottomLeft:
			tx, ax = px-m, 1
		case LabelTopLeft:
			tx, ty, ax = px-m, py-m, 1
		case LabelTopRight:
			ty = py - m
		case LabelAbove:
			tx, ty, ax = px, py-m, 0.5
		case LabelBelow:
			tx, ty, ax = px, py+m+c.FontSize, 0.5
		}
		dc.DrawStringAnchored(p.formatValue(pt.Y), tx, ty, ax, 0)
	}
}

func (p *Plot) drawValues(dc Canvas, c *Cursor) {
	idx := c.ShowValuesRelativeToSeries
	series := p.host.Series()
	if idx < 0 || idx >= len(series) {
		return
	}
	s := series[idx]
	xa, ya := p.host.XAxis(axisNumber(s.XAxis)), p.host.YAxis(axisNumber(s.YAxis))
	if xa == nil || ya == nil {
		return
	}
	stack := 0.0
	if c.ShowLabel {
		stack = p.opts.labelPadding * 2
	}
	x, y, ax := p.labelAnchor(c, stack)
	dc.SetColor(ParseColor(c.Color))
	dc.DrawStringAnchored(p.formatPair(xa.C2P(c.X), ya.C2P(c.Y)), x, y+stack, ax, 0)
}

func (p *Plot) drawManipulator(dc Canvas, c *Cursor) {
	if c.Symbol == SymbolNone {
		return
	}
	size := p.opts.symbolSize
	x, y := crisp(c.X, c.LineWidth), crisp(c.Y, c.LineWidth)

	col := ParseColor(c.Color)
	if c.Highlighted() {
		col = colornames.Orange
	}

	fn, ok := lookupSymbol(c.Symbol)
	if !ok {
		dc.SetColor(col)
		dc.DrawRectangle(x-size/2, y-size/2, size, size)
		fill(dc, c)
		return
	}

	dc.SetColor(colornames.White)
	dc.DrawRectangle(x-(size/2+1), y-(size/2+1), size+2, size+2)
	fill(dc, c)

	dc.SetColor(col)
	dc.SetLineWidth(math.Max(c.LineWidth, 1))
	fn(dc, x, y, size/2)
	stroke(dc, c)
}

func stroke(dc Canvas, c *Cursor) {
	if err := dc.Stroke(); err != nil {
		Logger().Debug("cursors: stroke failed", "name", c.Name, "err", err)
	}
}

func fill(dc Canvas, c *Cursor) {
	if err := dc.Fill(); err != nil {
		Logger().Debug("cursors: fill failed", "name", c.Name, "err", err)
	}
}
