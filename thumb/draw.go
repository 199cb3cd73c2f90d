package thumb

import "image/color"

// Canvas is the drawing surface for thumbs. *gg.Context satisfies it.
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(w float64)
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error
}

// Draw draws the thumbs accepted by keep, shifted by (dx, dy). A nil keep
// draws every thumb. The active thumb gets a darker outline.
func (l *Layer) Draw(dc Canvas, dx, dy float64, keep func(*Thumb) bool) error {
	l.mu.Lock()
	type shape struct {
		x, y, r float64
		fill    color.Color
		active  bool
	}
	shapes := make([]shape, 0, len(l.thumbs))
	for _, t := range l.thumbs {
		if keep != nil && !keep(t) {
			continue
		}
		shapes = append(shapes, shape{x: t.x + dx, y: t.y + dy, r: t.radius, fill: t.color, active: t == l.active})
	}
	l.mu.Unlock()

	for _, s := range shapes {
		dc.SetColor(s.fill)
		dc.DrawCircle(s.x, s.y, s.r)
		if err := dc.Fill(); err != nil {
			return err
		}
		outline := color.Color(color.White)
		if s.active {
			outline = color.Black
		}
		dc.SetColor(outline)
		dc.SetLineWidth(1)
		dc.DrawCircle(s.x, s.y, s.r)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
