package cursors

import (
	"math"
	"sync"
)

// SymbolNone hides the manipulator glyph and disables its hit region.
const SymbolNone = "none"

// SymbolFunc adds the outline of a glyph centered on (x, y) to the current
// path of dc. The caller strokes it.
type SymbolFunc func(dc Canvas, x, y, radius float64)

var (
	symbolsMu sync.RWMutex
	symbols   = map[string]SymbolFunc{
		"circle":   drawCircleSymbol,
		"square":   drawSquareSymbol,
		"diamond":  drawDiamondSymbol,
		"triangle": drawTriangleSymbol,
		"cross":    drawCrossSymbol,
	}
)

// RegisterSymbol makes a manipulator glyph available under name, replacing
// any previous registration. A nil fn removes it; cursors using an
// unregistered symbol draw a plain filled square.
func RegisterSymbol(name string, fn SymbolFunc) {
	symbolsMu.Lock()
	defer symbolsMu.Unlock()
	if fn == nil {
		delete(symbols, name)
		return
	}
	symbols[name] = fn
}

func lookupSymbol(name string) (SymbolFunc, bool) {
	symbolsMu.RLock()
	defer symbolsMu.RUnlock()
	fn, ok := symbols[name]
	return fn, ok
}

func drawCircleSymbol(dc Canvas, x, y, radius float64) {
	dc.DrawCircle(x, y, radius)
}

// The polygon symbols are scaled to enclose the same area as the circle.

func drawSquareSymbol(dc Canvas, x, y, radius float64) {
	size := radius * math.Sqrt(math.Pi) / 2
	dc.DrawRectangle(x-size, y-size, size*2, size*2)
}

func drawDiamondSymbol(dc Canvas, x, y, radius float64) {
	size := radius * math.Sqrt(math.Pi/2)
	dc.MoveTo(x-size, y)
	dc.LineTo(x, y-size)
	dc.LineTo(x+size, y)
	dc.LineTo(x, y+size)
	dc.ClosePath()
}

func drawTriangleSymbol(dc Canvas, x, y, radius float64) {
	sin60 := math.Sin(math.Pi / 3)
	size := radius * math.Sqrt(2*math.Pi/sin60)
	height := size * sin60
	dc.MoveTo(x-size/2, y+height/2)
	dc.LineTo(x+size/2, y+height/2)
	dc.LineTo(x, y-height/2)
	dc.ClosePath()
}

func drawCrossSymbol(dc Canvas, x, y, radius float64) {
	size := radius * math.Sqrt(math.Pi) / 2
	dc.MoveTo(x-size, y-size)
	dc.LineTo(x+size, y+size)
	dc.MoveTo(x-size, y+size)
	dc.LineTo(x+size, y-size)
}
