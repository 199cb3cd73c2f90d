package cursors

// HitPriority decides which cursor and region win when several hit regions
// lie under the pointer.
type HitPriority uint8

const (
	// PriorityLastMatch checks each cursor's horizontal line, vertical line
	// and manipulator in that order, letting every match overwrite the
	// previous one, across all cursors. The last matching cursor wins.
	PriorityLastMatch HitPriority = iota

	// PriorityOrdered prefers any manipulator over any vertical line over
	// any horizontal line. Among cursors with the same region the first
	// one wins.
	PriorityOrdered
)

// String returns a string representation of the priority.
func (p HitPriority) String() string {
	switch p {
	case PriorityLastMatch:
		return "last-match"
	case PriorityOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// hits records which regions of one cursor contain a point.
type hits struct {
	manipulator, vertical, horizontal bool
}

// best returns the region with the highest precedence.
func (h hits) best() Region {
	switch {
	case h.manipulator:
		return RegionManipulator
	case h.vertical:
		return RegionVertical
	case h.horizontal:
		return RegionHorizontal
	default:
		return RegionNone
	}
}

func (h hits) has(r Region) bool {
	switch r {
	case RegionManipulator:
		return h.manipulator
	case RegionVertical:
		return h.vertical
	case RegionHorizontal:
		return h.horizontal
	default:
		return false
	}
}

// grabbable reports whether c can be hovered or grabbed.
func grabbable(c *Cursor) bool {
	return c.Movable && c.Show && c.resolved()
}

// hitRegions tests the point (x, y), in plot-box pixels, against c.
func (p *Plot) hitRegions(c *Cursor, x, y float64) hits {
	w, h := p.host.PlotWidth(), p.host.PlotHeight()
	m := p.opts.grabMargin
	r := p.opts.symbolSize/2 + m
	return hits{
		manipulator: c.Symbol != SymbolNone &&
			x > c.X-r && x < c.X+r && y > c.Y-r && y < c.Y+r,
		vertical: c.HasVerticalLine() &&
			x > c.X-m && x < c.X+m && y > 0 && y < h,
		horizontal: c.HasHorizontalLine() &&
			y > c.Y-m && y < c.Y+m && x > 0 && x < w,
	}
}

// regionAt returns the region of c under (x, y).
func (p *Plot) regionAt(c *Cursor, x, y float64) Region {
	if !grabbable(c) {
		return RegionNone
	}
	return p.hitRegions(c, x, y).best()
}

// hitTest returns the cursor and region to grab at (x, y) under the
// configured priority, or nil.
func (p *Plot) hitTest(x, y float64) (*Cursor, Region) {
	if p.opts.priority == PriorityOrdered {
		return p.hitTestOrdered(x, y)
	}
	return p.hitTestLastMatch(x, y)
}

func (p *Plot) hitTestLastMatch(x, y float64) (*Cursor, Region) {
	var (
		target *Cursor
		region Region
	)
	for _, c := range p.cursors {
		if !grabbable(c) {
			continue
		}
		h := p.hitRegions(c, x, y)
		if h.horizontal {
			target, region = c, RegionHorizontal
		}
		if h.vertical {
			target, region = c, RegionVertical
		}
		if h.manipulator {
			target, region = c, RegionManipulator
		}
	}
	return target, region
}

func (p *Plot) hitTestOrdered(x, y float64) (*Cursor, Region) {
	all := make([]hits, len(p.cursors))
	for i, c := range p.cursors {
		if grabbable(c) {
			all[i] = p.hitRegions(c, x, y)
		}
	}
	for _, r := range []Region{RegionManipulator, RegionVertical, RegionHorizontal} {
		for i, h := range all {
			if h.has(r) {
				return p.cursors[i], r
			}
		}
	}
	return nil, RegionNone
}
