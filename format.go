package cursors

// formatValue formats a data value to two decimals for the plot's locale.
func (p *Plot) formatValue(v float64) string {
	return p.printer.Sprintf("%.2f", v)
}

// formatPair formats an "x, y" pair to two decimals.
func (p *Plot) formatPair(x, y float64) string {
	return p.printer.Sprintf("%.2f, %.2f", x, y)
}
