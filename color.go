package cursors

import (
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// fallbackColor is used for names that cannot be parsed.
var fallbackColor color.Color = colornames.Gray

// ParseColor converts a CSS color name ("gray", "darkgray") or a hex string
// ("#e00000", "e00", "#ff000080") to a color. Unknown values parse as gray.
func ParseColor(s string) color.Color {
	c, ok := lookupColor(s)
	if !ok {
		Logger().Debug("cursors: unknown color", "value", s)
		return fallbackColor
	}
	return c
}

func lookupColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	hex := strings.TrimPrefix(s, "#")
	if !isHex(hex) {
		return nil, false
	}
	switch len(hex) {
	case 3, 4, 6, 8:
		return gg.Hex(hex).Color(), true
	}
	return nil, false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
