package cursors

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"gray", colornames.Gray},
		{"DarkGray", colornames.Darkgray},
		{" orange ", colornames.Orange},
		{"#e00000", gg.Hex("e00000").Color()},
		{"00f", color.RGBA{B: 0xff, A: 0xff}},
		{"#ABC", gg.Hex("aabbcc").Color()},
		{"#ff000080", gg.Hex("ff000080").Color()},
		{"", colornames.Gray},
		{"#12345", colornames.Gray},
		{"chartreuse-ish", colornames.Gray},
		{"#zzzzzz", colornames.Gray},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseColor(tt.in); !sameColor(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
