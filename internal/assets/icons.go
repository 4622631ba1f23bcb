package assets

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

const iconSize = 32

const (
	iconFill   = "fill:white"
	iconCutout = "fill:black"
	iconStroke = "stroke:black;stroke-width:2.5;stroke-linecap:round;fill:none"
)

// Icons maps an icon name, as used in the link config, to its renderer.
var Icons = map[string]func() []byte{
	"github": GitHubIcon,
	"git":    GitIcon,
}

// GitHubIcon draws a round badge with a cat head cut out of it.
func GitHubIcon() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(iconSize, iconSize, 0, 0, iconSize, iconSize)
	canvas.Title("GitHub")
	canvas.Circle(16, 16, 15, iconFill)
	canvas.Polygon([]int{8, 9, 13}, []int{14, 6, 10}, iconCutout)
	canvas.Polygon([]int{24, 23, 19}, []int{14, 6, 10}, iconCutout)
	canvas.Ellipse(16, 15, 8, 6, iconCutout)
	canvas.Roundrect(13, 19, 6, 11, 2, 2, iconCutout)
	canvas.End()
	return buf.Bytes()
}

// GitIcon draws the diamond with a branching history.
func GitIcon() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(iconSize, iconSize, 0, 0, iconSize, iconSize)
	canvas.Title("Git")
	canvas.Polygon([]int{16, 31, 16, 1}, []int{1, 16, 31, 16}, iconFill)
	canvas.Line(9, 9, 21, 21, iconStroke)
	canvas.Line(15, 15, 21, 11, iconStroke)
	canvas.Circle(21, 21, 3, iconCutout)
	canvas.Circle(21, 11, 3, iconCutout)
	canvas.End()
	return buf.Bytes()
}
