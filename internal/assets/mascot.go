package assets

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

// Mascot container size. The home page places the body image and the eye
// sprites inside a box of this size.
const (
	MascotWidth  = 749
	MascotHeight = 435
)

// EyeSize is the width and height of the eye sprite. A sprite's top-left
// corner sits at its anchor.
const EyeSize = 40

const (
	furFill    = "fill:rgb(106,215,229);stroke:rgb(0,0,0);stroke-width:4"
	scleraFill = "fill:white;stroke:rgb(0,0,0);stroke-width:4"
	snoutFill  = "fill:rgb(246,210,162);stroke:rgb(0,0,0);stroke-width:3"
	toothFill  = "fill:white;stroke:rgb(0,0,0);stroke-width:2"
	pupilFill  = "fill:rgb(0,0,0)"
	glintFill  = "fill:white"
	limbFill   = "fill:rgb(246,210,162);stroke:rgb(0,0,0);stroke-width:3"
)

// eyeAnchors are the resting top-left corners of the two sprites, matching the
// tracker's default eyes.
var eyeAnchors = [2][2]int{{260, 218}, {386, 218}}

// socketRadius leaves room for a pupil moved 35px from rest.
const socketRadius = 58

func drawBody(canvas *svg.SVG) {
	canvas.Gid("body")
	canvas.Circle(160, 110, 38, furFill) // left ear
	canvas.Circle(526, 110, 38, furFill) // right ear
	canvas.Ellipse(170, 330, 34, 18, limbFill)
	canvas.Ellipse(516, 330, 34, 18, limbFill)
	canvas.Ellipse(270, 420, 40, 14, limbFill)
	canvas.Ellipse(416, 420, 40, 14, limbFill)
	canvas.Ellipse(343, 250, 200, 175, furFill)
	for _, a := range eyeAnchors {
		cx, cy := a[0]+EyeSize/2, a[1]+EyeSize/2
		canvas.Circle(cx, cy, socketRadius, scleraFill)
	}
	canvas.Roundrect(329, 338, 13, 22, 3, 3, toothFill)
	canvas.Roundrect(344, 338, 13, 22, 3, 3, toothFill)
	canvas.Ellipse(343, 320, 46, 26, snoutFill)
	canvas.Ellipse(343, 306, 20, 12, pupilFill)
	canvas.Gend()
}

func drawPupil(canvas *svg.SVG, x, y int) {
	r := EyeSize / 2
	canvas.Circle(x+r, y+r, r, pupilFill)
	canvas.Circle(x+r+7, y+r-7, 6, glintFill)
}

// BodySVG renders the mascot without pupils.
func BodySVG() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(MascotWidth, MascotHeight, 0, 0, MascotWidth, MascotHeight)
	canvas.Title("gopher")
	drawBody(canvas)
	canvas.End()
	return buf.Bytes()
}

// EyeSVG renders a single pupil sprite.
func EyeSVG() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(EyeSize, EyeSize, 0, 0, EyeSize, EyeSize)
	drawPupil(canvas, 0, 0)
	canvas.End()
	return buf.Bytes()
}

// MascotSVG renders the body with both pupils at rest. The mobile layout shows
// it as a single static image.
func MascotSVG() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(MascotWidth, MascotHeight, 0, 0, MascotWidth, MascotHeight)
	canvas.Title("gopher")
	drawBody(canvas)
	for _, a := range eyeAnchors {
		drawPupil(canvas, a[0], a[1])
	}
	canvas.End()
	return buf.Bytes()
}
