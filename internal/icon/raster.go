package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// DefaultColor is the base of the circular gradient (cyan fading to blue).
var DefaultColor = color.NRGBA{R: 0, G: 212, B: 255, A: 255}

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	transparent = color.NRGBA{}
)

// Glyph geometry on a 128x128 design grid. Smaller icons are scaled down.
const (
	designSize = 128.0

	docLeft, docTop      = 36.0, 28.0
	docRight, docBottom  = 92.0, 100.0
	ruleLeft, ruleRight  = 48.0, 80.0
	ruleY, ruleHalfWidth = 86.0, 3.0
)

func newCanvas(size int, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return img
}

func distance(x, y int, center float64) float64 {
	dx, dy := float64(x)-center, float64(y)-center
	return math.Sqrt(dx*dx + dy*dy)
}

// gradientPos maps a distance inside the circle to [0, 1].
func gradientPos(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return dist / radius
}

// Circle renders an opaque icon: a filled circle shaded from base at the
// center outwards, on a white background.
func Circle(size int, base color.NRGBA) *image.NRGBA {
	img := newCanvas(size, white)

	center := float64(size) / 2
	radius := float64(size)/2 - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := distance(x, y, center)
			if dist > radius {
				continue
			}
			t := gradientPos(dist, radius)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(float64(base.R) * (1 - t*0.5)),
				G: uint8(float64(base.G) * (1 - t*0.3)),
				B: uint8(math.Min(255, float64(base.B)+(255-float64(base.B))*t*0.5)),
				A: 255,
			})
		}
	}
	return img
}

// Checkmark renders the extension icon: a document outline with a check
// mark, in white, over a cyan-to-blue disc. Everything outside the disc is
// fully transparent.
func Checkmark(size int) *image.NRGBA {
	img := newCanvas(size, transparent)

	scale := float64(size) / designSize
	center := float64(size) / 2
	radius := center - 2*scale

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := distance(x, y, center)
			if dist > radius {
				continue
			}
			t := gradientPos(dist, radius)
			px := color.NRGBA{R: 0, G: uint8(212 - 100*t), B: 255, A: 255}

			nx, ny := float64(x)/scale, float64(y)/scale
			if onDocument(nx, ny, scale) || onCheck(nx, ny, scale) {
				px = white
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// onDocument reports whether the design-grid point lies on the document
// border or on the text rule under the check mark.
func onDocument(nx, ny, scale float64) bool {
	border := math.Max(2, 4*scale) / scale

	if nx >= docLeft && nx <= docRight && ny >= docTop && ny <= docBottom {
		if math.Abs(nx-docLeft) < border || math.Abs(nx-docRight) < border ||
			math.Abs(ny-docTop) < border || math.Abs(ny-docBottom) < border {
			return true
		}
	}

	return nx >= ruleLeft && nx <= ruleRight && math.Abs(ny-ruleY) < ruleHalfWidth
}

// onCheck reports whether the design-grid point lies on either stroke of the
// check mark: (48,64)-(58,74) going down, then (58,74)-(80,52) going up.
func onCheck(nx, ny, scale float64) bool {
	width := math.Max(3, 6*scale) / scale

	if nx >= 48 && nx <= 58 && ny >= 64 && ny <= 74 {
		if math.Abs(ny-(64+(nx-48))) < width {
			return true
		}
	}
	if nx >= 58 && nx <= 80 && ny >= 52 && ny <= 74 {
		if math.Abs(ny-(74-(nx-58))) < width {
			return true
		}
	}
	return false
}
