package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
)

// ErrDegenerateImage is returned by Contrast when every gray sample is equal.
var ErrDegenerateImage = errors.New("degenerate image: min equals max")

// Negate replaces every sample v with 255-v on all three planes.
func Negate(img *ir.Image, opts ...Option) {
	c := newConfig(opts)
	for _, p := range img.Planes() {
		forRows(c.workers, 0, img.Rows, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				row := p.Row(y)
				for x := range row {
					row[x] = 255 - row[x]
				}
			}
		})
	}
}

// grayOf weights the channels 0.3/0.6/0.1 and truncates. The explicit
// conversions keep each product rounded on its own so the compiler cannot
// fuse them into a multiply-add and shift results by one.
func grayOf(r, g, b uint8) uint8 {
	return uint8(float64(0.3*float64(r)) + float64(0.6*float64(g)) + float64(0.1*float64(b)))
}

// Grayscale writes the weighted gray value into the red plane and marks the
// image grayscale. Green and blue are left as they were.
func Grayscale(img *ir.Image, opts ...Option) {
	c := newConfig(opts)
	forRows(c.workers, 0, img.Rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			red, green, blue := img.Red.Row(y), img.Green.Row(y), img.Blue.Row(y)
			for x := range red {
				red[x] = grayOf(red[x], green[x], blue[x])
			}
		}
	})
	img.Grayscale = true
}

func clamp(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Brighten adds delta to every sample, clamping to [0, 255]. Delta may be
// negative.
func Brighten(img *ir.Image, delta int, opts ...Option) {
	c := newConfig(opts)
	for _, p := range img.Planes() {
		forRows(c.workers, 0, img.Rows, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				row := p.Row(y)
				for x := range row {
					row[x] = clamp(int(row[x]) + delta)
				}
			}
		})
	}
}

// MinMax scans the red (gray) plane, starting from the sample at (0, 0).
func MinMax(img *ir.Image) (lo, hi int) {
	lo = int(img.Red.At(0, 0))
	hi = lo
	for y := 0; y < img.Rows; y++ {
		for _, v := range img.Red.Row(y) {
			if int(v) < lo {
				lo = int(v)
			}
			if int(v) > hi {
				hi = int(v)
			}
		}
	}
	return lo, hi
}

// ContrastScale returns round-half-up(255 / (hi - lo)).
func ContrastScale(lo, hi int) int {
	return int(math.Floor(255.0/float64(hi-lo) + 0.5))
}

// Contrast converts the image to grayscale and stretches the gray range
// by an integer scale: v' = scale * (v - lo). The result is not clamped;
// values past 255 wrap modulo 256 when stored.
func Contrast(img *ir.Image, opts ...Option) error {
	c := newConfig(opts)
	Grayscale(img, opts...)

	lo, hi := MinMax(img)
	if lo == hi {
		return fmt.Errorf("%w: all samples are %d", ErrDegenerateImage, lo)
	}
	scale := ContrastScale(lo, hi)

	forRows(c.workers, 0, img.Rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := img.Red.Row(y)
			for x := range row {
				row[x] = uint8(scale * (int(row[x]) - lo))
			}
		}
	})
	return nil
}
