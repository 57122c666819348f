package transform

import (
	"fmt"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

// rowKernel computes interior columns 1..cols-2 of dst from the source rows
// above, at and below it.
type rowKernel func(dst, up, mid, down []uint8)

// Sharpen applies the 5-tap kernel 5*c - n - s - e - w to interior
// samples, clamped to [0, 255]. Border samples become 0.
func Sharpen(img *ir.Image, opts ...Option) error {
	if err := convolve(img, newConfig(opts), sharpenRow); err != nil {
		return fmt.Errorf("sharpen: %w", err)
	}
	return nil
}

// Smooth replaces interior samples with the sum of their eight neighbours
// divided by nine, rounded half up. The centre sample does not contribute.
// Border samples become 0.
func Smooth(img *ir.Image, opts ...Option) error {
	if err := convolve(img, newConfig(opts), smoothRow); err != nil {
		return fmt.Errorf("smooth: %w", err)
	}
	return nil
}

func sharpenRow(dst, up, mid, down []uint8) {
	for x := 1; x < len(mid)-1; x++ {
		v := 5*int(mid[x]) - int(mid[x-1]) - int(mid[x+1]) - int(up[x]) - int(down[x])
		dst[x] = clamp(v)
	}
}

func smoothRow(dst, up, mid, down []uint8) {
	for x := 1; x < len(mid)-1; x++ {
		sum := int(up[x-1]) + int(up[x]) + int(up[x+1]) +
			int(mid[x-1]) + int(mid[x+1]) +
			int(down[x-1]) + int(down[x]) + int(down[x+1])
		dst[x] = uint8(float64(sum)/9.0 + 0.5)
	}
}

// convolve runs k over every plane into zeroed scratch buffers and swaps
// them in. Nothing in img changes unless all scratch buffers were
// allocated.
func convolve(img *ir.Image, c config, k rowKernel) error {
	planes := img.Planes()
	scratch := make([]*pixbuf.Buffer, 0, len(planes))
	for range planes {
		b, err := c.alloc.New(img.Rows, img.Cols)
		if err != nil {
			for _, s := range scratch {
				s.Release()
			}
			return err
		}
		scratch = append(scratch, b)
	}

	for i, src := range planes {
		dst := scratch[i]
		forRows(c.workers, 1, img.Rows-1, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				k(dst.Row(y), src.Row(y-1), src.Row(y), src.Row(y+1))
			}
		})
	}

	for _, p := range planes {
		p.Release()
	}
	img.Red, img.Green, img.Blue = scratch[0], scratch[1], scratch[2]
	return nil
}
