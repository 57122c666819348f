package transform

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/nfnt/resize"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

// Interpolation selects the resampling kernel used by Resize.
type Interpolation = resize.InterpolationFunction

var interpolations = map[string]Interpolation{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// ParseInterpolation maps a kernel name to its interpolation. The empty
// string selects nearest neighbour.
func ParseInterpolation(name string) (Interpolation, error) {
	if name == "" {
		return resize.NearestNeighbor, nil
	}
	if interp, ok := interpolations[strings.ToLower(name)]; ok {
		return interp, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q", name)
}

// Resize resamples all three planes to cols×rows and updates the image
// dimensions. The image is untouched if allocation fails.
func Resize(img *ir.Image, cols, rows int, interp Interpolation, opts ...Option) error {
	c := newConfig(opts)
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("resize: invalid target %dx%d", cols, rows)
	}

	out := make([]*pixbuf.Buffer, 0, 3)
	for i := 0; i < 3; i++ {
		b, err := c.alloc.New(rows, cols)
		if err != nil {
			for _, o := range out {
				o.Release()
			}
			return fmt.Errorf("resize: %w", err)
		}
		out = append(out, b)
	}

	resized := resize.Resize(uint(cols), uint(rows), toRGBA(img), interp)
	forRows(c.workers, 0, rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			red, green, blue := out[0].Row(y), out[1].Row(y), out[2].Row(y)
			for x := 0; x < cols; x++ {
				px := color.RGBAModel.Convert(resized.At(resized.Bounds().Min.X+x, resized.Bounds().Min.Y+y)).(color.RGBA)
				red[x], green[x], blue[x] = px.R, px.G, px.B
			}
		}
	})

	img.Release()
	img.Red, img.Green, img.Blue = out[0], out[1], out[2]
	img.Rows, img.Cols = rows, cols
	return nil
}

func toRGBA(img *ir.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.Cols, img.Rows))
	for y := 0; y < img.Rows; y++ {
		red, green, blue := img.Red.Row(y), img.Green.Row(y), img.Blue.Row(y)
		px := dst.Pix[y*dst.Stride : y*dst.Stride+4*img.Cols]
		for x := 0; x < img.Cols; x++ {
			px[4*x] = red[x]
			px[4*x+1] = green[x]
			px[4*x+2] = blue[x]
			px[4*x+3] = 0xff
		}
	}
	return dst
}
