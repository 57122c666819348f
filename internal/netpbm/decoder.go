package netpbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

// DecodeOptions controls pixmap decoding.
type DecodeOptions struct {
	Allocator pixbuf.Allocator // nil uses pixbuf.LimitAllocator{}
}

// Decode reads a P3 or P6 pixmap into a three-channel image. Pixels are
// read in row-major order, red then green then blue for every sample.
func Decode(r io.Reader, opts ...func(o *DecodeOptions)) (*ir.Image, error) {
	opt := DecodeOptions{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Allocator == nil {
		opt.Allocator = pixbuf.LimitAllocator{}
	}

	br := bufio.NewReader(r)
	h, err := readHeader(br, decodable)
	if err != nil {
		return nil, err
	}

	img := &ir.Image{
		Format:   h.Format,
		Comment:  h.Comment,
		Rows:     h.Rows,
		Cols:     h.Cols,
		MaxValue: h.MaxValue,
	}
	if err := allocPlanes(img, opt.Allocator); err != nil {
		return nil, err
	}

	if h.Format.Binary() {
		err = readBinaryRGB(br, img)
	} else {
		err = readASCIIRGB(br, img)
	}
	if err != nil {
		img.Release()
		return nil, err
	}
	return img, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string, opts ...func(o *DecodeOptions)) (*ir.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// allocPlanes allocates all three channel buffers or none of them.
func allocPlanes(img *ir.Image, alloc pixbuf.Allocator) error {
	planes := make([]*pixbuf.Buffer, 0, 3)
	for i := 0; i < 3; i++ {
		b, err := alloc.New(img.Rows, img.Cols)
		if err != nil {
			for _, p := range planes {
				p.Release()
			}
			return err
		}
		planes = append(planes, b)
	}
	img.Red, img.Green, img.Blue = planes[0], planes[1], planes[2]
	return nil
}

func readBinaryRGB(br *bufio.Reader, img *ir.Image) error {
	row := make([]byte, img.Cols*3)
	for y := 0; y < img.Rows; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: row %d of %d", ErrTruncated, y, img.Rows)
			}
			return err
		}
		red, green, blue := img.Red.Row(y), img.Green.Row(y), img.Blue.Row(y)
		for x := 0; x < img.Cols; x++ {
			red[x] = row[3*x]
			green[x] = row[3*x+1]
			blue[x] = row[3*x+2]
		}
	}
	return nil
}

// readASCIIRGB narrows every decimal value to 8 bits; out-of-range values
// wrap rather than fail.
func readASCIIRGB(br *bufio.Reader, img *ir.Image) error {
	planes := img.Planes()
	for y := 0; y < img.Rows; y++ {
		for x := 0; x < img.Cols; x++ {
			for c, p := range planes {
				v, err := readInt(br)
				if err != nil {
					if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
						return fmt.Errorf("%w: sample (%d,%d) channel %d", ErrTruncated, y, x, c)
					}
					return fmt.Errorf("%w: sample (%d,%d): %v", ErrMalformedData, y, x, err)
				}
				p.Set(y, x, uint8(v))
			}
		}
	}
	return nil
}
