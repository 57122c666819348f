package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

// Encode writes img as P2, P3, P5 or P6 depending on binary and gray.
// With gray set only the red plane, which holds the gray values, is
// written.
func Encode(w io.Writer, img *ir.Image, binary, gray bool) error {
	format := ir.FormatFor(binary, gray)
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n", format.Magic()); err != nil {
		return err
	}
	if img.Comment != "" {
		if _, err := fmt.Fprintf(bw, "%s\n", img.Comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n%d\n", img.Cols, img.Rows, img.MaxValue); err != nil {
		return err
	}

	planes := img.Planes()
	if gray {
		planes = planes[:1]
	}

	var err error
	if binary {
		err = writeBinary(bw, img, planes)
	} else {
		err = writeASCII(bw, img, planes)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeFile creates name plus ".pgm" or ".ppm", truncating any existing
// file, and encodes img into it. It returns the path written.
func EncodeFile(name string, img *ir.Image, binary, gray bool) (string, error) {
	path := name + ir.FormatFor(binary, gray).Extension()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := Encode(f, img, binary, gray); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	return path, nil
}

func writeBinary(w io.Writer, img *ir.Image, planes []*pixbuf.Buffer) error {
	n := len(planes)
	row := make([]byte, img.Cols*n)
	for y := 0; y < img.Rows; y++ {
		for c, p := range planes {
			src := p.Row(y)
			for x := 0; x < img.Cols; x++ {
				row[x*n+c] = src[x]
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeASCII emits one decimal value per line.
func writeASCII(w io.Writer, img *ir.Image, planes []*pixbuf.Buffer) error {
	line := make([]byte, 0, 4*len(planes))
	for y := 0; y < img.Rows; y++ {
		for x := 0; x < img.Cols; x++ {
			line = line[:0]
			for _, p := range planes {
				line = strconv.AppendUint(line, uint64(p.At(y, x)), 10)
				line = append(line, '\n')
			}
			if _, err := w.Write(line); err != nil {
				return err
			}
		}
	}
	return nil
}
