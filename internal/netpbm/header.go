package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/ir"
)

// Header holds the textual fields that precede the pixel payload.
type Header struct {
	Format   ir.Format
	Comment  string
	Cols     int
	Rows     int
	MaxValue int
}

// Channels returns the samples per pixel carried by the payload.
func (h *Header) Channels() int {
	if h.Format.Gray() {
		return 1
	}
	return 3
}

// PayloadSize returns the binary payload length in bytes. ASCII payloads
// have no fixed size and report the sample count instead.
func (h *Header) PayloadSize() int {
	return h.Rows * h.Cols * h.Channels()
}

// ReadHeader parses the header of any of the four pixmap variants without
// touching the payload.
func ReadHeader(r io.Reader) (*Header, error) {
	return readHeader(bufio.NewReader(r), func(ir.Format) bool { return true })
}

func decodable(f ir.Format) bool {
	return f == ir.FormatASCIIColor || f == ir.FormatBinaryColor
}

// readHeader consumes the magic tag, an optional single comment line, the
// columns, rows and max value, and exactly one delimiter byte after the
// max value. The reader is then positioned at the first payload byte.
func readHeader(br *bufio.Reader, accept func(ir.Format) bool) (*Header, error) {
	tag, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMagic, err)
	}
	h := &Header{Format: ir.ParseMagic(tag)}
	if h.Format == ir.FormatUnknown || !accept(h.Format) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, tag)
	}

	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("%w: missing dimensions", ErrMalformedHeader)
	}
	if next, err := br.Peek(1); err == nil && next[0] == '#' {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: reading comment: %v", ErrMalformedHeader, err)
		}
		h.Comment = strings.TrimSuffix(line, "\n")
	}

	fields := []struct {
		name string
		dst  *int
	}{
		{"columns", &h.Cols},
		{"rows", &h.Rows},
		{"max value", &h.MaxValue},
	}
	for _, f := range fields {
		v, err := readInt(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedHeader, f.name, err)
		}
		*f.dst = v
	}
	if h.Cols <= 0 || h.Rows <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformedHeader, h.Cols, h.Rows)
	}

	// A single delimiter separates the max value from the payload. Binary
	// payloads may legitimately start with a whitespace byte, so nothing
	// more is skipped here.
	if _, err := br.ReadByte(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return h, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(br *bufio.Reader) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return br.UnreadByte()
		}
	}
}

// readToken returns the next run of non-space bytes.
func readToken(br *bufio.Reader) (string, error) {
	if err := skipSpace(br); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// readInt parses an optionally signed decimal integer after skipping
// leading whitespace. Parsing stops at the first non-digit, which is left
// unread. It returns io.EOF when the input is exhausted before any digit.
func readInt(br *bufio.Reader) (int, error) {
	if err := skipSpace(br); err != nil {
		return 0, err
	}
	c, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	neg := false
	if c == '+' || c == '-' {
		neg = c == '-'
		if c, err = br.ReadByte(); err != nil {
			return 0, io.ErrUnexpectedEOF
		}
	}
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("unexpected byte %q", c)
	}
	var v int64
	for {
		v = v*10 + int64(c-'0')
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("integer out of range")
		}
		c, err = br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if err := br.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
	}
	if neg {
		v = -v
	}
	return int(v), nil
}
