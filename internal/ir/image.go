package ir

import (
	"fmt"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

// Format identifies a portable pixmap encoding by its magic tag.
type Format int

const (
	FormatUnknown     Format = iota
	FormatASCIIGray          // P2
	FormatASCIIColor         // P3
	FormatBinaryGray         // P5
	FormatBinaryColor        // P6
)

// Magic returns the two-character tag for f.
func (f Format) Magic() string {
	switch f {
	case FormatASCIIGray:
		return "P2"
	case FormatASCIIColor:
		return "P3"
	case FormatBinaryGray:
		return "P5"
	case FormatBinaryColor:
		return "P6"
	}
	return ""
}

func (f Format) String() string {
	if m := f.Magic(); m != "" {
		return m
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Binary reports whether the payload is raw bytes.
func (f Format) Binary() bool { return f == FormatBinaryGray || f == FormatBinaryColor }

// Gray reports whether the payload carries a single channel.
func (f Format) Gray() bool { return f == FormatASCIIGray || f == FormatBinaryGray }

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	if f.Gray() {
		return ".pgm"
	}
	return ".ppm"
}

// FormatFor selects the output format for an encoding and channel layout.
func FormatFor(binary, gray bool) Format {
	switch {
	case binary && gray:
		return FormatBinaryGray
	case binary:
		return FormatBinaryColor
	case gray:
		return FormatASCIIGray
	default:
		return FormatASCIIColor
	}
}

// ParseMagic maps a magic tag to its format.
func ParseMagic(tag string) Format {
	switch tag {
	case "P2":
		return FormatASCIIGray
	case "P3":
		return FormatASCIIColor
	case "P5":
		return FormatBinaryGray
	case "P6":
		return FormatBinaryColor
	}
	return FormatUnknown
}

// Image is the decoded pixmap passed between the codec, the transforms and
// the encoder. Red holds the gray channel once Grayscale is set; Green and
// Blue are then stale and must not be emitted.
type Image struct {
	Format   Format
	Comment  string // verbatim, including the leading '#'
	Rows     int
	Cols     int
	MaxValue int

	Red   *pixbuf.Buffer
	Green *pixbuf.Buffer
	Blue  *pixbuf.Buffer

	Grayscale bool
}

// Planes returns all three channel buffers. Transforms run over every
// plane, stale ones included, so a later grayscale pass sees the same
// green and blue values it would have seen had nothing been skipped.
func (img *Image) Planes() []*pixbuf.Buffer {
	return []*pixbuf.Buffer{img.Red, img.Green, img.Blue}
}

// Channels returns the channels written on encode: one when grayscale,
// else three.
func (img *Image) Channels() []*pixbuf.Buffer {
	if img.Grayscale {
		return []*pixbuf.Buffer{img.Red}
	}
	return []*pixbuf.Buffer{img.Red, img.Green, img.Blue}
}

// Release frees every channel buffer.
func (img *Image) Release() {
	img.Red.Release()
	img.Green.Release()
	img.Blue.Release()
}
