package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/transform"
)

// ErrInvalidOperation is returned for a malformed operation list.
var ErrInvalidOperation = errors.New("invalid operation")

// OpKind names a transform.
type OpKind int

const (
	OpNegate OpKind = iota + 1
	OpBrighten
	OpSharpen
	OpSmooth
	OpGrayscale
	OpContrast
	OpResize
)

var opNames = map[OpKind]string{
	OpNegate:    "negate",
	OpBrighten:  "brighten",
	OpSharpen:   "sharpen",
	OpSmooth:    "smooth",
	OpGrayscale: "grayscale",
	OpContrast:  "contrast",
	OpResize:    "resize",
}

func (k OpKind) String() string {
	if n, ok := opNames[k]; ok {
		return n
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one requested transform. Delta is used by brighten; Cols, Rows
// and Interp by resize.
type Op struct {
	Kind   OpKind
	Delta  int
	Cols   int
	Rows   int
	Interp string
}

func (o Op) String() string {
	switch o.Kind {
	case OpBrighten:
		return fmt.Sprintf("brighten=%d", o.Delta)
	case OpResize:
		s := fmt.Sprintf("resize=%dx%d", o.Cols, o.Rows)
		if o.Interp != "" {
			s += "," + o.Interp
		}
		return s
	}
	return o.Kind.String()
}

// Output is the single terminal write request.
type Output struct {
	Binary bool
}

// Plan is an ordered operation list plus its output request.
type Plan struct {
	Ops    []Op
	Output Output
}

// ParseOp parses the flag form of an operation: a name optionally followed
// by "=" and an argument, e.g. "negate", "brighten=-20",
// "resize=640x480,bicubic".
func ParseOp(s string) (Op, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), "=")
	switch strings.ToLower(name) {
	case "negate", "sharpen", "smooth", "grayscale", "contrast":
		if hasArg {
			return Op{}, fmt.Errorf("%w: %s takes no argument", ErrInvalidOperation, name)
		}
		return Op{Kind: kindByName(strings.ToLower(name))}, nil
	case "brighten":
		if !hasArg {
			return Op{}, fmt.Errorf("%w: brighten needs a value", ErrInvalidOperation)
		}
		delta, err := parseDelta(arg)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: OpBrighten, Delta: delta}, nil
	case "resize":
		if !hasArg {
			return Op{}, fmt.Errorf("%w: resize needs WxH", ErrInvalidOperation)
		}
		return parseResize(arg)
	}
	return Op{}, fmt.Errorf("%w: %q", ErrInvalidOperation, s)
}

// ParseOutput parses "ascii"/"a" or "binary"/"b".
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(s) {
	case "a", "ascii":
		return Output{Binary: false}, nil
	case "b", "binary":
		return Output{Binary: true}, nil
	}
	return Output{}, fmt.Errorf("%w: output format %q", ErrInvalidOperation, s)
}

func kindByName(name string) OpKind {
	for k, n := range opNames {
		if n == name {
			return k
		}
	}
	return 0
}

func parseDelta(s string) (int, error) {
	delta, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: brighten value %q", ErrInvalidOperation, s)
	}
	return delta, nil
}

// parseResize parses "WxH" with an optional ",interpolation" suffix.
func parseResize(s string) (Op, error) {
	dims, interp, _ := strings.Cut(s, ",")
	w, h, ok := strings.Cut(strings.ToLower(dims), "x")
	if !ok {
		return Op{}, fmt.Errorf("%w: resize size %q", ErrInvalidOperation, s)
	}
	cols, errW := strconv.Atoi(w)
	rows, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || cols <= 0 || rows <= 0 {
		return Op{}, fmt.Errorf("%w: resize size %q", ErrInvalidOperation, s)
	}
	if _, err := transform.ParseInterpolation(interp); err != nil {
		return Op{}, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	return Op{Kind: OpResize, Cols: cols, Rows: rows, Interp: interp}, nil
}
