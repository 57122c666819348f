package pipeline

import (
	"errors"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/netpbm"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
	"github.com/Dillon-Roller/CSC-215-Projects/internal/transform"
)

// Class groups pipeline errors by how a caller should report them.
type Class int

const (
	ClassNone Class = iota
	ClassInput
	ClassAllocation
	ClassOperation
	ClassDegenerate
	ClassOutput
	ClassUnknown
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassInput:
		return "input"
	case ClassAllocation:
		return "allocation"
	case ClassOperation:
		return "operation"
	case ClassDegenerate:
		return "degenerate"
	case ClassOutput:
		return "output"
	}
	return "unknown"
}

// Classify returns the class of err.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, pixbuf.ErrAllocation):
		return ClassAllocation
	case errors.Is(err, netpbm.ErrFileOpen),
		errors.Is(err, netpbm.ErrInvalidMagic),
		errors.Is(err, netpbm.ErrMalformedHeader),
		errors.Is(err, netpbm.ErrMalformedData),
		errors.Is(err, netpbm.ErrTruncated):
		return ClassInput
	case errors.Is(err, ErrInvalidOperation):
		return ClassOperation
	case errors.Is(err, transform.ErrDegenerateImage):
		return ClassDegenerate
	case errors.Is(err, netpbm.ErrEncode):
		return ClassOutput
	}
	return ClassUnknown
}
