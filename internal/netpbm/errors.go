package netpbm

import "errors"

var (
	// ErrFileOpen is returned when the input cannot be opened.
	ErrFileOpen = errors.New("file could not open")
	// ErrInvalidMagic is returned when the header tag is not a decodable format.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrMalformedHeader is returned for missing or non-positive header fields.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrMalformedData is returned for a non-numeric ASCII sample.
	ErrMalformedData = errors.New("malformed pixel data")
	// ErrTruncated is returned when the pixel payload ends early.
	ErrTruncated = errors.New("truncated pixel data")
	// ErrEncode is returned when the output cannot be created or written.
	ErrEncode = errors.New("encode failed")
)
