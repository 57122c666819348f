// Package transform implements the point operations and fixed-kernel
// convolutions applied to a decoded image.
//
// Every sample written by a transform lies in [0, 255]. Contrast is the one
// exception in spirit: its rescale is not clamped and wraps on 8-bit
// storage, which callers relying on byte-exact output depend on.
//
// Transforms mutate the image in place. Those that need scratch storage
// (Sharpen, Smooth, Resize) allocate every scratch buffer before touching
// the image and only then swap them in, so an allocation failure leaves
// the image exactly as it was.
package transform
