package transform

import (
	"runtime"

	"github.com/Dillon-Roller/CSC-215-Projects/internal/pixbuf"
)

type config struct {
	workers int
	alloc   pixbuf.Allocator
}

// Option configures a transform call.
type Option func(c *config)

// WithWorkers sets how many row bands may run at once. Values below one
// mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithAllocator sets the allocator used for scratch buffers.
func WithAllocator(a pixbuf.Allocator) Option {
	return func(c *config) { c.alloc = a }
}

func newConfig(opts []Option) config {
	c := config{}
	for _, o := range opts {
		o(&c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if c.alloc == nil {
		c.alloc = pixbuf.LimitAllocator{}
	}
	return c
}
