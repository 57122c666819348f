package transform

import "golang.org/x/sync/errgroup"

// minBandRows keeps small images on the calling goroutine.
const minBandRows = 32

// forRows calls fn over disjoint [y0, y1) bands covering [lo, hi). Bands
// only write their own rows, so they never race with each other.
func forRows(workers, lo, hi int, fn func(y0, y1 int)) {
	n := hi - lo
	if n <= 0 {
		return
	}
	if workers <= 1 || n < 2*minBandRows {
		fn(lo, hi)
		return
	}

	band := (n + workers - 1) / workers
	if band < minBandRows {
		band = minBandRows
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := lo; y0 < hi; y0 += band {
		y0, y1 := y0, min(y0+band, hi)
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait() // bands do not fail
}
