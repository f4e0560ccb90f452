// Package parallel splits raster work into horizontal bands and runs them on
// a worker pool.
//
// Every band owns a disjoint range of rows, so workers write their part of
// the output without locks.
package parallel

// MinBandRows is the smallest band Bands produces, except for the last band
// of an image whose height is not a multiple of it.
const MinBandRows = 8

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into about perWorker bands per worker, none
// shorter than MinBandRows. The bands are ordered, contiguous and cover
// [0, height) exactly once. Returns nil for a non-positive height.
func Bands(height, workers, perWorker int) []Band {
	if height <= 0 {
		return nil
	}
	workers = max(1, workers)
	perWorker = max(1, perWorker)

	n := min(workers*perWorker, max(1, height/MinBandRows))
	bands := make([]Band, 0, n)

	// Spread the remainder over the first bands so sizes differ by at most one.
	size, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := size
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}

// ForEachBand runs fn for every band of height rows on pool and waits for
// all of them. A nil pool runs the bands serially on the caller.
func ForEachBand(pool *WorkerPool, height int, fn func(Band)) {
	workers := 1
	if pool != nil {
		workers = pool.Workers()
	}
	bands := Bands(height, workers, 4)

	if pool == nil || workers == 1 {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	pool.ExecuteAll(work)
}
