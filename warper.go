package triwarp

import (
	"fmt"
	"sync"

	intImage "github.com/gogpu/triwarp/internal/image"
	"github.com/gogpu/triwarp/internal/parallel"
)

// Warper warps one loaded source image repeatedly.
//
// Load snapshots the source and builds its half-resolution level once; every
// Warp reuses that cache until the next Load replaces both together. Load
// and Warp are mutually exclusive, so a warp always reads one consistent
// generation of source and reduced level.
//
// Thread safety: all methods are safe for concurrent use.
type Warper struct {
	mu         sync.RWMutex
	opts       options
	source     *PixelBuffer
	reduced    *PixelBuffer
	generation uint64
	pool       *parallel.WorkerPool // nil when rendering inline
}

// NewWarper creates a Warper with no source loaded.
// Call Close to stop its worker goroutines.
func NewWarper(opts ...Option) *Warper {
	w := &Warper{opts: buildOptions(opts)}
	if w.opts.workers != 1 {
		w.pool = parallel.NewWorkerPool(w.opts.workers)
	}
	return w
}

// Load makes a copy of src the current source image and rebuilds the
// half-resolution level from it. On error the previous generation stays
// in place.
func (w *Warper) Load(src *PixelBuffer) error {
	if src.IsEmpty() {
		return ErrInvalidDimensions
	}

	// Build outside the lock; warps on the old generation keep running.
	source := src.Clone()
	reduced, err := intImage.BuildReducedLevel(source, w.opts.kernel)
	if err != nil {
		return fmt.Errorf("triwarp: build reduced level: %w", err)
	}

	w.mu.Lock()
	w.source = source
	w.reduced = reduced
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	Logger().Info("triwarp: source loaded",
		"width", source.Width(),
		"height", source.Height(),
		"reducedWidth", reduced.Width(),
		"reducedHeight", reduced.Height(),
		"kernel", w.opts.kernel,
		"generation", gen)
	return nil
}

// Warp maps the source triangle of c onto its destination triangle using the
// loaded image. It returns ErrNoSource before the first Load and otherwise
// behaves like the package-level Warp.
func (w *Warper) Warp(c Correspondence, mode FilterMode) (*PixelBuffer, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.source == nil {
		return nil, ErrNoSource
	}

	p, err := newPlan(w.source, c, mode, w.opts.bounds)
	if err != nil {
		return nil, err
	}
	return p.render(w.source, w.reduced, w.pool)
}

// Source returns the loaded source snapshot, or nil. Callers must not
// modify it.
func (w *Warper) Source() *PixelBuffer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.source
}

// Reduced returns the cached half-resolution level, or nil. Callers must
// not modify it.
func (w *Warper) Reduced() *PixelBuffer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.reduced
}

// Generation returns the number of successful Loads.
func (w *Warper) Generation() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.generation
}

// Close stops the worker goroutines. Warps after Close still work and run
// on the calling goroutine. Close is safe to call multiple times.
func (w *Warper) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pool != nil {
		w.pool.Close()
	}
}
