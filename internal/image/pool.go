package image

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool of 16-bit scratch images.
//
// The kernel filters round-trip every reduced level through image.NRGBA64;
// Pool groups those scratch images by dimensions so repeated Warp calls on
// same-sized sources stop allocating them.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*image.NRGBA64
	maxSize int // max images per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool keeping at most maxPerBucket images of each size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*image.NRGBA64),
		maxSize: maxPerBucket,
	}
}

// Get returns a width x height image anchored at the origin. Its pixels are
// not cleared; callers overwrite every pixel.
func (p *Pool) Get(width, height int) *image.NRGBA64 {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	if bucket := p.buckets[key]; len(bucket) > 0 {
		img := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return img
	}
	p.mu.Unlock()

	return image.NewNRGBA64(image.Rect(0, 0, width, height))
}

// Put returns img to the pool. Images that are nil, not anchored at the
// origin, or over the bucket limit are dropped.
func (p *Pool) Put(img *image.NRGBA64) {
	if img == nil || img.Rect.Min != (image.Point{}) {
		return
	}
	key := poolKey{width: img.Rect.Dx(), height: img.Rect.Dy()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, img)
}

// Len returns the number of pooled images of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

// scratch backs the kernel filters.
var scratch = NewPool(4)
