// Package triwarp resamples an image through a triangle correspondence.
//
// # Overview
//
// Given a source image and three source points matched to three destination
// points, triwarp maps every destination pixel back into the source with
// barycentric coordinates and reconstructs its color with bilinear
// sampling. In Trilinear mode a shrinking warp also samples a
// half-resolution copy of the source and blends the two by how much the
// destination triangle has shrunk, which suppresses minification aliasing.
//
// # Quick Start
//
//	src, err := triwarp.LoadImage("photo.png")
//	if err != nil {
//	    return err
//	}
//
//	c := triwarp.Correspondence{
//	    Src: []triwarp.Point{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 0, Y: 200}},
//	    Dst: []triwarp.Point{{X: 40, Y: 30}, {X: 120, Y: 50}, {X: 20, Y: 140}},
//	}
//	out, err := triwarp.Warp(src, c, triwarp.Trilinear)
//	if err != nil {
//	    return err
//	}
//	return triwarp.SaveImage(out, "warped.png")
//
// # Filtering
//
// The scale factor is sqrt(dstArea/srcArea). With Bilinear, or whenever the
// scale is at least 1, each pixel is one bilinear fetch from the source.
// With Trilinear and a scale below 1, the pixel is
//
//	lerp(bilinear(source, sx, sy), bilinear(reduced, sx/2, sy/2), w)
//
// where w = clamp(2*(1-scale), 0, 1). Only one reduced level exists; there
// is no deeper mip chain.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right, Y increases down
//   - Pixel (x, y) is sampled at the integer point (x, y)
//
// # Concurrency
//
// The raster loop is split into horizontal bands run on a worker pool (see
// WithWorkers). Warper caches the reduced level per loaded image and
// serializes Load against Warp.
package triwarp
