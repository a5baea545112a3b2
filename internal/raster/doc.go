// Package raster defines the shared pixel buffer processed by the
// worker pool and the per-pixel transforms applied to it.
//
// A Buffer stores pixels row-major with interleaved channels, one byte
// per channel and no padding between rows — the layout every image
// codec in this module normalizes to. Row hands out the byte subslice
// for a single scanline; subslices for distinct rows never overlap,
// which is what makes concurrent in-place mutation of one buffer by
// many workers sound without any per-row locking.
package raster
