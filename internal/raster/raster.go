package raster

import "fmt"

// Buffer is a mutable raster image: row-major, interleaved channels,
// one byte per channel, no row padding.
//
// Ownership: the orchestrator creates a Buffer for one pipeline run and
// shares it read-write with every worker. Workers only ever touch the
// row slice handed to them, so two workers on distinct rows write
// disjoint byte ranges.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewBuffer allocates a zeroed buffer with the given dimensions.
func NewBuffer(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%dx%d", width, height, channels)
	}
	return &Buffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}, nil
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.Width * b.Channels
}

// Row returns the byte slice backing row i, aliasing the buffer's
// storage. Slices for distinct rows are disjoint by construction:
// row i covers [i*stride, (i+1)*stride).
func (b *Buffer) Row(i int) []byte {
	stride := b.Stride()
	return b.Pix[i*stride : (i+1)*stride : (i+1)*stride]
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Channels: b.Channels, Pix: pix}
}

// PixelFunc is a stateless per-channel-byte transform. It must depend
// only on its input value; cross-pixel or cross-row state would break
// the order-independence of the worker pool.
type PixelFunc func(byte) byte

// Invert is the channel inversion transform: 255 - x. Applying it
// twice restores the original value.
func Invert(v byte) byte {
	return 255 - v
}

// ApplyRow applies fn in place to every channel byte of row i.
func (b *Buffer) ApplyRow(i int, fn PixelFunc) {
	row := b.Row(i)
	for x := range row {
		row[x] = fn(row[x])
	}
}
