// Command rowpipe inverts a raster image using a fixed pool of worker
// goroutines, one scanline per work item.
//
// Usage:
//
//	rowpipe [flags] <image>
//
// The transformed image is written as PNG next to the input, named
// <stem>_inverted.png. Exit status is 0 on success, 1 on a load or
// save failure, 2 on usage errors.
package main
