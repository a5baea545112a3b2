// Package codec loads raster images into raster.Buffer form and
// persists transformed buffers back to disk.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. The input's
// content type is sniffed with mimetype before any decode attempt, so
// a mislabeled or non-image file fails with ErrUnsupportedFormat
// instead of a cryptic decoder error. Encoding always produces PNG;
// the output path is derived from the input path (see OutputPath).
//
// Channel normalization follows the source image: grayscale images
// load as 1-channel buffers, opaque color images as 3-channel, and
// images with meaningful alpha as 4-channel.
package codec
