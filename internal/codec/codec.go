package codec

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/sklinak/rowpipe/internal/raster"
)

// ErrUnsupportedFormat indicates the input file is not one of the
// image types this codec can decode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// supportedTypes are the MIME types the registered decoders handle.
var supportedTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/bmp",
	"image/tiff",
	"image/webp",
}

// Load decodes the image at path into a raster buffer.
func Load(path string) (*raster.Buffer, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect %s: %w", path, err)
	}
	if !isSupported(mtype) {
		return nil, fmt.Errorf("%s is %s: %w", path, mtype.String(), ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return fromImage(img)
}

// Save encodes buf as PNG at path.
func Save(path string, buf *raster.Buffer) error {
	img, err := toImage(buf)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func isSupported(mtype *mimetype.MIME) bool {
	for _, t := range supportedTypes {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

// fromImage normalizes a decoded image into the row-major interleaved
// layout the pipeline operates on. Grayscale stays 1-channel; opaque
// color collapses to 3 channels; anything with real alpha keeps 4.
func fromImage(img image.Image) (*raster.Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		buf, err := raster.NewBuffer(w, h, 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			off := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Row(y), gray.Pix[off:off+w])
		}
		return buf, nil
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	channels := 4
	if nrgba.Opaque() {
		channels = 3
	}

	buf, err := raster.NewBuffer(w, h, channels)
	if err != nil {
		return nil, err
	}
	min := nrgba.Bounds().Min
	for y := 0; y < h; y++ {
		src := nrgba.Pix[nrgba.PixOffset(min.X, min.Y+y):]
		dst := buf.Row(y)
		for x := 0; x < w; x++ {
			copy(dst[x*channels:(x+1)*channels], src[x*4:x*4+channels])
		}
	}
	return buf, nil
}

// toImage lifts a buffer back into an image.Image for encoding.
func toImage(buf *raster.Buffer) (image.Image, error) {
	switch buf.Channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, buf.Width, buf.Height))
		for y := 0; y < buf.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+buf.Width], buf.Row(y))
		}
		return img, nil
	case 3, 4:
		img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
		for y := 0; y < buf.Height; y++ {
			src := buf.Row(y)
			dst := img.Pix[y*img.Stride:]
			for x := 0; x < buf.Width; x++ {
				copy(dst[x*4:], src[x*buf.Channels:(x+1)*buf.Channels])
				if buf.Channels == 3 {
					dst[x*4+3] = 0xff
				}
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("cannot encode %d-channel buffer", buf.Channels)
	}
}
