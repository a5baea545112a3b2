// Package testutil provides testing utilities and helpers shared by
// pipeline tests.
package testutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ScenarioImage returns the canonical 2x2 opaque test image:
//
//	(10,20,30) (200,210,220)
//	( 0, 0, 0) (255,255,255)
func ScenarioImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	img.SetNRGBA(1, 0, color.NRGBA{200, 210, 220, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

// ScenarioInput are the interleaved RGB bytes of ScenarioImage.
func ScenarioInput() []byte {
	return []byte{10, 20, 30, 200, 210, 220, 0, 0, 0, 255, 255, 255}
}

// ScenarioInverted are the expected bytes after channel inversion.
func ScenarioInverted() []byte {
	return []byte{245, 235, 225, 55, 45, 35, 255, 255, 255, 0, 0, 0}
}

// WritePNG encodes img to name inside a fresh temp directory and
// returns the file's full path.
func WritePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}
