package codec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"png input", "photo.png", "photo_inverted.png"},
		{"jpeg extension replaced", "scan.jpeg", "scan_inverted.png"},
		{"no extension", "frame", "frame_inverted.png"},
		{"directory preserved", filepath.Join("shots", "photo.png"), filepath.Join("shots", "photo_inverted.png")},
		{"dot in directory ignored", filepath.Join("v1.2", "img.bmp"), filepath.Join("v1.2", "img_inverted.png")},
		{"multiple dots keep earlier ones", "a.b.tiff", "a.b_inverted.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.input, "_inverted"))
		})
	}
}

func TestOutputPathCustomSuffix(t *testing.T) {
	assert.Equal(t, "photo_neg.png", OutputPath("photo.png", "_neg"))
}
