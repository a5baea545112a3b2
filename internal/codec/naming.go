package codec

import (
	"path/filepath"
	"strings"
)

// OutputExt is the fixed extension of every file this codec writes.
const OutputExt = ".png"

// OutputPath derives the output file path from an input path: the last
// extension of the base name is dropped, suffix is appended to the
// stem, and the codec's fixed output extension replaces whatever the
// input carried. Inputs without an extension keep their full base name
// as the stem. The directory is preserved.
//
//	OutputPath("shots/photo.png", "_inverted") == "shots/photo_inverted.png"
//	OutputPath("scan.jpeg", "_inverted")       == "scan_inverted.png"
//	OutputPath("frame", "_inverted")           == "frame_inverted.png"
func OutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix+OutputExt)
}
