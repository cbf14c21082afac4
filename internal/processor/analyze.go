package processor

import (
	"io"
	"os"

	exif "github.com/dsoprea/go-exif/v3"
)

// countMetadataTags returns how many EXIF tags an image carries. Files
// without EXIF, or that cannot be parsed, count as zero.
func countMetadataTags(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	return countExifTags(f)
}

func countExifTags(r io.Reader) int {
	raw, err := exif.SearchAndExtractExifWithReader(r)
	if err != nil {
		// exif.ErrNoExif included.
		return 0
	}
	tags, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return 0
	}
	return len(tags)
}
