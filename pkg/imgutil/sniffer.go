package imgutil

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// Kind identifies an image container recognised by its leading bytes.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
	KindWebP
	KindHEIC
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	case KindWebP:
		return "webp"
	case KindHEIC:
		return "heic"
	default:
		return "unknown"
	}
}

// HeaderLen is the number of bytes DetectHeader needs.
const HeaderLen = 12

var (
	pngSig  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig = []byte{0xff, 0xd8, 0xff}
	riffSig = []byte("RIFF")
	webpSig = []byte("WEBP")
	ftypSig = []byte("ftyp")
)

// ISO-BMFF major brands written by HEIF encoders.
var heifBrands = [][]byte{
	[]byte("heic"), []byte("heix"), []byte("hevc"), []byte("hevx"),
	[]byte("heim"), []byte("heis"), []byte("mif1"), []byte("msf1"),
}

// DetectHeader inspects the first HeaderLen bytes of a file for known signatures.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < HeaderLen {
		return KindUnknown, errors.New("header too short")
	}

	switch {
	case bytes.HasPrefix(header, jpegSig):
		return KindJPEG, nil
	case bytes.HasPrefix(header, pngSig):
		return KindPNG, nil
	case bytes.HasPrefix(header, riffSig) && bytes.Equal(header[8:12], webpSig):
		return KindWebP, nil
	case bytes.Equal(header[4:8], ftypSig) && isHEIFBrand(header[8:12]):
		return KindHEIC, nil
	}

	return KindUnknown, nil
}

func isHEIFBrand(brand []byte) bool {
	for _, b := range heifBrands {
		if bytes.Equal(brand, b) {
			return true
		}
	}
	return false
}

// SniffFile reads the header of the file at path to determine its type.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads HeaderLen bytes from r and determines its type.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return KindUnknown, err
	}

	return DetectHeader(header)
}

// IsKind reports whether the file at path exists and sniffs as want.
func IsKind(path string, want Kind) bool {
	kind, err := SniffFile(path)
	return err == nil && kind == want
}
