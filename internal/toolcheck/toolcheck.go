// Package toolcheck verifies, before any file is touched, that every
// external optimizer is resolvable on PATH.
package toolcheck

import (
	"fmt"
	"runtime"
)

// LookPathFunc resolves a binary name. exec.LookPath in production.
type LookPathFunc func(string) (string, error)

// MissingToolError reports the first tool that could not be resolved.
type MissingToolError struct {
	Tool string
	Hint string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s not found in PATH. %s", e.Tool, e.Hint)
}

// CheckWith resolves each tool in order and fails on the first miss.
func CheckWith(tools []string, look LookPathFunc) error {
	for _, tool := range tools {
		if _, err := look(tool); err != nil {
			return &MissingToolError{Tool: tool, Hint: installHint(runtime.GOOS)}
		}
	}
	return nil
}

func installHint(goos string) string {
	switch goos {
	case "darwin":
		return "Install with: brew install exiftool jpegoptim optipng libheif webp ffmpeg"
	case "linux":
		return "Install with: sudo apt install libimage-exiftool-perl jpegoptim optipng libheif-examples webp ffmpeg"
	default:
		return "Install exiftool, jpegoptim, optipng, heif-convert (libheif), cwebp (libwebp) and ffmpeg, then add them to PATH"
	}
}
