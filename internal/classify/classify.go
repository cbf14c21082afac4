// Package classify maps file paths to media categories by extension.
package classify

import (
	"path/filepath"
	"strings"
)

// Category identifies what kind of media a path holds.
type Category int

const (
	Other Category = iota
	JPEG
	PNG
	HEIC
	Video
)

func (c Category) String() string {
	switch c {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	case HEIC:
		return "heic"
	case Video:
		return "video"
	default:
		return "other"
	}
}

// IsImage reports whether the category is one of the still image kinds.
func (c Category) IsImage() bool {
	return c == JPEG || c == PNG || c == HEIC
}

var extensions = map[string]Category{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"heic": HEIC,
	"mp4":  Video,
	"mov":  Video,
}

// Classify returns the category for path. Only the final extension is
// consulted and matching ignores case; a path without one is Other. A
// leading dot marks a hidden file, not an extension.
func Classify(path string) Category {
	ext := filepath.Ext(strings.TrimPrefix(filepath.Base(path), "."))
	if len(ext) < 2 {
		return Other
	}
	if c, ok := extensions[strings.ToLower(ext[1:])]; ok {
		return c
	}
	return Other
}

func IsImage(path string) bool { return Classify(path).IsImage() }
func IsJPEG(path string) bool  { return Classify(path) == JPEG }
func IsPNG(path string) bool   { return Classify(path) == PNG }
func IsHEIC(path string) bool  { return Classify(path) == HEIC }
func IsVideo(path string) bool { return Classify(path) == Video }

// Entry is a path paired with its category.
type Entry struct {
	Path     string
	Category Category
}

// NewEntry classifies path once.
func NewEntry(path string) Entry {
	return Entry{Path: path, Category: Classify(path)}
}
