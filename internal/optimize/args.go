package optimize

import (
	"path/filepath"
	"strconv"
	"strings"

	"mediaslim/internal/config"
)

func stripArgs(path string) []string {
	return []string{"-overwrite_original", "-all=", "-q", path}
}

func jpegArgs(path string, maxQuality int) []string {
	return []string{"--strip-all", "--max=" + strconv.Itoa(maxQuality), "--quiet", path}
}

func pngArgs(path string, level int) []string {
	return []string{"-o" + strconv.Itoa(level), "-quiet", path}
}

func heifArgs(src, jpg string) []string {
	return []string{src, jpg}
}

func webpArgs(jpg, webp string, quality int) []string {
	return []string{"-quiet", "-q", strconv.Itoa(quality), jpg, "-o", webp}
}

func ffmpegArgs(src, dst string, v config.Video) []string {
	return []string{
		"-nostdin", "-y", "-loglevel", "error",
		"-i", src,
		"-c:v", v.Codec,
		"-crf", strconv.Itoa(v.CRF),
		"-preset", v.Preset,
		"-c:a", v.AudioCodec,
		"-b:a", v.AudioBitrate,
		dst,
	}
}

// siblingPaths returns the intermediate JPEG and final WebP paths for a
// HEIC source: name.heic -> name.jpg, name.webp.
func siblingPaths(src string) (jpg, webp string) {
	base := strings.TrimSuffix(src, filepath.Ext(src))
	return base + ".jpg", base + ".webp"
}

// candidatePath returns the transcoder's output path: name.mp4 -> name.opt.mp4.
func candidatePath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".opt" + ext
}
