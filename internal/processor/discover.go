package processor

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"mediaslim/internal/classify"
)

// Discover walks root once and returns every regular file with a media
// category, sorted by path. Names the sweeper would delete are skipped so a
// stale intermediate is never optimized. Unreadable directories are logged
// and pruned.
func Discover(root string, skip *Matcher, log logrus.FieldLogger) ([]classify.Entry, error) {
	var entries []classify.Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			log.WithError(walkErr).WithField("path", path).Warn("skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if skip.Match(d.Name()) {
			return nil
		}
		entry := classify.NewEntry(path)
		if entry.Category == classify.Other {
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
