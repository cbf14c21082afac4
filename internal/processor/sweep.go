package processor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// Matcher tests base names against intermediate-file patterns, ignoring case.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles patterns such as "*.opt.mp4".
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether name matches any pattern. A nil Matcher matches nothing.
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	lower := strings.ToLower(name)
	for _, g := range m.globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// SweepResult counts what a sweep removed.
type SweepResult struct {
	Deleted int
	Failed  int
}

// Sweep deletes every regular file under root whose name matches m.
func Sweep(root string, m *Matcher, log logrus.FieldLogger) (SweepResult, error) {
	var res SweepResult
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			log.WithError(walkErr).WithField("path", path).Warn("sweep: skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !m.Match(d.Name()) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			res.Failed++
			log.WithError(err).WithField("file", path).Warn("sweep: could not remove intermediate")
			return nil
		}
		res.Deleted++
		log.WithField("file", path).Debug("sweep: removed intermediate")
		return nil
	})
	return res, err
}
