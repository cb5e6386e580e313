package scanner

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/i18nscan/internal/findings"
	"github.com/scan-io-git/i18nscan/internal/patterns"
	"github.com/scan-io-git/i18nscan/pkg/shared"
)

// ExclusionSet excludes any path containing one of its members.
type ExclusionSet []string

// Excludes reports whether path contains any exclusion substring.
func (e ExclusionSet) Excludes(path string) bool {
	for _, pattern := range e {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// Scanner walks source trees and collects findings from eligible files.
type Scanner struct {
	catalog        *patterns.Catalog   // Rules applied to every line
	extensions     []string            // Eligible file suffixes
	exclusions     ExclusionSet        // Substrings excluding directories and files
	concurrentJobs int                 // Number of files scanned at once
	only           map[string]struct{} // Absolute paths to restrict the scan to, nil for no restriction
	logger         hclog.Logger        // Logger for diagnostics
}

// New creates a new Scanner instance with the provided configuration.
func New(catalog *patterns.Catalog, extensions []string, exclusions ExclusionSet, concurrentJobs int, logger hclog.Logger) *Scanner {
	if concurrentJobs < 1 {
		concurrentJobs = 1
	}
	return &Scanner{
		catalog:        catalog,
		extensions:     extensions,
		exclusions:     exclusions,
		concurrentJobs: concurrentJobs,
		logger:         logger,
	}
}

// RestrictTo limits scanning to the given absolute file paths.
func (s *Scanner) RestrictTo(paths []string) {
	s.only = make(map[string]struct{}, len(paths))
	for _, p := range paths {
		s.only[filepath.Clean(p)] = struct{}{}
	}
}

// Walk scans every eligible file under roots. Missing roots and roots that are
// not directories contribute nothing.
// The result is ordered by root, then lexical traversal, then line.
func (s *Scanner) Walk(roots []string) findings.Collection {
	var files []string
	for _, root := range roots {
		files = append(files, s.collectFiles(root)...)
	}
	s.logger.Info("scan starting", "roots", roots, "files", len(files), "goroutines", s.concurrentJobs)

	perFile := make([]findings.Collection, len(files))
	if s.concurrentJobs == 1 {
		for i, path := range files {
			perFile[i] = ScanFile(path, s.catalog, s.logger)
		}
	} else {
		// each goroutine owns its slot, merged in traversal order below
		shared.ForEveryStringWithBoundedGoroutines(s.concurrentJobs, files, func(i int, path string) {
			perFile[i] = ScanFile(path, s.catalog, s.logger)
		})
	}

	var all findings.Collection
	for _, fileFindings := range perFile {
		all = append(all, fileFindings...)
	}
	s.logger.Info("scan finished", "files", len(files), "findings", len(all))
	return all
}

// collectFiles lists eligible files under root, pruning excluded directories
// before descending into them.
func (s *Scanner) collectFiles(root string) []string {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				s.logger.Debug("root directory does not exist", "root", root)
				return nil
			}
			s.logger.Warn("failed to access path", "path", path, "error", err)
			return nil
		}

		if path == root && !d.IsDir() {
			s.logger.Debug("root is not a directory", "root", root)
			return nil
		}

		if d.IsDir() {
			if path != root && s.exclusions.Excludes(path) {
				s.logger.Trace("pruning excluded directory", "path", path)
				return fs.SkipDir
			}
			return nil
		}

		if s.isEligible(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("directory walk aborted", "root", root, "error", err)
	}
	return files
}

func (s *Scanner) isEligible(path string) bool {
	if !s.hasEligibleExtension(filepath.Base(path)) || s.exclusions.Excludes(path) {
		return false
	}
	if s.only == nil {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := s.only[abs]
	return ok
}

func (s *Scanner) hasEligibleExtension(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
