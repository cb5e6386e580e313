package git

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/hashicorp/go-hclog"
)

// ChangedFiles returns the absolute paths of files that are modified, added,
// renamed or untracked in the worktree of the repository containing dir.
// Deleted files are left out since there is nothing to scan.
func ChangedFiles(dir string, logger hclog.Logger) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNotRepository, dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if err == git.ErrIsBareRepository {
			return nil, ErrBareWorktree
		}
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	root := wt.Filesystem.Root()
	var paths []string
	for rel, fileStatus := range status {
		if !isScannable(fileStatus) {
			continue
		}
		paths = append(paths, filepath.Join(root, filepath.FromSlash(rel)))
	}
	sort.Strings(paths)

	logger.Debug("collected changed files", "repository", root, "count", len(paths))
	return paths, nil
}

// isScannable reports whether a status entry names a file present on disk with
// changes against HEAD.
func isScannable(s *git.FileStatus) bool {
	if s.Worktree == git.Deleted || s.Staging == git.Deleted {
		return false
	}
	return s.Worktree != git.Unmodified || s.Staging != git.Unmodified
}
