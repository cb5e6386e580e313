package git

import "errors"

// Repository errors
var (
	ErrNotRepository = errors.New("directory is not inside a git repository")
	ErrBareWorktree  = errors.New("repository has no worktree")
)
