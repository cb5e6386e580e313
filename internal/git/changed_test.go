package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedFiles(t *testing.T) {
	repoDir := t.TempDir()
	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commitFiles(t, wt, map[string]string{
		"src/app/page.tsx":      "<h1>Home</h1>\n",
		"src/app/about.tsx":     "<h1>About</h1>\n",
		"src/app/removed.tsx":   "<h1>Gone</h1>\n",
		"src/components/ok.tsx": "<h1>Stable</h1>\n",
	}, "initial commit")

	writeFile(t, repoDir, "src/app/page.tsx", "<h1>Home page</h1>\n")
	writeFile(t, repoDir, "src/app/new.tsx", "<h1>New</h1>\n")
	writeFile(t, repoDir, "src/app/staged.tsx", "<h1>Staged</h1>\n")
	_, err = wt.Add("src/app/staged.tsx")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(repoDir, "src/app/removed.tsx")))

	got, err := ChangedFiles(filepath.Join(repoDir, "src"), hclog.NewNullLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(repoDir, "src", "app", "new.tsx"),
		filepath.Join(repoDir, "src", "app", "page.tsx"),
		filepath.Join(repoDir, "src", "app", "staged.tsx"),
	}, got)
}

func TestChangedFilesNotRepository(t *testing.T) {
	_, err := ChangedFiles(t.TempDir(), hclog.NewNullLogger())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestIsScannable(t *testing.T) {
	tests := []struct {
		name   string
		status git.FileStatus
		want   bool
	}{
		{name: "unmodified", status: git.FileStatus{Staging: git.Unmodified, Worktree: git.Unmodified}, want: false},
		{name: "modified", status: git.FileStatus{Staging: git.Unmodified, Worktree: git.Modified}, want: true},
		{name: "untracked", status: git.FileStatus{Staging: git.Untracked, Worktree: git.Untracked}, want: true},
		{name: "added", status: git.FileStatus{Staging: git.Added, Worktree: git.Unmodified}, want: true},
		{name: "deleted", status: git.FileStatus{Staging: git.Unmodified, Worktree: git.Deleted}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isScannable(&tt.status))
		})
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func commitFiles(t *testing.T, wt *git.Worktree, files map[string]string, message string) {
	t.Helper()

	for path, content := range files {
		writeFile(t, wt.Filesystem.Root(), path, content)
		_, err := wt.Add(path)
		require.NoError(t, err)
	}

	_, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}
