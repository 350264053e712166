package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Source is a named script body ready to be compiled.
// Line is the line number of the first line of Text; zero means 1.
type Source struct {
	Name     string
	Text     string
	Revision string
	Line     int
}

// LoadSource reads a script from disk.
func LoadSource(path string) (*Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("source: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return &Source{Name: path, Text: string(data)}, nil
}

// LoadGitSource reads the script at path as committed at rev in the git
// repository enclosing path. rev accepts anything go-git can resolve
// (HEAD, branch or tag names, short hashes, HEAD~1).
func LoadGitSource(path, rev string) (*Source, error) {
	if strings.TrimSpace(rev) == "" {
		return nil, fmt.Errorf("source: empty revision")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("source: open repository for %s: %w", path, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("source: worktree: %w", err)
	}
	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return nil, fmt.Errorf("source: resolve repository root: %w", err)
	}
	target, err := filepath.EvalSymlinks(filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", path, err)
	}
	rel, err := filepath.Rel(root, filepath.Join(target, filepath.Base(absPath)))
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("source: %s is outside repository %s", path, root)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("source: resolve revision %s: %w", rev, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("source: load commit %s: %w", hash, err)
	}
	file, err := commit.File(filepath.ToSlash(rel))
	if err != nil {
		return nil, fmt.Errorf("source: %s at %s: %w", rel, rev, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("source: read %s at %s: %w", rel, rev, err)
	}
	return &Source{
		Name:     fmt.Sprintf("%s@%s", filepath.ToSlash(rel), rev),
		Text:     contents,
		Revision: hash.String(),
	}, nil
}
