package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func commitFile(t *testing.T, repo *git.Repository, dir, rel, contents, message string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if _, err := worktree.Add(filepath.ToSlash(rel)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Lox CLI",
			Email: "lox@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.lox")
	if err := os.WriteFile(path, []byte("print 1;\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err := LoadSource(path)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if src.Text != "print 1;\n" || src.Name != path {
		t.Fatalf("unexpected source %#v", src)
	}
	if _, err := LoadSource(filepath.Join(t.TempDir(), "missing.lox")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadGitSourceReadsCommittedRevision(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	first := commitFile(t, repo, dir, "scripts/main.lox", "print \"v1\";\n", "first")
	commitFile(t, repo, dir, "scripts/main.lox", "print \"v2\";\n", "second")

	path := filepath.Join(dir, "scripts", "main.lox")

	head, err := LoadGitSource(path, "HEAD")
	if err != nil {
		t.Fatalf("LoadGitSource HEAD: %v", err)
	}
	if !strings.Contains(head.Text, "v2") {
		t.Fatalf("expected HEAD contents, got %q", head.Text)
	}

	old, err := LoadGitSource(path, "HEAD~1")
	if err != nil {
		t.Fatalf("LoadGitSource HEAD~1: %v", err)
	}
	if !strings.Contains(old.Text, "v1") || old.Revision != first {
		t.Fatalf("expected first revision, got %#v", old)
	}
	if old.Name != "scripts/main.lox@HEAD~1" {
		t.Fatalf("unexpected name %q", old.Name)
	}

	byHash, err := LoadGitSource(path, first)
	if err != nil || byHash.Text != old.Text {
		t.Fatalf("LoadGitSource by hash: %#v, %v", byHash, err)
	}
}

func TestLoadGitSourceErrors(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	commitFile(t, repo, dir, "main.lox", "print 1;\n", "init")

	if _, err := LoadGitSource(filepath.Join(dir, "other.lox"), "HEAD"); err == nil {
		t.Fatalf("expected error for file missing from commit")
	}
	if _, err := LoadGitSource(filepath.Join(dir, "main.lox"), "no-such-branch"); err == nil {
		t.Fatalf("expected error for unknown revision")
	}
	if _, err := LoadGitSource(filepath.Join(t.TempDir(), "main.lox"), "HEAD"); err == nil {
		t.Fatalf("expected error outside a repository")
	}
}
