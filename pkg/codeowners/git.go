package codeowners

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// TrackedFiles lists every path go-git considers tracked in repoRoot's
// current HEAD commit, relative to the repository root. Grounded on the
// PlainOpen + HEAD-tree pattern used for ownership history elsewhere in
// this codebase. Callers treat a returned ErrGitUnavailable as
// non-fatal and fall back to the full filesystem walk (§6: skip_untracked_files).
func TrackedFiles(repoRoot string) ([]string, error) {
	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", repoRoot, ErrGitUnavailable, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", repoRoot, ErrGitUnavailable, err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", repoRoot, ErrGitUnavailable, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", repoRoot, ErrGitUnavailable, err)
	}

	var files []string
	walker := tree.Files()
	for {
		f, err := walker.Next()
		if err != nil {
			break
		}
		files = append(files, f.Name)
	}
	return files, nil
}

// StageFile runs the equivalent of `git add` for path (relative to
// repoRoot), used after `generate` rewrites CODEOWNERS so the artifact
// lands in the same commit as the ownership change that produced it.
func StageFile(repoRoot, path string) error {
	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", repoRoot, ErrGitUnavailable, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("%s: %w: %v", repoRoot, ErrGitUnavailable, err)
	}
	if _, err := wt.Add(path); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrGitUnavailable, err)
	}
	return nil
}
