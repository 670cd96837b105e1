// Adapted from https://github.com/thought-machine/please/tree/master/src/scm
// Copyright Thought Machine, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
package scm

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// git implements operations on a git repository.
type git struct {
	repoRoot string
}

func (g *git) Root() string {
	return g.repoRoot
}

// run executes a git command in the repo root and returns its trimmed stdout.
func (g *git) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.repoRoot
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ChangedFiles returns a list of modified files since the given commit, optionally including untracked files.
func (g *git) ChangedFiles(fromCommit string, toCommit string, relativeTo string) ([]string, error) {
	if relativeTo == "" {
		relativeTo = g.repoRoot
	}
	relSuffix := []string{"--", relativeTo}
	command := []string{"diff", "--name-only", toCommit}

	out, err := g.combinedOutput(append(command, relSuffix...))
	if err != nil {
		return nil, errors.Wrapf(err, "finding changes relative to %v", relativeTo)
	}
	files := strings.Split(string(out), "\n")

	if fromCommit != "" {
		// Grab the diff from the merge-base to HEAD using ... syntax. This ensures we have just
		// the changes that have occurred on the current branch.
		command = []string{"diff", "--name-only", fromCommit + "..." + toCommit}
		out, err = g.combinedOutput(append(command, relSuffix...))
		if err != nil {
			// Check if we can provide a better error message for non-existent commits.
			// If we error on the check or can't find it, fall back to whatever error git
			// reported.
			if exists, err := g.commitExists(fromCommit); err == nil && !exists {
				return nil, fmt.Errorf("commit %v does not exist", fromCommit)
			}
			return nil, errors.Wrapf(err, "git comparing with %v", fromCommit)
		}
		committedChanges := strings.Split(string(out), "\n")
		files = append(files, committedChanges...)
	}
	command = []string{"ls-files", "--other", "--exclude-standard"}
	out, err = g.combinedOutput(append(command, relSuffix...))
	if err != nil {
		return nil, errors.Wrap(err, "finding untracked files")
	}
	untracked := strings.Split(string(out), "\n")
	files = append(files, untracked...)
	// git will report changed files relative to the worktree: re-relativize to relativeTo
	normalized := make([]string, 0)
	for _, f := range files {
		if f == "" {
			continue
		}
		normalizedFile, err := g.fixGitRelativePath(strings.TrimSpace(f), relativeTo)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, normalizedFile)
	}
	return normalized, nil
}

func (g *git) PreviousContent(fromCommit string, filePath string) ([]byte, error) {
	if fromCommit == "" {
		return nil, fmt.Errorf("need commit sha to inspect file contents")
	}

	cmd := exec.Command("git", "show", fmt.Sprintf("%s:%s", fromCommit, filePath))
	cmd.Dir = g.repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to get contents of %s", filePath)
	}

	return out, nil
}

// CheckedInFiles lists every tracked file as an absolute path.
func (g *git) CheckedInFiles() ([]string, error) {
	out, err := g.run("ls-files", g.repoRoot)
	if err != nil {
		return nil, errors.Wrap(err, "listing tracked files")
	}
	var files []string
	for _, f := range strings.Split(out, "\n") {
		if f == "" {
			continue
		}
		files = append(files, filepath.Join(g.repoRoot, f))
	}
	return files, nil
}

// MergeCommit reports whether the revision has exactly two parents. An
// octopus merge (three or more parents) is rejected rather than guessed at.
func (g *git) MergeCommit(revision string) (bool, error) {
	parents, err := g.run("log", "--pretty=%P", "-1", revision)
	if err != nil {
		return false, errors.Wrapf(err, "reading parents of %v", revision)
	}
	switch numParents := len(strings.Fields(parents)); numParents {
	case 0, 1:
		return false, nil
	case 2:
		return true, nil
	default:
		return false, fmt.Errorf("%v has %d parents; cannot classify merges with more than two", revision, numParents)
	}
}

func (g *git) CommitSubject(revision string) (string, error) {
	subject, err := g.run("log", "--pretty=%s", "-1", revision)
	if err != nil {
		return "", errors.Wrapf(err, "reading subject of %v", revision)
	}
	return subject, nil
}

func (g *git) MergeBase(a string, b string) (string, error) {
	base, err := g.run("merge-base", a, b)
	if err != nil {
		return "", errors.Wrapf(err, "finding merge base of %v and %v", a, b)
	}
	return base, nil
}

func (g *git) RevParse(revision string) (string, error) {
	sha, err := g.run("rev-parse", revision)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %v", revision)
	}
	return sha, nil
}

// CurrentBranch returns the current branch
func (g *git) CurrentBranch() string {
	branch, err := g.run("branch", "--show-current")
	if err != nil {
		return ""
	}
	return branch
}

// CurrentSHA returns the current SHA
func (g *git) CurrentSHA() string {
	sha, err := g.run("rev-parse", "HEAD")
	if err != nil {
		return ""
	}
	return sha
}

func (g *git) combinedOutput(args []string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.repoRoot
	return cmd.CombinedOutput()
}

func (g *git) commitExists(commit string) (bool, error) {
	cmd := exec.Command("git", "cat-file", "-t", commit)
	cmd.Dir = g.repoRoot
	err := cmd.Run()
	if err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (g *git) fixGitRelativePath(worktreePath, relativeTo string) (string, error) {
	p, err := filepath.Rel(relativeTo, filepath.Join(g.repoRoot, worktreePath))
	if err != nil {
		return "", errors.Wrapf(err, "unable to determine relative path for %s and %s", g.repoRoot, relativeTo)
	}
	return p, nil
}
