// Package scm abstracts operations on various tools like git
// Currently, only git is supported.
//
// Adapted from https://github.com/thought-machine/please/tree/master/src/scm
// Copyright Thought Machine, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
package scm

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrNoRepo is returned when no .git directory can be found at or above
// the starting path.
var ErrNoRepo = errors.New("cannot find a .git folder. cidiff classifies builds of git checkouts; run it from inside a repository")

// An SCM represents an SCM implementation that we can ask for various things.
type SCM interface {
	// Root returns the absolute path of the checkout root.
	Root() string
	// ChangedFiles returns a list of modified files since the given commit, including untracked files
	ChangedFiles(fromCommit string, toCommit string, relativeTo string) ([]string, error)
	// PreviousContent returns the content of the file at fromCommit
	PreviousContent(fromCommit string, filePath string) ([]byte, error)
	// CheckedInFiles returns the absolute path of every file tracked in the repository
	CheckedInFiles() ([]string, error)
	// MergeCommit reports whether the given revision is a two-parent merge commit
	MergeCommit(revision string) (bool, error)
	// CommitSubject returns the subject line of the given revision
	CommitSubject(revision string) (string, error)
	// MergeBase returns the best common ancestor of the two revisions
	MergeBase(a string, b string) (string, error)
	// RevParse resolves a revision to a full SHA
	RevParse(revision string) (string, error)
	// CurrentBranch returns the checked-out branch, or "" outside a branch
	CurrentBranch() string
	// CurrentSHA returns the SHA of HEAD, or "" before the first commit
	CurrentSHA() string
}

// newGitSCM returns a new SCM instance for this repo root.
// It returns nil if there is no known implementation there.
func newGitSCM(repoRoot string) SCM {
	if info, err := os.Stat(filepath.Join(repoRoot, ".git")); err == nil && info.IsDir() {
		return &git{repoRoot: repoRoot}
	}
	return nil
}

// FromInRepo produces an SCM instance, given a path within a
// repository. It walks up from the given path looking for the
// checkout root.
func FromInRepo(path string) (SCM, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %v", path)
	}
	for {
		if scm := newGitSCM(dir); scm != nil {
			return scm, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoRepo
		}
		dir = parent
	}
}
