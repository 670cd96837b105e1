package ci

import "github.com/pkg/errors"

// fakeGit satisfies Git with per-call hooks so tests can script the
// repository state without a real checkout.
type fakeGit struct {
	mergeCommit   func(revision string) (bool, error)
	commitSubject func(revision string) (string, error)
	mergeBase     func(a, b string) (string, error)
	revParse      func(revision string) (string, error)
}

func (f *fakeGit) MergeCommit(revision string) (bool, error) {
	if f.mergeCommit == nil {
		return false, errors.New("unexpected MergeCommit call")
	}
	return f.mergeCommit(revision)
}

func (f *fakeGit) CommitSubject(revision string) (string, error) {
	if f.commitSubject == nil {
		return "", errors.New("unexpected CommitSubject call")
	}
	return f.commitSubject(revision)
}

func (f *fakeGit) MergeBase(a, b string) (string, error) {
	if f.mergeBase == nil {
		return "", errors.New("unexpected MergeBase call")
	}
	return f.mergeBase(a, b)
}

func (f *fakeGit) RevParse(revision string) (string, error) {
	if f.revParse == nil {
		return "", errors.New("unexpected RevParse call")
	}
	return f.revParse(revision)
}
