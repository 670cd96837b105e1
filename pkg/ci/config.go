package ci

import (
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Git is the subset of repository operations the classifiers shell out
// for. *pkg/scm* implementations satisfy it.
type Git interface {
	MergeCommit(revision string) (bool, error)
	CommitSubject(revision string) (string, error)
	MergeBase(a string, b string) (string, error)
	RevParse(revision string) (string, error)
}

// Config is the normalized view of a CI build environment. Every value is
// computed on first use and cached for the lifetime of the Config.
type Config interface {
	// Name is the display name of the CI system.
	Name() string
	// Active indicates if currently running in the target CI system.
	Active() bool
	// Branch is the branch the build is for. In a pull request build it is
	// the base branch, not the proposed branch.
	Branch() (string, error)
	// IsMerge indicates if the HEAD commit is a merge commit.
	IsMerge() (bool, error)
	// Tag is the git tag of the current build, or "" outside tag builds.
	Tag() string
	// Base resolves the diffbase: the commit, branch, or tag this build's
	// changes should be compared against.
	Base() (string, error)
}

var errNoGit = errors.New("not running inside a git checkout")

// Detect classifies the current process's CI environment. It walks the
// vendor table and returns the full classifier for the first vendor whose
// activation variable is set; it never guesses. The git handle may be nil,
// in which case accessors that need the repository return errors.
func Detect(git Git) (Config, error) {
	var checked []string
	for _, v := range Vendors {
		if v.New == nil {
			continue
		}
		if inCI(v.Env) {
			return v.New(git), nil
		}
		checked = append(checked, v.Env)
	}
	return nil, errors.Errorf("no supported CI system detected (checked %s)", strings.Join(checked, ", "))
}

// inCI detects if we are running in the target CI system. The only
// activating value is "true", case-insensitively; AppVeyor sets "True".
func inCI(envVar string) bool {
	return strings.EqualFold(os.Getenv(envVar), "true")
}

// requiredEnv reads an environment variable the build contract promises;
// an unset variable is an error naming it.
func requiredEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", errors.Errorf("build does not have %s set", envVar)
	}
	return val, nil
}

// tagFromEnv reads a tag variable. On non-tag builds some systems (e.g.
// Travis) leave the variable populated but empty, so empty means no tag.
func tagFromEnv(envVar string) string {
	return os.Getenv(envVar)
}

// memo caches the first result of an environment or git lookup.
type memo[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (m *memo[T]) do(f func() (T, error)) (T, error) {
	m.once.Do(func() { m.val, m.err = f() })
	return m.val, m.err
}

// baseConfig carries the classification state shared by every provider.
type baseConfig struct {
	name      string
	activeEnv string
	branchEnv string
	tagEnv    string
	git       Git

	active  memo[bool]
	branch  memo[string]
	isMerge memo[bool]
	tag     memo[string]
}

func (c *baseConfig) Name() string {
	return c.name
}

func (c *baseConfig) Active() bool {
	active, _ := c.active.do(func() (bool, error) {
		return inCI(c.activeEnv), nil
	})
	return active
}

func (c *baseConfig) Branch() (string, error) {
	return c.branch.do(func() (string, error) {
		return requiredEnv(c.branchEnv)
	})
}

func (c *baseConfig) IsMerge() (bool, error) {
	return c.isMerge.do(func() (bool, error) {
		if c.git == nil {
			return false, errNoGit
		}
		return c.git.MergeCommit("HEAD")
	})
}

func (c *baseConfig) Tag() string {
	tag, _ := c.tag.do(func() (string, error) {
		return tagFromEnv(c.tagEnv), nil
	})
	return tag
}
