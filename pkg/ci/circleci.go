package ci

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	githubURLPrefix    = "https://github.com/"
	bitbucketURLPrefix = "https://bitbucket.org/"
)

// CircleCI classifies a CircleCI build.
type CircleCI struct {
	baseConfig

	pr       memo[int]
	repoURL  memo[string]
	provider memo[RepoProvider]
}

// NewCircleCI returns a CircleCI classifier reading the current
// environment. The git handle may be nil when no checkout is available.
func NewCircleCI(git Git) *CircleCI {
	return &CircleCI{
		baseConfig: baseConfig{
			name:      "CircleCI",
			activeEnv: CircleCIEnv,
			branchEnv: CircleBranchEnv,
			tagEnv:    CircleTagEnv,
			git:       git,
		},
	}
}

// PR is the pull request number being built, or 0 outside of PR builds.
func (c *CircleCI) PR() int {
	pr, _ := c.pr.do(func() (int, error) {
		pr, err := strconv.Atoi(os.Getenv(CirclePREnv))
		if err != nil {
			return 0, nil
		}
		return pr, nil
	})
	return pr
}

// InPR indicates if the build is for a pull request.
func (c *CircleCI) InPR() bool {
	return c.PR() != 0
}

// RepoURL is the URL of the repository being built.
func (c *CircleCI) RepoURL() (string, error) {
	return c.repoURL.do(func() (string, error) {
		return requiredEnv(CircleRepoURLEnv)
	})
}

// Provider is the code hosting provider, derived from the repository URL.
func (c *CircleCI) Provider() (RepoProvider, error) {
	return c.provider.do(func() (RepoProvider, error) {
		repoURL, err := c.RepoURL()
		if err != nil {
			return "", err
		}
		switch {
		case strings.HasPrefix(repoURL, githubURLPrefix):
			return ProviderGitHub, nil
		case strings.HasPrefix(repoURL, bitbucketURLPrefix):
			return ProviderBitbucket, nil
		default:
			return "", errors.Errorf("repository URL %q does not match a known code host", repoURL)
		}
	})
}

// Base is unresolvable on CircleCI without asking the code host which
// commit the PR branched from; those API calls are planned but
// unimplemented.
func (c *CircleCI) Base() (string, error) {
	return "", errors.New("resolving a CircleCI diffbase requires the code host API, which cidiff does not call")
}
