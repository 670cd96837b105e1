package ci

import (
	"strings"

	"github.com/pkg/errors"
)

// RepoProvider identifies the code host backing a build.
type RepoProvider string

const (
	// ProviderGitHub is github.com.
	ProviderGitHub RepoProvider = "github"
	// ProviderBitbucket is bitbucket.org.
	ProviderBitbucket RepoProvider = "bitbucket"
	// ProviderKiln is Fog Creek Kiln.
	ProviderKiln RepoProvider = "kiln"
	// ProviderVSO is Visual Studio Online / Azure DevOps.
	ProviderVSO RepoProvider = "vso"
	// ProviderGitLab is gitlab.com.
	ProviderGitLab RepoProvider = "gitlab"
)

// parseRepoProvider matches raw case-insensitively against the given
// providers; AppVeyor reports values like "gitHub".
func parseRepoProvider(raw string, valid []RepoProvider) (RepoProvider, error) {
	for _, p := range valid {
		if strings.EqualFold(raw, string(p)) {
			return p, nil
		}
	}
	names := make([]string, len(valid))
	for i, p := range valid {
		names[i] = string(p)
	}
	return "", errors.Errorf("invalid repo provider %q (expected one of %s, case-insensitive)", raw, strings.Join(names, ", "))
}
