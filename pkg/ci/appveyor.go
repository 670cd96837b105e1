package ci

import (
	"os"

	"github.com/pkg/errors"
)

// appVeyorProviders are the code hosts AppVeyor can build from.
var appVeyorProviders = []RepoProvider{
	ProviderGitHub,
	ProviderBitbucket,
	ProviderKiln,
	ProviderVSO,
	ProviderGitLab,
}

// AppVeyor classifies an AppVeyor build.
type AppVeyor struct {
	baseConfig

	provider memo[RepoProvider]
}

// NewAppVeyor returns an AppVeyor classifier reading the current
// environment. The git handle may be nil when no checkout is available.
func NewAppVeyor(git Git) *AppVeyor {
	return &AppVeyor{
		baseConfig: baseConfig{
			name:      "AppVeyor",
			activeEnv: AppVeyorEnv,
			branchEnv: AppVeyorBranchEnv,
			tagEnv:    AppVeyorTagEnv,
			git:       git,
		},
	}
}

// Provider is the code hosting provider for the current build.
func (a *AppVeyor) Provider() (RepoProvider, error) {
	return a.provider.do(func() (RepoProvider, error) {
		return parseRepoProvider(os.Getenv(AppVeyorProviderEnv), appVeyorProviders)
	})
}

// Base is unresolvable on AppVeyor: its environment exposes neither a
// commit range nor a PR base branch.
func (a *AppVeyor) Base() (string, error) {
	return "", errors.New("AppVeyor builds do not expose enough state to resolve a diffbase")
}
