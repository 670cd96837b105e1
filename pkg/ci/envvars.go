package ci

// Environment variables that drive Travis classification.
const (
	// TravisEnv indicates if running in Travis.
	TravisEnv = "TRAVIS"
	// TravisBranchEnv is the branch that was pushed in a "push" build, or
	// the branch a pull request is against in a "pull request" build.
	TravisBranchEnv = "TRAVIS_BRANCH"
	// TravisEventTypeEnv indicates the type of build that is occurring.
	TravisEventTypeEnv = "TRAVIS_EVENT_TYPE"
	// TravisPREnv holds the pull request number, or "false" in a push build.
	TravisPREnv = "TRAVIS_PULL_REQUEST"
	// TravisRangeEnv is the range of commits changed in the current build.
	// It is not particularly useful in a PR build.
	TravisRangeEnv = "TRAVIS_COMMIT_RANGE"
	// TravisSlugEnv is the {organization}/{repository} slug being built.
	TravisSlugEnv = "TRAVIS_REPO_SLUG"
	// TravisTagEnv is the tag being built. Present but empty on non-tag builds.
	TravisTagEnv = "TRAVIS_TAG"
)

// Environment variables that drive AppVeyor classification.
const (
	// AppVeyorEnv indicates if running in AppVeyor.
	AppVeyorEnv = "APPVEYOR"
	// AppVeyorBranchEnv is the build branch, or in a PR build the base branch.
	AppVeyorBranchEnv = "APPVEYOR_REPO_BRANCH"
	// AppVeyorProviderEnv names the code host backing the AppVeyor project.
	AppVeyorProviderEnv = "APPVEYOR_REPO_PROVIDER"
	// AppVeyorTagEnv is the pushed tag name. Only expected when
	// APPVEYOR_REPO_TAG=true, but read unconditionally.
	AppVeyorTagEnv = "APPVEYOR_REPO_TAG_NAME"
)

// Environment variables that drive CircleCI classification.
const (
	// CircleCIEnv indicates if running in CircleCI.
	CircleCIEnv = "CIRCLECI"
	// CircleBranchEnv is the branch being built.
	CircleBranchEnv = "CIRCLE_BRANCH"
	// CircleTagEnv is the tag being built, if any.
	CircleTagEnv = "CIRCLE_TAG"
	// CirclePREnv is the pull request number, unset outside of PR builds.
	CirclePREnv = "CIRCLE_PR_NUMBER"
	// CircleRepoURLEnv is the URL of the repository being built.
	CircleRepoURLEnv = "CIRCLE_REPOSITORY_URL"
)

// GitHubTokenEnv is a GitHub OAuth 2.0 token. Reserved for the planned
// hosted-API diffbase fallback; authenticated requests avoid the shared
// rate limit CI machines are subject to.
const GitHubTokenEnv = "GITHUB_OAUTH_TOKEN"
