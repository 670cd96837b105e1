package ci

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EventType classifies what triggered a Travis build.
type EventType string

const (
	// EventPush is a build triggered by a branch push.
	EventPush EventType = "push"
	// EventPullRequest is a build of a pull request against a base branch.
	EventPullRequest EventType = "pull_request"
	// EventCron is a scheduled build.
	EventCron EventType = "cron"
	// EventAPI is a build triggered through the Travis API.
	EventAPI EventType = "api"
)

// rangeDelimiter separates the endpoints in TRAVIS_COMMIT_RANGE.
const rangeDelimiter = "..."

const githubURLTemplate = "https://github.com/%s"

var prIDPattern = regexp.MustCompile(`#(\d+)`)

func parseEventType(raw string) (EventType, error) {
	switch et := EventType(raw); et {
	case EventPush, EventPullRequest, EventCron, EventAPI:
		return et, nil
	default:
		return "", errors.Errorf("%q is not a valid %s value (expected one of push, pull_request, cron, api)", raw, TravisEventTypeEnv)
	}
}

// Travis classifies a Travis CI build. Since Travis only works with
// GitHub, the slug and repository URL are GitHub centric.
type Travis struct {
	baseConfig

	eventType memo[EventType]
	pr        memo[int]
	mergedPR  memo[int]
	slug      memo[string]
	base      memo[string]
}

// NewTravis returns a Travis classifier reading the current environment.
// The git handle may be nil when no checkout is available.
func NewTravis(git Git) *Travis {
	return &Travis{
		baseConfig: baseConfig{
			name:      "Travis CI",
			activeEnv: TravisEnv,
			branchEnv: TravisBranchEnv,
			tagEnv:    TravisTagEnv,
			git:       git,
		},
	}
}

// EventType reports what triggered the build. Travis always sets
// TRAVIS_EVENT_TYPE; anything unexpected is an error so the decision
// table stays total.
func (t *Travis) EventType() (EventType, error) {
	return t.eventType.do(func() (EventType, error) {
		raw, err := requiredEnv(TravisEventTypeEnv)
		if err != nil {
			return "", err
		}
		return parseEventType(raw)
	})
}

// InPR indicates if the build is for a pull request.
func (t *Travis) InPR() (bool, error) {
	eventType, err := t.EventType()
	if err != nil {
		return false, err
	}
	return eventType == EventPullRequest, nil
}

// PR is the pull request number being built, or 0 in a push build.
// TRAVIS_PULL_REQUEST holds "false" outside of PR builds, so a
// non-integer value simply means "not a PR".
func (t *Travis) PR() int {
	pr, _ := t.pr.do(func() (int, error) {
		pr, err := strconv.Atoi(os.Getenv(TravisPREnv))
		if err != nil {
			return 0, nil
		}
		return pr, nil
	})
	return pr
}

// Slug is the {organization}/{repository} pair being built.
func (t *Travis) Slug() (string, error) {
	return t.slug.do(func() (string, error) {
		return requiredEnv(TravisSlugEnv)
	})
}

// RepoURL is the URL of the GitHub repository being built.
func (t *Travis) RepoURL() (string, error) {
	slug, err := t.Slug()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(githubURLTemplate, slug), nil
}

// MergedPR is the number of the pull request that produced the HEAD merge
// commit of a push build, or 0 when HEAD is not such a commit. PR builds
// always report 0: their HEAD is a synthetic merge, not a landed one.
func (t *Travis) MergedPR() (int, error) {
	return t.mergedPR.do(func() (int, error) {
		inPR, err := t.InPR()
		if err != nil {
			return 0, err
		}
		if inPR {
			return 0, nil
		}
		isMerge, err := t.IsMerge()
		if err != nil {
			return 0, err
		}
		if !isMerge {
			return 0, nil
		}
		subject, err := t.git.CommitSubject("HEAD")
		if err != nil {
			return 0, err
		}
		return prFromSubject(subject), nil
	})
}

// Base resolves the diffbase for the build:
//
//   - in a pull request build, the base branch;
//   - in a push build, the verified start of TRAVIS_COMMIT_RANGE;
//   - otherwise (cron, api) there is nothing meaningful to diff against.
func (t *Travis) Base() (string, error) {
	return t.base.do(func() (string, error) {
		inPR, err := t.InPR()
		if err != nil {
			return "", err
		}
		if inPR {
			return t.Branch()
		}
		eventType, _ := t.EventType()
		if eventType == EventPush {
			return t.pushBuildBase()
		}
		return "", errors.Errorf("diffbase resolution is not supported for %q builds", eventType)
	})
}

// pushBuildBase resolves the start of the build's commit range to a full
// SHA and verifies it is an ancestor of the end, so that diffing against
// it only shows changes from this push.
func (t *Travis) pushBuildBase() (string, error) {
	commitRange, err := requiredEnv(TravisRangeEnv)
	if err != nil {
		return "", err
	}
	start, finish, found := strings.Cut(commitRange, rangeDelimiter)
	if !found {
		return "", errors.Errorf("%s value %q is not a %q-delimited range", TravisRangeEnv, commitRange, rangeDelimiter)
	}
	if t.git == nil {
		return "", errNoGit
	}
	startFull, err := t.git.RevParse(start)
	if err != nil {
		// Travis clones are shallow by default, and resolving the start
		// through the GitHub compare API is planned but unimplemented.
		return "", errors.Wrapf(err,
			"start commit %s is not available locally; run `git fetch --unshallow` before resolving a push-build diffbase", start)
	}
	mergeBase, err := t.git.MergeBase(startFull, finish)
	if err != nil {
		return "", err
	}
	if mergeBase != startFull {
		return "", errors.Errorf("start commit %s is not an ancestor of %s", startFull, finish)
	}
	return startFull, nil
}

// prFromSubject extracts a pull request number from a merge commit
// subject. If no "#N" reference can be uniquely extracted, returns 0.
func prFromSubject(subject string) int {
	matches := prIDPattern.FindAllStringSubmatch(subject, -1)
	if len(matches) != 1 {
		return 0
	}
	// The pattern guarantees the match is all digits.
	pr, _ := strconv.Atoi(matches[0][1])
	return pr
}
