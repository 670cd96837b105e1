package ci

import "fmt"

// Description is a flattened, JSON-friendly snapshot of a classified
// build environment. Fields a provider does not expose, or whose lookup
// failed, are left zero; failures are recorded in Problems.
type Description struct {
	Provider string `json:"provider"`
	Active   bool   `json:"active"`
	Branch   string `json:"branch,omitempty"`
	Tag      string `json:"tag,omitempty"`
	IsMerge  *bool  `json:"isMerge,omitempty"`

	EventType string `json:"eventType,omitempty"`
	InPR      bool   `json:"inPr"`
	PR        int    `json:"pr,omitempty"`
	MergedPR  int    `json:"mergedPr,omitempty"`

	Slug         string `json:"slug,omitempty"`
	RepoURL      string `json:"repoUrl,omitempty"`
	RepoProvider string `json:"repoProvider,omitempty"`

	Base string `json:"base,omitempty"`

	// Problems lists fields that could not be resolved, each as
	// "field: reason".
	Problems []string `json:"problems,omitempty"`
}

func (d *Description) note(field string, err error) {
	d.Problems = append(d.Problems, fmt.Sprintf("%s: %v", field, err))
}

// Describe resolves every field the classifier exposes. It never fails:
// per-field errors land in Problems so callers can render a complete
// picture of a partially-broken environment.
func Describe(c Config) Description {
	d := Description{
		Provider: c.Name(),
		Active:   c.Active(),
		Tag:      c.Tag(),
	}

	if branch, err := c.Branch(); err != nil {
		d.note("branch", err)
	} else {
		d.Branch = branch
	}
	if isMerge, err := c.IsMerge(); err != nil {
		d.note("isMerge", err)
	} else {
		d.IsMerge = &isMerge
	}
	if base, err := c.Base(); err != nil {
		d.note("base", err)
	} else {
		d.Base = base
	}

	switch cfg := c.(type) {
	case *Travis:
		if eventType, err := cfg.EventType(); err != nil {
			d.note("eventType", err)
		} else {
			d.EventType = string(eventType)
		}
		if inPR, err := cfg.InPR(); err == nil {
			d.InPR = inPR
		}
		d.PR = cfg.PR()
		if mergedPR, err := cfg.MergedPR(); err != nil {
			d.note("mergedPr", err)
		} else {
			d.MergedPR = mergedPR
		}
		if slug, err := cfg.Slug(); err != nil {
			d.note("slug", err)
		} else {
			d.Slug = slug
		}
		if repoURL, err := cfg.RepoURL(); err == nil {
			d.RepoURL = repoURL
		}
		d.RepoProvider = string(ProviderGitHub)
	case *AppVeyor:
		if provider, err := cfg.Provider(); err != nil {
			d.note("repoProvider", err)
		} else {
			d.RepoProvider = string(provider)
		}
	case *CircleCI:
		d.PR = cfg.PR()
		d.InPR = cfg.InPR()
		if repoURL, err := cfg.RepoURL(); err != nil {
			d.note("repoUrl", err)
		} else {
			d.RepoURL = repoURL
		}
		if provider, err := cfg.Provider(); err != nil {
			d.note("repoProvider", err)
		} else {
			d.RepoProvider = string(provider)
		}
	}

	return d
}
