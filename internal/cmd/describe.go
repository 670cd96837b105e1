package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cidiff/cidiff/internal/cmdutil"
	"github.com/cidiff/cidiff/internal/ui"
	"github.com/cidiff/cidiff/pkg/ci"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DescribeCmd returns the cobra subcommand that prints everything cidiff
// knows about the current build.
func DescribeCmd(ch *cmdutil.Helper) *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print everything known about the current CI build",
		RunE: func(cmd *cobra.Command, args []string) error {
			var git ci.Git
			if repo, err := openRepo(); err != nil {
				// Classification still works without a checkout; the
				// merge-sensitive fields surface as problems instead.
				ch.Logger.Debug("describing without a repository", "err", err)
			} else {
				git = repo
			}

			cfg, err := classify(git)
			if err != nil {
				return err
			}
			description := ci.Describe(cfg)

			if outputJSON {
				rendered, err := json.MarshalIndent(description, "", "  ")
				if err != nil {
					return err
				}
				ch.UI.Output(string(rendered))
			} else {
				renderDescription(ch, description)
			}

			var problems *multierror.Error
			for _, problem := range description.Problems {
				problems = multierror.Append(problems, errors.New(problem))
			}
			if err := problems.ErrorOrNil(); err != nil {
				ch.Logger.Warn("some fields could not be resolved", "err", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Render the description as JSON")
	return cmd
}

func renderDescription(ch *cmdutil.Helper, d ci.Description) {
	row := func(label, value string) {
		if value != "" {
			ch.UI.Output(fmt.Sprintf("%-14s %s", label, value))
		}
	}

	row("Provider", ui.Bold(d.Provider))
	row("Active", strconv.FormatBool(d.Active))
	row("Branch", d.Branch)
	row("Tag", d.Tag)
	if d.IsMerge != nil {
		row("Merge commit", strconv.FormatBool(*d.IsMerge))
	}
	row("Event", d.EventType)
	if d.InPR {
		row("Pull request", strconv.Itoa(d.PR))
	}
	if d.MergedPR != 0 {
		row("Merged PR", strconv.Itoa(d.MergedPR))
	}
	row("Slug", d.Slug)
	row("Repo URL", d.RepoURL)
	row("Code host", d.RepoProvider)
	row("Diffbase", d.Base)

	for _, problem := range d.Problems {
		ch.UI.Warn(fmt.Sprintf("%s %s", ui.WarningPrefix, problem))
	}
}
