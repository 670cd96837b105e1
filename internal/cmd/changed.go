package cmd

import (
	"github.com/cidiff/cidiff/internal/cmdutil"
	"github.com/spf13/cobra"
)

// ChangedCmd returns the cobra subcommand that lists the files this build
// touched relative to its diffbase.
func ChangedCmd(ch *cmdutil.Helper) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "changed",
		Short: "List files changed relative to the build's diffbase",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			var files []string
			if all {
				files, err = repo.CheckedInFiles()
			} else {
				cfg, classifyErr := classify(repo)
				if classifyErr != nil {
					return classifyErr
				}
				base, baseErr := cfg.Base()
				if baseErr != nil {
					return baseErr
				}
				ch.Logger.Debug("diffing against base", "base", base)
				files, err = repo.ChangedFiles(base, "HEAD", "")
			}
			if err != nil {
				return err
			}

			for _, file := range files {
				ch.UI.Output(file)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List every tracked file instead of diffing")
	return cmd
}
