package cmd

import (
	"github.com/cidiff/cidiff/internal/cmdutil"
	"github.com/spf13/cobra"
)

// BaseCmd returns the cobra subcommand that prints the build's diffbase.
func BaseCmd(ch *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Print the commit or branch this build should be diffed against",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			cfg, err := classify(repo)
			if err != nil {
				return err
			}
			base, err := cfg.Base()
			if err != nil {
				if ch.Config.Token != "" {
					ch.Logger.Debug("a code-host token is configured but hosted lookups are not attempted")
				}
				return err
			}
			ch.UI.Output(base)
			return nil
		},
	}
	return cmd
}
