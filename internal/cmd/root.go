// Package cmd holds the root cobra command for cidiff
package cmd

import (
	"fmt"
	"os"

	"github.com/cidiff/cidiff/internal/cmdutil"
	"github.com/cidiff/cidiff/pkg/ci"
	"github.com/cidiff/cidiff/pkg/scm"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it, returning the process exit code.
func Execute(version string) int {
	helper, err := cmdutil.NewHelper(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cidiff: %v\n", err)
		return 1
	}

	root := RootCmd(helper)
	if err := root.Execute(); err != nil {
		helper.LogError("%v", err)
		return 1
	}
	return 0
}

// RootCmd returns the root cobra command for the cidiff CLI
func RootCmd(ch *cmdutil.Helper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cidiff",
		Short:         "Classify the current CI build and resolve its diffbase",
		Version:       ch.Config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(DescribeCmd(ch))
	cmd.AddCommand(BaseCmd(ch))
	cmd.AddCommand(ChangedCmd(ch))
	return cmd
}

// openRepo walks up from the working directory to the checkout root.
func openRepo() (scm.SCM, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("invalid working directory: %w", err)
	}
	return scm.FromInRepo(cwd)
}

// classify resolves the build classifier for the current environment. A
// detected-but-unsupported vendor gets named rather than lumped into the
// generic detection failure.
func classify(git ci.Git) (ci.Config, error) {
	cfg, err := ci.Detect(git)
	if err != nil {
		if vendor := ci.Info(); vendor.Name != "" {
			return nil, fmt.Errorf("%s is detected but its builds cannot be classified", vendor.Name)
		}
		return nil, err
	}
	return cfg, nil
}
