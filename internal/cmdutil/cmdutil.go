// Package cmdutil holds the shared state that every command receives.
package cmdutil

import (
	"fmt"

	"github.com/cidiff/cidiff/internal/config"
	"github.com/cidiff/cidiff/internal/ui"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Helper is the shared state each command is constructed with.
type Helper struct {
	Config *config.Config
	UI     cli.Ui
	Logger hclog.Logger
}

// NewHelper resolves the configuration and terminal UI for a CLI run.
func NewHelper(version string) (*Helper, error) {
	cfg, err := config.New(version)
	if err != nil {
		return nil, err
	}

	colorMode := ui.GetColorModeFromEnv()
	if cfg.NoColor {
		colorMode = ui.ColorModeSuppressed
	}

	return &Helper{
		Config: cfg,
		UI:     ui.BuildColoredUi(colorMode),
		Logger: cfg.Logger,
	}, nil
}

// LogWarning logs a warning and reports it to the terminal
func (h *Helper) LogWarning(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	h.Logger.Warn("warning", err)
	h.UI.Warn(fmt.Sprintf("%s %s", ui.WarningPrefix, err.Error()))
	return err
}

// LogError logs an error and reports it to the terminal
func (h *Helper) LogError(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	h.Logger.Error("error", err)
	h.UI.Error(fmt.Sprintf("%s %s", ui.ErrorPrefix, err.Error()))
	return err
}
