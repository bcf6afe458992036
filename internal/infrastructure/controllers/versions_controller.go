package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/codependence/internal/domain/commands"
	"github.com/rios0rios0/codependence/internal/domain/entities"
)

// VersionsController handles the "versions" subcommand.
type VersionsController struct {
	command commands.Versions
}

// NewVersionsController creates a new VersionsController.
func NewVersionsController(command commands.Versions) *VersionsController {
	return &VersionsController{command: command}
}

// GetBind returns the Cobra command metadata for the versions controller.
func (it *VersionsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "versions [codependencies...]",
		Short: "Print the expected version of every codependency",
		Long: `Resolve the configured codependencies exactly as a check would and
print the version each manifest is expected to declare. No manifest is read.`,
	}
}

// AddFlags adds the versions-specific flags to the given Cobra command.
func (it *VersionsController) AddFlags(cmd *cobra.Command) {
	addResolveFlags(cmd)
}

// Execute resolves the settings and prints the expected versions.
func (it *VersionsController) Execute(cmd *cobra.Command, args []string) error {
	resolved, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}
	applyLogLevel(resolved.Settings)

	_, err = it.command.Execute(context.Background(), resolved.Settings)
	return err
}
