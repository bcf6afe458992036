package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/codependence/internal/domain/commands"
	"github.com/rios0rios0/codependence/internal/domain/entities"
)

// CheckController handles the manifest scan (root command and "check").
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [codependencies...]",
		Short: "Check manifests for codependency version mismatches",
		Long: `Scan package.json files for the configured codependencies and report
every declaration whose version differs from the expected one.

Expected versions come from the npm "latest" dist-tag, unless pinned:
  codependence --codependencies react '{"lodash":"4.17.21"}'

With --update the manifests are rewritten in place with the exact
expected version. Exits with status 1 when mismatches are left behind.`,
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	addResolveFlags(cmd)
	addScanFlags(cmd)
}

// Execute resolves the settings and runs the scan.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resolved, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	if testingCLI, _ := cmd.Flags().GetBool(flagIsTestingCLI); testingCLI {
		printTestingCLI(resolved)
		return nil
	}

	settings := resolved.Settings
	applyLogLevel(settings)

	result, err := it.command.Execute(ctx, settings)
	if err != nil {
		return err
	}
	if result.Failed() && settings.IsCLI {
		return entities.ErrDependenciesOutOfDate
	}
	return nil
}
