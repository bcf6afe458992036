package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codependence/internal"
	"github.com/rios0rios0/codependence/internal/domain/entities"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	rootController := appContext.GetRootController()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "codependence [codependencies...]",
		Short: "Keep codependency versions aligned across package.json files",
		Long: `Codependency, for code dependency. Checks the configured codependencies in
package.json files to ensure they declare the expected version.

Usage modes:
  codependence --codependencies react            Report mismatches (exit 1 if any)
  codependence --codependencies react --update   Rewrite mismatching manifests
  codependence versions --codependencies react   Print the expected versions

Options may also come from a config file (.codependencerc, .codependencerc.yaml,
.codependencerc.toml, or the "codependence" key of package.json).
Command-line flags take precedence over the config file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return rootController.Execute(command, args)
		},
	}
	rootController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.ArbitraryArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		if errors.Is(err, entities.ErrDependenciesOutOfDate) {
			os.Exit(1)
		}
		logger.Fatalf("Error executing 'codependence': %s", err)
	}
}
