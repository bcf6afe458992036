package controllers

import (
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codependence/internal/domain/entities"
)

const (
	flagCodependencies = "codependencies"
	flagConfig         = "config"
	flagDebug          = "debug"
	flagSource         = "source"
	flagRegistry       = "registry"
	flagTimeout        = "timeout"
	flagConcurrency    = "concurrency"
	flagFiles          = "files"
	flagRootDir        = "rootDir"
	flagIgnore         = "ignore"
	flagUpdate         = "update"
	flagSilent         = "silent"
	flagIsTesting      = "isTesting"
	flagDryRun         = "dry-run"
	flagIsTestingCLI   = "isTestingCLI"
)

// addResolveFlags adds the flags every command needs to resolve versions.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray(flagCodependencies, nil,
		`Codependencies to audit: bare names ("react") or pinned JSON pairs ('{"react":"18.2.0"}')`)
	cmd.Flags().StringP(flagConfig, "c", "", "Path to config file (default: auto-detect)")
	cmd.Flags().Bool(flagDebug, false, "Enable debug output")
	cmd.Flags().String(flagSource, "", "Version source: npm or registry (default: npm)")
	cmd.Flags().String(flagRegistry, "", "npm registry URL (default: "+entities.DefaultRegistryURL+")")
	cmd.Flags().Duration(flagTimeout, 0, "Timeout of a single version lookup (default: 30s)")
	cmd.Flags().Int(flagConcurrency, 0, "Maximum concurrent version lookups (default: unbounded)")
}

// addScanFlags adds the manifest scanning flags.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP(flagFiles, "f", nil, "Manifest glob patterns (default: package.json)")
	cmd.Flags().StringP(flagRootDir, "r", "", "Root directory to start the search (default: ./)")
	cmd.Flags().StringArrayP(flagIgnore, "i", nil, "Ignore glob patterns (default: node_modules)")
	cmd.Flags().BoolP(flagUpdate, "u", false, "Rewrite manifests with the expected versions")
	cmd.Flags().Bool(flagSilent, false, "Do not report individual mismatches")
	cmd.Flags().Bool(flagIsTesting, false, "Report what would be rewritten without writing any file")
	cmd.Flags().Bool(flagDryRun, false, "Alias of --isTesting")
	cmd.Flags().BoolP(flagIsTestingCLI, "t", false, "Print the loaded configuration and options, run nothing")
}

// cliLayerFromFlags collects only the flags the user actually set, so that
// unset flags never shadow the config file. Positional arguments are extra
// codependency items.
//
//nolint:gocognit,cyclop // flat flag dispatch
func cliLayerFromFlags(cmd *cobra.Command, args []string) (entities.SettingsLayer, error) {
	var layer entities.SettingsLayer
	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}

	if changed(flagCodependencies) || len(args) > 0 {
		items, _ := flags.GetStringArray(flagCodependencies)
		items = append(items, args...)
		layer.Codependencies = parseTrackedItems(items)
	}
	if changed(flagFiles) {
		layer.Files, _ = flags.GetStringArray(flagFiles)
	}
	if changed(flagIgnore) {
		layer.Ignore, _ = flags.GetStringArray(flagIgnore)
	}
	if changed(flagRootDir) {
		value, _ := flags.GetString(flagRootDir)
		layer.RootDir = &value
	}
	if changed(flagSource) {
		value, _ := flags.GetString(flagSource)
		layer.VersionSource = &value
	}
	if changed(flagRegistry) {
		value, _ := flags.GetString(flagRegistry)
		layer.RegistryURL = &value
	}
	if changed(flagTimeout) {
		value, err := flags.GetDuration(flagTimeout)
		if err != nil {
			return entities.SettingsLayer{}, err
		}
		layer.Timeout = &value
	}
	if changed(flagConcurrency) {
		value, err := flags.GetInt(flagConcurrency)
		if err != nil {
			return entities.SettingsLayer{}, err
		}
		layer.Concurrency = &value
	}

	layer.Update = changedBool(cmd, flagUpdate)
	layer.Debug = changedBool(cmd, flagDebug)
	layer.Silent = changedBool(cmd, flagSilent)
	layer.IsTesting = changedBool(cmd, flagIsTesting)
	if dryRun := changedBool(cmd, flagDryRun); dryRun != nil && *dryRun {
		layer.IsTesting = dryRun
	}

	return layer, nil
}

func changedBool(cmd *cobra.Command, name string) *bool {
	flags := cmd.Flags()
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return nil
	}
	value, _ := flags.GetBool(name)
	return &value
}

// parseTrackedItems accepts JSON pairs as they are and splits anything else
// on commas and whitespace, so "--codependencies a,b" and "a b" both work.
func parseTrackedItems(items []string) []entities.TrackedPackage {
	packages := make([]entities.TrackedPackage, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if strings.HasPrefix(trimmed, "{") {
			packages = append(packages, entities.ParseTrackedPackage(trimmed))
			continue
		}
		for _, name := range strings.FieldsFunc(trimmed, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		}) {
			packages = append(packages, entities.NewTrackedPackage(name))
		}
	}
	return packages
}

// resolvedSettings is the merged configuration plus where it came from.
type resolvedSettings struct {
	Settings   entities.Settings
	ConfigPath string
}

// resolveSettings merges defaults < config file < CLI and forces CLI mode.
// An explicit --config must load; a searched one is optional.
func resolveSettings(cmd *cobra.Command, args []string) (*resolvedSettings, error) {
	cliLayer, err := cliLayerFromFlags(cmd, args)
	if err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString(flagConfig)
	if configPath == "" {
		searchDirs := []string{"."}
		if cliLayer.RootDir != nil && *cliLayer.RootDir != "" {
			searchDirs = append([]string{*cliLayer.RootDir}, searchDirs...)
		}
		found, findErr := entities.FindConfigFile(searchDirs...)
		if findErr != nil && !entities.IsConfigNotFound(findErr) {
			return nil, findErr
		}
		configPath = found
	}

	var fileLayer entities.SettingsLayer
	if configPath != "" {
		fileLayer, err = entities.LoadSettingsLayer(configPath)
		if err != nil {
			return nil, err
		}
	}

	isCLI := true
	settings := entities.ResolveSettings(fileLayer, cliLayer, entities.SettingsLayer{IsCLI: &isCLI})
	return &resolvedSettings{
		Settings:   settings,
		ConfigPath: configPath,
	}, nil
}

// applyLogLevel switches logrus to debug output when requested.
func applyLogLevel(settings entities.Settings) {
	if settings.Debug || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
}

// printTestingCLI logs the loaded configuration and options without running.
func printTestingCLI(resolved *resolvedSettings) {
	logger.WithFields(logger.Fields{
		"config":   resolved.ConfigPath,
		"settings": fmt.Sprintf("%+v", resolved.Settings),
	}).Info("[codependence] CLI testing mode, nothing was run")
}
