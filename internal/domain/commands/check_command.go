package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/codependence/internal/infrastructure/repositories"
)

const scopeCodependence = "codependence"

// Check is the interface for the check command (the manifest scan).
type Check interface {
	Execute(ctx context.Context, settings entities.Settings) (*entities.ScanResult, error)
}

// CheckCommand orchestrates a scan:
// resolve expected versions -> match manifests -> diff -> report -> patch and write.
type CheckCommand struct {
	sourceRegistry *infraRepos.VersionSourceRegistry
	manifests      repositories.ManifestRepository
	notifier       repositories.NotifierRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	sourceRegistry *infraRepos.VersionSourceRegistry,
	manifests repositories.ManifestRepository,
	notifier repositories.NotifierRepository,
) *CheckCommand {
	return &CheckCommand{
		sourceRegistry: sourceRegistry,
		manifests:      manifests,
		notifier:       notifier,
	}
}

// Execute runs one scan. Mismatches are not an error here: they are carried
// in the returned ScanResult and turned into an exit code by the caller.
func (it *CheckCommand) Execute(ctx context.Context, settings entities.Settings) (*entities.ScanResult, error) {
	if len(settings.Codependencies) == 0 {
		return nil, entities.ErrCodependenciesRequired
	}

	expected, err := resolveExpected(ctx, it.sourceRegistry, it.notifier, settings)
	if err != nil {
		return nil, err
	}
	if settings.Debug {
		it.notifier.Notify(entities.NewEvent(
			entities.EventDebug, "resolve", "expected versions",
		).WithField("versions", map[string]string(expected)))
	}

	paths, err := it.manifests.Match(ctx, settings.RootDir, settings.Files, settings.Ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to match manifest files: %w", err)
	}

	result := &entities.ScanResult{}
	for _, relative := range paths {
		if checkErr := it.checkManifest(ctx, filepath.Join(settings.RootDir, relative), expected, settings, result); checkErr != nil {
			return nil, checkErr
		}
	}

	if settings.Debug {
		it.notifier.Notify(entities.NewEvent(
			entities.EventDebug, "check", "manifests needing update",
		).WithField("manifests", result.NeedingUpdate))
	}

	it.notifyOutcome(result.Decide(settings.Update))
	return result, nil
}

func (it *CheckCommand) checkManifest(
	ctx context.Context,
	path string,
	expected entities.ExpectedVersions,
	settings entities.Settings,
	result *entities.ScanResult,
) error {
	raw, err := it.manifests.Read(ctx, path)
	if err != nil {
		return &entities.ManifestError{Path: path, Err: err}
	}
	manifest, err := entities.ParseManifest(path, raw)
	if err != nil {
		return err
	}
	result.Scanned++

	lists := entities.DiffManifest(manifest, expected)
	if settings.Debug {
		it.notifyCandidates(manifest, lists)
	}

	if !Report(it.notifier, manifest.DisplayName(), lists, settings.Silent) {
		return nil
	}
	result.NeedingUpdate = append(result.NeedingUpdate, path)

	if !settings.Update {
		return nil
	}

	patched := patchManifest(it.notifier, manifest, lists, settings.Debug)
	data, err := patched.Encode()
	if err != nil {
		return &entities.ManifestError{Path: path, Err: err}
	}

	if settings.IsTesting {
		it.notifier.Notify(entities.NewEvent(
			entities.EventInfo, scopeCodependence, "[DRY RUN] Would rewrite "+path,
		))
		return nil
	}

	if writeErr := it.manifests.Write(ctx, path, data); writeErr != nil {
		return &entities.ManifestError{Path: path, Err: writeErr}
	}
	result.Written = append(result.Written, path)
	return nil
}

func (it *CheckCommand) notifyCandidates(manifest entities.Manifest, lists entities.CandidateLists) {
	event := entities.NewEvent(entities.EventDebug, manifest.DisplayName(), "update candidates")
	for _, kind := range entities.SectionKinds {
		candidates := lists.For(kind)
		drifts := make(map[string]entities.Drift, len(candidates))
		for _, candidate := range candidates {
			drifts[candidate.Name] = candidate.Drift()
		}
		event = event.WithField(string(kind), drifts)
	}
	it.notifier.Notify(event)
}

func (it *CheckCommand) notifyOutcome(outcome entities.ScanOutcome) {
	switch outcome {
	case entities.OutcomeOutOfDate:
		it.notifier.Notify(entities.NewEvent(
			entities.EventError, scopeCodependence, "dependencies are not correct",
		))
	case entities.OutcomeUpdated:
		it.notifier.Notify(entities.NewEvent(
			entities.EventInfo, scopeCodependence,
			"dependencies were not correct but should be updated! Check your git status.",
		))
	default:
		it.notifier.Notify(entities.NewEvent(
			entities.EventInfo, scopeCodependence, "no dependency issues found!",
		))
	}
}

// patchManifest applies the candidate lists and, in debug mode, emits the
// computed sections.
func patchManifest(
	notifier repositories.NotifierRepository,
	manifest entities.Manifest,
	lists entities.CandidateLists,
	debug bool,
) entities.Manifest {
	patched := manifest.Patch(lists)
	if debug {
		event := entities.NewEvent(entities.EventDebug, manifest.DisplayName(), "patched sections")
		for _, kind := range entities.SectionKinds {
			if patched.HasSection(kind) {
				event = event.WithField(string(kind), patched.Section(kind).Map())
			}
		}
		notifier.Notify(event)
	}
	return patched
}

// resolveExpected picks the configured version source and resolves the
// tracked packages through it.
func resolveExpected(
	ctx context.Context,
	registry *infraRepos.VersionSourceRegistry,
	notifier repositories.NotifierRepository,
	settings entities.Settings,
) (entities.ExpectedVersions, error) {
	source, err := registry.Get(settings)
	if err != nil {
		return nil, err
	}

	lookup := WithLookupTimeout(source.Latest, settings.Timeout)
	return ResolveVersions(ctx, settings.Codependencies, lookup, ResolveOptions{
		Debug:       settings.Debug,
		Concurrency: settings.Concurrency,
	}, notifier), nil
}
