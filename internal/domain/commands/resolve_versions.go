package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

var errNoVersionSource = errors.New("no version source configured")

// ResolveOptions tunes a ResolveVersions call.
type ResolveOptions struct {
	Debug       bool
	Concurrency int // 0 starts every lookup at once
}

// ResolveVersions builds the expected-version map. Pinned entries are used as
// they are; bare names are looked up concurrently and the call returns once
// every lookup has settled. A failing or invalid entry contributes nothing
// and never aborts the others.
func ResolveVersions(
	ctx context.Context,
	tracked []entities.TrackedPackage,
	lookup entities.LatestVersionFunc,
	opts ResolveOptions,
	notifier repositories.NotifierRepository,
) entities.ExpectedVersions {
	resolutions := make([]entities.VersionResolution, len(tracked))

	var group errgroup.Group
	if opts.Concurrency > 0 {
		group.SetLimit(opts.Concurrency)
	}
	for i, pkg := range tracked {
		group.Go(func() error {
			resolutions[i] = resolveOne(ctx, pkg, lookup)
			return nil
		})
	}
	_ = group.Wait()

	if opts.Debug {
		for _, resolution := range resolutions {
			if resolution.Err == nil {
				continue
			}
			notifier.Notify(entities.NewEvent(
				entities.EventDebug, "resolve", resolution.Err.Error(),
			).WithField("entry", resolution.Package.String()))
		}
	}

	return entities.NewExpectedVersions(resolutions)
}

func resolveOne(
	ctx context.Context,
	pkg entities.TrackedPackage,
	lookup entities.LatestVersionFunc,
) entities.VersionResolution {
	resolution := entities.VersionResolution{Package: pkg, Name: pkg.Name}

	if err := pkg.Validate(); err != nil {
		resolution.Err = err
		return resolution
	}
	if pkg.Pinned {
		resolution.Version = pkg.Version
		return resolution
	}
	if lookup == nil {
		resolution.Err = &entities.LookupError{Name: pkg.Name, Err: errNoVersionSource}
		return resolution
	}

	raw, err := lookup(ctx, pkg.Name)
	if err != nil {
		resolution.Err = &entities.LookupError{Name: pkg.Name, Err: err}
		return resolution
	}

	version := strings.TrimRight(raw, "\r\n")
	if version == "" {
		resolution.Err = &entities.LookupError{Name: pkg.Name, Err: entities.ErrEmptyVersion}
		return resolution
	}

	resolution.Version = version
	return resolution
}

// WithLookupTimeout bounds every call of lookup; a zero timeout disables it.
func WithLookupTimeout(lookup entities.LatestVersionFunc, timeout time.Duration) entities.LatestVersionFunc {
	if timeout <= 0 || lookup == nil {
		return lookup
	}
	return func(ctx context.Context, name string) (string, error) {
		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return lookup(lookupCtx, name)
	}
}
