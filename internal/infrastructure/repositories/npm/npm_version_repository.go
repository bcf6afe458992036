package npm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

const (
	sourceName = "npm"
	npmBinary  = "npm"
)

// commandRunner runs an external program and returns its standard output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// NpmVersionRepository implements repositories.VersionRepository by asking
// the npm CLI for the "latest" dist-tag of a package.
type NpmVersionRepository struct {
	binary      string
	registryURL string
	run         commandRunner
}

// NewNpmVersionRepository creates an npm CLI backed version source. The
// registry flag is only passed when the settings point away from the default.
func NewNpmVersionRepository(settings entities.Settings) repositories.VersionRepository {
	registryURL := ""
	if settings.RegistryURL != "" && settings.RegistryURL != entities.DefaultRegistryURL {
		registryURL = settings.RegistryURL
	}
	return &NpmVersionRepository{
		binary:      npmBinary,
		registryURL: registryURL,
		run:         runCommand,
	}
}

func (it *NpmVersionRepository) Name() string { return sourceName }

// Latest runs `npm view <name>@latest version` and returns its raw output.
func (it *NpmVersionRepository) Latest(ctx context.Context, name string) (string, error) {
	output, err := it.run(ctx, it.binary, it.viewArgs(name)...)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func (it *NpmVersionRepository) viewArgs(name string) []string {
	args := []string{"view", name + "@latest", "version"}
	if it.registryURL != "" {
		args = append(args, "--registry", it.registryURL)
	}
	return args
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf(
			"%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()),
		)
	}
	return output, nil
}
