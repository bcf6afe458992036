package repositories

import (
	"go.uber.org/dig"

	fsRepo "github.com/rios0rios0/codependence/internal/infrastructure/repositories/filesystem"
	logRepo "github.com/rios0rios0/codependence/internal/infrastructure/repositories/logging"
	npmRepo "github.com/rios0rios0/codependence/internal/infrastructure/repositories/npm"
	registryRepo "github.com/rios0rios0/codependence/internal/infrastructure/repositories/registry"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register version source registry with all source factories
	if err := container.Provide(func() *VersionSourceRegistry {
		reg := NewVersionSourceRegistry()
		reg.Register("npm", npmRepo.NewNpmVersionRepository)
		reg.Register("registry", registryRepo.NewRegistryVersionRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(fsRepo.NewFileManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(logRepo.NewLogrusNotifierRepository); err != nil {
		return err
	}

	return nil
}
