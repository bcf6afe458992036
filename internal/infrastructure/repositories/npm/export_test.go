package npm

// CommandRunner exports commandRunner for testing.
type CommandRunner = commandRunner

// NewNpmVersionRepositoryWithRunner builds a repository around a fake runner.
func NewNpmVersionRepositoryWithRunner(registryURL string, run CommandRunner) *NpmVersionRepository {
	return &NpmVersionRepository{binary: npmBinary, registryURL: registryURL, run: run}
}

// ViewArgs exports viewArgs for testing.
func (it *NpmVersionRepository) ViewArgs(name string) []string { return it.viewArgs(name) }
