package commands

import (
	"fmt"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

// Report emits one warning per update candidate, scoped by manifest name,
// unless silent. It returns whether the manifest had any mismatch.
func Report(
	notifier repositories.NotifierRepository,
	manifestName string,
	lists entities.CandidateLists,
	silent bool,
) bool {
	if !lists.HasUpdates() {
		return false
	}
	if silent {
		return true
	}

	for _, kind := range entities.SectionKinds {
		for _, candidate := range lists.For(kind) {
			notifier.Notify(entities.NewEvent(
				entities.EventWarn,
				manifestName,
				fmt.Sprintf(
					"%s version is not correct — found %s and should be %s",
					candidate.Name, candidate.Actual, candidate.Expected,
				),
			).WithField("section", string(kind)))
		}
	}
	return true
}
