package repositories

import (
	"github.com/rios0rios0/codependence/internal/domain/entities"
)

// NotifierRepository receives the events emitted by the domain commands and
// decides how to render them.
type NotifierRepository interface {
	Notify(event entities.Event)
}
