package logging

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

// LogrusNotifierRepository renders domain events through logrus as
// "[scope] message" lines with the event fields attached.
type LogrusNotifierRepository struct {
	log *logger.Logger
}

// NewLogrusNotifierRepository renders events through the standard logger.
func NewLogrusNotifierRepository() repositories.NotifierRepository {
	return NewLogrusNotifierRepositoryWith(logger.StandardLogger())
}

// NewLogrusNotifierRepositoryWith renders events through the given logger.
func NewLogrusNotifierRepositoryWith(log *logger.Logger) *LogrusNotifierRepository {
	return &LogrusNotifierRepository{log: log}
}

// Notify writes the event at its level.
func (it *LogrusNotifierRepository) Notify(event entities.Event) {
	entry := logger.NewEntry(it.log)
	if len(event.Fields) > 0 {
		entry = entry.WithFields(logger.Fields(event.Fields))
	}

	message := event.Message
	if event.Scope != "" {
		message = "[" + event.Scope + "] " + message
	}

	switch event.Level {
	case entities.EventDebug:
		entry.Debug(message)
	case entities.EventWarn:
		entry.Warn(message)
	case entities.EventError:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}
