package internal

import (
	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/infrastructure/controllers"
)

// AppInternal holds every controller the CLI exposes.
type AppInternal struct {
	controllers     []entities.Controller
	checkController *controllers.CheckController
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	controllerList *[]entities.Controller,
	checkController *controllers.CheckController,
) *AppInternal {
	return &AppInternal{
		controllers:     *controllerList,
		checkController: checkController,
	}
}

// GetControllers returns all controllers, each bound to a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetRootController returns the controller that runs when no subcommand is given.
func (it *AppInternal) GetRootController() entities.Controller {
	return it.checkController
}
