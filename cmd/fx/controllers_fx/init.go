package controllers_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewPlannerController,
	controllers.NewSettingsController,
	controllers.NewDestinationsController,
	controllers.NewItinerariesController,
)
