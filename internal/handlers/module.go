package handlers

import "go.uber.org/fx"

var Module = fx.Module("handlers",
	fx.Provide(
		NewProjectHandler,
		NewGPSHandler,
		NewFinancialHandler,
		NewReferenceHandler,
		NewMonitoringHandler,
	),
)
