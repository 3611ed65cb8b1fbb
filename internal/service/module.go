package service

import (
	"go.uber.org/fx"
)

// Module provides all services
var Module = fx.Module("services",
	fx.Provide(
		NewProjectService,
		NewGPSService,
		NewFinancialService,
		NewReferenceService,
		NewMetricsService,
	),
)
