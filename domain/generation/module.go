package generation

import (
	"go.uber.org/fx"
)

// Module provides the demo generation API
var Module = fx.Module("generation",
	fx.Provide(
		NewStore,
		NewService,
		NewHandler,
		NewClientRateLimiter,
	),
	fx.Invoke(RegisterRoutes),
)
