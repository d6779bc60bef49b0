package fx

import (
	"go.uber.org/fx"

	gradefx "selector-grader/internal/app/grade/fx"
	healthfx "selector-grader/internal/app/health/fx"
	routerfx "selector-grader/internal/router/fx"
	serverfx "selector-grader/internal/server/fx"
)

// ServeModule is the full HTTP grading surface on top of CoreAppOptions.
var ServeModule = fx.Options(
	CoreAppOptions,
	routerfx.CoreRouterOptions,
	serverfx.Module,
	healthfx.Module,
	gradefx.Module,
)
