package fx

import (
	"go.uber.org/fx"

	"selector-grader/internal/app/health"
	"selector-grader/internal/router"
)

var Module = fx.Options(
	fx.Provide(router.AsRoute(health.NewHandler)),
)
