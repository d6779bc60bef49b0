package fx

import (
	"selector-grader/internal/app/grade"
	"selector-grader/internal/fetch"
	"selector-grader/internal/router"

	"go.uber.org/fx"
)

var Module = fx.Module(
	"grade",
	fx.Provide(fetch.NewFromConfig),
	fx.Provide(router.AsRoute(grade.NewHandler)),
)
