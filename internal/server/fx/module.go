package fx

import (
	"go.uber.org/fx"

	"selector-grader/internal/server"
)

var Module = fx.Options(
	fx.Provide(server.NewHTTPServer),
	fx.Invoke(RegisterHTTPServerLifecycle),
)
