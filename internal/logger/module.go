package logger

import "go.uber.org/fx"

// Module provides the service-wide slog logger to the fx graph.
var Module = fx.Provide(New)
