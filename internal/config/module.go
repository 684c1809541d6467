package config

import "go.uber.org/fx"

// Module provides the environment-backed configuration to the fx graph.
var Module = fx.Provide(Load)
