package ids

import "go.uber.org/fx"

// Module provides the default id generator.
var Module = fx.Provide(func() Generator { return NewHexGenerator() })
