package export

import (
	"go.uber.org/fx"
)

// FXModule wires the MinIO sink into Fx as the Sink implementation.
//
// A MinioConfig and a Logger must be available in the dependency injection
// container.
var FXModule = fx.Module("export",
	fx.Provide(
		fx.Annotate(NewMinioSink, fx.As(new(Sink))),
	),
)
