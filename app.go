package diorama

import (
	"context"

	"go.uber.org/fx"

	"github.com/diorama-viz/diorama/dashboard"
	"github.com/diorama-viz/diorama/logger"
	"github.com/diorama-viz/diorama/metrics"
	"github.com/diorama-viz/diorama/reduction"
	"github.com/diorama-viz/diorama/tracer"
)

// FXModule wires the Explorer into Fx: it provides the Explorer (also as
// the dashboard's FigureBuilder) and loads the dataset from the Source on
// startup.
//
// The container must supply a Source; a reduction client is optional.
var FXModule = fx.Module("diorama",
	fx.Provide(
		newAppExplorer,
		func(e *Explorer) dashboard.FigureBuilder { return e },
	),
	fx.Invoke(RegisterDataLifecycle),
)

type explorerParams struct {
	fx.In

	Reducer *reduction.Client `optional:"true"`
}

func newAppExplorer(p explorerParams) *Explorer {
	return &Explorer{reducer: p.Reducer}
}

// RegisterDataLifecycle loads the dataset when the application starts.
func RegisterDataLifecycle(lc fx.Lifecycle, e *Explorer, src Source, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			documents, embedding, err := src.Load(ctx)
			if err != nil {
				return err
			}
			if err := e.SetData(documents, embedding); err != nil {
				return err
			}
			log.Info("Loaded dataset", nil, map[string]interface{}{
				"documents": len(documents),
			})
			return nil
		},
	})
}

// NewApp assembles the dashboard service: logger, metrics, tracer,
// explorer and HTTP server. The caller provides the document source and
// any extra wiring as fx options; configs can be overridden with
// fx.Decorate:
//
//	app := diorama.NewApp(
//		fx.Provide(func(c *qdrant.Client) diorama.Source {
//			return diorama.QdrantSource{Client: c}
//		}),
//		qdrant.FXModule,
//		fx.Supply(qdrant.FromEndpoint("localhost").WithCollection("embeddings")),
//	)
//	app.Run()
func NewApp(opts ...fx.Option) *fx.App {
	base := []fx.Option{
		fx.Provide(
			func() logger.Config {
				return logger.Config{Level: logger.Info, ServiceName: "diorama", EnableTracing: true}
			},
			func() tracer.Config {
				return tracer.Config{ServiceName: "diorama", AppEnv: "development"}
			},
			func(l *logger.Logger) tracer.Logger { return l },
			func(t *tracer.Tracer) reduction.Propagator { return t },
			metrics.DefaultConfig,
			dashboard.DefaultConfig,
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		FXModule,
		dashboard.FXModule,
	}
	return fx.New(append(base, opts...)...)
}
