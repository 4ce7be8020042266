package dashboard

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/diorama-viz/diorama/logger"
)

var FXModule = fx.Module("dashboard",
	fx.Provide(NewServer),
	fx.Invoke(RegisterDashboardLifecycle),
)

func RegisterDashboardLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting dashboard server", nil, map[string]interface{}{
					"address": s.HTTP.Addr,
				})

				if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Error starting dashboard server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down dashboard server", nil, nil)
			return s.HTTP.Shutdown(ctx)
		},
	})
}
