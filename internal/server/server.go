package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/refresher"
	"github.com/orgball2608/insta-refresh-service/pkg/config"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC        fx.Lifecycle
	Config    *config.Config
	Logger    logger.Logger
	Refresher refresher.Client
}

// New starts the trigger server on APP_PORT and ties it to the fx
// lifecycle.
func New(opts Opts) *http.Server {
	mux := http.NewServeMux()
	handler := &Handler{
		Refresher: opts.Refresher,
		Logger:    opts.Logger,
	}
	handler.Register(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			opts.Logger.Info("Starting server", "addr", srv.Addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					opts.Logger.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
