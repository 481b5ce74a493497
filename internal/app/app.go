package app

import (
	"fmt"
	"net/http"

	"github.com/orgball2608/insta-refresh-service/internal/cache"
	"github.com/orgball2608/insta-refresh-service/internal/cache/redisimpl"
	"github.com/orgball2608/insta-refresh-service/internal/cache/upstashimpl"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/internal/instagram/instagramimpl"
	"github.com/orgball2608/insta-refresh-service/internal/refresher"
	"github.com/orgball2608/insta-refresh-service/internal/refresher/refresherimpl"
	"github.com/orgball2608/insta-refresh-service/internal/server"
	"github.com/orgball2608/insta-refresh-service/pkg/config"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		newStore,
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			refresherimpl.New,
			fx.As(new(refresher.Client)),
		),
	),
	fx.Provide(server.New),
	fx.Invoke(func(*http.Server) {}),
)

type storeOpts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// newStore picks the cache backend from CACHE_BACKEND.
func newStore(opts storeOpts) (cache.Store, error) {
	switch opts.Config.Cache.Backend {
	case "redis":
		return redisimpl.New(redisimpl.Opts{
			LC:     opts.LC,
			Logger: opts.Logger,
		}, opts.Config.Cache.RedisURL)
	case "upstash":
		return upstashimpl.New(upstashimpl.Opts{
			BaseURL: opts.Config.Cache.UpstashURL,
			Token:   opts.Config.Cache.UpstashToken,
			Logger:  opts.Logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Config.Cache.Backend)
	}
}
