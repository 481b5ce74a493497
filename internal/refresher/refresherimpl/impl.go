package refresherimpl

import (
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/cache"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/internal/refresher"
	"github.com/orgball2608/insta-refresh-service/pkg/config"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/orgball2608/insta-refresh-service/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Instagram instagram.Client
	Store     cache.Store
	Logger    logger.Logger
	Config    *config.Config
}

type RefresherImpl struct {
	Instagram instagram.Client
	Store     cache.Store
	Logger    logger.Logger
	Config    *config.Config

	now      func() time.Time
	retryCfg retry.Config
}

func New(opts Opts) *RefresherImpl {
	return &RefresherImpl{
		Instagram: opts.Instagram,
		Store:     opts.Store,
		Logger:    opts.Logger,
		Config:    opts.Config,
		now:       time.Now,
		retryCfg:  retry.DefaultConfig(),
	}
}

var _ refresher.Client = (*RefresherImpl)(nil)

func (r *RefresherImpl) cacheTTL() time.Duration {
	return time.Duration(r.Config.Cache.TTLSeconds) * time.Second
}
