package refresherimpl

import (
	"context"

	"github.com/orgball2608/insta-refresh-service/internal/cache"
	"github.com/orgball2608/insta-refresh-service/internal/domain"
	"github.com/orgball2608/insta-refresh-service/internal/refresher"
)

// Status reads the two status keys without mutating anything. An absent
// status key means no run is live, which reads as idle.
func (r *RefresherImpl) Status(ctx context.Context) (*refresher.Status, error) {
	status, ok, err := r.Store.Get(ctx, cache.KeyRefreshStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		status = domain.StatusIdle
	}

	result := &refresher.Status{Status: status}

	lastRefresh, ok, err := r.Store.Get(ctx, cache.KeyLastRefresh(r.Config.Instagram.Username))
	if err != nil {
		return nil, err
	}
	if ok {
		result.LastRefresh = &lastRefresh
	}
	return result, nil
}
