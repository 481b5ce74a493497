package refresherimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/insta-refresh-service/internal/cache"
	"github.com/orgball2608/insta-refresh-service/internal/domain"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/internal/mapper"
	"github.com/orgball2608/insta-refresh-service/internal/refresher"
	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
	"github.com/orgball2608/insta-refresh-service/pkg/retry"
)

// Run drives the whole refresh: acquire the status lock, load the session,
// fetch and store each stage under its budget, release the lock with a
// terminal status. Likers, comments, replies, followers and following
// degrade to empty lists on failure; everything else aborts the run.
func (r *RefresherImpl) Run(ctx context.Context) (*refresher.Summary, error) {
	if err := r.acquireLock(ctx); err != nil {
		return nil, err
	}

	summary, err := r.run(ctx)
	if err != nil {
		r.recordFailure(ctx, err)
		return nil, err
	}

	if err := r.Store.Set(ctx, cache.KeyRefreshStatus, domain.StatusComplete, refresher.StatusTTL); err != nil {
		r.recordFailure(ctx, err)
		return nil, err
	}
	return summary, nil
}

// acquireLock claims the status key atomically. A terminal value from a
// previous run (complete or error:*) does not block a new run, only a
// live "running" does.
func (r *RefresherImpl) acquireLock(ctx context.Context) error {
	acquired, err := r.Store.SetNX(ctx, cache.KeyRefreshStatus, domain.StatusRunning, refresher.StatusTTL)
	if err != nil {
		return err
	}
	if acquired {
		return nil
	}

	current, ok, err := r.Store.Get(ctx, cache.KeyRefreshStatus)
	if err != nil {
		return err
	}
	if ok && current == domain.StatusRunning {
		return apperrors.ErrConflict
	}
	return r.Store.Set(ctx, cache.KeyRefreshStatus, domain.StatusRunning, refresher.StatusTTL)
}

// rearmLock refreshes the running status at stage boundaries so a live
// run keeps its lock past the short TTL. Best effort: a failure here is
// not worth aborting a half-done refresh for.
func (r *RefresherImpl) rearmLock(ctx context.Context) {
	if err := r.Store.Set(ctx, cache.KeyRefreshStatus, domain.StatusRunning, refresher.StatusTTL); err != nil {
		r.Logger.Warn("Failed to re-arm refresh lock", "error", err)
	}
}

func (r *RefresherImpl) recordFailure(ctx context.Context, cause error) {
	status := domain.ErrorStatus(cause.Error())
	if apperrors.Is(cause, apperrors.ErrSessionDecode) || apperrors.Is(cause, apperrors.ErrSessionLoad) {
		status = domain.ErrorStatus("session_failed")
	}
	if err := r.Store.Set(ctx, cache.KeyRefreshStatus, status, refresher.StatusTTL); err != nil {
		// The lock's TTL still clears the stuck state eventually.
		r.Logger.Error("Failed to record failure status", "error", err)
	}
}

func (r *RefresherImpl) run(ctx context.Context) (*refresher.Summary, error) {
	username := r.Config.Instagram.Username

	if r.Config.Instagram.SessionData != "" {
		if err := r.Instagram.Login(ctx); err != nil {
			r.Logger.Error("Failed to load session", "error", err)
			return nil, err
		}
	}

	r.Logger.Info("Fetching profile", "username", username)
	var profile *instagram.Profile
	err := retry.Do(ctx, r.Logger, "fetch_profile", func() error {
		var fetchErr error
		profile, fetchErr = r.Instagram.GetProfile(ctx, username)
		return fetchErr
	}, r.retryCfg)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, r.Store, cache.KeyProfile(username), mapper.Profile(profile, r.now()), r.cacheTTL()); err != nil {
		return nil, err
	}
	r.rearmLock(ctx)

	r.Logger.Info("Fetching posts", "username", username, "max", r.Config.Refresh.MaxPosts)
	posts, err := r.fetchPosts(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, r.Store, cache.KeyPosts(username), posts, r.cacheTTL()); err != nil {
		return nil, err
	}
	r.rearmLock(ctx)

	r.Logger.Info("Fetching followers", "username", username, "max", r.Config.Refresh.MaxFollowers)
	followers := r.fetchAccounts(ctx, "followers", r.Instagram.Followers(ctx, username), r.Config.Refresh.MaxFollowers)
	if err := cache.SetJSON(ctx, r.Store, cache.KeyFollowers(username), followers, r.cacheTTL()); err != nil {
		return nil, err
	}
	r.rearmLock(ctx)

	r.Logger.Info("Fetching following", "username", username, "max", r.Config.Refresh.MaxFollowing)
	following := r.fetchAccounts(ctx, "following", r.Instagram.Following(ctx, username), r.Config.Refresh.MaxFollowing)
	if err := cache.SetJSON(ctx, r.Store, cache.KeyFollowing(username), following, r.cacheTTL()); err != nil {
		return nil, err
	}

	completedAt := mapper.Timestamp(r.now())
	if err := r.Store.Set(ctx, cache.KeyLastRefresh(username), completedAt, refresher.LastRefreshTTL); err != nil {
		return nil, err
	}

	return &refresher.Summary{
		Success:        true,
		Profile:        profile.Username,
		PostsCount:     len(posts),
		FollowersCount: len(followers),
		FollowingCount: len(following),
		Timestamp:      completedAt,
	}, nil
}

// fetchPosts drains the post sequence up to the budget and attaches the
// bounded sub-collections. A likers or comments failure degrades that one
// list to empty; the post itself and the run always survive it.
func (r *RefresherImpl) fetchPosts(ctx context.Context, username string) ([]domain.Post, error) {
	sources, err := instagram.Collect(r.Instagram.Posts(ctx, username), r.Config.Refresh.MaxPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts of %s: %w", username, err)
	}

	posts := make([]domain.Post, 0, len(sources))
	for i, src := range sources {
		r.Logger.Info("Fetching post", "index", i+1, "total", len(sources), "shortcode", src.Shortcode)

		var likers []domain.Account
		rawLikers, err := instagram.Collect(r.Instagram.Likers(ctx, src), r.Config.Refresh.MaxLikersPerPost)
		if err != nil {
			r.Logger.Warn("Failed to fetch likers, continuing with empty list", "shortcode", src.Shortcode, "error", err)
		} else {
			likers = mapper.Accounts(rawLikers)
		}

		var comments []domain.Comment
		rawComments, err := instagram.Collect(r.Instagram.Comments(ctx, src), r.Config.Refresh.MaxCommentsPerPost)
		if err != nil {
			r.Logger.Warn("Failed to fetch comments, continuing with empty list", "shortcode", src.Shortcode, "error", err)
		} else {
			comments = make([]domain.Comment, 0, len(rawComments))
			for _, rawComment := range rawComments {
				replies, err := instagram.Collect(r.Instagram.Replies(ctx, src, rawComment), refresher.ReplyCap)
				if err != nil {
					r.Logger.Warn("Failed to fetch replies, continuing with empty list", "shortcode", src.Shortcode, "comment_id", rawComment.ID, "error", err)
					replies = nil
				}
				comments = append(comments, mapper.Comment(rawComment, replies))
			}
		}

		posts = append(posts, mapper.Post(src, likers, comments))
	}
	return posts, nil
}

// fetchAccounts is the tolerant bounded fetch shared by the followers and
// following stages.
func (r *RefresherImpl) fetchAccounts(ctx context.Context, stage string, seq instagram.Seq[instagram.Account], max int) []domain.Account {
	raw, err := instagram.Collect(seq, max)
	if err != nil {
		r.Logger.Warn("Failed to fetch accounts, continuing with empty list", "stage", stage, "error", err)
		return []domain.Account{}
	}
	return mapper.Accounts(raw)
}
