package refresherimpl

import (
	"context"
	"sync"
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/pkg/config"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/orgball2608/insta-refresh-service/pkg/retry"
)

// memStore is an in-memory cache.Store that records every write. TTLs are
// accepted but not enforced; expiry behavior belongs to the backends.
type memStore struct {
	mu     sync.Mutex
	data   map[string]string
	writes []string

	// setErr, when set, can veto individual writes.
	setErr func(key, value string) error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		if err := m.setErr(key, value); err != nil {
			return err
		}
	}
	m.data[key] = value
	m.writes = append(m.writes, key)
	return nil
}

func (m *memStore) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	m.data[key] = value
	m.writes = append(m.writes, key)
	return true, nil
}

// fakeSource implements instagram.Client from plain slices; any stage can
// be overridden to fail.
type fakeSource struct {
	loginErr   error
	profile    *instagram.Profile
	profileErr error

	posts    []instagram.Post
	postsErr error

	likers    map[string][]instagram.Account
	likersErr map[string]error

	comments    map[string][]instagram.Comment
	commentsErr map[string]error

	replies    map[int64][]instagram.Comment
	repliesErr map[int64]error

	followers    []instagram.Account
	followersErr error
	following    []instagram.Account
	followingErr error
}

var _ instagram.Client = (*fakeSource)(nil)

func (f *fakeSource) Login(context.Context) error { return f.loginErr }

func (f *fakeSource) GetProfile(context.Context, string) (*instagram.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeSource) Posts(context.Context, string) instagram.Seq[instagram.Post] {
	if f.postsErr != nil {
		return instagram.Fail[instagram.Post](f.postsErr)
	}
	return instagram.FromSlice(f.posts)
}

func (f *fakeSource) Likers(_ context.Context, post instagram.Post) instagram.Seq[instagram.Account] {
	if err := f.likersErr[post.Shortcode]; err != nil {
		return instagram.Fail[instagram.Account](err)
	}
	return instagram.FromSlice(f.likers[post.Shortcode])
}

func (f *fakeSource) Comments(_ context.Context, post instagram.Post) instagram.Seq[instagram.Comment] {
	if err := f.commentsErr[post.Shortcode]; err != nil {
		return instagram.Fail[instagram.Comment](err)
	}
	return instagram.FromSlice(f.comments[post.Shortcode])
}

func (f *fakeSource) Replies(_ context.Context, _ instagram.Post, comment instagram.Comment) instagram.Seq[instagram.Comment] {
	if err := f.repliesErr[comment.ID]; err != nil {
		return instagram.Fail[instagram.Comment](err)
	}
	return instagram.FromSlice(f.replies[comment.ID])
}

func (f *fakeSource) Followers(context.Context, string) instagram.Seq[instagram.Account] {
	if f.followersErr != nil {
		return instagram.Fail[instagram.Account](f.followersErr)
	}
	return instagram.FromSlice(f.followers)
}

func (f *fakeSource) Following(context.Context, string) instagram.Seq[instagram.Account] {
	if f.followingErr != nil {
		return instagram.Fail[instagram.Account](f.followingErr)
	}
	return instagram.FromSlice(f.following)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Instagram.Username = "someone"
	cfg.Cache.TTLSeconds = 3600
	cfg.Refresh.MaxPosts = 50
	cfg.Refresh.MaxLikersPerPost = 50
	cfg.Refresh.MaxCommentsPerPost = 50
	cfg.Refresh.MaxFollowers = 1000
	cfg.Refresh.MaxFollowing = 1000
	return cfg
}

func newTestRefresher(src instagram.Client, store *memStore, cfg *config.Config) *RefresherImpl {
	r := New(Opts{
		Instagram: src,
		Store:     store,
		Logger:    logger.Nop(),
		Config:    cfg,
	})
	r.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	r.retryCfg = retry.Config{
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1,
	}
	return r
}
