// Package exporter implements the one-shot local export: fetch a profile
// and its posts, write profile.json and posts.json to a directory. Unlike
// the server pipeline it never touches the cache.
package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/domain"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/internal/mapper"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
)

// LikerCap bounds likers per post in export mode; liker fetching is
// heavily rate limited, so the cap is deliberately small.
const LikerCap = 20

type Options struct {
	Username    string
	MaxPosts    int
	FetchLikers bool
	OutDir      string
}

type Exporter struct {
	Instagram instagram.Client
	Logger    logger.Logger

	now func() time.Time
}

func New(ig instagram.Client, log logger.Logger) *Exporter {
	return &Exporter{
		Instagram: ig,
		Logger:    log,
		now:       time.Now,
	}
}

// Export fetches the profile and posts and writes both JSON files.
func (e *Exporter) Export(ctx context.Context, opts Options) error {
	profile, err := e.Instagram.GetProfile(ctx, opts.Username)
	if err != nil {
		return err
	}
	if err := e.writeJSON(opts.OutDir, "profile.json", mapper.ExportedProfile(profile, e.now())); err != nil {
		return err
	}

	sources, err := instagram.Collect(e.Instagram.Posts(ctx, opts.Username), opts.MaxPosts)
	if err != nil {
		return fmt.Errorf("failed to fetch posts of %s: %w", opts.Username, err)
	}

	posts := make([]domain.Post, 0, len(sources))
	for i, src := range sources {
		var likers []domain.Account
		if opts.FetchLikers {
			raw, err := instagram.Collect(e.Instagram.Likers(ctx, src), LikerCap)
			if err != nil {
				e.Logger.Warn("Could not fetch likers", "shortcode", src.Shortcode, "error", err)
			} else {
				likers = mapper.Accounts(raw)
			}
		}
		posts = append(posts, mapper.Post(src, likers, nil))
		e.Logger.Info("Fetched post", "index", i+1, "total", len(sources), "shortcode", src.Shortcode)
	}

	return e.writeJSON(opts.OutDir, "posts.json", posts)
}

func (e *Exporter) writeJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.Logger.Info("Saved", "path", path)
	return nil
}
