package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/orgball2608/insta-refresh-service/internal/exporter"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/internal/instagram/instagramimpl"
	"github.com/orgball2608/insta-refresh-service/pkg/config"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/orgball2608/insta-refresh-service/pkg/ratelimit"
)

func main() {
	_ = godotenv.Load()

	maxPosts := flag.Int("max-posts", 50, "maximum number of posts to fetch")
	fetchLikers := flag.Bool("fetch-likers", false, "fetch likers per post (rate limited, may require a session)")
	outDir := flag.String("out", "data/instagram", "output directory for profile.json and posts.json")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: export [flags] <username>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	username := flag.Arg(0)

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Opts{Env: cfg.App.Env})
	// One-shot exports are bounded by -max-posts, so skip the page pacing
	// the long-running service uses.
	ig := instagramimpl.New(instagramimpl.Opts{
		Config: cfg,
		Logger: log,
		Pacer:  ratelimit.Unlimited(),
	})

	ctx := context.Background()
	if cfg.Instagram.SessionData != "" {
		if err := ig.Login(ctx); err != nil {
			log.Warn("Failed to load session, continuing anonymously", "error", err)
		}
	}

	log.Info("Refreshing Instagram data", "username", username, "max_posts", *maxPosts, "fetch_likers", *fetchLikers)

	err = exporter.New(ig, log).Export(ctx, exporter.Options{
		Username:    username,
		MaxPosts:    *maxPosts,
		FetchLikers: *fetchLikers,
		OutDir:      *outDir,
	})
	if err != nil {
		switch {
		case errors.Is(err, instagram.ErrProfileNotFound):
			fmt.Fprintf(os.Stderr, "Error: profile @%s does not exist.\n", username)
		case errors.Is(err, instagram.ErrPrivateAccount):
			fmt.Fprintf(os.Stderr, "Error: profile @%s is private and you don't follow them.\n", username)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
