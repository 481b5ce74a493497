package instagramimpl

import (
	"context"
	"strings"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/orgball2608/insta-refresh-service/internal/session"
	"github.com/orgball2608/insta-refresh-service/pkg/config"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/orgball2608/insta-refresh-service/pkg/ratelimit"
	"go.uber.org/fx"
)

type IgImpl struct {
	Client *goinsta.Instagram
	Config *config.Config
	Logger logger.Logger
	Pacer  ratelimit.Pacer
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Pacer  ratelimit.Pacer `optional:"true"`
}

func New(opts Opts) *IgImpl {
	pacer := opts.Pacer
	if pacer == nil {
		// One page every two seconds keeps the account well under the
		// upstream throttling threshold.
		pacer = ratelimit.New(2*time.Second, 3)
	}
	return &IgImpl{
		Client: goinsta.New("", ""),
		Config: opts.Config,
		Logger: opts.Logger,
		Pacer:  pacer,
	}
}

var _ instagram.Client = (*IgImpl)(nil)

// Login stages the configured base64 session blob into goinsta and
// validates it. Without a blob the client stays anonymous, which still
// serves public profile data.
func (ig *IgImpl) Login(ctx context.Context) error {
	if ig.Config.Instagram.SessionData == "" {
		ig.Logger.Info("No session data configured, continuing anonymously")
		return nil
	}

	err := session.Stage(ig.Config.Instagram.SessionData, func(path string) error {
		client, err := goinsta.Import(path)
		if err != nil {
			return err
		}
		if err := client.Account.Sync(); err != nil {
			return err
		}
		ig.Client = client
		return nil
	})
	if err != nil {
		return err
	}

	ig.Logger.Info("Session loaded", "username", ig.Config.Instagram.Username)
	return nil
}

// extractTags pulls #hashtags or @mentions out of free text, lowercased
// and without the marker, in order of first appearance.
func extractTags(text string, marker byte) []string {
	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ',' || r == '.'
	}) {
		if len(field) < 2 || field[0] != marker {
			continue
		}
		tag := strings.ToLower(strings.TrimRight(field[1:], "#@!?:;"))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
