package instagramimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
)

func (ig *IgImpl) GetProfile(ctx context.Context, username string) (*instagram.Profile, error) {
	user, err := ig.visit(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := &instagram.Profile{
		UserID:            user.ID,
		Username:          user.Username,
		FullName:          user.FullName,
		Biography:         user.Biography,
		ProfilePicURL:     user.ProfilePicURL,
		IsPrivate:         user.IsPrivate,
		IsVerified:        user.IsVerified,
		IsBusinessAccount: user.IsBusiness,
		FollowersCount:    user.FollowerCount,
		FollowingCount:    user.FollowingCount,
		PostsCount:        user.MediaCount,
		IGTVCount:         user.IGTVCount,
		BiographyHashtags: extractTags(user.Biography, '#'),
		BiographyMentions: extractTags(user.Biography, '@'),
	}
	if user.ExternalURL != "" {
		url := user.ExternalURL
		profile.ExternalURL = &url
	}
	if user.Category != "" {
		category := user.Category
		profile.BusinessCategory = &category
	}
	return profile, nil
}

func (ig *IgImpl) Followers(ctx context.Context, username string) instagram.Seq[instagram.Account] {
	return ig.userSeq(ctx, username, func(user *goinsta.User) *goinsta.Users {
		return user.Followers("")
	})
}

func (ig *IgImpl) Following(ctx context.Context, username string) instagram.Seq[instagram.Account] {
	return ig.userSeq(ctx, username, func(user *goinsta.User) *goinsta.Users {
		return user.Following("", goinsta.DefaultOrder)
	})
}

// userSeq lazily pages through a follower-style list, pacing each page
// request.
func (ig *IgImpl) userSeq(ctx context.Context, username string, list func(*goinsta.User) *goinsta.Users) instagram.Seq[instagram.Account] {
	return func(yield func(instagram.Account, error) bool) {
		user, err := ig.visit(ctx, username)
		if err != nil {
			yield(instagram.Account{}, err)
			return
		}

		users := list(user)
		for {
			if err := ig.Pacer.Wait(ctx); err != nil {
				yield(instagram.Account{}, err)
				return
			}
			if !users.Next() {
				if err := users.Error(); err != nil && !errors.Is(err, goinsta.ErrNoMore) {
					yield(instagram.Account{}, err)
				}
				return
			}
			for _, u := range users.Users {
				if !yield(toAccount(u), nil) {
					return
				}
			}
		}
	}
}

func (ig *IgImpl) visit(ctx context.Context, username string) (*goinsta.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := ig.Client.Profiles.ByName(username)
	if err != nil {
		return nil, apperrors.Wrap(instagram.ErrProfileNotFound, fmt.Sprintf("failed to get profile %s: %v", username, err))
	}
	if user.IsPrivate && !user.Friendship.Following {
		return nil, apperrors.Wrap(instagram.ErrPrivateAccount, fmt.Sprintf("profile %s is private", username))
	}
	return user, nil
}

func toAccount(u *goinsta.User) instagram.Account {
	return instagram.Account{
		Username:      u.Username,
		FullName:      u.FullName,
		ProfilePicURL: u.ProfilePicURL,
		IsVerified:    u.IsVerified,
		IsPrivate:     u.IsPrivate,
	}
}
