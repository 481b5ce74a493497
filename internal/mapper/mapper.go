// Package mapper normalizes source records into the cached output schema.
// Everything here is a pure transform: missing optional fields become
// defined neutral values, keys are never dropped, and ids that originate
// as int64 are carried as text so nothing downstream rounds them.
package mapper

import (
	"strconv"
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/domain"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	"github.com/samber/lo"
)

// PermalinkBase is the fixed URL template for a post, parameterized only
// by shortcode.
const PermalinkBase = "https://www.instagram.com/p/"

func Permalink(shortcode string) string {
	return PermalinkBase + shortcode + "/"
}

// MediaTypeOf classifies a source typename into the output media kind.
func MediaTypeOf(typename string) string {
	switch typename {
	case instagram.TypenameVideo:
		return domain.MediaTypeVideo
	case instagram.TypenameSidecar:
		return domain.MediaTypeCarousel
	default:
		return domain.MediaTypeImage
	}
}

func Profile(src *instagram.Profile, now time.Time) domain.Profile {
	return domain.Profile{
		Username:          src.Username,
		UserID:            strconv.FormatInt(src.UserID, 10),
		FullName:          src.FullName,
		Biography:         src.Biography,
		Bio:               src.Biography,
		ExternalURL:       src.ExternalURL,
		ProfilePicURL:     src.ProfilePicURL,
		IsPrivate:         src.IsPrivate,
		IsVerified:        src.IsVerified,
		IsBusinessAccount: src.IsBusinessAccount,
		BusinessCategory:  src.BusinessCategory,
		FollowersCount:    src.FollowersCount,
		FollowingCount:    src.FollowingCount,
		PostsCount:        src.PostsCount,
		IGTVCount:         src.IGTVCount,
		BiographyHashtags: orEmpty(src.BiographyHashtags),
		BiographyMentions: orEmpty(src.BiographyMentions),
		LastUpdated:       Timestamp(now),
	}
}

func ExportedProfile(src *instagram.Profile, now time.Time) domain.ExportedProfile {
	return domain.ExportedProfile{
		Username:       src.Username,
		FullName:       src.FullName,
		Bio:            src.Biography,
		ProfilePicURL:  src.ProfilePicURL,
		FollowersCount: src.FollowersCount,
		FollowingCount: src.FollowingCount,
		LastUpdated:    Timestamp(now),
	}
}

// Post maps a source post. Likers and comments are attached by the caller,
// which owns their budgets; nil collapses to the empty list so a degraded
// sub-collection still serializes as [].
func Post(src instagram.Post, likers []domain.Account, comments []domain.Comment) domain.Post {
	post := domain.Post{
		ID:              strconv.FormatInt(src.MediaID, 10),
		Shortcode:       src.Shortcode,
		Typename:        src.Typename,
		Caption:         src.Caption,
		CaptionHashtags: orEmpty(src.Hashtags),
		CaptionMentions: orEmpty(src.Mentions),
		TaggedUsers:     orEmpty(src.TaggedUsers),
		MediaType:       MediaTypeOf(src.Typename),
		MediaURL:        src.DisplayURL,
		VideoDuration:   src.VideoDuration,
		LikeCount:       src.LikeCount,
		CommentCount:    src.CommentCount,
		VideoViewCount:  src.ViewCount,
		Permalink:       Permalink(src.Shortcode),
		Timestamp:       Timestamp(src.TakenAt),
		IsVideo:         src.IsVideo,
		IsPinned:        src.IsPinned,
		IsSponsored:     src.IsSponsored,
		Likers:          likers,
		Comments:        comments,
	}
	if src.IsVideo {
		post.VideoURL = src.VideoURL
	}
	if post.Likers == nil {
		post.Likers = []domain.Account{}
	}
	if post.Comments == nil {
		post.Comments = []domain.Comment{}
	}

	post.SidecarItems = lo.Map(src.SidecarNodes, func(node instagram.SidecarNode, _ int) domain.SidecarItem {
		return domain.SidecarItem{
			IsVideo:    node.IsVideo,
			DisplayURL: node.DisplayURL,
			VideoURL:   node.VideoURL,
		}
	})

	if src.Typename == instagram.TypenameSidecar {
		post.MediaURLs = lo.Map(src.SidecarNodes, func(node instagram.SidecarNode, _ int) string {
			return node.DisplayURL
		})
	} else {
		post.MediaURLs = []string{src.DisplayURL}
	}

	if src.Location != nil {
		post.Location = &domain.Location{
			ID:   strconv.FormatInt(src.Location.ID, 10),
			Name: src.Location.Name,
			Slug: src.Location.Slug,
			Lat:  src.Location.Lat,
			Lng:  src.Location.Lng,
		}
	}

	return post
}

func Account(src instagram.Account) domain.Account {
	return domain.Account{
		Username:      src.Username,
		FullName:      src.FullName,
		ProfilePicURL: src.ProfilePicURL,
		IsVerified:    src.IsVerified,
		IsPrivate:     src.IsPrivate,
	}
}

func Accounts(src []instagram.Account) []domain.Account {
	return lo.Map(src, func(a instagram.Account, _ int) domain.Account {
		return Account(a)
	})
}

// Comment maps a source comment with its already-bounded replies. Replies
// of replies are not modeled, so nested reply lists are always empty.
func Comment(src instagram.Comment, replies []instagram.Comment) domain.Comment {
	return domain.Comment{
		ID:         strconv.FormatInt(src.ID, 10),
		Text:       src.Text,
		Timestamp:  Timestamp(src.CreatedAt),
		LikesCount: src.LikesCount,
		Owner:      Account(src.Owner),
		Replies: lo.Map(replies, func(r instagram.Comment, _ int) domain.Comment {
			reply := Comment(r, nil)
			return reply
		}),
	}
}

// Timestamp renders a UTC instant with an explicit zone suffix.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
