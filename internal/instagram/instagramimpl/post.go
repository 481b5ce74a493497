package instagramimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
)

const (
	mediaTypePhoto    = 1
	mediaTypeVideo    = 2
	mediaTypeCarousel = 8
)

func (ig *IgImpl) Posts(ctx context.Context, username string) instagram.Seq[instagram.Post] {
	return func(yield func(instagram.Post, error) bool) {
		user, err := ig.visit(ctx, username)
		if err != nil {
			yield(instagram.Post{}, err)
			return
		}

		feed := user.Feed()
		for {
			if err := ig.Pacer.Wait(ctx); err != nil {
				yield(instagram.Post{}, err)
				return
			}
			if !feed.Next() {
				if err := feed.Error(); err != nil && !errors.Is(err, goinsta.ErrNoMore) {
					yield(instagram.Post{}, err)
				}
				return
			}
			for i := range feed.Items {
				if !yield(toPost(feed.Items[i]), nil) {
					return
				}
			}
		}
	}
}

func (ig *IgImpl) Likers(ctx context.Context, post instagram.Post) instagram.Seq[instagram.Account] {
	return func(yield func(instagram.Account, error) bool) {
		if err := ig.Pacer.Wait(ctx); err != nil {
			yield(instagram.Account{}, err)
			return
		}

		item, err := ig.mediaItem(post)
		if err != nil {
			yield(instagram.Account{}, err)
			return
		}
		if err := item.SyncLikers(); err != nil {
			yield(instagram.Account{}, fmt.Errorf("failed to fetch likers of %s: %w", post.Shortcode, err))
			return
		}
		for _, liker := range item.Likers {
			if !yield(toAccount(liker), nil) {
				return
			}
		}
	}
}

func (ig *IgImpl) Comments(ctx context.Context, post instagram.Post) instagram.Seq[instagram.Comment] {
	return func(yield func(instagram.Comment, error) bool) {
		item, err := ig.mediaItem(post)
		if err != nil {
			yield(instagram.Comment{}, err)
			return
		}

		comments := item.Comments
		if comments == nil {
			return
		}
		comments.Sync()
		for {
			if err := ig.Pacer.Wait(ctx); err != nil {
				yield(instagram.Comment{}, err)
				return
			}
			if !comments.Next() {
				if err := comments.Error(); err != nil && !errors.Is(err, goinsta.ErrNoMore) {
					yield(instagram.Comment{}, err)
				}
				return
			}
			for i := range comments.Items {
				if !yield(toComment(&comments.Items[i]), nil) {
					return
				}
			}
		}
	}
}

// Replies yields the preview answers that arrived inline with the comment
// page. The graph API serves a handful per comment, more than the reply
// cap, so no extra request is needed.
func (ig *IgImpl) Replies(_ context.Context, _ instagram.Post, comment instagram.Comment) instagram.Seq[instagram.Comment] {
	return instagram.FromSlice(comment.Replies)
}

func (ig *IgImpl) mediaItem(post instagram.Post) (*goinsta.Item, error) {
	item, err := ig.Client.GetMedia(post.MediaID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media %s: %w", post.Shortcode, err)
	}
	if len(item.Items) == 0 {
		return nil, fmt.Errorf("media %s not found", post.Shortcode)
	}
	return item.Items[0], nil
}

func toPost(item *goinsta.Item) instagram.Post {
	post := instagram.Post{
		MediaID:      item.Pk,
		Shortcode:    item.Code,
		Typename:     typename(item.MediaType),
		LikeCount:    item.Likes,
		CommentCount: item.CommentCount,
		TakenAt:      time.Unix(item.TakenAt, 0).UTC(),
		IsVideo:      item.MediaType == mediaTypeVideo,
		IsSponsored:  item.IsPaidPartnership,
	}

	if item.Caption.Text != "" {
		text := item.Caption.Text
		post.Caption = &text
		post.Hashtags = extractTags(text, '#')
		post.Mentions = extractTags(text, '@')
	} else {
		post.Hashtags = []string{}
		post.Mentions = []string{}
	}

	post.TaggedUsers = make([]string, 0, len(item.Tags.In))
	for i := range item.Tags.In {
		for j := range item.Tags.In[i].In {
			post.TaggedUsers = append(post.TaggedUsers, item.Tags.In[i].In[j].User.Username)
		}
	}

	post.DisplayURL = item.Images.GetBest()
	if post.IsVideo && len(item.Videos) > 0 {
		url := item.Videos[0].URL
		post.VideoURL = &url
		if item.VideoDuration > 0 {
			duration := item.VideoDuration
			post.VideoDuration = &duration
		}
		views := int(item.ViewCount)
		post.ViewCount = &views
	}

	if item.MediaType == mediaTypeCarousel {
		post.SidecarNodes = make([]instagram.SidecarNode, 0, len(item.CarouselMedia))
		for i := range item.CarouselMedia {
			child := &item.CarouselMedia[i]
			node := instagram.SidecarNode{
				IsVideo:    child.MediaType == mediaTypeVideo,
				DisplayURL: child.Images.GetBest(),
			}
			if node.IsVideo && len(child.Videos) > 0 {
				url := child.Videos[0].URL
				node.VideoURL = &url
			}
			post.SidecarNodes = append(post.SidecarNodes, node)
		}
	}

	if item.Location.Name != "" {
		loc := &instagram.Location{
			ID:   item.Location.ID,
			Name: item.Location.Name,
		}
		if item.Location.ShortName != "" {
			slug := item.Location.ShortName
			loc.Slug = &slug
		}
		lat, lng := item.Location.Lat, item.Location.Lng
		if lat != 0 || lng != 0 {
			loc.Lat = &lat
			loc.Lng = &lng
		}
		post.Location = loc
	}

	return post
}

func toComment(c *goinsta.Comment) instagram.Comment {
	out := instagram.Comment{
		ID:         commentID(c.ID),
		Text:       c.Text,
		CreatedAt:  time.Unix(c.CreatedAt, 0).UTC(),
		LikesCount: c.CommentLikeCount,
		Owner:      toAccount(&c.User),
	}
	for i := range c.PreviewChildComments {
		out.Replies = append(out.Replies, toComment(&c.PreviewChildComments[i]))
	}
	return out
}

// commentID normalizes the pk field, which the graph API serves as either
// a number or a string.
func commentID(pk interface{}) int64 {
	switch id := pk.(type) {
	case int64:
		return id
	case float64:
		return int64(id)
	case string:
		n, _ := strconv.ParseInt(id, 10, 64)
		return n
	case json.Number:
		n, _ := id.Int64()
		return n
	default:
		return 0
	}
}

func typename(mediaType int) string {
	switch mediaType {
	case mediaTypeVideo:
		return instagram.TypenameVideo
	case mediaTypeCarousel:
		return instagram.TypenameSidecar
	default:
		return instagram.TypenameImage
	}
}
