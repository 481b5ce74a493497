package exporter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/orgball2608/insta-refresh-service/internal/domain"
	"github.com/orgball2608/insta-refresh-service/internal/instagram"
	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	profile    *instagram.Profile
	profileErr error
	posts      []instagram.Post
	likers     []instagram.Account
	likersErr  error
}

var _ instagram.Client = (*fakeSource)(nil)

func (f *fakeSource) Login(context.Context) error { return nil }

func (f *fakeSource) GetProfile(context.Context, string) (*instagram.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeSource) Posts(context.Context, string) instagram.Seq[instagram.Post] {
	return instagram.FromSlice(f.posts)
}

func (f *fakeSource) Likers(context.Context, instagram.Post) instagram.Seq[instagram.Account] {
	if f.likersErr != nil {
		return instagram.Fail[instagram.Account](f.likersErr)
	}
	return instagram.FromSlice(f.likers)
}

func (f *fakeSource) Comments(context.Context, instagram.Post) instagram.Seq[instagram.Comment] {
	return instagram.FromSlice[instagram.Comment](nil)
}

func (f *fakeSource) Replies(context.Context, instagram.Post, instagram.Comment) instagram.Seq[instagram.Comment] {
	return instagram.FromSlice[instagram.Comment](nil)
}

func (f *fakeSource) Followers(context.Context, string) instagram.Seq[instagram.Account] {
	return instagram.FromSlice[instagram.Account](nil)
}

func (f *fakeSource) Following(context.Context, string) instagram.Seq[instagram.Account] {
	return instagram.FromSlice[instagram.Account](nil)
}

func TestExport_WritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{
		profile: &instagram.Profile{Username: "someone", FollowersCount: 12},
		posts: []instagram.Post{
			{MediaID: 1, Shortcode: "AAA", Typename: instagram.TypenameImage},
			{MediaID: 2, Shortcode: "BBB", Typename: instagram.TypenameVideo, IsVideo: true},
		},
	}

	err := New(src, logger.Nop()).Export(context.Background(), Options{
		Username: "someone",
		MaxPosts: 50,
		OutDir:   dir,
	})
	require.NoError(t, err)

	var profile domain.ExportedProfile
	raw, err := os.ReadFile(filepath.Join(dir, "profile.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &profile))
	assert.Equal(t, "someone", profile.Username)
	assert.Equal(t, 12, profile.FollowersCount)

	var posts []domain.Post
	raw, err = os.ReadFile(filepath.Join(dir, "posts.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "https://www.instagram.com/p/AAA/", posts[0].Permalink)
	assert.Empty(t, posts[0].Likers, "likers are skipped unless requested")
}

func TestExport_MaxPosts(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{
		profile: &instagram.Profile{Username: "someone"},
		posts: []instagram.Post{
			{MediaID: 1, Shortcode: "AAA"},
			{MediaID: 2, Shortcode: "BBB"},
			{MediaID: 3, Shortcode: "CCC"},
		},
	}

	err := New(src, logger.Nop()).Export(context.Background(), Options{
		Username: "someone",
		MaxPosts: 2,
		OutDir:   dir,
	})
	require.NoError(t, err)

	var posts []domain.Post
	raw, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &posts))
	assert.Len(t, posts, 2)
}

func TestExport_FetchLikers(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{
		profile: &instagram.Profile{Username: "someone"},
		posts:   []instagram.Post{{MediaID: 1, Shortcode: "AAA"}},
		likers:  make([]instagram.Account, 30), // over the export liker cap
	}

	err := New(src, logger.Nop()).Export(context.Background(), Options{
		Username:    "someone",
		MaxPosts:    10,
		FetchLikers: true,
		OutDir:      dir,
	})
	require.NoError(t, err)

	var posts []domain.Post
	raw, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 1)
	assert.Len(t, posts[0].Likers, LikerCap)
}

func TestExport_ProfileNotFound(t *testing.T) {
	src := &fakeSource{
		profileErr: apperrors.Wrap(instagram.ErrProfileNotFound, "no such user"),
	}

	err := New(src, logger.Nop()).Export(context.Background(), Options{
		Username: "ghost",
		MaxPosts: 10,
		OutDir:   t.TempDir(),
	})
	assert.ErrorIs(t, err, instagram.ErrProfileNotFound)
}
