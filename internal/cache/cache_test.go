package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	data map[string]string
}

func (m *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mapStore) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value
	return true, nil
}

func TestJSONRoundTrip(t *testing.T) {
	type record struct {
		ID    string   `json:"id"`
		Names []string `json:"names"`
		Count int      `json:"count"`
	}

	store := &mapStore{data: make(map[string]string)}
	want := record{ID: "9007199254740993", Names: []string{"a", "b"}, Count: 3}

	require.NoError(t, SetJSON(context.Background(), store, "k", want, time.Minute))

	got, ok, err := GetJSON[record](context.Background(), store, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetJSON_Miss(t *testing.T) {
	store := &mapStore{data: make(map[string]string)}

	_, ok, err := GetJSON[map[string]string](context.Background(), store, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetJSON_MalformedValue(t *testing.T) {
	store := &mapStore{data: map[string]string{"k": "{not json"}}

	_, _, err := GetJSON[map[string]string](context.Background(), store, "k")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "refresh_status", KeyRefreshStatus)
	assert.Equal(t, "profile:someone", KeyProfile("someone"))
	assert.Equal(t, "posts:someone", KeyPosts("someone"))
	assert.Equal(t, "followers:someone", KeyFollowers("someone"))
	assert.Equal(t, "following:someone", KeyFollowing("someone"))
	assert.Equal(t, "last_refresh:someone", KeyLastRefresh("someone"))
}
