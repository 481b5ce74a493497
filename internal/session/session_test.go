package session

import (
	"encoding/base64"
	"errors"
	"os"
	"testing"

	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Success(t *testing.T) {
	payload := []byte("session-bytes")
	blob := base64.StdEncoding.EncodeToString(payload)

	var stagedPath string
	err := Stage(blob, func(path string) error {
		stagedPath = path
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, data)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		return nil
	})
	require.NoError(t, err)

	_, statErr := os.Stat(stagedPath)
	assert.True(t, os.IsNotExist(statErr), "staged file must be removed after load")
}

func TestStage_DecodeError(t *testing.T) {
	err := Stage("not-base64!!!", func(string) error {
		t.Fatal("load must not be called for a malformed blob")
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrSessionDecode)
}

func TestStage_LoadErrorStillCleansUp(t *testing.T) {
	blob := base64.StdEncoding.EncodeToString([]byte("bytes"))

	var stagedPath string
	err := Stage(blob, func(path string) error {
		stagedPath = path
		return errors.New("client rejected it")
	})
	require.ErrorIs(t, err, apperrors.ErrSessionLoad)

	_, statErr := os.Stat(stagedPath)
	assert.True(t, os.IsNotExist(statErr), "staged file must be removed on failure too")
}
