package upstashimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/orgball2608/insta-refresh-service/internal/cache"
	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"github.com/orgball2608/insta-refresh-service/pkg/retry"
)

// UpstashImpl talks to an Upstash-style Redis REST endpoint: one command
// per request, posted as a JSON array, bearer-token auth.
type UpstashImpl struct {
	baseURL string
	token   string
	client  *http.Client
	logger  logger.Logger
	retry   retry.Config
}

type Opts struct {
	BaseURL string
	Token   string
	Logger  logger.Logger
}

func New(opts Opts) *UpstashImpl {
	return &UpstashImpl{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  opts.Logger,
		retry:   retry.DefaultConfig(),
	}
}

var _ cache.Store = (*UpstashImpl)(nil)

type response struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func (u *UpstashImpl) do(ctx context.Context, command []string) (json.RawMessage, error) {
	body, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}

	var result json.RawMessage
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+u.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := u.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var parsed response
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return fmt.Errorf("unexpected response body: %w", err)
		}
		if parsed.Error != "" {
			return fmt.Errorf("command %s failed: %s", command[0], parsed.Error)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		result = parsed.Result
		return nil
	}

	if err := retry.Do(ctx, u.logger, "upstash:"+command[0], op, u.retry); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCacheUnavailable, err.Error())
	}
	return result, nil
}

func (u *UpstashImpl) Get(ctx context.Context, key string) (string, bool, error) {
	result, err := u.do(ctx, []string{"GET", key})
	if err != nil {
		return "", false, err
	}
	if isNull(result) {
		return "", false, nil
	}
	var val string
	if err := json.Unmarshal(result, &val); err != nil {
		return "", false, fmt.Errorf("unexpected GET result: %w", err)
	}
	return val, true, nil
}

func (u *UpstashImpl) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	cmd := []string{"SET", key, value}
	if ttl > 0 {
		cmd = append(cmd, "EX", strconv.Itoa(int(ttl.Seconds())))
	}
	_, err := u.do(ctx, cmd)
	return err
}

func (u *UpstashImpl) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	cmd := []string{"SET", key, value}
	if ttl > 0 {
		cmd = append(cmd, "EX", strconv.Itoa(int(ttl.Seconds())))
	}
	cmd = append(cmd, "NX")

	// SET ... NX answers OK when the key was written and null when it
	// already existed.
	result, err := u.do(ctx, cmd)
	if err != nil {
		return false, err
	}
	return !isNull(result), nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
