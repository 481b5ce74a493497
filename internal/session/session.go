package session

import (
	"encoding/base64"
	"fmt"
	"os"

	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
)

// Stage decodes a base64-encoded session blob into a private temporary
// file, hands the path to load, and removes the file again on every exit
// path. The decoded bytes never persist past the call.
func Stage(blob string, load func(path string) error) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSessionDecode, err.Error())
	}

	f, err := os.CreateTemp("", "ig-session-*.session")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := os.Chmod(path, 0o600); err != nil {
		f.Close()
		return fmt.Errorf("failed to restrict session file: %w", err)
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := load(path); err != nil {
		return apperrors.Wrap(apperrors.ErrSessionLoad, err.Error())
	}
	return nil
}
