package instagram

import (
	"context"
	"errors"
	"iter"
)

var (
	ErrProfileNotFound = errors.New("profile does not exist")
	ErrPrivateAccount  = errors.New("account is private and cannot be accessed")
)

// Seq is a lazy, finite sequence of source records. Each call to a Client
// method returns a fresh sequence that can be ranged once; the consumer
// stops by breaking out, which is how fetch budgets are applied.
type Seq[T any] = iter.Seq2[T, error]

type Client interface {
	// Login loads the configured session, if any, and validates it.
	Login(ctx context.Context) error
	GetProfile(ctx context.Context, username string) (*Profile, error)
	// Posts yields the user's posts in the source's own order
	// (reverse-chronological).
	Posts(ctx context.Context, username string) Seq[Post]
	Likers(ctx context.Context, post Post) Seq[Account]
	Comments(ctx context.Context, post Post) Seq[Comment]
	// Replies yields the answers under one comment of a post.
	Replies(ctx context.Context, post Post, comment Comment) Seq[Comment]
	Followers(ctx context.Context, username string) Seq[Account]
	Following(ctx context.Context, username string) Seq[Account]
}

// Collect drains up to max items from a sequence. A nil error with a short
// slice simply means the source ran out before the budget did.
func Collect[T any](seq Seq[T], max int) ([]T, error) {
	out := make([]T, 0)
	if max <= 0 {
		return out, nil
	}
	for item, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, item)
		if len(out) >= max {
			break
		}
	}
	return out, nil
}

// FromSlice adapts a slice into a Seq. Used by fakes in tests.
func FromSlice[T any](items []T) Seq[T] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Fail returns a sequence that errors immediately.
func Fail[T any](err error) Seq[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
