package redisstore

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/redis/go-redis/v9"
)

var (
	errLinkExists  = errors.New("link already exists")
	errLinkMissing = errors.New("link does not exist")
)

func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, errLinkExists):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, errLinkMissing), errors.Is(err, redis.Nil):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %w", nativeErr, err)
}
