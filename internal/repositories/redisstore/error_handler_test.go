package redisstore

import (
	"errors"
	"testing"

	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConvertErrorType(t *testing.T) {
	assert.NoError(t, convertErrorType(nil))
	assert.ErrorIs(t, convertErrorType(errLinkExists), repositories.ErrDuplicateKey)
	assert.ErrorIs(t, convertErrorType(errLinkMissing), repositories.ErrNotFound)
	assert.ErrorIs(t, convertErrorType(redis.Nil), repositories.ErrNotFound)
	assert.ErrorIs(t, convertErrorType(errors.New("READONLY")), repositories.ErrUnknown)
}

func TestDecodeLink(t *testing.T) {
	link, err := decodeLink(map[string]string{
		"id":           "id-1",
		"original_url": "https://example.com",
		"short_code":   "aB3dE9",
		"short_url":    "domain.com/aB3dE9",
		"qr_code":      "",
		"created_at":   "2026-01-02T03:04:05.123456789Z",
		"click_count":  "7",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), link.ClickCount)
	assert.Equal(t, 2026, link.CreatedAt.Year())

	_, err = decodeLink(map[string]string{"created_at": "yesterday", "click_count": "1"})
	assert.Error(t, err)
}
