package redisstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const clicksKeyPrefix = "clicks:"

type ClickRepo struct {
	client redis.UniversalClient
}

func NewClickRepo(client redis.UniversalClient) *ClickRepo {
	return &ClickRepo{client: client}
}

func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	payload, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("failed to marshal click: %w", convertErrorType(err))
	}
	if pushErr := c.client.RPush(ctx, clicksKeyPrefix+click.ShortCode, payload).Err(); pushErr != nil {
		return fmt.Errorf("failed to create click: %w", convertErrorType(pushErr))
	}
	return nil
}

func (c *ClickRepo) GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error) {
	items, err := c.client.LRange(ctx, clicksKeyPrefix+code, 0, int64(repositories.NormalizeLimit(limit))-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks by short code %s: %w", code, convertErrorType(err))
	}
	clicks := make([]models.Click, 0, len(items))
	for _, item := range items {
		var click models.Click
		if unmarshalErr := json.Unmarshal([]byte(item), &click); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to unmarshal click: %w", convertErrorType(unmarshalErr))
		}
		clicks = append(clicks, click)
	}
	return clicks, nil
}
