package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	linkKeyPrefix = "link:"
	linksSetKey   = "links"
)

// createLinkScript записывает хеш ссылки только если ключа еще нет. KEYS[1] хеш ссылки, KEYS[2] множество кодов.
var createLinkScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1],
	'id', ARGV[1],
	'original_url', ARGV[2],
	'short_code', ARGV[3],
	'short_url', ARGV[4],
	'qr_code', ARGV[5],
	'created_at', ARGV[6],
	'click_count', ARGV[7])
redis.call('SADD', KEYS[2], ARGV[3])
return 1
`)

var incrementScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], 'click_count', 1)
`)

type LinkRepo struct {
	client redis.UniversalClient
}

func NewLinkRepo(client redis.UniversalClient) *LinkRepo {
	return &LinkRepo{client: client}
}

func linkKey(code string) string {
	return linkKeyPrefix + code
}

func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	fields, err := l.client.HGetAll(ctx, linkKey(code)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get link by short code %s: %w", code, convertErrorType(err))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("failed to get link by short code %s: %w", code, convertErrorType(errLinkMissing))
	}
	link, err := decodeLink(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to decode link %s: %w", code, convertErrorType(err))
	}
	return link, nil
}

func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	created, err := createLinkScript.Run(ctx, l.client,
		[]string{linkKey(link.ShortCode), linksSetKey},
		link.ID,
		link.OriginalURL,
		link.ShortCode,
		link.ShortURL,
		link.QRCode,
		link.CreatedAt.UTC().Format(time.RFC3339Nano),
		link.ClickCount,
	).Int()
	if err != nil {
		return fmt.Errorf("failed to create link: %w", convertErrorType(err))
	}
	if created == 0 {
		return fmt.Errorf("failed to create link %s: %w", link.ShortCode, convertErrorType(errLinkExists))
	}
	return nil
}

func (l *LinkRepo) IncrementClickCount(ctx context.Context, code string) error {
	res, err := incrementScript.Run(ctx, l.client, []string{linkKey(code)}).Int64()
	if err != nil {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(err))
	}
	if res < 0 {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(errLinkMissing))
	}
	return nil
}

// GetAll выбирает до limit случайных кодов из множества и читает их хеши одним пайплайном.
func (l *LinkRepo) GetAll(ctx context.Context, limit int) ([]models.Link, error) {
	codes, err := l.client.SRandMemberN(ctx, linksSetKey, int64(repositories.NormalizeLimit(limit))).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get link codes: %w", convertErrorType(err))
	}

	pipe := l.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(codes))
	for i, code := range codes {
		cmds[i] = pipe.HGetAll(ctx, linkKey(code))
	}
	if len(cmds) > 0 {
		if _, execErr := pipe.Exec(ctx); execErr != nil {
			return nil, fmt.Errorf("failed to get all links: %w", convertErrorType(execErr))
		}
	}

	links := make([]models.Link, 0, len(cmds))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		link, decodeErr := decodeLink(fields)
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode link: %w", convertErrorType(decodeErr))
		}
		links = append(links, *link)
	}
	return links, nil
}

func decodeLink(fields map[string]string) (*models.Link, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	clickCount, err := strconv.ParseInt(fields["click_count"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse click_count: %w", err)
	}
	return &models.Link{
		ID:          fields["id"],
		OriginalURL: fields["original_url"],
		ShortCode:   fields["short_code"],
		ShortURL:    fields["short_url"],
		QRCode:      fields["qr_code"],
		CreatedAt:   createdAt.UTC(),
		ClickCount:  clickCount,
	}, nil
}
