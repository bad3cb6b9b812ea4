package pgsql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const linkColumns = "id, original_url, short_code, short_url, qr_code, created_at, click_count"

type LinkRepo struct {
	conn *pgxpool.Pool
}

// NewLinkRepo создает новый экземпляр репозитория ссылок.
//
// Параметры:
//   - conn: пул подключений к PostgreSQL со схемой из internal/db/migrations
//
// Возвращает:
//   - *LinkRepo: инициализированный репозиторий
func NewLinkRepo(conn *pgxpool.Pool) *LinkRepo {
	return &LinkRepo{conn: conn}
}

func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	rows, _ := l.conn.Query(ctx, "SELECT "+linkColumns+" FROM urls WHERE short_code = $1", code)
	link, err := pgx.CollectExactlyOneRow(rows, scanLink)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by short code %s: %w", code, convertErrorType(err))
	}
	return &link, nil
}

// Create вставляет ссылку. Уникальный индекс idx_urls_short_code отсекает гонку двух вставок
// одного кода, проигравший получает repositories.ErrDuplicateKey.
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	_, err := l.conn.Exec(ctx,
		"INSERT INTO urls ("+linkColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		link.ID, link.OriginalURL, link.ShortCode, link.ShortURL, link.QRCode, link.CreatedAt, link.ClickCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create link: %w", convertErrorType(err))
	}
	return nil
}

func (l *LinkRepo) IncrementClickCount(ctx context.Context, code string) error {
	tag, err := l.conn.Exec(ctx, "UPDATE urls SET click_count = click_count + 1 WHERE short_code = $1", code)
	if err != nil {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to increment click count for %s: %w", code, repositories.ErrNotFound)
	}
	return nil
}

func (l *LinkRepo) GetAll(ctx context.Context, limit int) ([]models.Link, error) {
	rows, _ := l.conn.Query(ctx, "SELECT "+linkColumns+" FROM urls LIMIT $1", repositories.NormalizeLimit(limit))
	links, err := pgx.CollectRows(rows, scanLink)
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", convertErrorType(err))
	}
	return links, nil
}

func scanLink(row pgx.CollectableRow) (models.Link, error) {
	var link models.Link
	err := row.Scan(
		&link.ID,
		&link.OriginalURL,
		&link.ShortCode,
		&link.ShortURL,
		&link.QRCode,
		&link.CreatedAt,
		&link.ClickCount,
	)
	link.CreatedAt = link.CreatedAt.UTC()
	return link, err //nolint:wrapcheck
}
