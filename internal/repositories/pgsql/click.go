package pgsql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClickRepo struct {
	conn *pgxpool.Pool
}

func NewClickRepo(conn *pgxpool.Pool) *ClickRepo {
	return &ClickRepo{conn: conn}
}

func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	_, err := c.conn.Exec(ctx,
		"INSERT INTO clicks (id, short_code, timestamp, user_agent, ip_address) VALUES ($1, $2, $3, $4, $5)",
		click.ID, click.ShortCode, click.Timestamp, click.UserAgent, click.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create click: %w", convertErrorType(err))
	}
	return nil
}

func (c *ClickRepo) GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error) {
	rows, _ := c.conn.Query(ctx,
		"SELECT id, short_code, timestamp, user_agent, ip_address FROM clicks WHERE short_code = $1 LIMIT $2",
		code, repositories.NormalizeLimit(limit),
	)
	clicks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Click, error) {
		var click models.Click
		scanErr := row.Scan(&click.ID, &click.ShortCode, &click.Timestamp, &click.UserAgent, &click.IPAddress)
		click.Timestamp = click.Timestamp.UTC()
		return click, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks by short code %s: %w", code, convertErrorType(err))
	}
	return clicks, nil
}
