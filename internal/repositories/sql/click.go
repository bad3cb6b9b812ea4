package sql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClickRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewClickRepo(db *gorm.DB, logger *zap.Logger) *ClickRepo {
	return &ClickRepo{
		db:     db,
		logger: logger.Named("repository/sql/click"),
	}
}

func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	if err := c.db.WithContext(ctx).Create(click).Error; err != nil {
		c.logger.Error("failed to create click", zap.Error(err), zap.String("short_code", click.ShortCode))
		return fmt.Errorf("failed to create click: %w", convertErrorType(err))
	}
	return nil
}

func (c *ClickRepo) GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error) {
	var clicks []models.Click
	err := c.db.WithContext(ctx).
		Where("short_code = ?", code).
		Limit(repositories.NormalizeLimit(limit)).
		Find(&clicks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks by short code %s: %w", code, convertErrorType(err))
	}
	for i := range clicks {
		clicks[i].Timestamp = clicks[i].Timestamp.UTC()
	}
	return clicks, nil
}
