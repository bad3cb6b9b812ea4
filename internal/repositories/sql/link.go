package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LinkRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLinkRepo(db *gorm.DB, logger *zap.Logger) *LinkRepo {
	return &LinkRepo{
		db:     db,
		logger: logger.Named("repository/sql/link"),
	}
}

func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	if err := l.db.WithContext(ctx).Where("short_code = ?", code).First(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to get link by short code %s: %w", code, convertErrorType(err))
	}
	link.CreatedAt = link.CreatedAt.UTC()
	return &link, nil
}

func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := l.db.WithContext(ctx).Create(link).Error; err != nil {
		convErr := convertErrorType(err)
		if !errors.Is(convErr, repositories.ErrDuplicateKey) {
			l.logger.Error("failed to create link", zap.Error(err), zap.String("short_code", link.ShortCode))
		}
		return fmt.Errorf("failed to create link: %w", convErr)
	}
	return nil
}

// IncrementClickCount выполняет `UPDATE urls SET click_count = click_count + 1`. Если ни одна строка
// не обновлена, ссылка не существует.
func (l *LinkRepo) IncrementClickCount(ctx context.Context, code string) error {
	res := l.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("short_code = ?", code).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to increment click count for %s: %w", code, repositories.ErrNotFound)
	}
	return nil
}

func (l *LinkRepo) GetAll(ctx context.Context, limit int) ([]models.Link, error) {
	var links []models.Link
	if err := l.db.WithContext(ctx).Limit(repositories.NormalizeLimit(limit)).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", convertErrorType(err))
	}
	for i := range links {
		links[i].CreatedAt = links[i].CreatedAt.UTC()
	}
	return links, nil
}
