package memstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/db/memory"
	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
)

// ClickRepo репозиторий кликов в памяти. Ключ документа идентификатор клика.
type ClickRepo struct {
	s *db.MemoryStorage
}

func NewClickRepo(store *db.MemoryStorage) *ClickRepo {
	return &ClickRepo{
		s: store,
	}
}

func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	if err := memory.Set[models.Click](ctx, click.ID, click, c.s.Clicks); err != nil {
		return fmt.Errorf("failed to create click: %w", convertErrorType(err))
	}
	return nil
}

// GetAllByShortCode возвращает не более limit кликов по короткому коду.
func (c *ClickRepo) GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error) {
	clicks, err := memory.FilterAll[models.Click](
		ctx,
		c.s.Clicks,
		repositories.NormalizeLimit(limit),
		func(val models.Click) bool {
			return val.ShortCode == code
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks by short code %s: %w", code, convertErrorType(err))
	}
	return clicks, nil
}
