package memstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/db/memory"
	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
)

// LinkRepo репозиторий ссылок в памяти. Ключ документа короткий код.
type LinkRepo struct {
	s *db.MemoryStorage
}

// NewLinkRepo создает новый экземпляр репозитория ссылок.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *LinkRepo: инициализированный репозиторий
func NewLinkRepo(store *db.MemoryStorage) *LinkRepo {
	return &LinkRepo{
		s: store,
	}
}

// GetByShortCode получает ссылку по короткому коду.
//
// Параметры:
//   - ctx: контекст выполнения
//   - code: короткий код
//
// Возвращает:
//   - *models.Link: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, code, l.s.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by short code %s: %w", code, convertErrorType(err))
	}
	return link, nil
}

// Create сохраняет новую ссылку. Существующая ссылка с тем же кодом не перезаписывается.
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := memory.Set[models.Link](ctx, link.ShortCode, link, l.s.Links); err != nil {
		return fmt.Errorf("failed to create link: %w", convertErrorType(err))
	}
	return nil
}

// IncrementClickCount увеличивает счетчик переходов на единицу под блокировкой записи.
func (l *LinkRepo) IncrementClickCount(ctx context.Context, code string) error {
	err := memory.Update[models.Link](ctx, code, l.s.Links, func(link *models.Link) error {
		link.ClickCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(err))
	}
	return nil
}

// GetAll возвращает не более limit ссылок в произвольном порядке.
func (l *LinkRepo) GetAll(ctx context.Context, limit int) ([]models.Link, error) {
	links, err := memory.GetAll[models.Link](ctx, l.s.Links, repositories.NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", convertErrorType(err))
	}
	return links, nil
}
