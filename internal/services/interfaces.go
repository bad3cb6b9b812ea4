package services

import (
	"context"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/qr"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// LinkRepository описывает хранилище ссылок.
type LinkRepository interface {
	// GetByShortCode находит ссылку по короткому коду. repositories.ErrNotFound если ее нет.
	GetByShortCode(ctx context.Context, code string) (*models.Link, error)
	// Create сохраняет ссылку. repositories.ErrDuplicateKey если код занят, существующая запись не меняется.
	Create(ctx context.Context, link *models.Link) error
	// IncrementClickCount атомарно увеличивает счетчик переходов на единицу.
	IncrementClickCount(ctx context.Context, code string) error
	// GetAll возвращает не более limit ссылок, порядок не определен.
	GetAll(ctx context.Context, limit int) ([]models.Link, error)
}

// ClickRepository описывает хранилище кликов. Клики только добавляются.
type ClickRepository interface {
	Create(ctx context.Context, click *models.Click) error
	GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error)
}

// CodeGenerator генерирует кандидата в короткие коды заданной длины.
type CodeGenerator interface {
	Generate(length int) (string, error)
}

// QREncoder кодирует строку в QR-код. Ошибок не бывает, только недоступное изображение.
type QREncoder interface {
	Encode(content string) qr.Image
}
