package controllers

import (
	"context"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/services"
)

//go:generate mockgen -source=interfaces.go -destination=mocksctrl/store.go -package=mocksctrl

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

type LinkShortener interface {
	// Shorten создает короткую ссылку. services.ErrValidation для некорректного URL.
	Shorten(ctx context.Context, rawURL string) (*models.Link, error)
	List(ctx context.Context) ([]models.Link, error)
}

type LinkResolver interface {
	// Resolve возвращает оригинальный URL и записывает переход.
	Resolve(ctx context.Context, code string, visit services.Visit) (string, error)
}

type LinkInspector interface {
	Stats(ctx context.Context, code string) (*services.LinkStats, error)
	QR(ctx context.Context, code string) (*services.LinkQR, error)
}
