package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Visit данные запроса, которые сохраняются вместе с кликом. Пустые строки не сохраняются.
type Visit struct {
	UserAgent string
	IPAddress string
}

type RedirectService struct {
	links  LinkRepository
	clicks ClickRepository
	logger *zap.Logger
}

func NewRedirectService(links LinkRepository, clicks ClickRepository, logger *zap.Logger) *RedirectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedirectService{
		links:  links,
		clicks: clicks,
		logger: logger.Named("services/redirect"),
	}
}

// Resolve возвращает оригинальный URL по коду и записывает переход.
//
// Инкремент счетчика и запись клика независимы: ошибка любой из них логируется и не мешает
// перенаправлению, отката нет. Неизвестный код возвращает ErrRecordNotFound без записи клика.
func (s *RedirectService) Resolve(ctx context.Context, code string, visit Visit) (string, error) {
	link, err := s.links.GetByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("%w: short code %s", ErrRecordNotFound, code)
		}
		return "", fmt.Errorf("%w: resolve %s: %w", ErrUnknown, code, err)
	}

	if incErr := s.links.IncrementClickCount(ctx, code); incErr != nil {
		s.logger.Error("failed to increment click count", zap.Error(incErr), zap.String("short_code", code))
	}

	click := &models.Click{
		ID:        uuid.NewString(),
		ShortCode: code,
		Timestamp: time.Now().UTC(),
		UserAgent: optional(visit.UserAgent),
		IPAddress: optional(visit.IPAddress),
	}
	if clickErr := s.clicks.Create(ctx, click); clickErr != nil {
		s.logger.Error("failed to record click", zap.Error(clickErr), zap.String("short_code", code))
	}

	return link.OriginalURL, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
