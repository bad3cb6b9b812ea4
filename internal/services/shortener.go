package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/fsdevblog/qrshort/internal/shortcode"
	"github.com/fsdevblog/qrshort/internal/urlnorm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxAttemptsPerLength количество попыток подобрать свободный код одной длины, после чего длина
// увеличивается на единицу, вплоть до shortcode.MaxLength.
const MaxAttemptsPerLength = 10

// ShortenerService создает короткие ссылки.
type ShortenerService struct {
	links      LinkRepository
	gen        CodeGenerator
	qr         QREncoder
	baseDomain string
	readLimit  int
	logger     *zap.Logger
}

// NewShortenerService создает новый экземпляр ShortenerService.
//
// Параметры:
//   - links: репозиторий ссылок
//   - gen: генератор коротких кодов
//   - enc: кодировщик QR
//   - params: базовый домен, лимит чтения и логгер
//
// Возвращает:
//   - *ShortenerService: новый экземпляр
func NewShortenerService(links LinkRepository, gen CodeGenerator, enc QREncoder, params Params) *ShortenerService {
	params = params.withDefaults()
	return &ShortenerService{
		links:      links,
		gen:        gen,
		qr:         enc,
		baseDomain: params.BaseDomain,
		readLimit:  params.ReadLimit,
		logger:     params.Logger.Named("services/shortener"),
	}
}

// Shorten нормализует rawURL, подбирает свободный код и сохраняет ссылку.
//
// Возвращает:
//   - *models.Link: сохраненная ссылка
//   - error: ErrValidation, ErrCodeSpaceExhausted или ErrUnknown
func (s *ShortenerService) Shorten(ctx context.Context, rawURL string) (*models.Link, error) {
	originalURL, err := urlnorm.Normalize(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	for length := shortcode.DefaultLength; length <= shortcode.MaxLength; length++ {
		for range MaxAttemptsPerLength {
			link, created, createErr := s.tryCreate(ctx, originalURL, length)
			if createErr != nil {
				return nil, createErr
			}
			if created {
				return link, nil
			}
		}
		s.logger.Warn("short code attempts exhausted, widening",
			zap.Int("length", length),
			zap.Int("attempts", MaxAttemptsPerLength),
		)
	}
	return nil, ErrCodeSpaceExhausted
}

// tryCreate одна попытка: сгенерировать код, проверить его и вставить ссылку.
// created == false без ошибки означает, что код занят и нужно пробовать снова.
func (s *ShortenerService) tryCreate(
	ctx context.Context,
	originalURL string,
	length int,
) (*models.Link, bool, error) {
	code, err := s.gen.Generate(length)
	if err != nil {
		return nil, false, fmt.Errorf("%w: generate short code: %w", ErrUnknown, err)
	}

	_, getErr := s.links.GetByShortCode(ctx, code)
	switch {
	case getErr == nil:
		return nil, false, nil
	case !errors.Is(getErr, repositories.ErrNotFound):
		return nil, false, fmt.Errorf("%w: check short code: %w", ErrUnknown, getErr)
	}

	shortURL := s.baseDomain + "/" + code
	link := &models.Link{
		ID:          uuid.NewString(),
		OriginalURL: originalURL,
		ShortCode:   code,
		ShortURL:    shortURL,
		QRCode:      s.qr.Encode(shortURL).DataURI(),
		CreatedAt:   time.Now().UTC(),
		ClickCount:  0,
	}

	if createErr := s.links.Create(ctx, link); createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			s.logger.Debug("short code taken concurrently", zap.String("short_code", code))
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: create link: %w", ErrUnknown, createErr)
	}
	return link, true, nil
}

// List возвращает сохраненные ссылки, не более ReadLimit.
func (s *ShortenerService) List(ctx context.Context) ([]models.Link, error) {
	links, err := s.links.GetAll(ctx, s.readLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list links: %w", ErrUnknown, err)
	}
	return links, nil
}
