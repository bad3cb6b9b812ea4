package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"go.uber.org/zap"
)

// DayLayout формат ключей DailyClicks.
const DayLayout = "2006-01-02"

// LinkStats агрегированная статистика переходов по ссылке.
type LinkStats struct {
	ShortCode   string         `json:"short_code"`
	OriginalURL string         `json:"original_url"`
	ShortURL    string         `json:"short_url"`
	TotalClicks int            `json:"total_clicks"`
	DailyClicks map[string]int `json:"daily_clicks"`
	CreatedAt   time.Time      `json:"created_at"`
	QRCode      string         `json:"qr_code"`
}

// LinkQR сохраненный QR-код ссылки.
type LinkQR struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
	QRCode    string `json:"qr_code"`
}

type StatsService struct {
	links     LinkRepository
	clicks    ClickRepository
	readLimit int
	logger    *zap.Logger
}

func NewStatsService(links LinkRepository, clicks ClickRepository, params Params) *StatsService {
	params = params.withDefaults()
	return &StatsService{
		links:     links,
		clicks:    clicks,
		readLimit: params.ReadLimit,
		logger:    params.Logger.Named("services/stats"),
	}
}

// Stats считает переходы по кликам, а не по денормализованному счетчику ссылки.
// Клики группируются по календарному дню в UTC, дни без кликов в DailyClicks отсутствуют.
func (s *StatsService) Stats(ctx context.Context, code string) (*LinkStats, error) {
	link, err := s.getLink(ctx, code)
	if err != nil {
		return nil, err
	}

	clicks, err := s.clicks.GetAllByShortCode(ctx, code, s.readLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: get clicks for %s: %w", ErrUnknown, code, err)
	}
	if len(clicks) == s.readLimit {
		s.logger.Debug("clicks truncated by read limit", zap.String("short_code", code), zap.Int("limit", s.readLimit))
	}

	return &LinkStats{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		ShortURL:    link.ShortURL,
		TotalClicks: len(clicks),
		DailyClicks: GroupByDay(clicks),
		CreatedAt:   link.CreatedAt,
		QRCode:      link.QRCode,
	}, nil
}

// QR возвращает тот же сохраненный QR-код, что и Stats.
func (s *StatsService) QR(ctx context.Context, code string) (*LinkQR, error) {
	link, err := s.getLink(ctx, code)
	if err != nil {
		return nil, err
	}
	return &LinkQR{
		ShortCode: link.ShortCode,
		ShortURL:  link.ShortURL,
		QRCode:    link.QRCode,
	}, nil
}

func (s *StatsService) getLink(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.links.GetByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: short code %s", ErrRecordNotFound, code)
		}
		return nil, fmt.Errorf("%w: get link %s: %w", ErrUnknown, code, err)
	}
	return link, nil
}

// GroupByDay считает клики по дням в UTC.
func GroupByDay(clicks []models.Click) map[string]int {
	daily := make(map[string]int)
	for _, c := range clicks {
		daily[c.Timestamp.UTC().Format(DayLayout)]++
	}
	return daily
}
