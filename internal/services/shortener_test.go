package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/qr"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/fsdevblog/qrshort/internal/repositories/memstore"
	"github.com/fsdevblog/qrshort/internal/services/mocks"
	"github.com/fsdevblog/qrshort/internal/services/smocks"
	"github.com/fsdevblog/qrshort/internal/shortcode"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMemShortener(gen CodeGenerator) (*ShortenerService, *memstore.LinkRepo) {
	links := memstore.NewLinkRepo(db.NewMemStorage())
	return NewShortenerService(links, gen, qr.NewEncoder(0, zap.NewNop()), Params{}), links
}

func seedLink(t *testing.T, links LinkRepository, code string) {
	t.Helper()
	require.NoError(t, links.Create(context.Background(), &models.Link{
		ID:          code,
		OriginalURL: "https://taken.example.com",
		ShortCode:   code,
		ShortURL:    DefaultBaseDomain + "/" + code,
		CreatedAt:   time.Now().UTC(),
	}))
}

func TestShortenerService_Shorten(t *testing.T) {
	svc, links := newMemShortener(shortcode.New())
	before := time.Now().UTC()

	link, err := svc.Shorten(context.Background(), "  example.com/some/path ")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/some/path", link.OriginalURL)
	assert.Len(t, link.ShortCode, shortcode.DefaultLength)
	assert.True(t, shortcode.IsValid(link.ShortCode))
	assert.Equal(t, DefaultBaseDomain+"/"+link.ShortCode, link.ShortURL)
	assert.True(t, strings.HasPrefix(link.QRCode, qr.DataURIPrefix))
	assert.Equal(t, int64(0), link.ClickCount)
	assert.NotEmpty(t, link.ID)
	assert.Equal(t, time.UTC, link.CreatedAt.Location())
	assert.False(t, link.CreatedAt.Before(before))

	stored, err := links.GetByShortCode(context.Background(), link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, link.OriginalURL, stored.OriginalURL)
	assert.Equal(t, link.QRCode, stored.QRCode)
}

func TestShortenerService_ShortenCustomDomain(t *testing.T) {
	links := memstore.NewLinkRepo(db.NewMemStorage())
	svc := NewShortenerService(links, shortcode.New(), qr.NewEncoder(0, nil), Params{BaseDomain: "sho.rt"})

	link, err := svc.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "sho.rt/"+link.ShortCode, link.ShortURL)
}

func TestShortenerService_ShortenValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	// ни один метод репозитория не должен вызываться
	repo := mocks.NewMockLinkRepository(ctrl)
	svc := NewShortenerService(repo, shortcode.New(), qr.NewEncoder(0, nil), Params{})

	for _, raw := range []string{"", "   ", "not_a_valid_url", "https://tes t.com"} {
		_, err := svc.Shorten(context.Background(), raw)
		require.ErrorIs(t, err, ErrValidation, raw)
	}
}

func TestShortenerService_ShortenRetriesOnCollision(t *testing.T) {
	gen := new(smocks.GeneratorMock)
	gen.On("Generate", shortcode.DefaultLength).Return("aaaaaa", nil).Once()
	gen.On("Generate", shortcode.DefaultLength).Return("bbbbbb", nil).Once()

	svc, links := newMemShortener(gen)
	seedLink(t, links, "aaaaaa")

	link, err := svc.Shorten(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "bbbbbb", link.ShortCode)
	gen.AssertExpectations(t)

	taken, err := links.GetByShortCode(context.Background(), "aaaaaa")
	require.NoError(t, err)
	assert.Equal(t, "https://taken.example.com", taken.OriginalURL)
}

func TestShortenerService_ShortenWidensCode(t *testing.T) {
	gen := new(smocks.GeneratorMock)
	gen.On("Generate", shortcode.DefaultLength).Return("aaaaaa", nil).Times(MaxAttemptsPerLength)
	gen.On("Generate", shortcode.DefaultLength+1).Return("ccccccc", nil).Once()

	svc, links := newMemShortener(gen)
	seedLink(t, links, "aaaaaa")

	link, err := svc.Shorten(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "ccccccc", link.ShortCode)
	gen.AssertExpectations(t)
}

func TestShortenerService_ShortenExhausted(t *testing.T) {
	gen := new(smocks.GeneratorMock)
	svc, links := newMemShortener(gen)
	for length := shortcode.DefaultLength; length <= shortcode.MaxLength; length++ {
		code := strings.Repeat("a", length)
		seedLink(t, links, code)
		gen.On("Generate", length).Return(code, nil).Times(MaxAttemptsPerLength)
	}

	_, err := svc.Shorten(context.Background(), "example.com")
	require.ErrorIs(t, err, ErrCodeSpaceExhausted)
	gen.AssertExpectations(t)
	gen.AssertNumberOfCalls(t, "Generate", MaxAttemptsPerLength*(shortcode.MaxLength-shortcode.DefaultLength+1))
}

func TestShortenerService_ShortenRetriesOnInsertConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepository(ctrl)
	gen := new(smocks.GeneratorMock)
	gen.On("Generate", shortcode.DefaultLength).Return("aaaaaa", nil).Once()
	gen.On("Generate", shortcode.DefaultLength).Return("bbbbbb", nil).Once()

	gomock.InOrder(
		repo.EXPECT().GetByShortCode(gomock.Any(), "aaaaaa").Return(nil, repositories.ErrNotFound),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicateKey),
		repo.EXPECT().GetByShortCode(gomock.Any(), "bbbbbb").Return(nil, repositories.ErrNotFound),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	svc := NewShortenerService(repo, gen, qr.NewEncoder(0, nil), Params{})
	link, err := svc.Shorten(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "bbbbbb", link.ShortCode)
}

func TestShortenerService_ShortenQRUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockQREncoder(ctrl)
	enc.EXPECT().Encode(gomock.Any()).Return(qr.Image{})

	links := memstore.NewLinkRepo(db.NewMemStorage())
	svc := NewShortenerService(links, shortcode.New(), enc, Params{})

	link, err := svc.Shorten(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, link.QRCode)
}

func TestShortenerService_ShortenStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeErr := errors.New("connection reset")

	t.Run("lookup", func(t *testing.T) {
		repo := mocks.NewMockLinkRepository(ctrl)
		repo.EXPECT().GetByShortCode(gomock.Any(), gomock.Any()).Return(nil, storeErr)
		svc := NewShortenerService(repo, shortcode.New(), qr.NewEncoder(0, nil), Params{})

		_, err := svc.Shorten(context.Background(), "example.com")
		require.ErrorIs(t, err, ErrUnknown)
	})

	t.Run("insert", func(t *testing.T) {
		repo := mocks.NewMockLinkRepository(ctrl)
		repo.EXPECT().GetByShortCode(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storeErr)
		svc := NewShortenerService(repo, shortcode.New(), qr.NewEncoder(0, nil), Params{})

		_, err := svc.Shorten(context.Background(), "example.com")
		require.ErrorIs(t, err, ErrUnknown)
		require.ErrorIs(t, err, storeErr)
	})

	t.Run("generator", func(t *testing.T) {
		repo := mocks.NewMockLinkRepository(ctrl)
		gen := new(smocks.GeneratorMock)
		gen.On("Generate", shortcode.DefaultLength).Return("", errors.New("entropy"))
		svc := NewShortenerService(repo, gen, qr.NewEncoder(0, nil), Params{})

		_, err := svc.Shorten(context.Background(), "example.com")
		require.ErrorIs(t, err, ErrUnknown)
	})
}

func TestShortenerService_ShortenConcurrent(t *testing.T) {
	svc, _ := newMemShortener(shortcode.New())

	const workers = 50
	var wg sync.WaitGroup
	codes := make(chan string, workers)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			link, err := svc.Shorten(context.Background(), "example.com")
			if err != nil {
				t.Error(err)
				return
			}
			codes <- link.ShortCode
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]struct{}, workers)
	for code := range codes {
		_, dup := seen[code]
		require.False(t, dup, code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, workers)
}

func TestShortenerService_List(t *testing.T) {
	links := memstore.NewLinkRepo(db.NewMemStorage())
	svc := NewShortenerService(links, shortcode.New(), qr.NewEncoder(0, nil), Params{ReadLimit: 3})

	for range 5 {
		_, err := svc.Shorten(context.Background(), gofakeit.URL())
		require.NoError(t, err)
	}
	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func BenchmarkShortenerService_Shorten(b *testing.B) {
	links := memstore.NewLinkRepo(db.NewMemStorage())
	svc := NewShortenerService(links, shortcode.New(), qr.NewEncoder(0, nil), Params{})

	urls := make([]string, 100)
	for i := range urls {
		urls[i] = gofakeit.URL()
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := range b.N {
		if _, err := svc.Shorten(ctx, urls[i%len(urls)]); err != nil {
			b.Fatal(err)
		}
	}
}
