// Package repotest содержит общий набор тестов, которому обязана удовлетворять каждая реализация
// репозиториев ссылок и кликов.
package repotest

import (
	"context"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/fsdevblog/qrshort/internal/shortcode"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type LinkStore interface {
	GetByShortCode(ctx context.Context, code string) (*models.Link, error)
	Create(ctx context.Context, link *models.Link) error
	IncrementClickCount(ctx context.Context, code string) error
	GetAll(ctx context.Context, limit int) ([]models.Link, error)
}

type ClickStore interface {
	Create(ctx context.Context, click *models.Click) error
	GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error)
}

type Repos struct {
	Links  LinkStore
	Clicks ClickStore
}

// ContractSuite перед каждым тестом вызывает NewRepos, который обязан вернуть репозитории над пустым хранилищем.
type ContractSuite struct {
	suite.Suite
	NewRepos func() Repos

	repos Repos
	gen   *shortcode.Generator
}

func (s *ContractSuite) SetupTest() {
	s.repos = s.NewRepos()
	s.gen = shortcode.New()
}

func (s *ContractSuite) newLink() *models.Link {
	code, err := s.gen.Generate(shortcode.DefaultLength)
	s.Require().NoError(err)
	return &models.Link{
		ID:          uuid.NewString(),
		OriginalURL: gofakeit.URL(),
		ShortCode:   code,
		ShortURL:    "domain.com/" + code,
		QRCode:      "data:image/png;base64,AAAA",
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *ContractSuite) TestCreateAndGet() {
	ctx := context.Background()
	link := s.newLink()
	s.Require().NoError(s.repos.Links.Create(ctx, link))

	got, err := s.repos.Links.GetByShortCode(ctx, link.ShortCode)
	s.Require().NoError(err)
	s.Equal(link.ID, got.ID)
	s.Equal(link.OriginalURL, got.OriginalURL)
	s.Equal(link.ShortURL, got.ShortURL)
	s.Equal(link.QRCode, got.QRCode)
	s.Equal(int64(0), got.ClickCount)
	s.WithinDuration(link.CreatedAt, got.CreatedAt, time.Millisecond)
}

func (s *ContractSuite) TestGetNotFound() {
	_, err := s.repos.Links.GetByShortCode(context.Background(), "zzzzzz")
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *ContractSuite) TestCreateDuplicateKeepsOriginal() {
	ctx := context.Background()
	link := s.newLink()
	s.Require().NoError(s.repos.Links.Create(ctx, link))

	clash := s.newLink()
	clash.ShortCode = link.ShortCode
	s.Require().ErrorIs(s.repos.Links.Create(ctx, clash), repositories.ErrDuplicateKey)

	got, err := s.repos.Links.GetByShortCode(ctx, link.ShortCode)
	s.Require().NoError(err)
	s.Equal(link.OriginalURL, got.OriginalURL)
}

func (s *ContractSuite) TestIncrementClickCountConcurrent() {
	ctx := context.Background()
	link := s.newLink()
	s.Require().NoError(s.repos.Links.Create(ctx, link))

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			errs <- s.repos.Links.IncrementClickCount(ctx, link.ShortCode)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.repos.Links.GetByShortCode(ctx, link.ShortCode)
	s.Require().NoError(err)
	s.Equal(int64(workers), got.ClickCount)
}

func (s *ContractSuite) TestIncrementClickCountNotFound() {
	err := s.repos.Links.IncrementClickCount(context.Background(), "zzzzzz")
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *ContractSuite) TestGetAllLimit() {
	ctx := context.Background()
	for range 5 {
		s.Require().NoError(s.repos.Links.Create(ctx, s.newLink()))
	}

	all, err := s.repos.Links.GetAll(ctx, 0)
	s.Require().NoError(err)
	s.Len(all, 5)

	limited, err := s.repos.Links.GetAll(ctx, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *ContractSuite) TestClicksByShortCode() {
	ctx := context.Background()
	ua := gofakeit.UserAgent()
	ip := gofakeit.IPv4Address()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i := range 3 {
		s.Require().NoError(s.repos.Clicks.Create(ctx, &models.Click{
			ID:        uuid.NewString(),
			ShortCode: "aaaaaa",
			Timestamp: now.Add(-time.Duration(i) * 24 * time.Hour),
			UserAgent: &ua,
			IPAddress: &ip,
		}))
	}
	s.Require().NoError(s.repos.Clicks.Create(ctx, &models.Click{
		ID:        uuid.NewString(),
		ShortCode: "bbbbbb",
		Timestamp: now,
	}))

	clicks, err := s.repos.Clicks.GetAllByShortCode(ctx, "aaaaaa", 0)
	s.Require().NoError(err)
	s.Len(clicks, 3)
	for _, c := range clicks {
		s.Equal("aaaaaa", c.ShortCode)
		s.Require().NotNil(c.UserAgent)
		s.Equal(ua, *c.UserAgent)
		s.Require().NotNil(c.IPAddress)
		s.Equal(ip, *c.IPAddress)
		s.Equal(time.UTC, c.Timestamp.Location())
	}

	other, err := s.repos.Clicks.GetAllByShortCode(ctx, "bbbbbb", 0)
	s.Require().NoError(err)
	s.Require().Len(other, 1)
	s.Nil(other[0].UserAgent)
	s.Nil(other[0].IPAddress)

	limited, err := s.repos.Clicks.GetAllByShortCode(ctx, "aaaaaa", 2)
	s.Require().NoError(err)
	s.Len(limited, 2)

	none, err := s.repos.Clicks.GetAllByShortCode(ctx, "cccccc", 0)
	s.Require().NoError(err)
	s.Empty(none)
}
