package mongostore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/models"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LinkRepo struct {
	coll *mongo.Collection
}

// NewLinkRepo создает репозиторий ссылок над коллекцией db.MongoLinksCollection.
func NewLinkRepo(mdb *mongo.Database) *LinkRepo {
	return &LinkRepo{coll: mdb.Collection(db.MongoLinksCollection)}
}

func (l *LinkRepo) GetByShortCode(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	if err := l.coll.FindOne(ctx, bson.M{"short_code": code}).Decode(&link); err != nil {
		return nil, fmt.Errorf("failed to get link by short code %s: %w", code, convertErrorType(err))
	}
	link.CreatedAt = link.CreatedAt.UTC()
	return &link, nil
}

func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if _, err := l.coll.InsertOne(ctx, link); err != nil {
		return fmt.Errorf("failed to create link: %w", convertErrorType(err))
	}
	return nil
}

func (l *LinkRepo) IncrementClickCount(ctx context.Context, code string) error {
	res, err := l.coll.UpdateOne(ctx, bson.M{"short_code": code}, bson.M{"$inc": bson.M{"click_count": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed to increment click count for %s: %w", code, convertErrorType(mongo.ErrNoDocuments))
	}
	return nil
}

func (l *LinkRepo) GetAll(ctx context.Context, limit int) ([]models.Link, error) {
	cursor, err := l.coll.Find(ctx, bson.D{}, options.Find().SetLimit(int64(repositories.NormalizeLimit(limit))))
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", convertErrorType(err))
	}
	links := make([]models.Link, 0)
	if err = cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", convertErrorType(err))
	}
	for i := range links {
		links[i].CreatedAt = links[i].CreatedAt.UTC()
	}
	return links, nil
}
