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

type ClickRepo struct {
	coll *mongo.Collection
}

func NewClickRepo(mdb *mongo.Database) *ClickRepo {
	return &ClickRepo{coll: mdb.Collection(db.MongoClicksCollection)}
}

func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	if _, err := c.coll.InsertOne(ctx, click); err != nil {
		return fmt.Errorf("failed to create click: %w", convertErrorType(err))
	}
	return nil
}

func (c *ClickRepo) GetAllByShortCode(ctx context.Context, code string, limit int) ([]models.Click, error) {
	cursor, err := c.coll.Find(ctx,
		bson.M{"short_code": code},
		options.Find().SetLimit(int64(repositories.NormalizeLimit(limit))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks by short code %s: %w", code, convertErrorType(err))
	}
	clicks := make([]models.Click, 0)
	if err = cursor.All(ctx, &clicks); err != nil {
		return nil, fmt.Errorf("failed to decode clicks: %w", convertErrorType(err))
	}
	for i := range clicks {
		clicks[i].Timestamp = clicks[i].Timestamp.UTC()
	}
	return clicks, nil
}
