package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MongoLinksCollection  = "urls"
	MongoClicksCollection = "clicks"
)

// NewMongoDatabase подключается к MongoDB и создает индексы коллекций.
//
// Параметры:
//   - ctx: контекст выполнения
//   - url: строка подключения
//   - database: имя базы данных
//
// Возвращает:
//   - *mongo.Database: база данных
//   - error: ошибка подключения или создания индексов
func NewMongoDatabase(ctx context.Context, url, database string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect mongo: %w", err)
	}
	if pingErr := client.Ping(ctx, nil); pingErr != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", pingErr)
	}

	mdb := client.Database(database)
	if idxErr := ensureMongoIndexes(ctx, mdb); idxErr != nil {
		_ = client.Disconnect(ctx)
		return nil, idxErr
	}
	return mdb, nil
}

func ensureMongoIndexes(ctx context.Context, mdb *mongo.Database) error {
	_, err := mdb.Collection(MongoLinksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "short_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create urls index: %w", err)
	}
	_, err = mdb.Collection(MongoClicksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "short_code", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create clicks index: %w", err)
	}
	return nil
}
