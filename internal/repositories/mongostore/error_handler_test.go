package mongostore

import (
	"context"
	"testing"

	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertErrorType(t *testing.T) {
	assert.NoError(t, convertErrorType(nil))

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}
	assert.ErrorIs(t, convertErrorType(dup), repositories.ErrDuplicateKey)
	assert.ErrorIs(t, convertErrorType(mongo.ErrNoDocuments), repositories.ErrNotFound)

	err := convertErrorType(context.DeadlineExceeded)
	assert.ErrorIs(t, err, repositories.ErrUnknown)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
