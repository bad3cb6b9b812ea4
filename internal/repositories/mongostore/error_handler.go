package mongostore

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case mongo.IsDuplicateKeyError(err):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, mongo.ErrNoDocuments):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %w", nativeErr, err)
}
