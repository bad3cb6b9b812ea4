package memstore

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/db/memory"
	"github.com/fsdevblog/qrshort/internal/repositories"
)

// convertErrorType конвертирует ошибки хранилища в памяти в общие ошибки уровня репозитория.
// Исходная ошибка остается в цепочке, так что errors.Is(err, context.Canceled) продолжает работать.
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	var nativeErr error
	switch {
	case errors.Is(err, memory.ErrDuplicateKey):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, memory.ErrNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}

	return fmt.Errorf("%w: %w", nativeErr, err)
}
