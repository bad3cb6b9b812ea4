package memory

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное хранилище документов в памяти. Документы хранятся в виде JSON,
// поэтому наружу всегда отдаются копии.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

// Len количество документов в хранилище.
func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

// SetOptions опции записи.
type SetOptions struct {
	Overwrite bool // Разрешить перезапись существующего ключа
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.Overwrite = true
	}
}

func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set Сохраняет новую пару ключ/значение. Без WithOverwrite ключ обязан быть уникальным,
// иначе вернется ошибка ErrDuplicateKey.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.m.Lock()
	defer m.m.Unlock()

	// проверка и запись под одной блокировкой, иначе два писателя могут пройти проверку одновременно
	if _, exists := m.data[key]; exists && !options.Overwrite {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	return nil
}

// Update атомарно изменяет документ по ключу функцией fn. Если fn вернула ошибку,
// документ остается без изменений.
func Update[T any](ctx context.Context, key string, m *MStorage, fn func(*T) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	val, ok := m.data[key]
	if !ok {
		return ErrNotFound
	}
	var doc T
	if err := json.Unmarshal(val, &doc); err != nil {
		return errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	if err := fn(&doc); err != nil {
		return err
	}
	bytes, err := json.Marshal(&doc)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", doc)
	}
	m.data[key] = bytes
	return nil
}

// FilterAll возвращает не более limit документов, для которых fn вернула true. Порядок не гарантируется.
// При limit <= 0 ограничения нет.
func FilterAll[T any](ctx context.Context, m *MStorage, limit int, fn func(val T) bool) ([]T, error) {
	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0)

	for key, bytes := range m.data {
		if err := ctx.Err(); err != nil {
			return nil, err //nolint:wrapcheck
		}
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn != nil && !fn(val) {
			continue
		}
		result = append(result, val)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// GetAll возвращает не более limit документов. Порядок не гарантируется.
func GetAll[T any](ctx context.Context, m *MStorage, limit int) ([]T, error) {
	return FilterAll[T](ctx, m, limit, nil)
}
