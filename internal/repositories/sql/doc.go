// Package sql предоставляет реализацию репозиториев ссылок и кликов поверх gorm (SQLite).
//
// Ошибки gorm преобразуются в общие ошибки уровня репозитория с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey или нарушение UNIQUE -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
