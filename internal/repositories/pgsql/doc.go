// Package pgsql предоставляет реализацию репозиториев ссылок и кликов для PostgreSQL поверх pgxpool.
//
// Ошибки PostgreSQL преобразуются в общие ошибки уровня репозитория с помощью convertErrorType:
//   - uniqueViolationCode (23505) -> repositories.ErrDuplicateKey
//   - pgx.ErrNoRows -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package pgsql
