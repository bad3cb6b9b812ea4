// Package mongostore предоставляет реализацию репозиториев ссылок и кликов для MongoDB.
// Ссылки хранятся в коллекции urls с уникальным индексом по short_code, клики в коллекции clicks.
package mongostore
