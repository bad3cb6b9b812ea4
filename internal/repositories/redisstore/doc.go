// Package redisstore предоставляет реализацию репозиториев ссылок и кликов для Redis.
//
// Раскладка ключей:
//   - link:{code} хеш с полями ссылки
//   - links множество всех коротких кодов
//   - clicks:{code} список кликов в JSON
//
// Создание ссылки и инкремент счетчика выполняются Lua скриптами, поэтому проверка существования
// и запись атомарны.
package redisstore
