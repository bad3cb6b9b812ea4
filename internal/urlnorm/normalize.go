// Package urlnorm приводит пользовательский ввод к абсолютному URL и проверяет его синтаксис.
package urlnorm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

// DefaultScheme схема, которая подставляется, если во входной строке схема не указана.
const DefaultScheme = "https://"

// ErrInvalidURL строка не является корректным абсолютным URL.
var ErrInvalidURL = errors.New("invalid URL format")

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

// Normalize обрезает пробелы, добавляет схему `https://` если ни `http://`, ни `https://` не указаны,
// и проверяет результат. Сетевых запросов не делает.
//
// Параметры:
//   - raw: строка от пользователя
//
// Возвращает:
//   - string: нормализованный URL (строка возвращается как есть, без повторной сборки)
//   - error: ошибка, оборачивающая ErrInvalidURL
func Normalize(raw string) (string, error) {
	normalized := strings.TrimSpace(raw)
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = DefaultScheme + normalized
	}

	if err := validate(normalized); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, err.Error())
	}
	return normalized, nil
}

// validate проверяет, является ли строка корректным URL.
func validate(rawURL string) error {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return errors.New("unparsable url")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return errors.New("URL must have a host")
	}

	hostname := parsedURL.Hostname()
	switch {
	case hostname == "localhost":
		return nil
	case net.ParseIP(hostname) != nil:
		return nil
	case hostnameRegex.MatchString(hostname):
		return nil
	default:
		return fmt.Errorf("invalid hostname `%s`", hostname)
	}
}
