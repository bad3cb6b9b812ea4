// Package bmeta выводит метаданные сборки, заданные через -ldflags.
package bmeta

import (
	"fmt"
	"io"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Meta версия, дата и коммит сборки.
type Meta struct {
	Version string
	Date    string
	Commit  string
}

// Fprint записывает версию, дату и коммит сборки в w.
// Незаданные значения заменяются на "N/A".
func Fprint(w io.Writer, m Meta) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orDefault(m.Version), orDefault(m.Date), orDefault(m.Commit))
	if err != nil {
		return fmt.Errorf("print build meta: %w", err)
	}
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return defaultBuildMeta
	}
	return s
}
