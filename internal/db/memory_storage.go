package db

import (
	"github.com/fsdevblog/qrshort/internal/db/memory"
)

// MemoryStorage хранилище в памяти. Ссылки и клики лежат в отдельных коллекциях.
type MemoryStorage struct {
	Links  *memory.MStorage
	Clicks *memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		Links:  memory.NewMemStorage(),
		Clicks: memory.NewMemStorage(),
	}
}
