package repositories

// DefaultReadLimit мягкое ограничение на количество документов, возвращаемых методами чтения списков.
const DefaultReadLimit = 1000

// NormalizeLimit возвращает DefaultReadLimit для неположительного limit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultReadLimit
	}
	return limit
}
