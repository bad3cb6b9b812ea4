package models

import "time"

// Link структура модели хранения короткой ссылки.
type Link struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36" bson:"id"`
	OriginalURL string    `json:"original_url" gorm:"type:text;not null" bson:"original_url"`
	ShortCode   string    `json:"short_code" gorm:"uniqueIndex:idx_urls_short_code;size:16;not null" bson:"short_code"`
	ShortURL    string    `json:"short_url" gorm:"type:text;not null" bson:"short_url"`
	QRCode      string    `json:"qr_code" gorm:"type:text" bson:"qr_code"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	ClickCount  int64     `json:"click_count" gorm:"not null;default:0" bson:"click_count"`
}

// TableName имя таблицы (коллекции) ссылок.
func (Link) TableName() string {
	return "urls"
}
