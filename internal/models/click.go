package models

import "time"

// Click запись об одном переходе по короткой ссылке. После создания не изменяется.
type Click struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36" bson:"id"`
	ShortCode string    `json:"short_code" gorm:"index:idx_clicks_short_code;size:16;not null" bson:"short_code"`
	Timestamp time.Time `json:"timestamp" gorm:"not null" bson:"timestamp"`
	UserAgent *string   `json:"user_agent,omitempty" gorm:"type:text" bson:"user_agent,omitempty"`
	IPAddress *string   `json:"ip_address,omitempty" gorm:"size:45" bson:"ip_address,omitempty"`
}

// TableName имя таблицы (коллекции) переходов.
func (Click) TableName() string {
	return "clicks"
}
