package entity

import "time"

// StoredValue is one key of a client's storage context when the durable
// backend is used
type StoredValue struct {
	ClientID  string    `gorm:"type:varchar(64);primaryKey" json:"client_id"`
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StoredValue) TableName() string {
	return "client_storage"
}
