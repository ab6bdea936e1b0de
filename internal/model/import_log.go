package model

import "time"

// ImportLog - серверная запись о выполненном импорте архива 1PIF.
type ImportLog struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	Subject string `gorm:"not null;index" json:"-"` // субъект токена, выполнивший импорт

	Strict      bool `gorm:"not null;default:false" json:"strict"`
	Groups      int  `gorm:"not null" json:"groups"`
	Imported    int  `gorm:"not null" json:"imported"`
	Trashed     int  `gorm:"not null" json:"trashed"`
	Unsupported int  `gorm:"not null" json:"unsupported"`

	// Связи
	Entries []ImportedEntry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ImportedEntry - сводка по одной импортированной записи (без секретов).
type ImportedEntry struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	ImportLogID string `gorm:"not null;index;type:uuid" json:"-"`
	Position    int    `gorm:"not null" json:"-"`

	Group       string `gorm:"not null" json:"group"`
	Title       string `gorm:"not null" json:"title"`
	Username    string `json:"username,omitempty"`
	URL         string `json:"url,omitempty"`
	Attachments int    `gorm:"not null;default:0" json:"attachments"`
}
