package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index"`
	Type    string         `gorm:"not null"` // "new_message", "new_application", "application_status"
	Title   string         `gorm:"not null"`
	Message string
	URL     string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"message_id": "...", "job_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
