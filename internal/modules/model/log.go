package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserLog is one audit event. Log keeps the human readable text shown in the UI.
type UserLog struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Log        string            `gorm:"type:text;not null" json:"log"`
	Action     string            `gorm:"type:text;not null;default:''" json:"action"`
	EntityType string            `gorm:"type:text;not null;default:''" json:"entity_type"`
	EntityID   string            `gorm:"type:text;not null;default:''" json:"entity_id"`
	Details    datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"details,omitempty"`
	CreatedDt  time.Time         `gorm:"column:created_dt;autoCreateTime;index" json:"created_dt"`

	UserName string `gorm:"->;-:migration" json:"user_name,omitempty"`
}

func (UserLog) TableName() string { return "caderh.user_logs" }

type ProjectLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Log       string    `gorm:"type:text;not null" json:"log"`
	Action    string    `gorm:"type:text;not null;default:''" json:"action"`
	CreatedDt time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`

	UserName string `gorm:"->;-:migration" json:"user_name,omitempty"`
}

func (ProjectLog) TableName() string { return "caderh.project_logs" }
