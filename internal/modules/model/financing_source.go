package model

import (
	"time"

	"github.com/google/uuid"
)

type FinancingSource struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedDt   time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`
}

func (FinancingSource) TableName() string { return "caderh.financing_sources" }

type FinancingSourceOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
