package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ProjectActive   = "ACTIVE"
	ProjectArchived = "ARCHIVED"
	ProjectDeleted  = "DELETED"
)

const (
	DonationCash   = "CASH"
	DonationSupply = "SUPPLY"
)

type Accomplishment struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Project struct {
	ID              uuid.UUID                           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string                              `gorm:"type:text;not null" json:"name"`
	Description     string                              `gorm:"type:text;not null" json:"description"`
	Objectives      string                              `gorm:"type:text;not null" json:"objectives"`
	StartDate       time.Time                           `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time                           `gorm:"type:date;not null" json:"end_date"`
	Accomplishments datatypes.JSONSlice[Accomplishment] `gorm:"type:jsonb" swaggertype:"array,object" json:"accomplishments"`
	ProjectStatus   string                              `gorm:"type:text;not null;default:'ACTIVE';index" json:"project_status"`
	ProjectCategory string                              `gorm:"type:text;not null;default:''" json:"project_category"`
	AssignedAgentID *uuid.UUID                          `gorm:"type:uuid;index" json:"assigned_agent_id"`
	CreatedDt       time.Time                           `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`

	// computed in list/detail queries, in cents
	FinancedAmount int64 `gorm:"->;-:migration" json:"financed_amount"`
	TotalExpenses  int64 `gorm:"->;-:migration" json:"total_expenses"`
}

func (Project) TableName() string { return "caderh.projects" }

type ProjectFinancingSource struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID         uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	FinancingSourceID uuid.UUID `gorm:"type:uuid;not null;index" json:"financing_source_id"`
	Amount            int64     `gorm:"not null" json:"amount"`
	Description       string    `gorm:"type:text;not null;default:''" json:"description"`
	Position          int       `gorm:"not null;default:0" json:"-"`
	CreatedDt         time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`

	FinancingSourceName string `gorm:"->;-:migration" json:"financing_source_name,omitempty"`
}

func (ProjectFinancingSource) TableName() string { return "caderh.project_financing_sources" }

type ProjectDonation struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Amount       int64     `gorm:"not null" json:"amount"`
	DonationType string    `gorm:"type:text;not null" json:"donation_type"`
	Description  string    `gorm:"type:text;not null;default:''" json:"description"`
	Position     int       `gorm:"not null;default:0" json:"-"`
	CreatedDt    time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`
}

func (ProjectDonation) TableName() string { return "caderh.project_donations" }

type ProjectExpense struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	Position    int       `gorm:"not null;default:0" json:"-"`
	CreatedDt   time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`
}

func (ProjectExpense) TableName() string { return "caderh.project_expenses" }

type ProjectFile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	File        string    `gorm:"column:file;type:text;not null" json:"file"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	CreatedDt   time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`
}

func (ProjectFile) TableName() string { return "caderh.project_files" }

// ProjectUser assigns an agent to a project in addition to assigned_agent_id.
type ProjectUser struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedDt time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`
}

func (ProjectUser) TableName() string { return "caderh.project_users" }

// ParseDonationType accepts the stored codes and the Spanish display labels.
func ParseDonationType(s string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case DonationCash, "EFECTIVO":
		return DonationCash, true
	case DonationSupply, "SUMINISTROS", "SUMINISTRO":
		return DonationSupply, true
	}
	return "", false
}

func DonationTypeLabel(t string) string {
	switch t {
	case DonationCash:
		return "EFECTIVO"
	case DonationSupply:
		return "SUMINISTROS"
	}
	return t
}

func (r *ProjectFinancingSource) SetPosition(i int) { r.Position = i }
func (r *ProjectDonation) SetPosition(i int)        { r.Position = i }
func (r *ProjectExpense) SetPosition(i int)         { r.Position = i }
