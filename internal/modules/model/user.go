package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email            string    `gorm:"type:text;not null;index" json:"email"`
	Name             string    `gorm:"type:text;not null" json:"name"`
	Password         string    `gorm:"type:text;not null" json:"-"`
	Role             string    `gorm:"type:text;not null" json:"role"`
	Disabled         bool      `gorm:"not null;default:false" json:"disabled"`
	FirstLogin       bool      `gorm:"not null;default:true" json:"first_login"`
	VerificationCode *string   `gorm:"type:text" json:"-"`
	CreatedDt        time.Time `gorm:"column:created_dt;autoCreateTime" json:"created_dt"`
}

func (User) TableName() string { return "caderh.users" }

// NormalizeRole maps role input, including the SUPERVISOR and AGENT aliases, to a stored role.
func NormalizeRole(role string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager, "SUPERVISOR":
		return RoleManager, true
	case RoleUser, "AGENT":
		return RoleUser, true
	}
	return "", false
}

// RoleLabel is the display name used in account emails.
func RoleLabel(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrador"
	case RoleManager:
		return "Supervisor"
	case RoleUser:
		return "Agente"
	}
	return role
}

// UserOption is the id+name projection used by agent pickers.
type UserOption struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
