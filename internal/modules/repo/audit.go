package repo

import (
	"context"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepo interface {
	// Create writes the user log and, when pl is set, the project log in one transaction.
	Create(ctx context.Context, ul *model.UserLog, pl *model.ProjectLog) error
	ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error)
	ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditRepo(db *gorm.DB) AuditRepo {
	return &auditRepo{db: db}
}

var logSortable = map[string]string{
	"created_dt": "l.created_dt",
	"log":        "l.log",
	"action":     "l.action",
}

func (r *auditRepo) Create(ctx context.Context, ul *model.UserLog, pl *model.ProjectLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ul).Error; err != nil {
			return err
		}
		if pl != nil {
			return tx.Create(pl).Error
		}
		return nil
	})
}

func withUserName(q *gorm.DB) *gorm.DB {
	return q.Select("l.*, u.name AS user_name").
		Joins("LEFT JOIN caderh.users u ON u.id = l.user_id")
}

func (r *auditRepo) ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("caderh.user_logs AS l")
		if userID != nil {
			q = q.Where("l.user_id = ?", *userID)
		}
		return applySearch(q, p.Search, "l.log")
	}
	return findPage[model.UserLog](base, withUserName, p, logSortable, "l.created_dt DESC")
}

func (r *auditRepo) ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("caderh.project_logs AS l").Where("l.project_id = ?", projectID)
		return applySearch(q, p.Search, "l.log")
	}
	return findPage[model.ProjectLog](base, withUserName, p, logSortable, "l.created_dt DESC")
}
