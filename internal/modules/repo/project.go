package repo

import (
	"context"
	"fmt"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	UpdateCore(ctx context.Context, p *model.Project) error
	// Get excludes DELETED projects and fills the computed totals.
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, status string, p paging.Query) ([]model.Project, int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	SetAccomplishments(ctx context.Context, id uuid.UUID, items []model.Accomplishment) error
	// IsMember reports whether userID is the assigned agent or listed in project_users.
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	ListAgents(ctx context.Context, projectID uuid.UUID) ([]model.UserOption, error)
	ReplaceAgents(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

var projectSortable = map[string]string{
	"name":             "p.name",
	"start_date":       "p.start_date",
	"end_date":         "p.end_date",
	"created_dt":       "p.created_dt",
	"project_category": "p.project_category",
	"financed_amount":  "financed_amount",
	"total_expenses":   "total_expenses",
}

const projectTotalsSelect = `p.*,
	COALESCE((SELECT SUM(pfs.amount) FROM caderh.project_financing_sources pfs WHERE pfs.project_id = p.id), 0)
	+ COALESCE((SELECT SUM(pd.amount) FROM caderh.project_donations pd WHERE pd.project_id = p.id AND pd.donation_type = '` + model.DonationCash + `'), 0) AS financed_amount,
	COALESCE((SELECT SUM(pe.amount) FROM caderh.project_expenses pe WHERE pe.project_id = p.id), 0) AS total_expenses`

func withTotals(q *gorm.DB) *gorm.DB {
	return q.Select(projectTotalsSelect)
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) UpdateCore(ctx context.Context, p *model.Project) error {
	res := r.db.WithContext(ctx).Model(p).
		Where("project_status <> ?", model.ProjectDeleted).
		Select("name", "description", "objectives", "start_date", "end_date", "accomplishments", "project_category", "assigned_agent_id").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p := &model.Project{}
	err := withTotals(r.db.WithContext(ctx).Table("caderh.projects AS p")).
		Where("p.id = ? AND p.project_status <> ?", id, model.ProjectDeleted).
		Take(p).Error
	return p, err
}

func (r *projectRepo) List(ctx context.Context, status string, p paging.Query) ([]model.Project, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("caderh.projects AS p").Where("p.project_status = ?", status)
		return applySearch(q, p.Search, "p.name", "p.description")
	}
	return findPage[model.Project](base, withTotals, p, projectSortable, "p.created_dt DESC")
}

func (r *projectRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND project_status <> ?", id, model.ProjectDeleted).
		Update("project_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) SetAccomplishments(ctx context.Context, id uuid.UUID, items []model.Accomplishment) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND project_status <> ?", id, model.ProjectDeleted).
		Update("accomplishments", datatypes.NewJSONSlice(items))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("caderh.projects AS p").
		Where("p.id = ? AND p.project_status <> ?", projectID, model.ProjectDeleted).
		Where("p.assigned_agent_id = ? OR EXISTS (SELECT 1 FROM caderh.project_users pu WHERE pu.project_id = p.id AND pu.user_id = ?)", userID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *projectRepo) ListAgents(ctx context.Context, projectID uuid.UUID) ([]model.UserOption, error) {
	out := make([]model.UserOption, 0)
	err := r.db.WithContext(ctx).Table("caderh.project_users AS pu").
		Select("u.id, u.name, u.email").
		Joins("JOIN caderh.users u ON u.id = pu.user_id").
		Where("pu.project_id = ?", projectID).
		Order("u.name").
		Scan(&out).Error
	return out, err
}

func (r *projectRepo) ReplaceAgents(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error {
	rows := make([]model.ProjectUser, len(userIDs))
	for i, id := range userIDs {
		rows[i] = model.ProjectUser{ProjectID: projectID, UserID: id}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ProjectUser{}).Error; err != nil {
			return fmt.Errorf("clear agents: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
