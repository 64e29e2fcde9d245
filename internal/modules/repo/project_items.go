package repo

import (
	"context"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectItemRepo owns the replace-all child collections of a project.
type ProjectItemRepo interface {
	ListFinancingSources(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFinancingSource, error)
	ReplaceFinancingSources(ctx context.Context, projectID uuid.UUID, rows []model.ProjectFinancingSource) error
	AddFinancingSource(ctx context.Context, row *model.ProjectFinancingSource) error
	DeleteFinancingSource(ctx context.Context, projectID, id uuid.UUID) error

	ListDonations(ctx context.Context, projectID uuid.UUID) ([]model.ProjectDonation, error)
	ReplaceDonations(ctx context.Context, projectID uuid.UUID, rows []model.ProjectDonation) error
	AddDonation(ctx context.Context, row *model.ProjectDonation) error
	DeleteDonation(ctx context.Context, projectID, id uuid.UUID) error

	ListExpenses(ctx context.Context, projectID uuid.UUID) ([]model.ProjectExpense, error)
	ReplaceExpenses(ctx context.Context, projectID uuid.UUID, rows []model.ProjectExpense) error
	AddExpense(ctx context.Context, row *model.ProjectExpense) error
	DeleteExpense(ctx context.Context, projectID, id uuid.UUID) error
}

type projectItemRepo struct{ db *gorm.DB }

func NewProjectItemRepo(db *gorm.DB) ProjectItemRepo {
	return &projectItemRepo{db: db}
}

type positioned interface {
	SetPosition(int)
}

// replaceChildren deletes every row of T for the project and inserts rows, in order, in one transaction.
func replaceChildren[T any, PT interface {
	*T
	positioned
}](ctx context.Context, db *gorm.DB, projectID uuid.UUID, rows []T) error {
	for i := range rows {
		PT(&rows[i]).SetPosition(i)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(new(T)).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func appendChild[T any, PT interface {
	*T
	positioned
}](ctx context.Context, db *gorm.DB, projectID uuid.UUID, row PT) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(new(T)).
			Where("project_id = ?", projectID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		row.SetPosition(next)
		return tx.Create(row).Error
	})
}

func deleteChild[T any](ctx context.Context, db *gorm.DB, projectID, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ? AND project_id = ?", id, projectID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func listChildren[T any](ctx context.Context, db *gorm.DB, projectID uuid.UUID) ([]T, error) {
	out := make([]T, 0)
	err := db.WithContext(ctx).Where("project_id = ?", projectID).Order("position, created_dt").Find(&out).Error
	return out, err
}

func (r *projectItemRepo) ListFinancingSources(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFinancingSource, error) {
	out := make([]model.ProjectFinancingSource, 0)
	err := r.db.WithContext(ctx).Table("caderh.project_financing_sources AS pfs").
		Select("pfs.*, fs.name AS financing_source_name").
		Joins("LEFT JOIN caderh.financing_sources fs ON fs.id = pfs.financing_source_id").
		Where("pfs.project_id = ?", projectID).
		Order("pfs.position, pfs.created_dt").
		Find(&out).Error
	return out, err
}

func (r *projectItemRepo) ReplaceFinancingSources(ctx context.Context, projectID uuid.UUID, rows []model.ProjectFinancingSource) error {
	return replaceChildren(ctx, r.db, projectID, rows)
}

func (r *projectItemRepo) AddFinancingSource(ctx context.Context, row *model.ProjectFinancingSource) error {
	return appendChild[model.ProjectFinancingSource](ctx, r.db, row.ProjectID, row)
}

func (r *projectItemRepo) DeleteFinancingSource(ctx context.Context, projectID, id uuid.UUID) error {
	return deleteChild[model.ProjectFinancingSource](ctx, r.db, projectID, id)
}

func (r *projectItemRepo) ListDonations(ctx context.Context, projectID uuid.UUID) ([]model.ProjectDonation, error) {
	return listChildren[model.ProjectDonation](ctx, r.db, projectID)
}

func (r *projectItemRepo) ReplaceDonations(ctx context.Context, projectID uuid.UUID, rows []model.ProjectDonation) error {
	return replaceChildren(ctx, r.db, projectID, rows)
}

func (r *projectItemRepo) AddDonation(ctx context.Context, row *model.ProjectDonation) error {
	return appendChild[model.ProjectDonation](ctx, r.db, row.ProjectID, row)
}

func (r *projectItemRepo) DeleteDonation(ctx context.Context, projectID, id uuid.UUID) error {
	return deleteChild[model.ProjectDonation](ctx, r.db, projectID, id)
}

func (r *projectItemRepo) ListExpenses(ctx context.Context, projectID uuid.UUID) ([]model.ProjectExpense, error) {
	return listChildren[model.ProjectExpense](ctx, r.db, projectID)
}

func (r *projectItemRepo) ReplaceExpenses(ctx context.Context, projectID uuid.UUID, rows []model.ProjectExpense) error {
	return replaceChildren(ctx, r.db, projectID, rows)
}

func (r *projectItemRepo) AddExpense(ctx context.Context, row *model.ProjectExpense) error {
	return appendChild[model.ProjectExpense](ctx, r.db, row.ProjectID, row)
}

func (r *projectItemRepo) DeleteExpense(ctx context.Context, projectID, id uuid.UUID) error {
	return deleteChild[model.ProjectExpense](ctx, r.db, projectID, id)
}
