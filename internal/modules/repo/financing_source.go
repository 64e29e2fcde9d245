package repo

import (
	"context"
	"strings"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinancingSourceRepo interface {
	Create(ctx context.Context, fs *model.FinancingSource) error
	Get(ctx context.Context, id uuid.UUID) (*model.FinancingSource, error)
	List(ctx context.Context, p paging.Query) ([]model.FinancingSource, int64, error)
	ListOptions(ctx context.Context) ([]model.FinancingSourceOption, error)
	Update(ctx context.Context, fs *model.FinancingSource) error
	Delete(ctx context.Context, id uuid.UUID) error
	// NameTaken matches case-insensitively, ignoring exclude when set.
	NameTaken(ctx context.Context, name string, exclude *uuid.UUID) (bool, error)
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
	// ExistingIDs returns which of ids exist.
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type financingSourceRepo struct{ db *gorm.DB }

func NewFinancingSourceRepo(db *gorm.DB) FinancingSourceRepo {
	return &financingSourceRepo{db: db}
}

var financingSourceSortable = map[string]string{
	"name":        "name",
	"description": "description",
	"created_dt":  "created_dt",
}

func (r *financingSourceRepo) Create(ctx context.Context, fs *model.FinancingSource) error {
	return r.db.WithContext(ctx).Create(fs).Error
}

func (r *financingSourceRepo) Get(ctx context.Context, id uuid.UUID) (*model.FinancingSource, error) {
	fs := &model.FinancingSource{}
	return fs, r.db.WithContext(ctx).Where("id = ?", id).First(fs).Error
}

func (r *financingSourceRepo) List(ctx context.Context, p paging.Query) ([]model.FinancingSource, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.FinancingSource{})
		return applySearch(q, p.Search, "name", "description")
	}
	return findPage[model.FinancingSource](base, nil, p, financingSourceSortable, "name")
}

func (r *financingSourceRepo) ListOptions(ctx context.Context) ([]model.FinancingSourceOption, error) {
	out := make([]model.FinancingSourceOption, 0)
	err := r.db.WithContext(ctx).Model(&model.FinancingSource{}).
		Select("id", "name").
		Order("name").
		Scan(&out).Error
	return out, err
}

func (r *financingSourceRepo) Update(ctx context.Context, fs *model.FinancingSource) error {
	res := r.db.WithContext(ctx).Model(&model.FinancingSource{}).
		Where("id = ?", fs.ID).
		Updates(map[string]interface{}{"name": fs.Name, "description": fs.Description})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *financingSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FinancingSource{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *financingSourceRepo) NameTaken(ctx context.Context, name string, exclude *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.FinancingSource{}).
		Where("lower(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *financingSourceRepo) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProjectFinancingSource{}).
		Joins("JOIN caderh.projects p ON p.id = project_financing_sources.project_id").
		Where("project_financing_sources.financing_source_id = ? AND p.project_status <> ?", id, model.ProjectDeleted).
		Count(&n).Error
	return n > 0, err
}

func (r *financingSourceRepo) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Model(&model.FinancingSource{}).
		Where("id IN ?", ids).
		Pluck("id", &out).Error
	return out, err
}
