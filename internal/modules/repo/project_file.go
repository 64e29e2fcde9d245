package repo

import (
	"context"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectFileRepo interface {
	List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFile, error)
	Get(ctx context.Context, projectID, fileID uuid.UUID) (*model.ProjectFile, error)
	Create(ctx context.Context, f *model.ProjectFile) error
	Delete(ctx context.Context, projectID, fileID uuid.UUID) error
}

type projectFileRepo struct{ db *gorm.DB }

func NewProjectFileRepo(db *gorm.DB) ProjectFileRepo {
	return &projectFileRepo{db: db}
}

func (r *projectFileRepo) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFile, error) {
	out := make([]model.ProjectFile, 0)
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_dt").Find(&out).Error
	return out, err
}

func (r *projectFileRepo) Get(ctx context.Context, projectID, fileID uuid.UUID) (*model.ProjectFile, error) {
	f := &model.ProjectFile{}
	return f, r.db.WithContext(ctx).Where("id = ? AND project_id = ?", fileID, projectID).First(f).Error
}

func (r *projectFileRepo) Create(ctx context.Context, f *model.ProjectFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *projectFileRepo) Delete(ctx context.Context, projectID, fileID uuid.UUID) error {
	return deleteChild[model.ProjectFile](ctx, r.db, projectID, fileID)
}
