package repo

import (
	"context"
	"strings"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	// FindByEmail matches case-insensitively; disabled users are included.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindEnabledByEmail returns gorm.ErrRecordNotFound for disabled users.
	FindEnabledByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, p paging.Query) ([]model.User, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// ListByIDs returns the subset of ids that exist, enabled, with the given role.
	ListByIDs(ctx context.Context, ids []uuid.UUID, role string) ([]model.User, error)
	ListOptions(ctx context.Context, role string) ([]model.UserOption, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

var userSortable = map[string]string{
	"email":      "email",
	"name":       "name",
	"role":       "role",
	"disabled":   "disabled",
	"created_dt": "created_dt",
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u := &model.User{}
	return u, r.db.WithContext(ctx).Where("id = ?", id).First(u).Error
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(u).Error
	return u, err
}

func (r *userRepo) FindEnabledByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.WithContext(ctx).
		Where("lower(email) = ? AND disabled = ?", strings.ToLower(strings.TrimSpace(email)), false).
		First(u).Error
	return u, err
}

func (r *userRepo) List(ctx context.Context, p paging.Query) ([]model.User, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.User{})
		return applySearch(q, p.Search, "email", "name")
	}
	return findPage[model.User](base, nil, p, userSortable, "name")
}

func (r *userRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) ListByIDs(ctx context.Context, ids []uuid.UUID, role string) ([]model.User, error) {
	users := make([]model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ? AND role = ? AND disabled = ?", ids, role, false).
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListOptions(ctx context.Context, role string) ([]model.UserOption, error) {
	out := make([]model.UserOption, 0)
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("id", "name", "email").
		Where("role = ? AND disabled = ?", role, false).
		Order("name").
		Scan(&out).Error
	return out, err
}
