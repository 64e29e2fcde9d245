package repo

import (
	"context"
	"strings"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"gorm.io/gorm"
)

type CatalogRepo interface {
	ListAreas(ctx context.Context, p paging.Query) ([]model.Area, int64, error)
	AreaOptions(ctx context.Context) ([]model.CatalogItem, error)
	// GetArea only sees active areas, so a repeated delete is a not-found.
	GetArea(ctx context.Context, id int64) (*model.Area, error)
	CreateArea(ctx context.Context, a *model.Area) error
	RenameArea(ctx context.Context, id int64, nombre string) error
	SetAreaEstatus(ctx context.Context, id int64, estatus int16) error
	// AreaNameTaken compares case-insensitively against active areas other than exclude.
	AreaNameTaken(ctx context.Context, nombre string, exclude int64) (bool, error)

	ListDepartamentos(ctx context.Context) ([]model.CatalogItem, error)
	ListMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error)
	GetMunicipio(ctx context.Context, id int64) (*model.Municipio, error)
	DepartamentoExists(ctx context.Context, id int64) (bool, error)
	ListNiveles(ctx context.Context) ([]model.CatalogItem, error)
	NivelExists(ctx context.Context, id int64) (bool, error)
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return &catalogRepo{db: db}
}

var areaSortable = map[string]string{
	"id":         "id",
	"nombre":     "nombre",
	"created_at": "created_at",
}

func (r *catalogRepo) ListAreas(ctx context.Context, p paging.Query) ([]model.Area, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Area{}).Where("estatus = ?", model.EstatusActive)
		return applySearch(q, p.Search, "nombre")
	}
	return findPage[model.Area](base, nil, p, areaSortable, "nombre")
}

func (r *catalogRepo) AreaOptions(ctx context.Context) ([]model.CatalogItem, error) {
	return catalogItems(ctx, r.db, &model.Area{}, "")
}

func (r *catalogRepo) GetArea(ctx context.Context, id int64) (*model.Area, error) {
	a := &model.Area{}
	return a, r.db.WithContext(ctx).Where("id = ? AND estatus = ?", id, model.EstatusActive).First(a).Error
}

func (r *catalogRepo) CreateArea(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *catalogRepo) RenameArea(ctx context.Context, id int64, nombre string) error {
	return updateColumn(ctx, r.db, &model.Area{}, id, "nombre", nombre)
}

func (r *catalogRepo) SetAreaEstatus(ctx context.Context, id int64, estatus int16) error {
	return updateColumn(ctx, r.db, &model.Area{}, id, "estatus", estatus)
}

func (r *catalogRepo) AreaNameTaken(ctx context.Context, nombre string, exclude int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Area{}).
		Where("lower(nombre) = ? AND estatus = ? AND id <> ?", strings.ToLower(strings.TrimSpace(nombre)), model.EstatusActive, exclude).
		Count(&n).Error
	return n > 0, err
}

func (r *catalogRepo) ListDepartamentos(ctx context.Context) ([]model.CatalogItem, error) {
	return catalogItems(ctx, r.db, &model.Departamento{}, "")
}

func (r *catalogRepo) ListMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error) {
	out := make([]model.Municipio, 0)
	q := r.db.WithContext(ctx).Where("estatus = ?", model.EstatusActive)
	if departamentoID > 0 {
		q = q.Where("departamento_id = ?", departamentoID)
	}
	return out, q.Order("nombre").Find(&out).Error
}

func (r *catalogRepo) GetMunicipio(ctx context.Context, id int64) (*model.Municipio, error) {
	m := &model.Municipio{}
	return m, r.db.WithContext(ctx).Where("id = ? AND estatus = ?", id, model.EstatusActive).First(m).Error
}

func (r *catalogRepo) DepartamentoExists(ctx context.Context, id int64) (bool, error) {
	return activeExists(ctx, r.db, &model.Departamento{}, id)
}

func (r *catalogRepo) ListNiveles(ctx context.Context) ([]model.CatalogItem, error) {
	return catalogItems(ctx, r.db, &model.NivelEscolaridad{}, "id")
}

func (r *catalogRepo) NivelExists(ctx context.Context, id int64) (bool, error) {
	return activeExists(ctx, r.db, &model.NivelEscolaridad{}, id)
}

// catalogItems returns the active id+nombre pairs of a catalog table, ordered by nombre unless order is set.
func catalogItems(ctx context.Context, db *gorm.DB, m interface{}, order string) ([]model.CatalogItem, error) {
	if order == "" {
		order = "nombre"
	}
	out := make([]model.CatalogItem, 0)
	err := db.WithContext(ctx).Model(m).
		Select("id", "nombre").
		Where("estatus = ?", model.EstatusActive).
		Order(order).
		Scan(&out).Error
	return out, err
}

func activeExists(ctx context.Context, db *gorm.DB, m interface{}, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(m).Where("id = ? AND estatus = ?", id, model.EstatusActive).Count(&n).Error
	return n > 0, err
}

func updateColumn(ctx context.Context, db *gorm.DB, m interface{}, id int64, column string, value interface{}) error {
	res := db.WithContext(ctx).Model(m).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
