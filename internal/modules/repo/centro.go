package repo

import (
	"context"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"gorm.io/gorm"
)

type CentroListFilter struct {
	Estatus int16
}

type CentroRepo interface {
	List(ctx context.Context, f CentroListFilter, p paging.Query) ([]model.Centro, int64, error)
	Options(ctx context.Context) ([]model.CatalogItem, error)
	// Get returns the centro whatever its estatus, with location names.
	Get(ctx context.Context, id int64) (*model.Centro, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c *model.Centro) error
	Update(ctx context.Context, c *model.Centro) error
	SetEstatus(ctx context.Context, id int64, estatus int16) error
}

type centroRepo struct{ db *gorm.DB }

func NewCentroRepo(db *gorm.DB) CentroRepo {
	return &centroRepo{db: db}
}

var centroSortable = map[string]string{
	"id":         "c.id",
	"nombre":     "c.nombre",
	"siglas":     "c.siglas",
	"codigo":     "c.codigo",
	"created_at": "c.created_at",
}

func withLocationNames(q *gorm.DB) *gorm.DB {
	return q.Select("c.*, d.nombre AS departamento_nombre, m.nombre AS municipio_nombre").
		Joins("LEFT JOIN centros.departamentos d ON d.id = c.departamento_id").
		Joins("LEFT JOIN centros.municipios m ON m.id = c.municipio_id")
}

func (r *centroRepo) List(ctx context.Context, f CentroListFilter, p paging.Query) ([]model.Centro, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("centros.centros AS c").Where("c.estatus = ?", f.Estatus)
		return applySearch(q, p.Search, "c.nombre", "c.siglas", "c.codigo")
	}
	return findPage[model.Centro](base, withLocationNames, p, centroSortable, "c.nombre")
}

func (r *centroRepo) Options(ctx context.Context) ([]model.CatalogItem, error) {
	return catalogItems(ctx, r.db, &model.Centro{}, "")
}

func (r *centroRepo) Get(ctx context.Context, id int64) (*model.Centro, error) {
	c := &model.Centro{}
	err := withLocationNames(r.db.WithContext(ctx).Table("centros.centros AS c")).
		Where("c.id = ?", id).
		Take(c).Error
	return c, err
}

func (r *centroRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return activeExists(ctx, r.db, &model.Centro{}, id)
}

func (r *centroRepo) Create(ctx context.Context, c *model.Centro) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *centroRepo) Update(ctx context.Context, c *model.Centro) error {
	res := r.db.WithContext(ctx).Model(c).
		Select("siglas", "codigo", "nombre", "descripcion", "departamento_id", "municipio_id", "direccion", "telefono", "email", "nombre_director").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *centroRepo) SetEstatus(ctx context.Context, id int64, estatus int16) error {
	return updateColumn(ctx, r.db, &model.Centro{}, id, "estatus", estatus)
}
