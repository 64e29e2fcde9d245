package repo

import (
	"context"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"gorm.io/gorm"
)

type CursoFilter struct {
	CentroID int64
	AreaID   int64
}

type CursoRepo interface {
	List(ctx context.Context, f CursoFilter, p paging.Query) ([]model.Curso, int64, error)
	Get(ctx context.Context, id int64) (*model.Curso, error)
	Create(ctx context.Context, c *model.Curso) error
	Update(ctx context.Context, c *model.Curso) error
	SetEstatus(ctx context.Context, id int64, estatus int16) error
}

type cursoRepo struct{ db *gorm.DB }

func NewCursoRepo(db *gorm.DB) CursoRepo {
	return &cursoRepo{db: db}
}

var cursoSortable = map[string]string{
	"id":             "x.id",
	"nombre":         "x.nombre",
	"codigo":         "x.codigo",
	"duracion_horas": "x.duracion_horas",
	"created_at":     "x.created_at",
}

func withCursoNames(q *gorm.DB) *gorm.DB {
	return q.Select("x.*, c.nombre AS centro_nombre, a.nombre AS area_nombre").
		Joins("LEFT JOIN centros.centros c ON c.id = x.centro_id").
		Joins("LEFT JOIN centros.areas a ON a.id = x.area_id")
}

func (r *cursoRepo) List(ctx context.Context, f CursoFilter, p paging.Query) ([]model.Curso, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("centros.cursos AS x").Where("x.estatus = ?", model.EstatusActive)
		if f.CentroID > 0 {
			q = q.Where("x.centro_id = ?", f.CentroID)
		}
		if f.AreaID > 0 {
			q = q.Where("x.area_id = ?", f.AreaID)
		}
		return applySearch(q, p.Search, "x.nombre", "x.codigo")
	}
	return findPage[model.Curso](base, withCursoNames, p, cursoSortable, "x.nombre")
}

func (r *cursoRepo) Get(ctx context.Context, id int64) (*model.Curso, error) {
	c := &model.Curso{}
	err := withCursoNames(r.db.WithContext(ctx).Table("centros.cursos AS x")).
		Where("x.id = ? AND x.estatus = ?", id, model.EstatusActive).
		Take(c).Error
	return c, err
}

func (r *cursoRepo) Create(ctx context.Context, c *model.Curso) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cursoRepo) Update(ctx context.Context, c *model.Curso) error {
	return updateSelected(ctx, r.db, c, []string{"centro_id", "area_id", "codigo", "nombre", "descripcion", "duracion_horas"})
}

func (r *cursoRepo) SetEstatus(ctx context.Context, id int64, estatus int16) error {
	return updateColumn(ctx, r.db, &model.Curso{}, id, "estatus", estatus)
}
