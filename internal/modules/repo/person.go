package repo

import (
	"context"
	"strings"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"gorm.io/gorm"
)

type PersonFilter struct {
	CentroID int64
}

type InstructorRepo interface {
	List(ctx context.Context, f PersonFilter, p paging.Query) ([]model.Instructor, int64, error)
	Get(ctx context.Context, id int64) (*model.Instructor, error)
	Create(ctx context.Context, i *model.Instructor) error
	Update(ctx context.Context, i *model.Instructor) error
	SetEstatus(ctx context.Context, id int64, estatus int16) error
	SetArchivo(ctx context.Context, id int64, path string) error
}

type EstudianteRepo interface {
	List(ctx context.Context, f PersonFilter, p paging.Query) ([]model.Estudiante, int64, error)
	Get(ctx context.Context, id int64) (*model.Estudiante, error)
	Create(ctx context.Context, e *model.Estudiante) error
	Update(ctx context.Context, e *model.Estudiante) error
	SetEstatus(ctx context.Context, id int64, estatus int16) error
	SetArchivo(ctx context.Context, id int64, path string) error
	// IdentidadTaken checks active students of the centro case-insensitively, ignoring exclude.
	IdentidadTaken(ctx context.Context, identidad string, centroID, exclude int64) (bool, error)
}

var personSortable = map[string]string{
	"id":         "x.id",
	"nombre":     "x.nombre",
	"apellido":   "x.apellido",
	"identidad":  "x.identidad",
	"created_at": "x.created_at",
}

var personColumns = []string{
	"centro_id", "departamento_id", "municipio_id", "identidad", "nombre", "apellido",
	"sexo", "fecha_nacimiento", "telefono", "email", "direccion",
}

func personBase(ctx context.Context, db *gorm.DB, table string, f PersonFilter, p paging.Query) func() *gorm.DB {
	return func() *gorm.DB {
		q := db.WithContext(ctx).Table(table+" AS x").Where("x.estatus = ?", model.EstatusActive)
		if f.CentroID > 0 {
			q = q.Where("x.centro_id = ?", f.CentroID)
		}
		return applySearch(q, p.Search, "x.nombre", "x.apellido", "x.identidad")
	}
}

func withCentroName(q *gorm.DB) *gorm.DB {
	return q.Select("x.*, c.nombre AS centro_nombre").
		Joins("LEFT JOIN centros.centros c ON c.id = x.centro_id")
}

func getActivePerson(ctx context.Context, db *gorm.DB, table string, id int64, dest interface{}) error {
	return withCentroName(db.WithContext(ctx).Table(table+" AS x")).
		Where("x.id = ? AND x.estatus = ?", id, model.EstatusActive).
		Take(dest).Error
}

func updateSelected(ctx context.Context, db *gorm.DB, value interface{}, columns []string) error {
	res := db.WithContext(ctx).Model(value).Where("estatus = ?", model.EstatusActive).Select(columns).Updates(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type instructorRepo struct{ db *gorm.DB }

func NewInstructorRepo(db *gorm.DB) InstructorRepo {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) List(ctx context.Context, f PersonFilter, p paging.Query) ([]model.Instructor, int64, error) {
	base := personBase(ctx, r.db, model.Instructor{}.TableName(), f, p)
	return findPage[model.Instructor](base, withCentroName, p, personSortable, "x.apellido, x.nombre")
}

func (r *instructorRepo) Get(ctx context.Context, id int64) (*model.Instructor, error) {
	i := &model.Instructor{}
	return i, getActivePerson(ctx, r.db, model.Instructor{}.TableName(), id, i)
}

func (r *instructorRepo) Create(ctx context.Context, i *model.Instructor) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *instructorRepo) Update(ctx context.Context, i *model.Instructor) error {
	return updateSelected(ctx, r.db, i, append(append([]string{}, personColumns...), "especialidad"))
}

func (r *instructorRepo) SetEstatus(ctx context.Context, id int64, estatus int16) error {
	return updateColumn(ctx, r.db, &model.Instructor{}, id, "estatus", estatus)
}

func (r *instructorRepo) SetArchivo(ctx context.Context, id int64, path string) error {
	return updateColumn(ctx, r.db, &model.Instructor{}, id, "archivo", path)
}

type estudianteRepo struct{ db *gorm.DB }

func NewEstudianteRepo(db *gorm.DB) EstudianteRepo {
	return &estudianteRepo{db: db}
}

func (r *estudianteRepo) List(ctx context.Context, f PersonFilter, p paging.Query) ([]model.Estudiante, int64, error) {
	base := personBase(ctx, r.db, model.Estudiante{}.TableName(), f, p)
	return findPage[model.Estudiante](base, withCentroName, p, personSortable, "x.apellido, x.nombre")
}

func (r *estudianteRepo) Get(ctx context.Context, id int64) (*model.Estudiante, error) {
	e := &model.Estudiante{}
	return e, getActivePerson(ctx, r.db, model.Estudiante{}.TableName(), id, e)
}

func (r *estudianteRepo) Create(ctx context.Context, e *model.Estudiante) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *estudianteRepo) Update(ctx context.Context, e *model.Estudiante) error {
	return updateSelected(ctx, r.db, e, append(append([]string{}, personColumns...), "nivel_escolaridad_id"))
}

func (r *estudianteRepo) SetEstatus(ctx context.Context, id int64, estatus int16) error {
	return updateColumn(ctx, r.db, &model.Estudiante{}, id, "estatus", estatus)
}

func (r *estudianteRepo) SetArchivo(ctx context.Context, id int64, path string) error {
	return updateColumn(ctx, r.db, &model.Estudiante{}, id, "archivo", path)
}

func (r *estudianteRepo) IdentidadTaken(ctx context.Context, identidad string, centroID, exclude int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Estudiante{}).
		Where("lower(identidad) = ? AND centro_id = ? AND estatus = ? AND id <> ?",
			strings.ToLower(strings.TrimSpace(identidad)), centroID, model.EstatusActive, exclude).
		Count(&n).Error
	return n > 0, err
}
