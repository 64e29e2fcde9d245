package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
)

const (
	msgCursoNotFound   = "Curso no encontrado"
	msgInvalidDuracion = "Duración inválida"
)

type CursoInput struct {
	CentroID      int64  `json:"centro_id"`
	AreaID        *int64 `json:"area_id"`
	Codigo        string `json:"codigo"`
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	DuracionHoras int    `json:"duracion_horas"`
}

type CursoService interface {
	List(ctx context.Context, f repo.CursoFilter, p paging.Query) ([]model.Curso, int64, error)
	Get(ctx context.Context, id int64) (*model.Curso, error)
	Create(ctx context.Context, actorID uuid.UUID, in CursoInput) (int64, error)
	Update(ctx context.Context, actorID uuid.UUID, id int64, in CursoInput) error
	Delete(ctx context.Context, actorID uuid.UUID, id int64) error
}

type cursoService struct {
	r        repo.CursoRepo
	centros  repo.CentroRepo
	catalogs repo.CatalogRepo
	audit    AuditService
}

func NewCursoService(r repo.CursoRepo, centros repo.CentroRepo, catalogs repo.CatalogRepo, audit AuditService) CursoService {
	return &cursoService{r: r, centros: centros, catalogs: catalogs, audit: audit}
}

func (s *cursoService) build(ctx context.Context, in CursoInput) (*model.Curso, error) {
	c := &model.Curso{
		CentroID:      in.CentroID,
		AreaID:        positive(in.AreaID),
		Codigo:        strings.TrimSpace(in.Codigo),
		Nombre:        strings.TrimSpace(in.Nombre),
		Descripcion:   strings.TrimSpace(in.Descripcion),
		DuracionHoras: in.DuracionHoras,
	}
	if c.CentroID <= 0 || c.Nombre == "" {
		return nil, Invalid(MsgMissingFields)
	}
	if len([]rune(c.Nombre)) < 2 {
		return nil, Invalid(MsgInvalidName)
	}
	if c.DuracionHoras < 0 {
		return nil, Invalid(msgInvalidDuracion)
	}

	ok, err := s.centros.Exists(ctx, c.CentroID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Invalid(msgCentroNotFound)
	}
	if c.AreaID != nil {
		a, err := s.catalogs.GetArea(ctx, *c.AreaID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		if err != nil || a.Estatus != model.EstatusActive {
			return nil, Invalid(msgAreaNotFound)
		}
	}
	return c, nil
}

func (s *cursoService) List(ctx context.Context, f repo.CursoFilter, p paging.Query) ([]model.Curso, int64, error) {
	return s.r.List(ctx, f, p)
}

func (s *cursoService) Get(ctx context.Context, id int64) (*model.Curso, error) {
	c, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgCursoNotFound)
	}
	return c, nil
}

func (s *cursoService) Create(ctx context.Context, actorID uuid.UUID, in CursoInput) (int64, error) {
	c, err := s.build(ctx, in)
	if err != nil {
		return 0, err
	}
	c.Estatus = model.EstatusActive
	if err := s.r.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, s.record(ctx, actorID, ActionCreate, c.ID, fmt.Sprintf("Creó curso ID: %d, NOMBRE: %s", c.ID, c.Nombre))
}

func (s *cursoService) Update(ctx context.Context, actorID uuid.UUID, id int64, in CursoInput) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	c, err := s.build(ctx, in)
	if err != nil {
		return err
	}
	c.ID = id
	if err := s.r.Update(ctx, c); err != nil {
		return notFoundOr(err, msgCursoNotFound)
	}
	return s.record(ctx, actorID, ActionUpdate, id, fmt.Sprintf("Actualizó curso ID: %d, NOMBRE: %s", id, c.Nombre))
}

func (s *cursoService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.r.SetEstatus(ctx, id, model.EstatusInactive); err != nil {
		return notFoundOr(err, msgCursoNotFound)
	}
	return s.record(ctx, actorID, ActionDelete, id, fmt.Sprintf("Eliminó curso ID: %d, NOMBRE: %s", id, c.Nombre))
}

func (s *cursoService) record(ctx context.Context, actorID uuid.UUID, action string, id int64, log string) error {
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     action,
		EntityType: "cursos",
		EntityID:   strconv.FormatInt(id, 10),
		Log:        log,
	})
}
