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
	msgAreaNotFound  = "Área no encontrada"
	msgAreaExists    = "Ya existe un área con este nombre"
	msgAreaOtherName = "Ya existe otra área con este nombre"
)

// CatalogService covers areas plus the read-only location and schooling catalogs.
type CatalogService interface {
	ListAreas(ctx context.Context, p paging.Query) ([]model.Area, int64, error)
	AreaOptions(ctx context.Context) ([]model.CatalogItem, error)
	CreateArea(ctx context.Context, actorID uuid.UUID, nombre string) (int64, error)
	UpdateArea(ctx context.Context, actorID uuid.UUID, id int64, nombre string) error
	DeleteArea(ctx context.Context, actorID uuid.UUID, id int64) error

	Departamentos(ctx context.Context) ([]model.CatalogItem, error)
	Municipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error)
	Niveles(ctx context.Context) ([]model.CatalogItem, error)
}

type catalogService struct {
	r     repo.CatalogRepo
	audit AuditService
}

func NewCatalogService(r repo.CatalogRepo, audit AuditService) CatalogService {
	return &catalogService{r: r, audit: audit}
}

func (s *catalogService) ListAreas(ctx context.Context, p paging.Query) ([]model.Area, int64, error) {
	return s.r.ListAreas(ctx, p)
}

func (s *catalogService) AreaOptions(ctx context.Context) ([]model.CatalogItem, error) {
	return s.r.AreaOptions(ctx)
}

func (s *catalogService) CreateArea(ctx context.Context, actorID uuid.UUID, nombre string) (int64, error) {
	nombre = strings.TrimSpace(nombre)
	if len([]rune(nombre)) < 2 {
		return 0, Invalid(MsgInvalidName)
	}
	taken, err := s.r.AreaNameTaken(ctx, nombre, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, Invalid(msgAreaExists)
	}

	a := &model.Area{Nombre: nombre, Estatus: model.EstatusActive}
	if err := s.r.CreateArea(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, s.record(ctx, actorID, ActionCreate, a.ID, fmt.Sprintf("Creó área ID: %d, NOMBRE: %s", a.ID, a.Nombre))
}

func (s *catalogService) UpdateArea(ctx context.Context, actorID uuid.UUID, id int64, nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if id <= 0 || len([]rune(nombre)) < 2 {
		return Invalid(MsgMissingFields)
	}
	if _, err := s.r.GetArea(ctx, id); err != nil {
		return notFoundOr(err, msgAreaNotFound)
	}
	taken, err := s.r.AreaNameTaken(ctx, nombre, id)
	if err != nil {
		return err
	}
	if taken {
		return Invalid(msgAreaOtherName)
	}
	if err := s.r.RenameArea(ctx, id, nombre); err != nil {
		return notFoundOr(err, msgAreaNotFound)
	}
	return s.record(ctx, actorID, ActionUpdate, id, fmt.Sprintf("Actualizó área ID: %d, NOMBRE: %s", id, nombre))
}

func (s *catalogService) DeleteArea(ctx context.Context, actorID uuid.UUID, id int64) error {
	a, err := s.r.GetArea(ctx, id)
	if err != nil {
		return notFoundOr(err, msgAreaNotFound)
	}
	if err := s.r.SetAreaEstatus(ctx, id, model.EstatusInactive); err != nil {
		return notFoundOr(err, msgAreaNotFound)
	}
	return s.record(ctx, actorID, ActionDelete, id, fmt.Sprintf("Eliminó área ID: %d, NOMBRE: %s", id, a.Nombre))
}

func (s *catalogService) record(ctx context.Context, actorID uuid.UUID, action string, id int64, log string) error {
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     action,
		EntityType: "areas",
		EntityID:   strconv.FormatInt(id, 10),
		Log:        log,
	})
}

func (s *catalogService) Departamentos(ctx context.Context) ([]model.CatalogItem, error) {
	return s.r.ListDepartamentos(ctx)
}

func (s *catalogService) Municipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error) {
	return s.r.ListMunicipios(ctx, departamentoID)
}

func (s *catalogService) Niveles(ctx context.Context) ([]model.CatalogItem, error) {
	return s.r.ListNiveles(ctx)
}
