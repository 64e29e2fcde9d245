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
	msgCentroNotFound       = "Centro no encontrado"
	msgDepartamentoNotFound = "Departamento no encontrado"
	msgMunicipioNotFound    = "Municipio no encontrado"
	msgMunicipioMismatch    = "El municipio no pertenece al departamento"
	msgInvalidEmail         = "Correo electrónico inválido"
)

type CentroInput struct {
	Siglas         string `json:"siglas"`
	Codigo         string `json:"codigo"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion"`
	DepartamentoID int64  `json:"departamento_id"`
	MunicipioID    int64  `json:"municipio_id"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
	NombreDirector string `json:"nombre_director"`
}

type CentroService interface {
	// List shows active centros unless estatus is EstatusInactive.
	List(ctx context.Context, estatus int16, p paging.Query) ([]model.Centro, int64, error)
	Options(ctx context.Context) ([]model.CatalogItem, error)
	Get(ctx context.Context, id int64) (*model.Centro, error)
	Create(ctx context.Context, actorID uuid.UUID, in CentroInput) (int64, error)
	Update(ctx context.Context, actorID uuid.UUID, id int64, in CentroInput) error
	Delete(ctx context.Context, actorID uuid.UUID, id int64) error
}

type centroService struct {
	r        repo.CentroRepo
	catalogs repo.CatalogRepo
	audit    AuditService
}

func NewCentroService(r repo.CentroRepo, catalogs repo.CatalogRepo, audit AuditService) CentroService {
	return &centroService{r: r, catalogs: catalogs, audit: audit}
}

// checkEmail accepts an empty address.
func checkEmail(email string) error {
	if email == "" {
		return nil
	}
	if !validEmail(email) {
		return Invalid(msgInvalidEmail)
	}
	return nil
}

// checkLocation verifies the departamento and that the municipio belongs to it.
func checkLocation(ctx context.Context, catalogs repo.CatalogRepo, departamentoID, municipioID int64) error {
	ok, err := catalogs.DepartamentoExists(ctx, departamentoID)
	if err != nil {
		return err
	}
	if !ok {
		return Invalid(msgDepartamentoNotFound)
	}
	m, err := catalogs.GetMunicipio(ctx, municipioID)
	if err != nil {
		if isNotFound(err) {
			return Invalid(msgMunicipioNotFound)
		}
		return err
	}
	if m.DepartamentoID != departamentoID {
		return Invalid(msgMunicipioMismatch)
	}
	return nil
}

func (s *centroService) build(ctx context.Context, in CentroInput) (*model.Centro, error) {
	c := &model.Centro{
		Siglas:         strings.TrimSpace(in.Siglas),
		Codigo:         strings.TrimSpace(in.Codigo),
		Nombre:         strings.TrimSpace(in.Nombre),
		Descripcion:    strings.TrimSpace(in.Descripcion),
		DepartamentoID: in.DepartamentoID,
		MunicipioID:    in.MunicipioID,
		Direccion:      strings.TrimSpace(in.Direccion),
		Telefono:       strings.TrimSpace(in.Telefono),
		Email:          strings.TrimSpace(in.Email),
		NombreDirector: strings.TrimSpace(in.NombreDirector),
	}
	if c.DepartamentoID <= 0 || c.MunicipioID <= 0 {
		return nil, Invalid(MsgMissingFields)
	}
	if len([]rune(c.Nombre)) < 2 {
		return nil, Invalid(MsgInvalidName)
	}
	if err := checkEmail(c.Email); err != nil {
		return nil, err
	}
	if err := checkLocation(ctx, s.catalogs, c.DepartamentoID, c.MunicipioID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *centroService) List(ctx context.Context, estatus int16, p paging.Query) ([]model.Centro, int64, error) {
	if estatus != model.EstatusInactive {
		estatus = model.EstatusActive
	}
	return s.r.List(ctx, repo.CentroListFilter{Estatus: estatus}, p)
}

func (s *centroService) Options(ctx context.Context) ([]model.CatalogItem, error) {
	return s.r.Options(ctx)
}

func (s *centroService) Get(ctx context.Context, id int64) (*model.Centro, error) {
	c, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgCentroNotFound)
	}
	return c, nil
}

func (s *centroService) Create(ctx context.Context, actorID uuid.UUID, in CentroInput) (int64, error) {
	c, err := s.build(ctx, in)
	if err != nil {
		return 0, err
	}
	c.Estatus = model.EstatusActive
	if err := s.r.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, s.record(ctx, actorID, ActionCreate, c.ID, fmt.Sprintf("Creó centro ID: %d, NOMBRE: %s", c.ID, c.Nombre))
}

func (s *centroService) Update(ctx context.Context, actorID uuid.UUID, id int64, in CentroInput) error {
	if _, err := s.r.Get(ctx, id); err != nil {
		return notFoundOr(err, msgCentroNotFound)
	}
	c, err := s.build(ctx, in)
	if err != nil {
		return err
	}
	c.ID = id
	if err := s.r.Update(ctx, c); err != nil {
		return notFoundOr(err, msgCentroNotFound)
	}
	return s.record(ctx, actorID, ActionUpdate, id, fmt.Sprintf("Actualizó centro ID: %d, NOMBRE: %s", id, c.Nombre))
}

func (s *centroService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	c, err := s.r.Get(ctx, id)
	if err != nil {
		return notFoundOr(err, msgCentroNotFound)
	}
	if err := s.r.SetEstatus(ctx, id, model.EstatusInactive); err != nil {
		return notFoundOr(err, msgCentroNotFound)
	}
	return s.record(ctx, actorID, ActionDelete, id, fmt.Sprintf("Eliminó centro ID: %d, NOMBRE: %s", id, c.Nombre))
}

func (s *centroService) record(ctx context.Context, actorID uuid.UUID, action string, id int64, log string) error {
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     action,
		EntityType: "centros",
		EntityID:   strconv.FormatInt(id, 10),
		Log:        log,
	})
}
