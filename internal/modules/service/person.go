package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/caderh/caderh-api/internal/infra/storage"
	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgInstructorNotFound = "Instructor no encontrado"
	msgEstudianteNotFound = "Estudiante no encontrado"
	msgNivelNotFound      = "Nivel de escolaridad no encontrado"
	msgIdentidadTaken     = "Ya existe un estudiante con esta identidad en el centro"
	msgInvalidDate        = "Fecha inválida"
	msgInvalidSexo        = "Sexo inválido"
	msgNoCV               = "El registro no tiene archivo"
)

// PersonInput is the body shared by instructor and student writes.
type PersonInput struct {
	CentroID        int64  `json:"centro_id"`
	DepartamentoID  *int64 `json:"departamento_id"`
	MunicipioID     *int64 `json:"municipio_id"`
	Identidad       string `json:"identidad"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Sexo            string `json:"sexo"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Direccion       string `json:"direccion"`
}

type InstructorInput struct {
	PersonInput
	Especialidad string `json:"especialidad"`
}

type EstudianteInput struct {
	PersonInput
	NivelEscolaridadID *int64 `json:"nivel_escolaridad_id"`
}

// personDeps groups what both person services need to validate and store files.
type personDeps struct {
	centros  repo.CentroRepo
	catalogs repo.CatalogRepo
	store    storage.Storage
	audit    AuditService
	maxBytes int64
	log      *zap.Logger
}

func (d personDeps) build(ctx context.Context, in PersonInput) (model.Person, error) {
	p := model.Person{
		CentroID:       in.CentroID,
		DepartamentoID: positive(in.DepartamentoID),
		MunicipioID:    positive(in.MunicipioID),
		Identidad:      strings.TrimSpace(in.Identidad),
		Nombre:         strings.TrimSpace(in.Nombre),
		Apellido:       strings.TrimSpace(in.Apellido),
		Sexo:           strings.ToUpper(strings.TrimSpace(in.Sexo)),
		Telefono:       strings.TrimSpace(in.Telefono),
		Email:          strings.TrimSpace(in.Email),
		Direccion:      strings.TrimSpace(in.Direccion),
	}
	if p.CentroID <= 0 || p.Identidad == "" || p.Nombre == "" || p.Apellido == "" {
		return p, Invalid(MsgMissingFields)
	}
	switch p.Sexo {
	case "", "M", "F":
	default:
		return p, Invalid(msgInvalidSexo)
	}
	if err := checkEmail(p.Email); err != nil {
		return p, err
	}
	if raw := strings.TrimSpace(in.FechaNacimiento); raw != "" {
		t, err := ParseDate(raw)
		if err != nil || t.After(time.Now()) {
			return p, Invalid(msgInvalidDate)
		}
		p.FechaNacimiento = &t
	}

	ok, err := d.centros.Exists(ctx, p.CentroID)
	if err != nil {
		return p, err
	}
	if !ok {
		return p, Invalid(msgCentroNotFound)
	}

	switch {
	case p.DepartamentoID != nil && p.MunicipioID != nil:
		if err := checkLocation(ctx, d.catalogs, *p.DepartamentoID, *p.MunicipioID); err != nil {
			return p, err
		}
	case p.DepartamentoID != nil:
		ok, err := d.catalogs.DepartamentoExists(ctx, *p.DepartamentoID)
		if err != nil {
			return p, err
		}
		if !ok {
			return p, Invalid(msgDepartamentoNotFound)
		}
	case p.MunicipioID != nil:
		return p, Invalid(MsgMissingFields)
	}
	return p, nil
}

func positive(v *int64) *int64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func (d personDeps) record(ctx context.Context, actorID uuid.UUID, action, entity string, id int64, log string) error {
	return d.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     action,
		EntityType: entity,
		EntityID:   strconv.FormatInt(id, 10),
		Log:        log,
	})
}

// replaceCV validates the upload, removes the previous file, stores the new one
// and then points the row at it.
func (d personDeps) replaceCV(ctx context.Context, fh *multipart.FileHeader, old string, keyFor func(ext string) string, setArchivo func(path string) error) (string, error) {
	ext, err := storage.ValidateUpload(fh, d.maxBytes)
	if err != nil {
		return "", uploadError(err, d.maxBytes)
	}
	if old != "" {
		if err := d.store.Delete(ctx, old); err != nil {
			d.log.Sugar().Warnw("delete previous cv", "key", old, "err", err)
		}
	}
	key := keyFor(ext)
	if err := saveUpload(ctx, d.store, fh, key); err != nil {
		return "", fmt.Errorf("store cv: %w", err)
	}
	if err := setArchivo(key); err != nil {
		return "", err
	}
	return key, nil
}

func (d personDeps) removeCV(ctx context.Context, old string, clear func() error) error {
	if old == "" {
		return NotFound(msgNoCV)
	}
	if err := clear(); err != nil {
		return err
	}
	if err := d.store.Delete(ctx, old); err != nil {
		d.log.Sugar().Warnw("delete cv object", "key", old, "err", err)
	}
	return nil
}

type InstructorService interface {
	List(ctx context.Context, centroID int64, p paging.Query) ([]model.Instructor, int64, error)
	Get(ctx context.Context, id int64) (*model.Instructor, error)
	Create(ctx context.Context, actorID uuid.UUID, in InstructorInput) (int64, error)
	Update(ctx context.Context, actorID uuid.UUID, id int64, in InstructorInput) error
	Delete(ctx context.Context, actorID uuid.UUID, id int64) error
	UploadCV(ctx context.Context, actorID uuid.UUID, id int64, fh *multipart.FileHeader) (string, error)
	DeleteCV(ctx context.Context, actorID uuid.UUID, id int64) error
}

type instructorService struct {
	personDeps
	r repo.InstructorRepo
}

func NewInstructorService(r repo.InstructorRepo, centros repo.CentroRepo, catalogs repo.CatalogRepo, store storage.Storage, audit AuditService, maxBytes int64, log *zap.Logger) InstructorService {
	return &instructorService{
		personDeps: personDeps{centros: centros, catalogs: catalogs, store: store, audit: audit, maxBytes: maxBytes, log: log},
		r:          r,
	}
}

func (s *instructorService) List(ctx context.Context, centroID int64, p paging.Query) ([]model.Instructor, int64, error) {
	return s.r.List(ctx, repo.PersonFilter{CentroID: centroID}, p)
}

func (s *instructorService) Get(ctx context.Context, id int64) (*model.Instructor, error) {
	i, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgInstructorNotFound)
	}
	return i, nil
}

func (s *instructorService) Create(ctx context.Context, actorID uuid.UUID, in InstructorInput) (int64, error) {
	p, err := s.build(ctx, in.PersonInput)
	if err != nil {
		return 0, err
	}
	p.Estatus = model.EstatusActive
	i := &model.Instructor{Person: p, Especialidad: strings.TrimSpace(in.Especialidad)}
	if err := s.r.Create(ctx, i); err != nil {
		return 0, err
	}
	return i.ID, s.record(ctx, actorID, ActionCreate, "instructores", i.ID,
		fmt.Sprintf("Creó instructor ID: %d, NOMBRE: %s %s", i.ID, p.Nombre, p.Apellido))
}

func (s *instructorService) Update(ctx context.Context, actorID uuid.UUID, id int64, in InstructorInput) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	p, err := s.build(ctx, in.PersonInput)
	if err != nil {
		return err
	}
	i := &model.Instructor{ID: id, Person: p, Especialidad: strings.TrimSpace(in.Especialidad)}
	if err := s.r.Update(ctx, i); err != nil {
		return notFoundOr(err, msgInstructorNotFound)
	}
	return s.record(ctx, actorID, ActionUpdate, "instructores", id,
		fmt.Sprintf("Actualizó instructor ID: %d, NOMBRE: %s %s", id, p.Nombre, p.Apellido))
}

func (s *instructorService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	i, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.r.SetEstatus(ctx, id, model.EstatusInactive); err != nil {
		return notFoundOr(err, msgInstructorNotFound)
	}
	return s.record(ctx, actorID, ActionDelete, "instructores", id,
		fmt.Sprintf("Eliminó instructor ID: %d, NOMBRE: %s %s", id, i.Nombre, i.Apellido))
}

func (s *instructorService) UploadCV(ctx context.Context, actorID uuid.UUID, id int64, fh *multipart.FileHeader) (string, error) {
	i, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	key, err := s.replaceCV(ctx, fh, i.Archivo,
		func(ext string) string { return storage.InstructorCVPath(id, ext) },
		func(path string) error { return s.r.SetArchivo(ctx, id, path) })
	if err != nil {
		return "", err
	}
	return key, s.record(ctx, actorID, ActionUpload, "instructores", id,
		fmt.Sprintf("Subió CV del instructor ID: %d", id))
}

func (s *instructorService) DeleteCV(ctx context.Context, actorID uuid.UUID, id int64) error {
	i, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.removeCV(ctx, i.Archivo, func() error { return s.r.SetArchivo(ctx, id, "") }); err != nil {
		return err
	}
	return s.record(ctx, actorID, ActionDelete, "instructores", id,
		fmt.Sprintf("Eliminó CV del instructor ID: %d", id))
}

type EstudianteService interface {
	List(ctx context.Context, centroID int64, p paging.Query) ([]model.Estudiante, int64, error)
	Get(ctx context.Context, id int64) (*model.Estudiante, error)
	Create(ctx context.Context, actorID uuid.UUID, in EstudianteInput) (int64, error)
	Update(ctx context.Context, actorID uuid.UUID, id int64, in EstudianteInput) error
	Delete(ctx context.Context, actorID uuid.UUID, id int64) error
	UploadCV(ctx context.Context, actorID uuid.UUID, id int64, fh *multipart.FileHeader) (string, error)
	DeleteCV(ctx context.Context, actorID uuid.UUID, id int64) error
}

type estudianteService struct {
	personDeps
	r repo.EstudianteRepo
}

func NewEstudianteService(r repo.EstudianteRepo, centros repo.CentroRepo, catalogs repo.CatalogRepo, store storage.Storage, audit AuditService, maxBytes int64, log *zap.Logger) EstudianteService {
	return &estudianteService{
		personDeps: personDeps{centros: centros, catalogs: catalogs, store: store, audit: audit, maxBytes: maxBytes, log: log},
		r:          r,
	}
}

func (s *estudianteService) List(ctx context.Context, centroID int64, p paging.Query) ([]model.Estudiante, int64, error) {
	return s.r.List(ctx, repo.PersonFilter{CentroID: centroID}, p)
}

func (s *estudianteService) Get(ctx context.Context, id int64) (*model.Estudiante, error) {
	e, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgEstudianteNotFound)
	}
	return e, nil
}

func (s *estudianteService) build(ctx context.Context, id int64, in EstudianteInput) (*model.Estudiante, error) {
	p, err := s.personDeps.build(ctx, in.PersonInput)
	if err != nil {
		return nil, err
	}
	nivel := positive(in.NivelEscolaridadID)
	if nivel != nil {
		ok, err := s.catalogs.NivelExists(ctx, *nivel)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, Invalid(msgNivelNotFound)
		}
	}
	taken, err := s.r.IdentidadTaken(ctx, p.Identidad, p.CentroID, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Invalid(msgIdentidadTaken)
	}
	return &model.Estudiante{ID: id, Person: p, NivelEscolaridadID: nivel}, nil
}

func (s *estudianteService) Create(ctx context.Context, actorID uuid.UUID, in EstudianteInput) (int64, error) {
	e, err := s.build(ctx, 0, in)
	if err != nil {
		return 0, err
	}
	e.Estatus = model.EstatusActive
	if err := s.r.Create(ctx, e); err != nil {
		// lost a race against a concurrent insert
		if isUniqueViolation(err) {
			return 0, Invalid(msgIdentidadTaken)
		}
		return 0, err
	}
	return e.ID, s.record(ctx, actorID, ActionCreate, "estudiantes", e.ID,
		fmt.Sprintf("Creó estudiante ID: %d, NOMBRE: %s %s", e.ID, e.Nombre, e.Apellido))
}

func (s *estudianteService) Update(ctx context.Context, actorID uuid.UUID, id int64, in EstudianteInput) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	e, err := s.build(ctx, id, in)
	if err != nil {
		return err
	}
	if err := s.r.Update(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return Invalid(msgIdentidadTaken)
		}
		return notFoundOr(err, msgEstudianteNotFound)
	}
	return s.record(ctx, actorID, ActionUpdate, "estudiantes", id,
		fmt.Sprintf("Actualizó estudiante ID: %d, NOMBRE: %s %s", id, e.Nombre, e.Apellido))
}

func (s *estudianteService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.r.SetEstatus(ctx, id, model.EstatusInactive); err != nil {
		return notFoundOr(err, msgEstudianteNotFound)
	}
	return s.record(ctx, actorID, ActionDelete, "estudiantes", id,
		fmt.Sprintf("Eliminó estudiante ID: %d, NOMBRE: %s %s", id, e.Nombre, e.Apellido))
}

func (s *estudianteService) UploadCV(ctx context.Context, actorID uuid.UUID, id int64, fh *multipart.FileHeader) (string, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	key, err := s.replaceCV(ctx, fh, e.Archivo,
		func(ext string) string { return storage.StudentCVPath(id, ext) },
		func(path string) error { return s.r.SetArchivo(ctx, id, path) })
	if err != nil {
		return "", err
	}
	return key, s.record(ctx, actorID, ActionUpload, "estudiantes", id,
		fmt.Sprintf("Subió CV del estudiante ID: %d", id))
}

func (s *estudianteService) DeleteCV(ctx context.Context, actorID uuid.UUID, id int64) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.removeCV(ctx, e.Archivo, func() error { return s.r.SetArchivo(ctx, id, "") }); err != nil {
		return err
	}
	return s.record(ctx, actorID, ActionDelete, "estudiantes", id,
		fmt.Sprintf("Eliminó CV del estudiante ID: %d", id))
}
