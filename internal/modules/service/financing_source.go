package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
)

const msgFinancingSourceNotFound = "Fuente de financiamiento no encontrada"

type FinancingSourceInput struct {
	Name        string
	Description string
}

func (in *FinancingSourceInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" || in.Description == "" {
		return Invalid(MsgMissingFields)
	}
	if utf8.RuneCountInString(in.Name) < 2 {
		return Invalid(MsgInvalidName)
	}
	if utf8.RuneCountInString(in.Description) < 5 {
		return Invalid(MsgInvalidDesc)
	}
	return nil
}

type FinancingSourceService interface {
	Create(ctx context.Context, actorID uuid.UUID, in FinancingSourceInput) (*model.FinancingSource, error)
	Get(ctx context.Context, id uuid.UUID) (*model.FinancingSource, error)
	List(ctx context.Context, p paging.Query) ([]model.FinancingSource, int64, error)
	Options(ctx context.Context) ([]model.FinancingSourceOption, error)
	Update(ctx context.Context, actorID, id uuid.UUID, in FinancingSourceInput) error
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type financingSourceService struct {
	r     repo.FinancingSourceRepo
	audit AuditService
}

func NewFinancingSourceService(r repo.FinancingSourceRepo, audit AuditService) FinancingSourceService {
	return &financingSourceService{r: r, audit: audit}
}

func (s *financingSourceService) Create(ctx context.Context, actorID uuid.UUID, in FinancingSourceInput) (*model.FinancingSource, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	taken, err := s.r.NameTaken(ctx, in.Name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Invalid("Fuente de financiamiento con este nombre ya existe")
	}

	fs := &model.FinancingSource{Name: in.Name, Description: in.Description}
	if err := s.r.Create(ctx, fs); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionCreate,
		EntityType: "financing_source",
		EntityID:   fs.ID.String(),
		Log:        fmt.Sprintf("Creó fuente de financiamiento ID: %s, NOMBRE: %s", fs.ID, fs.Name),
	}); err != nil {
		return nil, err
	}
	return fs, nil
}

func (s *financingSourceService) Get(ctx context.Context, id uuid.UUID) (*model.FinancingSource, error) {
	fs, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgFinancingSourceNotFound)
	}
	return fs, nil
}

func (s *financingSourceService) List(ctx context.Context, p paging.Query) ([]model.FinancingSource, int64, error) {
	return s.r.List(ctx, p)
}

func (s *financingSourceService) Options(ctx context.Context) ([]model.FinancingSourceOption, error) {
	return s.r.ListOptions(ctx)
}

func (s *financingSourceService) Update(ctx context.Context, actorID, id uuid.UUID, in FinancingSourceInput) error {
	if id == uuid.Nil {
		return Invalid(MsgMissingFields)
	}
	if err := in.normalize(); err != nil {
		return err
	}
	if _, err := s.r.Get(ctx, id); err != nil {
		return notFoundOr(err, msgFinancingSourceNotFound)
	}
	taken, err := s.r.NameTaken(ctx, in.Name, &id)
	if err != nil {
		return err
	}
	if taken {
		return Invalid("Otra fuente con este nombre ya existe")
	}

	if err := s.r.Update(ctx, &model.FinancingSource{ID: id, Name: in.Name, Description: in.Description}); err != nil {
		return notFoundOr(err, msgFinancingSourceNotFound)
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionUpdate,
		EntityType: "financing_source",
		EntityID:   id.String(),
		Log:        fmt.Sprintf("Actualizó fuente de financiamiento ID: %s, NOMBRE: %s", id, in.Name),
	})
}

func (s *financingSourceService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if id == uuid.Nil {
		return Invalid(MsgMissingFields)
	}
	fs, err := s.r.Get(ctx, id)
	if err != nil {
		return notFoundOr(err, msgFinancingSourceNotFound)
	}
	used, err := s.r.InUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return Invalid("La fuente de financiamiento está asignada a un proyecto")
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return notFoundOr(err, msgFinancingSourceNotFound)
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionDelete,
		EntityType: "financing_source",
		EntityID:   id.String(),
		Log:        fmt.Sprintf("Eliminó fuente de financiamiento ID: %s, NOMBRE: %s", id, fs.Name),
	})
}
