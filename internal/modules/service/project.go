package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectCoreInput struct {
	ProjectID       *uuid.UUID
	Name            string
	Description     string
	Objectives      string
	StartDate       string
	EndDate         string
	Accomplishments []interface{}
	ProjectCategory string
	AssignedAgentID *uuid.UUID
}

type ProjectService interface {
	List(ctx context.Context, status string, p paging.Query) ([]model.Project, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	Archive(ctx context.Context, actorID, id uuid.UUID) error
	UpdateAccomplishments(ctx context.Context, actorID, id uuid.UUID, raw []interface{}) error
	// SaveCore creates a project, or updates it when in.ProjectID is set.
	SaveCore(ctx context.Context, actorID uuid.UUID, in ProjectCoreInput) (uuid.UUID, error)
	ListAgents(ctx context.Context, id uuid.UUID) ([]model.UserOption, error)
	ReplaceAgents(ctx context.Context, actorID, id uuid.UUID, userIDs []string) error
	ListLogs(ctx context.Context, id uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error)
	// CanAccess is true for ADMIN and MANAGER, and for USER when assigned to the project.
	CanAccess(ctx context.Context, projectID, userID uuid.UUID, role string) (bool, error)
}

type projectService struct {
	r     repo.ProjectRepo
	users repo.UserRepo
	audit AuditService
}

func NewProjectService(r repo.ProjectRepo, users repo.UserRepo, audit AuditService) ProjectService {
	return &projectService{r: r, users: users, audit: audit}
}

// ParseDate accepts YYYY-MM-DD and RFC3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FilterAccomplishments keeps entries shaped {text: string, completed: bool}, trimming the text.
func FilterAccomplishments(raw []interface{}) []model.Accomplishment {
	out := make([]model.Accomplishment, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		text, ok := m["text"].(string)
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		completed, ok := m["completed"].(bool)
		if !ok {
			continue
		}
		out = append(out, model.Accomplishment{Text: strings.TrimSpace(text), Completed: completed})
	}
	return out
}

func (s *projectService) ensure(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, MsgProjectNotFound)
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, status string, p paging.Query) ([]model.Project, int64, error) {
	if strings.ToUpper(status) == model.ProjectArchived {
		status = model.ProjectArchived
	} else {
		status = model.ProjectActive
	}
	return s.r.List(ctx, status, p)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.ensure(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	p, err := s.ensure(ctx, id)
	if err != nil {
		return err
	}
	if err := s.r.SetStatus(ctx, id, model.ProjectDeleted); err != nil {
		return notFoundOr(err, MsgProjectNotFound)
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionDelete,
		EntityType: "project",
		EntityID:   id.String(),
		ProjectID:  &id,
		Log:        fmt.Sprintf("Eliminó proyecto ID: %s, NOMBRE: %s", id, p.Name),
	})
}

func (s *projectService) Archive(ctx context.Context, actorID, id uuid.UUID) error {
	p, err := s.ensure(ctx, id)
	if err != nil {
		return err
	}
	if p.ProjectStatus != model.ProjectActive {
		return Invalid("Solo se pueden archivar proyectos activos")
	}
	if err := s.r.SetStatus(ctx, id, model.ProjectArchived); err != nil {
		return notFoundOr(err, MsgProjectNotFound)
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionArchive,
		EntityType: "project",
		EntityID:   id.String(),
		ProjectID:  &id,
		Log:        fmt.Sprintf("Archivó proyecto ID: %s, NOMBRE: %s", id, p.Name),
	})
}

func (s *projectService) UpdateAccomplishments(ctx context.Context, actorID, id uuid.UUID, raw []interface{}) error {
	if _, err := s.ensure(ctx, id); err != nil {
		return err
	}
	if err := s.r.SetAccomplishments(ctx, id, FilterAccomplishments(raw)); err != nil {
		return notFoundOr(err, MsgProjectNotFound)
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionUpdate,
		EntityType: "project",
		EntityID:   id.String(),
		ProjectID:  &id,
		Log:        fmt.Sprintf("Actualizó logros del proyecto ID: %s", id),
	})
}

func (s *projectService) SaveCore(ctx context.Context, actorID uuid.UUID, in ProjectCoreInput) (uuid.UUID, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	objectives := strings.TrimSpace(in.Objectives)
	if name == "" || description == "" || objectives == "" || strings.TrimSpace(in.StartDate) == "" || strings.TrimSpace(in.EndDate) == "" {
		return uuid.Nil, Invalid(MsgMissingFields)
	}
	if utf8.RuneCountInString(name) < 2 {
		return uuid.Nil, Invalid(MsgInvalidName)
	}
	start, err := ParseDate(in.StartDate)
	if err != nil {
		return uuid.Nil, Invalid("Fechas inválidas")
	}
	end, err := ParseDate(in.EndDate)
	if err != nil || start.After(end) {
		return uuid.Nil, Invalid("Fechas inválidas")
	}

	if in.AssignedAgentID != nil {
		agents, err := s.users.ListByIDs(ctx, []uuid.UUID{*in.AssignedAgentID}, model.RoleUser)
		if err != nil {
			return uuid.Nil, err
		}
		if len(agents) == 0 {
			return uuid.Nil, Invalid("El usuario seleccionado no existe")
		}
	}

	p := &model.Project{
		Name:            name,
		Description:     description,
		Objectives:      objectives,
		StartDate:       start,
		EndDate:         end,
		Accomplishments: datatypes.NewJSONSlice(FilterAccomplishments(in.Accomplishments)),
		ProjectCategory: strings.TrimSpace(in.ProjectCategory),
		AssignedAgentID: in.AssignedAgentID,
	}

	if in.ProjectID != nil {
		if _, err := s.ensure(ctx, *in.ProjectID); err != nil {
			return uuid.Nil, err
		}
		p.ID = *in.ProjectID
		if err := s.r.UpdateCore(ctx, p); err != nil {
			return uuid.Nil, notFoundOr(err, MsgProjectNotFound)
		}
		return p.ID, s.audit.Record(ctx, AuditEvent{
			ActorID:    actorID,
			Action:     ActionUpdate,
			EntityType: "project",
			EntityID:   p.ID.String(),
			ProjectID:  &p.ID,
			Log:        fmt.Sprintf("Actualizó proyecto ID: %s, NOMBRE: %s", p.ID, p.Name),
		})
	}

	p.ProjectStatus = model.ProjectActive
	if err := s.r.Create(ctx, p); err != nil {
		return uuid.Nil, err
	}
	return p.ID, s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionCreate,
		EntityType: "project",
		EntityID:   p.ID.String(),
		ProjectID:  &p.ID,
		Log:        fmt.Sprintf("Creó proyecto ID: %s, NOMBRE: %s", p.ID, p.Name),
	})
}

func (s *projectService) ListAgents(ctx context.Context, id uuid.UUID) ([]model.UserOption, error) {
	if _, err := s.ensure(ctx, id); err != nil {
		return nil, err
	}
	return s.r.ListAgents(ctx, id)
}

func (s *projectService) ReplaceAgents(ctx context.Context, actorID, id uuid.UUID, userIDs []string) error {
	if _, err := s.ensure(ctx, id); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(userIDs))
	seen := make(map[uuid.UUID]bool, len(userIDs))
	for _, raw := range userIDs {
		uid, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return Invalid("El usuario seleccionado no existe")
		}
		if !seen[uid] {
			seen[uid] = true
			ids = append(ids, uid)
		}
	}
	found, err := s.users.ListByIDs(ctx, ids, model.RoleUser)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return Invalid("El usuario seleccionado no existe")
	}

	if err := s.r.ReplaceAgents(ctx, id, ids); err != nil {
		return err
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionUpdate,
		EntityType: "project_agents",
		EntityID:   id.String(),
		ProjectID:  &id,
		Log:        fmt.Sprintf("Actualizó agentes del proyecto ID: %s", id),
		Details:    map[string]interface{}{"count": len(ids)},
	})
}

func (s *projectService) ListLogs(ctx context.Context, id uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	if _, err := s.ensure(ctx, id); err != nil {
		return nil, 0, err
	}
	return s.audit.ListProjectLogs(ctx, id, p)
}

func (s *projectService) CanAccess(ctx context.Context, projectID, userID uuid.UUID, role string) (bool, error) {
	switch role {
	case model.RoleAdmin, model.RoleManager:
		return true, nil
	case model.RoleUser:
		return s.r.IsMember(ctx, projectID, userID)
	}
	return false, nil
}
