package service

import (
	"context"
	"fmt"
	"time"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionArchive  = "archive"
	ActionUpload   = "upload"
	ActionPassword = "password"
)

type AuditEvent struct {
	ActorID    uuid.UUID              `json:"actor_id"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	ProjectID  *uuid.UUID             `json:"project_id,omitempty"`
	Log        string                 `json:"log"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedDt  time.Time              `json:"created_dt"`
}

// EventPublisher is satisfied by *queue.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v interface{}) error
}

type AuditService interface {
	Record(ctx context.Context, ev AuditEvent) error
	ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error)
	ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error)
}

type auditService struct {
	r   repo.AuditRepo
	pub EventPublisher
	log *zap.Logger
}

func NewAuditService(r repo.AuditRepo, pub EventPublisher, log *zap.Logger) AuditService {
	return &auditService{r: r, pub: pub, log: log}
}

func (s *auditService) Record(ctx context.Context, ev AuditEvent) error {
	ul := &model.UserLog{
		UserID:     ev.ActorID,
		Log:        ev.Log,
		Action:     ev.Action,
		EntityType: ev.EntityType,
		EntityID:   ev.EntityID,
	}
	if len(ev.Details) > 0 {
		ul.Details = datatypes.JSONMap(ev.Details)
	}

	var pl *model.ProjectLog
	if ev.ProjectID != nil {
		pl = &model.ProjectLog{
			ProjectID: *ev.ProjectID,
			UserID:    ev.ActorID,
			Log:       ev.Log,
			Action:    ev.Action,
		}
	}

	if err := s.r.Create(ctx, ul, pl); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}

	if s.pub != nil {
		ev.CreatedDt = ul.CreatedDt
		key := "audit." + ev.EntityType + "." + ev.Action
		if err := s.pub.PublishJSON(ctx, key, ev); err != nil {
			s.log.Sugar().Warnw("publish audit event", "routing_key", key, "err", err)
		}
	}
	return nil
}

func (s *auditService) ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error) {
	return s.r.ListUserLogs(ctx, userID, p)
}

func (s *auditService) ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	return s.r.ListProjectLogs(ctx, projectID, p)
}
