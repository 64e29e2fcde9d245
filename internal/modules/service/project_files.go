package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/caderh/caderh-api/internal/infra/storage"
	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadInput struct {
	File *multipart.FileHeader
	// Filename optionally renames the stored object; the extension is always taken from File.
	Filename    string
	Description string
}

// Download is an opened stored object; the caller closes Body.
type Download struct {
	Body        io.ReadCloser
	Name        string
	Size        int64
	ContentType string
}

type AttachmentService interface {
	List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFile, error)
	Upload(ctx context.Context, actorID, projectID uuid.UUID, in UploadInput) (uuid.UUID, error)
	Delete(ctx context.Context, actorID, projectID, fileID uuid.UUID) error
	Open(ctx context.Context, projectID, fileID uuid.UUID) (*Download, error)
	OpenPath(ctx context.Context, rel string) (*Download, error)
}

type attachmentService struct {
	projects repo.ProjectRepo
	files    repo.ProjectFileRepo
	store    storage.Storage
	audit    AuditService
	maxBytes int64
	log      *zap.Logger
}

func NewAttachmentService(projects repo.ProjectRepo, files repo.ProjectFileRepo, store storage.Storage, audit AuditService, maxBytes int64, log *zap.Logger) AttachmentService {
	return &attachmentService{projects: projects, files: files, store: store, audit: audit, maxBytes: maxBytes, log: log}
}

// uploadError turns storage validation errors into client messages.
func uploadError(err error, maxBytes int64) error {
	switch {
	case errors.Is(err, storage.ErrMissingFile):
		return Invalid(MsgMissingFile)
	case errors.Is(err, storage.ErrExtNotAllowed):
		return Invalid(MsgFileType)
	case errors.Is(err, storage.ErrFileTooLarge):
		return Invalid(fmt.Sprintf("Archivo excede el tamaño máximo de %dMB", maxBytes/(1024*1024)))
	}
	return err
}

// saveUpload streams the multipart file to key.
func saveUpload(ctx context.Context, store storage.Storage, fh *multipart.FileHeader, key string) error {
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return store.Save(ctx, key, f, fh.Size, fh.Header.Get("Content-Type"))
}

func (s *attachmentService) ensure(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return notFoundOr(err, MsgProjectNotFound)
	}
	return nil
}

func (s *attachmentService) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFile, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return nil, err
	}
	return s.files.List(ctx, projectID)
}

func (s *attachmentService) Upload(ctx context.Context, actorID, projectID uuid.UUID, in UploadInput) (uuid.UUID, error) {
	if _, err := storage.ValidateUpload(in.File, s.maxBytes); err != nil {
		return uuid.Nil, uploadError(err, s.maxBytes)
	}
	if err := s.ensure(ctx, projectID); err != nil {
		return uuid.Nil, err
	}

	key, err := storage.ProjectFilePath(projectID, in.Filename, in.File.Filename, func(k string) (bool, error) {
		return s.store.Exists(ctx, k)
	})
	if err != nil {
		return uuid.Nil, err
	}
	if err := saveUpload(ctx, s.store, in.File, key); err != nil {
		return uuid.Nil, fmt.Errorf("store project file: %w", err)
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = path.Base(key)
	}
	row := &model.ProjectFile{ProjectID: projectID, File: key, Description: desc}
	if err := s.files.Create(ctx, row); err != nil {
		if derr := s.store.Delete(ctx, key); derr != nil {
			s.log.Sugar().Warnw("remove orphaned upload", "key", key, "err", derr)
		}
		return uuid.Nil, err
	}

	err = s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionUpload,
		EntityType: "project_files",
		EntityID:   row.ID.String(),
		ProjectID:  &projectID,
		Log:        fmt.Sprintf("Subió archivo al proyecto ID: %s, archivo: %s", projectID, path.Base(key)),
		Details:    map[string]interface{}{"file": key},
	})
	return row.ID, err
}

// Delete drops the row before the object: a stray object is harmless, a row
// pointing at nothing is not.
func (s *attachmentService) Delete(ctx context.Context, actorID, projectID, fileID uuid.UUID) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	f, err := s.files.Get(ctx, projectID, fileID)
	if err != nil {
		return notFoundOr(err, MsgFileNotFound)
	}
	if err := s.files.Delete(ctx, projectID, fileID); err != nil {
		return notFoundOr(err, MsgFileNotFound)
	}
	if err := s.store.Delete(ctx, f.File); err != nil {
		s.log.Sugar().Warnw("delete project file object", "key", f.File, "err", err)
	}

	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionDelete,
		EntityType: "project_files",
		EntityID:   fileID.String(),
		ProjectID:  &projectID,
		Log:        fmt.Sprintf("Eliminó archivo del proyecto ID: %s, archivo: %s", projectID, path.Base(f.File)),
	})
}

func (s *attachmentService) Open(ctx context.Context, projectID, fileID uuid.UUID) (*Download, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return nil, err
	}
	f, err := s.files.Get(ctx, projectID, fileID)
	if err != nil {
		return nil, notFoundOr(err, MsgFileNotFound)
	}
	return s.open(ctx, f.File)
}

func (s *attachmentService) OpenPath(ctx context.Context, rel string) (*Download, error) {
	key, err := storage.CleanKey(rel)
	if err != nil {
		return nil, Invalid("Ruta inválida")
	}
	return s.open(ctx, key)
}

func (s *attachmentService) open(ctx context.Context, key string) (*Download, error) {
	body, info, err := s.store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NotFound(MsgFileNotFound)
		}
		if errors.Is(err, storage.ErrInvalidPath) {
			return nil, Invalid("Ruta inválida")
		}
		return nil, err
	}
	return &Download{Body: body, Name: path.Base(key), Size: info.Size, ContentType: info.ContentType}, nil
}
