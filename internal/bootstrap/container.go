package bootstrap

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/caderh/caderh-api/internal/config"
	"github.com/caderh/caderh-api/internal/infra/blob"
	"github.com/caderh/caderh-api/internal/infra/cache"
	"github.com/caderh/caderh-api/internal/infra/db"
	"github.com/caderh/caderh-api/internal/infra/logger"
	"github.com/caderh/caderh-api/internal/infra/mailer"
	"github.com/caderh/caderh-api/internal/infra/queue"
	"github.com/caderh/caderh-api/internal/infra/storage"
	"github.com/caderh/caderh-api/internal/modules/handler"
	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/modules/service"
	"github.com/caderh/caderh-api/internal/pkg/tokens"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d, model.All(), model.ExtraIndexes); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, nil when not configured
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		return cache.New(do.MustInvoke[*config.Config](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*redis_rate.Limiter, error) {
		rdb := do.MustInvoke[*redis.Client](i)
		if rdb == nil {
			return nil, nil
		}
		return redis_rate.NewLimiter(rdb), nil
	})

	// RabbitMQ, nil when not configured
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Exchange,
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// file storage
	do.Provide(inj, func(i *do.Injector) (storage.Storage, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Storage.Driver == "s3" {
			deps, err := blob.NewS3(context.Background(), cfg)
			if err != nil {
				return nil, err
			}
			return storage.NewS3(deps, ""), nil
		}
		return storage.NewLocal(cfg.Storage.Root)
	})

	do.Provide(inj, func(i *do.Injector) (mailer.Mailer, error) {
		return mailer.New(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide(inj, func(i *do.Injector) (*tokens.Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return tokens.NewManager(
			cfg.JWT.Secret,
			time.Duration(cfg.JWT.ExpireHours)*time.Hour,
			time.Duration(cfg.JWT.ResetExpireMinutes)*time.Minute,
		)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AuditRepo, error) {
		return repo.NewAuditRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.FinancingSourceRepo, error) {
		return repo.NewFinancingSourceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectItemRepo, error) {
		return repo.NewProjectItemRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectFileRepo, error) {
		return repo.NewProjectFileRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CatalogRepo, error) {
		return repo.NewCatalogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CentroRepo, error) {
		return repo.NewCentroRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InstructorRepo, error) {
		return repo.NewInstructorRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.EstudianteRepo, error) {
		return repo.NewEstudianteRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CursoRepo, error) {
		return repo.NewCursoRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuditService, error) {
		return service.NewAuditService(
			do.MustInvoke[repo.AuditRepo](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*tokens.Manager](i),
			do.MustInvoke[mailer.Mailer](i),
			do.MustInvoke[service.AuditService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FinancingSourceService, error) {
		return service.NewFinancingSourceService(
			do.MustInvoke[repo.FinancingSourceRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectItemService, error) {
		return service.NewProjectItemService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ProjectItemRepo](i),
			do.MustInvoke[repo.FinancingSourceRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AttachmentService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAttachmentService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ProjectFileRepo](i),
			do.MustInvoke[storage.Storage](i),
			do.MustInvoke[service.AuditService](i),
			cfg.MaxUploadBytes(),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CentroService, error) {
		return service.NewCentroService(
			do.MustInvoke[repo.CentroRepo](i),
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InstructorService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewInstructorService(
			do.MustInvoke[repo.InstructorRepo](i),
			do.MustInvoke[repo.CentroRepo](i),
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[storage.Storage](i),
			do.MustInvoke[service.AuditService](i),
			cfg.MaxUploadBytes(),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EstudianteService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewEstudianteService(
			do.MustInvoke[repo.EstudianteRepo](i),
			do.MustInvoke[repo.CentroRepo](i),
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[storage.Storage](i),
			do.MustInvoke[service.AuditService](i),
			cfg.MaxUploadBytes(),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CursoService, error) {
		return service.NewCursoService(
			do.MustInvoke[repo.CursoRepo](i),
			do.MustInvoke[repo.CentroRepo](i),
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.UserService](i), do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AdminHandler, error) {
		return handler.NewAdminHandler(
			do.MustInvoke[service.UserService](i),
			do.MustInvoke[service.AuditService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FinancingSourceHandler, error) {
		return handler.NewFinancingSourceHandler(do.MustInvoke[service.FinancingSourceService](i), do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.UserService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.WizardHandler, error) {
		return handler.NewWizardHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.ProjectItemService](i),
			do.MustInvoke[service.AttachmentService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FileHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		h := handler.NewFileHandler(do.MustInvoke[service.AttachmentService](i), do.MustInvoke[*zap.Logger](i))
		if signer, ok := do.MustInvoke[storage.Storage](i).(storage.URLSigner); ok {
			h.WithSigner(signer, time.Duration(cfg.S3.PresignExpireSec)*time.Second)
		}
		return h, nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CentrosHandler, error) {
		return handler.NewCentrosHandler(
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[service.CentroService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PeopleHandler, error) {
		return handler.NewPeopleHandler(
			do.MustInvoke[service.InstructorService](i),
			do.MustInvoke[service.EstudianteService](i),
			do.MustInvoke[service.CursoService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	return inj
}
