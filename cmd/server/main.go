package main

//	@title			CADERH API
//	@version		1.0
//	@description	Administrative API for CADERH projects, financing and training centres.
//	@schemes		http https
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token, e.g. "Bearer eyJ..."

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/caderh/caderh-api/internal/bootstrap"
	"github.com/caderh/caderh-api/internal/config"
	"github.com/caderh/caderh-api/internal/infra/cache"
	dbpkg "github.com/caderh/caderh-api/internal/infra/db"
	"github.com/caderh/caderh-api/internal/infra/queue"
	"github.com/caderh/caderh-api/internal/modules/handler"
	"github.com/caderh/caderh-api/internal/modules/service"
	"github.com/caderh/caderh-api/internal/pkg/tokens"
	"github.com/caderh/caderh-api/internal/router"
	"github.com/caderh/caderh-api/internal/telemetry"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// plugins need the tracer provider in place
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin", "err", err)
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin", "err", err)
		}
	}

	if rdb == nil {
		log.Sugar().Warn("redis not configured, auth rate limiting disabled")
	}
	if pub := do.MustInvoke[*queue.Publisher](inj); pub == nil {
		log.Sugar().Info("rabbitmq not configured, audit events are stored only")
	} else {
		defer func() {
			_ = pub.Close()
			if conn := do.MustInvoke[*amqp.Connection](inj); conn != nil {
				_ = conn.Close()
			}
		}()
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:                 cfg,
		Log:                    log,
		Limiter:                do.MustInvoke[*redis_rate.Limiter](inj),
		Tokens:                 do.MustInvoke[*tokens.Manager](inj),
		Access:                 do.MustInvoke[service.ProjectService](inj),
		AuthHandler:            do.MustInvoke[*handler.AuthHandler](inj),
		AdminHandler:           do.MustInvoke[*handler.AdminHandler](inj),
		FinancingSourceHandler: do.MustInvoke[*handler.FinancingSourceHandler](inj),
		ProjectHandler:         do.MustInvoke[*handler.ProjectHandler](inj),
		WizardHandler:          do.MustInvoke[*handler.WizardHandler](inj),
		FileHandler:            do.MustInvoke[*handler.FileHandler](inj),
		CentrosHandler:         do.MustInvoke[*handler.CentrosHandler](inj),
		PeopleHandler:          do.MustInvoke[*handler.PeopleHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr, "storage", cfg.Storage.Driver)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
