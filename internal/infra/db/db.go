package db

import (
	"errors"
	"time"

	"github.com/caderh/caderh-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, errors.New("database.dsn is empty")
	}

	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: false,
	}
	if cfg.App.Env == "debug" {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return d, nil
}

// EnsureSchemas creates the postgres schemas the models live in.
func EnsureSchemas(d *gorm.DB) error {
	for _, s := range []string{"caderh", "centros"} {
		if err := d.Exec("CREATE SCHEMA IF NOT EXISTS " + s).Error; err != nil {
			return err
		}
	}
	return nil
}

// RegisterOpenTelemetryPlugin adds gorm spans; call after the tracer provider is set.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

// Migrate creates schemas, tables and the raw indexes. Development only.
func Migrate(d *gorm.DB, models []interface{}, indexes []string) error {
	if err := EnsureSchemas(d); err != nil {
		return err
	}
	if err := d.AutoMigrate(models...); err != nil {
		return err
	}
	for _, stmt := range indexes {
		if err := d.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
