package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type JWTCfg struct {
	Secret             string
	ExpireHours        int
	ResetExpireMinutes int
}

type StorageCfg struct {
	// Driver is either "local" or "s3".
	Driver      string
	Root        string
	MaxUploadMB int
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type RateLimitCfg struct {
	AuthPerMinute int
}

type MQCfg struct {
	URL      string
	Exchange string
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
}

type MailCfg struct {
	SendgridApiKey string
	From           string
	FromName       string
	SiteURL        string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type CorsCfg struct {
	AllowOrigins []string
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Database  DBCfg
	JWT       JWTCfg
	Storage   StorageCfg
	Redis     RedisCfg
	RateLimit RateLimitCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Mail      MailCfg
	Telemetry TelemetryCfg
	Cors      CorsCfg
}

// MaxUploadBytes is the upload cap derived from storage.maxUploadMB.
func (c *Config) MaxUploadBytes() int64 {
	mb := c.Storage.MaxUploadMB
	if mb <= 0 {
		mb = 10
	}
	return int64(mb) * 1024 * 1024
}

func Load() (*Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} references once before parsing
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// no config file, env + defaults only
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "caderh-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "127.0.0.1")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.maxOpen", 50)
	v.SetDefault("database.maxIdle", 10)
	v.SetDefault("database.autoMigrate", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expireHours", 24)
	v.SetDefault("jwt.resetExpireMinutes", 15)
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.root", "files")
	v.SetDefault("storage.maxUploadMB", 10)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rateLimit.authPerMinute", 10)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "caderh.audit")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("mail.sendgridApiKey", "")
	v.SetDefault("mail.fromName", "CADERH")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.sampleRatio", 1.0)
	v.SetDefault("cors.allowOrigins", []string{"*"})
}
