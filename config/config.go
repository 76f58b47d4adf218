package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"4545" validate:"min=1,max=65535"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	BotToken       string `env:"TELEGRAM_BOT_TOKEN,required" validate:"required"`
	BotAPIEndpoint string `env:"TELEGRAM_API_ENDPOINT" validate:"omitempty,url"`
	WebhookURL     string `env:"WEBHOOK_URL" validate:"omitempty,url"`

	MediaRoot       string `env:"MEDIA_ROOT" envDefault:"/media-server" validate:"required"`
	MoviesFolder    string `env:"MOVIES_FOLDER" envDefault:"Movies"`
	ShowsFolder     string `env:"SHOWS_FOLDER" envDefault:"Shows"`
	GeneralFolder   string `env:"GENERAL_FOLDER" envDefault:"General"`
	MoviesPath      string `env:"MOVIES_PATH"`
	ShowsPath       string `env:"SHOWS_PATH"`
	GeneralPath     string `env:"GENERAL_PATH"`
	HostMediaPrefix string `env:"HOST_MEDIA_PREFIX"`

	UseClassifier bool          `env:"USE_VIDEO_CLASSIFIER" envDefault:"false"`
	TMDBToken     string        `env:"TMDB_API_TOKEN"`
	TMDBBaseURL   string        `env:"TMDB_BASE_URL" envDefault:"https://api.themoviedb.org/3" validate:"url"`
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"20s" validate:"gt=0"`
	TitleCacheTTL time.Duration `env:"TITLE_CACHE_TTL" envDefault:"24h"`

	BotAPIDataDir  string `env:"BOT_API_DATA_DIR" envDefault:"/var/lib/telegram-bot-api"`
	SharedFilesDir string `env:"SHARED_FILES_DIR" envDefault:"/app/telegram-server/shared"`

	DataDir          string        `env:"DATA_DIR" envDefault:"/data"`
	QueueBackend     string        `env:"QUEUE_BACKEND" envDefault:"sqlite" validate:"oneof=sqlite redis"`
	RedisAddr        string        `env:"REDIS_ADDR" validate:"required_if=QueueBackend redis"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
	WorkerCount      int           `env:"WORKER_COUNT" envDefault:"2" validate:"min=1"`
	QueueMaxAttempts int           `env:"QUEUE_MAX_ATTEMPTS" envDefault:"3" validate:"min=1"`
	QueueBackoff     time.Duration `env:"QUEUE_BACKOFF" envDefault:"3s" validate:"gt=0"`

	PendingTTL    time.Duration `env:"PENDING_TTL" envDefault:"1h"`
	SweepSchedule string        `env:"SWEEP_SCHEDULE" envDefault:"@every 1m" validate:"required"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		return name
	})
	return v
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid %s: failed %q rule", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("validate config: %w", err)
}

func (c *Config) MoviesRoot() string {
	return c.root(c.MoviesPath, c.MoviesFolder)
}

func (c *Config) ShowsRoot() string {
	return c.root(c.ShowsPath, c.ShowsFolder)
}

func (c *Config) GeneralRoot() string {
	return c.root(c.GeneralPath, c.GeneralFolder)
}

func (c *Config) root(override, folder string) string {
	if override != "" {
		return filepath.Clean(override)
	}
	return filepath.Join(c.MediaRoot, folder)
}
