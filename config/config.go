package config

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ritikraj2425/mergeflow/internal/domain"
)

type Config struct {
	HTTPPort           string `env:"HTTP_PORT" env-default:"8080"`
	Development        bool   `env:"APP_DEVELOPMENT" env-default:"false"`
	DB                 DB
	MetricsPort        string `env:"METRICS_PORT" env-default:"9100"`
	PyroscopeEnabled   bool   `env:"PYROSCOPE_ENABLED" env-default:"false"`
	PyroscopeAddress   string `env:"PYROSCOPE_SERVER_ADDRESS" env-default:"http://pyroscope:4040"`
	JaegerCollectorURL string `env:"JAEGER_COLLECTOR_URL"`
	GitHub             GitHub
	Engine             Engine
}

type DB struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `env:"DB_NAME" env-default:"mergeflow"`
}

type GitHub struct {
	APIURL string `env:"GITHUB_API_URL" env-default:"https://api.github.com/"`
	Token  string `env:"GITHUB_TOKEN"`
}

// Engine is injected into the use case layer at construction time.
type Engine struct {
	WebhookEndpoint            string        `env:"AGENT_WEBHOOK_URL"`
	RequestTimeout             time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
	QualifyingAchievementTypes []string      `env:"QUALIFYING_ACHIEVEMENT_TYPES" env-default:"low_pr_10,high_pr_1,medium_pr_5" env-separator:","`
}

// QualifyingTypes returns the configured qualifying achievement types.
func (e Engine) QualifyingTypes() []domain.AchievementType {
	res := make([]domain.AchievementType, 0, len(e.QualifyingAchievementTypes))
	for _, t := range e.QualifyingAchievementTypes {
		res = append(res, domain.AchievementType(t))
	}
	return res
}

func Load() *Config {
	cfg, err := load(".env")
	if err != nil {
		log.Fatalf("cannot read configuration: %v", err)
	}
	return cfg
}

func load(envFile string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(envFile, cfg); err != nil {
		log.Printf(".env file not found or failed to read: %v", err)

		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Engine.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (e Engine) validate() error {
	if e.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", e.RequestTimeout)
	}
	if len(e.QualifyingAchievementTypes) == 0 {
		return fmt.Errorf("QUALIFYING_ACHIEVEMENT_TYPES must not be empty")
	}
	for _, t := range e.QualifyingAchievementTypes {
		if !domain.AchievementType(t).Valid() {
			return fmt.Errorf("unknown achievement type %q in QUALIFYING_ACHIEVEMENT_TYPES", t)
		}
	}
	return nil
}

func (d DB) DSN() string {
	hostPort := net.JoinHostPort(d.Host, d.Port)
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Password, hostPort, d.Name,
	)
}
