package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Collector struct {
		LookbackDays     int           `env:"COLLECTOR_LOOKBACK_DAYS" env-default:"30"`
		RefetchAfter     time.Duration `env:"COLLECTOR_REFETCH_AFTER" env-default:"1h"`
		CallDelay        time.Duration `env:"COLLECTOR_CALL_DELAY" env-default:"500ms"`
		RequestTimeout   time.Duration `env:"COLLECTOR_REQUEST_TIMEOUT" env-default:"15s"`
		IntervalMinutes  int           `env:"COLLECTOR_INTERVAL_MINUTES" env-default:"60"`
		RetentionDays    int           `env:"COLLECTOR_RETENTION_DAYS" env-default:"180"`
		TwitterBaseURL   string        `env:"TWITTER_API_BASE_URL" env-default:"https://api.twitter.com"`
		LinkedInBaseURL  string        `env:"LINKEDIN_API_BASE_URL" env-default:"https://api.linkedin.com"`
		MetaGraphBaseURL string        `env:"META_GRAPH_BASE_URL" env-default:"https://graph.facebook.com/v18.0"`
	}
	Learning struct {
		MinSamples   int           `env:"LEARNING_MIN_SAMPLES" env-default:"5"`
		WindowDays   int           `env:"LEARNING_WINDOW_DAYS" env-default:"30"`
		DailyAtHour  int           `env:"LEARNING_DAILY_AT_HOUR" env-default:"4"`
		SampleMaxLen int           `env:"LEARNING_SAMPLE_MAX_LEN" env-default:"200"`
		RequestDelay time.Duration `env:"LEARNING_REQUEST_DELAY" env-default:"500ms"`
	}
	OpenAI struct {
		APIKey  string        `env:"OPENAI_API_KEY"`
		BaseURL string        `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com/v1"`
		Model   string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
		Timeout time.Duration `env:"OPENAI_TIMEOUT" env-default:"60s"`
	}
}

// GetDSN builds the Postgres connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
