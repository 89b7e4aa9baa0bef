package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LocalStorePath              string   `toml:"local_store_path"`
	ProgramTemplatePath         string   `toml:"program_template_path"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	NudgeRateLimitAllowedPerMin int      `toml:"nudge_rate_limit_allowed_per_min"`
	NudgesPerDay                int      `toml:"nudges_per_day"`
	MilestoneQueueSize          int      `toml:"milestone_queue_size"`
	MilestoneWorkers            int      `toml:"milestone_workers"`
	ReactionsSeed               int64    `toml:"reactions_seed"`
	CorsAllowedOrigins          []string `toml:"cors_allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.MilestoneQueueSize <= 0 {
		c.MilestoneQueueSize = 100
	}
	if c.MilestoneWorkers <= 0 {
		c.MilestoneWorkers = 2
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.NudgeRateLimitAllowedPerMin <= 0 {
		c.NudgeRateLimitAllowedPerMin = 5
	}
	if c.NudgesPerDay <= 0 {
		c.NudgesPerDay = 3
	}
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}
