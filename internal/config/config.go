package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config is populated once at startup and injected everywhere it is
// needed. Nothing re-reads the environment after Load returns.
type Config struct {
	ApiBaseURL string `yaml:"api_base_url"`
	Env        string `yaml:"env"`
	LogLevel   string `yaml:"log_level"`
	LogJSON    bool   `yaml:"log_json"`
	TokenDir   string `yaml:"token_dir"`
	Pg         Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

const (
	defaultApiBaseURL = "http://localhost:5000/api"
	defaultPgHost     = "localhost"
	defaultPgPort     = 5432
	defaultLogLevel   = "info"
)

// Production reports whether the process runs with the production flag.
// Postgres TLS is keyed off this.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// SSLMode returns the lib/pq sslmode value for the current environment.
func (c *Config) SSLMode() string {
	if c.Production() {
		return "require"
	}
	return "disable"
}

// Load builds the configuration from an optional yaml file plus
// environment overrides. Environment always wins over the file;
// literal defaults fill whatever remains unset.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		ApiBaseURL: defaultApiBaseURL,
		LogLevel:   defaultLogLevel,
		Pg:         Pg{Host: defaultPgHost, Port: defaultPgPort},
	}

	if configPath != "" {
		configFile, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(configFile, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// MustLoad is Load that panics, for use in main and tests.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic("can't load config file: " + err.Error())
	}
	return cfg
}

func applyEnv(cfg *Config) {
	setString(&cfg.ApiBaseURL, "API_URL")
	setString(&cfg.Env, "ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.TokenDir, "TOKEN_DIR")
	setString(&cfg.Pg.Host, "PG_HOST")
	setString(&cfg.Pg.User, "PG_USER")
	setString(&cfg.Pg.Password, "PG_PASSWORD")
	setString(&cfg.Pg.Dbname, "PG_DBNAME")
	if v := os.Getenv("PG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Pg.Port = port
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
