package config

import (
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port              int      `yaml:"port" validate:"required"`
	AccessTokenTTLMin int      `yaml:"access_token_ttl_min" validate:"required"`
	LogLevel          string   `yaml:"log_level"`
	LogJSON           bool     `yaml:"log_json"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	Pg                Pg       `yaml:"pg" validate:"required"`
}

type Pg struct {
	Host   string `yaml:"host" validate:"required"`
	Port   int    `yaml:"port" validate:"required"`
	User   string `yaml:"user" validate:"required"`
	Dbname string `yaml:"dbname" validate:"required"`
}

type Private struct {
	PgPassword      string `yaml:"pg_password" validate:"required"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Public.AccessTokenTTLMin) * time.Minute
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

func (c *Config) AccessTokenKey() string {
	return c.private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.private.RefreshTokenKey
}

// NewForTesting builds a config without touching the filesystem.
func NewForTesting(public Public, private Private) *Config {
	return &Config{public, private}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder. Secrets may
// also come from the environment, so private.yaml is optional in deployments
// that inject PG_PASSWORD and the token keys.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}
	applyEnvOverrides(&public, &private)

	cfg := &Config{public, private}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg.Public); err != nil {
		panic("invalid public config: " + err.Error())
	}
	if err := validate.Struct(&cfg.private); err != nil {
		panic("invalid private config: " + err.Error())
	}
	return cfg
}

func applyEnvOverrides(public *Public, private *Private) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			public.Port = port
		}
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		private.PgPassword = v
	}
	if v := os.Getenv("ACCESS_TOKEN_KEY"); v != "" {
		private.AccessTokenKey = v
	}
	if v := os.Getenv("REFRESH_TOKEN_KEY"); v != "" {
		private.RefreshTokenKey = v
	}
}
