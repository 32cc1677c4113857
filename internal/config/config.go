package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the server settings. Values come from the environment,
// optionally seeded from config/.env.<env>.
type Config struct {
	Env   string
	Port  string
	Debug bool

	DatabaseURL string
	RedisURL    string

	IdentityURL     string
	IdentityAnonKey string
	JWTSecret       string
	SiteURL         string

	AIServiceURL string
	AILanguage   string

	ChromePath    string
	ExportDir     string
	ExportTimeout time.Duration
}

func newViper() *viper.Viper {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("port", "3000")
	v.SetDefault("debug", false)
	v.SetDefault("database_url", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("identity_url", "")
	v.SetDefault("identity_anon_key", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("site_url", "http://localhost:3000")
	v.SetDefault("ai_service_url", "")
	v.SetDefault("ai_language", "english")
	v.SetDefault("chrome_path", "")
	v.SetDefault("export_dir", "resume-data/exports")
	v.SetDefault("export_timeout", 2*time.Minute)

	v.AutomaticEnv()
	return v
}

// Load reads the configuration. ENV selects the dotenv file (dev by default);
// a missing file is not an error.
func Load(dir string) (*Config, error) {
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "dev"
	}

	dotEnvPath := filepath.Join(dir, ".env."+env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}

	v := newViper()
	cfg := &Config{
		Env:             env,
		Port:            v.GetString("port"),
		Debug:           v.GetBool("debug"),
		DatabaseURL:     v.GetString("database_url"),
		RedisURL:        v.GetString("redis_url"),
		IdentityURL:     strings.TrimRight(v.GetString("identity_url"), "/"),
		IdentityAnonKey: v.GetString("identity_anon_key"),
		JWTSecret:       v.GetString("jwt_secret"),
		SiteURL:         strings.TrimRight(v.GetString("site_url"), "/"),
		AIServiceURL:    v.GetString("ai_service_url"),
		AILanguage:      v.GetString("ai_language"),
		ChromePath:      v.GetString("chrome_path"),
		ExportDir:       v.GetString("export_dir"),
		ExportTimeout:   v.GetDuration("export_timeout"),
	}
	if cfg.JWTSecret == "" && env != "test" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return cfg, nil
}
