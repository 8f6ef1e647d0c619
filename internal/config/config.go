package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DevJWTSecret is the fixed development-only signing secret used when no
// secret is configured. Never rely on it outside local development.
const DevJWTSecret = "dev-insecure-jwt-secret"

type AppConfig struct {
	Port        int      `yaml:"port"`
	GinMode     string   `yaml:"gin_mode"`
	FrontendURL string   `yaml:"frontend_url"`
	VerifyURL   string   `yaml:"verify_url"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type LockoutConfig struct {
	Threshold int    `yaml:"threshold"`
	Duration  string `yaml:"duration"`
}

type RatePolicyConfig struct {
	Window string `yaml:"window"`
	Max    int    `yaml:"max"`
}

type RateLimitConfig struct {
	General RatePolicyConfig `yaml:"general"`
	Auth    RatePolicyConfig `yaml:"auth"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Lockout   LockoutConfig   `yaml:"lockout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	SMTP      SMTPConfig      `yaml:"smtp"`
}

// RatePolicy is a resolved rate-limit policy.
type RatePolicy struct {
	Window time.Duration
	Max    int
}

// Config is the process-wide read-only configuration snapshot, created once
// at startup and injected into each component.
type Config struct {
	Port        string
	GinMode     string
	FrontendURL string
	VerifyURL   string
	CORSOrigins []string

	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	JWTIssuer  string
	SessionTTL time.Duration

	LockoutThreshold int
	LockoutDuration  time.Duration

	RateLimitGeneral RatePolicy
	RateLimitAuth    RatePolicy

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	lockDuration, err := time.ParseDuration(configFile.Lockout.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid lockout duration: %w", err)
	}

	general, err := parsePolicy(configFile.RateLimit.General)
	if err != nil {
		return nil, fmt.Errorf("invalid general rate-limit policy: %w", err)
	}

	auth, err := parsePolicy(configFile.RateLimit.Auth)
	if err != nil {
		return nil, fmt.Errorf("invalid auth rate-limit policy: %w", err)
	}

	// A missing secret must not crash the process; fall back to the fixed
	// development value and warn loudly.
	secret := env("JWT_SECRET", configFile.JWT.Secret)
	if secret == "" {
		log.Println("WARNING: JWT secret not configured; using insecure development default. Set JWT_SECRET before deploying.")
		secret = DevJWTSecret
	}

	return &Config{
		Port:        fmt.Sprintf("%d", envInt("PORT", configFile.App.Port)),
		GinMode:     configFile.App.GinMode,
		FrontendURL: env("FRONTEND_URL", configFile.App.FrontendURL),
		VerifyURL:   env("VERIFY_URL", configFile.App.VerifyURL),
		CORSOrigins: configFile.App.CORSOrigins,

		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		JWTSecret:  secret,
		JWTIssuer:  configFile.JWT.Issuer,
		SessionTTL: sessionTTL,

		LockoutThreshold: configFile.Lockout.Threshold,
		LockoutDuration:  lockDuration,

		RateLimitGeneral: general,
		RateLimitAuth:    auth,

		SMTPHost:     env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:     env("SMTP_PORT", configFile.SMTP.Port),
		SMTPUsername: env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword: env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:     env("SMTP_FROM", configFile.SMTP.From),
	}, nil
}

func parsePolicy(p RatePolicyConfig) (RatePolicy, error) {
	window, err := time.ParseDuration(p.Window)
	if err != nil {
		return RatePolicy{}, err
	}
	return RatePolicy{Window: window, Max: p.Max}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
