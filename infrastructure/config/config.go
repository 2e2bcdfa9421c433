// Package config loads the process-wide application settings.
//
// Values resolve from three sources, lowest to highest priority: compiled-in
// defaults, an optional local override file (.env, case-sensitive keys), and
// the process environment. Loading either produces a fully validated
// Settings value or fails before any listener opens; the loaded value is
// never mutated afterwards.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "fartgen-backend/pkg/errors"
	"fartgen-backend/pkg/tokens"
)

// DefaultEnvFile is the local override file consulted for keys absent
// from the process environment.
const DefaultEnvFile = ".env"

// S3Settings holds object storage configuration (AWS S3 or MinIO)
type S3Settings struct {
	AccessKeyID     string `validate:"required"`
	SecretAccessKey string `validate:"required"`
	Bucket          string `validate:"required"`
	Region          string `validate:"required"`
	// EndpointURL may be a full URL or a bare host:port; when the scheme
	// is absent UseSSL decides it.
	EndpointURL string
	UseSSL      bool
}

// Settings holds all application configuration
type Settings struct {
	// Application
	AppName     string `validate:"required"`
	Environment string `validate:"required"`
	Debug       bool

	// Server
	Host string `validate:"required"`
	Port int    `validate:"gte=1,lte=65535"`

	// Backing services
	DatabaseURL string `validate:"required"`
	RedisURL    string `validate:"required,uri"`

	// JWT
	SecretKey       string        `validate:"required"`
	Algorithm       string        `validate:"required"`
	AccessTokenTTL  time.Duration `validate:"gt=0"`
	RefreshTokenTTL time.Duration `validate:"gt=0"`

	// Anthropic Claude API
	AnthropicAPIKey string `validate:"required"`

	// Object storage
	S3 S3Settings

	// CORS
	CORSOrigins []string `validate:"min=1,dive,http_url"`

	// Rate limiting
	RateLimitPerMinute     int `validate:"gt=0"`
	GenerationLimitPerHour int `validate:"gt=0"`
}

// Load loads settings from the environment with DefaultEnvFile as the
// override file.
func Load() (*Settings, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom loads settings using envFile as the override file. A missing
// file is not an error; a missing required value is.
func LoadFrom(envFile string) (*Settings, error) {
	src, err := newSource(envFile)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}

	l := &loader{src: src}

	s := &Settings{
		AppName:     l.text("APP_NAME", "Fart Generator"),
		Environment: l.text("APP_ENV", "development"),
		Debug:       l.boolean("DEBUG", true),

		Host: l.text("HOST", "0.0.0.0"),
		Port: l.integer("PORT", 8000),

		DatabaseURL: l.required("DATABASE_URL"),
		RedisURL:    l.required("REDIS_URL"),

		SecretKey:       l.required("SECRET_KEY"),
		Algorithm:       l.text("ALGORITHM", "HS256"),
		AccessTokenTTL:  time.Duration(l.integer("ACCESS_TOKEN_EXPIRE_MINUTES", 15)) * time.Minute,
		RefreshTokenTTL: time.Duration(l.integer("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,

		AnthropicAPIKey: l.required("ANTHROPIC_API_KEY"),

		S3: S3Settings{
			AccessKeyID:     l.required("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: l.required("AWS_SECRET_ACCESS_KEY"),
			Bucket:          l.required("AWS_S3_BUCKET"),
			Region:          l.text("AWS_S3_REGION", "us-east-1"),
			EndpointURL:     l.optional("AWS_S3_ENDPOINT_URL"),
			UseSSL:          l.boolean("AWS_S3_USE_SSL", true),
		},

		CORSOrigins: l.list("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		RateLimitPerMinute:     l.integer("RATE_LIMIT_PER_MINUTE", 60),
		GenerationLimitPerHour: l.integer("GENERATION_LIMIT_PER_HOUR", 50),
	}

	if len(l.errs) > 0 {
		return nil, errors.Join(l.errs...)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// IsProduction checks if running in production mode
func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

// IsDevelopment checks if running in development mode
func (s *Settings) IsDevelopment() bool {
	return s.Environment == "development"
}

var validate = validator.New()

// fieldEnvKeys maps Settings fields back to the environment variable they
// resolve from, so validation failures name the key the operator must fix.
var fieldEnvKeys = map[string]string{
	"Settings.AppName":                "APP_NAME",
	"Settings.Environment":            "APP_ENV",
	"Settings.Host":                   "HOST",
	"Settings.Port":                   "PORT",
	"Settings.DatabaseURL":            "DATABASE_URL",
	"Settings.RedisURL":               "REDIS_URL",
	"Settings.SecretKey":              "SECRET_KEY",
	"Settings.Algorithm":              "ALGORITHM",
	"Settings.AccessTokenTTL":         "ACCESS_TOKEN_EXPIRE_MINUTES",
	"Settings.RefreshTokenTTL":        "REFRESH_TOKEN_EXPIRE_DAYS",
	"Settings.AnthropicAPIKey":        "ANTHROPIC_API_KEY",
	"Settings.S3.AccessKeyID":         "AWS_ACCESS_KEY_ID",
	"Settings.S3.SecretAccessKey":     "AWS_SECRET_ACCESS_KEY",
	"Settings.S3.Bucket":              "AWS_S3_BUCKET",
	"Settings.S3.Region":              "AWS_S3_REGION",
	"Settings.S3.EndpointURL":         "AWS_S3_ENDPOINT_URL",
	"Settings.CORSOrigins":            "CORS_ORIGINS",
	"Settings.RateLimitPerMinute":     "RATE_LIMIT_PER_MINUTE",
	"Settings.GenerationLimitPerHour": "GENERATION_LIMIT_PER_HOUR",
}

// validate runs struct validation and the cross-library algorithm check.
func (s *Settings) validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				key := fieldEnvKeys[trimIndex(fe.StructNamespace())]
				if key == "" {
					key = fe.StructField()
				}
				errs = append(errs, apperrors.Invalid(key, fmt.Sprintf("failed %q validation", fe.Tag())))
			}
			return errors.Join(errs...)
		}
		return err
	}

	if _, err := tokens.SigningMethod(s.Algorithm); err != nil {
		return apperrors.Invalid("ALGORITHM", err.Error())
	}

	return nil
}

// trimIndex strips a trailing slice index from a validator namespace,
// e.g. Settings.CORSOrigins[1] -> Settings.CORSOrigins.
func trimIndex(ns string) string {
	for i := 0; i < len(ns); i++ {
		if ns[i] == '[' {
			return ns[:i]
		}
	}
	return ns
}
