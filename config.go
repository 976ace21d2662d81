package auth

import (
	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// EnvConfig is the process configuration, loaded from the environment. It
// satisfies the Config interface consumed by NewAuthenticator so the core
// never reads ambient globals.
type EnvConfig struct {
	AppName         string   `env:"APP_NAME" envDefault:"go-auth"`
	Debug           bool     `env:"DEBUG" envDefault:"false"`
	SigningKey      string   `env:"SECRET_KEY" envDefault:"dev-secret-change-me"`
	TokenExpiration int      `env:"ACCESS_TOKEN_EXPIRES_MIN" envDefault:"60"`
	Issuer          string   `env:"TOKEN_ISSUER"`
	Audience        []string `env:"TOKEN_AUDIENCE" envSeparator:","`
	DatabaseURL     string   `env:"DATABASE_URL" envDefault:"file:auth.db"`
	ListenAddr      string   `env:"LISTEN_ADDR" envDefault:":8080"`
}

var _ Config = (*EnvConfig)(nil)

// LoadConfig reads the environment (plus an optional .env file) into an
// EnvConfig and validates it.
func LoadConfig() (*EnvConfig, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the configuration invariants: a signing secret must be
// present and the expiry window must be at least one minute.
func (c *EnvConfig) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SigningKey, validation.Required),
		validation.Field(&c.TokenExpiration, validation.Required, validation.Min(1)),
		validation.Field(&c.DatabaseURL, validation.Required),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration")
	}
	return nil
}

func (c *EnvConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c *EnvConfig) GetTokenExpiration() int {
	return c.TokenExpiration
}

func (c *EnvConfig) GetIssuer() string {
	return c.Issuer
}

func (c *EnvConfig) GetAudience() []string {
	return c.Audience
}
