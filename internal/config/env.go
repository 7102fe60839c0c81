package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every process environment variable read by LoadEnv.
const EnvPrefix = "STATEMENTS"

// Env holds process-level settings read from the environment.
type Env struct {
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	Addr           string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	RateLimit      int           `envconfig:"RATE_LIMIT" default:"120"`
	MaxBodyBytes   int64         `envconfig:"MAX_BODY_BYTES" default:"10485760"`
}

// LoadEnv loads the given dotenv files, then reads STATEMENTS_* variables.
// Missing dotenv files are skipped; variables already set win over files.
// With no files, ".env" in the working directory is tried.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if env.RateLimit <= 0 {
		return nil, errors.New("rate limit must be positive")
	}
	return &env, nil
}
