package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	AppName    = "SmartNotes"
	AppVersion = "1.0.0"
)

// APIKeyEnv is the environment variable holding the Groq credential.
const APIKeyEnv = "GROQ_API_KEY"

// Groq defaults. The base URL keeps its trailing slash so that relative
// request paths resolve under /openai/v1/.
const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1/"
	DefaultGroqModel   = "llama-3.1-8b-instant"
)

type GroqConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.groq.com/openai/v1/"`
	Model   string `env:"MODEL"    envDefault:"llama-3.1-8b-instant"`
}

type Config struct {
	Addr      string     `env:"SMARTNOTES_ADDR"       envDefault:":8080"`
	StaticDir string     `env:"SMARTNOTES_STATIC_DIR"`
	LogLevel  string     `env:"SMARTNOTES_LOG_LEVEL"  envDefault:"info"`
	LogFormat string     `env:"SMARTNOTES_LOG_FORMAT" envDefault:"text"`
	Locale    string     `env:"SMARTNOTES_LOCALE"     envDefault:"en"`
	ProxyURL  string     `env:"SMARTNOTES_PROXY_URL"`
	Groq      GroqConfig `envPrefix:"GROQ_"`
}

// Load reads the configuration from the process environment. A .env file
// in the working directory is merged in first when it exists.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize(), nil
}

// LoadFrom parses the configuration from an explicit variable map instead of
// the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	if c.StaticDir != "" {
		c.StaticDir = filepath.Clean(c.StaticDir)
	}
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = DefaultGroqBaseURL
	}
	if c.Groq.Model == "" {
		c.Groq.Model = DefaultGroqModel
	}
	return c
}

// KeySource yields the provider credential. It is consulted once per request
// so a key added or rotated at runtime is picked up without a restart.
type KeySource interface {
	APIKey() string
}

// EnvKey reads the credential from the named environment variable.
type EnvKey string

func (k EnvKey) APIKey() string {
	return os.Getenv(string(k))
}

// StaticKey is a fixed credential.
type StaticKey string

func (k StaticKey) APIKey() string {
	return string(k)
}
