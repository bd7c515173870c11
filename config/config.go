// Package config reads the assistant's settings from a .env file and the
// process environment. Credentials have no built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github/itish2003/smartcity/models"

	"github.com/joho/godotenv"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrUnknownProvider   = errors.New("unknown model provider")
)

type Provider string

const (
	ProviderGemini      Provider = "gemini"
	ProviderHuggingFace Provider = "huggingface"
	ProviderWatsonx     Provider = "watsonx"
)

const (
	DefaultGeminiModel      = "gemini-2.5-flash"
	DefaultHuggingFaceModel = "google/flan-t5-xl"
	DefaultWatsonxModel     = "ibm/granite-3-8b-instruct"
	DefaultWatsonxIAMURL    = "https://iam.cloud.ibm.com/identity/token"
	DefaultTemperature      = 0.7
	DefaultPort             = "8080"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type HuggingFaceConfig struct {
	Token string
	Model string
	URL   string
}

type WatsonxConfig struct {
	URL       string
	APIKey    string
	ProjectID string
	ModelID   string
	IAMURL    string
}

// Config is built once at startup and passed to whatever needs it.
type Config struct {
	Provider    Provider
	Gemini      GeminiConfig
	HuggingFace HuggingFaceConfig
	Watsonx     WatsonxConfig
	Decoding    models.DecodingParams

	Port             string
	SessionSecret    string
	UnidocLicenseKey string
	TemplatesDir     string
}

// Load reads the given .env files (".env" when none are named) and then
// builds the config from the environment. Variables already set in the
// process take precedence over the files.
func Load(files ...string) (*Config, error) {
	LoadEnvFiles(files...)
	return FromEnv()
}

// LoadEnvFiles copies variables from the .env files into the process
// environment without overriding what is already set.
func LoadEnvFiles(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("CONFIG: No .env file found, relying on environment variables.")
	}
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	provider := Provider(strings.ToLower(getenv("SMARTCITY_PROVIDER", string(ProviderGemini))))

	cfg := &Config{
		Provider: provider,
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getenv("GEMINI_MODEL", DefaultGeminiModel),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
		},
		HuggingFace: HuggingFaceConfig{
			Token: os.Getenv("HUGGINGFACEHUB_API_TOKEN"),
			Model: getenv("HF_MODEL", DefaultHuggingFaceModel),
			URL:   os.Getenv("HF_URL"),
		},
		Watsonx: WatsonxConfig{
			URL:       strings.TrimRight(os.Getenv("WATSONX_URL"), "/"),
			APIKey:    os.Getenv("WATSONX_APIKEY"),
			ProjectID: os.Getenv("WATSONX_PROJECT_ID"),
			ModelID:   getenv("WATSONX_MODEL_ID", DefaultWatsonxModel),
			IAMURL:    getenv("WATSONX_IAM_URL", DefaultWatsonxIAMURL),
		},
		Decoding: models.DecodingParams{
			Method:       models.DecodingMethodSample,
			Temperature:  DefaultTemperature,
			MaxNewTokens: DefaultMaxNewTokens(provider),
		},
		Port:             getenv("PORT", DefaultPort),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		UnidocLicenseKey: os.Getenv("UNIDOC_LICENSE_KEY"),
		TemplatesDir:     os.Getenv("SMARTCITY_TEMPLATES_DIR"),
	}

	if v := os.Getenv("SMARTCITY_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SMARTCITY_TEMPERATURE %q: %w", v, err)
		}
		cfg.Decoding.Temperature = t
	}
	if v := os.Getenv("SMARTCITY_MAX_NEW_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid SMARTCITY_MAX_NEW_TOKENS %q", v)
		}
		cfg.Decoding.MaxNewTokens = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultMaxNewTokens mirrors the token limits the two original demos used.
func DefaultMaxNewTokens(p Provider) int {
	if p == ProviderWatsonx {
		return 500
	}
	return 200
}

// Validate checks that the selected provider has everything it needs.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY must be set", ErrMissingCredential)
		}
	case ProviderHuggingFace:
		if c.HuggingFace.Token == "" {
			return fmt.Errorf("%w: HUGGINGFACEHUB_API_TOKEN must be set", ErrMissingCredential)
		}
	case ProviderWatsonx:
		missing := []string{}
		if c.Watsonx.URL == "" {
			missing = append(missing, "WATSONX_URL")
		}
		if c.Watsonx.APIKey == "" {
			missing = append(missing, "WATSONX_APIKEY")
		}
		if c.Watsonx.ProjectID == "" {
			missing = append(missing, "WATSONX_PROJECT_ID")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s must be set", ErrMissingCredential, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}

	if c.Decoding.Temperature < 0 {
		return fmt.Errorf("temperature must not be negative, got %v", c.Decoding.Temperature)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
