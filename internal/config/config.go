package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	OpenAI    OpenAIConfig
	Search    SearchConfig
	Thesaurus ThesaurusConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host     string
	Port     int
	BasePath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type OpenAIConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	EmbeddingModel string
}

type SearchConfig struct {
	ImageBaseURL       string
	PreviewResultCount int
	VectorSearchLimit  int
}

type ThesaurusConfig struct {
	CacheTTL time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_BASE_PATH", "")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "fabritius")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "fabritius")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002")
	v.SetDefault("IMAGE_BASE_URL", "https://www.opac-fabritius.be")
	v.SetDefault("PREVIEW_RESULTS_COUNT", 10)
	v.SetDefault("VECTOR_SEARCH_LIMIT", 1000)
	v.SetDefault("THESAURUS_CACHE_TTL", "10m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	connLifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		connLifetime = 30 * time.Minute
	}
	cacheTTL, err := time.ParseDuration(v.GetString("THESAURUS_CACHE_TTL"))
	if err != nil {
		cacheTTL = 10 * time.Minute
	}

	previewCount := v.GetInt("PREVIEW_RESULTS_COUNT")
	if previewCount < 1 {
		previewCount = 1
	}
	if previewCount > 100 {
		previewCount = 100
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:     v.GetString("SERVER_HOST"),
			Port:     v.GetInt("SERVER_PORT"),
			BasePath: v.GetString("SERVER_BASE_PATH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		OpenAI: OpenAIConfig{
			BaseURL:        v.GetString("OPENAI_BASE_URL"),
			APIKey:         v.GetString("OPENAI_API_KEY"),
			Model:          v.GetString("OPENAI_MODEL"),
			EmbeddingModel: v.GetString("OPENAI_EMBEDDING_MODEL"),
		},
		Search: SearchConfig{
			ImageBaseURL:       v.GetString("IMAGE_BASE_URL"),
			PreviewResultCount: previewCount,
			VectorSearchLimit:  v.GetInt("VECTOR_SEARCH_LIMIT"),
		},
		Thesaurus: ThesaurusConfig{
			CacheTTL: cacheTTL,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
