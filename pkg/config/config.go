package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Ranking  RankingConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name          string
	Version       string
	Environment   string
	AdminEmail    string
	AdminPassword string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RankingConfig struct {
	// TopK is the number of offers returned by the chat endpoint.
	TopK int
	// MatchCutoff is the minimum name similarity for a catalog hit.
	MatchCutoff float64
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	topK, err := strconv.Atoi(getEnv("RANKING_TOP_K", "3"))
	if err != nil || topK <= 0 {
		return nil, errors.New("invalid ranking top k")
	}

	matchCutoff, err := strconv.ParseFloat(getEnv("RANKING_MATCH_CUTOFF", "0.4"), 64)
	if err != nil || matchCutoff < 0 || matchCutoff > 1 {
		return nil, errors.New("invalid ranking match cutoff")
	}

	cfg := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "DealScout API"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			Environment:   getEnv("APP_ENV", "development"),
			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "dealscout"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Ranking: RankingConfig{
			TopK:        topK,
			MatchCutoff: matchCutoff,
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
