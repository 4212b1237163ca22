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
	Session  SessionConfig
	Steam    SteamConfig
	Mailjet  MailjetConfig
	Shop     ShopConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	ServerURL   string
	ClientURL   string
}

type ServerConfig struct {
	Port string
}

// DatabaseConfig selects one of the two interchangeable backends. Driver is
// "sqlite" (embedded single-file store) or "postgres" (networked store); the
// rest of the fields apply to whichever driver is active.
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

type SteamConfig struct {
	APIKey string
}

type MailjetConfig struct {
	MailjetBaseUrl           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

type ShopConfig struct {
	AdminEmail string
	UploadDir  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if err != nil {
		return nil, errors.New("invalid session ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "BallisticWorks Market API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			ServerURL:   getEnv("SERVER_URL", "http://localhost:5000"),
			ClientURL:   getEnv("CLIENT_URL", "http://localhost:3000"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("DB_PATH", "./database.sqlite"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "ballistic_market"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", ""),
			TTLHours: sessionTTL,
		},
		Steam: SteamConfig{
			APIKey: getEnv("STEAM_API_KEY", ""),
		},
		Mailjet: MailjetConfig{
			MailjetBaseUrl:           getEnv("MAILJET_BASE_URL", ""),
			MailjetBasicAuthUsername: getEnv("MAILJET_BASIC_AUTH_USERNAME", ""),
			MailjetBasicAuthPassword: getEnv("MAILJET_BASIC_AUTH_PASSWORD", ""),
			MailjetSenderEmail:       getEnv("MAILJET_SENDER_EMAIL", ""),
			MailjetSenderName:        getEnv("MAILJET_SENDER_NAME", ""),
		},
		Shop: ShopConfig{
			AdminEmail: getEnv("ADMIN_EMAIL", ""),
			UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		},
	}

	if cfg.Session.Secret == "" {
		return nil, errors.New("missing session secret")
	}

	if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
		return nil, errors.New("unsupported database driver: " + cfg.Database.Driver)
	}

	if cfg.Database.Driver == "postgres" && cfg.Database.Password == "" {
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
