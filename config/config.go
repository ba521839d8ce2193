package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Port        string `envconfig:"PORT" default:"5001"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`
	CorsOrigins string `envconfig:"CORS_ORIGINS"`
}

type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type Database struct {
	Driver   string `envconfig:"DB_DRIVER" default:"mysql"`
	URL      string `envconfig:"DATABASE_URL"`
	MySQLURL string `envconfig:"MYSQL_URL"`
	User     string `envconfig:"DB_USER" default:"root"`
	Password string `envconfig:"DB_PASS"`
	Host     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	Port     string `envconfig:"DB_PORT" default:"3306"`
	Name     string `envconfig:"DB_NAME" default:"hotel_db"`
	LogLevel string `envconfig:"DB_LOG_LEVEL" default:"warn"`
}

type Seed struct {
	AdminUsername string `envconfig:"SEED_ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"SEED_ADMIN_EMAIL" default:"admin@hotel.local"`
	AdminPassword string `envconfig:"SEED_ADMIN_PASSWORD" default:"admin123"`
}

type Jobs struct {
	// Empty disables the stock audit.
	StockAuditSchedule string `envconfig:"STOCK_AUDIT_SCHEDULE" default:"@every 1h"`
}

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Seed     Seed
	Jobs     Jobs
}

// Load reads .env (optional) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	return cfg, nil
}

// CorsOriginList splits CORS_ORIGINS; "*" when unset.
func (s Server) CorsOriginList() []string {
	raw := strings.TrimSpace(s.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
