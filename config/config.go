package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Env         string `envconfig:"ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8002"`
	UTCOffset   int    `envconfig:"UTC_OFFSET" default:"7"` // ICT
	JWTSecret   string `envconfig:"JWT_SECRET"`
	AllowOrigin string `envconfig:"ALLOW_ORIGIN" default:"http://localhost:5173/"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     uint   `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME" default:"cinema"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"ADDR" default:"localhost:6379"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0"`
	PDFTTL   time.Duration `envconfig:"PDF_TTL" default:"10m"`
}

type SMTPConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM"`
}

// TicketConfig thông tin in trên vé
type TicketConfig struct {
	VenueName    string `envconfig:"VENUE_NAME" default:"CINEMA STAR"`
	AddressLine1 string `envconfig:"ADDRESS_LINE1" default:"135 Hai Bà Trưng, Quận 1"`
	AddressLine2 string `envconfig:"ADDRESS_LINE2" default:"TP. Hồ Chí Minh"`
	FilePrefix   string `envconfig:"FILE_PREFIX" default:"CinemaStar"`
}

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Ticket   TicketConfig
}

// Load đọc .env (nếu có) rồi map biến môi trường vào Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	sections := []struct {
		prefix string
		target any
	}{
		{"APP", &cfg.App},
		{"DB", &cfg.Database},
		{"REDIS", &cfg.Redis},
		{"SMTP", &cfg.SMTP},
		{"TICKET", &cfg.Ticket},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return nil, fmt.Errorf("config %s: %w", s.prefix, err)
		}
	}
	return &cfg, nil
}

// Location múi giờ hiển thị/lập lịch (mặc định ICT +07:00)
func (c AppConfig) Location() *time.Location {
	return time.FixedZone("ICT", c.UTCOffset*3600)
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}
