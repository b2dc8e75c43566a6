package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string `default:":3000"`
	BaseURL      string `default:"http://localhost:5173"`
	APIURL       string `default:"http://localhost:3000"`
	DatabaseDSN  string
	AccessSecret string
	CookieSecure bool

	KafkaBroker   string
	KafkaTopic    string `default:"alumni.events"`
	KafkaGroupID  string `default:"alumni-mailer"`
	KafkaUsername string
	KafkaPassword string

	CloudinaryUrl string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string `default:"http://localhost:3000/api/auth/callback"`

	LogLevel  string `default:"info"`
	LogFormat string `default:"text"`

	SearchDebounce time.Duration `default:"250ms"`

	Mail MailConfig
}

type MailConfig struct {
	SMTPHost     string `default:"smtp.gmail.com"`
	SMTPPort     string `default:"587"`
	User         string
	AppPassword  string
	From         string
	FromName     string `default:"Alumni Network"`
	ResetBaseURL string `default:"http://localhost:5173/auth/reset"`
	AppBaseURL   string `default:"http://localhost:5173"`
}

// LoadConfig reads the environment (and .env outside prod) and applies
// defaults. Each binary validates the parts it needs.
func LoadConfig() (Config, error) {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:         os.Getenv("SERVER_PORT"),
		BaseURL:            os.Getenv("BASE_URL"),
		APIURL:             os.Getenv("API_URL"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		AccessSecret:       os.Getenv("ACCESS_SECRET"),
		CookieSecure:       os.Getenv("ENV") == "prod",
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		KafkaTopic:         os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID:       os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername:      os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:      os.Getenv("KAFKA_PASSWORD"),
		CloudinaryUrl:      os.Getenv("CLOUDINARY_URL"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		LogFormat:          os.Getenv("LOG_FORMAT"),
		Mail: MailConfig{
			SMTPHost:     os.Getenv("SMTP_HOST"),
			SMTPPort:     os.Getenv("SMTP_PORT"),
			User:         os.Getenv("GMAIL_USER"),
			AppPassword:  os.Getenv("GMAIL_APP_PASSWORD"),
			From:         os.Getenv("MAIL_FROM"),
			FromName:     os.Getenv("MAIL_FROM_NAME"),
			ResetBaseURL: os.Getenv("RESET_BASE_URL"),
			AppBaseURL:   os.Getenv("APP_BASE_URL"),
		},
	}

	if v := strings.TrimSpace(os.Getenv("SEARCH_DEBOUNCE")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.New("invalid SEARCH_DEBOUNCE: " + err.Error())
		}
		cfg.SearchDebounce = d
	}

	// fills only the fields still at their zero value
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks what the API server needs.
func (c Config) Validate() error {
	var missing []string
	if c.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if c.AccessSecret == "" {
		missing = append(missing, "ACCESS_SECRET")
	}
	if len(missing) > 0 {
		return errors.New("missing required config: " + strings.Join(missing, ", "))
	}
	if c.SearchDebounce < directory.MinQuietPeriod || c.SearchDebounce > directory.MaxQuietPeriod {
		return fmt.Errorf("SEARCH_DEBOUNCE must be between %s and %s, got %s",
			directory.MinQuietPeriod, directory.MaxQuietPeriod, c.SearchDebounce)
	}
	return nil
}

// ValidateMailer checks what the mail worker needs: kafka and SMTP, no database.
func (c Config) ValidateMailer() error {
	var missing []string
	if c.KafkaBroker == "" {
		missing = append(missing, "KAFKA_BROKER")
	}
	if c.Mail.User == "" || c.Mail.AppPassword == "" {
		missing = append(missing, "GMAIL_USER/GMAIL_APP_PASSWORD")
	}
	if len(missing) > 0 {
		return errors.New("missing required mailer config: " + strings.Join(missing, ", "))
	}
	return nil
}
