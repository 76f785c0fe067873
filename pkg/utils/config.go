package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	OTP      OTPConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AdminConfig is the single fixed admin identity/secret pair. There is
// exactly one admin and the secret is compared verbatim.
type AdminConfig struct {
	ID       string
	Password string
}

type OTPConfig struct {
	ExpiryMinutes int
	MaxAttempts   int
}

type EmailConfig struct {
	MailerSendKey string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	From          string
	FromName      string
	Dev           bool
	SendTimeout   int // seconds
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "organic-store")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ADMIN_ID", "8144680437")
	viper.SetDefault("ADMIN_PASSWORD", "Thefarmer@143")
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_MAX_ATTEMPTS", 3)
	viper.SetDefault("EMAIL_FROM", "noreply@organicfarming.com")
	viper.SetDefault("EMAIL_FROM_NAME", "The Sustainable Organic Farming")
	viper.SetDefault("EMAIL_DEV", false)
	viper.SetDefault("EMAIL_SEND_TIMEOUT", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			ID:       viper.GetString("ADMIN_ID"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			MaxAttempts:   viper.GetInt("OTP_MAX_ATTEMPTS"),
		},
		Email: EmailConfig{
			MailerSendKey: viper.GetString("MAILERSEND_API_KEY"),
			SMTPHost:      viper.GetString("SMTP_HOST"),
			SMTPPort:      viper.GetInt("SMTP_PORT"),
			SMTPUser:      viper.GetString("SMTP_USER"),
			SMTPPass:      viper.GetString("SMTP_PASS"),
			From:          viper.GetString("EMAIL_FROM"),
			FromName:      viper.GetString("EMAIL_FROM_NAME"),
			Dev:           viper.GetBool("EMAIL_DEV"),
			SendTimeout:   viper.GetInt("EMAIL_SEND_TIMEOUT"),
		},
	}

	return config, nil
}
