package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SMTPPlaceholder é o valor padrão que indica que o envio de e-mail
// ainda não foi configurado. Com ele, o mailer apenas loga a mensagem.
const SMTPPlaceholder = "seu-email@gmail.com"

type Config struct {
	ServerPort    string
	DBPath        string
	SessionSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	AdminEmail string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("PORT", "5000"),
		DBPath:        getEnv("DB_PATH", "studio.db"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", SMTPPlaceholder),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AdminEmail: getEnv("ADMIN_EMAIL", "contato@studio-site.com"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// MailConfigured informa se existe uma credencial SMTP real.
func (c *Config) MailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPUser != SMTPPlaceholder
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
