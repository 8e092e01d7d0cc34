package config

import (
	"os"
	"strings"
)

// AdminCheckMode escolhe qual mecanismo de autorização admin é usado
// no deployment: lista fixa de e-mails ou flag is_admin no perfil.
type AdminCheckMode string

const (
	AdminCheckAllowlist AdminCheckMode = "allowlist"
	AdminCheckProfile   AdminCheckMode = "profile"
)

type Config struct {
	DBUrl       string
	JWTSecret   string
	Supabase    string
	Port        string
	AdminEmails []string
	AdminCheck  AdminCheckMode
}

func LoadConfig() *Config {
	return &Config{
		DBUrl:       os.Getenv("SUPABASE_DB_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Supabase:    os.Getenv("NEXT_PUBLIC_SUPABASE_URL"),
		Port:        getEnv("PORT", "8080"),
		AdminEmails: ParseAdminEmails(os.Getenv("ADMIN_EMAILS")),
		AdminCheck:  parseAdminCheck(os.Getenv("ADMIN_CHECK")),
	}
}

// ParseAdminEmails transforma "a@x.com, B@y.com" em uma lista normalizada
// (minúsculas, sem espaços, sem entradas vazias).
func ParseAdminEmails(raw string) []string {
	var emails []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

func parseAdminCheck(raw string) AdminCheckMode {
	if AdminCheckMode(strings.ToLower(strings.TrimSpace(raw))) == AdminCheckProfile {
		return AdminCheckProfile
	}
	return AdminCheckAllowlist
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
