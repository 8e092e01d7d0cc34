package moderation

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/config"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/user"
)

// Authorizer decide se um e-mail tem privilégio de administrador.
// Existem dois mecanismos em produção: a lista fixa de e-mails (baseline)
// e a flag is_admin no perfil do usuário. A configuração do deployment
// escolhe qual vale; as duas implementações ficam atrás desta interface.
type Authorizer interface {
	IsAdmin(email string) bool
}

// AllowlistAuthorizer compara o e-mail (minúsculas, sem espaços) com uma
// lista injetada na construção. Nunca retorna erro: e-mail vazio ou
// desconhecido é simplesmente não-admin.
type AllowlistAuthorizer struct {
	emails map[string]struct{}
}

func NewAllowlistAuthorizer(emails []string) *AllowlistAuthorizer {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return &AllowlistAuthorizer{emails: set}
}

func (a *AllowlistAuthorizer) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := a.emails[email]
	return ok
}

// ProfileAuthorizer lê a coluna is_admin do perfil do usuário.
// Usuário inexistente ou erro de consulta contam como não-admin.
type ProfileAuthorizer struct {
	db *gorm.DB
}

func NewProfileAuthorizer(db *gorm.DB) *ProfileAuthorizer {
	return &ProfileAuthorizer{db: db}
}

func (a *ProfileAuthorizer) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}

	var isAdmin bool
	err := a.db.Model(&user.User{}).
		Select("is_admin").
		Where("LOWER(email) = ?", email).
		Scan(&isAdmin).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logs.LogJSON("ERROR", "Admin profile check failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return false
	}
	return isAdmin
}

// NewAuthorizer monta o mecanismo escolhido pela configuração.
func NewAuthorizer(cfg *config.Config, db *gorm.DB) Authorizer {
	if cfg.AdminCheck == config.AdminCheckProfile {
		return NewProfileAuthorizer(db)
	}
	return NewAllowlistAuthorizer(cfg.AdminEmails)
}
