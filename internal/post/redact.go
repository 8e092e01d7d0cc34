package post

import (
	"strings"
	"sync/atomic"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"gorm.io/gorm"
)

// Placeholders exibidos no lugar de um post marcado como removido.
const (
	RedactedContent = "[Este post foi removido por um administrador]"
	RedactedTitle   = "[Post removido]"
)

// filterBroken lembra se o deployment não tem a coluna is_deleted.
// Detectado na primeira listagem que falhar por coluna inexistente; a
// partir daí o filtro vira no-op e a redação pós-consulta segura a ponta.
// Escrito e lido por goroutines de request concorrentes.
var filterBroken atomic.Bool

// FilterDeleted acrescenta o predicado is_deleted = false a uma consulta
// de posts. Em deployments sem a coluna, degrada devolvendo a consulta
// original em vez de quebrar a listagem.
func FilterDeleted(tx *gorm.DB) *gorm.DB {
	if filterBroken.Load() {
		return tx
	}
	return tx.Where("is_deleted = ?", false)
}

// isMissingColumn reconhece o erro de coluna inexistente do Postgres
// (SQLSTATE 42703), em qualquer das formas que o driver o devolve.
func isMissingColumn(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLSTATE 42703") {
		return true
	}
	return strings.Contains(msg, "is_deleted") && strings.Contains(msg, "does not exist")
}

// DisableFilter é chamado quando uma listagem filtrada falha. Só a
// incompatibilidade de schema desliga o filtro; erro transitório de
// banco ou rede não pode derrubar a defesa pelo resto do processo.
func DisableFilter(err error) {
	if !isMissingColumn(err) {
		return
	}
	if filterBroken.Swap(true) {
		return
	}
	logs.LogJSON("WARN", "Deleted-post filter disabled, schema mismatch", map[string]interface{}{
		"error": err.Error(),
	})
}

// RedactDeleted é a segunda camada de defesa: para chamadores que não
// passam (ou não podem passar) pelo filtro de consulta, substitui o
// conteúdo dos posts marcados como removidos por placeholders, mantendo
// id e metadados para a UI renderizar o aviso no lugar.
func RedactDeleted(posts []Post) []Post {
	for i := range posts {
		if posts[i].IsDeleted {
			posts[i].Content = RedactedContent
			posts[i].Title = RedactedTitle
		}
	}
	return posts
}
