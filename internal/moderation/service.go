package moderation

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/notification"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
)

// Service concentra as operações administrativas sobre posts: remoção
// (hard ou soft), remoção em massa, reatribuição de categoria e destaque.
// Toda a superfície pública devolve um booleano de sucesso e nunca lança
// pânico; o detalhe do erro vai para o log.
type Service struct {
	db     *gorm.DB
	auth   Authorizer
	policy DeletionPolicy
}

func NewService(db *gorm.DB, auth Authorizer, policy DeletionPolicy) *Service {
	if policy != SoftDelete {
		policy = HardDelete
	}
	return &Service{db: db, auth: auth, policy: policy}
}

// DeletePost remove um post a pedido de um administrador, seguindo a
// política de remoção configurada. Chamada sem permissão retorna false
// sem tocar no banco e sem revelar qual verificação falhou.
func (s *Service) DeletePost(postID, actingEmail string) bool {
	if !s.auth.IsAdmin(actingEmail) {
		logs.LogJSON("WARN", "Post deletion denied", map[string]interface{}{
			"postID": postID,
		})
		return false
	}
	var authorID string
	s.db.Model(&post.Post{}).Select("user_id").Where("id = ?", postID).Scan(&authorID)

	var ok bool
	if s.policy == SoftDelete {
		ok = MarkDeleted(s.db, postID)
	} else {
		ok = Remove(s.db, postID)
	}

	// Aviso ao autor, melhor esforço.
	if ok && authorID != "" {
		if err := notification.Insert(s.db, authorID, notification.TypePostRemoved,
			"Seu post foi removido por um administrador", postID); err != nil {
			logs.LogJSON("WARN", "Could not notify post author", map[string]interface{}{
				"postID": postID,
				"error":  err.Error(),
			})
		}
	}
	return ok
}

// DeletePostsByUser remove todos os posts de um usuário, um por um, na
// ordem em que forem listados. Sem fan-out paralelo: a carga no banco
// remoto fica limitada, ao custo de demorar proporcional à quantidade.
func (s *Service) DeletePostsByUser(userID, actingEmail string) (deleted, failed int) {
	if !s.auth.IsAdmin(actingEmail) {
		logs.LogJSON("WARN", "Bulk deletion denied", map[string]interface{}{
			"userID": userID,
		})
		return 0, 0
	}

	var ids []string
	if err := s.db.Model(&post.Post{}).Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		logs.LogJSON("ERROR", "Could not list posts for bulk deletion", map[string]interface{}{
			"userID": userID,
			"error":  err.Error(),
		})
		return 0, 0
	}

	for _, id := range ids {
		var ok bool
		if s.policy == SoftDelete {
			ok = MarkDeleted(s.db, id)
		} else {
			ok = Remove(s.db, id)
		}
		if ok {
			deleted++
		} else {
			failed++
		}
	}

	logs.LogJSON("INFO", "Bulk deletion finished", map[string]interface{}{
		"userID":  userID,
		"deleted": deleted,
		"failed":  failed,
	})
	return deleted, failed
}

// UpdatePostCategory reatribui a categoria de um post (operação de admin).
// categoryID vazio vira NULL (volta para o feed principal). O id de
// categoria não é validado contra a tabela categories; o front só envia
// ids vindos da própria listagem.
func (s *Service) UpdatePostCategory(postID, categoryID, actingEmail string) bool {
	if !s.auth.IsAdmin(actingEmail) {
		logs.LogJSON("WARN", "Category update denied", map[string]interface{}{
			"postID": postID,
		})
		return false
	}
	if postID == "" {
		return false
	}

	var value interface{}
	if trimmed := strings.TrimSpace(categoryID); trimmed != "" {
		value = trimmed
	}

	if err := s.db.Model(&post.Post{}).Where("id = ?", postID).
		Update("category_id", value).Error; err != nil {
		logs.LogJSON("ERROR", "Category update failed", map[string]interface{}{
			"postID":     postID,
			"categoryID": categoryID,
			"error":      err.Error(),
		})
		return false
	}
	return true
}

// SetTrending liga ou desliga o destaque de um post (operação de admin).
func (s *Service) SetTrending(postID string, trending bool, actingEmail string) bool {
	if !s.auth.IsAdmin(actingEmail) {
		logs.LogJSON("WARN", "Trending update denied", map[string]interface{}{
			"postID": postID,
		})
		return false
	}

	res := s.db.Model(&post.Post{}).Where("id = ?", postID).
		Update("is_trending", trending)
	if res.Error != nil {
		logs.LogJSON("ERROR", "Trending update failed", map[string]interface{}{
			"postID": postID,
			"error":  res.Error.Error(),
		})
		return false
	}
	return res.RowsAffected > 0
}

// Remove executa a remoção física de um post: confere que ele existe,
// purga as nove tabelas dependentes, zera o destaque e apaga a linha.
// Não há transação entre os passos, o banco remoto não oferece transação
// cobrindo as dez tabelas. Cada passo é uma operação independente,
// executada em sequência, sem retry. Só o delete final decide o retorno.
func Remove(db *gorm.DB, postID string) bool {
	if postID == "" {
		return false
	}

	// 1. O post precisa existir; erro de leitura também encerra aqui,
	// antes de qualquer mutação.
	var p post.Post
	if err := db.First(&p, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logs.LogJSON("WARN", "Post not found for deletion", map[string]interface{}{
				"postID": postID,
			})
		} else {
			logs.LogJSON("ERROR", "Post lookup failed", map[string]interface{}{
				"postID": postID,
				"error":  err.Error(),
			})
		}
		return false
	}

	// 2. Purga das tabelas dependentes, melhor esforço.
	report := PurgeRelated(db, postID)
	if report.FailedCount() > 0 {
		logs.LogJSON("WARN", "Partial purge failure", map[string]interface{}{
			"postID": postID,
			"failed": report.FailedCount(),
		})
	}

	// 3. Zera o destaque; coluna ausente no deployment é só warning.
	if err := db.Model(&post.Post{}).Where("id = ?", postID).
		Update("is_trending", false).Error; err != nil {
		logs.LogJSON("WARN", "Could not clear trending flag", map[string]interface{}{
			"postID": postID,
			"error":  err.Error(),
		})
	}

	// 4. Delete da linha do post. Se falhar aqui, as linhas dependentes
	// podem já ter sumido. Inconsistência aceita: a linha que as
	// referenciaria está de qualquer forma marcada para remoção.
	if err := db.Where("id = ?", postID).Delete(&post.Post{}).Error; err != nil {
		logs.LogJSON("ERROR", "Post row deletion failed", map[string]interface{}{
			"postID": postID,
			"error":  err.Error(),
		})
		return false
	}

	logs.LogJSON("INFO", "Post deleted", map[string]interface{}{
		"postID":      postID,
		"purgeFailed": report.FailedCount(),
	})
	return true
}

// MarkDeleted marca o post como removido sem apagar a linha.
// As tabelas dependentes ficam intactas.
func MarkDeleted(db *gorm.DB, postID string) bool {
	if postID == "" {
		return false
	}

	res := db.Model(&post.Post{}).Where("id = ?", postID).
		Update("is_deleted", true)
	if res.Error != nil {
		logs.LogJSON("ERROR", "Soft delete failed", map[string]interface{}{
			"postID": postID,
			"error":  res.Error.Error(),
		})
		return false
	}
	if res.RowsAffected == 0 {
		logs.LogJSON("WARN", "Post not found for soft delete", map[string]interface{}{
			"postID": postID,
		})
		return false
	}
	return true
}
