package moderation

import (
	"gorm.io/gorm"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/like"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/poll"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/report"
)

// relatedTable é um repositório tipado de uma tabela dependente de posts:
// só sabe apagar linhas pelo post_id.
type relatedTable struct {
	name  string
	model interface{}
}

// relatedTables são as nove tabelas que guardam linhas apontando para um
// post. A lista é fixa de propósito: o banco não tem FK ON DELETE CASCADE,
// então a consistência referencial é aproximada tentando cada tabela
// conhecida, uma a uma.
var relatedTables = []relatedTable{
	{"post_likes", &like.Like{}},
	{"post_comments", &post.Comment{}},
	{"post_media", &post.PostMedia{}},
	{"post_polls", &poll.Poll{}},
	{"poll_votes", &poll.PollVote{}},
	{"post_views", &post.PostView{}},
	{"post_shares", &post.PostShare{}},
	{"post_saves", &post.PostSave{}},
	{"post_reports", &report.Report{}},
}

// PurgeReport registra o resultado por tabela de uma purga.
type PurgeReport struct {
	Deleted map[string]int64
	Failed  map[string]error
}

func (r PurgeReport) FailedCount() int {
	return len(r.Failed)
}

// PurgeRelated apaga as linhas das nove tabelas dependentes que referenciam
// o post. Falha em uma tabela (inclusive tabela ou coluna inexistente no
// deployment) vira warning e NÃO interrompe as seguintes. O chamador segue
// em frente independente do resultado por tabela.
func PurgeRelated(db *gorm.DB, postID string) PurgeReport {
	rep := PurgeReport{
		Deleted: make(map[string]int64, len(relatedTables)),
		Failed:  make(map[string]error),
	}

	for _, t := range relatedTables {
		res := db.Where("post_id = ?", postID).Delete(t.model)
		if res.Error != nil {
			rep.Failed[t.name] = res.Error
			logs.LogJSON("WARN", "Related table purge failed", map[string]interface{}{
				"table":  t.name,
				"postID": postID,
				"error":  res.Error.Error(),
			})
			continue
		}
		rep.Deleted[t.name] = res.RowsAffected
	}

	return rep
}
