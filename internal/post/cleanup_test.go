package post

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
)

// Processo sem S3 inicializado (CLI de operação, servidor com credenciais
// ausentes): a limpeza de mídia degrada para warning e a remoção no banco
// segue em frente.
func TestCleanupMediaWithoutS3(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	prev := database.DB
	database.DB = db
	defer func() { database.DB = prev }()

	mock.ExpectQuery(`SELECT \* FROM "post_media"`).
		WithArgs("post-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "post_id", "media_url", "media_type"}).
			AddRow("media-1", time.Now(), "post-1",
				"https://brabas-media.s3.us-east-1.amazonaws.com/posts/foto.jpg", "image"))

	assert.NotPanics(t, func() { CleanupMedia("post-1") })
	assert.NoError(t, mock.ExpectationsWereMet())
}
