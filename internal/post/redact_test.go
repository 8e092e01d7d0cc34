package post

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm: %v", err)
	}

	return db, mock, func() { mockDB.Close() }
}

func TestRedactDeleted(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	posts := []Post{
		{
			ID:        "post-1",
			CreatedAt: created,
			UserID:    "user-1",
			Title:     "Corte em camadas",
			Content:   "Tutorial completo",
			IsDeleted: false,
		},
		{
			ID:        "post-2",
			CreatedAt: created,
			UserID:    "user-2",
			Title:     "Título ofensivo",
			Content:   "Conteúdo denunciado",
			IsDeleted: true,
		},
	}

	out := RedactDeleted(posts)

	// Post intacto passa sem alteração
	assert.Equal(t, "Corte em camadas", out[0].Title)
	assert.Equal(t, "Tutorial completo", out[0].Content)

	// Post removido vira placeholder, mantendo id e metadados
	assert.Equal(t, RedactedTitle, out[1].Title)
	assert.Equal(t, RedactedContent, out[1].Content)
	assert.Equal(t, "post-2", out[1].ID)
	assert.Equal(t, created, out[1].CreatedAt)
	assert.Equal(t, "user-2", out[1].UserID)
	assert.True(t, out[1].IsDeleted)
}

func TestRedactDeletedEmpty(t *testing.T) {
	assert.Empty(t, RedactDeleted(nil))
	assert.Empty(t, RedactDeleted([]Post{}))
}

func TestFilterDeletedPredicate(t *testing.T) {
	filterBroken.Store(false)
	defer filterBroken.Store(false)

	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE is_deleted = \$1`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	var posts []Post
	err := FilterDeleted(db.Model(&Post{})).Find(&posts).Error

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisableFilterDegradation(t *testing.T) {
	filterBroken.Store(false)
	defer filterBroken.Store(false)

	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// Depois de detectado o schema sem a coluna, o filtro vira no-op
	DisableFilter(errors.New(`ERROR: column "is_deleted" does not exist (SQLSTATE 42703)`))

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("post-1"))

	var posts []Post
	err := FilterDeleted(db.Model(&Post{})).Find(&posts).Error

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Erro transitório de banco ou rede não pode desligar o filtro em
// definitivo; só a coluna inexistente desliga.
func TestDisableFilterKeepsFilterOnTransientError(t *testing.T) {
	filterBroken.Store(false)
	defer filterBroken.Store(false)

	DisableFilter(errors.New("read tcp 10.0.0.2:5432: connection reset by peer"))
	assert.False(t, filterBroken.Load())

	DisableFilter(errors.New("context deadline exceeded"))
	assert.False(t, filterBroken.Load())

	DisableFilter(nil)
	assert.False(t, filterBroken.Load())
}

func TestDisableFilterIdempotent(t *testing.T) {
	filterBroken.Store(false)
	defer filterBroken.Store(false)

	DisableFilter(errors.New(`column "is_deleted" does not exist`))
	DisableFilter(errors.New("SQLSTATE 42703"))

	assert.True(t, filterBroken.Load())
}
