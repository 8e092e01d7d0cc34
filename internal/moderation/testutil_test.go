package moderation

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB monta um *gorm.DB em cima de um sqlmock, na mesma configuração
// da conexão real (driver postgres, protocolo simples).
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return db, mock, func() { mockDB.Close() }
}

var postColumns = []string{
	"id", "created_at", "updated_at", "user_id", "title", "content",
	"category_id", "community_id", "is_trending", "is_deleted",
}
