package moderation

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDeletePostUnauthorized(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), HardDelete)

	ok := svc.DeletePost("post-1", "nobody@example.com")

	assert.False(t, ok)
	// Chamada sem permissão não toca no banco
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePostNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), HardDelete)

	// Lookup do autor e verificação de existência, nada além disso
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows(postColumns))

	ok := svc.DeletePost("post-missing", "admin@clubedasbrabas.com.br")

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePostSuccessThenIdempotent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), HardDelete)

	// Primeira chamada: remoção completa
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("author-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("post-1", time.Now(), time.Now(), "author-1", "Título", "Conteúdo", nil, nil, true, false))
	for _, tbl := range relatedTables {
		mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf(`DELETE FROM %q`, tbl.name))).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts"`)).
		WithArgs("post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// O INSERT da notificação não está roteirizado de propósito: a falha
	// é tolerada (melhor esforço) e não muda o resultado

	ok := svc.DeletePost("post-1", "admin@clubedasbrabas.com.br")
	assert.True(t, ok)

	// Segunda chamada: o post já sumiu, nenhuma mutação acontece
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows(postColumns))

	ok = svc.DeletePost("post-1", "admin@clubedasbrabas.com.br")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveBestEffortPurge(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("post-1", time.Now(), time.Now(), "author-1", "Título", "Conteúdo", nil, nil, false, false))

	// post_comments falha; as outras tabelas e o post ainda são removidos
	for _, tbl := range relatedTables {
		exec := mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf(`DELETE FROM %q`, tbl.name))).
			WithArgs("post-1")
		if tbl.name == "post_comments" {
			exec.WillReturnError(errors.New("delete failed"))
		} else {
			exec.WillReturnResult(sqlmock.NewResult(0, 1))
		}
	}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts"`)).
		WithArgs("post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok := Remove(db, "post-1")

	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFinalDeleteFailure(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow("post-1", time.Now(), time.Now(), "author-1", "Título", "Conteúdo", nil, nil, false, false))
	for _, tbl := range relatedTables {
		mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf(`DELETE FROM %q`, tbl.name))).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts"`)).
		WithArgs("post-1").
		WillReturnError(errors.New("connection reset"))

	ok := Remove(db, "post-1")

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveEmptyID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	assert.False(t, Remove(db, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePostCategoryUnauthorized(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), HardDelete)

	ok := svc.UpdatePostCategory("post-1", "cat-1", "nobody@example.com")

	assert.False(t, ok)
	// A categoria do post não foi tocada
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePostCategoryNullNormalization(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		expected   interface{}
	}{
		{
			name:       "Empty string becomes NULL",
			categoryID: "",
			expected:   nil,
		},
		{
			name:       "Whitespace becomes NULL",
			categoryID: "   ",
			expected:   nil,
		},
		{
			name:       "Non-empty id passes through",
			categoryID: "cat-1",
			expected:   "cat-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()

			svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), HardDelete)

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
				WithArgs(tt.expected, sqlmock.AnyArg(), "post-1").
				WillReturnResult(sqlmock.NewResult(0, 1))

			ok := svc.UpdatePostCategory("post-1", tt.categoryID, "admin@clubedasbrabas.com.br")

			assert.True(t, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSoftDeletePolicy(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), SoftDelete)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("author-1"))
	// Só um UPDATE de is_deleted; nenhuma purga, nenhum DELETE
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok := svc.DeletePost("post-1", "admin@clubedasbrabas.com.br")

	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePostsByUserUnauthorized(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewService(db, NewAllowlistAuthorizer([]string{"admin@clubedasbrabas.com.br"}), HardDelete)

	deleted, failed := svc.DeletePostsByUser("author-1", "nobody@example.com")

	assert.Equal(t, 0, deleted)
	assert.Equal(t, 0, failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
