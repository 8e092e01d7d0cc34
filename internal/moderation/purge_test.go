package moderation

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPurgeRelatedAllTables(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	for _, tbl := range relatedTables {
		mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf(`DELETE FROM %q`, tbl.name))).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
	}

	rep := PurgeRelated(db, "post-1")

	assert.Len(t, rep.Deleted, 9)
	assert.Equal(t, 0, rep.FailedCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeRelatedContinuesAfterFailure(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// post_polls falha (tabela inexistente no deployment); as oito
	// restantes ainda precisam ser tentadas
	for _, tbl := range relatedTables {
		exec := mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf(`DELETE FROM %q`, tbl.name))).
			WithArgs("post-1")
		if tbl.name == "post_polls" {
			exec.WillReturnError(errors.New(`relation "post_polls" does not exist`))
		} else {
			exec.WillReturnResult(sqlmock.NewResult(0, 1))
		}
	}

	rep := PurgeRelated(db, "post-1")

	assert.Len(t, rep.Deleted, 8)
	assert.Equal(t, 1, rep.FailedCount())
	assert.Contains(t, rep.Failed, "post_polls")
	assert.NoError(t, mock.ExpectationsWereMet())
}
