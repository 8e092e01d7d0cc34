package moderation

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAllowlistAuthorizer(t *testing.T) {
	auth := NewAllowlistAuthorizer([]string{"Admin@ClubeDasBrabas.com.br", " outra@exemplo.com "})

	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{
			name:     "Exact match",
			email:    "admin@clubedasbrabas.com.br",
			expected: true,
		},
		{
			name:     "Case insensitive match",
			email:    "ADMIN@clubedasbrabas.COM.BR",
			expected: true,
		},
		{
			name:     "Whitespace around email",
			email:    "  outra@exemplo.com  ",
			expected: true,
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			expected: false,
		},
		{
			name:     "Empty email",
			email:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, auth.IsAdmin(tt.email))
		})
	}
}

func TestAllowlistAuthorizerEmptyList(t *testing.T) {
	auth := NewAllowlistAuthorizer(nil)
	assert.False(t, auth.IsAdmin("admin@clubedasbrabas.com.br"))
}

func TestProfileAuthorizer(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		mockRows *sqlmock.Rows
		expected bool
	}{
		{
			name:     "User is admin",
			email:    "admin@clubedasbrabas.com.br",
			mockRows: sqlmock.NewRows([]string{"is_admin"}).AddRow(true),
			expected: true,
		},
		{
			name:     "User is not admin",
			email:    "membro@exemplo.com",
			mockRows: sqlmock.NewRows([]string{"is_admin"}).AddRow(false),
			expected: false,
		},
		{
			name:     "User not found",
			email:    "fantasma@exemplo.com",
			mockRows: sqlmock.NewRows([]string{"is_admin"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()

			mock.ExpectQuery(`SELECT`).WillReturnRows(tt.mockRows)

			auth := NewProfileAuthorizer(db)
			assert.Equal(t, tt.expected, auth.IsAdmin(tt.email))
		})
	}
}

func TestProfileAuthorizerEmptyEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	auth := NewProfileAuthorizer(db)
	assert.False(t, auth.IsAdmin(""))

	// E-mail vazio não chega a consultar o banco
	assert.NoError(t, mock.ExpectationsWereMet())
}
