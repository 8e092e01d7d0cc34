package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdminEmails(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "Single email",
			raw:      "admin@clubedasbrabas.com.br",
			expected: []string{"admin@clubedasbrabas.com.br"},
		},
		{
			name:     "Multiple with spaces and case",
			raw:      " Admin@clubedasbrabas.com.br , SUPORTE@clubedasbrabas.com.br",
			expected: []string{"admin@clubedasbrabas.com.br", "suporte@clubedasbrabas.com.br"},
		},
		{
			name:     "Empty entries ignored",
			raw:      "admin@clubedasbrabas.com.br,, ,",
			expected: []string{"admin@clubedasbrabas.com.br"},
		},
		{
			name:     "Empty string",
			raw:      "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAdminEmails(tt.raw))
		})
	}
}

func TestParseAdminCheck(t *testing.T) {
	assert.Equal(t, AdminCheckProfile, parseAdminCheck("profile"))
	assert.Equal(t, AdminCheckProfile, parseAdminCheck(" PROFILE "))
	assert.Equal(t, AdminCheckAllowlist, parseAdminCheck("allowlist"))
	assert.Equal(t, AdminCheckAllowlist, parseAdminCheck(""))
	assert.Equal(t, AdminCheckAllowlist, parseAdminCheck("banana"))
}
