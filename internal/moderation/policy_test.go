package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, SoftDelete, ParsePolicy("soft"))
	assert.Equal(t, HardDelete, ParsePolicy("hard"))
	assert.Equal(t, HardDelete, ParsePolicy(""))
	assert.Equal(t, HardDelete, ParsePolicy("qualquer-coisa"))
}
