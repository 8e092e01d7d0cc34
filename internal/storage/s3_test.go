package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Em processos onde InitS3 nunca rodou (ou falhou), as operações de mídia
// devolvem erro em vez de quebrar o processo.
func TestUploadToS3NotConfigured(t *testing.T) {
	prev := s3Client
	s3Client = nil
	defer func() { s3Client = prev }()

	url, err := UploadToS3(nil, "foto.jpg", "image/jpeg", "posts")

	assert.Empty(t, url)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDeleteFromS3NotConfigured(t *testing.T) {
	prev := s3Client
	s3Client = nil
	defer func() { s3Client = prev }()

	assert.ErrorIs(t, DeleteFromS3("posts/foto.jpg"), ErrNotConfigured)
}
