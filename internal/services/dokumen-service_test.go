package services

import (
	"context"
	"strings"
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	fail  bool
	calls int
}

func (u *stubUploader) UploadBytes(_ context.Context, folder, filename string, _ []byte) (string, error) {
	u.calls++
	if u.fail {
		return "", assert.AnError
	}
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

func TestUploadDokumenStoresURL(t *testing.T) {
	db := newTestDB(t)
	up := &stubUploader{}
	svc := NewDokumenService(repository.NewDokumenRepository(db), up)

	d, err := svc.Upload(context.Background(), "Panduan Mutu", "DM-001", "panduan", []byte("isi dokumen"))
	require.NoError(t, err)
	require.NotZero(t, d.ID)
	assert.Equal(t, 1, up.calls)
	assert.True(t, strings.HasPrefix(d.FileURL, "https://cdn.example.com/dokumen-mutu/"))

	found, err := svc.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.FileURL, found.FileURL)
}

func TestUploadDokumenValidation(t *testing.T) {
	db := newTestDB(t)
	up := &stubUploader{}
	svc := NewDokumenService(repository.NewDokumenRepository(db), up)

	cases := []struct {
		name string
		nama string
		file []byte
	}{
		{"empty nama", "", []byte("isi")},
		{"empty file", "Panduan Mutu", nil},
		{"oversized file", "Panduan Mutu", make([]byte, maxDokumenSize+1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tc.nama, "", "", tc.file)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Zero(t, up.calls)
}

func TestUploadDokumenFailureDoesNotPersist(t *testing.T) {
	db := newTestDB(t)
	svc := NewDokumenService(repository.NewDokumenRepository(db), &stubUploader{fail: true})

	_, err := svc.Upload(context.Background(), "Panduan Mutu", "DM-001", "panduan", []byte("isi"))
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.DokumenMutu{}).Count(&count).Error)
	assert.Zero(t, count)
}
