package services

import (
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTUKService(t *testing.T) (TUKService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewTUKService(repository.NewTUKRepository(db), helper.SetupAuth("test-secret")), db
}

func tukAkunRequest() dto.TUKAkunRequest {
	return dto.TUKAkunRequest{
		TUKRequest: dto.TUKRequest{
			NamaTUK:  "TUK SMKN 1 Bandung",
			JenisTUK: "sewaktu",
			Kota:     "Bandung",
			Email:    "tuk.smkn1@example.com",
		},
		Password: "rahasia-kuat",
	}
}

func TestCreateTUKValidatesJenis(t *testing.T) {
	svc, _ := newTUKService(t)

	_, err := svc.Create(dto.TUKRequest{NamaTUK: "TUK X", JenisTUK: "cabang"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateWithAccountProvisionsLogin(t *testing.T) {
	svc, db := newTUKService(t)

	venue, err := svc.CreateWithAccount(tukAkunRequest())
	require.NoError(t, err)
	require.NotNil(t, venue.UserID)

	var user domain.User
	require.NoError(t, db.First(&user, *venue.UserID).Error)
	assert.Equal(t, domain.RoleTUK, user.Role)
	assert.Equal(t, "tuk.smkn1@example.com", user.Email)
}

func TestCreateWithAccountDuplicateEmailRollsBack(t *testing.T) {
	svc, db := newTUKService(t)

	_, err := svc.CreateWithAccount(tukAkunRequest())
	require.NoError(t, err)

	req := tukAkunRequest()
	req.NamaTUK = "TUK SMKN 2 Bandung"
	_, err = svc.CreateWithAccount(req)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	// the failed transaction did not create the second venue
	var venueCount int64
	require.NoError(t, db.Model(&domain.TUK{}).Count(&venueCount).Error)
	assert.EqualValues(t, 1, venueCount)
}

func TestCreateWithAccountRequiresStrongPassword(t *testing.T) {
	svc, _ := newTUKService(t)

	req := tukAkunRequest()
	req.Password = "short"
	_, err := svc.CreateWithAccount(req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestImportTUK(t *testing.T) {
	svc, _ := newTUKService(t)

	count, err := svc.Import(dto.TUKImportRequest{Data: []dto.TUKRequest{
		{NamaTUK: "TUK A", JenisTUK: "mandiri"},
		{NamaTUK: "TUK B", JenisTUK: "tempat_kerja"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rows, err := svc.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
