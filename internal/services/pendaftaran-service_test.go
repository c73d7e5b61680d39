package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// TranslateError makes sqlite unique violations surface as
	// gorm.ErrDuplicatedKey, same shape postgres takes in production.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.AsesiProfile{},
		&domain.Pendaftaran{},
		&domain.Notifikasi{},
		&domain.SKKNI{},
		&domain.UnitKompetensi{},
		&domain.Skema{},
		&domain.Banding{},
		&domain.Pengaduan{},
		&domain.TUK{},
		&domain.DokumenMutu{},
	))
	return db
}

type stubProducer struct {
	fail   bool
	keys   []string
	values [][]byte
}

func (p *stubProducer) PublishMessage(key, value []byte) error {
	if p.fail {
		return errors.New("broker unreachable")
	}
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func newPendaftaranService(t *testing.T) (PendaftaranService, *gorm.DB, *stubProducer) {
	t.Helper()

	db := newTestDB(t)
	producer := &stubProducer{}
	users := repository.NewUserRepository(db)
	auth := helper.SetupAuth("test-secret")
	svc := NewPendaftaranService(
		repository.NewPendaftaranRepository(db),
		NewAccountProvisioner(users, auth),
		producer,
		zap.NewNop(),
	)
	return svc, db, producer
}

func validRequest() dto.PendaftaranRequest {
	return dto.PendaftaranRequest{
		NIK:                "3204011203990001",
		NamaLengkap:        "Budi Santoso",
		Email:              "budi@example.com",
		NoHP:               "081234567890",
		ProgramStudi:       "Teknik Informatika",
		KompetensiKeahlian: "Junior Web Developer",
		WilayahRJI:         "Jawa Barat",
		Alamat:             "Jl. Merdeka No. 1",
		Provinsi:           "Jawa Barat",
		Kota:               "Bandung",
		Kecamatan:          "Coblong",
		Kelurahan:          "Dago",
	}
}

func TestSubmitStartsPending(t *testing.T) {
	svc, db, _ := newPendaftaranService(t)

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationPending, p.Status)
	assert.NotZero(t, p.ID)

	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationPending, stored.Status)
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _ := newPendaftaranService(t)

	cases := map[string]func(*dto.PendaftaranRequest){
		"missing nik":   func(r *dto.PendaftaranRequest) { r.NIK = "" },
		"short nik":     func(r *dto.PendaftaranRequest) { r.NIK = "12345" },
		"missing nama":  func(r *dto.PendaftaranRequest) { r.NamaLengkap = "  " },
		"missing email": func(r *dto.PendaftaranRequest) { r.Email = "" },
		"missing phone": func(r *dto.PendaftaranRequest) { r.NoHP = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := svc.Submit(req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newPendaftaranService(t)

	_, err := svc.List("archived", 10, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _, _ := newPendaftaranService(t)

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)
	_, _, err = svc.Reject(p.ID)
	require.NoError(t, err)

	req := validRequest()
	req.NIK = "3204011203990002"
	req.Email = "siti@example.com"
	_, err = svc.Submit(req)
	require.NoError(t, err)

	pending, err := svc.List("pending", 10, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "siti@example.com", pending[0].Email)

	all, err := svc.List("", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetUnknownID(t *testing.T) {
	svc, _, _ := newPendaftaranService(t)

	_, err := svc.Get(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApproveProvisionsExactlyOneAccount(t *testing.T) {
	svc, db, producer := newPendaftaranService(t)

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)

	account, warning, err := svc.Approve(p.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, domain.RoleAsesi, account.Role)
	assert.Equal(t, "budi@example.com", account.Email)
	assert.NotZero(t, account.UserID)
	assert.NotZero(t, account.AsesiID)

	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationApproved, stored.Status)

	var userCount, profileCount int64
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&domain.AsesiProfile{}).Count(&profileCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 1, profileCount)

	var profile domain.AsesiProfile
	require.NoError(t, db.First(&profile).Error)
	assert.Equal(t, account.UserID, profile.UserID)
	assert.Equal(t, p.ID, profile.PendaftaranID)
	assert.Equal(t, "3204011203990001", profile.NIK)

	// the credentials event carries the generated password; the response never does
	require.Len(t, producer.keys, 1)
	assert.Equal(t, EventPendaftaranApproved, producer.keys[0])
	var ev dto.CredentialsEvent
	require.NoError(t, json.Unmarshal(producer.values[0], &ev))
	assert.Equal(t, p.ID, ev.PendaftaranID)
	assert.Len(t, ev.Password, initialPasswordLength)
}

func TestApproveIsTerminal(t *testing.T) {
	svc, _, _ := newPendaftaranService(t)

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)

	_, _, err = svc.Approve(p.ID)
	require.NoError(t, err)

	_, _, err = svc.Approve(p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	_, _, err = svc.Reject(p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestRejectIsTerminal(t *testing.T) {
	svc, db, producer := newPendaftaranService(t)

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)

	rejected, warning, err := svc.Reject(p.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, domain.RegistrationRejected, rejected.Status)

	// rejection provisions nothing
	var userCount int64
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 0, userCount)

	require.Len(t, producer.keys, 1)
	assert.Equal(t, EventPendaftaranRejected, producer.keys[0])

	_, _, err = svc.Approve(p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationRejected, stored.Status)
}

func TestApproveUnknownID(t *testing.T) {
	svc, _, _ := newPendaftaranService(t)

	_, _, err := svc.Approve(4242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApproveDuplicateNIKRollsBack(t *testing.T) {
	svc, db, _ := newPendaftaranService(t)

	first, err := svc.Submit(validRequest())
	require.NoError(t, err)
	_, _, err = svc.Approve(first.ID)
	require.NoError(t, err)

	// same NIK, different contact details
	req := validRequest()
	req.Email = "budi.baru@example.com"
	second, err := svc.Submit(req)
	require.NoError(t, err)

	_, _, err = svc.Approve(second.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	// the failed approval left the record pending and created nothing
	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, second.ID).Error)
	assert.Equal(t, domain.RegistrationPending, stored.Status)

	var userCount, profileCount int64
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&domain.AsesiProfile{}).Count(&profileCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 1, profileCount)
}

func TestApproveDuplicateEmailRollsBack(t *testing.T) {
	svc, db, _ := newPendaftaranService(t)

	first, err := svc.Submit(validRequest())
	require.NoError(t, err)
	_, _, err = svc.Approve(first.ID)
	require.NoError(t, err)

	// same email, different NIK
	req := validRequest()
	req.NIK = "3204011203990009"
	second, err := svc.Submit(req)
	require.NoError(t, err)

	_, _, err = svc.Approve(second.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, second.ID).Error)
	assert.Equal(t, domain.RegistrationPending, stored.Status)
}

func TestApproveNotificationFailureIsWarningNotError(t *testing.T) {
	svc, db, producer := newPendaftaranService(t)
	producer.fail = true

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)

	account, warning, err := svc.Approve(p.ID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, WarnNotificationFailed, warning)

	// the transition committed despite the failed hand-off
	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationApproved, stored.Status)
}

func TestRejectNotificationFailureIsWarningNotError(t *testing.T) {
	svc, db, producer := newPendaftaranService(t)
	producer.fail = true

	p, err := svc.Submit(validRequest())
	require.NoError(t, err)

	_, warning, err := svc.Reject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, WarnNotificationFailed, warning)

	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationRejected, stored.Status)
}
