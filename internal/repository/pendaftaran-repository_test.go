package repository

import (
	"errors"
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.AsesiProfile{},
		&domain.Pendaftaran{},
	))
	return db
}

func seedPendaftaran(t *testing.T, db *gorm.DB, status domain.RegistrationStatus) *domain.Pendaftaran {
	t.Helper()
	p := &domain.Pendaftaran{
		NIK:         "3204011203990001",
		NamaLengkap: "Budi Santoso",
		Email:       "budi@example.com",
		NoHP:        "081234567890",
		Status:      status,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestCreateBackfillsPrimaryKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendaftaranRepository(db)

	p := &domain.Pendaftaran{
		NIK:         "3204011203990001",
		NamaLengkap: "Budi Santoso",
		Email:       "budi@example.com",
		NoHP:        "081234567890",
		Status:      domain.RegistrationPending,
	}
	require.NoError(t, repo.Create(p))
	require.NotZero(t, p.ID, "id_pendaftaran must be filled on insert")

	found, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, p.NIK, found.NIK)
}

func TestClaimTransitionWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendaftaranRepository(db)
	p := seedPendaftaran(t, db, domain.RegistrationPending)

	err := repo.ClaimTransition(p.ID, domain.RegistrationPending, domain.RegistrationApproved, nil)
	require.NoError(t, err)

	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationApproved, stored.Status)
}

func TestClaimTransitionSecondClaimLoses(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendaftaranRepository(db)
	p := seedPendaftaran(t, db, domain.RegistrationPending)

	require.NoError(t, repo.ClaimTransition(p.ID, domain.RegistrationPending, domain.RegistrationApproved, nil))

	// the record is no longer pending, so the conditional update matches nothing
	err := repo.ClaimTransition(p.ID, domain.RegistrationPending, domain.RegistrationRejected, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestClaimTransitionRejectsIllegalEdges(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendaftaranRepository(db)
	p := seedPendaftaran(t, db, domain.RegistrationApproved)

	cases := []struct {
		from, to domain.RegistrationStatus
	}{
		{domain.RegistrationApproved, domain.RegistrationPending},
		{domain.RegistrationApproved, domain.RegistrationRejected},
		{domain.RegistrationRejected, domain.RegistrationApproved},
		{domain.RegistrationPending, domain.RegistrationPending},
	}
	for _, tc := range cases {
		err := repo.ClaimTransition(p.ID, tc.from, tc.to, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestClaimTransitionUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendaftaranRepository(db)

	err := repo.ClaimTransition(12345, domain.RegistrationPending, domain.RegistrationApproved, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClaimTransitionRollsBackWithCallback(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendaftaranRepository(db)
	p := seedPendaftaran(t, db, domain.RegistrationPending)

	boom := errors.New("provisioning failed")
	err := repo.ClaimTransition(p.ID, domain.RegistrationPending, domain.RegistrationApproved, func(tx *gorm.DB) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the status flip rolled back with the callback
	var stored domain.Pendaftaran
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, domain.RegistrationPending, stored.Status)
}

func TestProvisionAsesiDuplicateNIK(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	provision := func(email, nik string) error {
		return db.Transaction(func(tx *gorm.DB) error {
			u := &domain.User{Email: email, PasswordHash: "x", Role: domain.RoleAsesi, Status: "active"}
			return users.ProvisionAsesi(tx, u, &domain.AsesiProfile{
				PendaftaranID: 1,
				NIK:           nik,
				NamaLengkap:   "Budi Santoso",
			})
		})
	}

	require.NoError(t, provision("budi@example.com", "3204011203990001"))

	err := provision("siti@example.com", "3204011203990001")
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	// the losing transaction left no orphan user behind
	var userCount int64
	require.NoError(t, db.Model(&domain.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)
}
