package services

import (
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBandingService(t *testing.T) BandingService {
	t.Helper()
	db := newTestDB(t)
	return NewBandingService(
		repository.NewBandingRepository(db),
		repository.NewPengaduanRepository(db),
	)
}

func TestSubmitBandingStartsDiajukan(t *testing.T) {
	svc := newBandingService(t)

	b, err := svc.SubmitBanding(dto.BandingRequest{
		NamaPemohon:   "Budi Santoso",
		Email:         "Budi@Example.com",
		AlasanBanding: "Nilai observasi tidak sesuai",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BandingDiajukan, b.Status)
	assert.Equal(t, "budi@example.com", b.Email)
}

func TestSubmitBandingValidation(t *testing.T) {
	svc := newBandingService(t)

	_, err := svc.SubmitBanding(dto.BandingRequest{NamaPemohon: "", AlasanBanding: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.SubmitBanding(dto.BandingRequest{NamaPemohon: "Budi", AlasanBanding: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBandingLifecycle(t *testing.T) {
	svc := newBandingService(t)

	b, err := svc.SubmitBanding(dto.BandingRequest{
		NamaPemohon:   "Budi Santoso",
		AlasanBanding: "Nilai observasi tidak sesuai",
	})
	require.NoError(t, err)

	// diajukan cannot close directly
	_, err = svc.UpdateBanding(b.ID, dto.BandingUpdateRequest{Status: "diterima"})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	proc, err := svc.UpdateBanding(b.ID, dto.BandingUpdateRequest{Status: "diproses"})
	require.NoError(t, err)
	assert.Equal(t, domain.BandingDiproses, proc.Status)

	done, err := svc.UpdateBanding(b.ID, dto.BandingUpdateRequest{Status: "diterima", Tanggapan: "banding diterima"})
	require.NoError(t, err)
	assert.Equal(t, domain.BandingDiterima, done.Status)
	assert.Equal(t, "banding diterima", done.Tanggapan)

	// diterima is terminal
	_, err = svc.UpdateBanding(b.ID, dto.BandingUpdateRequest{Status: "ditolak"})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestUpdateBandingUnknownStatus(t *testing.T) {
	svc := newBandingService(t)

	_, err := svc.UpdateBanding(1, dto.BandingUpdateRequest{Status: "dibatalkan"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPengaduanLifecycle(t *testing.T) {
	svc := newBandingService(t)

	p, err := svc.SubmitPengaduan(dto.PengaduanRequest{
		NamaPelapor:  "Siti Aminah",
		Kategori:     "pelayanan",
		IsiPengaduan: "Jadwal uji tidak dikonfirmasi",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PengaduanBaru, p.Status)

	proc, err := svc.UpdatePengaduan(p.ID, dto.PengaduanUpdateRequest{Status: "diproses"})
	require.NoError(t, err)
	assert.Equal(t, domain.PengaduanDiproses, proc.Status)

	done, err := svc.UpdatePengaduan(p.ID, dto.PengaduanUpdateRequest{Status: "selesai", Tanggapan: "sudah dihubungi"})
	require.NoError(t, err)
	assert.Equal(t, domain.PengaduanSelesai, done.Status)

	_, err = svc.UpdatePengaduan(p.ID, dto.PengaduanUpdateRequest{Status: "diproses"})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}
