package services

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkemaService(t *testing.T) (SkemaService, uint) {
	t.Helper()
	db := newTestDB(t)
	svc := NewSkemaService(repository.NewSKKNIRepository(db), repository.NewSkemaRepository(db))

	doc, err := svc.CreateSKKNI(dto.SKKNIRequest{
		NomorSKKNI: "SKKNI 2020-055",
		Judul:      "Pengembangan Perangkat Lunak",
		Tahun:      2020,
		Bidang:     "TIK",
	})
	require.NoError(t, err)
	return svc, doc.ID
}

func TestCreateSkemaRequiresExistingSKKNI(t *testing.T) {
	svc, _ := newSkemaService(t)

	_, err := svc.CreateSkema(dto.SkemaRequest{
		SKKNIID:   999,
		KodeSkema: "SKM-001",
		NamaSkema: "Junior Web Developer",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSkemaRejectsUnknownJenis(t *testing.T) {
	svc, skkniID := newSkemaService(t)

	_, err := svc.CreateSkema(dto.SkemaRequest{
		SKKNIID:   skkniID,
		KodeSkema: "SKM-001",
		NamaSkema: "Junior Web Developer",
		Jenis:     "sertifikat",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestImportSkema(t *testing.T) {
	svc, skkniID := newSkemaService(t)

	count, err := svc.ImportSkema(dto.SkemaImportRequest{Data: []dto.SkemaRequest{
		{SKKNIID: skkniID, KodeSkema: "SKM-001", NamaSkema: "Junior Web Developer", Jenis: "okupasi", JumlahUnit: 12},
		{SKKNIID: skkniID, KodeSkema: "SKM-002", NamaSkema: "Network Administrator", Jenis: "okupasi", JumlahUnit: 9},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rows, err := svc.ListSkema(10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestImportSkemaRejectsEmptyAndBadRows(t *testing.T) {
	svc, skkniID := newSkemaService(t)

	_, err := svc.ImportSkema(dto.SkemaImportRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// a single bad row fails the whole import
	_, err = svc.ImportSkema(dto.SkemaImportRequest{Data: []dto.SkemaRequest{
		{SKKNIID: skkniID, KodeSkema: "SKM-001", NamaSkema: "Junior Web Developer"},
		{SKKNIID: skkniID, KodeSkema: "", NamaSkema: ""},
	}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	rows, err := svc.ListSkema(10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExportSkemaCSV(t *testing.T) {
	svc, skkniID := newSkemaService(t)

	_, err := svc.CreateSkema(dto.SkemaRequest{
		SKKNIID:    skkniID,
		KodeSkema:  "SKM-001",
		NamaSkema:  "Junior Web Developer",
		Jenis:      "okupasi",
		JumlahUnit: 12,
	})
	require.NoError(t, err)

	data, err := svc.ExportSkemaCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id_skema", "id_skkni", "kode_skema", "nama_skema", "jenis", "jumlah_unit"}, records[0])
	assert.Equal(t, "SKM-001", records[1][2])
	assert.Equal(t, "12", records[1][5])
}
