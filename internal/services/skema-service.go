package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

// SkemaService covers the three master-data entities that hang together:
// SKKNI documents, their competency units, and the certification schemes
// built on them.
type SkemaService interface {
	CreateSKKNI(input dto.SKKNIRequest) (*domain.SKKNI, error)
	GetSKKNI(id uint) (*domain.SKKNI, error)
	ListSKKNI(limit, offset int) ([]domain.SKKNI, error)
	UpdateSKKNI(id uint, input dto.SKKNIRequest) (*domain.SKKNI, error)
	DeleteSKKNI(id uint) error

	CreateUnit(input dto.UnitKompetensiRequest) (*domain.UnitKompetensi, error)
	ListUnits(limit, offset int) ([]domain.UnitKompetensi, error)
	UpdateUnit(id uint, input dto.UnitKompetensiRequest) (*domain.UnitKompetensi, error)
	DeleteUnit(id uint) error

	CreateSkema(input dto.SkemaRequest) (*domain.Skema, error)
	GetSkema(id uint) (*domain.Skema, error)
	ImportSkema(input dto.SkemaImportRequest) (int, error)
	ListSkema(limit, offset int) ([]domain.Skema, error)
	UpdateSkema(id uint, input dto.SkemaRequest) (*domain.Skema, error)
	DeleteSkema(id uint) error
	ExportSkemaCSV() ([]byte, error)
}

type skemaService struct {
	skkni repository.SKKNIRepository
	skema repository.SkemaRepository
}

func NewSkemaService(skkni repository.SKKNIRepository, skema repository.SkemaRepository) SkemaService {
	return &skemaService{skkni: skkni, skema: skema}
}

/* ---------- SKKNI ---------- */

func buildSKKNI(input dto.SKKNIRequest) (*domain.SKKNI, error) {
	nomor := strings.TrimSpace(input.NomorSKKNI)
	judul := strings.TrimSpace(input.Judul)
	if nomor == "" {
		return nil, fmt.Errorf("%w: nomor_skkni is required", domain.ErrValidation)
	}
	if judul == "" {
		return nil, fmt.Errorf("%w: judul is required", domain.ErrValidation)
	}
	return &domain.SKKNI{
		NomorSKKNI: nomor,
		Judul:      judul,
		Tahun:      input.Tahun,
		Bidang:     strings.TrimSpace(input.Bidang),
	}, nil
}

func (s *skemaService) CreateSKKNI(input dto.SKKNIRequest) (*domain.SKKNI, error) {
	doc, err := buildSKKNI(input)
	if err != nil {
		return nil, err
	}
	if err := s.skkni.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *skemaService) GetSKKNI(id uint) (*domain.SKKNI, error) {
	return s.skkni.FindByID(id)
}

func (s *skemaService) ListSKKNI(limit, offset int) ([]domain.SKKNI, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.skkni.List(limit, offset)
}

func (s *skemaService) UpdateSKKNI(id uint, input dto.SKKNIRequest) (*domain.SKKNI, error) {
	existing, err := s.skkni.FindByID(id)
	if err != nil {
		return nil, err
	}
	updated, err := buildSKKNI(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.Timestamps = existing.Timestamps

	if err := s.skkni.Save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *skemaService) DeleteSKKNI(id uint) error {
	return s.skkni.Delete(id)
}

/* ---------- Unit Kompetensi ---------- */

func (s *skemaService) CreateUnit(input dto.UnitKompetensiRequest) (*domain.UnitKompetensi, error) {
	kode := strings.TrimSpace(input.KodeUnit)
	judul := strings.TrimSpace(input.JudulUnit)
	if input.SKKNIID == 0 {
		return nil, fmt.Errorf("%w: id_skkni is required", domain.ErrValidation)
	}
	if kode == "" || judul == "" {
		return nil, fmt.Errorf("%w: kode_unit and judul_unit are required", domain.ErrValidation)
	}

	// unit must reference an existing SKKNI
	if _, err := s.skkni.FindByID(input.SKKNIID); err != nil {
		return nil, err
	}

	u := &domain.UnitKompetensi{
		SKKNIID:   input.SKKNIID,
		KodeUnit:  kode,
		JudulUnit: judul,
	}
	if err := s.skkni.CreateUnit(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *skemaService) ListUnits(limit, offset int) ([]domain.UnitKompetensi, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.skkni.ListUnits(limit, offset)
}

func (s *skemaService) UpdateUnit(id uint, input dto.UnitKompetensiRequest) (*domain.UnitKompetensi, error) {
	existing, err := s.skkni.FindUnitByID(id)
	if err != nil {
		return nil, err
	}

	if input.SKKNIID != 0 && input.SKKNIID != existing.SKKNIID {
		if _, err := s.skkni.FindByID(input.SKKNIID); err != nil {
			return nil, err
		}
		existing.SKKNIID = input.SKKNIID
	}
	if kode := strings.TrimSpace(input.KodeUnit); kode != "" {
		existing.KodeUnit = kode
	}
	if judul := strings.TrimSpace(input.JudulUnit); judul != "" {
		existing.JudulUnit = judul
	}

	if err := s.skkni.SaveUnit(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *skemaService) DeleteUnit(id uint) error {
	return s.skkni.DeleteUnit(id)
}

/* ---------- Skema ---------- */

func buildSkema(input dto.SkemaRequest) (*domain.Skema, error) {
	kode := strings.TrimSpace(input.KodeSkema)
	nama := strings.TrimSpace(input.NamaSkema)
	if input.SKKNIID == 0 {
		return nil, fmt.Errorf("%w: id_skkni is required", domain.ErrValidation)
	}
	if kode == "" || nama == "" {
		return nil, fmt.Errorf("%w: kode_skema and nama_skema are required", domain.ErrValidation)
	}

	jenis := strings.TrimSpace(strings.ToLower(input.Jenis))
	switch jenis {
	case "", "okupasi", "klaster", "kkni":
	default:
		return nil, fmt.Errorf("%w: unknown jenis %q", domain.ErrValidation, input.Jenis)
	}

	return &domain.Skema{
		SKKNIID:    input.SKKNIID,
		KodeSkema:  kode,
		NamaSkema:  nama,
		Jenis:      jenis,
		JumlahUnit: input.JumlahUnit,
	}, nil
}

func (s *skemaService) CreateSkema(input dto.SkemaRequest) (*domain.Skema, error) {
	sk, err := buildSkema(input)
	if err != nil {
		return nil, err
	}
	if _, err := s.skkni.FindByID(sk.SKKNIID); err != nil {
		return nil, err
	}
	if err := s.skema.Create(sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *skemaService) ImportSkema(input dto.SkemaImportRequest) (int, error) {
	if len(input.Data) == 0 {
		return 0, fmt.Errorf("%w: no rows to import", domain.ErrValidation)
	}

	rows := make([]domain.Skema, 0, len(input.Data))
	for i, req := range input.Data {
		sk, err := buildSkema(req)
		if err != nil {
			return 0, fmt.Errorf("baris %d: %w", i+1, err)
		}
		rows = append(rows, *sk)
	}

	if err := s.skema.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *skemaService) GetSkema(id uint) (*domain.Skema, error) {
	return s.skema.FindByID(id)
}

func (s *skemaService) ListSkema(limit, offset int) ([]domain.Skema, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.skema.List(limit, offset)
}

func (s *skemaService) UpdateSkema(id uint, input dto.SkemaRequest) (*domain.Skema, error) {
	existing, err := s.skema.FindByID(id)
	if err != nil {
		return nil, err
	}
	updated, err := buildSkema(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.Timestamps = existing.Timestamps

	if err := s.skema.Save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *skemaService) DeleteSkema(id uint) error {
	return s.skema.Delete(id)
}

// ExportSkemaCSV renders all schemes as CSV for download.
func (s *skemaService) ExportSkemaCSV() ([]byte, error) {
	rows, err := s.skema.ListAll()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id_skema", "id_skkni", "kode_skema", "nama_skema", "jenis", "jumlah_unit"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.SKKNIID), 10),
			r.KodeSkema,
			r.NamaSkema,
			r.Jenis,
			strconv.Itoa(r.JumlahUnit),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
