package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

const tanggalLayout = "2006-01-02"

type JadwalService interface {
	Create(input dto.JadwalUjiRequest) (*domain.JadwalUji, error)
	Get(id uint) (*domain.JadwalUji, error)
	List(limit, offset int) ([]domain.JadwalUji, error)
	Update(id uint, input dto.JadwalUjiRequest) (*domain.JadwalUji, error)
	Delete(id uint) error
	ExportCSV() ([]byte, error)
}

type jadwalService struct {
	repo   repository.JadwalRepository
	skema  repository.SkemaRepository
	tuk    repository.TUKRepository
	asesor repository.AsesorRepository
}

func NewJadwalService(
	repo repository.JadwalRepository,
	skema repository.SkemaRepository,
	tuk repository.TUKRepository,
	asesor repository.AsesorRepository,
) JadwalService {
	return &jadwalService{repo: repo, skema: skema, tuk: tuk, asesor: asesor}
}

func (s *jadwalService) build(input dto.JadwalUjiRequest) (*domain.JadwalUji, error) {
	if input.SkemaID == 0 || input.TUKID == 0 || input.AsesorID == 0 {
		return nil, fmt.Errorf("%w: id_skema, id_tuk and id_asesor are required", domain.ErrValidation)
	}

	tanggal, err := time.Parse(tanggalLayout, strings.TrimSpace(input.TanggalUji))
	if err != nil {
		return nil, fmt.Errorf("%w: tanggal_uji must be YYYY-MM-DD", domain.ErrValidation)
	}
	if input.Kuota < 0 {
		return nil, fmt.Errorf("%w: kuota cannot be negative", domain.ErrValidation)
	}

	// referenced rows must exist; ErrNotFound propagates as-is
	if _, err := s.skema.FindByID(input.SkemaID); err != nil {
		return nil, err
	}
	if _, err := s.tuk.FindByID(input.TUKID); err != nil {
		return nil, err
	}
	if _, err := s.asesor.FindByID(input.AsesorID); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(strings.ToLower(input.Status))
	if status == "" {
		status = "terjadwal"
	}

	return &domain.JadwalUji{
		SkemaID:    input.SkemaID,
		TUKID:      input.TUKID,
		AsesorID:   input.AsesorID,
		TanggalUji: tanggal,
		Kuota:      input.Kuota,
		Keterangan: strings.TrimSpace(input.Keterangan),
		Status:     status,
	}, nil
}

func (s *jadwalService) Create(input dto.JadwalUjiRequest) (*domain.JadwalUji, error) {
	j, err := s.build(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(j); err != nil {
		return nil, err
	}
	return s.repo.FindByID(j.ID)
}

func (s *jadwalService) Get(id uint) (*domain.JadwalUji, error) {
	return s.repo.FindByID(id)
}

func (s *jadwalService) List(limit, offset int) ([]domain.JadwalUji, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.List(limit, offset)
}

func (s *jadwalService) Update(id uint, input dto.JadwalUjiRequest) (*domain.JadwalUji, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.build(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.Timestamps = existing.Timestamps

	if err := s.repo.Save(updated); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *jadwalService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *jadwalService) ExportCSV() ([]byte, error) {
	rows, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id_jadwal", "tanggal_uji", "skema", "tuk", "asesor", "kuota", "status"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		var skema, tuk, asesor string
		if r.Skema != nil {
			skema = r.Skema.NamaSkema
		}
		if r.TUK != nil {
			tuk = r.TUK.NamaTUK
		}
		if r.Asesor != nil {
			asesor = r.Asesor.NamaLengkap
		}
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.TanggalUji.Format(tanggalLayout),
			skema,
			tuk,
			asesor,
			strconv.Itoa(r.Kuota),
			r.Status,
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
